// Package itemcf 是一个物品-物品协同过滤批处理工具包（Item-CF Kit）。
//
// 设计要点：
// - Pipeline-first: 批处理逻辑通过 Stage 串联（Profile → Similarity → Neighborhood → Estimate → Rank）
// - 纯函数核心: 五个阶段都是确定性的纯函数，同一输入多次运行产出一致
// - Stage 可扩展: 过滤（黑名单 / CEL 表达式）与落库（内存 / Redis）按需插拔
package itemcf

import "github.com/rushteam/itemcf/pipeline"

// 轻量 facade：便于用户直接 import "itemcf" 使用核心抽象。
type Pipeline = pipeline.Pipeline
type Stage = pipeline.Stage
type State = pipeline.State
type Kind = pipeline.Kind

const (
	KindProfile      = pipeline.KindProfile
	KindSimilarity   = pipeline.KindSimilarity
	KindNeighborhood = pipeline.KindNeighborhood
	KindEstimate     = pipeline.KindEstimate
	KindFilter       = pipeline.KindFilter
	KindRank         = pipeline.KindRank
	KindSink         = pipeline.KindSink
)
