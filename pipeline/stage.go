package pipeline

import (
	"context"
)

// Kind 用于标记 Stage 类型，方便观测/治理/编排（例如按阶段打点）。
type Kind string

const (
	KindProfile      Kind = "profile"      // 画像构建：原始记录 -> 物品画像
	KindSimilarity   Kind = "similarity"   // 相似度计算：画像 -> 两两相似度表
	KindNeighborhood Kind = "neighborhood" // 邻域选择：相似度表 -> TopK 邻域
	KindEstimate     Kind = "estimate"     // 评分估计：画像 + 邻域 -> 预测评分
	KindFilter       Kind = "filter"       // 过滤阶段：剔除不符合约束的候选
	KindRank         Kind = "rank"         // 排序阶段：预测评分 -> 每用户 TopN 推荐
	KindSink         Kind = "sink"         // 落库阶段：推荐结果写入存储
)

// Stage 是批处理流水线的最小可扩展单元。
// 统一采用"读 State、物化产物、写回 State"的形态：每个 Stage 完整跑完
// 并写回自己的产物后，下一个 Stage 才开始，阶段之间只通过 State 中的
// 不可变实体通信。
type Stage interface {
	Name() string
	Kind() Kind

	Process(ctx context.Context, st *State) error
}
