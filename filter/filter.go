package filter

import (
	"context"

	"github.com/rushteam/itemcf/core"
)

// Filter 是过滤器的抽象接口，用于判断一个候选是否应该被过滤掉。
// 返回 true 表示应该过滤（移除），false 表示保留。
//
// profile 是候选物品的画像，可为 nil（画像缺失时过滤器自行决定语义）。
type Filter interface {
	// Name 返回过滤器名称
	Name() string

	// ShouldFilter 判断候选是否应该被过滤
	ShouldFilter(ctx context.Context, userID int64, cand *core.Candidate, profile *core.ItemProfile) (bool, error)
}
