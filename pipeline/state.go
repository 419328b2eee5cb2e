package pipeline

import (
	"github.com/rushteam/itemcf/core"
)

// State 承载一次批处理运行的输入与各阶段物化的产物，贯穿整条流水线。
//
// 数据严格从左到右流动：每个字段由且仅由一个 Stage 产出，产出后视为
// 只读，后续 Stage 不回写前面的实体。
type State struct {
	// 输入：由外部数据读取层解析好的原始记录
	Movies  []core.MovieRecord
	Ratings []core.RatingRecord
	Links   []core.LinkRecord
	Tags    []core.TagRecord

	// Params 是本次运行的参数（K / N / 并发度），显式携带而非包级状态
	Params core.Params

	// 各阶段产物，按产出顺序排列
	Profiles        core.ItemProfiles
	Scores          core.SimilarityScores
	Neighborhoods   core.Neighborhoods
	Estimates       core.EstimatedRatings
	Recommendations core.Recommendations
}

// NewState 创建一次运行的初始 State。
func NewState(
	movies []core.MovieRecord,
	ratings []core.RatingRecord,
	links []core.LinkRecord,
	tags []core.TagRecord,
	params core.Params,
) *State {
	return &State{
		Movies:  movies,
		Ratings: ratings,
		Links:   links,
		Tags:    tags,
		Params:  params.Normalize(),
	}
}
