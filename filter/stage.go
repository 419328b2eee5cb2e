package filter

import (
	"context"

	"github.com/rushteam/itemcf/cf"
	"github.com/rushteam/itemcf/core"
	"github.com/rushteam/itemcf/pipeline"
	"github.com/rushteam/itemcf/pkg/utils"
)

// Stage 是过滤 Stage，在评分估计之后、最终排序之前对每个用户的候选做过滤。
// 可以组合多个过滤器：任何一个过滤器返回 true，该候选就会被过滤掉。
//
// 不配置 Stage 时流水线语义与纯五阶段完全一致；某用户的候选被全部过滤时
// 该用户从估计结果中移除（最终输出不会出现空推荐行）。
type Stage struct {
	Filters []Filter
}

func (s *Stage) Name() string {
	return "filter.stage"
}

func (s *Stage) Kind() pipeline.Kind {
	return pipeline.KindFilter
}

func (s *Stage) Process(ctx context.Context, st *pipeline.State) error {
	if len(s.Filters) == 0 || len(st.Estimates) == 0 {
		return nil
	}

	filtered := make(core.EstimatedRatings, len(st.Estimates))

	for userID, userEst := range st.Estimates {
		kept := make(map[int64]float64, len(userEst))

		for _, cand := range cf.UserCandidates(userEst) {
			var profile *core.ItemProfile
			if st.Profiles != nil {
				profile = st.Profiles[cand.ID]
			}

			shouldFilter := false
			filterReason := ""
			for _, f := range s.Filters {
				ok, err := f.ShouldFilter(ctx, userID, cand, profile)
				if err != nil {
					// 过滤器出错不中断流程，但在候选上留痕，配置错误可观测
					cand.PutLabel("filter_error", utils.Label{
						Value:  err.Error(),
						Source: f.Name(),
					})
					continue
				}
				if ok {
					shouldFilter = true
					filterReason = f.Name()
					break
				}
			}

			if shouldFilter {
				// 记录过滤原因（用于调试/观测）
				cand.PutLabel("filtered", utils.Label{
					Value:  "true",
					Source: filterReason,
				})
				continue
			}
			kept[cand.ID] = cand.Score
		}

		if len(kept) > 0 {
			filtered[userID] = kept
		}
	}

	st.Estimates = filtered
	return nil
}
