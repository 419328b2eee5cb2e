package cf

import (
	"sort"

	"github.com/rushteam/itemcf/core"
	"github.com/rushteam/itemcf/pkg/utils"
)

// RankRecommendations 把每个用户的预测评分排成最终推荐列表。
//
// 规则：
//   - 按预测评分降序排列，截断到前 n 个
//   - 与邻域选择不同，这里不做边界同分扩容：恰好排在第 n 名之后的同分
//     物品被无声丢弃。这个不对称是刻意保留的既有行为，不是缺陷
//   - 截断后的结果按物品 id 升序重排后输出
func RankRecommendations(estimates core.EstimatedRatings, n int) core.Recommendations {
	recommendations := make(core.Recommendations, len(estimates))

	for userID, userEst := range estimates {
		candidates := UserCandidates(userEst)

		if len(candidates) > n {
			candidates = candidates[:n]
		}

		ids := make([]int64, 0, len(candidates))
		for _, c := range candidates {
			ids = append(ids, c.ID)
		}
		sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })
		recommendations[userID] = ids
	}

	return recommendations
}

// UserCandidates 把单个用户的预测评分转成按分数降序的候选列表。
// 候选带上估计来源标签，供过滤/解释链路使用；同分时按 id 升序保证确定性。
func UserCandidates(userEstimates map[int64]float64) []*core.Candidate {
	candidates := make([]*core.Candidate, 0, len(userEstimates))
	for itemID, score := range userEstimates {
		c := core.NewCandidate(itemID, score)
		c.PutLabel("score_source", utils.Label{Value: "itemcf", Source: "estimate"})
		candidates = append(candidates, c)
	}
	sort.Slice(candidates, func(a, b int) bool {
		if candidates[a].Score != candidates[b].Score {
			return candidates[a].Score > candidates[b].Score
		}
		return candidates[a].ID < candidates[b].ID
	})
	return candidates
}
