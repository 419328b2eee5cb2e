package cf

import (
	"github.com/rushteam/itemcf/core"
)

// EstimateRatings 基于邻域为每个 (user, item) 对预测评分。
//
// 对每个有邻域的物品 i、每个评过 i 的用户 u（每对至多估计一次）：
//   - R = N(i) 中 u 也评过分的物品子集
//   - 估计值 = Σ(u 对 R 中物品的评分) / (|R| × params.NeighborhoodSize)
//
// 分母刻意用 |R| 乘配置常量 NeighborhoodSize，而不是 |R| 本身，也不是
// 邻域的实际长度（同分扩容后可能超过 K）：|R| < NeighborhoodSize 时估计值
// 被系统性压低。这是需要逐位对齐的历史行为，不要"修正"。
//
// 退化条件：任何一个可达的 (user, item) 对出现 R 为空时，整轮估计立即
// 短路，返回 (nil, core.ErrNoEstimableNeighbor)——全局失败而非局部跳过。
// 调用方用 core.IsNoEstimableNeighbor 识别并决定如何降级。
func EstimateRatings(
	profiles core.ItemProfiles,
	neighborhoods core.Neighborhoods,
	params core.Params,
) (core.EstimatedRatings, error) {
	params = params.Normalize()
	estimates := make(core.EstimatedRatings)

	for itemID, profile := range profiles {
		neighbors, ok := neighborhoods[itemID]
		if !ok {
			continue
		}
		for userID := range profile.Ratings {
			userEst, ok := estimates[userID]
			if !ok {
				userEst = make(map[int64]float64)
				estimates[userID] = userEst
			}
			if _, done := userEst[itemID]; done {
				continue
			}

			var sum float64
			rated := 0
			for _, n := range neighbors {
				np, ok := profiles[n]
				if !ok {
					continue
				}
				if v, ok := np.Ratings[userID]; ok {
					sum += v
					rated++
				}
			}
			if rated == 0 {
				return nil, core.ErrNoEstimableNeighbor
			}

			userEst[itemID] = sum / float64(rated*params.NeighborhoodSize)
		}
	}

	return estimates, nil
}
