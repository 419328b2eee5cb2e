package cf

import (
	"sort"

	"github.com/rushteam/itemcf/core"
)

// SelectNeighborhoods 为每个物品选出 TopK 最相似物品作为邻域。
//
// 选择规则：
//   - 候选按相似度降序排列，取前 K 个
//   - 若第 K 名之后存在与第 K 名同分的候选，一并纳入（边界同分扩容），
//     因此邻域长度可以超过 K
//   - 最终结果按物品 id 升序重排后存储——存储顺序是 id 序而非相似度序，
//     下游不得假定相似度顺序被保留
//
// 物品从不是自己的邻居（相似度表本身不含对角线）。
func SelectNeighborhoods(scores core.SimilarityScores, k int) core.Neighborhoods {
	neighborhoods := make(core.Neighborhoods, len(scores))

	for itemID, row := range scores {
		type candidate struct {
			id    int64
			score float64
		}
		candidates := make([]candidate, 0, len(row))
		for id, s := range row {
			candidates = append(candidates, candidate{id: id, score: s})
		}
		// 同分次序不影响结果（边界同分会整组纳入），id 升序仅为确定性
		sort.Slice(candidates, func(a, b int) bool {
			if candidates[a].score != candidates[b].score {
				return candidates[a].score > candidates[b].score
			}
			return candidates[a].id < candidates[b].id
		})

		n := len(candidates)
		if n > k {
			n = k
		}
		selected := make([]int64, 0, n)
		for _, c := range candidates[:n] {
			selected = append(selected, c.id)
		}

		// 边界同分扩容：与第 K 名同分的后续候选全部纳入
		if len(candidates) > k && k > 0 {
			boundary := candidates[k-1].score
			for _, c := range candidates[k:] {
				if c.score != boundary {
					break
				}
				selected = append(selected, c.id)
			}
		}

		sort.Slice(selected, func(a, b int) bool { return selected[a] < selected[b] })
		neighborhoods[itemID] = selected
	}

	return neighborhoods
}
