package cf

import (
	"context"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/rushteam/itemcf/core"
)

// ComputeScores 计算全量物品两两的中心化余弦相似度（有向存储，不含对角线）。
//
// 复杂度 Θ(|items|² × 平均共同评分用户数)，是整条流水线的主要开销；
// 为了保证精确性不做任何近似或提前剪枝。累加一律按用户 id 升序进行，
// 浮点求和顺序固定，串行/并发/多次运行逐位一致。
func ComputeScores(profiles core.ItemProfiles) core.SimilarityScores {
	vectors, ids := buildVectors(profiles)

	scores := make(core.SimilarityScores, len(ids))
	for _, i := range ids {
		row := make(map[int64]float64, len(ids)-1)
		for _, j := range ids {
			if i == j {
				continue
			}
			row[j] = cosineSimilarity(vectors[i], vectors[j])
		}
		scores[i] = row
	}
	return scores
}

// ComputeScoresParallel 是 ComputeScores 的并发版本：按外层物品分片给
// workers 个 worker，每个 worker 只写自己分片内预分配好的行（固定下标表，
// 无共享可增长容器），结果与串行版本逐位一致。
//
// 计算本身是纯函数、无副作用，worker 失败无需重试语义；ctx 取消时返回 ctx.Err()。
func ComputeScoresParallel(ctx context.Context, profiles core.ItemProfiles, workers int) (core.SimilarityScores, error) {
	if workers <= 1 {
		return ComputeScores(profiles), nil
	}

	vectors, ids := buildVectors(profiles)

	// 行先全部预分配，worker 之间不碰同一行
	scores := make(core.SimilarityScores, len(ids))
	for _, id := range ids {
		scores[id] = make(map[int64]float64, len(ids)-1)
	}

	eg, ctx := errgroup.WithContext(ctx)

	for w := 0; w < workers; w++ {
		shard := w
		eg.Go(func() error {
			for idx := shard; idx < len(ids); idx += workers {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				i := ids[idx]
				row := scores[i]
				for _, j := range ids {
					if i == j {
						continue
					}
					row[j] = cosineSimilarity(vectors[i], vectors[j])
				}
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return scores, nil
}

// itemVector 是为相似度计算预处理过的物品评分向量。
// users 按升序排列，length 是中心化后的欧氏长度（对所有评分用户累加，
// 与具体配对无关，所以整表只算一次）。
type itemVector struct {
	ratings map[int64]float64
	mean    float64
	users   []int64
	length  float64
}

// buildVectors 把画像预处理成向量，并返回按升序排列的物品 id 列表。
func buildVectors(profiles core.ItemProfiles) (map[int64]*itemVector, []int64) {
	vectors := make(map[int64]*itemVector, len(profiles))
	ids := make([]int64, 0, len(profiles))

	for id, p := range profiles {
		users := make([]int64, 0, len(p.Ratings))
		for u := range p.Ratings {
			users = append(users, u)
		}
		sort.Slice(users, func(a, b int) bool { return users[a] < users[b] })

		var sq float64
		for _, u := range users {
			d := p.Ratings[u] - p.MeanRating
			sq += d * d
		}

		vectors[id] = &itemVector{
			ratings: p.Ratings,
			mean:    p.MeanRating,
			users:   users,
			length:  math.Sqrt(sq),
		}
		ids = append(ids, id)
	}

	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })
	return vectors, ids
}

// cosineSimilarity 计算两个物品向量的中心化余弦相似度。
//
// 约定（与历史行为逐位对齐）：
//   - 分子只在共同评分用户集合上累加：(r_a[u]-mean_a)×(r_b[u]-mean_b)
//   - 分母的欧氏长度在"各自全部评分用户"上累加，不限于共同集合
//   - 无共同评分用户 → 0.0（有定义，不是错误，不是 NaN）
//   - 任一侧长度为 0（单条评分 / 零方差）→ 0.0
//
// 结果在浮点误差内落于 [-1, 1]。
func cosineSimilarity(a, b *itemVector) float64 {
	// 遍历较小的一侧找共同用户
	small, large := a, b
	if len(b.users) < len(a.users) {
		small, large = b, a
	}

	var dot float64
	common := false
	for _, u := range small.users {
		rl, ok := large.ratings[u]
		if !ok {
			continue
		}
		common = true
		dot += (small.ratings[u] - small.mean) * (rl - large.mean)
	}
	if !common {
		return 0.0
	}

	denom := a.length * b.length
	if denom == 0.0 {
		return 0.0
	}
	return dot / denom
}
