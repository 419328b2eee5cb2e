package core

// ItemProfile 是单个物品的画像：评分分布 + 描述性属性。
//
// 构建约定：
//   - Ratings 在画像构建阶段一次性灌入（userID -> 评分，单用户唯一）
//   - MeanRating 在所有评分插入完成后计算一次，之后不再更新
//   - Tags 保留重复（同一标签被多个用户打过多少次就出现多少次）
//   - 零评分 / 零标签是合法的稀疏画像，不视为错误
type ItemProfile struct {
	ID     int64
	Title  string
	Genres []string
	Tags   []string

	// Ratings 是 userID -> 评分值
	Ratings map[int64]float64

	// MeanRating 是 Ratings 的算术平均；无评分时为 0.0，
	// 此时中心化后的所有差值都是 0，相似度贡献自然为中性。
	MeanRating float64

	// IMDBID / TMDBID 是外部交叉引用，核心算法不消费
	IMDBID string
	TMDBID string
}

// NewItemProfile 创建一个空画像。
func NewItemProfile(id int64) *ItemProfile {
	return &ItemProfile{
		ID:      id,
		Ratings: make(map[int64]float64),
	}
}

// ItemProfiles 是 itemID -> 画像。
type ItemProfiles = map[int64]*ItemProfile

// SimilarityScores 是有向存储的物品两两相似度表：scores[i][j] ∈ [-1, 1]。
// 概念上 scores[i][j] == scores[j][i]，但两个方向独立存储；不含对角线
// （物品从不是自己的邻居）。无共同评分用户的物品对相似度恒为 0.0（有定义，非 NaN）。
type SimilarityScores = map[int64]map[int64]float64

// Neighborhoods 是 itemID -> 邻域（最相似物品的 id 列表）。
// 列表按 id 升序存储而非按相似度排序；截断边界上的同分候选会被一并纳入，
// 因此长度可能超过配置的 K。下游不得假定列表保留相似度顺序。
type Neighborhoods = map[int64][]int64

// EstimatedRatings 是 userID -> itemID -> 预测评分。
// 只为"邻域中存在该用户评过分的物品"的 (user, item) 对填充；无法估计的对缺席。
type EstimatedRatings = map[int64]map[int64]float64

// Recommendations 是 userID -> 推荐物品 id 列表（升序，长度 ≤ 配置的 N）。
type Recommendations = map[int64][]int64
