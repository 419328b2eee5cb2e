package core

// 默认配置常量：与流水线的历史行为保持一致。
const (
	// DefaultNeighborhoodSize 是默认邻域大小 K。
	DefaultNeighborhoodSize = 5

	// DefaultRecommendationCount 是每个用户默认的推荐条数 N。
	DefaultRecommendationCount = 5
)

// Params 是流水线的运行参数。
//
// 设计原则：
//   - 显式传参，不使用包级可变状态，允许多条流水线并发跑不同参数
//   - 零值经 Normalize 补齐为默认值
type Params struct {
	// NeighborhoodSize 是邻域选择的 K。
	// 注意：评分估计的分母也使用该常量（|R| × NeighborhoodSize），
	// 当 |R| < NeighborhoodSize 时估计值被系统性压低，这是刻意保留的历史行为。
	NeighborhoodSize int

	// RecommendationCount 是每个用户最终推荐列表的上限 N。
	RecommendationCount int

	// SimilarityWorkers 是相似度计算的并发 worker 数；<= 1 时走串行实现。
	SimilarityWorkers int
}

// Normalize 返回一份补齐了默认值的参数副本。
func (p Params) Normalize() Params {
	if p.NeighborhoodSize <= 0 {
		p.NeighborhoodSize = DefaultNeighborhoodSize
	}
	if p.RecommendationCount <= 0 {
		p.RecommendationCount = DefaultRecommendationCount
	}
	return p
}

// DefaultParams 返回默认参数（K=5, N=5，串行相似度）。
func DefaultParams() Params {
	return Params{}.Normalize()
}
