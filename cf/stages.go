package cf

import (
	"context"

	"github.com/rushteam/itemcf/pipeline"
)

// 本文件把 cf 包的纯函数包装成 pipeline.Stage，供配置驱动/编排使用。
// 直接调用纯函数与经由 Stage 链执行结果一致。

// ProfileStage 执行画像构建：State 输入记录 -> State.Profiles。
type ProfileStage struct{}

func (s *ProfileStage) Name() string        { return "cf.profile" }
func (s *ProfileStage) Kind() pipeline.Kind { return pipeline.KindProfile }

func (s *ProfileStage) Process(_ context.Context, st *pipeline.State) error {
	st.Profiles = BuildProfiles(st.Movies, st.Ratings, st.Tags)
	AttachLinks(st.Profiles, st.Links)
	return nil
}

// SimilarityStage 执行相似度计算：State.Profiles -> State.Scores。
// Workers > 1 时走并发实现；结果与串行逐值一致。
type SimilarityStage struct {
	// Workers 覆盖 State.Params.SimilarityWorkers；0 表示用 Params 里的值
	Workers int
}

func (s *SimilarityStage) Name() string        { return "cf.similarity" }
func (s *SimilarityStage) Kind() pipeline.Kind { return pipeline.KindSimilarity }

func (s *SimilarityStage) Process(ctx context.Context, st *pipeline.State) error {
	workers := s.Workers
	if workers == 0 {
		workers = st.Params.SimilarityWorkers
	}
	scores, err := ComputeScoresParallel(ctx, st.Profiles, workers)
	if err != nil {
		return err
	}
	st.Scores = scores
	return nil
}

// NeighborhoodStage 执行邻域选择：State.Scores -> State.Neighborhoods。
type NeighborhoodStage struct{}

func (s *NeighborhoodStage) Name() string        { return "cf.neighborhood" }
func (s *NeighborhoodStage) Kind() pipeline.Kind { return pipeline.KindNeighborhood }

func (s *NeighborhoodStage) Process(_ context.Context, st *pipeline.State) error {
	st.Neighborhoods = SelectNeighborhoods(st.Scores, st.Params.NeighborhoodSize)
	return nil
}

// EstimateStage 执行评分估计：State.Profiles + State.Neighborhoods -> State.Estimates。
// 遇到退化条件时返回 core.ErrNoEstimableNeighbor，整条流水线中止。
type EstimateStage struct{}

func (s *EstimateStage) Name() string        { return "cf.estimate" }
func (s *EstimateStage) Kind() pipeline.Kind { return pipeline.KindEstimate }

func (s *EstimateStage) Process(_ context.Context, st *pipeline.State) error {
	estimates, err := EstimateRatings(st.Profiles, st.Neighborhoods, st.Params)
	if err != nil {
		return err
	}
	st.Estimates = estimates
	return nil
}

// RankStage 执行推荐排序：State.Estimates -> State.Recommendations。
type RankStage struct{}

func (s *RankStage) Name() string        { return "cf.rank" }
func (s *RankStage) Kind() pipeline.Kind { return pipeline.KindRank }

func (s *RankStage) Process(_ context.Context, st *pipeline.State) error {
	st.Recommendations = RankRecommendations(st.Estimates, st.Params.RecommendationCount)
	return nil
}

// SinkStage 把最终推荐结果写入存储：State.Recommendations -> Sink。
type SinkStage struct {
	Sink *StoreSink

	// WithEstimates 为 true 时额外落预测评分的有序集合（需要 KeyValueStore 后端）
	WithEstimates bool
}

func (s *SinkStage) Name() string        { return "cf.sink" }
func (s *SinkStage) Kind() pipeline.Kind { return pipeline.KindSink }

func (s *SinkStage) Process(ctx context.Context, st *pipeline.State) error {
	if s.Sink == nil {
		return nil
	}
	if err := s.Sink.SaveRecommendations(ctx, st.Recommendations); err != nil {
		return err
	}
	if s.WithEstimates {
		return s.Sink.SaveEstimates(ctx, st.Estimates)
	}
	return nil
}

// DefaultStages 返回标准五阶段链（画像 → 相似度 → 邻域 → 估计 → 排序）。
func DefaultStages() []pipeline.Stage {
	return []pipeline.Stage{
		&ProfileStage{},
		&SimilarityStage{},
		&NeighborhoodStage{},
		&EstimateStage{},
		&RankStage{},
	}
}
