// Package builders 在 init 中注册全部内置 Stage 的配置构建器。
// 配置驱动的入口需要空白导入本包：import _ "github.com/rushteam/itemcf/config/builders"
package builders

import (
	"fmt"

	"github.com/rushteam/itemcf/cf"
	"github.com/rushteam/itemcf/config"
	"github.com/rushteam/itemcf/filter"
	"github.com/rushteam/itemcf/pipeline"
	"github.com/rushteam/itemcf/pkg/conv"
	"github.com/rushteam/itemcf/store"
)

func init() {
	config.Register("cf.profile", BuildProfileStage)
	config.Register("cf.similarity", BuildSimilarityStage)
	config.Register("cf.neighborhood", BuildNeighborhoodStage)
	config.Register("cf.estimate", BuildEstimateStage)
	config.Register("cf.rank", BuildRankStage)
	config.Register("cf.sink", BuildSinkStage)
	config.Register("filter", BuildFilterStage)
}

func BuildProfileStage(_ map[string]any) (pipeline.Stage, error) {
	return &cf.ProfileStage{}, nil
}

func BuildSimilarityStage(cfg map[string]any) (pipeline.Stage, error) {
	return &cf.SimilarityStage{
		Workers: conv.ConfigGetInt(cfg, "workers", 0),
	}, nil
}

func BuildNeighborhoodStage(_ map[string]any) (pipeline.Stage, error) {
	return &cf.NeighborhoodStage{}, nil
}

func BuildEstimateStage(_ map[string]any) (pipeline.Stage, error) {
	return &cf.EstimateStage{}, nil
}

func BuildRankStage(_ map[string]any) (pipeline.Stage, error) {
	return &cf.RankStage{}, nil
}

// BuildSinkStage 根据配置构建落库 Stage。
//
//	type: cf.sink
//	config:
//	  backend: memory | redis
//	  addr: "127.0.0.1:6379"   # redis
//	  db: 0                    # redis
//	  key_prefix: rec
//	  with_estimates: true
func BuildSinkStage(cfg map[string]any) (pipeline.Stage, error) {
	backend := conv.ConfigGet(cfg, "backend", "memory")

	var sink *cf.StoreSink
	switch backend {
	case "memory":
		sink = cf.NewStoreSink(store.NewMemoryStore(), conv.ConfigGet(cfg, "key_prefix", ""))
	case "redis":
		addr := conv.ConfigGet(cfg, "addr", "")
		if addr == "" {
			return nil, fmt.Errorf("cf.sink: redis backend requires addr")
		}
		rs, err := store.NewRedisStore(addr, conv.ConfigGetInt(cfg, "db", 0))
		if err != nil {
			return nil, fmt.Errorf("cf.sink: connect redis: %w", err)
		}
		sink = cf.NewStoreSink(rs, conv.ConfigGet(cfg, "key_prefix", ""))
	default:
		return nil, fmt.Errorf("cf.sink: unknown backend %q", backend)
	}

	return &cf.SinkStage{
		Sink:          sink,
		WithEstimates: conv.ConfigGet(cfg, "with_estimates", false),
	}, nil
}

// BuildFilterStage 根据配置构建过滤 Stage。
//
//	type: filter
//	config:
//	  blacklist: [101, 102]
//	  expr: '"Horror" in item.genres'
//
// 需要存储后端的过滤器（store 黑名单、用户拉黑）不从配置构建，代码里组装。
func BuildFilterStage(cfg map[string]any) (pipeline.Stage, error) {
	var filters []filter.Filter

	if ids := conv.SliceAnyToInt64(cfg["blacklist"]); len(ids) > 0 {
		filters = append(filters, filter.NewBlacklistFilter(ids, nil, ""))
	}

	if expr := conv.ConfigGet(cfg, "expr", ""); expr != "" {
		f, err := filter.NewExprFilter(expr)
		if err != nil {
			return nil, fmt.Errorf("filter: %w", err)
		}
		filters = append(filters, f)
	}

	return &filter.Stage{Filters: filters}, nil
}
