package pipeline

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rushteam/itemcf/core"
)

// Config 是一次批处理运行的配置结构（支持 YAML/JSON）。
type Config struct {
	Pipeline struct {
		Name   string        `yaml:"name" json:"name"`
		Params ParamsConfig  `yaml:"params" json:"params"`
		Stages []StageConfig `yaml:"stages" json:"stages"`
	} `yaml:"pipeline" json:"pipeline"`
}

// ParamsConfig 是运行参数的配置形态（零值走 core 默认值）。
type ParamsConfig struct {
	NeighborhoodSize    int `yaml:"neighborhood_size" json:"neighborhood_size"`
	RecommendationCount int `yaml:"recommendation_count" json:"recommendation_count"`
	SimilarityWorkers   int `yaml:"similarity_workers" json:"similarity_workers"`
}

// Params 转换为 core.Params 并补齐默认值。
func (p ParamsConfig) Params() core.Params {
	return core.Params{
		NeighborhoodSize:    p.NeighborhoodSize,
		RecommendationCount: p.RecommendationCount,
		SimilarityWorkers:   p.SimilarityWorkers,
	}.Normalize()
}

// StageConfig 是单个 Stage 的配置。
type StageConfig struct {
	Type   string         `yaml:"type" json:"type"`     // cf.profile / cf.similarity / filter / cf.sink 等
	Config map[string]any `yaml:"config" json:"config"` // Stage 特定配置
}

// LoadFromYAML 从 YAML 文件加载运行配置。
func LoadFromYAML(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	return &cfg, nil
}

// LoadFromJSON 从 JSON 文件加载运行配置。
func LoadFromJSON(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}

	return &cfg, nil
}

// BuildPipeline 根据配置构建 Pipeline（需要 StageFactory 注册 Stage 构建器）。
// 注意：factory 应该在独立的 config 包中，避免循环依赖。
func (c *Config) BuildPipeline(factory *StageFactory) (*Pipeline, error) {
	stages := make([]Stage, 0, len(c.Pipeline.Stages))

	for _, sc := range c.Pipeline.Stages {
		stage, err := factory.Build(sc.Type, sc.Config)
		if err != nil {
			return nil, fmt.Errorf("build stage %s: %w", sc.Type, err)
		}
		stages = append(stages, stage)
	}

	return &Pipeline{Stages: stages}, nil
}

// StageBuilder 根据 config 构建 Stage。
type StageBuilder = func(map[string]any) (Stage, error)

// StageFactory 用于根据配置构建 Stage 实例。
type StageFactory struct {
	builders map[string]StageBuilder
}

func NewStageFactory() *StageFactory {
	return &StageFactory{
		builders: make(map[string]StageBuilder),
	}
}

// Register 注册 Stage 构建器。
func (f *StageFactory) Register(stageType string, builder StageBuilder) {
	f.builders[stageType] = builder
}

// Build 根据类型和配置构建 Stage。
func (f *StageFactory) Build(stageType string, config map[string]any) (Stage, error) {
	builder, ok := f.builders[stageType]
	if !ok {
		return nil, fmt.Errorf("unknown stage type: %s", stageType)
	}
	return builder(config)
}
