package dsl

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/rushteam/itemcf/core"
)

var (
	// celEnv 是全局的 CEL 环境，线程安全，可复用
	celEnv     *cel.Env
	celEnvOnce sync.Once
)

// initCELEnv 初始化 CEL 环境，定义变量
func initCELEnv() (*cel.Env, error) {
	env, err := cel.NewEnv(
		cel.Variable("item", cel.DynType),
		cel.Variable("label", cel.DynType),
		cel.Variable("user", cel.DynType),
	)
	return env, err
}

// getCELEnv 获取或创建 CEL 环境
func getCELEnv() (*cel.Env, error) {
	var err error
	celEnvOnce.Do(func() {
		celEnv, err = initCELEnv()
	})
	return celEnv, err
}

// Eval 是候选过滤 DSL 解释器，使用 CEL (Common Expression Language) 实现。
// CEL 是 Google 开发的表达式语言，具有类型安全、高性能、线程安全等特性。
//
// 表达式语法（CEL 标准语法）：
//   - 数值：item.score > 0.7 / item.mean_rating >= 3.5
//   - 属性：item.title.contains("1995") / "Comedy" in item.genres
//   - 标签：label.score_source == "itemcf" / label.filtered != null
//   - 逻辑：item.score > 0.5 && !("Horror" in item.genres)
//   - 用户：user.id == 42
//
// 批处理中同一个表达式要对每个用户的每个候选求值，因此表达式在 NewEval
// 时编译一次，之后可并发调用 Evaluate。
type Eval struct {
	env *cel.Env
	prg cel.Program
}

// NewEval 编译一个 DSL 表达式并返回可复用的解释器。
func NewEval(expr string) (*Eval, error) {
	env, err := getCELEnv()
	if err != nil {
		return nil, fmt.Errorf("cel env: %w", err)
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile error: %v", issues.Err())
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program error: %v", err)
	}

	return &Eval{env: env, prg: prg}, nil
}

// Evaluate 执行表达式，返回布尔结果。
// 注意：CEL 访问不存在的 key 会报错，存在性检查用 label.key != null。
func (e *Eval) Evaluate(input map[string]any) (bool, error) {
	out, _, err := e.prg.Eval(input)
	if err != nil {
		return false, fmt.Errorf("eval error: %v", err)
	}

	result, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("expression must return boolean, got %T", out.Value())
	}

	return result, nil
}

// CandidateInput 为一个候选构建 CEL 表达式的输入数据。
// profile 可为 nil（此时 item 只有 id/score/labels）。
func CandidateInput(userID int64, cand *core.Candidate, profile *core.ItemProfile) map[string]any {
	labels := make(map[string]any, len(cand.Labels))
	labelAccessor := make(map[string]any, len(cand.Labels))
	for k, v := range cand.Labels {
		labels[k] = map[string]any{
			"value":  v.Value,
			"source": v.Source,
		}
		// label.score_source 直接取 value，兼容简写
		labelAccessor[k] = v.Value
	}

	item := map[string]any{
		"id":     cand.ID,
		"score":  cand.Score,
		"labels": labels,
	}
	if profile != nil {
		item["title"] = profile.Title
		item["genres"] = profile.Genres
		item["tags"] = profile.Tags
		item["mean_rating"] = profile.MeanRating
	}

	return map[string]any{
		"item":  item,
		"label": labelAccessor,
		"user":  map[string]any{"id": userID},
	}
}
