package filter

import (
	"context"

	"github.com/rushteam/itemcf/core"
	"github.com/rushteam/itemcf/pkg/dsl"
)

// ExprFilter 是表达式过滤器：用 CEL 表达式描述"什么候选应该被过滤"。
// 表达式可访问 item（id/score/title/genres/tags/mean_rating）、label、user。
//
// 示例：
//   - `"Horror" in item.genres` → 过滤恐怖片
//   - `item.score < 0.2` → 过滤低预测分候选
//   - `item.title.contains("(1995)")` → 过滤 1995 年的片子
type ExprFilter struct {
	// Expr 是 CEL 表达式，求值为 true 的候选被过滤
	Expr string

	eval *dsl.Eval
}

// NewExprFilter 编译表达式并创建过滤器；表达式非法时返回错误。
func NewExprFilter(expr string) (*ExprFilter, error) {
	eval, err := dsl.NewEval(expr)
	if err != nil {
		return nil, err
	}
	return &ExprFilter{Expr: expr, eval: eval}, nil
}

func (f *ExprFilter) Name() string {
	return "filter.expr"
}

func (f *ExprFilter) ShouldFilter(
	_ context.Context,
	userID int64,
	cand *core.Candidate,
	profile *core.ItemProfile,
) (bool, error) {
	if cand == nil {
		return true, nil
	}
	if f.eval == nil {
		return false, nil
	}
	return f.eval.Evaluate(dsl.CandidateInput(userID, cand, profile))
}
