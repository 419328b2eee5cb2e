package pipeline

import (
	"context"
)

// Pipeline 是批处理的核心抽象：把推荐计算拆成可组合的 Stage 链。
type Pipeline struct {
	Stages []Stage
}

// Run 按序执行全部 Stage。任一 Stage 出错即中止并返回该错误；
// State 中已物化的前序产物保持可读，便于调用方诊断。
func (p *Pipeline) Run(ctx context.Context, st *State) error {
	for _, stage := range p.Stages {
		if err := stage.Process(ctx, st); err != nil {
			return err
		}
	}
	return nil
}
