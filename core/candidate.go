package core

import "github.com/rushteam/itemcf/pkg/utils"

// Candidate 是排序/过滤链路中的承载结构：一个带预测评分的候选物品。
// Labels 用于解释与观测（估计来源、过滤原因）；Score 用于排序决策。
type Candidate struct {
	ID     int64
	Score  float64
	Labels map[string]utils.Label
}

func NewCandidate(id int64, score float64) *Candidate {
	return &Candidate{
		ID:     id,
		Score:  score,
		Labels: make(map[string]utils.Label),
	}
}

// PutLabel 写入 Label；若已存在同名 key，则按默认 Merge 规则累积。
func (c *Candidate) PutLabel(key string, lbl utils.Label) {
	if c.Labels == nil {
		c.Labels = make(map[string]utils.Label)
	}
	if old, ok := c.Labels[key]; ok {
		c.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	c.Labels[key] = lbl
}
