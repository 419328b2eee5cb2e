package dsl

import (
	"testing"

	"github.com/rushteam/itemcf/core"
	"github.com/rushteam/itemcf/pkg/utils"
)

func TestEvaluate(t *testing.T) {
	cand := core.NewCandidate(7, 0.85)
	cand.PutLabel("score_source", utils.Label{Value: "itemcf", Source: "estimate"})

	profile := core.NewItemProfile(7)
	profile.Title = "Heat (1995)"
	profile.Genres = []string{"Action", "Crime", "Thriller"}
	profile.MeanRating = 3.9

	input := CandidateInput(42, cand, profile)

	tests := []struct {
		name string
		expr string
		want bool
	}{
		{name: "score gt", expr: "item.score > 0.7", want: true},
		{name: "score lt", expr: "item.score < 0.7", want: false},
		{name: "genre membership", expr: `"Crime" in item.genres`, want: true},
		{name: "title contains", expr: `item.title.contains("1995")`, want: true},
		{name: "mean rating", expr: "item.mean_rating >= 3.5", want: true},
		{name: "label shorthand", expr: `label.score_source == "itemcf"`, want: true},
		{name: "label detail", expr: `item.labels.score_source.source == "estimate"`, want: true},
		{name: "user id", expr: "user.id == 42", want: true},
		{name: "combined", expr: `item.score > 0.5 && !("Horror" in item.genres)`, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEval(tt.expr)
			if err != nil {
				t.Fatalf("NewEval(%q) error = %v", tt.expr, err)
			}
			got, err := e.Evaluate(input)
			if err != nil {
				t.Fatalf("Evaluate() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Evaluate(%q) = %v, want %v", tt.expr, got, tt.want)
			}
		})
	}
}

func TestEvaluateWithoutProfile(t *testing.T) {
	input := CandidateInput(1, core.NewCandidate(7, 0.3), nil)

	e, err := NewEval("item.score < 0.5")
	if err != nil {
		t.Fatal(err)
	}
	got, err := e.Evaluate(input)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if !got {
		t.Error("Evaluate() = false, want true")
	}
}

func TestEvaluateErrors(t *testing.T) {
	if _, err := NewEval("item.score >"); err == nil {
		t.Error("invalid expression: expected compile error, got nil")
	}

	// 非布尔结果
	e, err := NewEval("item.score + 1.0")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := e.Evaluate(CandidateInput(1, core.NewCandidate(7, 0.3), nil)); err == nil {
		t.Error("non-boolean expression: expected error, got nil")
	}
}
