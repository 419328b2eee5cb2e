package cf

import (
	"context"
	"reflect"
	"testing"

	"github.com/rushteam/itemcf/core"
	"github.com/rushteam/itemcf/store"
)

func TestStoreSinkRoundTrip(t *testing.T) {
	ctx := context.Background()
	ms := store.NewMemoryStore()
	defer ms.Close()
	sink := NewStoreSink(ms, "rec")

	recs := core.Recommendations{
		1: {10, 20, 30},
		2: {15},
	}
	if err := sink.SaveRecommendations(ctx, recs); err != nil {
		t.Fatalf("SaveRecommendations() error = %v", err)
	}

	got, err := sink.GetRecommendations(ctx, 1)
	if err != nil {
		t.Fatalf("GetRecommendations() error = %v", err)
	}
	if !reflect.DeepEqual(got, []int64{10, 20, 30}) {
		t.Errorf("recommendations = %v", got)
	}

	users, err := sink.GetAllUsers(ctx)
	if err != nil {
		t.Fatalf("GetAllUsers() error = %v", err)
	}
	if len(users) != 2 {
		t.Errorf("users = %v, want 2 entries", users)
	}

	// 不存在的用户返回空列表而非错误
	empty, err := sink.GetRecommendations(ctx, 999)
	if err != nil {
		t.Fatalf("GetRecommendations(999) error = %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("missing user = %v, want empty", empty)
	}
}

func TestStoreSinkEstimates(t *testing.T) {
	ctx := context.Background()
	ms := store.NewMemoryStore()
	defer ms.Close()
	sink := NewStoreSink(ms, "rec")

	estimates := core.EstimatedRatings{
		7: {10: 0.9, 20: 0.5, 30: 0.7},
	}
	if err := sink.SaveEstimates(ctx, estimates); err != nil {
		t.Fatalf("SaveEstimates() error = %v", err)
	}

	top, err := sink.TopEstimates(ctx, 7, 2)
	if err != nil {
		t.Fatalf("TopEstimates() error = %v", err)
	}
	if !reflect.DeepEqual(top, []int64{10, 30}) {
		t.Errorf("top estimates = %v, want [10 30]", top)
	}
}
