package store

import (
	"context"
	"reflect"
	"testing"

	"github.com/rushteam/itemcf/core"
)

func TestMemoryStoreGetSet(t *testing.T) {
	ms := NewMemoryStore()
	defer ms.Close()
	ctx := context.Background()

	if _, err := ms.Get(ctx, "missing"); !core.IsStoreNotFound(err) {
		t.Errorf("Get(missing) error = %v, want store not found", err)
	}

	if err := ms.Set(ctx, "k", []byte("v")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, err := ms.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(got) != "v" {
		t.Errorf("Get() = %q, want %q", got, "v")
	}

	if err := ms.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := ms.Get(ctx, "k"); !core.IsStoreNotFound(err) {
		t.Errorf("Get after Delete error = %v, want store not found", err)
	}
}

func TestMemoryStoreClose(t *testing.T) {
	ms := NewMemoryStore()

	if err := ms.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	// 重复关闭不 panic
	if err := ms.Close(); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}

	// 清理协程退出，done 已关闭
	select {
	case <-ms.done:
	default:
		t.Error("done channel not closed after Close")
	}
}

func TestMemoryStoreBatch(t *testing.T) {
	ms := NewMemoryStore()
	defer ms.Close()
	ctx := context.Background()

	kvs := map[string][]byte{
		"a": []byte("1"),
		"b": []byte("2"),
	}
	if err := ms.BatchSet(ctx, kvs); err != nil {
		t.Fatalf("BatchSet() error = %v", err)
	}

	got, err := ms.BatchGet(ctx, []string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("BatchGet() error = %v", err)
	}
	want := map[string][]byte{"a": []byte("1"), "b": []byte("2")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BatchGet() = %v, want %v", got, want)
	}
}

func TestMemoryStoreZSet(t *testing.T) {
	ms := NewMemoryStore()
	defer ms.Close()
	ctx := context.Background()

	// 同分成员按 member 升序，其余按 score 降序
	members := []struct {
		member string
		score  float64
	}{
		{"low", 1.0},
		{"tie_b", 2.0},
		{"tie_a", 2.0},
		{"high", 3.0},
	}
	for _, m := range members {
		if err := ms.ZAdd(ctx, "z", m.score, m.member); err != nil {
			t.Fatalf("ZAdd(%s) error = %v", m.member, err)
		}
	}

	tests := []struct {
		name        string
		start, stop int64
		want        []string
	}{
		{name: "full range", start: 0, stop: -1, want: []string{"high", "tie_a", "tie_b", "low"}},
		{name: "top two", start: 0, stop: 1, want: []string{"high", "tie_a"}},
		{name: "out of range", start: 10, stop: 20, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ms.ZRange(ctx, "z", tt.start, tt.stop)
			if err != nil {
				t.Fatalf("ZRange() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ZRange() = %v, want %v", got, tt.want)
			}
		})
	}

	score, err := ms.ZScore(ctx, "z", "high")
	if err != nil {
		t.Fatalf("ZScore() error = %v", err)
	}
	if score != 3.0 {
		t.Errorf("ZScore() = %v, want 3.0", score)
	}
	if _, err := ms.ZScore(ctx, "z", "missing"); !core.IsStoreNotFound(err) {
		t.Errorf("ZScore(missing) error = %v, want store not found", err)
	}
}
