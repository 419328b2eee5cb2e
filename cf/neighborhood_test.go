package cf

import (
	"reflect"
	"sort"
	"testing"

	"github.com/rushteam/itemcf/core"
)

func TestSelectNeighborhoods(t *testing.T) {
	tests := []struct {
		name   string
		scores core.SimilarityScores
		k      int
		want   core.Neighborhoods
	}{
		{
			name: "fewer candidates than k",
			scores: core.SimilarityScores{
				1: {2: 0.5, 3: 0.1},
				2: {1: 0.5, 3: 0.9},
				3: {1: 0.1, 2: 0.9},
			},
			k: 5,
			want: core.Neighborhoods{
				1: {2, 3},
				2: {1, 3},
				3: {1, 2},
			},
		},
		{
			name: "truncates to k and stores id-ascending",
			scores: core.SimilarityScores{
				1: {5: 0.9, 2: 0.8, 9: 0.3, 4: 0.1},
			},
			k: 2,
			// 相似度序是 [5, 2]，存储序按 id 升序
			want: core.Neighborhoods{1: {2, 5}},
		},
		{
			name: "boundary ties expand beyond k",
			scores: core.SimilarityScores{
				1: {2: 0.9, 3: 0.5, 4: 0.5, 5: 0.5, 6: 0.1},
			},
			k: 2,
			// 第 2 名分数 0.5，与 4、5 同分 → 整组纳入，长度超过 K
			want: core.Neighborhoods{1: {2, 3, 4, 5}},
		},
		{
			name: "tie below boundary not expanded",
			scores: core.SimilarityScores{
				1: {2: 0.9, 3: 0.7, 4: 0.5, 5: 0.5},
			},
			k: 2,
			// 边界分是 0.7，0.5 的同分组不在边界上
			want: core.Neighborhoods{1: {2, 3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectNeighborhoods(tt.scores, tt.k)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SelectNeighborhoods() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelectNeighborhoodsNeverSelf(t *testing.T) {
	// 相似度表不含对角线，邻域里不可能出现自己
	scores := core.SimilarityScores{
		1: {2: 0.0, 3: 0.0},
		2: {1: 0.0, 3: 0.0},
		3: {1: 0.0, 2: 0.0},
	}

	neighborhoods := SelectNeighborhoods(scores, 5)

	for itemID, neighbors := range neighborhoods {
		for _, n := range neighbors {
			if n == itemID {
				t.Errorf("item %d appears in its own neighborhood %v", itemID, neighbors)
			}
		}
		if !sort.SliceIsSorted(neighbors, func(a, b int) bool { return neighbors[a] < neighbors[b] }) {
			t.Errorf("neighborhood %v not ascending", neighbors)
		}
	}
}
