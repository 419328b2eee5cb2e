package cf

import (
	"math"
	"reflect"
	"testing"

	"github.com/rushteam/itemcf/core"
)

func TestBuildProfiles(t *testing.T) {
	movies := []core.MovieRecord{
		{ID: 1, Title: "Toy Story (1995)", Genres: []string{"Animation", "Comedy"}},
		{ID: 2, Title: "Jumanji (1995)", Genres: []string{"Adventure"}},
		{ID: 3, Title: "Heat (1995)", Genres: []string{"Action"}},
	}
	ratings := []core.RatingRecord{
		{UserID: 10, ItemID: 1, Value: 4.0},
		{UserID: 11, ItemID: 1, Value: 5.0},
		{UserID: 12, ItemID: 1, Value: 3.0},
		{UserID: 10, ItemID: 2, Value: 2.0},
		{UserID: 99, ItemID: 777, Value: 5.0}, // 未知物品，应被跳过
	}
	tags := []core.TagRecord{
		{ItemID: 1, UserID: 10, Tag: "pixar"},
		{ItemID: 1, UserID: 11, Tag: "pixar"}, // 重复标签保留
		{ItemID: 1, UserID: 12, Tag: "fun"},
		{ItemID: 777, UserID: 10, Tag: "ghost"}, // 未知物品，应被跳过
	}

	profiles := BuildProfiles(movies, ratings, tags)

	if len(profiles) != 3 {
		t.Fatalf("len(profiles) = %d, want 3", len(profiles))
	}

	p1 := profiles[1]
	if p1.Title != "Toy Story (1995)" {
		t.Errorf("title = %q", p1.Title)
	}
	if got, want := p1.MeanRating, 4.0; math.Abs(got-want) > 1e-12 {
		t.Errorf("mean rating = %v, want %v", got, want)
	}
	if !reflect.DeepEqual(p1.Tags, []string{"pixar", "pixar", "fun"}) {
		t.Errorf("tags = %v, want duplicates preserved in order", p1.Tags)
	}

	// 零评分 / 零标签是合法的稀疏画像
	p3 := profiles[3]
	if len(p3.Ratings) != 0 || p3.MeanRating != 0.0 || len(p3.Tags) != 0 {
		t.Errorf("sparse profile = %+v, want empty ratings/tags and mean 0.0", p3)
	}
}

func TestBuildProfilesSingleRatingMean(t *testing.T) {
	profiles := BuildProfiles(
		[]core.MovieRecord{{ID: 1}},
		[]core.RatingRecord{{UserID: 10, ItemID: 1, Value: 3.5}},
		nil,
	)
	if got := profiles[1].MeanRating; got != 3.5 {
		t.Errorf("mean = %v, want 3.5", got)
	}
}

func TestAttachLinks(t *testing.T) {
	profiles := BuildProfiles([]core.MovieRecord{{ID: 1}}, nil, nil)
	AttachLinks(profiles, []core.LinkRecord{
		{ItemID: 1, IMDBID: "0114709", TMDBID: "862"},
		{ItemID: 777, IMDBID: "x", TMDBID: "y"}, // 未知物品，应被跳过
	})

	if profiles[1].IMDBID != "0114709" || profiles[1].TMDBID != "862" {
		t.Errorf("links = %q/%q", profiles[1].IMDBID, profiles[1].TMDBID)
	}
}
