package conv

import (
	"reflect"
	"testing"
)

func TestConfigGet(t *testing.T) {
	m := map[string]any{"name": "batch", "flag": true}

	if got := ConfigGet(m, "name", ""); got != "batch" {
		t.Errorf("ConfigGet(name) = %q, want %q", got, "batch")
	}
	if got := ConfigGet(m, "missing", "fallback"); got != "fallback" {
		t.Errorf("ConfigGet(missing) = %q, want %q", got, "fallback")
	}
	// 类型不符回退默认值
	if got := ConfigGet(m, "flag", "no"); got != "no" {
		t.Errorf("ConfigGet(flag as string) = %q, want %q", got, "no")
	}
	if got := ConfigGet[string](nil, "name", "d"); got != "d" {
		t.Errorf("ConfigGet(nil map) = %q, want %q", got, "d")
	}
}

func TestConfigGetInt(t *testing.T) {
	tests := []struct {
		name string
		m    map[string]any
		want int
	}{
		{name: "int", m: map[string]any{"k": 4}, want: 4},
		{name: "int64", m: map[string]any{"k": int64(5)}, want: 5},
		{name: "float64 from json", m: map[string]any{"k": 6.0}, want: 6},
		{name: "missing", m: map[string]any{}, want: -1},
		{name: "wrong type", m: map[string]any{"k": "7"}, want: -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConfigGetInt(tt.m, "k", -1); got != tt.want {
				t.Errorf("ConfigGetInt() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSliceAnyToInt64(t *testing.T) {
	got := SliceAnyToInt64([]any{1, int64(2), 3.0, "skip"})
	want := []int64{1, 2, 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SliceAnyToInt64() = %v, want %v", got, want)
	}
	if SliceAnyToInt64("not a slice") != nil {
		t.Error("SliceAnyToInt64(non-slice) != nil")
	}
}

func TestSliceAnyToString(t *testing.T) {
	got := SliceAnyToString([]any{"a", 1, "b"})
	want := []string{"a", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SliceAnyToString() = %v, want %v", got, want)
	}
}
