package utils

import "testing"

func TestMergeLabel(t *testing.T) {
	tests := []struct {
		name     string
		existing Label
		incoming Label
		want     Label
	}{
		{
			name:     "empty existing",
			existing: Label{},
			incoming: Label{Value: "itemcf", Source: "estimate"},
			want:     Label{Value: "itemcf", Source: "estimate"},
		},
		{
			name:     "empty incoming",
			existing: Label{Value: "itemcf", Source: "estimate"},
			incoming: Label{},
			want:     Label{Value: "itemcf", Source: "estimate"},
		},
		{
			name:     "both set",
			existing: Label{Value: "true", Source: "filter.blacklist"},
			incoming: Label{Value: "true", Source: "filter.expr"},
			want:     Label{Value: "true|true", Source: "filter.blacklist,filter.expr"},
		},
		{
			name:     "incoming without source",
			existing: Label{Value: "a", Source: "estimate"},
			incoming: Label{Value: "b"},
			want:     Label{Value: "a|b", Source: "estimate"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MergeLabel(tt.existing, tt.incoming); got != tt.want {
				t.Errorf("MergeLabel() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
