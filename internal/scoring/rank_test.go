package scoring

import "testing"

func TestGetRank(t *testing.T) {
	tests := []struct {
		name  string
		score int
		want  string
	}{
		{"top of scale", 100, "S"},
		{"S lower bound", 90, "S"},
		{"just below S", 89, "A"},
		{"A lower bound", 80, "A"},
		{"B lower bound", 70, "B"},
		{"just below B", 69, "C"},
		{"C lower bound", 50, "C"},
		{"just below C", 49, "D"},
		{"zero", 0, "D"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetRank(tt.score)
			if got.Rank != tt.want {
				t.Errorf("GetRank(%d).Rank = %s, want %s", tt.score, got.Rank, tt.want)
			}
			if got.Color == "" || got.Label == "" {
				t.Errorf("GetRank(%d) has empty color or label", tt.score)
			}
		})
	}
}
