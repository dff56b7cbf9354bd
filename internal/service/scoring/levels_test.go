package scoring

import (
	"testing"

	"github.com/google/uuid"
)

func TestMatchLevelGroupOverGeneric(t *testing.T) {
	levels := []Level{
		{ID: uuid.New(), Name: "Good", MinScore: 80, MaxScore: 100, Opinion: "Good"},
		{ID: uuid.New(), Name: "Excellent", MinScore: 80, MaxScore: 100, Opinion: "Excellent", GroupKey: sptr("pediatrics_senior")},
	}

	got := MatchLevel(levels, 90, sptr("pediatrics_senior"))
	if got == nil || got.Opinion != "Excellent" {
		t.Errorf("matched %+v, want the group-specific band", got)
	}
}

func TestMatchLevelNoKeyMatchesGenericOnly(t *testing.T) {
	levels := []Level{
		{ID: uuid.New(), Name: "Grouped", MinScore: 0, MaxScore: 100, GroupKey: sptr("surgery")},
		{ID: uuid.New(), Name: "Generic", MinScore: 0, MaxScore: 100},
	}

	got := MatchLevel(levels, 50, nil)
	if got == nil || got.Name != "Generic" {
		t.Errorf("matched %+v, want the generic band", got)
	}
}

func TestMatchLevelGroupFallsBackToGeneric(t *testing.T) {
	levels := []Level{
		{ID: uuid.New(), Name: "Grouped", MinScore: 0, MaxScore: 100, GroupKey: sptr("surgery")},
		{ID: uuid.New(), Name: "Generic", MinScore: 0, MaxScore: 100},
	}

	got := MatchLevel(levels, 50, sptr("pediatrics"))
	if got == nil || got.Name != "Generic" {
		t.Errorf("matched %+v, want the generic fallback", got)
	}
}

func TestMatchLevelInclusiveBounds(t *testing.T) {
	levels := []Level{
		{ID: uuid.New(), Name: "Band", MinScore: 10, MaxScore: 20},
	}

	tests := []struct {
		name  string
		score float64
		want  bool
	}{
		{name: "below", score: 9.99, want: false},
		{name: "lower bound", score: 10, want: true},
		{name: "inside", score: 15, want: true},
		{name: "upper bound", score: 20, want: true},
		{name: "above", score: 20.01, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchLevel(levels, tt.score, nil)
			if (got != nil) != tt.want {
				t.Errorf("matched = %v, want %v", got != nil, tt.want)
			}
		})
	}
}

func TestMatchLevelStableOrderAmongOverlaps(t *testing.T) {
	levels := []Level{
		{ID: uuid.New(), Name: "First", MinScore: 0, MaxScore: 50},
		{ID: uuid.New(), Name: "Second", MinScore: 40, MaxScore: 60},
	}

	got := MatchLevel(levels, 45, nil)
	if got == nil || got.Name != "First" {
		t.Errorf("matched %+v, want the first band in id order", got)
	}
}

func TestMatchLevelNoMatchIsNotAnError(t *testing.T) {
	levels := []Level{
		{ID: uuid.New(), Name: "Band", MinScore: 0, MaxScore: 10},
	}
	if got := MatchLevel(levels, 99, nil); got != nil {
		t.Errorf("matched %+v, want none", got)
	}
	if got := MatchLevel(nil, 0, nil); got != nil {
		t.Errorf("matched %+v on empty config, want none", got)
	}
}

func TestScopedLevels(t *testing.T) {
	dim := uuid.New()
	levels := []Level{
		{ID: uuid.New(), Name: "Total"},
		{ID: uuid.New(), Name: "Dim", DimensionID: &dim},
	}

	total := ScopedLevels(levels, nil)
	if len(total) != 1 || total[0].Name != "Total" {
		t.Errorf("total scope = %+v", total)
	}
	scoped := ScopedLevels(levels, &dim)
	if len(scoped) != 1 || scoped[0].Name != "Dim" {
		t.Errorf("dimension scope = %+v", scoped)
	}
}

func TestBandOverlaps(t *testing.T) {
	dim := uuid.New()
	existing := []Level{
		{ID: uuid.New(), MinScore: 0, MaxScore: 50},
		{ID: uuid.New(), MinScore: 0, MaxScore: 50, GroupKey: sptr("surgery")},
		{ID: uuid.New(), MinScore: 0, MaxScore: 50, DimensionID: &dim},
	}

	tests := []struct {
		name      string
		candidate Level
		want      bool
	}{
		{
			name:      "disjoint range",
			candidate: Level{ID: uuid.New(), MinScore: 51, MaxScore: 100},
			want:      false,
		},
		{
			name:      "touching bound overlaps",
			candidate: Level{ID: uuid.New(), MinScore: 50, MaxScore: 100},
			want:      true,
		},
		{
			name:      "contained range",
			candidate: Level{ID: uuid.New(), MinScore: 10, MaxScore: 20},
			want:      true,
		},
		{
			name:      "same range different group",
			candidate: Level{ID: uuid.New(), MinScore: 0, MaxScore: 50, GroupKey: sptr("pediatrics")},
			want:      false,
		},
		{
			name:      "same range same group",
			candidate: Level{ID: uuid.New(), MinScore: 0, MaxScore: 50, GroupKey: sptr("surgery")},
			want:      true,
		},
		{
			name:      "same range different dimension scope",
			candidate: Level{ID: uuid.New(), MinScore: 0, MaxScore: 50, DimensionID: uptr(uuid.New())},
			want:      false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BandOverlaps(existing, tt.candidate); got != tt.want {
				t.Errorf("BandOverlaps = %v, want %v", got, tt.want)
			}
		})
	}

	self := existing[0]
	self.MaxScore = 60
	if BandOverlaps(existing, self) {
		t.Errorf("a band must not conflict with itself on update")
	}
}

func TestMaxBandScore(t *testing.T) {
	levels := []Level{
		{ID: uuid.New(), MinScore: 0, MaxScore: 60},
		{ID: uuid.New(), MinScore: 60, MaxScore: 100},
		{ID: uuid.New(), MinScore: 0, MaxScore: 120, GroupKey: sptr("surgery")},
	}

	if got := MaxBandScore(levels, nil); got != 100 {
		t.Errorf("generic max = %v, want 100", got)
	}
	if got := MaxBandScore(levels, sptr("surgery")); got != 120 {
		t.Errorf("group max = %v, want 120", got)
	}
	if got := MaxBandScore(levels, sptr("pediatrics")); got != 100 {
		t.Errorf("unknown group should fall back to generic, got %v", got)
	}
	if got := MaxBandScore(nil, nil); got != defaultMaxScore {
		t.Errorf("empty config max = %v, want %v", got, defaultMaxScore)
	}
}
