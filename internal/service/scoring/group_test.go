package scoring

import (
	"testing"

	"github.com/google/uuid"

	"github.com/halouxiaoyu/survey_backend/pkg/groupkey"
)

type groupFixture struct {
	resolver  GroupResolver
	questions map[uuid.UUID]Question
	options   map[uuid.UUID]Option
	dims      map[uuid.UUID]Dimension

	basicDim   uuid.UUID
	deptQ      uuid.UUID
	addressQ   uuid.UUID
	flaggedQ   uuid.UUID
	pediatrics uuid.UUID
	surgery    uuid.UUID
	teamA      uuid.UUID
}

func newGroupFixture() groupFixture {
	f := groupFixture{
		basicDim:   uuid.New(),
		deptQ:      uuid.New(),
		addressQ:   uuid.New(),
		flaggedQ:   uuid.New(),
		pediatrics: uuid.New(),
		surgery:    uuid.New(),
		teamA:      uuid.New(),
	}
	f.resolver = GroupResolver{
		Deriver: groupkey.New(),
		Markers: []string{"科室", "department"},
	}
	f.dims = map[uuid.UUID]Dimension{
		f.basicDim: {ID: f.basicDim, Name: "basic info", IsBasicInfo: true},
	}
	f.questions = map[uuid.UUID]Question{
		f.deptQ:    {ID: f.deptQ, DimensionID: &f.basicDim, Text: "your department", Type: TypeSingle},
		f.addressQ: {ID: f.addressQ, DimensionID: &f.basicDim, Text: "home department address", Type: TypeAddress},
		f.flaggedQ: {ID: f.flaggedQ, DimensionID: &f.basicDim, Text: "team", Type: TypeSingle, IsGrouping: true},
	}
	f.options = map[uuid.UUID]Option{
		f.pediatrics: {ID: f.pediatrics, QuestionID: f.deptQ, Text: "Pediatrics"},
		f.surgery:    {ID: f.surgery, QuestionID: f.deptQ, Text: "Surgery"},
		f.teamA:      {ID: f.teamA, QuestionID: f.flaggedQ, Text: "Alpha"},
	}
	return f
}

func TestResolveGroupByTextMarker(t *testing.T) {
	f := newGroupFixture()

	raws := []RawAnswer{
		{QuestionID: f.addressQ, Text: "somewhere"},
		{QuestionID: f.deptQ, OptionID: uptr(f.pediatrics)},
	}
	got := f.resolver.Resolve(raws, f.questions, f.options, f.dims)
	if got == nil {
		t.Fatal("expected a group key")
	}
	want := f.resolver.Deriver.Derive("your department", "Pediatrics")
	if *got != want {
		t.Errorf("group key = %q, want %q", *got, want)
	}
}

func TestResolveGroupPrefersFlaggedQuestion(t *testing.T) {
	f := newGroupFixture()

	// The marker-matching question comes first in submitted order, but
	// the explicitly flagged question wins.
	raws := []RawAnswer{
		{QuestionID: f.deptQ, OptionID: uptr(f.surgery)},
		{QuestionID: f.flaggedQ, OptionID: uptr(f.teamA)},
	}
	got := f.resolver.Resolve(raws, f.questions, f.options, f.dims)
	if got == nil {
		t.Fatal("expected a group key")
	}
	want := f.resolver.Deriver.Derive("team", "Alpha")
	if *got != want {
		t.Errorf("group key = %q, want %q", *got, want)
	}
}

func TestResolveGroupSkipsAddressQuestions(t *testing.T) {
	f := newGroupFixture()

	raws := []RawAnswer{
		{QuestionID: f.addressQ, Text: "department street 5"},
	}
	if got := f.resolver.Resolve(raws, f.questions, f.options, f.dims); got != nil {
		t.Errorf("address questions must not produce a group key, got %q", *got)
	}
}

func TestResolveGroupFirstMatchWins(t *testing.T) {
	f := newGroupFixture()

	raws := []RawAnswer{
		{QuestionID: f.deptQ, OptionID: uptr(f.surgery)},
		{QuestionID: f.deptQ, OptionID: uptr(f.pediatrics)},
	}
	got := f.resolver.Resolve(raws, f.questions, f.options, f.dims)
	want := f.resolver.Deriver.Derive("your department", "Surgery")
	if got == nil || *got != want {
		t.Errorf("group key = %v, want %q", got, want)
	}
}

func TestResolveGroupEdgeCases(t *testing.T) {
	f := newGroupFixture()

	tests := []struct {
		name string
		raws []RawAnswer
	}{
		{name: "no answers", raws: nil},
		{name: "unresolvable option", raws: []RawAnswer{{QuestionID: f.deptQ, OptionID: uptr(uuid.New())}}},
		{name: "marker question without option", raws: []RawAnswer{{QuestionID: f.deptQ, Text: "typed instead"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.resolver.Resolve(tt.raws, f.questions, f.options, f.dims); got != nil {
				t.Errorf("group key = %q, want none", *got)
			}
		})
	}
}

func TestResolveGroupWithoutBasicInfoDimension(t *testing.T) {
	f := newGroupFixture()
	f.dims = map[uuid.UUID]Dimension{}

	raws := []RawAnswer{{QuestionID: f.deptQ, OptionID: uptr(f.pediatrics)}}
	if got := f.resolver.Resolve(raws, f.questions, f.options, f.dims); got != nil {
		t.Errorf("no basic-info dimension means no group, got %q", *got)
	}
}
