package scoring

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func fptr(v float64) *float64 { return &v }
func sptr(s string) *string   { return &s }
func uptr(id uuid.UUID) *uuid.UUID {
	return &id
}

func newFixture() (Valuator, map[string]uuid.UUID) {
	ids := map[string]uuid.UUID{
		"dim":      uuid.New(),
		"single":   uuid.New(),
		"multiple": uuid.New(),
		"text":     uuid.New(),
		"area":     uuid.New(),
		"address":  uuid.New(),
		"good":     uuid.New(),
		"bad":      uuid.New(),
		"other":    uuid.New(),
		"x":        uuid.New(),
		"y":        uuid.New(),
	}
	dim := ids["dim"]

	v := Valuator{
		Questions: map[uuid.UUID]Question{
			ids["single"]:   {ID: ids["single"], DimensionID: &dim, Text: "Satisfaction", Type: TypeSingle},
			ids["multiple"]: {ID: ids["multiple"], DimensionID: &dim, Text: "Symptoms", Type: TypeMultiple},
			ids["text"]:     {ID: ids["text"], Text: "Comments", Type: TypeText},
			ids["area"]:     {ID: ids["area"], Text: "Region", Type: TypeArea},
			ids["address"]:  {ID: ids["address"], Text: "Address", Type: TypeAddress},
		},
		Options: map[uuid.UUID]Option{
			ids["good"]:  {ID: ids["good"], QuestionID: ids["single"], Text: "Good", Value: fptr(10)},
			ids["bad"]:   {ID: ids["bad"], QuestionID: ids["single"], Text: "Bad", Value: fptr(0)},
			ids["other"]: {ID: ids["other"], QuestionID: ids["single"], Text: "Other", IsOther: true},
			ids["x"]:     {ID: ids["x"], QuestionID: ids["multiple"], Text: "X", Value: fptr(3)},
			ids["y"]:     {ID: ids["y"], QuestionID: ids["multiple"], Text: "Y", Value: fptr(5)},
		},
	}
	return v, ids
}

func TestValuateSingleChoice(t *testing.T) {
	v, ids := newFixture()

	got, err := v.Valuate(RawAnswer{QuestionID: ids["single"], OptionID: uptr(ids["good"])})
	if err != nil {
		t.Fatalf("Valuate: %v", err)
	}
	if got.Value != 10 {
		t.Errorf("value = %v, want 10", got.Value)
	}
	if got.OptionID == nil || *got.OptionID != ids["good"] {
		t.Errorf("option id not recorded")
	}
	if got.Text != nil {
		t.Errorf("free text should be dropped for a non-other option, got %q", *got.Text)
	}
}

func TestValuateSingleChoiceOtherRetainsText(t *testing.T) {
	v, ids := newFixture()

	got, err := v.Valuate(RawAnswer{QuestionID: ids["single"], OptionID: uptr(ids["other"]), Text: "self employed"})
	if err != nil {
		t.Fatalf("Valuate: %v", err)
	}
	if got.Value != 0 {
		t.Errorf("null option value should score 0, got %v", got.Value)
	}
	if got.Text == nil || *got.Text != "self employed" {
		t.Errorf("other fill-in not retained: %v", got.Text)
	}
}

func TestValuateSingleChoiceTextOnly(t *testing.T) {
	v, ids := newFixture()

	got, err := v.Valuate(RawAnswer{QuestionID: ids["single"], Text: "prefer not to say"})
	if err != nil {
		t.Fatalf("Valuate: %v", err)
	}
	if got.Value != 0 {
		t.Errorf("value = %v, want 0", got.Value)
	}
	if got.OptionID != nil {
		t.Errorf("option id = %v, want nil", got.OptionID)
	}
	if got.Text != nil {
		t.Errorf("text = %v, want dropped", *got.Text)
	}
}

func TestValuateMultipleChoice(t *testing.T) {
	v, ids := newFixture()

	tests := []struct {
		name string
		raw  RawAnswer
		want float64
	}{
		{
			name: "id list",
			raw:  RawAnswer{QuestionID: ids["multiple"], OptionIDs: []uuid.UUID{ids["x"], ids["y"]}},
			want: 8,
		},
		{
			name: "delimited string fallback",
			raw:  RawAnswer{QuestionID: ids["multiple"], OptionList: ids["x"].String() + ", " + ids["y"].String()},
			want: 8,
		},
		{
			name: "single selection",
			raw:  RawAnswer{QuestionID: ids["multiple"], OptionIDs: []uuid.UUID{ids["y"]}},
			want: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.Valuate(tt.raw)
			if err != nil {
				t.Fatalf("Valuate: %v", err)
			}
			if got.Value != tt.want {
				t.Errorf("value = %v, want %v", got.Value, tt.want)
			}
			if got.OptionID != nil {
				t.Errorf("multiple choice must not set option_id")
			}
			if len(got.SelectedIDs) == 0 {
				t.Errorf("selected ids not recorded")
			}
		})
	}
}

func TestValuateErrors(t *testing.T) {
	v, ids := newFixture()

	tests := []struct {
		name string
		raw  RawAnswer
		want error
	}{
		{
			name: "missing question id",
			raw:  RawAnswer{OptionID: uptr(ids["good"])},
			want: ErrMissingField,
		},
		{
			name: "empty answer",
			raw:  RawAnswer{QuestionID: ids["text"]},
			want: ErrEmptyAnswer,
		},
		{
			name: "deleted single option",
			raw:  RawAnswer{QuestionID: ids["single"], OptionID: uptr(uuid.New())},
			want: ErrInvalidOption,
		},
		{
			name: "deleted option in multiple selection",
			raw:  RawAnswer{QuestionID: ids["multiple"], OptionIDs: []uuid.UUID{ids["x"], uuid.New()}},
			want: ErrInvalidOption,
		},
		{
			name: "option from another question",
			raw:  RawAnswer{QuestionID: ids["single"], OptionID: uptr(ids["x"])},
			want: ErrInvalidOption,
		},
		{
			name: "malformed delimited list",
			raw:  RawAnswer{QuestionID: ids["multiple"], OptionList: "not-a-uuid"},
			want: ErrInvalidOption,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := v.Valuate(tt.raw); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestValuateTextAndAddress(t *testing.T) {
	v, ids := newFixture()

	text, err := v.Valuate(RawAnswer{QuestionID: ids["text"], Text: "fine overall"})
	if err != nil {
		t.Fatalf("Valuate text: %v", err)
	}
	if text.Value != 0 || text.Text == nil || *text.Text != "fine overall" {
		t.Errorf("text answer mangled: %+v", text)
	}

	addr, err := v.Valuate(RawAnswer{QuestionID: ids["address"], Text: `{"province":"X","city":"Y"}`})
	if err != nil {
		t.Fatalf("Valuate address: %v", err)
	}
	if !addr.Terminal {
		t.Errorf("address answer must be terminal")
	}
	if addr.Text == nil || *addr.Text != `{"province":"X","city":"Y"}` {
		t.Errorf("address payload not kept verbatim: %v", addr.Text)
	}
}

func TestValuateAllSkipsUnknownQuestions(t *testing.T) {
	v, ids := newFixture()

	raws := []RawAnswer{
		{QuestionID: ids["single"], OptionID: uptr(ids["good"])},
		{QuestionID: uuid.New(), Text: "answer for a removed question"},
	}
	got, err := v.ValuateAll(raws)
	if err != nil {
		t.Fatalf("ValuateAll: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("len = %d, want 1", len(got))
	}
}

func TestValuateAllRejectsWholeBatch(t *testing.T) {
	v, ids := newFixture()

	raws := []RawAnswer{
		{QuestionID: ids["single"], OptionID: uptr(ids["good"])},
		{QuestionID: ids["single"], OptionID: uptr(uuid.New())},
	}
	if _, err := v.ValuateAll(raws); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("err = %v, want ErrInvalidOption", err)
	}
}
