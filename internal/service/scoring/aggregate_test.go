package scoring

import (
	"math"
	"testing"

	"github.com/google/uuid"
)

func TestAggregateSingleDimensionWeighted(t *testing.T) {
	dim := uuid.New()
	dims := map[uuid.UUID]Dimension{
		dim: {ID: dim, Name: "Satisfaction", Weight: 2},
	}
	answers := []Valuated{
		{QuestionID: uuid.New(), DimensionID: &dim, Value: 10},
	}

	weighted := AggregateDimensions(answers, dims)
	if got := weighted[dim]; got != 20 {
		t.Errorf("weighted score = %v, want 20", got)
	}
	if got := TotalScore(weighted); got != 20 {
		t.Errorf("total = %v, want 20", got)
	}
}

func TestAggregateSumsBeforeWeighting(t *testing.T) {
	dim := uuid.New()
	dims := map[uuid.UUID]Dimension{
		dim: {ID: dim, Name: "Symptoms", Weight: 1},
	}
	answers := []Valuated{
		{QuestionID: uuid.New(), DimensionID: &dim, Value: 8},
	}

	weighted := AggregateDimensions(answers, dims)
	if got := weighted[dim]; got != 8 {
		t.Errorf("weighted score = %v, want 8", got)
	}
}

func TestAggregateSkipsBasicInfoAndDimensionless(t *testing.T) {
	scored := uuid.New()
	basic := uuid.New()
	dims := map[uuid.UUID]Dimension{
		scored: {ID: scored, Name: "Teamwork", Weight: 1.5},
		basic:  {ID: basic, Name: "用户基本信息(不参与得分评估)", Weight: 0, IsBasicInfo: true},
	}
	answers := []Valuated{
		{QuestionID: uuid.New(), DimensionID: &scored, Value: 4},
		{QuestionID: uuid.New(), DimensionID: &scored, Value: 6},
		{QuestionID: uuid.New(), DimensionID: &basic, Value: 100},
		{QuestionID: uuid.New(), Value: 50},
		{QuestionID: uuid.New(), DimensionID: &scored, Terminal: true},
	}

	weighted := AggregateDimensions(answers, dims)
	if len(weighted) != 1 {
		t.Fatalf("dimensions scored = %d, want 1", len(weighted))
	}
	if got := weighted[scored]; got != 15 {
		t.Errorf("weighted score = %v, want 15", got)
	}
	if _, ok := weighted[basic]; ok {
		t.Errorf("basic-info dimension must never be scored")
	}
}

func TestTotalEqualsSumOfDimensionScores(t *testing.T) {
	d1, d2, d3 := uuid.New(), uuid.New(), uuid.New()
	dims := map[uuid.UUID]Dimension{
		d1: {ID: d1, Weight: 0.5},
		d2: {ID: d2, Weight: 2},
		d3: {ID: d3, Weight: -1},
	}
	answers := []Valuated{
		{QuestionID: uuid.New(), DimensionID: &d1, Value: 7},
		{QuestionID: uuid.New(), DimensionID: &d2, Value: 3},
		{QuestionID: uuid.New(), DimensionID: &d3, Value: 2},
	}

	weighted := AggregateDimensions(answers, dims)
	var sum float64
	for _, s := range weighted {
		sum += s
	}
	if total := TotalScore(weighted); math.Abs(total-sum) > 1e-9 {
		t.Errorf("total %v != sum of dimension scores %v", total, sum)
	}
	if total := TotalScore(weighted); math.Abs(total-7.5) > 1e-9 {
		t.Errorf("total = %v, want 7.5", total)
	}
}
