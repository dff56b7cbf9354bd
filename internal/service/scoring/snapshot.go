package scoring

import (
	"github.com/google/uuid"

	"github.com/halouxiaoyu/survey_backend/internal/repo"
)

func snapQuestions(qs []*repo.Question) map[uuid.UUID]Question {
	m := make(map[uuid.UUID]Question, len(qs))
	for _, q := range qs {
		m[q.ID] = Question{
			ID:          q.ID,
			DimensionID: q.DimensionID,
			Text:        q.Text,
			Type:        QuestionType(q.Type),
			IsGrouping:  q.IsGrouping,
		}
	}
	return m
}

func snapOptions(opts []*repo.SurveyOption) map[uuid.UUID]Option {
	m := make(map[uuid.UUID]Option, len(opts))
	for _, o := range opts {
		m[o.ID] = Option{
			ID:         o.ID,
			QuestionID: o.QuestionID,
			Text:       o.Text,
			Value:      o.Value,
			IsOther:    o.IsOther,
		}
	}
	return m
}

func snapDimensions(ds []*repo.Dimension) map[uuid.UUID]Dimension {
	m := make(map[uuid.UUID]Dimension, len(ds))
	for _, d := range ds {
		m[d.ID] = Dimension{
			ID:          d.ID,
			Name:        d.Name,
			Weight:      d.Weight,
			IsBasicInfo: d.IsBasicInfo,
		}
	}
	return m
}

func snapLevels(ls []*repo.AssessmentLevel) []Level {
	out := make([]Level, len(ls))
	for i, lv := range ls {
		out[i] = Level{
			ID:          lv.ID,
			Name:        lv.Name,
			MinScore:    lv.MinScore,
			MaxScore:    lv.MaxScore,
			Opinion:     lv.Opinion,
			GroupKey:    lv.GroupKey,
			DimensionID: lv.DimensionID,
		}
	}
	return out
}
