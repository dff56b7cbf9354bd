package scoring

import (
	"strings"

	"github.com/google/uuid"

	"github.com/halouxiaoyu/survey_backend/pkg/groupkey"
)

// ---------------------------------------------------------------------------
// Group resolution
// ---------------------------------------------------------------------------

// GroupResolver derives a respondent's group key from their basic-info
// answers. Questions flagged is_grouping are checked first; when no
// flagged question was answered, a question whose text contains one of
// the configured markers (e.g. "科室", "department") acts as a fallback
// for questionnaires authored before the flag existed.
type GroupResolver struct {
	Deriver groupkey.Deriver
	Markers []string
}

// Resolve walks raw answers in submitted order and returns the key
// derived from the first eligible single-choice basic-info answer whose
// option resolves. Address questions never participate. Returns nil when
// nothing matches.
func (g GroupResolver) Resolve(
	raws []RawAnswer,
	questions map[uuid.UUID]Question,
	options map[uuid.UUID]Option,
	dims map[uuid.UUID]Dimension,
) *string {
	if key := g.scan(raws, questions, options, dims, true); key != nil {
		return key
	}
	return g.scan(raws, questions, options, dims, false)
}

func (g GroupResolver) scan(
	raws []RawAnswer,
	questions map[uuid.UUID]Question,
	options map[uuid.UUID]Option,
	dims map[uuid.UUID]Dimension,
	flagged bool,
) *string {
	for _, raw := range raws {
		q, ok := questions[raw.QuestionID]
		if !ok || q.DimensionID == nil {
			continue
		}
		d, ok := dims[*q.DimensionID]
		if !ok || !d.IsBasicInfo {
			continue
		}
		if q.Type != TypeSingle {
			continue
		}
		if flagged {
			if !q.IsGrouping {
				continue
			}
		} else if !g.textMatches(q.Text) {
			continue
		}
		if raw.OptionID == nil {
			continue
		}
		opt, ok := options[*raw.OptionID]
		if !ok || opt.QuestionID != q.ID {
			continue
		}
		key := g.Deriver.Derive(q.Text, opt.Text)
		return &key
	}
	return nil
}

func (g GroupResolver) textMatches(text string) bool {
	for _, m := range g.Markers {
		if m != "" && strings.Contains(text, m) {
			return true
		}
	}
	return false
}
