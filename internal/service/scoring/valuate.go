package scoring

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// Answer valuation
// ---------------------------------------------------------------------------

// Valuator converts raw answers into valuated ones against a snapshot of
// the questionnaire's live questions and options. Both maps must only
// contain non-deleted rows.
type Valuator struct {
	Questions map[uuid.UUID]Question
	Options   map[uuid.UUID]Option
}

// Valuate validates one raw answer and computes its score contribution.
//
//   - single: the chosen option must resolve; value = option value (0 when
//     null); a text-only answer is kept unscored with the text dropped
//   - multiple: every selected option must resolve; value = sum of values
//   - text, area: value 0, text always retained
//   - address: terminal record, payload retained verbatim
//
// Free text on choice answers is kept only when a chosen option carries
// the is_other flag, otherwise it is dropped.
func (v Valuator) Valuate(raw RawAnswer) (Valuated, error) {
	if raw.QuestionID == uuid.Nil {
		return Valuated{}, ErrMissingField
	}
	q, ok := v.Questions[raw.QuestionID]
	if !ok {
		return Valuated{}, fmt.Errorf("%w: unknown question %s", ErrMissingField, raw.QuestionID)
	}

	selected := raw.OptionIDs
	if len(selected) == 0 && raw.OptionList != "" {
		ids, err := parseOptionList(raw.OptionList)
		if err != nil {
			return Valuated{}, err
		}
		selected = ids
	}

	if raw.OptionID == nil && len(selected) == 0 && raw.Text == "" {
		return Valuated{}, ErrEmptyAnswer
	}

	out := Valuated{QuestionID: q.ID, DimensionID: q.DimensionID}

	switch q.Type {
	case TypeAddress:
		out.Terminal = true
		out.Text = retain(raw.Text)
		return out, nil

	case TypeText, TypeArea:
		out.Text = retain(raw.Text)
		return out, nil

	case TypeSingle:
		if raw.OptionID == nil {
			// Text-only answer on a choice question: keep the row
			// with no score rather than reject the submission.
			return out, nil
		}
		opt, ok := v.Options[*raw.OptionID]
		if !ok || opt.QuestionID != q.ID {
			return Valuated{}, fmt.Errorf("%w: %s", ErrInvalidOption, *raw.OptionID)
		}
		id := opt.ID
		out.OptionID = &id
		if opt.Value != nil {
			out.Value = *opt.Value
		}
		if opt.IsOther {
			out.Text = retain(raw.Text)
		}
		return out, nil

	case TypeMultiple:
		if len(selected) == 0 {
			return Valuated{}, ErrEmptyAnswer
		}
		var hasOther bool
		for _, id := range selected {
			opt, ok := v.Options[id]
			if !ok || opt.QuestionID != q.ID {
				return Valuated{}, fmt.Errorf("%w: %s", ErrInvalidOption, id)
			}
			if opt.Value != nil {
				out.Value += *opt.Value
			}
			if opt.IsOther {
				hasOther = true
			}
		}
		out.SelectedIDs = selected
		if hasOther {
			out.Text = retain(raw.Text)
		}
		return out, nil
	}

	return Valuated{}, fmt.Errorf("unsupported question type %q", q.Type)
}

// ValuateAll valuates every raw answer, skipping answers whose question no
// longer exists (stale client state after a question was deleted). Any
// validation error rejects the whole batch.
func (v Valuator) ValuateAll(raws []RawAnswer) ([]Valuated, error) {
	out := make([]Valuated, 0, len(raws))
	for _, raw := range raws {
		if raw.QuestionID == uuid.Nil {
			return nil, ErrMissingField
		}
		if _, ok := v.Questions[raw.QuestionID]; !ok {
			continue
		}
		va, err := v.Valuate(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, va)
	}
	return out, nil
}

func parseOptionList(s string) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := uuid.Parse(part)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidOption, part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func retain(text string) *string {
	if text == "" {
		return nil
	}
	return &text
}
