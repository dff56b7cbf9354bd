package questionnaire

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// fillCacheKey namespaces cached fill structures by access code.
const fillCacheKey = "survey:fill:%s"

// cachedFill returns a cached fill structure, best effort: any cache
// failure falls through to the database.
func (s *service) cachedFill(ctx context.Context, accessCode string) (*Detail, bool) {
	if s.rdb == nil {
		return nil, false
	}
	raw, err := s.rdb.Get(ctx, fmt.Sprintf(fillCacheKey, accessCode)).Bytes()
	if err != nil {
		return nil, false
	}
	var d Detail
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, false
	}
	return &d, true
}

func (s *service) cacheFill(ctx context.Context, accessCode string, d *Detail) {
	if s.rdb == nil || s.fillTTL <= 0 {
		return
	}
	raw, err := json.Marshal(d)
	if err != nil {
		return
	}
	s.rdb.Set(ctx, fmt.Sprintf(fillCacheKey, accessCode), raw, s.fillTTL)
}

// invalidateFill drops the cached structure after any authoring change.
func (s *service) invalidateFill(ctx context.Context, accessCode *string) {
	if s.rdb == nil || accessCode == nil || *accessCode == "" {
		return
	}
	s.rdb.Del(ctx, fmt.Sprintf(fillCacheKey, *accessCode))
}

// invalidateFillByID looks up the access code first, for call sites that
// only hold the questionnaire id.
func (s *service) invalidateFillByID(ctx context.Context, questionnaireID uuid.UUID) {
	if s.rdb == nil {
		return
	}
	qn, err := s.db.Questionnaire.Get(ctx, questionnaireID)
	if err != nil {
		return
	}
	s.invalidateFill(ctx, qn.AccessCode)
}
