package scoring

import "github.com/google/uuid"

// ---------------------------------------------------------------------------
// Assessment level matching
// ---------------------------------------------------------------------------

// defaultMaxScore is reported when no band is configured for a scope.
const defaultMaxScore = 100

// MatchLevel selects the band covering score. levels must already be
// filtered to the right questionnaire and dimension scope and sorted by
// id ascending; among in-band candidates a band matching the respondent's
// group key wins over a generic one, and the lowest id wins among equals.
// A respondent without a group key only matches generic bands. Returns
// nil when no band covers the score.
func MatchLevel(levels []Level, score float64, groupKey *string) *Level {
	var generic *Level
	for i := range levels {
		lv := &levels[i]
		if score < lv.MinScore || score > lv.MaxScore {
			continue
		}
		if lv.GroupKey != nil {
			if groupKey != nil && *lv.GroupKey == *groupKey {
				return lv
			}
			continue
		}
		if generic == nil {
			generic = lv
		}
	}
	return generic
}

// ScopedLevels filters levels to one dimension scope. A nil dimensionID
// selects total-score bands.
func ScopedLevels(levels []Level, dimensionID *uuid.UUID) []Level {
	var out []Level
	for _, lv := range levels {
		if sameScope(lv.DimensionID, dimensionID) {
			out = append(out, lv)
		}
	}
	return out
}

// MaxBandScore returns the highest configured max_score for a scope,
// preferring the respondent's group bands over generic ones, defaulting
// to defaultMaxScore when the scope has no bands at all.
func MaxBandScore(levels []Level, groupKey *string) float64 {
	var groupMax, genericMax float64
	var haveGroup, haveGeneric bool
	for _, lv := range levels {
		if lv.GroupKey != nil {
			if groupKey != nil && *lv.GroupKey == *groupKey {
				if !haveGroup || lv.MaxScore > groupMax {
					groupMax = lv.MaxScore
					haveGroup = true
				}
			}
			continue
		}
		if !haveGeneric || lv.MaxScore > genericMax {
			genericMax = lv.MaxScore
			haveGeneric = true
		}
	}
	switch {
	case haveGroup:
		return groupMax
	case haveGeneric:
		return genericMax
	default:
		return defaultMaxScore
	}
}

// BandOverlaps reports whether candidate intersects any existing band
// with the same dimension and group scope. Both range ends are inclusive,
// so touching bounds count as an overlap. A band never conflicts with
// itself, which allows in-place updates.
func BandOverlaps(existing []Level, candidate Level) bool {
	for _, lv := range existing {
		if lv.ID == candidate.ID {
			continue
		}
		if !sameScope(lv.DimensionID, candidate.DimensionID) {
			continue
		}
		if !sameKey(lv.GroupKey, candidate.GroupKey) {
			continue
		}
		if candidate.MinScore <= lv.MaxScore && lv.MinScore <= candidate.MaxScore {
			return true
		}
	}
	return false
}

func sameScope(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func sameKey(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
