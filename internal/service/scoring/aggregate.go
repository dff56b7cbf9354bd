package scoring

import "github.com/google/uuid"

// ---------------------------------------------------------------------------
// Dimension aggregation
// ---------------------------------------------------------------------------

// AggregateDimensions sums valuated answers by dimension and applies each
// dimension's weight. Answers without a dimension, terminal address
// records, and anything under a basic-info dimension are skipped.
func AggregateDimensions(answers []Valuated, dims map[uuid.UUID]Dimension) map[uuid.UUID]float64 {
	raw := make(map[uuid.UUID]float64)
	for _, a := range answers {
		if a.Terminal || a.DimensionID == nil {
			continue
		}
		d, ok := dims[*a.DimensionID]
		if !ok || d.IsBasicInfo {
			continue
		}
		raw[d.ID] += a.Value
	}

	weighted := make(map[uuid.UUID]float64, len(raw))
	for id, sum := range raw {
		weighted[id] = sum * dims[id].Weight
	}
	return weighted
}

// TotalScore is the sum of the weighted dimension scores, not a separate
// weighting pass.
func TotalScore(weighted map[uuid.UUID]float64) float64 {
	var total float64
	for _, s := range weighted {
		total += s
	}
	return total
}
