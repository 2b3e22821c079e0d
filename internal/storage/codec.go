package storage

import (
	"encoding/json"
	"fmt"
	"math"
)

// encodeValues serializes a row's values with NaN mapped to null, since
// JSON has no NaN literal.
func encodeValues(values []float64) (string, error) {
	out := make([]*float64, len(values))
	for i := range values {
		if math.IsNaN(values[i]) {
			continue
		}
		out[i] = &values[i]
	}
	raw, err := json.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("encode values: %w", err)
	}
	return string(raw), nil
}

func decodeValues(raw string) ([]float64, error) {
	var in []*float64
	if err := json.Unmarshal([]byte(raw), &in); err != nil {
		return nil, fmt.Errorf("decode values: %w", err)
	}
	out := make([]float64, len(in))
	for i, v := range in {
		if v == nil {
			out[i] = math.NaN()
		} else {
			out[i] = *v
		}
	}
	return out, nil
}
