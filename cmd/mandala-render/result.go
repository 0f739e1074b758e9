package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Faultbox/mandala/internal/solar"
)

// result is one rendered latitude. Azimuth and K are nil where the model
// is undefined, since JSON has no NaN.
type result struct {
	LatitudeDeg float64  `json:"latitude"`
	AzimuthDeg  *float64 `json:"north_azimuth"`
	K           *float64 `json:"k"`
	File        string   `json:"file,omitempty"`
}

func newResult(v solar.Values) result {
	r := result{LatitudeDeg: v.LatitudeDeg}
	if v.IsDefined() {
		az, k := v.NorthAzimuthDeg, v.K
		r.AzimuthDeg = &az
		r.K = &k
	}
	return r
}

func (r result) String() string {
	values := "azimuth undefined"
	if r.AzimuthDeg != nil {
		values = fmt.Sprintf("azimuth %.4f°  k %.4f", *r.AzimuthDeg, *r.K)
	}
	s := fmt.Sprintf("lat %8.4f°  %s", r.LatitudeDeg, values)
	if r.File != "" {
		s += "  -> " + r.File
	}
	return s
}

// latitudes is a repeatable -lat flag.
type latitudes []float64

func (l *latitudes) String() string {
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (l *latitudes) Set(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("invalid latitude %q: %w", s, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("invalid latitude %q: not a finite number", s)
	}
	*l = append(*l, v)
	return nil
}

// parseLatitudes parses a comma-separated list, skipping empty entries.
func parseLatitudes(s string) ([]float64, error) {
	var out latitudes
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		if err := out.Set(part); err != nil {
			return nil, err
		}
	}
	return out, nil
}
