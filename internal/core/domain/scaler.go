package domain

import (
	"errors"
	"math"
)

// ErrEmptyFit is returned when a scaler is fitted against a catalog without a
// single complete feature row.
var ErrEmptyFit = errors.New("domain: no complete feature rows to fit scaler")

// FeatureScaler standardizes feature vectors to zero mean and unit standard
// deviation using catalog-wide statistics. It is fitted once at startup from
// the full catalog and is immutable afterwards, so it is safe to share across
// concurrent recommendation calls.
type FeatureScaler struct {
	mean FeatureVector
	std  FeatureVector
	rows int
}

// FitScaler computes per-feature mean and population standard deviation over
// every catalog row whose features are all present. Rows with a missing value
// are dropped, not imputed.
func FitScaler(tracks []Track) (*FeatureScaler, error) {
	var sum FeatureVector
	n := 0
	for _, t := range tracks {
		v := t.Features()
		if !v.Complete() {
			continue
		}
		for i, x := range v {
			sum[i] += x
		}
		n++
	}
	if n == 0 {
		return nil, ErrEmptyFit
	}

	s := &FeatureScaler{rows: n}
	for i := range sum {
		s.mean[i] = sum[i] / float64(n)
	}

	var sq FeatureVector
	for _, t := range tracks {
		v := t.Features()
		if !v.Complete() {
			continue
		}
		for i, x := range v {
			d := x - s.mean[i]
			sq[i] += d * d
		}
	}
	for i := range sq {
		s.std[i] = math.Sqrt(sq[i] / float64(n))
	}

	return s, nil
}

// Transform standardizes a vector with the fitted statistics. A feature with
// zero variance across the catalog carries no discriminative signal, so it
// maps to zero instead of dividing by zero.
func (s *FeatureScaler) Transform(v FeatureVector) FeatureVector {
	var out FeatureVector
	for i, x := range v {
		if s.std[i] == 0 {
			out[i] = 0
			continue
		}
		out[i] = (x - s.mean[i]) / s.std[i]
	}
	return out
}

// Rows reports how many catalog rows contributed to the fit.
func (s *FeatureScaler) Rows() int {
	return s.rows
}
