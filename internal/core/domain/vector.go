package domain

import "math"

// FeatureVector is an ordered, fixed-size audio feature vector. Index with the
// Feat* constants.
type FeatureVector [FeatureCount]float64

// Complete reports whether every feature carries a real value. Vectors built
// from catalog rows with missing columns contain NaN and cannot be compared.
func (v FeatureVector) Complete() bool {
	for _, x := range v {
		if math.IsNaN(x) {
			return false
		}
	}
	return true
}

// MeanVector returns the element-wise arithmetic mean of the given vectors.
// The second return value is false when the input is empty, which is the
// "no usable seed songs" sentinel for callers.
func MeanVector(vectors []FeatureVector) (FeatureVector, bool) {
	var mean FeatureVector
	if len(vectors) == 0 {
		return mean, false
	}
	for _, v := range vectors {
		for i, x := range v {
			mean[i] += x
		}
	}
	for i := range mean {
		mean[i] /= float64(len(vectors))
	}
	return mean, true
}

// CosineDistance returns 1 minus the cosine similarity of a and b. A zero
// magnitude vector has no direction; it is reported at distance 1 so the
// ordering stays total.
func CosineDistance(a, b FeatureVector) float64 {
	var dot, magA, magB float64
	for i := range a {
		dot += a[i] * b[i]
		magA += a[i] * a[i]
		magB += b[i] * b[i]
	}
	if magA == 0 || magB == 0 {
		return 1
	}
	return 1 - dot/(math.Sqrt(magA)*math.Sqrt(magB))
}
