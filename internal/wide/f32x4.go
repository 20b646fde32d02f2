package wide

import "math"

// F32x4 represents 4 float32 lanes, one color per value.
// The underlying type matches golang.org/x/image/math/f32.Vec4, so the two
// convert freely.
type F32x4 [4]float32

// SplatF32 creates F32x4 with all lanes set to n.
func SplatF32(n float32) F32x4 {
	return F32x4{n, n, n, n}
}

// Add performs element-wise addition.
func (v F32x4) Add(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// Sub performs element-wise subtraction.
func (v F32x4) Sub(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = v[i] - other[i]
	}
	return result
}

// Mul performs element-wise multiplication.
func (v F32x4) Mul(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = v[i] * other[i]
	}
	return result
}

// Clamp clamps each lane to [minVal, maxVal]. NaN lanes become minVal.
func (v F32x4) Clamp(minVal, maxVal float32) F32x4 {
	return v.Max(SplatF32(minVal)).Min(SplatF32(maxVal))
}

// Lerp performs linear interpolation: v + (other - v) * t.
// When t=0, returns v; when t=1, returns other.
func (v F32x4) Lerp(other F32x4, t F32x4) F32x4 {
	return v.Add(other.Sub(v).Mul(t))
}

// Min performs element-wise minimum. A NaN lane in v yields other.
func (v F32x4) Min(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		if v[i] < other[i] {
			result[i] = v[i]
		} else {
			result[i] = other[i]
		}
	}
	return result
}

// Max performs element-wise maximum. A NaN lane in v yields other.
func (v F32x4) Max(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		if v[i] > other[i] {
			result[i] = v[i]
		} else {
			result[i] = other[i]
		}
	}
	return result
}

// Round rounds each lane to the nearest integer, halves up: floor(x + 0.5).
func (v F32x4) Round() F32x4 {
	var result F32x4
	for i := range v {
		result[i] = float32(math.Floor(float64(v[i]) + 0.5))
	}
	return result
}

// InRange reports whether every lane lies in [minVal, maxVal].
func (v F32x4) InRange(minVal, maxVal float32) bool {
	for i := range v {
		if !(v[i] >= minVal && v[i] <= maxVal) {
			return false
		}
	}
	return true
}
