// Package simd provides the fixed-width packed float32 lanes that the
// geometric algebra types are stored in. Lanes have no algebraic meaning
// of their own; they only do elementwise arithmetic and scalar broadcast.
package simd

// Float32x3 is a 3-wide float32 lane.
type Float32x3 [3]float32

// Float32x4 is a 4-wide float32 lane.
type Float32x4 [4]float32

// Splat3 broadcasts s into every lane.
func Splat3(s float32) Float32x3 {
	return Float32x3{s, s, s}
}

// Splat4 broadcasts s into every lane.
func Splat4(s float32) Float32x4 {
	return Float32x4{s, s, s, s}
}

// ---------------------------------------------------------------------------
// Float32x3
// ---------------------------------------------------------------------------

func (a Float32x3) Add(b Float32x3) Float32x3 {
	return Float32x3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a Float32x3) Sub(b Float32x3) Float32x3 {
	return Float32x3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func (a Float32x3) Mul(b Float32x3) Float32x3 {
	return Float32x3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

func (a Float32x3) Div(b Float32x3) Float32x3 {
	return Float32x3{a[0] / b[0], a[1] / b[1], a[2] / b[2]}
}

// Scale multiplies every lane by s.
func (a Float32x3) Scale(s float32) Float32x3 {
	return a.Mul(Splat3(s))
}

func (a Float32x3) Neg() Float32x3 {
	return Float32x3{-a[0], -a[1], -a[2]}
}

// Sum adds the lanes together.
func (a Float32x3) Sum() float32 {
	return a[0] + a[1] + a[2]
}

// Dot is the lane-wise product reduced by Sum.
func (a Float32x3) Dot(b Float32x3) float32 {
	return a.Mul(b).Sum()
}

// IsZero reports whether every lane is exactly zero.
func (a Float32x3) IsZero() bool {
	return a[0] == 0 && a[1] == 0 && a[2] == 0
}

// ---------------------------------------------------------------------------
// Float32x4
// ---------------------------------------------------------------------------

func (a Float32x4) Add(b Float32x4) Float32x4 {
	return Float32x4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func (a Float32x4) Sub(b Float32x4) Float32x4 {
	return Float32x4{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

func (a Float32x4) Mul(b Float32x4) Float32x4 {
	return Float32x4{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]}
}

func (a Float32x4) Div(b Float32x4) Float32x4 {
	return Float32x4{a[0] / b[0], a[1] / b[1], a[2] / b[2], a[3] / b[3]}
}

// Scale multiplies every lane by s.
func (a Float32x4) Scale(s float32) Float32x4 {
	return a.Mul(Splat4(s))
}

func (a Float32x4) Neg() Float32x4 {
	return Float32x4{-a[0], -a[1], -a[2], -a[3]}
}

// Sum adds the lanes together.
func (a Float32x4) Sum() float32 {
	return a[0] + a[1] + a[2] + a[3]
}

// Dot is the lane-wise product reduced by Sum.
func (a Float32x4) Dot(b Float32x4) float32 {
	return a.Mul(b).Sum()
}

// XYZ drops lane 0 and returns lanes 1..3. Group elements keep their
// scalar (or pseudoscalar) in lane 0 and a bivector in lanes 1..3.
func (a Float32x4) XYZ() Float32x3 {
	return Float32x3{a[1], a[2], a[3]}
}

// Head returns lanes 0..2.
func (a Float32x4) Head() Float32x3 {
	return Float32x3{a[0], a[1], a[2]}
}

// Widen prepends w to a 3-wide lane.
func Widen(w float32, a Float32x3) Float32x4 {
	return Float32x4{w, a[0], a[1], a[2]}
}

// Extend appends w to a 3-wide lane.
func Extend(a Float32x3, w float32) Float32x4 {
	return Float32x4{a[0], a[1], a[2], w}
}
