package pga3

// ScalarPart returns the grade-0 coefficient of g.
func ScalarPart[G Group[G]](g G) float32 {
	return g.ScalarPart()
}

// Constrain picks the representative of g nearest the identity. g and -g
// act identically on geometry; only the one with a non-negative scalar
// part takes the short way round when raised to a fractional power.
func Constrain[G Group[G]](g G) G {
	if g.ScalarPart() >= 0 {
		return g
	}
	return g.Neg()
}

// Sqrt is g raised to the power one half.
func Sqrt[G Group[G]](g G) G {
	return g.Powf(0.5)
}

// Distance between two geometric objects: points, planes, lines or any
// mix of them.
func Distance[A, B Element](a A, b B) float32 {
	return Magnitude(RegressiveProduct(a, b)) / (Magnitude(a) * Magnitude(b))
}

// IdealMagnitude is the length of the ideal part of v, also called the
// ideal norm.
func IdealMagnitude[A Element](v A) float32 {
	return Dual(v).Magnitude()
}

// Project projects a onto b.
func Project[A, B Element](a A, b B) Multivector {
	bm := b.Multivector()
	return a.Multivector().RightContraction(bm.Inverse()).OuterProduct(bm)
}

// AntiProject returns the flat parallel to a that passes through b, for
// example the plane parallel to a through the point b.
func AntiProject[A, B Element](a A, b B) Multivector {
	bm := b.Multivector()
	return a.Multivector().LeftContraction(bm.Inverse()).LeftContraction(bm)
}

// Motion returns the shortest motion that carries a onto b. Both must have
// the same grade parity (two points, two lines, two planes) so that their
// product is even.
func Motion[A, B Element](a A, b B) Motor {
	m := Signum(b).GeometricProduct(Signum(a)).Motor()
	return Sqrt(Constrain(m))
}

// Interpolate moves from a towards b along the screw joining them, with
// constant velocity in t. Values of t outside [0, 1] extrapolate.
func Interpolate[G Group[G]](a, b G, t float32) G {
	return Constrain(b.Mul(a.Reversal())).Powf(t).Mul(a)
}
