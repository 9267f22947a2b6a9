package pga3

// The operators below accept any pair of entities. Operands are expanded
// into full multivectors, combined through the Cayley table and returned
// as a Multivector; the caller projects the result onto the entity type
// matching its grade, for example RegressiveProduct(a, b).Line().

func GeometricProduct[A, B Element](a A, b B) Multivector {
	return a.Multivector().GeometricProduct(b.Multivector())
}

// OuterProduct is also called join.
func OuterProduct[A, B Element](a A, b B) Multivector {
	return a.Multivector().OuterProduct(b.Multivector())
}

// RegressiveProduct is also called meet.
func RegressiveProduct[A, B Element](a A, b B) Multivector {
	return a.Multivector().RegressiveProduct(b.Multivector())
}

func InnerProduct[A, B Element](a A, b B) Multivector {
	return a.Multivector().InnerProduct(b.Multivector())
}

func LeftContraction[A, B Element](a A, b B) Multivector {
	return a.Multivector().LeftContraction(b.Multivector())
}

func RightContraction[A, B Element](a A, b B) Multivector {
	return a.Multivector().RightContraction(b.Multivector())
}

func ScalarProduct[A, B Element](a A, b B) float32 {
	return a.Multivector().ScalarProduct(b.Multivector())[bScalar]
}

// Transformation applies v to x by the sandwich v·x·reversal(v).
func Transformation[V, X Element](v V, x X) Multivector {
	return v.Multivector().Transformation(x.Multivector())
}

func Dual[A Element](a A) Multivector {
	return a.Multivector().Dual()
}

func Undual[A Element](a A) Multivector {
	return a.Multivector().Undual()
}

func Reversal[A Element](a A) Multivector {
	return a.Multivector().Reversal()
}

func Automorphism[A Element](a A) Multivector {
	return a.Multivector().Automorphism()
}

func Conjugation[A Element](a A) Multivector {
	return a.Multivector().Conjugation()
}

func SquaredMagnitude[A Element](a A) float32 {
	return a.Multivector().SquaredMagnitude()
}

func Magnitude[A Element](a A) float32 {
	return a.Multivector().Magnitude()
}

func Inverse[A Element](a A) Multivector {
	return a.Multivector().Inverse()
}

func Signum[A Element](a A) Multivector {
	return a.Multivector().Signum()
}
