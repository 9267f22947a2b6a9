package pga3

// Matrix rows are the images of the four basis points under the sandwich
// product: rows 0..2 are the transformed axis directions and row 3 is the
// transformed origin. Read as a row-major 4×4 matrix it maps row vectors,
// p' = p·M, which is what a GPU pipeline with row-vector convention
// expects.

func matrixOf(v Multivector) [4]Point {
	var rows [4]Point
	for i := range rows {
		var basis Point
		basis.G0[i] = 1
		rows[i] = v.Transformation(basis.Multivector()).Point()
	}
	return rows
}

// Matrix converts r to a homogeneous 4×4 transform.
func (r Rotor) Matrix() [4]Point {
	return matrixOf(r.Multivector())
}

// Matrix converts t to a homogeneous 4×4 transform.
func (t Translator) Matrix() [4]Point {
	return matrixOf(t.Multivector())
}

// Matrix converts m to a homogeneous 4×4 transform.
func (m Motor) Matrix() [4]Point {
	return matrixOf(m.Multivector())
}
