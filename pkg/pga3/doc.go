// Package pga3 implements 3D projective geometric algebra, R(3,0,1).
//
// Points, planes, lines and rigid motions are small immutable value types
// stored in packed float32 lanes (see package simd). They combine through
// grade-filtered products driven by a single Cayley table over the sixteen
// basis blades, and the group elements (Rotor, Translator, Motor) are built
// from and decomposed into their generators (Branch, IdealLine, Line) with
// closed-form exponential and logarithm maps.
//
// Basis and orientation conventions:
//
//	e0² = 0, e1² = e2² = e3² = 1
//	Point      x·e032 + y·e013 + z·e021 + w·e123
//	Plane      x·e1 + y·e2 + z·e3 + d·e0      (x·X + y·Y + z·Z + d = 0)
//	Branch     x·e23 + y·e31 + z·e12           (rotation generator)
//	IdealLine  x·e01 + y·e02 + z·e03           (translation generator)
//	Motor      s + Branch + p·e0123 + IdealLine
//
// Group elements act on geometry through the sandwich product
// v·x·reversal(v). RotorFromAngleAxis follows the right-hand rule and
// NewTranslator(x, y, z) moves points by (x, y, z).
//
// Every operation is a pure function of its inputs. Degenerate inputs are
// resolved by explicit branches in the exp/ln maps, never by errors; a
// division by a vanishing magnitude propagates Inf or NaN.
package pga3
