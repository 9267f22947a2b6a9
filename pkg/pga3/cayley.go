package pga3

import "math/bits"

// Basis blades are addressed by a bitmask over the generating vectors:
// bit 0 is e0, bit 1 is e1, bit 2 is e2 and bit 3 is e3. The canonical
// blade for a mask multiplies its vectors in increasing index order.
const (
	bScalar uint8 = 0
	bE0     uint8 = 1
	bE1     uint8 = 2
	bE01    uint8 = 3
	bE2     uint8 = 4
	bE02    uint8 = 5
	bE12    uint8 = 6
	bE012   uint8 = 7
	bE3     uint8 = 8
	bE03    uint8 = 9
	bE13    uint8 = 10
	bE013   uint8 = 11
	bE23    uint8 = 12
	bE023   uint8 = 13
	bE123   uint8 = 14
	bE0123  uint8 = 15

	bladeCount = 16
)

// cayleyEntry is the geometric product of two canonical blades: a signed
// blade, or zero when both contain the degenerate vector e0.
type cayleyEntry struct {
	blade uint8
	sign  float32
}

var (
	cayley = buildCayley()

	// dualSign[s] is the sign that makes e_s ∧ dualSign[s]·e_~s = e0123.
	// undualSign[c] is the sign that makes undualSign[c]·e_~c ∧ e_c = e0123.
	dualSign, undualSign = buildDualSigns()
)

func buildCayley() (t [bladeCount][bladeCount]cayleyEntry) {
	for a := uint8(0); a < bladeCount; a++ {
		for b := uint8(0); b < bladeCount; b++ {
			if a&b&bE0 != 0 {
				t[a][b] = cayleyEntry{blade: a ^ b}
				continue
			}
			t[a][b] = cayleyEntry{blade: a ^ b, sign: reorderSign(a, b)}
		}
	}
	return t
}

func buildDualSigns() (dual, undual [bladeCount]float32) {
	for s := uint8(0); s < bladeCount; s++ {
		c := bE0123 ^ s
		dual[s] = reorderSign(s, c)
		undual[s] = reorderSign(c, s)
	}
	return dual, undual
}

// reorderSign counts the transpositions needed to bring the concatenation
// of two canonical blades into canonical order.
func reorderSign(a, b uint8) float32 {
	a >>= 1
	n := 0
	for a != 0 {
		n += bits.OnesCount8(a & b)
		a >>= 1
	}
	if n&1 == 0 {
		return 1
	}
	return -1
}

// grade returns the number of vectors in a blade.
func grade(blade uint8) int {
	return bits.OnesCount8(blade)
}

// gradeFilter decides whether the product of a grade-r and a grade-s
// blade that lands on grade t survives.
type gradeFilter func(r, s, t int) bool

func keepAll(r, s, t int) bool { return true }

func outerFilter(r, s, t int) bool { return t == r+s }

func innerFilter(r, s, t int) bool {
	if r > s {
		return t == r-s
	}
	return t == s-r
}

func leftContractionFilter(r, s, t int) bool { return t == s-r }

func rightContractionFilter(r, s, t int) bool { return t == r-s }

func scalarFilter(r, s, t int) bool { return t == 0 }
