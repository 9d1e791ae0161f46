package arithcode

import "fmt"

// debug gates the precision-invariant assertions described in spec.md §7.
// Go has no built-in debug/release build distinction the way Rust does
// (debug_assert!), so the equivalent is a package-level flag rather than a
// compile-time switch. It defaults to true: violating the precision
// invariant is always a contract bug, and the cost of the check is
// negligible next to a single Encoder/Decoder construction.
var debug = true

// Interval is a half-open probability range [Start, End) over Denominator,
// equivalent to the Rust crate's `Range<B>`. It does not carry the
// denominator itself; that comes from the model's Denominator().
type Interval[B BitStore[B]] struct {
	Start B
	End   B
}

// state is the shared low/high coder interval described in spec.md §3/§4.B.
type state[B BitStore[B]] struct {
	precision uint32
	low       B
	high      B
}

// newState constructs a state with the full [0, 2^precision) interval.
func newState[B BitStore[B]](precision uint32) state[B] {
	low := Zero[B]()
	high := One[B]().Shl(precision).Sub(One[B]())
	return state[B]{precision: precision, low: low, high: high}
}

func (s state[B]) half() B {
	return One[B]().Shl(s.precision - 1)
}

func (s state[B]) quarter() B {
	return One[B]().Shl(s.precision - 2)
}

func (s state[B]) threeQuarter() B {
	return s.half().Add(s.quarter())
}

// scale narrows [low, high] to the sub-interval representing p, out of
// denominator total divisions, following spec.md §4.B's "+1/-1" convention.
func (s *state[B]) scale(p Interval[B], denominator B) {
	rnge := s.high.Sub(s.low).Add(One[B]())

	s.high = s.low.Add(rnge.Mul(p.End).Div(denominator)).Sub(One[B]())
	s.low = s.low.Add(rnge.Mul(p.Start).Div(denominator))
}

// precisionFor picks the default precision for a model with the given
// maximum denominator: BITS(B) minus the number of bits needed to represent
// that denominator, grounded on `util::precision` in the original crate.
func precisionFor[B BitStore[B]](maxDenominator B) uint32 {
	frequencyBits := maxDenominator.Log2() + 1
	assertPrecisionSufficient[B](maxDenominator, frequencyBits+2)
	return maxDenominator.Bits() - frequencyBits
}

// assertPrecisionSufficient enforces spec.md §4.B's two invariants:
//
//	precision >= log2(maxDenominator) + 3
//	log2(maxDenominator) + 1 + precision <= BITS(B)
//
// It panics (when debug is enabled) rather than returning an error, because
// a violation here is always a construction-time contract bug, not a
// recoverable runtime condition — see SPEC_FULL.md §7.
func assertPrecisionSufficient[B BitStore[B]](maxDenominator B, precision uint32) {
	if !debug {
		return
	}
	frequencyBits := maxDenominator.Log2() + 1
	if precision < frequencyBits+2 {
		panic(fmt.Sprintf("arithcode: not enough bits of precision to prevent overflow/underflow (precision=%d, frequency_bits=%d)", precision, frequencyBits))
	}
	if frequencyBits+precision > maxDenominator.Bits() {
		panic(fmt.Sprintf("arithcode: not enough bits in BitStore to support the required precision (frequency_bits=%d, precision=%d, bits=%d)", frequencyBits, precision, maxDenominator.Bits()))
	}
}
