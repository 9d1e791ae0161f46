package arithcode

import "io"

// Decoder converts a stream of bits into a stream of symbols, using the
// same predictive Model an Encoder used to produce them. Not safe for
// concurrent use, for the same reason as Encoder (spec.md §5).
type Decoder[B BitStore[B], S any, M Model[B, S]] struct {
	model         M
	state         state[B]
	reader        BitRead
	x             B
	uninitialised bool
}

// NewDecoder constructs a Decoder with the default precision, mirroring
// NewEncoder. It does not read from reader; the first Decode call performs
// the deferred precision-wide fill described in spec.md §4.E.
func NewDecoder[B BitStore[B], S any, M Model[B, S]](model M, reader BitRead) *Decoder[B, S, M] {
	precision := precisionFor[B](model.MaxDenominator())
	return newDecoderWithPrecision[B, S, M](model, reader, precision)
}

// NewDecoderWithPrecision constructs a Decoder with an explicit precision,
// for chaining compatibility.
func NewDecoderWithPrecision[B BitStore[B], S any, M Model[B, S]](model M, reader BitRead, precision uint32) *Decoder[B, S, M] {
	return newDecoderWithPrecision[B, S, M](model, reader, precision)
}

func newDecoderWithPrecision[B BitStore[B], S any, M Model[B, S]](model M, reader BitRead, precision uint32) *Decoder[B, S, M] {
	assertPrecisionSufficient[B](model.MaxDenominator(), precision)
	return &Decoder[B, S, M]{
		model:         model,
		state:         newState[B](precision),
		reader:        reader,
		uninitialised: true,
	}
}

// newDecoderWithState constructs a Decoder from a pre-existing state and x
// taken from a predecessor Decoder by Chain. The uninitialised flag is
// carried over with x: if the predecessor already filled x it is not filled
// again, and if it never did, the first Decode here performs the fill.
func newDecoderWithState[B BitStore[B], S any, M Model[B, S]](st state[B], x B, uninitialised bool, reader BitRead, model M) *Decoder[B, S, M] {
	assertPrecisionSufficient[B](model.MaxDenominator(), st.precision)
	return &Decoder[B, S, M]{
		model:         model,
		state:         st,
		reader:        reader,
		x:             x,
		uninitialised: uninitialised,
	}
}

// readBit reads one bit, treating an exhausted stream as a zero bit. x holds
// precision bits of lookahead, so the end of the stream is reached both in
// the initial fill of a short stream and while renormalising after the last
// symbols.
func (d *Decoder[B, S, M]) readBit() (bool, error) {
	bit, err := d.reader.ReadBit()
	if err != nil {
		if err == io.EOF {
			return false, nil
		}
		return false, err
	}
	return bit, nil
}

func (d *Decoder[B, S, M]) initialise() error {
	if !d.uninitialised {
		return nil
	}
	x := Zero[B]()
	for i := uint32(0); i < d.state.precision; i++ {
		x = x.Shl(1)
		bit, err := d.readBit()
		if err != nil {
			return wrapIOErr(err, "arithcode: read initial bits")
		}
		if bit {
			x = x.Add(One[B]())
		}
	}
	d.x = x
	d.uninitialised = false
	return nil
}

// Decode decodes and returns a single symbol, or nil on EOF.
func (d *Decoder[B, S, M]) Decode() (*S, error) {
	if err := d.initialise(); err != nil {
		return nil, err
	}

	denominator := d.model.Denominator()
	rnge := d.state.high.Sub(d.state.low).Add(One[B]())
	value := d.x.Sub(d.state.low).Add(One[B]()).Mul(denominator).Sub(One[B]()).Div(rnge)

	symbol, err := d.model.Symbol(value)
	if err != nil {
		// Under a correct model this branch is unreachable: Symbol's
		// contract (spec.md §3) guarantees Probability(Symbol(v)) contains
		// v for every v in [0, denominator). A failure here is an
		// implementation bug in the model, not a stream-level error.
		return nil, err
	}

	p, err := d.model.Probability(symbol)
	if err != nil {
		return nil, err
	}

	d.state.scale(p, denominator)
	d.model.Update(symbol)
	if err := d.normalise(); err != nil {
		return nil, err
	}

	return symbol, nil
}

// DecodeAll decodes symbols until EOF and returns them as a slice. The
// original crate exposes this as a pull-based iterator; Go has no built-in
// generator primitive that fits a synchronous, single-threaded decoder
// without channel/goroutine ceremony the spec doesn't call for (spec.md
// §9's "Open question" about the iterator is resolved this way — see
// SPEC_FULL.md). Callers wanting to process symbols one at a time should
// call Decode directly in a loop instead.
func (d *Decoder[B, S, M]) DecodeAll() ([]S, error) {
	var out []S
	for {
		symbol, err := d.Decode()
		if err != nil {
			return out, err
		}
		if symbol == nil {
			return out, nil
		}
		out = append(out, *symbol)
	}
}

// normalise implements spec.md §4.E's decoder-side renormalisation: same
// predicates as the encoder, but every shift-left reads one more bit into x
// instead of emitting one.
func (d *Decoder[B, S, M]) normalise() error {
	for d.state.high.Cmp(d.state.half()) < 0 || d.state.low.Cmp(d.state.half()) >= 0 {
		if d.state.high.Cmp(d.state.half()) < 0 {
			d.state.low = d.state.low.Shl(1)
			d.state.high = d.state.high.Shl(1)
			d.x = d.x.Shl(1)
		} else {
			half := d.state.half()
			d.state.low = d.state.low.Sub(half).Shl(1)
			d.state.high = d.state.high.Sub(half).Shl(1)
			d.x = d.x.Sub(half).Shl(1)
		}
		if err := d.shiftInBit(); err != nil {
			return err
		}
	}

	for d.state.low.Cmp(d.state.quarter()) >= 0 && d.state.high.Cmp(d.state.threeQuarter()) < 0 {
		quarter := d.state.quarter()
		d.state.low = d.state.low.Sub(quarter).Shl(1)
		d.state.high = d.state.high.Sub(quarter).Shl(1)
		d.x = d.x.Sub(quarter).Shl(1)
		if err := d.shiftInBit(); err != nil {
			return err
		}
	}

	return nil
}

func (d *Decoder[B, S, M]) shiftInBit() error {
	bit, err := d.readBit()
	if err != nil {
		return wrapIOErr(err, "arithcode: read bit")
	}
	if bit {
		d.x = d.x.Add(One[B]())
	}
	return nil
}

// ChainDecoder consumes d and returns a new Decoder sharing its bit reader
// and coder state (low, high, x, uninitialised) but decoding with a new
// model, mirroring ChainEncoder. A chained decoder does NOT re-fill x that d
// already filled; if d never decoded anything, the new decoder's first
// Decode performs the initial fill.
func ChainDecoder[B BitStore[B], S1, S2 any, M1 Model[B, S1], M2 Model[B, S2]](d *Decoder[B, S1, M1], newModel M2) *Decoder[B, S2, M2] {
	return newDecoderWithState[B, S2, M2](d.state, d.x, d.uninitialised, d.reader, newModel)
}
