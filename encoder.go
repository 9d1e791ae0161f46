package arithcode

// Encoder converts a stream of symbols into a stream of bits, using a
// predictive Model. It is not safe for concurrent use: spec.md §5 requires
// each Encode to complete, including every bit it emits, before the next
// Encode begins, and a single Encoder carries exactly that sequential
// contract with no internal locking.
//
// Algorithm derived from spec.md §4.D, itself derived from the classic
// Witten/Neal/Cleary interval coder (as implemented in
// arithmetic-coding-core's `encoder.rs`).
type Encoder[B BitStore[B], S any, M Model[B, S]] struct {
	model   M
	state   state[B]
	pending uint32
	writer  BitWrite
}

// NewEncoder constructs an Encoder with the default precision, derived from
// model.MaxDenominator() (spec.md §4.B's precision selection).
func NewEncoder[B BitStore[B], S any, M Model[B, S]](model M, writer BitWrite) *Encoder[B, S, M] {
	precision := precisionFor[B](model.MaxDenominator())
	return newEncoderWithPrecision[B, S, M](model, writer, precision)
}

// NewEncoderWithPrecision constructs an Encoder with an explicit precision,
// for example to match a precision chosen for a chain of encoders sharing
// one bit stream (spec.md §6's chaining wire format requires identical
// precision across chained encoders).
func NewEncoderWithPrecision[B BitStore[B], S any, M Model[B, S]](model M, writer BitWrite, precision uint32) *Encoder[B, S, M] {
	return newEncoderWithPrecision[B, S, M](model, writer, precision)
}

func newEncoderWithPrecision[B BitStore[B], S any, M Model[B, S]](model M, writer BitWrite, precision uint32) *Encoder[B, S, M] {
	assertPrecisionSufficient[B](model.MaxDenominator(), precision)
	return &Encoder[B, S, M]{
		model:  model,
		state:  newState[B](precision),
		writer: writer,
	}
}

// newEncoderWithState constructs an Encoder from a pre-existing state,
// taken from a predecessor Encoder by Chain.
func newEncoderWithState[B BitStore[B], S any, M Model[B, S]](st state[B], pending uint32, writer BitWrite, model M) *Encoder[B, S, M] {
	assertPrecisionSufficient[B](model.MaxDenominator(), st.precision)
	return &Encoder[B, S, M]{
		model:   model,
		state:   st,
		pending: pending,
		writer:  writer,
	}
}

// Encode encodes a single symbol, or EOF when symbol is nil.
func (e *Encoder[B, S, M]) Encode(symbol *S) error {
	p, err := e.model.Probability(symbol)
	if err != nil {
		return err
	}
	denominator := e.model.Denominator()
	if debug && denominator.Cmp(e.model.MaxDenominator()) > 0 {
		panic("arithcode: model denominator exceeds its declared max_denominator")
	}
	e.state.scale(p, denominator)
	e.model.Update(symbol)
	return e.normalise()
}

// EncodeAll encodes every symbol in symbols, followed by EOF, then flushes
// the stream. The Encoder is left in its terminal state (spec.md §4.D's S1)
// afterwards and must not be reused except via ChainEncoder.
func (e *Encoder[B, S, M]) EncodeAll(symbols []S) error {
	for i := range symbols {
		if err := e.Encode(&symbols[i]); err != nil {
			return err
		}
	}
	if err := e.Encode(nil); err != nil {
		return err
	}
	return e.Flush()
}

// normalise implements spec.md §4.D's E1/E2/E3 renormalisation loop.
func (e *Encoder[B, S, M]) normalise() error {
	for e.state.high.Cmp(e.state.half()) < 0 || e.state.low.Cmp(e.state.half()) >= 0 {
		if e.state.high.Cmp(e.state.half()) < 0 {
			if err := e.emit(false); err != nil {
				return err
			}
			e.state.low = e.state.low.Shl(1)
			e.state.high = e.state.high.Shl(1)
		} else {
			if err := e.emit(true); err != nil {
				return err
			}
			e.state.low = e.state.low.Sub(e.state.half()).Shl(1)
			e.state.high = e.state.high.Sub(e.state.half()).Shl(1)
		}
	}

	for e.state.low.Cmp(e.state.quarter()) >= 0 && e.state.high.Cmp(e.state.threeQuarter()) < 0 {
		e.pending++
		e.state.low = e.state.low.Sub(e.state.quarter()).Shl(1)
		e.state.high = e.state.high.Sub(e.state.quarter()).Shl(1)
	}

	return nil
}

// emit writes bit, followed by !bit repeated `pending` times, resetting
// pending to zero — spec.md §4.D's "emit bit b with pending".
func (e *Encoder[B, S, M]) emit(bit bool) error {
	if err := e.writer.WriteBit(bit); err != nil {
		return wrapIOErr(err, "arithcode: write bit")
	}
	for i := uint32(0); i < e.pending; i++ {
		if err := e.writer.WriteBit(!bit); err != nil {
			return wrapIOErr(err, "arithcode: write pending bit")
		}
	}
	e.pending = 0
	return nil
}

// Flush writes the final disambiguating bit(s), guaranteeing that any
// subsequent reader's running value falls within the final [low, high]
// interval. This convention (emitting on low <= quarter, spec.md §9's open
// question) matches arithmetic-coding's `src/encoder.rs`.
func (e *Encoder[B, S, M]) Flush() error {
	e.pending++
	if e.state.low.Cmp(e.state.quarter()) <= 0 {
		return e.emit(false)
	}
	return e.emit(true)
}

// ChainEncoder consumes e and returns a new Encoder sharing its bit writer
// and coder state (low, high, pending, precision) but encoding with a new
// model. The two encoders' bit streams are concatenated with no delimiter
// — spec.md §6's chaining wire format. newModel's B must match e's.
//
// Go generics cannot express this as a method (a method cannot change its
// receiver's own type parameters), so — unlike the original crate's
// `encoder.chain(model)` — it is a free function here, grounded on
// `examples/concatenated.rs`'s `encoder1.chain(model2)`.
func ChainEncoder[B BitStore[B], S1, S2 any, M1 Model[B, S1], M2 Model[B, S2]](e *Encoder[B, S1, M1], newModel M2) *Encoder[B, S2, M2] {
	return newEncoderWithState[B, S2, M2](e.state, e.pending, e.writer, newModel)
}
