// Package fixedlength adapts a model that always encodes exactly Length()
// symbols into the general arithcode.Model EOF-terminated contract, without
// spending any probability space on an EOF marker.
//
// Grounded on the original crate's `fixed_length` module
// (arithmetic-coding-core's examples/fixed_length.rs): since the number of
// symbols is known ahead of time, no 'stop' symbol is needed, and the
// Wrapper synthesises EOF purely from a counter instead.
package fixedlength

import (
	"github.com/mewkiz/arithcode"
)

// Model is a probabilistic model for a declared, fixed number of symbols.
// Unlike arithcode.Model, Probability/Symbol never see EOF.
type Model[B arithcode.BitStore[B], S any] interface {
	// Probability returns the interval representing symbol's probability.
	Probability(symbol S) (arithcode.Interval[B], error)
	// Symbol returns the symbol whose probability interval contains value.
	Symbol(value B) (S, error)
	// Denominator is the current denominator for probability ranges.
	Denominator() B
	// MaxDenominator is the upper bound on Denominator.
	MaxDenominator() B
	// Length is the total number of symbols this model will encode/decode.
	Length() int
	// Update advances the model's internal state. No-op for non-adaptive
	// models.
	Update(symbol S)
}

// Wrapper adapts a fixedlength.Model into an arithcode.Model by counting
// down the remaining symbols and synthesising EOF purely from that counter.
type Wrapper[B arithcode.BitStore[B], S any, M Model[B, S]] struct {
	model     M
	remaining int
}

// NewWrapper constructs a Wrapper around model, with Length() symbols
// remaining to encode/decode.
func NewWrapper[B arithcode.BitStore[B], S any, M Model[B, S]](model M) *Wrapper[B, S, M] {
	return &Wrapper[B, S, M]{model: model, remaining: model.Length()}
}

// Probability implements arithcode.Model. A nil symbol (EOF) is only valid
// once the counter has reached zero; encoding a real symbol once the
// counter has reached zero is rejected with ErrUnexpectedSymbol, and
// encoding EOF before it has reached zero is rejected with
// ErrUnexpectedEOF — see arithmetic-coding-core's fixed_length::Wrapper.
func (w *Wrapper[B, S, M]) Probability(symbol *S) (arithcode.Interval[B], error) {
	if symbol == nil {
		if w.remaining > 0 {
			return arithcode.Interval[B]{}, arithcode.ErrUnexpectedEOF
		}
		// The declared length has been reached: EOF is the only possible
		// outcome, so it occupies the entire (single-slot) probability
		// space.
		return arithcode.Interval[B]{Start: arithcode.Zero[B](), End: arithcode.One[B]()}, nil
	}
	if w.remaining == 0 {
		return arithcode.Interval[B]{}, arithcode.ErrUnexpectedSymbol
	}
	return w.model.Probability(*symbol)
}

// Symbol implements arithcode.Model.
func (w *Wrapper[B, S, M]) Symbol(value B) (*S, error) {
	if w.remaining == 0 {
		return nil, nil
	}
	symbol, err := w.model.Symbol(value)
	if err != nil {
		return nil, err
	}
	return &symbol, nil
}

// Denominator implements arithcode.Model. Once the declared length has been
// reached, the only valid symbol is EOF, occupying the whole (single-slot)
// probability space.
func (w *Wrapper[B, S, M]) Denominator() B {
	if w.remaining == 0 {
		return arithcode.One[B]()
	}
	return w.model.Denominator()
}

// MaxDenominator implements arithcode.Model. No extra slot is needed for
// EOF (unlike the general Model), since EOF and the wrapped model's own
// symbols are never simultaneously possible outcomes.
func (w *Wrapper[B, S, M]) MaxDenominator() B {
	return w.model.MaxDenominator()
}

// Update implements arithcode.Model, decrementing the remaining-symbol
// counter.
func (w *Wrapper[B, S, M]) Update(symbol *S) {
	if symbol != nil {
		w.model.Update(*symbol)
		w.remaining--
	}
}
