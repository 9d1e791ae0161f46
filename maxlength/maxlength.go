// Package maxlength adapts a model that already knows how to encode its own
// EOF (unlike fixedlength.Model, it speaks the same Probability/Symbol shape
// as arithcode.Model) into one that additionally enforces a hard cap on the
// number of real symbols it will ever encode.
//
// Grounded on the original crate's `max_length` module, as exercised by
// tests/max_length.rs: the wrapped model defines its own EOF probability
// (so unlike fixedlength, EOF always has a valid slot), and the Wrapper's
// only job is to reject a (max_length+1)'th real symbol with
// ErrUnexpectedSymbol. Every probability, EOF's included, is passed through
// from the wrapped model unchanged, so reaching MaxLength() does not make
// the final EOF any cheaper to encode.
package maxlength

import (
	"github.com/mewkiz/arithcode"
)

// Model is a probabilistic model that already speaks the general
// arithcode.Model shape (it defines EOF's own probability), plus a declared
// upper bound on the number of real symbols it will ever be asked to encode.
type Model[B arithcode.BitStore[B], S any] interface {
	// Probability returns the interval representing symbol's probability,
	// or EOF's when symbol is nil.
	Probability(symbol *S) (arithcode.Interval[B], error)
	// Symbol returns the symbol (or nil for EOF) whose probability interval
	// contains value.
	Symbol(value B) (*S, error)
	// Denominator is the current denominator for probability ranges.
	Denominator() B
	// MaxDenominator is the upper bound on Denominator.
	MaxDenominator() B
	// MaxLength is the maximum number of real (non-EOF) symbols this model
	// will ever be asked to encode.
	MaxLength() int
	// Update advances the model's internal state.
	Update(symbol *S)
}

// Wrapper adapts a maxlength.Model into an arithcode.Model by rejecting any
// real symbol once MaxLength() of them have already been encoded.
type Wrapper[B arithcode.BitStore[B], S any, M Model[B, S]] struct {
	model M
	count int
}

// NewWrapper constructs a Wrapper around model, with no symbols encoded yet.
func NewWrapper[B arithcode.BitStore[B], S any, M Model[B, S]](model M) *Wrapper[B, S, M] {
	return &Wrapper[B, S, M]{model: model}
}

// Probability implements arithcode.Model. Once count has reached
// model.MaxLength(), any further real symbol is rejected outright, without
// even consulting the wrapped model — EOF remains valid at every count.
func (w *Wrapper[B, S, M]) Probability(symbol *S) (arithcode.Interval[B], error) {
	if symbol != nil && w.count >= w.model.MaxLength() {
		return arithcode.Interval[B]{}, arithcode.ErrUnexpectedSymbol
	}
	return w.model.Probability(symbol)
}

// Symbol implements arithcode.Model.
func (w *Wrapper[B, S, M]) Symbol(value B) (*S, error) {
	return w.model.Symbol(value)
}

// Denominator implements arithcode.Model.
func (w *Wrapper[B, S, M]) Denominator() B {
	return w.model.Denominator()
}

// MaxDenominator implements arithcode.Model.
func (w *Wrapper[B, S, M]) MaxDenominator() B {
	return w.model.MaxDenominator()
}

// Update implements arithcode.Model, advancing the symbol count for every
// real symbol encoded.
func (w *Wrapper[B, S, M]) Update(symbol *S) {
	w.model.Update(symbol)
	if symbol != nil {
		w.count++
	}
}
