// Package oneshot adapts a model describing exactly one symbol — no
// adaptation, no declared length, the whole of MaxDenominator() available
// from the very first call — into the general arithcode.Model contract.
//
// Grounded on the original crate's `one_shot` module, as exercised by
// tests/precision_checking.rs's SmallModel/BigModel: the wrapped model is
// simpler even than fixedlength.Model, since there is nothing to count down
// and nothing to adapt — after its one symbol, EOF is the only possibility.
package oneshot

import (
	"github.com/mewkiz/arithcode"
)

// Model is a probabilistic model for a single, non-adaptive symbol.
type Model[B arithcode.BitStore[B], S any] interface {
	// Probability returns the interval representing symbol's probability,
	// out of the full MaxDenominator() space.
	Probability(symbol S) (arithcode.Interval[B], error)
	// Symbol returns the symbol whose probability interval contains value.
	Symbol(value B) S
	// MaxDenominator is the (fixed) denominator of every probability this
	// model returns.
	MaxDenominator() B
}

// Wrapper adapts a oneshot.Model into an arithcode.Model: one real symbol,
// then EOF forever after.
type Wrapper[B arithcode.BitStore[B], S any, M Model[B, S]] struct {
	model M
	done  bool
}

// NewWrapper constructs a Wrapper around model, with its one symbol not yet
// encoded.
func NewWrapper[B arithcode.BitStore[B], S any, M Model[B, S]](model M) *Wrapper[B, S, M] {
	return &Wrapper[B, S, M]{model: model}
}

// Probability implements arithcode.Model.
func (w *Wrapper[B, S, M]) Probability(symbol *S) (arithcode.Interval[B], error) {
	if symbol == nil {
		if !w.done {
			return arithcode.Interval[B]{}, arithcode.ErrUnexpectedEOF
		}
		return arithcode.Interval[B]{Start: arithcode.Zero[B](), End: arithcode.One[B]()}, nil
	}
	if w.done {
		return arithcode.Interval[B]{}, arithcode.ErrUnexpectedSymbol
	}
	return w.model.Probability(*symbol)
}

// Symbol implements arithcode.Model.
func (w *Wrapper[B, S, M]) Symbol(value B) (*S, error) {
	if w.done {
		return nil, nil
	}
	symbol := w.model.Symbol(value)
	return &symbol, nil
}

// Denominator implements arithcode.Model. The model never adapts, so the
// denominator is always MaxDenominator() until the one symbol has been
// consumed, after which EOF alone occupies a single slot.
func (w *Wrapper[B, S, M]) Denominator() B {
	if w.done {
		return arithcode.One[B]()
	}
	return w.model.MaxDenominator()
}

// MaxDenominator implements arithcode.Model.
func (w *Wrapper[B, S, M]) MaxDenominator() B {
	return w.model.MaxDenominator()
}

// Update implements arithcode.Model.
func (w *Wrapper[B, S, M]) Update(symbol *S) {
	if symbol != nil {
		w.done = true
	}
}
