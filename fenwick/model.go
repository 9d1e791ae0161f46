package fenwick

import (
	"fmt"

	"github.com/mewkiz/arithcode"
)

// ValueError reports a symbol index outside a model's declared range.
type ValueError struct {
	Symbol int
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("arithcode/fenwick: invalid symbol received: %d", e.Symbol)
}

// SaturationPolicy controls what a Model does once its denominator reaches
// MaxDenominator: further weight updates would overflow the precision
// budget an Encoder/Decoder pair was built with.
type SaturationPolicy int

const (
	// SaturationFreeze stops adapting once the denominator reaches
	// MaxDenominator, leaving the distribution as-is rather than crashing
	// a long-running stream. This is the default, matching the original
	// crate's plain FenwickModel (panic_on_saturation unset).
	SaturationFreeze SaturationPolicy = iota
	// SaturationPanic panics the moment the denominator would exceed
	// MaxDenominator (independently of the arithcode debug flag), surfacing
	// saturation immediately instead of silently freezing. Grounded on
	// the original crate's `Builder::panic_on_saturation`.
	SaturationPanic
)

// Model is a simple adaptive probability model: n_symbols real symbols plus
// EOF, each starting with frequency 1, incremented by 1 on every Update
// until the denominator hits maxDenominator.
//
// Grounded on fenwick-model/src/simple.rs's FenwickModel.
type Model struct {
	weights        *Weights
	maxDenominator uint64
	saturation     SaturationPolicy
}

// Builder configures a Model before use, mirroring the original crate's
// `FenwickModel::builder` (a `#[must_use]` struct rather than functional
// options, since there are only ever one or two knobs to set).
type Builder struct {
	model *Model
}

// NewBuilder starts building a Model over nSymbols real symbols, with a
// declared maxDenominator the denominator must never exceed.
func NewBuilder(nSymbols int, maxDenominator uint64) *Builder {
	return &Builder{
		model: &Model{
			weights:        NewWeights(nSymbols),
			maxDenominator: maxDenominator,
			saturation:     SaturationFreeze,
		},
	}
}

// WithSaturationPolicy sets the policy applied once the denominator reaches
// maxDenominator.
func (b *Builder) WithSaturationPolicy(policy SaturationPolicy) *Builder {
	b.model.saturation = policy
	return b
}

// Build returns the configured Model.
func (b *Builder) Build() *Model {
	return b.model
}

// NewModel returns a Model over nSymbols real symbols with the default
// (freeze) saturation policy, equivalent to
// NewBuilder(nSymbols, maxDenominator).Build().
func NewModel(nSymbols int, maxDenominator uint64) *Model {
	return NewBuilder(nSymbols, maxDenominator).Build()
}

// Probability implements arithcode.Model.
func (m *Model) Probability(symbol *int) (arithcode.Interval[arithcode.Uint64], error) {
	if symbol != nil && (*symbol < 0 || *symbol >= m.weights.Len()) {
		return arithcode.Interval[arithcode.Uint64]{}, &ValueError{Symbol: *symbol}
	}
	start, end := m.weights.Range(symbol)
	return arithcode.Interval[arithcode.Uint64]{
		Start: arithcode.Uint64(start),
		End:   arithcode.Uint64(end),
	}, nil
}

// Symbol implements arithcode.Model.
func (m *Model) Symbol(value arithcode.Uint64) (*int, error) {
	return m.weights.Symbol(uint64(value)), nil
}

// Denominator implements arithcode.Model.
func (m *Model) Denominator() arithcode.Uint64 {
	return arithcode.Uint64(m.weights.Total())
}

// MaxDenominator implements arithcode.Model.
func (m *Model) MaxDenominator() arithcode.Uint64 {
	return arithcode.Uint64(m.maxDenominator)
}

// Update implements arithcode.Model. Once the denominator has reached
// maxDenominator, further weight increments are skipped (SaturationFreeze)
// or, under SaturationPanic, reported via panic rather than silently
// dropped — matching fenwick-model's debug_assert! on the same condition.
func (m *Model) Update(symbol *int) {
	if m.saturation == SaturationPanic && uint64(m.Denominator()) >= m.maxDenominator {
		panic("arithcode/fenwick: hit max denominator")
	}
	if uint64(m.Denominator()) < m.maxDenominator {
		m.weights.Update(symbol, 1)
	}
}
