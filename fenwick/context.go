package fenwick

import "github.com/mewkiz/arithcode"

// ContextModel is a context-switching variant of Model: it keeps one
// Weights tree per possible previous symbol (plus one for "no symbol yet"),
// and routes Probability/Symbol/Update through whichever tree corresponds
// to the symbol most recently decoded or encoded.
//
// Grounded on fenwick-model/src/context_switching.rs.
type ContextModel struct {
	contexts        []*Weights
	previousContext int
	currentContext  int
	maxDenominator  uint64
}

// NewContextModel returns a ContextModel over nSymbols real symbols, with
// one Weights tree per symbol (plus one for the initial, symbol-less
// context) and a fixed 1<<17 denominator ceiling, matching the original
// crate's `with_symbols` constructor.
func NewContextModel(nSymbols int) *ContextModel {
	contexts := make([]*Weights, nSymbols+1)
	for i := range contexts {
		contexts[i] = NewWeights(nSymbols)
	}
	return &ContextModel{
		contexts:        contexts,
		previousContext: 1,
		currentContext:  0,
		maxDenominator:  1 << 17,
	}
}

func (m *ContextModel) context() *Weights {
	return m.contexts[m.currentContext]
}

// Probability implements arithcode.Model, consulting the tree for the
// current context (the symbol most recently encoded/decoded).
func (m *ContextModel) Probability(symbol *int) (arithcode.Interval[arithcode.Uint64], error) {
	if symbol != nil && (*symbol < 0 || *symbol >= m.context().Len()) {
		return arithcode.Interval[arithcode.Uint64]{}, &ValueError{Symbol: *symbol}
	}
	start, end := m.context().Range(symbol)
	return arithcode.Interval[arithcode.Uint64]{
		Start: arithcode.Uint64(start),
		End:   arithcode.Uint64(end),
	}, nil
}

// Symbol implements arithcode.Model.
func (m *ContextModel) Symbol(value arithcode.Uint64) (*int, error) {
	return m.context().Symbol(uint64(value)), nil
}

// Denominator implements arithcode.Model: the current context's own total,
// matching fenwick-model/src/context_switching.rs's
// `fn denominator(&self) -> Self::B { self.context().total }` — not the
// running max across every context, which would report a denominator
// Probability's interval boundaries aren't actually drawn from once
// contexts diverge.
func (m *ContextModel) Denominator() arithcode.Uint64 {
	return arithcode.Uint64(m.context().Total())
}

// MaxDenominator implements arithcode.Model.
func (m *ContextModel) MaxDenominator() arithcode.Uint64 {
	return arithcode.Uint64(m.maxDenominator)
}

// Update implements arithcode.Model: it adapts the current context's tree,
// then switches context to the just-seen symbol (or back to the initial
// context on EOF).
func (m *ContextModel) Update(symbol *int) {
	if uint64(m.Denominator()) >= m.maxDenominator {
		panic("arithcode/fenwick: hit max denominator")
	}
	if m.context().Total() < m.maxDenominator {
		m.context().Update(symbol, 1)
	}
	if symbol == nil {
		m.currentContext = 0
	} else {
		m.currentContext = *symbol + 1
	}
}
