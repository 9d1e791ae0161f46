package arithcode

// Model is the general, variable-length probabilistic model used by
// Encoder/Decoder directly. A nil *S denotes EOF, Go's stand-in for the
// original crate's `Option<&Symbol>` / `Option<Symbol>` — see SPEC_FULL.md
// §4.C.
//
// The more accurately a Model predicts the next symbol, the better the
// compression ratio.
type Model[B BitStore[B], S any] interface {
	// Probability returns the interval representing the probability of
	// symbol occurring, over Denominator. symbol == nil represents EOF.
	Probability(symbol *S) (Interval[B], error)

	// Symbol returns the symbol whose probability interval contains value.
	// A nil result represents EOF. This is the inverse of Probability.
	Symbol(value B) (*S, error)

	// Denominator is the current denominator for probability ranges. It
	// may vary between calls for adaptive models, but must never exceed
	// MaxDenominator.
	Denominator() B

	// MaxDenominator is the upper bound on Denominator for the lifetime of
	// the model. It is used to calculate the Encoder/Decoder's precision.
	MaxDenominator() B

	// Update advances the model's internal state after symbol has been
	// encoded/decoded. It is a no-op for non-adaptive models.
	Update(symbol *S)
}
