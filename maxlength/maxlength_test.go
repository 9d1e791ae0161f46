package maxlength_test

import (
	"bytes"
	"testing"

	"github.com/mewkiz/arithcode"
	"github.com/mewkiz/arithcode/bitio"
	"github.com/mewkiz/arithcode/maxlength"
)

type symbol int

const (
	symbolA symbol = iota
	symbolB
	symbolC
)

// myModel encodes a variable number of symbols, up to a maximum of 3,
// defining its own EOF slot — grounded on tests/max_length.rs's MyModel.
type myModel struct{}

func (myModel) Probability(s *symbol) (arithcode.Interval[arithcode.Uint32], error) {
	if s == nil {
		return arithcode.Interval[arithcode.Uint32]{Start: 3, End: 4}, nil
	}
	switch *s {
	case symbolA:
		return arithcode.Interval[arithcode.Uint32]{Start: 0, End: 1}, nil
	case symbolB:
		return arithcode.Interval[arithcode.Uint32]{Start: 1, End: 2}, nil
	case symbolC:
		return arithcode.Interval[arithcode.Uint32]{Start: 2, End: 3}, nil
	default:
		return arithcode.Interval[arithcode.Uint32]{}, arithcode.ErrUnexpectedSymbol
	}
}

func (myModel) Symbol(value arithcode.Uint32) (*symbol, error) {
	var s symbol
	switch {
	case value.Cmp(arithcode.Uint32(1)) < 0:
		s = symbolA
	case value.Cmp(arithcode.Uint32(2)) < 0:
		s = symbolB
	case value.Cmp(arithcode.Uint32(3)) < 0:
		s = symbolC
	default:
		return nil, nil
	}
	return &s, nil
}

func (myModel) Denominator() arithcode.Uint32    { return 4 }
func (myModel) MaxDenominator() arithcode.Uint32 { return 4 }
func (myModel) MaxLength() int                   { return 3 }
func (myModel) Update(s *symbol)                 {}

func roundTrip(t *testing.T, input []symbol) ([]symbol, error) {
	t.Helper()

	var buf bytes.Buffer
	writer := bitio.NewWriter(&buf)
	enc := arithcode.NewEncoder[arithcode.Uint32, symbol](maxlength.NewWrapper[arithcode.Uint32, symbol](myModel{}), writer)
	for i := range input {
		if err := enc.Encode(&input[i]); err != nil {
			return nil, err
		}
	}
	if err := enc.Encode(nil); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	reader := bitio.NewReader(bytes.NewReader(buf.Bytes()))
	dec := arithcode.NewDecoder[arithcode.Uint32, symbol](maxlength.NewWrapper[arithcode.Uint32, symbol](myModel{}), reader)
	return dec.DecodeAll()
}

func TestRoundTripShorter(t *testing.T) {
	input := []symbol{symbolA, symbolB}
	output, err := roundTrip(t, input)
	if err != nil {
		t.Fatalf("roundTrip() = %v", err)
	}
	assertSymbolsEqual(t, output, input)
}

func TestRoundTripExact(t *testing.T) {
	input := []symbol{symbolA, symbolB, symbolC}
	output, err := roundTrip(t, input)
	if err != nil {
		t.Fatalf("roundTrip() = %v", err)
	}
	assertSymbolsEqual(t, output, input)
}

// TestRoundTripLonger mirrors tests/max_length.rs's "longer" case: once
// MaxLength() real symbols have been encoded, a further one must fail with
// ErrUnexpectedSymbol (a returned error here, rather than the panic the
// original test asserts on, matching this package's error-handling design).
func TestRoundTripLonger(t *testing.T) {
	input := []symbol{symbolA, symbolB, symbolC, symbolC}
	_, err := roundTrip(t, input)
	if err != arithcode.ErrUnexpectedSymbol {
		t.Fatalf("roundTrip() = %v, want ErrUnexpectedSymbol", err)
	}
}

func assertSymbolsEqual(t *testing.T, got, want []symbol) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
