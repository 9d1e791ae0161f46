package fenwick_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/mewkiz/arithcode"
	"github.com/mewkiz/arithcode/bitio"
	"github.com/mewkiz/arithcode/fenwick"
)

// The expected slot layout below is grounded on examples/fenwick/simple.rs's
// own embedded test module: 4 symbols plus EOF, each starting at weight 1,
// EOF occupying slot 0.

func symbolPtr(v int) *int { return &v }

func TestDenominator(t *testing.T) {
	model := fenwick.NewModel(4, 1<<20)
	if got := model.Denominator(); uint64(got) != 5 {
		t.Fatalf("Denominator() = %v, want 5", got)
	}
}

func TestProbability(t *testing.T) {
	model := fenwick.NewModel(4, 1<<20)

	tests := []struct {
		symbol     *int
		start, end uint64
	}{
		{nil, 0, 1},
		{symbolPtr(0), 1, 2},
		{symbolPtr(1), 2, 3},
		{symbolPtr(2), 3, 4},
		{symbolPtr(3), 4, 5},
	}
	for _, test := range tests {
		interval, err := model.Probability(test.symbol)
		if err != nil {
			t.Fatalf("Probability(%v) = %v", test.symbol, err)
		}
		if uint64(interval.Start) != test.start || uint64(interval.End) != test.end {
			t.Fatalf("Probability(%v) = [%v, %v), want [%v, %v)", test.symbol, interval.Start, interval.End, test.start, test.end)
		}
	}
}

func TestProbabilityOutOfBounds(t *testing.T) {
	model := fenwick.NewModel(4, 1<<20)
	if _, err := model.Probability(symbolPtr(4)); err == nil {
		t.Fatal("Probability(4) = nil error, want ValueError")
	}
}

func TestSymbol(t *testing.T) {
	model := fenwick.NewModel(4, 1<<20)

	tests := []struct {
		value uint64
		want  *int
	}{
		{0, nil},
		{1, symbolPtr(0)},
		{2, symbolPtr(1)},
		{3, symbolPtr(2)},
		{4, symbolPtr(3)},
	}
	for _, test := range tests {
		got, err := model.Symbol(arithcode.Uint64(test.value))
		if err != nil {
			t.Fatalf("Symbol(%d) = %v", test.value, err)
		}
		if (got == nil) != (test.want == nil) || (got != nil && *got != *test.want) {
			t.Fatalf("Symbol(%d) = %v, want %v", test.value, got, test.want)
		}
	}

	model.Update(symbolPtr(0))

	got, err := model.Symbol(3)
	if err != nil {
		t.Fatalf("Symbol(3) = %v", err)
	}
	if got == nil || *got != 1 {
		t.Fatalf("Symbol(3) after update = %v, want 1", got)
	}
}

func TestSaturationFreeze(t *testing.T) {
	model := fenwick.NewModel(2, 3) // starts at denominator 3, already saturated
	before := model.Denominator()
	model.Update(symbolPtr(0))
	if model.Denominator() != before {
		t.Fatalf("Denominator() changed after saturation: %v -> %v", before, model.Denominator())
	}
}

func TestSaturationPanic(t *testing.T) {
	model := fenwick.NewBuilder(2, 3).WithSaturationPolicy(fenwick.SaturationPanic).Build()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on saturation")
		}
	}()
	model.Update(symbolPtr(0))
}

func TestRoundTrip(t *testing.T) {
	input := []int{3, 1, 1, 0, 2, 2, 2, 1}

	var buf bytes.Buffer
	writer := bitio.NewWriter(&buf)
	enc := arithcode.NewEncoder[arithcode.Uint64, int](fenwick.NewModel(4, 1<<20), writer)
	if err := enc.EncodeAll(input); err != nil {
		t.Fatalf("EncodeAll() = %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}

	reader := bitio.NewReader(bytes.NewReader(buf.Bytes()))
	dec := arithcode.NewDecoder[arithcode.Uint64, int](fenwick.NewModel(4, 1<<20), reader)
	output, err := dec.DecodeAll()
	if err != nil {
		t.Fatalf("DecodeAll() = %v", err)
	}

	if len(output) != len(input) {
		t.Fatalf("DecodeAll() = %v, want %v", output, input)
	}
	for i := range input {
		if output[i] != input[i] {
			t.Fatalf("DecodeAll()[%d] = %v, want %v", i, output[i], input[i])
		}
	}
}

// TestFenwickSherlockCorpus round-trips a text corpus byte-for-byte through
// an adaptive 256-symbol model and checks the compression ratio, grounded on
// examples/sherlock.rs and tests/sherlock.rs. It is skipped automatically if
// the testdata/sherlock.txt fixture is absent, since that corpus is not part
// of this repo.
func TestFenwickSherlockCorpus(t *testing.T) {
	data, err := os.ReadFile("testdata/sherlock.txt")
	if os.IsNotExist(err) {
		t.Skip("testdata/sherlock.txt not present")
	}
	if err != nil {
		t.Fatalf("ReadFile() = %v", err)
	}

	const nSymbols = 256
	input := make([]int, len(data))
	for i, b := range data {
		input[i] = int(b)
	}

	var buf bytes.Buffer
	writer := bitio.NewWriter(&buf)
	enc := arithcode.NewEncoder[arithcode.Uint64, int](fenwick.NewModel(nSymbols, 1<<20), writer)
	if err := enc.EncodeAll(input); err != nil {
		t.Fatalf("EncodeAll() = %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}

	ratio := float64(len(data)) / float64(buf.Len())
	if ratio <= 1.5 {
		t.Fatalf("compression ratio = %v, want > 1.5", ratio)
	}

	reader := bitio.NewReader(bytes.NewReader(buf.Bytes()))
	dec := arithcode.NewDecoder[arithcode.Uint64, int](fenwick.NewModel(nSymbols, 1<<20), reader)
	output, err := dec.DecodeAll()
	if err != nil {
		t.Fatalf("DecodeAll() = %v", err)
	}

	if len(output) != len(input) {
		t.Fatalf("DecodeAll() returned %d symbols, want %d", len(output), len(input))
	}
	for i := range input {
		if output[i] != input[i] {
			t.Fatalf("DecodeAll()[%d] = %v, want %v", i, output[i], input[i])
		}
	}
}

func TestContextModelRoundTrip(t *testing.T) {
	input := []int{0, 1, 2, 2, 1, 0, 0, 3}

	var buf bytes.Buffer
	writer := bitio.NewWriter(&buf)
	enc := arithcode.NewEncoder[arithcode.Uint64, int](fenwick.NewContextModel(4), writer)
	if err := enc.EncodeAll(input); err != nil {
		t.Fatalf("EncodeAll() = %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}

	reader := bitio.NewReader(bytes.NewReader(buf.Bytes()))
	dec := arithcode.NewDecoder[arithcode.Uint64, int](fenwick.NewContextModel(4), reader)
	output, err := dec.DecodeAll()
	if err != nil {
		t.Fatalf("DecodeAll() = %v", err)
	}

	if len(output) != len(input) {
		t.Fatalf("DecodeAll() = %v, want %v", output, input)
	}
	for i := range input {
		if output[i] != input[i] {
			t.Fatalf("DecodeAll()[%d] = %v, want %v", i, output[i], input[i])
		}
	}
}
