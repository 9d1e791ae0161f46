package arithcode

// BitWrite is the narrow bit-granular write capability the Encoder
// consumes. See SPEC_FULL.md §6.1 and the github.com/mewkiz/arithcode/bitio
// package for a ready-made implementation over an io.Writer.
type BitWrite interface {
	// WriteBit writes a single bit, MSB-first relative to the order the
	// coder produces them in.
	WriteBit(bit bool) error
}

// BitRead is the narrow bit-granular read capability the Decoder consumes.
// ReadBit must return io.EOF once the underlying source is exhausted; the
// Decoder treats that as "no further bit" (shifting in a zero) rather than
// a hard failure, per SPEC_FULL.md §6.1.
type BitRead interface {
	ReadBit() (bool, error)
}
