// Package arithcode provides a generic arithmetic (interval) coder: an
// Encoder/Decoder pair that turns a stream of symbols into a stream of bits
// (and back), driven by a caller-supplied probabilistic Model.
//
// The core types are generic over the integer width the coder's internal
// state uses (BitStore, satisfied by Uint32, Uint64, and Uint128) and over
// the symbol alphabet itself (the Model's Symbol type). Three model
// adapters turn more specialised models into the general Model contract:
// fixedlength and oneshot wrap models with no EOF of their own, and
// maxlength caps the symbol count of an EOF-aware model; package fenwick
// provides a ready-made adaptive model backed by a Fenwick tree.
package arithcode
