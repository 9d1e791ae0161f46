package arithcode

import "github.com/pkg/errors"

// ErrUnexpectedSymbol is returned by the fixedlength/maxlength/oneshot
// adapters when a symbol is encoded after the model's declared length (or
// beyond its declared maximum length) has already been reached.
var ErrUnexpectedSymbol = errors.New("arithcode: unexpected symbol")

// ErrUnexpectedEOF is returned by the fixedlength and oneshot adapters when
// EOF is encoded before the model's declared length has been reached.
var ErrUnexpectedEOF = errors.New("arithcode: unexpected EOF")

// wrapIOErr annotates an I/O failure from the underlying BitRead/BitWrite
// collaborator with the operation that triggered it, following the
// teacher's convention (enc.go wraps every bitio call site) of attaching
// call-site context rather than returning bare errors.
func wrapIOErr(err error, op string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, op)
}
