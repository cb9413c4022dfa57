package errors

import stderrors "errors"

var (
	ErrNilBlock       = stderrors.New("runtime: nil block or header")
	ErrHeightMismatch = stderrors.New("runtime: header height does not continue the chain")
	ErrUnknownCall    = stderrors.New("runtime: unknown call type")
)
