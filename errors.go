package chunkio

import (
	"fmt"
)

// DataError reports malformed file data encountered while decoding: a
// truncated stream, a payload size that does not match the record layout, an
// element count outside the format's declared bounds, an unterminated string
// run. It carries the buffer and the offset where decoding stopped; Error
// renders a hex excerpt around the data for bug reports.
//
// DataError is never returned for caller mistakes; those panic.
type DataError struct {
	Data []byte
	Off  int
	Err  error
	Msg  string
}

func dataErrf(data []byte, off int, err error, format string, args ...any) error {
	return &DataError{data, off, err, fmt.Sprintf(format, args...)}
}

func (e *DataError) Unwrap() error {
	return e.Err
}

func (e *DataError) Error() string {
	const prefixLen = 64
	const suffixLen = 32
	n := len(e.Data)
	if n <= prefixLen+suffixLen {
		if e.Err != nil {
			return fmt.Sprintf("%s: %v: at %d in (%d) %x", e.Msg, e.Err, e.Off, n, e.Data)
		} else {
			return fmt.Sprintf("%s: at %d in (%d) %x", e.Msg, e.Off, n, e.Data)
		}
	} else {
		p, s := e.Data[:prefixLen], e.Data[n-suffixLen:]
		if e.Err != nil {
			return fmt.Sprintf("%s: %v: at %d in (%d) %x...%x", e.Msg, e.Err, e.Off, n, p, s)
		} else {
			return fmt.Sprintf("%s: at %d in (%d) %x...%x", e.Msg, e.Off, n, p, s)
		}
	}
}
