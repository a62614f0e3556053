// Package throw lets deeply nested code bail out with a panic that the
// exported entry point turns back into an error.
//
//	func Parse(r io.Reader) (s *Scene, err error) {
//		defer func() {
//			if recovered := throw.Recover(recover()); recovered != nil {
//				s, err = nil, recovered
//			}
//		}()
//		...
//	}
package throw

import "github.com/pkg/errors"

// thrown marks panics raised by this package, so that unrelated panics such
// as runtime errors keep unwinding.
type thrown struct {
	err error
}

// Fatalf panics with a formatted error.
func Fatalf(format string, args ...interface{}) {
	panic(thrown{errors.Errorf(format, args...)})
}

// Wrapf panics with err wrapped in a message. A nil err does nothing.
func Wrapf(err error, format string, args ...interface{}) {
	if err != nil {
		panic(thrown{errors.Wrapf(err, format, args...)})
	}
}

// Recover converts the value of a recover() call back into an error. It
// returns nil when nothing panicked and re-panics anything not raised by
// Fatalf or Wrapf.
func Recover(r interface{}) error {
	if r == nil {
		return nil
	}
	if t, ok := r.(thrown); ok {
		return t.err
	}
	panic(r)
}
