package errors

import (
	"errors"
	"fmt"
	"runtime"
)

var (
	ErrDecodeImage    = errors.New("image could not be decoded")
	ErrFetchImage     = errors.New("image could not be fetched")
	ErrEmptyBatch     = errors.New("batch has no variants")
	ErrInvalidRequest = errors.New("invalid request")
)

// New creates a new error annotated with the caller location
func New(msg string) error {
	return fmt.Errorf("%s: %s", msg, filePath())
}

// Wrap annotates err with msg and the caller location, keeping err unwrappable
func Wrap(err error, msg string) error {
	return fmt.Errorf("%s %s \ncaused by: %w", msg, filePath(), err)
}

// Mark wraps a sentinel so callers can match it with Is while keeping the cause text
func Mark(sentinel error, cause error) error {
	if cause == nil {
		return fmt.Errorf("%w %s", sentinel, filePath())
	}
	return fmt.Errorf("%w: %v %s", sentinel, cause, filePath())
}

func Is(err error, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

func Errorf(format string, args ...interface{}) error {
	args = append(args, filePath())
	return fmt.Errorf(format+` %s`, args...)
}

func filePath() string {
	pc, f, l, ok := runtime.Caller(2)
	fn := `unknown`
	if ok {
		fn = runtime.FuncForPC(pc).Name()
	}
	return fmt.Sprintf("at %s\n\t%s:%d", fn, f, l)
}
