package errors

import (
	"errors"
	"regexp"
	"testing"
)

func TestNewError(t *testing.T) {
	e := New("sample error message")
	if e == nil {
		t.Fatalf("expected non-nil error but got nil")
	}

	match, err := regexp.Match(`^sample error message: at `, []byte(e.Error()))
	if err != nil {
		t.Fatal(err)
	}
	if !match {
		t.Errorf("expected %q to carry the caller location", e.Error())
	}
}

func TestWrapKeepsCause(t *testing.T) {
	errOne := New("sample error message one")
	errTwo := Wrap(errOne, "sample error message two")

	if er := errors.Unwrap(errTwo); er != errOne {
		t.Errorf("expected %v to be equal to %v", er, errOne)
	}
	if !Is(errTwo, errOne) {
		t.Errorf("expected Is to find the wrapped error")
	}
}

func TestMarkMatchesSentinel(t *testing.T) {
	marked := Mark(ErrDecodeImage, errors.New("unexpected EOF"))
	if !Is(marked, ErrDecodeImage) {
		t.Fatalf("expected %v to match ErrDecodeImage", marked)
	}
	if Is(marked, ErrFetchImage) {
		t.Fatalf("did not expect %v to match ErrFetchImage", marked)
	}

	match, _ := regexp.Match(`unexpected EOF`, []byte(marked.Error()))
	if !match {
		t.Errorf("expected cause text in %q", marked.Error())
	}

	if bare := Mark(ErrEmptyBatch, nil); !Is(bare, ErrEmptyBatch) {
		t.Errorf("expected bare mark to match sentinel")
	}
}

func TestFilePath(t *testing.T) {
	path := filePath()

	if path == "" {
		t.Fatalf("expected non-empty string but got empty string")
	}

	pattern := `^at testing.tRunner.*`
	match, err := regexp.Match(pattern, []byte(path))
	if err != nil {
		t.Fatal(err)
	}

	if !match {
		t.Fatalf("expected %q to match %q", path, pattern)
	}
}
