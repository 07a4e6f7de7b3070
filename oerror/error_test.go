package oerror

import (
	"errors"
	"io/fs"
	"testing"
)

func TestNewFormats(t *testing.T) {
	err := New("bad value %d", 3)
	if err.Error() != "bad value 3" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Fatalf("expected no cause for a new error")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "ctx") != nil {
		t.Fatalf("expected nil when wrapping nil")
	}
	err := Wrap(errors.New("boom"), "decode %s", "config.toml")
	if err.Error() != "decode config.toml: boom" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestWrapKeepsCause(t *testing.T) {
	err := Wrap(Wrap(fs.ErrNotExist, "open config.toml"), "load")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected the wrapped cause to be found, got %v", err)
	}
	var oe *Error
	if !errors.As(err, &oe) || oe.Error() != "load: open config.toml: file does not exist" {
		t.Fatalf("unexpected error %v", err)
	}
}
