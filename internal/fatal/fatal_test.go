package fatal

import (
	"testing"

	"github.com/pkg/errors"
)

func TestWrapNil(t *testing.T) {
	if err := Wrap(ImageLoad, nil, "load"); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestIsThroughWrapping(t *testing.T) {
	base := errors.New("no such file")
	err := errors.Wrap(Wrap(ImageLoad, base, "unable to load image"), "create image")
	if !Is(err, ImageLoad) {
		t.Fatalf("expected %v to be an image load error", err)
	}
	if Is(err, FontLoad) {
		t.Fatalf("expected %v to not be a font load error", err)
	}
	if errors.Cause(err) != base {
		t.Fatalf("expected cause to be the wrapped error, got %v", errors.Cause(err))
	}
}

func TestErrorMessage(t *testing.T) {
	err := New(TextureBind, "texture deleted")
	if got, want := err.Error(), "fatal texture bind error: texture deleted"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if _, ok := As(errors.New("plain")); ok {
		t.Errorf("plain errors must not be fatal")
	}
}
