package errors

import (
	"fmt"
	"testing"
)

func TestLecternError(t *testing.T) {
	// Test basic error creation
	err := New(ErrCodeDocNotFound, "document not found")
	if err.Code != ErrCodeDocNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeDocNotFound, err.Code)
	}

	// Test error wrapping
	cause := fmt.Errorf("underlying error")
	wrapped := Wrap(cause, ErrCodeDocParseFailed, "parse failed")

	if wrapped.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}

	// Test Is function
	if !Is(wrapped, ErrCodeDocParseFailed) {
		t.Error("Is should return true for matching code")
	}

	if Is(wrapped, ErrCodeDocNotFound) {
		t.Error("Is should return false for non-matching code")
	}

	// Test WithDetail
	detailed := err.WithDetail("path", "deck.md").WithDetail("slide", 3)
	if detailed.Details["path"] != "deck.md" {
		t.Error("WithDetail should add details")
	}
}

func TestErrorConstructors(t *testing.T) {
	// Test UnsupportedFormat
	err := UnsupportedFormat("notes.rst", ".rst")
	if err.Code != ErrCodeDocUnsupportedFormat {
		t.Errorf("expected code %s, got %s", ErrCodeDocUnsupportedFormat, err.Code)
	}
	if err.Details["extension"] != ".rst" {
		t.Error("UnsupportedFormat should include extension detail")
	}

	// Test ParseFailed
	cause := fmt.Errorf("bad markup")
	err = ParseFailed("deck.md", cause)
	if err.Code != ErrCodeDocParseFailed {
		t.Errorf("expected code %s, got %s", ErrCodeDocParseFailed, err.Code)
	}
	if err.Details["path"] != "deck.md" {
		t.Error("ParseFailed should include path detail")
	}
	if err.Unwrap() != cause {
		t.Error("ParseFailed should keep the cause")
	}
}

func TestGetCode(t *testing.T) {
	if GetCode(nil) != "" {
		t.Error("GetCode(nil) should be empty")
	}
	if GetCode(fmt.Errorf("plain")) != "" {
		t.Error("GetCode of a plain error should be empty")
	}
	err := fmt.Errorf("outer: %w", ConfigNotFound("lectern.yml"))
	if GetCode(err) != ErrCodeConfigNotFound {
		t.Errorf("GetCode should unwrap to CONFIG_NOT_FOUND, got %s", GetCode(err))
	}
}
