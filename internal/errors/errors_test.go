package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	sentinels := []error{
		ErrPositioning, ErrAttached, ErrNotAttached, ErrForeignPiece,
		ErrInvalidCoord, ErrInvalidPly, ErrUnknownPiece, ErrInvalidLayout,
		ErrInvalidHistory, ErrInvalidConfig, ErrUnknownRuleSet,
	}

	for _, sentinel := range sentinels {
		t.Run(sentinel.Error(), func(t *testing.T) {
			wrapped := fmt.Errorf("setting up board: %w", sentinel)
			if !errors.Is(wrapped, sentinel) {
				t.Errorf("errors.Is(wrapped, %v) = false, want true", sentinel)
			}
		})
	}
}

func TestCellError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *CellError
		contains []string
	}{
		{
			name:     "full context",
			err:      &CellError{Err: ErrPositioning, Cell: "e4", Piece: "white pawn", Op: "add"},
			contains: []string{"add", "white pawn", "at e4", "positioning error"},
		},
		{
			name:     "cell only",
			err:      &CellError{Err: ErrNotAttached, Cell: "a1"},
			contains: []string{"at a1", "not attached"},
		},
		{
			name:     "no context",
			err:      &CellError{Err: ErrAttached},
			contains: []string{"already attached"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("CellError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestCellError_As verifies that errors.As works with CellError
func TestCellError_As(t *testing.T) {
	cellErr := &CellError{Err: ErrPositioning, Cell: "h8", Op: "setup"}
	wrapped := fmt.Errorf("initial layout: %w", cellErr)

	var extracted *CellError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract CellError")
	}
	if extracted.Cell != "h8" {
		t.Errorf("extracted.Cell = %q, want %q", extracted.Cell, "h8")
	}
	if !errors.Is(wrapped, ErrPositioning) {
		t.Error("errors.Is(wrapped, ErrPositioning) = false, want true")
	}
}

func TestParseError_Error(t *testing.T) {
	err := &ParseError{
		Err:      ErrInvalidLayout,
		Input:    "purple",
		Index:    3,
		Expected: "white or black",
	}

	msg := err.Error()
	for _, s := range []string{"record 3", "purple", "expected white or black", "invalid board layout"} {
		if !containsIgnoreCase(msg, s) {
			t.Errorf("ParseError.Error() = %q, should contain %q", msg, s)
		}
	}
}

func TestNewParseError(t *testing.T) {
	err := NewParseError(ErrInvalidPly, "e2e4", "<from>-<to>")

	if !errors.Is(err, ErrInvalidPly) {
		t.Error("errors.Is(parseErr, ErrInvalidPly) = false, want true")
	}
	if containsIgnoreCase(err.Error(), "record") {
		t.Errorf("single-value ParseError.Error() = %q, should not mention a record", err.Error())
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidCoord, "decoding cell")

	if !errors.Is(wrapped, ErrInvalidCoord) {
		t.Error("Wrap should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "decoding cell") {
		t.Errorf("Wrap should include context, got %q", wrapped.Error())
	}
	if Wrap(nil, "anything") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrInvalidHistory, "turn %d", 15)

	if !errors.Is(wrapped, ErrInvalidHistory) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "turn 15") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
