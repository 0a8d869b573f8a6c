package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(CodeInvalidQuery, "test message: %s", "value")

	if err.Code != CodeInvalidQuery {
		t.Errorf("Code = %v, want %v", err.Code, CodeInvalidQuery)
	}

	if err.Message != "test message: value" {
		t.Errorf("Message = %v, want %v", err.Message, "test message: value")
	}

	expected := "INVALID_QUERY: test message: value"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(CodeInvalidDocument, cause, "failed to decode")

	if err.Code != CodeInvalidDocument {
		t.Errorf("Code = %v, want %v", err.Code, CodeInvalidDocument)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(CodeInvalidMemberName, "test"),
			code:     CodeInvalidMemberName,
			expected: true,
		},
		{
			name:     "different code",
			err:      New(CodeInvalidMemberName, "test"),
			code:     CodeInternal,
			expected: false,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			code:     CodeInternal,
			expected: false,
		},
		{
			name:     "wrapped structured error",
			err:      Wrap(CodeInvalidQuery, New(CodeInvalidMemberName, "inner"), "outer"),
			code:     CodeInvalidQuery,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(CodeMissingField, "x")); got != CodeMissingField {
		t.Errorf("GetCode() = %v, want %v", got, CodeMissingField)
	}
	if got := GetCode(errors.New("plain")); got != Code("") {
		t.Errorf("GetCode(plain) = %v, want empty", got)
	}
}

func TestMissingField(t *testing.T) {
	err := MissingField("id")
	if err.Code != CodeMissingField {
		t.Errorf("Code = %v, want %v", err.Code, CodeMissingField)
	}
	want := `MISSING_FIELD: missing required field "id"`
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}
}

func TestUnsupportedVersion(t *testing.T) {
	err := UnsupportedVersion("2.0")
	if err.Code != CodeUnsupportedVersion {
		t.Errorf("Code = %v, want %v", err.Code, CodeUnsupportedVersion)
	}
	if got := UserMessage(err); got != `version "2.0" is not supported by this implementation` {
		t.Errorf("UserMessage() = %v", got)
	}
}
