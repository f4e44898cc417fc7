package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeDuplicateURL, "page %q already exists", "a.com")

	if err.Code != ErrCodeDuplicateURL {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeDuplicateURL)
	}

	if err.Message != `page "a.com" already exists` {
		t.Errorf("Message = %v, want %v", err.Message, `page "a.com" already exists`)
	}

	expected := `DUPLICATE_URL: page "a.com" already exists`
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeMalformedInput, cause, "pages line 3")

	if err.Code != ErrCodeMalformedInput {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeMalformedInput)
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
			err:      New(ErrCodePageNotFound, "test"),
			code:     ErrCodePageNotFound,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodePageNotFound, "test"),
			code:     ErrCodeEndpointNotFound,
			expected: false,
		},
		{
			name:     "outer code wins",
			err:      Wrap(ErrCodeMalformedInput, New(ErrCodeDuplicateLink, "inner"), "outer"),
			code:     ErrCodeMalformedInput,
			expected: true,
		},
		{
			name:     "inner code hidden",
			err:      Wrap(ErrCodeMalformedInput, New(ErrCodeDuplicateLink, "inner"), "outer"),
			code:     ErrCodeDuplicateLink,
			expected: false,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
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
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeCapacityExceeded, "test"),
			expected: ErrCodeCapacityExceeded,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: "",
		},
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidInput, "friendly message"),
			expected: "friendly message",
		},
		{
			name:     "wrapped Error",
			err:      Wrap(ErrCodeMalformedInput, New(ErrCodeDuplicateURL, "page exists"), "pages line 2"),
			expected: "pages line 2: page exists",
		},
		{
			name:     "plain error",
			err:      errors.New("plain error"),
			expected: "plain error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}
