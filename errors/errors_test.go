package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("test error")
	require.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNewf(t *testing.T) {
	err := Newf("error: %s %d", "test", 42)
	require.NotNil(t, err)
	assert.Equal(t, "error: test 42", err.Error())
}

func TestWrap(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Contains(t, wrapped.Error(), "wrapped")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestIs(t *testing.T) {
	err1 := New("error 1")
	err2 := New("error 2")
	wrapped := Wrap(err1, "wrapped")

	assert.True(t, Is(wrapped, err1))
	assert.False(t, Is(wrapped, err2))
	assert.False(t, Is(nil, err1))
}

func TestSentinelChecks(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		check   func(error) bool
		matches bool
	}{
		{"parse error direct", ErrParse, IsParseError, true},
		{"parse error wrapped", Wrap(ErrParse, "row 3"), IsParseError, true},
		{"parse error formatted", NewParseError("row %d: bad year %q", 3, "abc"), IsParseError, true},
		{"dangling ref wrapped", NewDanglingRefError("father %q not in tree", "John Smith"), IsDanglingRefError, true},
		{"not found wrapped", NewNotFoundError("person %q", "Jane Doe"), IsNotFoundError, true},
		{"wrong sentinel", Wrap(ErrParse, "row 3"), IsNotFoundError, false},
		{"nil error", nil, IsParseError, false},
		{"plain error", New("unrelated"), IsDanglingRefError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.matches, tt.check(tt.err))
		})
	}
}

func TestNewNotFoundErrorMessage(t *testing.T) {
	err := NewNotFoundError("person %q", "Jane Doe")
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), `person "Jane Doe"`)
	assert.True(t, Is(err, ErrNotFound))
}

func TestWithHint(t *testing.T) {
	err := WithHint(New("base"), "try a full name like 'Jane Doe'")
	hints := GetAllHints(err)
	require.Len(t, hints, 1)
	assert.Equal(t, "try a full name like 'Jane Doe'", hints[0])
}
