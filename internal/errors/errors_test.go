package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodeUniqueness(t *testing.T) {
	codes := map[ErrorCode]bool{}
	all := []ErrorCode{
		ErrMissingArgument, ErrDuplicateElement, ErrCatalogSealed, ErrUnsupportedElement,
		ErrUnresolvedType, ErrUnresolvedOperation, ErrUnresolvedTerm, ErrUnresolvedContainer,
		ErrStreamValue, ErrContainedPath, ErrUnsupportedPrimitive, ErrInvalidSegment,
		ErrUnknownProperty, ErrNoContainer,
	}
	for _, code := range all {
		assert.False(t, codes[code], "duplicate error code %s", code)
		codes[code] = true
	}
}

func TestCategorySentinels(t *testing.T) {
	tests := []struct {
		name   string
		err    *Error
		target error
	}{
		{"argument", NewArgument("element"), ErrArgument},
		{"duplicate is argument", NewDuplicateElement("NS.Person", "type"), ErrArgument},
		{"unresolved", NewUnresolved(ErrUnresolvedType, "type", "NS.Missing", Location{}), ErrUnresolved},
		{"stream", NewStreamValue(), ErrShapeViolation},
		{"contained path", NewContainedPath("Orders('1')"), ErrShapeViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("building: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.target)

			target, ok := AsError(wrapped)
			require.True(t, ok)
			assert.Equal(t, tt.err.Code, target.Code)
		})
	}

	assert.NotErrorIs(t, NewArgument("x"), ErrShapeViolation)

	_, ok := AsError(stderrors.New("plain"))
	assert.False(t, ok)
}

func TestWithCause(t *testing.T) {
	cause := stderrors.New("boom")
	err := NewInvalidSegment("$batch", "unsupported").WithCause(cause)
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrShapeViolation)
}

func TestFormatCompact(t *testing.T) {
	err := NewUnresolved(ErrUnresolvedType, "type", "NS.Missing", Location{Source: "model.xml", Line: 3, Column: 7})
	assert.Equal(t, `model.xml:3:7: warning: the type "NS.Missing" could not be found [UNR101]`, err.Error())

	assert.Equal(t, `error: value for "visitor" must not be nil or empty [ARG001]`, NewArgument("visitor").Error())
}

func TestFormatError(t *testing.T) {
	err := NewDuplicateElement("NS.Person", "type")
	out := FormatError(err, true)

	assert.Contains(t, out, "Argument Error [ARG002]")
	assert.Contains(t, out, `type "NS.Person" is already registered`)
	assert.Contains(t, out, "→ each type")
	assert.NotContains(t, out, "\x1b[")
}

func TestErrorList(t *testing.T) {
	list := ErrorList{
		NewStreamValue(),
		NewUnresolved(ErrUnresolvedTerm, "term", "Core.Missing", Location{}),
	}

	errs, warnings := list.ErrorCount()
	assert.Equal(t, 1, errs)
	assert.Equal(t, 1, warnings)
	assert.True(t, list.HasErrors())
	assert.True(t, strings.HasPrefix(FormatErrorList(list, true), "1 error(s), 1 warning(s)"))

	assert.False(t, ErrorList{list[1]}.HasErrors())
	assert.Equal(t, "no errors", ErrorList{}.Error())

	out, err := list.ToJSON()
	require.NoError(t, err)

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "SHP201", decoded[0]["code"])
	assert.Equal(t, "unresolved", decoded[1]["category"])
}
