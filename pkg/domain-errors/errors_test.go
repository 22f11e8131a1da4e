package domainerrors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasCodeWalksTheChain(t *testing.T) {
	inner := New(CodeNotFound, "missing entry")
	outer := Wrap(inner, CodeInternal, "lookup failed")

	assert.True(t, HasCode(outer, CodeInternal))
	assert.True(t, HasCode(outer, CodeNotFound))
	assert.False(t, HasCode(outer, CodeValidation))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("boom")
	wrapped := Wrap(cause, CodeInternal, "store failure")
	assert.ErrorIs(t, wrapped, cause)
}

func TestGetCodeReturnsOutermost(t *testing.T) {
	err := Wrap(New(CodeNotFound, "inner"), CodeValidation, "outer")
	assert.Equal(t, CodeValidation, GetCode(err))
	assert.Equal(t, CodeInternal, GetCode(errors.New("plain")))
}

func TestToHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, ToHTTPStatus(CodeInvalidCategory))
	assert.Equal(t, http.StatusBadRequest, ToHTTPStatus(CodeInvalidLimit))
	assert.Equal(t, http.StatusBadRequest, ToHTTPStatus(CodeValidation))
	assert.Equal(t, http.StatusNotFound, ToHTTPStatus(CodeNotFound))
	assert.Equal(t, http.StatusInternalServerError, ToHTTPStatus(CodeInternal))
	assert.Equal(t, http.StatusInternalServerError, ToHTTPStatus(Code("unknown")))
}
