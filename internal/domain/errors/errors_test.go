package errors

import (
	"io"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesCopiesWithDetails(t *testing.T) {
	err := ErrInvalidCoordinate.WithDetails("latitude 91 outside [-90,90]")

	assert.ErrorIs(t, err, ErrInvalidCoordinate)
	assert.NotErrorIs(t, err, ErrMalformedGeometry)
	assert.Equal(t, "coordinate out of range: latitude 91 outside [-90,90]", err.Error())
	assert.ErrorIs(t, pkgerrors.Wrap(err, "create"), ErrInvalidCoordinate)
}

func TestRemoteError_MessageFallback(t *testing.T) {
	withServer := NewRemoteError(ErrCreate, 400, "name is required", nil)
	assert.Equal(t, "name is required", withServer.Message())
	assert.ErrorIs(t, withServer, ErrCreate)

	generic := NewRemoteError(ErrDelete, 0, "", io.ErrUnexpectedEOF)
	assert.Equal(t, ErrDelete.Message(), generic.Message())
	assert.ErrorIs(t, generic, io.ErrUnexpectedEOF)
	assert.Contains(t, generic.Error(), "unexpected EOF")
}

func TestRekind_KeepsStatusAndMessage(t *testing.T) {
	original := NewRemoteError(ErrFetch, 503, "maintenance", nil)

	re := Rekind(pkgerrors.WithStack(original), ErrUpdate)
	assert.ErrorIs(t, re, ErrUpdate)
	assert.NotErrorIs(t, re, ErrFetch)
	assert.Equal(t, 503, re.Status)
	assert.Equal(t, "maintenance", re.Message())

	plain := Rekind(io.EOF, ErrDelete)
	assert.ErrorIs(t, plain, ErrDelete)
	assert.ErrorIs(t, plain, io.EOF)
}

func TestErrorBody_ServerMessage(t *testing.T) {
	assert.Equal(t, "top", ErrorBody{Message: "top", Error: &ErrorInfo{Details: "inner"}}.ServerMessage())
	assert.Equal(t, "inner", ErrorBody{Error: &ErrorInfo{Details: "inner"}}.ServerMessage())
	assert.Empty(t, ErrorBody{}.ServerMessage())
}
