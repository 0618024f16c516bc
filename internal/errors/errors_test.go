package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgebound/forge-api/internal/errors"
)

func TestNew(t *testing.T) {
	err := errors.New(errors.CodeNotFound, "save not found")

	assert.Equal(t, errors.CodeNotFound, err.Code)
	assert.Equal(t, "NOT_FOUND: save not found", err.Error())
}

func TestWrapPreservesCode(t *testing.T) {
	inner := errors.NotFound("save not found")
	wrapped := errors.Wrap(inner, "loading profile")

	assert.Equal(t, errors.CodeNotFound, wrapped.Code, "wrapping keeps the inner code")
	assert.True(t, errors.IsNotFound(wrapped))
	assert.ErrorIs(t, wrapped, inner)
}

func TestWrapPlainError(t *testing.T) {
	wrapped := errors.Wrap(fmt.Errorf("dial tcp: refused"), "redis ping")

	assert.Equal(t, errors.CodeInternal, wrapped.Code, "plain errors default to internal")
	assert.ErrorContains(t, wrapped, "redis ping")
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, "nothing"))
	assert.Nil(t, errors.WrapWithCode(nil, errors.CodeUnavailable, "nothing"))
}

func TestWrapWithCode(t *testing.T) {
	err := errors.WrapWithCode(fmt.Errorf("eof"), errors.CodeUnavailable, "save service unreachable")

	assert.Equal(t, errors.CodeUnavailable, err.Code)
	assert.True(t, errors.IsUnavailable(err))
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		err   error
		check func(error) bool
	}{
		{err: errors.NotFound("x"), check: errors.IsNotFound},
		{err: errors.InvalidArgument("x"), check: errors.IsInvalidArgument},
		{err: errors.AlreadyExists("x"), check: errors.IsAlreadyExists},
		{err: errors.Unauthenticated("x"), check: errors.IsUnauthenticated},
		{err: errors.Unavailable("x"), check: errors.IsUnavailable},
		{err: errors.Internal("x"), check: errors.IsInternal},
	}

	for _, tc := range tests {
		assert.True(t, tc.check(tc.err), "%v", tc.err)
	}
	assert.False(t, errors.IsNotFound(nil))
	assert.False(t, errors.IsNotFound(fmt.Errorf("plain")))
	assert.True(t, errors.IsInternal(fmt.Errorf("plain")), "plain errors read as internal")
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, errors.CodeOK, errors.GetCode(nil))
	assert.Equal(t, errors.CodeCanceled, errors.GetCode(errors.Canceled("superseded")))
	assert.Equal(t, errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code   errors.Code
		status int
	}{
		{code: errors.CodeOK, status: http.StatusOK},
		{code: errors.CodeInvalidArgument, status: http.StatusBadRequest},
		{code: errors.CodeUnauthenticated, status: http.StatusUnauthorized},
		{code: errors.CodeNotFound, status: http.StatusNotFound},
		{code: errors.CodeAlreadyExists, status: http.StatusConflict},
		{code: errors.CodeUnavailable, status: http.StatusServiceUnavailable},
		{code: errors.CodeInternal, status: http.StatusInternalServerError},
		{code: errors.Code("BOGUS"), status: http.StatusInternalServerError},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.status, tc.code.HTTPStatus(), "code %s", tc.code)
	}
}

func TestWithMeta(t *testing.T) {
	err := errors.InvalidArgument("bad username").WithMeta("field", "username")
	assert.Equal(t, "username", err.Meta["field"])
}

func TestValidationBuilder(t *testing.T) {
	err := errors.NewValidationBuilder().Build()
	assert.Nil(t, err, "no fields, no error")

	err = errors.NewValidationBuilder().
		RequiredField("username").
		InvalidField("email", "missing @").
		Build()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.ErrorContains(t, err, "validation failed")
}
