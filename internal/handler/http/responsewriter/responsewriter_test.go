package responsewriter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := Wrap(rec)

	assert.NotNil(t, wrapped)
	assert.Equal(t, http.StatusOK, wrapped.StatusCode())
	assert.Equal(t, 0, wrapped.BytesWritten())
}

func TestResponseWriter_WriteHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := Wrap(rec)

	wrapped.WriteHeader(http.StatusNotFound)

	assert.Equal(t, http.StatusNotFound, wrapped.StatusCode())
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResponseWriter_WriteHeader_OnlyOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := Wrap(rec)

	wrapped.WriteHeader(http.StatusBadRequest)
	wrapped.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusBadRequest, wrapped.StatusCode())
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResponseWriter_Write(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := Wrap(rec)

	n, err := wrapped.Write([]byte("hello"))

	assert.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, 5, wrapped.BytesWritten())
	// Write without an explicit WriteHeader defaults to 200
	assert.Equal(t, http.StatusOK, wrapped.StatusCode())
	assert.Equal(t, "hello", rec.Body.String())
}

func TestResponseWriter_Write_Accumulates(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := Wrap(rec)

	_, _ = wrapped.Write([]byte("hello "))
	_, _ = wrapped.Write([]byte("world"))

	assert.Equal(t, 11, wrapped.BytesWritten())
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := Wrap(rec)

	assert.Equal(t, http.ResponseWriter(rec), wrapped.Unwrap())
}
