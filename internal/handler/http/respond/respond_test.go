package respond

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestJSON(t *testing.T) {
	tests := []struct {
		name           string
		code           int
		data           any
		expectedCode   int
		expectedBody   string
		expectedHeader string
	}{
		{
			name:           "success with map",
			code:           http.StatusOK,
			data:           map[string]string{"message": "success"},
			expectedCode:   http.StatusOK,
			expectedBody:   `{"message":"success"}`,
			expectedHeader: "application/json",
		},
		{
			name:           "success with struct",
			code:           http.StatusCreated,
			data:           struct{ ID int }{ID: 123},
			expectedCode:   http.StatusCreated,
			expectedBody:   `{"ID":123}`,
			expectedHeader: "application/json",
		},
		{
			name:           "success with nil",
			code:           http.StatusNoContent,
			data:           nil,
			expectedCode:   http.StatusNoContent,
			expectedBody:   "",
			expectedHeader: "application/json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			JSON(w, tt.code, tt.data)

			if w.Code != tt.expectedCode {
				t.Errorf("Code = %v, want %v", w.Code, tt.expectedCode)
			}

			if ct := w.Header().Get("Content-Type"); ct != tt.expectedHeader {
				t.Errorf("Content-Type = %v, want %v", ct, tt.expectedHeader)
			}

			body := strings.TrimSpace(w.Body.String())
			if tt.expectedBody != "" && body != tt.expectedBody {
				t.Errorf("Body = %v, want %v", body, tt.expectedBody)
			}
		})
	}
}

func TestError(t *testing.T) {
	w := httptest.NewRecorder()
	Error(w, http.StatusBadRequest, errors.New("something broke"))

	if w.Code != http.StatusBadRequest {
		t.Errorf("Code = %v, want %v", w.Code, http.StatusBadRequest)
	}
	if body := strings.TrimSpace(w.Body.String()); body != `{"error":"something broke"}` {
		t.Errorf("Body = %v", body)
	}
}

func TestSafeError(t *testing.T) {
	tests := []struct {
		name         string
		code         int
		err          error
		expectedBody string
	}{
		{
			name:         "validation error passes through",
			code:         http.StatusBadRequest,
			err:          errors.New("invalid query parameter: page must be a non-negative integer"),
			expectedBody: `{"error":"invalid query parameter: page must be a non-negative integer"}`,
		},
		{
			name:         "not found error passes through",
			code:         http.StatusNotFound,
			err:          errors.New("category not found"),
			expectedBody: `{"error":"category not found"}`,
		},
		{
			name:         "internal details are masked",
			code:         http.StatusInternalServerError,
			err:          errors.New("dial tcp 10.0.0.5:5432: connect: connection refused"),
			expectedBody: `{"error":"internal server error"}`,
		},
		{
			name:         "500 always masks even safe-looking messages",
			code:         http.StatusInternalServerError,
			err:          errors.New("source not found in replica"),
			expectedBody: `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			SafeError(w, tt.code, tt.err)

			if w.Code != tt.code {
				t.Errorf("Code = %v, want %v", w.Code, tt.code)
			}
			if body := strings.TrimSpace(w.Body.String()); body != tt.expectedBody {
				t.Errorf("Body = %v, want %v", body, tt.expectedBody)
			}
		})
	}
}

func TestSafeError_NilError(t *testing.T) {
	w := httptest.NewRecorder()
	SafeError(w, http.StatusInternalServerError, nil)

	if w.Body.Len() != 0 {
		t.Errorf("Body = %v, want empty", w.Body.String())
	}
}
