package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReply(t *testing.T) {
	rec := httptest.NewRecorder()
	Reply(rec, http.StatusBadRequest, "Send me a message")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"reply":"Send me a message"}`, rec.Body.String())
}

func TestMessageDefaults(t *testing.T) {
	tests := []struct {
		name   string
		write  func(w http.ResponseWriter)
		status int
		body   string
	}{
		{"not found", func(w http.ResponseWriter) { NotFound(w, "") }, http.StatusNotFound, `{"message":"Not found"}`},
		{"bad request", func(w http.ResponseWriter) { BadRequest(w, "Invalid appointment ID") }, http.StatusBadRequest, `{"message":"Invalid appointment ID"}`},
		{"server error", func(w http.ResponseWriter) { InternalServerError(w, "") }, http.StatusInternalServerError, `{"message":"Server error."}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.write(rec)
			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}
