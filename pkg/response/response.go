package response

import (
	"encoding/json"
	"net/http"
)

// ReplyBody is the envelope of every chat answer that carries no data.
type ReplyBody struct {
	Reply string `json:"reply"`
}

// MessageBody is the envelope of REST errors.
type MessageBody struct {
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func Reply(w http.ResponseWriter, statusCode int, reply string) {
	JSON(w, statusCode, ReplyBody{Reply: reply})
}

func Message(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, MessageBody{Message: message})
}

func BadRequest(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Bad request"
	}
	Message(w, http.StatusBadRequest, message)
}

func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Not found"
	}
	Message(w, http.StatusNotFound, message)
}

func InternalServerError(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Server error."
	}
	Message(w, http.StatusInternalServerError, message)
}
