package handler

import (
	"encoding/json"
	"net/http"
)

// MessageBody is the JSON shape of every error response.
type MessageBody struct {
	Message string `json:"message"`
}

type jsonResponse struct {
	status int
	body   any
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	return WriteJSON(w, j.status, j.body)
}

// JSON renders v with status 200.
func JSON(v any) Response {
	return jsonResponse{status: http.StatusOK, body: v}
}

// JSONWithStatus renders v with the given status.
func JSONWithStatus(status int, v any) Response {
	return jsonResponse{status: status, body: v}
}

// Created renders v with status 201.
func Created(v any) Response {
	return jsonResponse{status: http.StatusCreated, body: v}
}

// Message renders {"message": msg} with the given status.
func Message(status int, msg string) Response {
	return jsonResponse{status: status, body: MessageBody{Message: msg}}
}

// WriteJSON encodes v as the response body.
func WriteJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// WriteError writes {"message": msg} with the given status.
func WriteError(w http.ResponseWriter, status int, msg string) {
	_ = WriteJSON(w, status, MessageBody{Message: msg})
}
