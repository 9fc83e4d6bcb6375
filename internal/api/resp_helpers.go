package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
)

func decodePayload[T any](r *http.Request) (T, error) {
	var v T
	err := json.NewDecoder(r.Body).Decode(&v)
	defer r.Body.Close()
	if err != nil {
		return v, fmt.Errorf("failure decoding request payload: %w", err)
	}
	return v, err
}

func makeStatusCodeMsg(code int) string {
	return fmt.Sprintf("%d %s", code, http.StatusText(code))
}

func respondWithError(w http.ResponseWriter, code int, msg string, err error) {
	// prefix the message with a status code message
	errorMessage := makeStatusCodeMsg(code)
	// add the optional info message, if it exists
	if msg != "" {
		errorMessage += fmt.Sprintf("; %s", msg)
	}
	// add the technical error message, if it exists
	if err != nil {
		errorMessage += fmt.Sprintf(": %s", err.Error())
	}

	// log the error on the server
	slog.Error(errorMessage, slog.Int("HTTP Status Code", code))

	// respond with the errorMessage as JSON
	type errorResponse struct {
		Error string `json:"error"`
	}
	respondWithJSON(w, code, errorResponse{
		Error: msg,
	})
}

func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		slog.Error("could not marshal JSON for response: " + err.Error())
		w.WriteHeader(500)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, err = w.Write(data)
	if err != nil {
		slog.Error("could not write to header from JSON payload: " + err.Error())
	}
}

func respondWithText(w http.ResponseWriter, code int, msg string) {
	// if message is empty, set it to AT LEAST the status code message
	if msg == "" {
		msg = makeStatusCodeMsg(code)
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	if _, err := w.Write([]byte(msg)); err != nil {
		slog.Error(err.Error())
	}
}

// Parse an int64 record id out of a path parameter.
func parseIDFromPath(pathParam string, r *http.Request) (int64, error) {
	idString := r.PathValue(pathParam)
	id, err := strconv.ParseInt(idString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("value '%s' for path parameter '%s' could not be parsed as ID: %w", idString, pathParam, err)
	}
	return id, nil
}
