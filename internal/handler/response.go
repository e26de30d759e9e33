package handler

import (
	"encoding/json"
	"log"
	"net/http"
)

// respondWithError sends an error as {"detail": "..."}.
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJson(w, code, map[string]string{"detail": message})
}

// respondWithJson marshals payload and writes it with the given status code.
// 'payload' is an interface{} so structs, slices and maps all work.
func respondWithJson(w http.ResponseWriter, code int, payload interface{}) {
	// 1. Marshal payload to JSON
	dat, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal JSON response: %v", payload)
		// Avoid recursion - write the error directly
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail":"Failed to marshal response"}`))
		return
	}

	// 2. Set the Content-Type header
	w.Header().Set("Content-Type", "application/json")

	// 3. Write the HTTP status code
	w.WriteHeader(code)

	// 4. Write the JSON body
	w.Write(dat)
}

// respondWithRawJson writes an already encoded JSON document unchanged.
// The upstream body is written byte for byte, never re-encoded.
func respondWithRawJson(w http.ResponseWriter, code int, body json.RawMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(body)
}
