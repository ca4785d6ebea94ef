package httputil

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// maxBodyBytes caps JSON request bodies. Uploads go through multipart
// parsing with their own configured limit, not through here.
const maxBodyBytes = 1 << 20

// ParseJSON decodes JSON from the request body into the given
// destination, limiting the body size so a hostile client cannot buffer
// arbitrary amounts of memory.
func ParseJSON(w http.ResponseWriter, r *http.Request, dest interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	return nil
}
