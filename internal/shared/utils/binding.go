package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// BindJSONStrict decodes a request body rejecting unknown fields, so typos
// in field names fail loudly instead of being silently dropped.
func BindJSONStrict(r *http.Request, dest interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}
