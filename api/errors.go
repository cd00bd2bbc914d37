package apiclient

import (
	"encoding/json"
	"net/http"

	"github.com/hausasoft/hausasoft-go/core"
)

// errorKeys are probed in order. The backend has shipped all three shapes
// across revisions ({detail} from DRF, {error} from hand-rolled views,
// {message} from older ones), so the normalization is total over the union.
var errorKeys = []string{"detail", "error", "message"}

// normalizeMessage maps any backend error body to a single human-readable
// string, never reaching into fields that may be absent.
func normalizeMessage(body []byte, fallback string) string {
	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return fallback
	}
	for _, key := range errorKeys {
		if s, ok := payload[key].(string); ok && s != "" {
			return s
		}
	}
	return fallback
}

// apiError maps a non-2xx response to the closed error taxonomy.
func apiError(status int, body []byte, fallback string) error {
	switch {
	case status == http.StatusUnauthorized:
		return core.NewAPIError(core.ErrUnauthorized, normalizeMessage(body, msgSessionExpired))
	case status >= 400 && status < 500:
		return core.NewAPIError(core.ErrValidationFailure, normalizeMessage(body, fallback))
	default:
		return core.NewAPIError(core.ErrUnknown, normalizeMessage(body, fallback))
	}
}
