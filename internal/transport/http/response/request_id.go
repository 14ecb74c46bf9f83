package response

import (
	"net/http"

	appCtx "github.com/varis/taskboard/internal/pkg/context"
)

// RequestIDFromContext extracts the request id the middleware stored, if any.
func RequestIDFromContext(r *http.Request) string {
	if r == nil {
		return ""
	}
	return appCtx.GetRequestID(r.Context())
}
