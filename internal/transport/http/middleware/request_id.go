package middleware

import (
	"net/http"

	"github.com/google/uuid"

	appCtx "github.com/pawararyan169/job-portal/internal/pkg/context"
)

const HeaderXRequestID = "X-Request-Id"

// RequestID propagates an inbound X-Request-Id or mints one, echoes it on
// the response, and stores it in the request context.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(HeaderXRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}

		w.Header().Set(HeaderXRequestID, reqID)

		ctx := appCtx.WithRequestID(r.Context(), reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
