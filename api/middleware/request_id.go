package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/angelmondragon/skinshop-backend/pkg/logger"
	"github.com/angelmondragon/skinshop-backend/pkg/types"
)

const (
	requestIDHeader   = types.RequestIDHeader
	maxRequestIDBytes = 64
)

// RequestID tags every request with a correlation id. A client-supplied id is
// reused when it is short printable ASCII; anything else is replaced by a
// fresh UUID so log lines stay greppable and headers stay safe to echo.
func RequestID(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := r.Header.Get(requestIDHeader)
			if !acceptableRequestID(reqID) {
				reqID = uuid.NewString()
			}
			w.Header().Set(requestIDHeader, reqID)

			ctx := r.Context()
			if logg != nil {
				ctx = logg.WithRequestID(ctx, reqID)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func acceptableRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDBytes {
		return false
	}
	for i := 0; i < len(id); i++ {
		if c := id[i]; c < '!' || c > '~' {
			return false
		}
	}
	return true
}
