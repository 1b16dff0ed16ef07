package middlewares

import (
	"net/http"
	"superadmin-service/internal/pkg/constvars"
	"superadmin-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// AccessLog writes one line per request once the response is done. Server
// errors log at error level and client errors at warn.
func (m *Middlewares) AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		level := zapcore.InfoLevel
		switch {
		case status >= http.StatusInternalServerError:
			level = zapcore.ErrorLevel
		case status >= http.StatusBadRequest:
			level = zapcore.WarnLevel
		}

		if entry := m.Log.Check(level, "API request completed"); entry != nil {
			entry.Write(
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.Bool(constvars.LoggingClientRequestIDKey, isClientRequestID(r)),
				zap.String(constvars.LoggingMethodKey, r.Method),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.String(constvars.LoggingQueryKey, r.URL.RawQuery),
				zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
				zap.String(constvars.LoggingUserAgentKey, r.UserAgent()),
				zap.String(constvars.LoggingAdminIDKey, utils.GetAdminID(r.Context())),
				zap.Int(constvars.LoggingStatusCodeKey, status),
				zap.Int(constvars.LoggingBytesWrittenKey, ww.BytesWritten()),
				zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
				zap.Bool(constvars.LoggingSuccessKey, status < http.StatusBadRequest),
			)
		}
	})
}

func isClientRequestID(r *http.Request) bool {
	fromClient, _ := r.Context().Value(constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY).(bool)
	return fromClient
}
