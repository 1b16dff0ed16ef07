package controllers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"superadmin-service/internal/pkg/constvars"
	"superadmin-service/internal/pkg/exceptions"
	"superadmin-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// requestIDFrom answers 500 when the request id middleware did not run.
func requestIDFrom(log *zap.Logger, w http.ResponseWriter, r *http.Request, method string) (string, bool) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		log.Error(method + " requestID not found in context")
		utils.BuildErrorResponse(log, w, exceptions.ErrMissingRequestID(nil))
		return "", false
	}
	log.Info(method+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return requestID, true
}

func decodeJSONBody(log *zap.Logger, w http.ResponseWriter, r *http.Request, method, requestID string, target interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		log.Error(method+" error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		var maxBytesErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxBytesErr):
			utils.BuildErrorResponse(log, w, exceptions.ErrRequestTooLarge(err))
		case errors.Is(err, io.EOF):
			utils.BuildErrorResponse(log, w, exceptions.ErrCannotParseJSON(errors.New("request body is empty")))
		default:
			utils.BuildErrorResponse(log, w, exceptions.ErrCannotParseJSON(err))
		}
		return false
	}
	return true
}

func respondUsecaseError(log *zap.Logger, w http.ResponseWriter, method, requestID string, err error) {
	log.Error(method+" error from usecase",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(err),
	)
	var customErr *exceptions.CustomError
	if errors.Is(err, context.DeadlineExceeded) && !errors.As(err, &customErr) {
		err = exceptions.ErrServerDeadlineExceeded(err)
	}
	utils.BuildErrorResponse(log, w, err)
}

func urlParamID(r *http.Request) string {
	return strings.TrimSpace(chi.URLParam(r, constvars.URLParamID))
}
