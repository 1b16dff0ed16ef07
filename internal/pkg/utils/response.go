package utils

import (
	"errors"
	"net/http"
	"superadmin-service/internal/pkg/constvars"
	"superadmin-service/internal/pkg/dto/responses"
	"superadmin-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

// BuildErrorResponse writes the error envelope. Developer details and
// locations are only exposed outside production.
func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		for _, location := range customErr.Locations {
			location := map[string]interface{}{
				"file":          location.File,
				"line":          location.Line,
				"function_name": location.FunctionName,
			}
			log.Error(customErr.DevMessage,
				zap.Any("location", location),
			)
		}
	} else {
		log.Error(err.Error())
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	response := exceptions.CustomError{
		StatusCode:    code,
		Success:       false,
		ClientMessage: clientMessage,
	}

	appEnvironment := GetEnvString("APP_ENV", constvars.AppEnvDevelopment)
	if customErr != nil && appEnvironment != constvars.AppEnvProduction {
		response.DevMessage = customErr.DevMessage
		response.Locations = customErr.Locations
	}
	json.NewEncoder(w).Encode(response)
}

// BuildValidationErrorResponse answers a wizard step that failed validation,
// carrying the per-field results next to the error message.
func BuildValidationErrorResponse(log *zap.Logger, w http.ResponseWriter, err error, details interface{}) {
	var customErr *exceptions.CustomError
	if !errors.As(err, &customErr) {
		BuildErrorResponse(log, w, err)
		return
	}

	log.Info(customErr.DevMessage, zap.Any(constvars.LoggingValidationErrorKey, details))

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(customErr.StatusCode)
	json.NewEncoder(w).Encode(struct {
		exceptions.CustomError
		Data interface{} `json:"data,omitempty"`
	}{
		CustomError: exceptions.CustomError{
			StatusCode:    customErr.StatusCode,
			ClientMessage: customErr.ClientMessage,
		},
		Data: details,
	})
}
