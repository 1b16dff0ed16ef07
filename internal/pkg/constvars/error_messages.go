package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":        "is required",
	"email":           "must be a valid email",
	"min":             "must be at least %s characters long",
	"max":             "maximum at %s characters long",
	"eqfield":         "must match %s",
	"numeric":         "must be a number",
	"len":             "must be %s characters long",
	"oneof":           "must be one of [%s]",
	"gt":              "must be greater than %s",
	"gte":             "must be greater than or equal to %s",
	"lt":              "must be less than %s",
	"lte":             "must be less than or equal to %s",
	"url":             "must be a valid URL",
	"uri":             "must be a valid URI",
	"dive":            "contains an invalid item",
	"organization_id": "can only contain lowercase letters, numbers, and hyphens",
	"content_type":    "must be a known CMS content type",
	"service_type":    "must be one of [care_center health_mitra health_checkup lab_test]",
	"booking_status":  "must be one of [pending confirmed completed cancelled]",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":     true,
	"max":     true,
	"len":     true,
	"eqfield": true,
	"gt":      true,
	"gte":     true,
	"lt":      true,
	"lte":     true,
	"oneof":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidImageFormat            = "the image you uploaded does not meet the specified standards"
	ErrClientUpstreamUnavailable           = "the dashboard API is unavailable, please try again later"
	ErrClientResourceNotFound              = "the requested data could not be found"
	ErrClientWizardNotFound                = "organization wizard not found or already expired"
	ErrClientWizardBusy                    = "wizard is busy, please wait for the previous action to finish"
	ErrClientWizardSubmitting              = "organization is being created, please wait"
	ErrClientWizardSubmitted               = "organization was already created"
	ErrClientWizardStepMismatch            = "submitted values do not belong to the current step"
	ErrClientWizardStepInvalid             = "please fix the highlighted fields"
	ErrClientCMSContentNotArray            = "Content must be a JSON array"
	ErrClientTooManyRequests               = "too many requests, please slow down"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevCannotParseQuery         = "cannot parse query parameter %s"
	ErrDevInvalidFormat            = "invalid %s format"
	ErrDevCreateHTTPRequest        = "failed to create HTTP request"
	ErrDevSendHTTPRequest          = "failed to send HTTP request"
	ErrDevReadHTTPResponse         = "failed to read HTTP response body"
	ErrDevDecodeUpstreamResponse   = "failed to decode %s response from superadmin API"
	ErrDevUpstreamResponse         = "superadmin API responded %d for %s"
	ErrDevUpstreamThrottled        = "outbound rate limiter refused the request"

	// Validation messages
	ErrDevValidationFailed           = "validation failed"
	ErrDevImageValidationFailed      = "image validation failed"
	ErrDevURLParamIDValidationFailed = "parameter %s validation failed"

	// Authentication messages
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired token"
	ErrDevMissingRequestID          = "request id missing from context"

	// Wizard messages
	ErrDevWizardNotFound     = "organization wizard %s not found in store"
	ErrDevWizardOwner        = "organization wizard %s belongs to another admin"
	ErrDevWizardLocked       = "organization wizard %s lock is held by another request"
	ErrDevWizardState        = "organization wizard transition rejected"
	ErrDevWizardSealing      = "failed to seal or open organization wizard snapshot"
	ErrDevWizardStepMismatch = "values for step %d sent while wizard is at step %d"
	ErrDevWizardSubmission   = "organization wizard submission failed"

	// Minio messages
	ErrDevMinioFailedToCreateObject          = "failed to create object into minio storage with bucket name '%s'"
	ErrDevMinioFailedToGetObjectPresignedURL = "failed to get object URL from minio storage with bucket name '%s'"

	// Redis messages
	ErrDevRedisSetData    = "failed to SET data into redis"
	ErrDevRedisGetData    = "failed to GET data from redis"
	ErrDevRedisDeleteData = "failed to DELETE data from redis"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message into queue %s"

	// Server messages
	ErrDevServerProcess          = "server failed to process something related to machine system"
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevRequestLimitExceeded   = "request limit exceeded"
)

const (
	ErrEnvParsing = "Error parsing %s: %v, will use default value"
)
