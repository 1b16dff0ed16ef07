package constvars

const (
	LoggingRequestIDKey       = "request_id"
	LoggingClientRequestIDKey = "is_client_request_id"
	LoggingBytesWrittenKey    = "bytes_written"
	LoggingMethodKey          = "method"
	LoggingEndpointKey        = "endpoint"
	LoggingRemoteAddrKey      = "remote_addr"
	LoggingUserAgentKey       = "user_agent"
	LoggingQueryKey           = "query"
	LoggingStatusCodeKey      = "status_code"
	LoggingDurationKey        = "duration"
	LoggingSuccessKey         = "success"
	LoggingUpstreamURLKey     = "upstream_url"
	LoggingRedisKey           = "redis_key"
	LoggingLockExpirationKey  = "lock_expiration"
	LoggingLockValueKey       = "lock_value"
	LoggingWizardIDKey        = "wizard_id"
	LoggingWizardStepKey      = "wizard_step"
	LoggingWizardStateKey     = "wizard_state"
	LoggingAdminIDKey         = "admin_id"
	LoggingOrganizationIDKey  = "organization_id"
	LoggingResourceIDKey      = "resource_id"
	LoggingResourceKey        = "resource"
	LoggingAuditEventKey      = "audit_event"
	LoggingQueueNameKey       = "queue_name"
	LoggingBucketNameKey      = "bucket_name"
	LoggingObjectNameKey      = "object_name"
	LoggingObjectSizeKey      = "object_size"
	LoggingContentTypeKey     = "content_type"
	LoggingValidationErrorKey = "validation_errors"
	LoggingCommandKey         = "command"
	LoggingRateLimitKey       = "rate_limit"
)
