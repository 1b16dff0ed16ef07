package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_ACCESS_TOKEN_KEY         ContextKey = "access_token"
	CONTEXT_ADMIN_ID_KEY             ContextKey = "admin_id"
)

const (
	REQUEST_ID_PREFIX = "SPRADM_SVC_"
)

const (
	AppEnvProduction  = "production"
	AppEnvDevelopment = "development"
)

const (
	RedisKeyOrganizationWizardFormat     = "organization_wizard:%s"
	RedisKeyOrganizationWizardLockFormat = "organization_wizard:lock:%s"
)

const (
	DefaultPage         = 1
	DefaultPageLimit    = 10
	MaximumPageLimit    = 100
	StatusFilterAll     = "all"
	MaximumReasonLength = 500
)
