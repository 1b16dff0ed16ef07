package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"

	LoginSuccessMessage   = "successfully login"
	GetProfileSuccess     = "get profile successfully"
	GetDashboardSuccess   = "get dashboard successfully"
	GetResourceSuccess    = "get %s successfully"
	CreateResourceSuccess = "%s created successfully"
	UpdateResourceSuccess = "%s updated successfully"
	DeleteResourceSuccess = "%s deleted successfully"
	ToggleResourceSuccess = "%s status toggled successfully"

	WizardCreatedSuccess   = "organization wizard started"
	WizardFetchedSuccess   = "organization wizard fetched"
	WizardUpdatedSuccess   = "organization wizard values saved"
	WizardValidatedSuccess = "organization wizard step validated"
	WizardAdvancedSuccess  = "organization wizard advanced"
	WizardRetreatedSuccess = "organization wizard moved back"
	WizardSubmittedSuccess = "organization created successfully"
	WizardDiscardedSuccess = "organization wizard discarded"
	LogoUploadedSuccess    = "logo uploaded successfully"
)
