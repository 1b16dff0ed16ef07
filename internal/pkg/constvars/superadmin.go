package constvars

const (
	ResourceAuth            = "auth"
	ResourceDashboard       = "dashboard"
	ResourceOrganization    = "organization"
	ResourceUser            = "user"
	ResourceDoctor          = "doctor"
	ResourceBooking         = "booking"
	ResourceCMSContent      = "cms content"
	ResourceServicePackage  = "service package"
	ResourceService         = "service"
	ResourceSpecializations = "specializations"
	ResourceLogo            = "logo"
)

const (
	SuperadminPathLogin           = "/superadmin/auth/login"
	SuperadminPathProfile         = "/superadmin/auth/profile"
	SuperadminPathOverview        = "/superadmin/dashboard/overview"
	SuperadminPathDashboardStats  = "/superadmin/dashboard/stats"
	SuperadminPathOrganizations   = "/superadmin/organizations"
	SuperadminPathUsers           = "/superadmin/users"
	SuperadminPathDoctors         = "/superadmin/doctors"
	SuperadminPathBookings        = "/superadmin/bookings"
	SuperadminPathCMS             = "/superadmin/cms"
	SuperadminPathServicePackages = "/superadmin/service-packages"
	SuperadminPathServices        = "/superadmin/services"

	SuperadminSegmentStats           = "/stats"
	SuperadminSegmentSearch          = "/search"
	SuperadminSegmentToggleStatus    = "/toggle-status"
	SuperadminSegmentStatus          = "/status"
	SuperadminSegmentCancel          = "/cancel"
	SuperadminSegmentBulkUpdate      = "/bulk-update"
	SuperadminSegmentSpecializations = "/specializations"
)

const (
	URLParamID       = "id"
	URLParamWizardID = "wizardId"

	QueryParamPage           = "page"
	QueryParamLimit          = "limit"
	QueryParamSearch         = "search"
	QueryParamStatus         = "status"
	QueryParamEmailVerified  = "emailVerified"
	QueryParamDateFrom       = "dateFrom"
	QueryParamDateTo         = "dateTo"
	QueryParamSpecialization = "specialization"
	QueryParamExperienceMin  = "experienceMin"
	QueryParamExperienceMax  = "experienceMax"
	QueryParamServiceType    = "serviceType"
	QueryParamCategory       = "category"
	QueryParamContentType    = "contentType"
	QueryParamIsActive       = "isActive"

	FormFieldLogo = "logo"

	LogoObjectPrefix = "logos/"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

var BookingStatuses = []string{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusCompleted,
	BookingStatusCancelled,
}

const (
	ServiceTypeCareCenter    = "care_center"
	ServiceTypeHealthMitra   = "health_mitra"
	ServiceTypeHealthCheckup = "health_checkup"
	ServiceTypeLabTest       = "lab_test"
)

var ServiceTypes = []string{
	ServiceTypeCareCenter,
	ServiceTypeHealthMitra,
	ServiceTypeHealthCheckup,
	ServiceTypeLabTest,
}

// CMSContentTypes lists every content section the dashboard can edit.
var CMSContentTypes = []string{
	"dashboard_advertisement",
	"dashboard_offers",
	"health_mitra_banner",
	"care_center_ad",
	"child_care_qa",
	"child_care_health_tips",
	"pregnancy_care_food",
	"pregnancy_care_articles",
	"pregnancy_care_qa",
	"pregnancy_care_medicines",
	"pregnancy_care_exercise",
	"pregnancy_care_hospitals",
	"pregnancy_care_mothers_health",
}

const (
	AuditEventOrganizationCreated       = "organization.created"
	AuditEventOrganizationUpdated       = "organization.updated"
	AuditEventOrganizationDeleted       = "organization.deleted"
	AuditEventOrganizationStatusToggled = "organization.status_toggled"
	AuditEventUserStatusToggled         = "user.status_toggled"
	AuditEventDoctorStatusToggled       = "doctor.status_toggled"
	AuditEventBookingStatusUpdated      = "booking.status_updated"
	AuditEventBookingCancelled          = "booking.cancelled"
	AuditEventBookingDeleted            = "booking.deleted"
	AuditEventCMSContentCreated         = "cms_content.created"
	AuditEventCMSContentUpdated         = "cms_content.updated"
	AuditEventCMSContentDeleted         = "cms_content.deleted"
	AuditEventServicePackageCreated     = "service_package.created"
	AuditEventServicePackageUpdated     = "service_package.updated"
	AuditEventServicePackageDeleted     = "service_package.deleted"
	AuditEventServicePackageToggled     = "service_package.status_toggled"
	AuditEventServiceCreated            = "service.created"
	AuditEventServiceUpdated            = "service.updated"
	AuditEventServiceBulkUpdated        = "service.bulk_updated"
	AuditEventServiceDeleted            = "service.deleted"
	AuditEventServiceToggled            = "service.status_toggled"
	AuditEventLogoUploaded              = "organization.logo_uploaded"
)
