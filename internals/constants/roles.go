package constants

// Role names carried inside JWT claims and checked by the role middleware.
const (
	RoleAdmin               = "admin"
	RoleITAdmin             = "it_admin"
	RoleEventCoordinator    = "event_coordinator"
	RoleDistrictCoordinator = "district_coordinator"
	RoleSchoolUser          = "school_user"
)

// Error templates used by the role middleware when access is denied.
const (
	RoleErrorAdminOnly       = "Access denied: admin only"
	RoleErrorITAdminOnly     = "Access denied: IT admin only"
	RoleErrorCoordinatorOnly = "Access denied: event coordinator only"
	RoleErrorDistrictOnly    = "Access denied: district coordinator only"
	RoleErrorSchoolOnly      = "Access denied: school user only"
)
