// Package rbac — единая таблица ролей и допусков. Все проверки прав в
// приложении (HTTP-гейты, машина статусов) идут через этот пакет, чтобы
// списки ролей не расползались по обработчикам.
package rbac

import "nadi/internal/models"

// Tier sets used by the docket workflow.
var (
	// NADIStaff — персонал площадки (организация-владелец сайта).
	NADIStaff = []models.Role{
		models.RoleTPAdmin, models.RoleTPOperation,
		models.RoleTPPIC, models.RoleTPSite,
	}
	// TPManagement — управляющий уровень TP, утверждает докеты.
	TPManagement = []models.Role{models.RoleTPAdmin, models.RoleTPOperation}
	// DUSPStaff — надзорный орган, решает по рекомендованным докетам.
	DUSPStaff = []models.Role{models.RoleDUSPAdmin, models.RoleDUSPOperation}
)

// Allow-lists per action category.
var (
	AssetManageRoles = []models.Role{
		models.RoleTPSite, models.RoleTPAdmin, models.RoleTPOperation,
	}
	AssetViewRoles = []models.Role{
		models.RoleDUSPAdmin, models.RoleDUSPOperation,
		models.RoleMCMCAdmin, models.RoleMCMCOperation,
		models.RoleTPSite, models.RoleTPAdmin, models.RoleTPOperation,
	}
	MaintenanceManageRoles = []models.Role{
		models.RoleTPSite, models.RoleTPAdmin, models.RoleTPOperation,
	}
	MaintenanceViewRoles = []models.Role{
		models.RoleDUSPAdmin, models.RoleDUSPOperation,
		models.RoleMCMCAdmin, models.RoleMCMCOperation,
		models.RoleVendorStaff, models.RoleVendorAdmin,
		models.RoleTPSite, models.RoleTPAdmin, models.RoleTPOperation,
	}
	PerformanceViewRoles = []models.Role{
		models.RoleTPPIC, models.RoleTPSite,
		models.RoleMCMCAdmin, models.RoleMCMCHR,
	}
	SettingsManageRoles = []models.Role{models.RoleSuperAdmin}
)

// IsAuthorized reports whether role belongs to allowed. Total function,
// fail-closed: empty role never matches. SUPER_ADMIN passes every check.
func IsAuthorized(role models.Role, allowed []models.Role) bool {
	if role == "" {
		return false
	}
	if role == models.RoleSuperAdmin {
		return true
	}
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

func CanManageAssets(role models.Role) bool { return IsAuthorized(role, AssetManageRoles) }

func CanViewAssets(role models.Role) bool { return IsAuthorized(role, AssetViewRoles) }

func CanManageMaintenance(role models.Role) bool {
	return IsAuthorized(role, MaintenanceManageRoles)
}

func CanViewMaintenance(role models.Role) bool {
	return IsAuthorized(role, MaintenanceViewRoles)
}

func CanViewPerformance(role models.Role) bool {
	return IsAuthorized(role, PerformanceViewRoles)
}

func CanManageSettings(role models.Role) bool {
	return IsAuthorized(role, SettingsManageRoles)
}
