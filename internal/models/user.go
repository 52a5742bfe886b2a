package models

import (
	"time"
)

// Role — организационная роль пользователя. Закрытый набор.
type Role string

const (
	RoleMCMCAdmin     Role = "MCMC_ADMIN"
	RoleMCMCHR        Role = "MCMC_HR"
	RoleMCMCOperation Role = "MCMC_OPERATION"
	RoleTPAdmin       Role = "TP_ADMIN"
	RoleTPPIC         Role = "TP_PIC"
	RoleTPSite        Role = "TP_SITE"
	RoleTPOperation   Role = "TP_OPERATION"
	RoleDUSPAdmin     Role = "DUSP_ADMIN"
	RoleDUSPOperation Role = "DUSP_OPERATION"
	RoleVendorAdmin   Role = "VENDOR_ADMIN"
	RoleVendorStaff   Role = "VENDOR_STAFF"
	RoleSuperAdmin    Role = "SUPER_ADMIN"
)

var roleLabels = map[Role]string{
	RoleMCMCAdmin:     "MCMC Administrator",
	RoleMCMCHR:        "MCMC HR",
	RoleMCMCOperation: "MCMC Operations",
	RoleTPAdmin:       "TP Administrator",
	RoleTPPIC:         "TP PIC",
	RoleTPSite:        "TP Site Manager",
	RoleTPOperation:   "TP Operations",
	RoleDUSPAdmin:     "DUSP Administrator",
	RoleDUSPOperation: "DUSP Operations",
	RoleVendorAdmin:   "Vendor Administrator",
	RoleVendorStaff:   "Vendor Staff",
	RoleSuperAdmin:    "Super Admin",
}

// Label возвращает человекочитаемое название роли.
func (r Role) Label() string {
	if l, ok := roleLabels[r]; ok {
		return l
	}
	return string(r)
}

// Known reports whether r is one of the defined roles.
func (r Role) Known() bool {
	_, ok := roleLabels[r]
	return ok
}

type User struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Role      Role      `gorm:"size:64;not null" json:"role"`
	Org       string    `gorm:"size:255" json:"organization"`
	Dept      string    `gorm:"size:255" json:"department,omitempty"`
	Phone     string    `gorm:"size:64" json:"phone_number,omitempty"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
