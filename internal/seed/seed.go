// Package seed ships the demo dataset the dashboard boots with when no
// real data exists yet: users for every role tier, a handful of assets
// and dockets covering each lifecycle corner, and the asset dictionaries.
package seed

import (
	"time"

	"nadi/internal/models"
)

func ts(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}

// Users возвращает демо-пользователей. Пароли не хранятся: логин в
// этой системе — подбор по e-mail без проверки пароля.
func Users() []models.User {
	return []models.User{
		{
			ID: "u1", Name: "Ahmad Razali", Email: "ahmad@tp.example.com",
			Role: models.RoleTPAdmin, Org: "TechPro Solutions", Dept: "Administration",
			Phone: "+6012-345-6789", IsActive: true,
			CreatedAt: ts("2023-06-15T09:00:00Z"), UpdatedAt: ts("2023-06-15T09:00:00Z"),
		},
		{
			ID: "u2", Name: "Farah Lim", Email: "farah@tp.example.com",
			Role: models.RoleTPOperation, Org: "TechPro Solutions", Dept: "Operations",
			Phone: "+6012-987-6543", IsActive: true,
			CreatedAt: ts("2023-06-16T10:30:00Z"), UpdatedAt: ts("2023-06-16T10:30:00Z"),
		},
		{
			ID: "u3", Name: "Rajesh Kumar", Email: "rajesh@dusp.example.com",
			Role: models.RoleDUSPAdmin, Org: "Digital Universal Services", Dept: "Management",
			Phone: "+6013-222-3333", IsActive: true,
			CreatedAt: ts("2023-06-17T08:15:00Z"), UpdatedAt: ts("2023-06-17T08:15:00Z"),
		},
		{
			ID: "u4", Name: "Nurul Huda", Email: "nurul@mcmc.example.com",
			Role: models.RoleMCMCAdmin, Org: "MCMC", Dept: "Administration",
			Phone: "+6019-888-7777", IsActive: true,
			CreatedAt: ts("2023-06-18T14:20:00Z"), UpdatedAt: ts("2023-06-18T14:20:00Z"),
		},
		{
			ID: "u5", Name: "Tan Wei Ming", Email: "tan@vendor.example.com",
			Role: models.RoleVendorAdmin, Org: "TechFix Solutions", Dept: "Administration",
			Phone: "+6016-555-4444", IsActive: true,
			CreatedAt: ts("2023-06-19T11:45:00Z"), UpdatedAt: ts("2023-06-19T11:45:00Z"),
		},
		{
			ID: "u6", Name: "Site Operator", Email: "site@tp.example.com",
			Role: models.RoleTPSite, Org: "TechPro Solutions", Dept: "Site Operations",
			Phone: "+6018-123-4567", IsActive: true,
			CreatedAt: ts("2023-06-20T10:00:00Z"), UpdatedAt: ts("2023-06-20T10:00:00Z"),
		},
		{
			ID: "u0", Name: "Super Admin", Email: "super@admin.example.com",
			Role: models.RoleSuperAdmin, Org: "MCMC", Dept: "Administration",
			Phone: "+60123456789", IsActive: true,
			CreatedAt: ts("2023-06-01T00:00:00Z"), UpdatedAt: ts("2023-06-01T00:00:00Z"),
		},
	}
}

func Assets() []models.Asset {
	return []models.Asset{
		{
			ID: "a1", Name: "Server Rack A", ItemName: "Dell PowerEdge R740",
			Brand: "Dell", SerialNumber: "SRV-DELL-001", Quantity: 1,
			Category: "IT Infrastructure", Status: models.AssetActive,
			Location: "Kuala Lumpur Data Center, Room 101", Mobility: models.AssetImmovable,
			DateInstall: "2022-01-15", DateWarrantyTP: "2025-01-15",
			CreatedAt: ts("2022-01-20T09:00:00Z"), UpdatedAt: ts("2023-05-21T14:30:00Z"),
		},
		{
			ID: "a2", Name: "Network Switch", ItemName: "Cisco Catalyst 9300",
			Brand: "Cisco", SerialNumber: "NSW-CISCO-002", Quantity: 1,
			Category: "IT Infrastructure", Status: models.AssetActive,
			Location: "Penang Office, Server Room", Mobility: models.AssetMoveable,
			DateInstall: "2022-02-10", DateWarrantyTP: "2025-02-10",
			CreatedAt: ts("2022-02-15T10:15:00Z"), UpdatedAt: ts("2023-04-16T11:20:00Z"),
		},
		{
			ID: "a3", Name: "Air Conditioning Unit", ItemName: "Daikin VRV IV",
			Brand: "Daikin", SerialNumber: "HVAC-DAI-003", Quantity: 1,
			Category: "Facilities", Status: models.AssetUnderRepair,
			Location: "Kuala Lumpur Data Center, Room 101", Mobility: models.AssetImmovable,
			DateInstall: "2021-11-05", DateWarrantyTP: "2024-11-05",
			CreatedAt: ts("2021-11-10T08:30:00Z"), UpdatedAt: ts("2023-06-05T16:45:00Z"),
		},
		{
			ID: "a4", Name: "UPS System", ItemName: "APC Smart-UPS SRT 10kVA",
			Brand: "APC", SerialNumber: "UPS-APC-004", Quantity: 1,
			Category: "Power", Status: models.AssetActive,
			Location: "Johor Bahru Site, Main Building", Mobility: models.AssetMoveable,
			DateInstall: "2022-03-20", DateWarrantyTP: "2025-03-20",
			CreatedAt: ts("2022-03-25T13:45:00Z"), UpdatedAt: ts("2023-05-26T09:10:00Z"),
		},
		{
			ID: "a5", Name: "Security Camera System", ItemName: "Hikvision DS-2CD2T85FWD-I5",
			Brand: "Hikvision", SerialNumber: "CAM-HIK-005", Quantity: 8,
			Category: "Security", Status: models.AssetActive,
			Location: "Kuching Site, Perimeter", Mobility: models.AssetImmovable,
			DateInstall: "2022-04-10", DateWarrantyTP: "2025-04-10",
			CreatedAt: ts("2022-04-15T11:30:00Z"), UpdatedAt: ts("2023-06-11T14:20:00Z"),
		},
		{
			ID: "a6", Name: "Generator", ItemName: "Cummins C150D5",
			Brand: "Cummins", SerialNumber: "GEN-CUM-006", Quantity: 1,
			Category: "Power", Status: models.AssetActive,
			Location: "Kuala Lumpur Data Center, External", Mobility: models.AssetImmovable,
			DateInstall: "2021-10-15", DateWarrantyTP: "2024-10-15",
			CreatedAt: ts("2021-10-20T09:45:00Z"), UpdatedAt: ts("2023-06-06T10:30:00Z"),
		},
		{
			ID: "a7", Name: "Router", ItemName: "Juniper MX240",
			Brand: "Juniper", SerialNumber: "RTR-JUN-007", Quantity: 1,
			Category: "IT Infrastructure", Status: models.AssetRetired,
			Location: "Storage, Kuala Lumpur", Mobility: models.AssetMoveable,
			DateInstall: "2018-05-20", DateWarrantyTP: "2021-05-20",
			CreatedAt: ts("2018-05-25T15:20:00Z"), UpdatedAt: ts("2021-12-10T11:15:00Z"),
		},
	}
}

// Dockets покрывает каждый значимый статус жизненного цикла.
func Dockets() []models.MaintenanceDocket {
	closed := ts("2023-05-20T16:30:00Z")
	return []models.MaintenanceDocket{
		{
			ID: "d1", DocketNo: "MD-2023-001",
			Title:       "Server Rack Quarterly Maintenance",
			Description: "Regular quarterly maintenance for Server Rack A including cleaning, firmware updates, and hardware checks.",
			Type:        models.TypePreventiveScheduled, Category: models.CategoryICT,
			SLACategory: models.SLANormal, Status: models.StatusClosed,
			Location: "Kuala Lumpur Data Center, Room 101", AssetID: "a1", AssignedTo: "u2",
			RequestedBy: "u1", SubmittedBy: "u1", SubmittedDate: ts("2023-05-01T09:00:00Z"),
			EstimatedCompletionDate: "2023-05-25", ActualCompletionDate: &closed,
			LastActionBy: "Farah Lim", LastActionDate: ts("2023-05-20T16:30:00Z"),
			Attachments: models.Attachments{Before: []string{}, After: []string{}},
			CreatedAt:   ts("2023-05-01T09:00:00Z"), UpdatedAt: ts("2023-05-20T16:30:00Z"),
		},
		{
			ID: "d2", DocketNo: "MD-2023-002",
			Title:       "HVAC System Repair",
			Description: "AC unit showing temperature fluctuations. Requires immediate attention as it's affecting server room temperature.",
			Type:        models.TypeComprehensive, Category: models.CategoryHVAC,
			SLACategory: models.SLACritical, Status: models.StatusApproved,
			Location: "Kuala Lumpur Data Center, Room 101", AssetID: "a3", AssignedTo: "u5",
			RequestedBy: "u2", SubmittedBy: "u2", SubmittedDate: ts("2023-06-01T10:15:00Z"),
			EstimatedCompletionDate: "2023-06-15",
			LastActionBy:            "Rajesh Kumar", LastActionDate: ts("2023-06-05T14:20:00Z"),
			Attachments: models.Attachments{Before: []string{}, After: []string{}},
			CreatedAt:   ts("2023-06-01T10:15:00Z"), UpdatedAt: ts("2023-06-05T14:20:00Z"),
		},
		{
			ID: "d3", DocketNo: "MD-2023-003",
			Title:       "UPS Battery Replacement",
			Description: "Scheduled replacement of UPS batteries as per maintenance schedule.",
			Type:        models.TypePreventiveScheduled, Category: models.CategoryElectrical,
			SLACategory: models.SLANormal, Status: models.StatusSubmitted,
			Location: "Johor Bahru Site, Main Building", AssetID: "a4", AssignedTo: "u5",
			RequestedBy: "u2", SubmittedBy: "u2", SubmittedDate: ts("2023-06-15T08:45:00Z"),
			EstimatedCompletionDate: "2023-07-10",
			LastActionBy:            "Farah Lim", LastActionDate: ts("2023-06-15T08:45:00Z"),
			Attachments: models.Attachments{Before: []string{}, After: []string{}},
			CreatedAt:   ts("2023-06-15T08:45:00Z"), UpdatedAt: ts("2023-06-15T08:45:00Z"),
		},
		{
			ID: "d4", DocketNo: "MD-2023-004",
			Title:       "Network Switch Configuration",
			Description: "Reconfiguration of network switch to accommodate new services.",
			Type:        models.TypeComprehensive, Category: models.CategoryICT,
			SLACategory: models.SLALow, Status: models.StatusDrafted,
			Location: "Penang Office, Server Room", AssetID: "a2",
			RequestedBy: "u2", SubmittedBy: "u2", SubmittedDate: ts("2023-06-20T11:30:00Z"),
			EstimatedCompletionDate: "2023-07-20",
			LastActionBy:            "Farah Lim", LastActionDate: ts("2023-06-20T11:30:00Z"),
			Attachments: models.Attachments{Before: []string{}, After: []string{}},
			CreatedAt:   ts("2023-06-20T11:30:00Z"), UpdatedAt: ts("2023-06-20T11:30:00Z"),
		},
		{
			ID: "d5", DocketNo: "MD-2023-005",
			Title:       "Security Camera Alignment",
			Description: "Adjustment of security cameras due to poor angle coverage.",
			Type:        models.TypePreventiveUnscheduled, Category: models.CategoryICT,
			SLACategory: models.SLALow, Status: models.StatusRejected,
			Location: "Kuching Site, Perimeter", AssetID: "a5", AssignedTo: "u5",
			RequestedBy: "u2", SubmittedBy: "u2", SubmittedDate: ts("2023-06-20T14:00:00Z"),
			EstimatedCompletionDate: "2023-06-30",
			LastActionBy:            "Rajesh Kumar", LastActionDate: ts("2023-06-22T09:15:00Z"),
			Attachments: models.Attachments{Before: []string{}, After: []string{}},
			CreatedAt:   ts("2023-06-20T14:00:00Z"), UpdatedAt: ts("2023-06-22T09:15:00Z"),
		},
		{
			ID: "d6", DocketNo: "MD-2023-006",
			Title:       "Generator Fuel System Check",
			Description: "Inspection and cleaning of generator fuel system.",
			Type:        models.TypePreventiveScheduled, Category: models.CategoryElectrical,
			SLACategory: models.SLANormal, Status: models.StatusApproved,
			Location: "Kuala Lumpur Data Center, External", AssetID: "a6", AssignedTo: "u5",
			RequestedBy: "u1", SubmittedBy: "u1", SubmittedDate: ts("2023-06-20T15:30:00Z"),
			EstimatedCompletionDate: "2023-07-05",
			LastActionBy:            "Rajesh Kumar", LastActionDate: ts("2023-06-25T10:45:00Z"),
			Attachments: models.Attachments{Before: []string{}, After: []string{}},
			CreatedAt:   ts("2023-06-20T15:30:00Z"), UpdatedAt: ts("2023-06-25T10:45:00Z"),
		},
	}
}

func Settings() []models.AssetSetting {
	return []models.AssetSetting{
		{ID: "c1", Name: "ICT Equipment", Description: "Computers, servers, network devices", Kind: models.SettingCategory},
		{ID: "c2", Name: "Furniture", Description: "Office furniture and fittings", Kind: models.SettingCategory},
		{ID: "c3", Name: "Building", Description: "Building structural components", Kind: models.SettingCategory},
		{ID: "t1", Name: "Desktop Computer", Description: "Standard office desktop computer", Kind: models.SettingType},
		{ID: "t2", Name: "Laptop", Description: "Portable computer", Kind: models.SettingType},
		{ID: "t3", Name: "Server", Description: "Network server equipment", Kind: models.SettingType},
		{ID: "l1", Name: "Headquarters", Description: "Main office building", Kind: models.SettingLocation},
		{ID: "l2", Name: "Branch Office", Description: "Satellite office location", Kind: models.SettingLocation},
		{ID: "l3", Name: "Data Center", Description: "Primary data center", Kind: models.SettingLocation},
		{ID: "b1", Name: "Dell", Description: "Dell Technologies", Kind: models.SettingBrand},
		{ID: "b2", Name: "HP", Description: "Hewlett Packard", Kind: models.SettingBrand},
		{ID: "b3", Name: "Cisco", Description: "Cisco Systems", Kind: models.SettingBrand},
	}
}
