package models

import (
	"time"

	"gorm.io/gorm"
)

type AssetStatus string

const (
	AssetActive      AssetStatus = "ACTIVE"
	AssetUnderRepair AssetStatus = "UNDER_REPAIR"
	AssetRetired     AssetStatus = "RETIRED"
)

type AssetMobility string

const (
	AssetMoveable  AssetMobility = "MOVEABLE"
	AssetImmovable AssetMobility = "IMMOVABLE"
)

type Asset struct {
	ID        string         `gorm:"primaryKey;size:64" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name         string        `gorm:"size:255;not null" json:"name"`
	ItemName     string        `gorm:"size:255" json:"item_name"`
	Brand        string        `gorm:"size:255" json:"brand"`
	SerialNumber string        `gorm:"uniqueIndex;size:128" json:"serial_number"`
	Quantity     int           `gorm:"not null;default:1" json:"qty_unit"`
	Category     string        `gorm:"size:128;index" json:"category"`
	Status       AssetStatus   `gorm:"size:32;not null;index" json:"status"`
	Location     string        `gorm:"size:255" json:"location"`
	Mobility     AssetMobility `gorm:"size:32" json:"asset_mobility"`

	DateInstall          string `gorm:"size:32" json:"date_install,omitempty"`
	DateExpired          string `gorm:"size:32" json:"date_expired,omitempty"`
	DateWarrantyTP       string `gorm:"size:32" json:"date_warranty_tp,omitempty"`
	DateWarrantySupplier string `gorm:"size:32" json:"date_warranty_supplier,omitempty"`

	Photo  string `gorm:"size:512" json:"photo,omitempty"`
	Remark string `gorm:"type:text" json:"remark,omitempty"`
}

// SettingKind — тип справочника настроек активов.
type SettingKind string

const (
	SettingCategory SettingKind = "CATEGORY"
	SettingType     SettingKind = "TYPE"
	SettingLocation SettingKind = "LOCATION"
	SettingBrand    SettingKind = "BRAND"
)

// AssetSetting is a dictionary entry (category/type/location/brand)
// managed from the settings screens.
type AssetSetting struct {
	ID          string      `gorm:"primaryKey;size:64" json:"id"`
	Name        string      `gorm:"size:255;not null" json:"name"`
	Description string      `gorm:"size:512" json:"description"`
	Kind        SettingKind `gorm:"size:32;not null;index" json:"kind"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
