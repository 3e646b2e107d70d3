package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SiteSettingModel represents the site_settings table: configurable copy
// keyed by a unique name, upserted by admins, read by public pages.
type SiteSettingModel struct {
	SiteSettingID        uuid.UUID `gorm:"column:site_setting_id;type:uuid;primaryKey" json:"site_setting_id"`
	SiteSettingKey       string    `gorm:"column:site_setting_key;type:varchar(100);not null;uniqueIndex" json:"key"`
	SiteSettingValue     string    `gorm:"column:site_setting_value;type:text;not null" json:"value"`
	SiteSettingUpdatedAt time.Time `gorm:"column:site_setting_updated_at;autoUpdateTime" json:"updatedAt"`
}

func (SiteSettingModel) TableName() string {
	return "site_settings"
}

func (m *SiteSettingModel) BeforeCreate(tx *gorm.DB) error {
	if m.SiteSettingID == uuid.Nil {
		m.SiteSettingID = uuid.New()
	}
	return nil
}
