package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PosterModel represents the posters table backing the homepage carousel.
type PosterModel struct {
	PosterID        uuid.UUID `gorm:"column:poster_id;type:uuid;primaryKey" json:"id"`
	PosterTitle     string    `gorm:"column:poster_title;type:text;not null" json:"title"`
	PosterCaption   *string   `gorm:"column:poster_caption;type:text" json:"caption"`
	PosterImageURL  string    `gorm:"column:poster_image_url;type:text;not null" json:"imageUrl"`
	PosterSortOrder int       `gorm:"column:poster_sort_order;not null;default:0" json:"sortOrder"`
	PosterActive    bool      `gorm:"column:poster_active;not null;default:true" json:"active"`
	PosterCreatedAt time.Time `gorm:"column:poster_created_at;autoCreateTime" json:"createdAt"`
}

func (PosterModel) TableName() string {
	return "posters"
}

func (m *PosterModel) BeforeCreate(tx *gorm.DB) error {
	if m.PosterID == uuid.Nil {
		m.PosterID = uuid.New()
	}
	return nil
}
