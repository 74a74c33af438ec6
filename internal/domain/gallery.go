package domain

import "time"

// GalleryItem is an uploaded image shown on the public gallery
type GalleryItem struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Description *string   `gorm:"column:description;type:text" json:"description,omitempty"`
	ImageURL    string    `gorm:"column:image_url;type:varchar(500);not null" json:"image_url"`
	ImageKey    string    `gorm:"column:image_key;type:varchar(500)" json:"-"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (GalleryItem) TableName() string { return "gallery" }
