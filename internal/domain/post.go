package domain

import "time"

// DateLayout is the wire format of a post's publish date
const DateLayout = "2006-01-02"

// Post represents a blog post
type Post struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Excerpt   string    `gorm:"column:excerpt;type:text;not null" json:"excerpt"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	ImageURL  *string   `gorm:"column:image_url;type:varchar(500)" json:"image_url,omitempty"`
	Date      string    `gorm:"column:date;type:varchar(10);index" json:"date"` // YYYY-MM-DD
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Post) TableName() string { return "posts" }

// PostRequest is the admin create/update payload
type PostRequest struct {
	Title    string  `json:"title" binding:"required"`
	Excerpt  string  `json:"excerpt" binding:"required"`
	Content  string  `json:"content" binding:"required"`
	ImageURL *string `json:"image_url"`
	Date     string  `json:"date"` // defaults to today
}
