package domain

import "time"

// Subscriber is a newsletter recipient
type Subscriber struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Email        string    `gorm:"column:email;type:varchar(255);uniqueIndex;not null" json:"email"`
	SubscribedAt time.Time `gorm:"column:subscribed_at;autoCreateTime" json:"subscribed_at"`
}

func (Subscriber) TableName() string { return "newsletter_subscribers" }

// SubscribeRequest public signup payload
type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}
