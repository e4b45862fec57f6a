package model

import "time"

type Event struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Type        string    `gorm:"size:32" json:"type"` // workshop / hackathon / meetup ...
	Location    string    `gorm:"size:200" json:"location"`
	StartsAt    time.Time `gorm:"not null;index" json:"startsAt"`
	EndsAt      time.Time `json:"endsAt"`
	RegisterURL string    `gorm:"size:512" json:"registerUrl,omitempty"`
	ImageURL    string    `gorm:"size:512" json:"imageUrl,omitempty"`
	CreatedBy   string    `gorm:"size:36;not null" json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Event) TableName() string { return "events" }
