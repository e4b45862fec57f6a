package model

import "time"

// Resource 学习资料
type Resource struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	URL         string    `gorm:"size:512;not null" json:"url"`
	Category    string    `gorm:"size:32;index" json:"category"`
	Description string    `gorm:"type:text" json:"description"`
	AddedBy     string    `gorm:"size:36;not null" json:"addedBy"`
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Resource) TableName() string { return "resources" }
