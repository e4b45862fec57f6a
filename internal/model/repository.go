package model

import "time"

// CodeRepository 俱乐部代码仓库登记
type CodeRepository struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"size:128;not null" json:"name"`
	URL         string    `gorm:"uniqueIndex;size:512;not null" json:"url"`
	Description string    `gorm:"type:text" json:"description"`
	Language    string    `gorm:"size:32" json:"language,omitempty"`
	AddedBy     string    `gorm:"size:36;not null" json:"addedBy"`
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (CodeRepository) TableName() string { return "repositories" }
