package model

import "time"

const (
	ProjectStatusActive    = "active"
	ProjectStatusCompleted = "completed"
	ProjectStatusArchived  = "archived"
)

type Project struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Status      string    `gorm:"size:16;not null;default:active" json:"status"`
	GithubURL   string    `gorm:"size:512" json:"githubUrl,omitempty"`
	DemoURL     string    `gorm:"size:512" json:"demoUrl,omitempty"`
	ImageURL    string    `gorm:"size:512" json:"imageUrl,omitempty"`
	TechStack   []string  `gorm:"serializer:json;type:text" json:"techStack"`
	CreatedBy   string    `gorm:"size:36;not null;index" json:"createdBy"`
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Project) TableName() string { return "projects" }
