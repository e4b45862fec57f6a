package model

import "time"

const (
	BountyStatusOpen      = "open"
	BountyStatusClaimed   = "claimed"
	BountyStatusCompleted = "completed"
)

type Bounty struct {
	ID          string     `gorm:"primaryKey;size:36" json:"id"`
	Title       string     `gorm:"size:200;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Reward      int64      `gorm:"not null;default:0" json:"reward"`
	Status      string     `gorm:"size:16;not null;default:open;index" json:"status"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	CreatedBy   string     `gorm:"size:36;not null" json:"createdBy"`
	AssigneeID  string     `gorm:"size:36;index" json:"assigneeId,omitempty"`
	CreatedAt   time.Time  `gorm:"index" json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (Bounty) TableName() string { return "bounties" }
