package model

import "time"

const (
	OutboxPending int8 = 0
	OutboxSent    int8 = 1
	OutboxFailed  int8 = 2
)

// ClubOutbox 俱乐部动态事件表，与业务写入同事务
type ClubOutbox struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement"`
	EventType   string `gorm:"size:32;not null"` // member.registered / project.deleted ...
	AggregateID string `gorm:"size:36;not null;index"`
	ActorID     string `gorm:"size:36"`
	Payload     string `gorm:"type:text;not null"`
	Status      int8   `gorm:"not null;default:0;index;comment:'0=pending,1=sent,2=failed'"`
	Retry       int    `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ClubOutbox) TableName() string { return "club_outbox" }
