package model

import "time"

const (
	FinanceStatusPending  = "pending"
	FinanceStatusApproved = "approved"
	FinanceStatusRejected = "rejected"
)

// FinanceRequest 报销/经费申请，只能从 pending 审核一次
type FinanceRequest struct {
	ID          string     `gorm:"primaryKey;size:36" json:"id"`
	Title       string     `gorm:"size:200;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Amount      int64      `gorm:"not null" json:"amount"` // 最小货币单位
	Currency    string     `gorm:"size:8;not null;default:INR" json:"currency"`
	ReceiptURL  string     `gorm:"size:512" json:"receiptUrl,omitempty"`
	Status      string     `gorm:"size:16;not null;default:pending;index" json:"status"`
	RequestedBy string     `gorm:"size:36;not null;index" json:"requestedBy"`
	ReviewedBy  string     `gorm:"size:36" json:"reviewedBy,omitempty"`
	ReviewNote  string     `gorm:"type:text" json:"reviewNote,omitempty"`
	ReviewedAt  *time.Time `json:"reviewedAt,omitempty"`
	CreatedAt   time.Time  `gorm:"index" json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (FinanceRequest) TableName() string { return "finance_requests" }
