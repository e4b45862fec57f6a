package model

import "time"

type BankDetails struct {
	AccountName   string `json:"accountName,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty"`
	BankName      string `json:"bankName,omitempty"`
	IFSC          string `json:"ifsc,omitempty"`
	UPI           string `json:"upi,omitempty"`
}

type SocialLinks struct {
	Github   string `json:"github,omitempty"`
	Linkedin string `json:"linkedin,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
}

// Member 俱乐部成员，钱包地址唯一
type Member struct {
	ID            string      `gorm:"primaryKey;size:36" json:"id"`
	WalletAddress string      `gorm:"uniqueIndex;size:64;not null" json:"walletAddress"`
	Name          string      `gorm:"size:64;not null" json:"name"`
	Email         string      `gorm:"size:128" json:"email,omitempty"`
	Role          string      `gorm:"size:32;not null;default:Member" json:"role"`
	IsActive      bool        `gorm:"not null;default:true;index" json:"isActive"`
	AvatarURL     string      `gorm:"size:512" json:"avatarUrl,omitempty"`
	Bio           string      `gorm:"type:text" json:"bio,omitempty"`
	Skills        []string    `gorm:"serializer:json;type:text" json:"skills"`
	Social        SocialLinks `gorm:"embedded;embeddedPrefix:social_" json:"social"`
	BankDetails   BankDetails `gorm:"serializer:json;type:text" json:"bankDetails"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

func (Member) TableName() string { return "members" }

// Public 对外展示时隐藏银行信息
func (m Member) Public() Member {
	m.BankDetails = BankDetails{}
	return m
}
