package model

import (
	"time"
)

// CommunityStatus 管理员发布的社区公告，一条记录一条公告
// swagger:model CommunityStatus
type CommunityStatus struct {
	BaseModel
	Status      string    `gorm:"size:500;not null" json:"status"`
	UpdatedByID uint      `gorm:"index" json:"updatedById"`
	UpdatedBy   *User     `gorm:"foreignKey:UpdatedByID" json:"updatedBy,omitempty"`
	UpdatedTime time.Time `json:"updatedAt"`
}

func (CommunityStatus) TableName() string {
	return "community_statuses"
}
