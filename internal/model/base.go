package model

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// swagger:model
type BaseModel struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// StringList 存储逗号分隔的扁平列表 (tags, badges)
type StringList string

func (l StringList) Values() []string {
	if l == "" {
		return []string{}
	}
	parts := strings.Split(string(l), ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func JoinList(values []string) StringList {
	return StringList(strings.Join(values, ","))
}
