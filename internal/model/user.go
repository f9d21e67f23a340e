package model

import (
	"time"
)

type UserRole string

const (
	Student UserRole = "student"
	Teacher UserRole = "teacher"
	Admin   UserRole = "admin"
)

// Profile 用户资料（嵌入 users 表）
type Profile struct {
	Bio         string `gorm:"size:500" json:"bio"`
	Institution string `gorm:"size:200" json:"institution"`
	Subject     string `gorm:"size:100" json:"subject"`
	Experience  string `gorm:"size:100" json:"experience"`
	Avatar      string `gorm:"size:255" json:"avatar"`
}

// UserStats 统计计数器（嵌入 users 表）
type UserStats struct {
	CoursesEnrolled  int `gorm:"default:0" json:"coursesEnrolled"`
	CoursesCompleted int `gorm:"default:0" json:"coursesCompleted"`
	CoursesCreated   int `gorm:"default:0" json:"coursesCreated"`
	StudentsEnrolled int `gorm:"default:0" json:"studentsEnrolled"`
}

// swagger:model User
type User struct {
	BaseModel
	Name       string     `gorm:"size:100;not null" json:"name"`
	Email      string     `gorm:"size:100;unique;not null" json:"email"`
	Password   string     `gorm:"size:100;not null" json:"-"`
	Role       UserRole   `gorm:"size:20;default:'student';index" json:"role"`
	Profile    Profile    `gorm:"embedded;embeddedPrefix:profile_" json:"profile"`
	Stats      UserStats  `gorm:"embedded;embeddedPrefix:stats_" json:"stats"`
	Badges     StringList `gorm:"size:500" json:"badges"`
	JoinedDate time.Time  `json:"joinedDate"`
	LastLogin  time.Time  `json:"lastLogin"`
	LastSeen   time.Time  `json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}

func (r UserRole) Valid() bool {
	switch r {
	case Student, Teacher, Admin:
		return true
	}
	return false
}
