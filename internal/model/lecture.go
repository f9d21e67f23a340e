package model

import (
	"time"
)

// LectureStats 讲座计数器（嵌入 lectures 表，每个计数独立原子更新）
type LectureStats struct {
	Views       int `gorm:"default:0" json:"views"`
	Likes       int `gorm:"default:0" json:"likes"`
	Enrollments int `gorm:"default:0" json:"enrollments"`
}

// swagger:model Lecture
type Lecture struct {
	BaseModel
	Title          string        `gorm:"size:255;not null" json:"title"`
	Description    string        `gorm:"type:text" json:"description"`
	YoutubeURL     string        `gorm:"size:255;not null" json:"youtubeUrl"`
	VideoID        string        `gorm:"size:20;not null" json:"videoId"`
	Thumbnail      string        `gorm:"size:255" json:"thumbnail"`
	Category       string        `gorm:"size:100;index" json:"category"`
	Tags           StringList    `gorm:"size:500" json:"tags"`
	Level          string        `gorm:"size:20;default:'beginner'" json:"level"`
	Duration       string        `gorm:"size:50" json:"duration"`
	InstructorID   uint          `gorm:"index;not null" json:"instructorId"`
	Instructor     *User         `gorm:"foreignKey:InstructorID" json:"instructor,omitempty"`
	InstructorName string        `gorm:"size:100" json:"instructorName"`
	// 讲座可独立存在，也可挂在某个课程下
	CourseID       *uint         `gorm:"index" json:"courseId"`
	Stats          LectureStats  `gorm:"embedded;embeddedPrefix:stats_" json:"stats"`
	Status         ContentStatus `gorm:"size:20;default:'published';index" json:"status"`
	UploadDate     time.Time     `json:"uploadDate"`
}

func (Lecture) TableName() string {
	return "lectures"
}
