package model

type CourseDifficulty string

const (
	Beginner     CourseDifficulty = "beginner"
	Intermediate CourseDifficulty = "intermediate"
	Advanced     CourseDifficulty = "advanced"
)

type ContentStatus string

const (
	StatusDraft     ContentStatus = "draft"
	StatusPublished ContentStatus = "published"
	StatusArchived  ContentStatus = "archived"
)

// swagger:model Course
type Course struct {
	BaseModel
	Title            string           `gorm:"size:255;not null" json:"title"`
	Description      string           `gorm:"type:text" json:"description"`
	Category         string           `gorm:"size:100;index" json:"category"`
	Difficulty       CourseDifficulty `gorm:"size:20;default:'beginner'" json:"difficulty"`
	Rating           float64          `gorm:"default:0" json:"rating"`
	Duration         string           `gorm:"size:50" json:"duration"`
	StudentsEnrolled int              `gorm:"default:0" json:"studentsEnrolled"`
	InstructorID     uint             `gorm:"index" json:"instructorId"`
	InstructorName   string           `gorm:"size:100" json:"instructorName"`
	InstructorBio    string           `gorm:"size:500" json:"instructorBio"`
	Price            float64          `gorm:"default:0" json:"price"`
	Tags             StringList       `gorm:"size:500" json:"tags"`
	Lessons          int              `gorm:"default:0" json:"lessons"`
	Status           ContentStatus    `gorm:"size:20;default:'draft';index" json:"status"`
	Thumbnail        string           `gorm:"size:255" json:"thumbnail"`
	Videos           []CourseVideo    `gorm:"foreignKey:CourseID" json:"videos"`
}

func (Course) TableName() string {
	return "courses"
}

// CourseVideo 课程内嵌视频列表（子表）
type CourseVideo struct {
	BaseModel
	CourseID   uint   `gorm:"index;not null" json:"courseId"`
	Title      string `gorm:"size:255;not null" json:"title"`
	YoutubeURL string `gorm:"size:255;not null" json:"youtubeUrl"`
	VideoID    string `gorm:"size:20" json:"videoId"`
	Duration   string `gorm:"size:50" json:"duration"`
	Order      int    `gorm:"default:0" json:"order"`
}

func (CourseVideo) TableName() string {
	return "course_videos"
}

func (d CourseDifficulty) Valid() bool {
	switch d {
	case Beginner, Intermediate, Advanced:
		return true
	}
	return false
}

func (s ContentStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}
