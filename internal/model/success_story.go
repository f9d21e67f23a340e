package model

// swagger:model SuccessStory
type SuccessStory struct {
	BaseModel
	Name        string `gorm:"size:100;not null" json:"name"`
	Position    string `gorm:"size:100" json:"position"`
	Story       string `gorm:"type:text;not null" json:"story"`
	CourseTitle string `gorm:"size:255" json:"courseTitle"`
	Image       string `gorm:"size:255" json:"image"`
	Featured    bool   `gorm:"default:false;index" json:"featured"`
	Rating      int    `gorm:"default:5" json:"rating"`
}

func (SuccessStory) TableName() string {
	return "success_stories"
}
