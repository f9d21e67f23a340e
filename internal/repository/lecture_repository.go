package repository

import (
	"coursehub_backend/internal/model"

	"gorm.io/gorm"
)

type LectureRepository struct {
	DB *gorm.DB
}

func NewLectureRepository(db *gorm.DB) *LectureRepository {
	return &LectureRepository{DB: db}
}

func (r *LectureRepository) Create(lecture *model.Lecture) error {
	return r.DB.Create(lecture).Error
}

func (r *LectureRepository) FindByID(id uint) (*model.Lecture, error) {
	var lecture model.Lecture
	err := r.DB.First(&lecture, id).Error
	return &lecture, err
}

// LectureFilter VisibleTo 限定可见范围：已发布的，加上该讲师自己的未发布内容
type LectureFilter struct {
	Search     string
	Category   string
	Status     model.ContentStatus
	Instructor uint
	CourseID   uint
	VisibleTo  uint
}

func (r *LectureRepository) FindWithPagination(offset, limit int, f LectureFilter) ([]model.Lecture, int64, error) {
	var lectures []model.Lecture
	var total int64

	query := r.DB.Model(&model.Lecture{})

	if f.Search != "" {
		query = query.Where("title LIKE ? OR description LIKE ?", "%"+f.Search+"%", "%"+f.Search+"%")
	}
	if f.Category != "" {
		query = query.Where("category = ?", f.Category)
	}
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if f.Instructor > 0 {
		query = query.Where("instructor_id = ?", f.Instructor)
	}
	if f.CourseID > 0 {
		query = query.Where("course_id = ?", f.CourseID)
	}
	if f.VisibleTo > 0 {
		query = query.Where("status = ? OR instructor_id = ?", model.StatusPublished, f.VisibleTo)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("upload_date DESC").Offset(offset).Limit(limit).Find(&lectures).Error
	if err != nil {
		return nil, 0, err
	}

	return lectures, total, nil
}

func (r *LectureRepository) FindByCourse(courseID uint) ([]model.Lecture, error) {
	var lectures []model.Lecture
	err := r.DB.Where("course_id = ?", courseID).Order("upload_date ASC").Find(&lectures).Error
	return lectures, err
}

func (r *LectureRepository) FindTopByViews(limit int, status model.ContentStatus) ([]model.Lecture, error) {
	var lectures []model.Lecture
	query := r.DB.Model(&model.Lecture{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("stats_views DESC").Limit(limit).Find(&lectures).Error
	return lectures, err
}

func (r *LectureRepository) Update(lecture *model.Lecture) error {
	return r.DB.Save(lecture).Error
}

func (r *LectureRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&model.Lecture{}, id).Error
}

// IncrementCounter 单计数器原子自增 (stats_views / stats_likes / stats_enrollments)
func (r *LectureRepository) IncrementCounter(id uint, column string) error {
	return r.DB.Model(&model.Lecture{}).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + ?", 1)).
		Error
}

func (r *LectureRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Lecture{}).Count(&count).Error
	return count, err
}

func (r *LectureRepository) CountByCourse(courseID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Lecture{}).Where("course_id = ?", courseID).Count(&count).Error
	return count, err
}

// CountByCategory 按分类统计讲座数，供管理后台分析
func (r *LectureRepository) CountByCategory() (map[string]int64, error) {
	type row struct {
		Category string
		Count    int64
	}
	var rows []row
	err := r.DB.Model(&model.Lecture{}).
		Select("category, COUNT(*) AS count").
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Category] = r.Count
	}
	return out, nil
}
