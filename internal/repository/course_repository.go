package repository

import (
	"coursehub_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

func (r *CourseRepository) FindByID(id uint) (*model.Course, error) {
	var course model.Course
	err := r.DB.Preload("Videos", func(db *gorm.DB) *gorm.DB {
		return db.Order("course_videos.`order` ASC")
	}).First(&course, id).Error
	return &course, err
}

// CourseFilter VisibleTo 限定可见范围：已发布的，加上该讲师自己的未发布内容
type CourseFilter struct {
	Search     string
	Category   string
	Difficulty model.CourseDifficulty
	Status     model.ContentStatus
	Instructor uint
	VisibleTo  uint
}

func (r *CourseRepository) FindWithPagination(offset, limit int, f CourseFilter) ([]model.Course, int64, error) {
	var courses []model.Course
	var total int64

	query := r.DB.Model(&model.Course{})

	if f.Search != "" {
		query = query.Where("title LIKE ? OR description LIKE ?", "%"+f.Search+"%", "%"+f.Search+"%")
	}
	if f.Category != "" {
		query = query.Where("category = ?", f.Category)
	}
	if f.Difficulty != "" {
		query = query.Where("difficulty = ?", f.Difficulty)
	}
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if f.Instructor > 0 {
		query = query.Where("instructor_id = ?", f.Instructor)
	}
	if f.VisibleTo > 0 {
		query = query.Where("status = ? OR instructor_id = ?", model.StatusPublished, f.VisibleTo)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&courses).Error
	if err != nil {
		return nil, 0, err
	}

	return courses, total, nil
}

func (r *CourseRepository) Update(course *model.Course) error {
	return r.DB.Save(course).Error
}

// Delete 级联删除：课程下的讲座和视频子表在同一事务里一并清掉
func (r *CourseRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("course_id = ?", id).Delete(&model.Lecture{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("course_id = ?", id).Delete(&model.CourseVideo{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&model.Course{}, id).Error
	})
}

func (r *CourseRepository) IncrementEnrollment(id uint) error {
	return r.DB.Model(&model.Course{}).
		Where("id = ?", id).
		UpdateColumn("students_enrolled", gorm.Expr("students_enrolled + ?", 1)).
		Error
}

func (r *CourseRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Course{}).Count(&count).Error
	return count, err
}

func (r *CourseRepository) ReplaceVideos(courseID uint, videos []model.CourseVideo) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("course_id = ?", courseID).Delete(&model.CourseVideo{}).Error; err != nil {
			return err
		}
		if len(videos) == 0 {
			return nil
		}
		for i := range videos {
			videos[i].CourseID = courseID
		}
		return tx.Create(&videos).Error
	})
}
