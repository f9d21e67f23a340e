package repository

import (
	"coursehub_backend/internal/model"

	"gorm.io/gorm"
)

type SuccessStoryRepository struct {
	DB *gorm.DB
}

func NewSuccessStoryRepository(db *gorm.DB) *SuccessStoryRepository {
	return &SuccessStoryRepository{DB: db}
}

func (r *SuccessStoryRepository) Create(story *model.SuccessStory) error {
	return r.DB.Create(story).Error
}

func (r *SuccessStoryRepository) FindByID(id uint) (*model.SuccessStory, error) {
	var story model.SuccessStory
	err := r.DB.First(&story, id).Error
	return &story, err
}

func (r *SuccessStoryRepository) FindWithPagination(offset, limit int, search string, featured *bool) ([]model.SuccessStory, int64, error) {
	var stories []model.SuccessStory
	var total int64

	query := r.DB.Model(&model.SuccessStory{})

	if search != "" {
		query = query.Where("name LIKE ? OR story LIKE ?", "%"+search+"%", "%"+search+"%")
	}
	if featured != nil {
		query = query.Where("featured = ?", *featured)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&stories).Error
	if err != nil {
		return nil, 0, err
	}

	return stories, total, nil
}

func (r *SuccessStoryRepository) FindFeatured(limit int) ([]model.SuccessStory, error) {
	var stories []model.SuccessStory
	err := r.DB.Where("featured = ?", true).Order("created_at DESC").Limit(limit).Find(&stories).Error
	return stories, err
}

func (r *SuccessStoryRepository) Update(story *model.SuccessStory) error {
	return r.DB.Save(story).Error
}

func (r *SuccessStoryRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&model.SuccessStory{}, id).Error
}

func (r *SuccessStoryRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.SuccessStory{}).Count(&count).Error
	return count, err
}
