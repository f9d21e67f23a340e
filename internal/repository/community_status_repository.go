package repository

import (
	"coursehub_backend/internal/model"

	"gorm.io/gorm"
)

type CommunityStatusRepository struct {
	DB *gorm.DB
}

func NewCommunityStatusRepository(db *gorm.DB) *CommunityStatusRepository {
	return &CommunityStatusRepository{DB: db}
}

func (r *CommunityStatusRepository) Create(status *model.CommunityStatus) error {
	return r.DB.Create(status).Error
}

func (r *CommunityStatusRepository) FindAll() ([]model.CommunityStatus, error) {
	var statuses []model.CommunityStatus
	err := r.DB.Preload("UpdatedBy").Order("updated_time DESC").Find(&statuses).Error
	return statuses, err
}

func (r *CommunityStatusRepository) FindByID(id uint) (*model.CommunityStatus, error) {
	var status model.CommunityStatus
	err := r.DB.Preload("UpdatedBy").First(&status, id).Error
	return &status, err
}

func (r *CommunityStatusRepository) Update(status *model.CommunityStatus) error {
	return r.DB.Save(status).Error
}

func (r *CommunityStatusRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&model.CommunityStatus{}, id).Error
}
