package service

import (
	"coursehub_backend/internal/model"
	"coursehub_backend/internal/repository"
	"coursehub_backend/internal/util"
	"errors"
	"time"

	"gorm.io/gorm"
)

type CommunityService struct {
	StatusRepo *repository.CommunityStatusRepository
}

func NewCommunityService(statusRepo *repository.CommunityStatusRepository) *CommunityService {
	return &CommunityService{StatusRepo: statusRepo}
}

func (s *CommunityService) List() ([]model.CommunityStatus, error) {
	return s.StatusRepo.FindAll()
}

func (s *CommunityService) Create(adminID uint, text string) (*model.CommunityStatus, error) {
	status := &model.CommunityStatus{
		Status:      text,
		UpdatedByID: adminID,
		UpdatedTime: time.Now(),
	}
	if err := s.StatusRepo.Create(status); err != nil {
		return nil, err
	}
	return status, nil
}

func (s *CommunityService) Update(id, adminID uint, text string) (*model.CommunityStatus, error) {
	status, err := s.StatusRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrStatusNotFound
	}
	if err != nil {
		return nil, err
	}

	status.Status = text
	status.UpdatedByID = adminID
	status.UpdatedBy = nil
	status.UpdatedTime = time.Now()

	if err := s.StatusRepo.Update(status); err != nil {
		return nil, err
	}
	return status, nil
}

func (s *CommunityService) Delete(id uint) error {
	if _, err := s.StatusRepo.FindByID(id); errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrStatusNotFound
	} else if err != nil {
		return err
	}
	return s.StatusRepo.Delete(id)
}
