package service

import (
	"coursehub_backend/internal/model"
	"coursehub_backend/internal/repository"
	"coursehub_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

func (s *UserService) GetByID(id uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	return user, err
}

func (s *UserService) List(page, limit int, search string, role model.UserRole) ([]model.User, int64, error) {
	offset := (page - 1) * limit
	return s.UserRepo.FindWithPagination(offset, limit, search, role)
}

func (s *UserService) ListTeachers() ([]model.User, error) {
	return s.UserRepo.FindByRole(model.Teacher)
}

// ProfileUpdate 资料更新字段白名单，防止批量赋值越权改角色或统计
type ProfileUpdate struct {
	Name        *string  `json:"name"`
	Bio         *string  `json:"bio"`
	Institution *string  `json:"institution"`
	Subject     *string  `json:"subject"`
	Experience  *string  `json:"experience"`
	Avatar      *string  `json:"avatar"`
	Badges      []string `json:"badges"`
}

func (s *UserService) UpdateProfile(id uint, upd ProfileUpdate) (*model.User, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		user.Name = *upd.Name
	}
	if upd.Bio != nil {
		user.Profile.Bio = *upd.Bio
	}
	if upd.Institution != nil {
		user.Profile.Institution = *upd.Institution
	}
	if upd.Subject != nil {
		user.Profile.Subject = *upd.Subject
	}
	if upd.Experience != nil {
		user.Profile.Experience = *upd.Experience
	}
	if upd.Avatar != nil {
		user.Profile.Avatar = *upd.Avatar
	}
	if upd.Badges != nil {
		user.Badges = model.JoinList(upd.Badges)
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) SetAvatar(id uint, url string) (*model.User, error) {
	return s.UpdateProfile(id, ProfileUpdate{Avatar: &url})
}

func (s *UserService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.UserRepo.Delete(id)
}
