package service

import (
	"coursehub_backend/internal/model"
	"coursehub_backend/internal/repository"
	"coursehub_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

type SuccessStoryService struct {
	StoryRepo *repository.SuccessStoryRepository
}

func NewSuccessStoryService(storyRepo *repository.SuccessStoryRepository) *SuccessStoryService {
	return &SuccessStoryService{StoryRepo: storyRepo}
}

func (s *SuccessStoryService) List(page, limit int, search string, featured *bool) ([]model.SuccessStory, int64, error) {
	offset := (page - 1) * limit
	return s.StoryRepo.FindWithPagination(offset, limit, search, featured)
}

func (s *SuccessStoryService) Featured(limit int) ([]model.SuccessStory, error) {
	return s.StoryRepo.FindFeatured(limit)
}

func (s *SuccessStoryService) Get(id uint) (*model.SuccessStory, error) {
	story, err := s.StoryRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrStoryNotFound
	}
	return story, err
}

type StoryCreate struct {
	Name        string `json:"name" binding:"required"`
	Position    string `json:"position"`
	Story       string `json:"story" binding:"required"`
	CourseTitle string `json:"courseTitle"`
	Image       string `json:"image"`
	Featured    bool   `json:"featured"`
	Rating      int    `json:"rating"`
}

func (s *SuccessStoryService) Create(req StoryCreate) (*model.SuccessStory, error) {
	rating := req.Rating
	if rating == 0 {
		rating = 5
	}
	if rating < 1 || rating > 5 {
		return nil, util.ErrInvalidRating
	}

	story := &model.SuccessStory{
		Name:        req.Name,
		Position:    req.Position,
		Story:       req.Story,
		CourseTitle: req.CourseTitle,
		Image:       req.Image,
		Featured:    req.Featured,
		Rating:      rating,
	}

	if err := s.StoryRepo.Create(story); err != nil {
		return nil, err
	}
	return story, nil
}

type StoryUpdate struct {
	Name        *string `json:"name"`
	Position    *string `json:"position"`
	Story       *string `json:"story"`
	CourseTitle *string `json:"courseTitle"`
	Image       *string `json:"image"`
	Featured    *bool   `json:"featured"`
	Rating      *int    `json:"rating"`
}

func (s *SuccessStoryService) Update(id uint, upd StoryUpdate) (*model.SuccessStory, error) {
	story, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if upd.Rating != nil {
		if *upd.Rating < 1 || *upd.Rating > 5 {
			return nil, util.ErrInvalidRating
		}
		story.Rating = *upd.Rating
	}
	if upd.Name != nil {
		story.Name = *upd.Name
	}
	if upd.Position != nil {
		story.Position = *upd.Position
	}
	if upd.Story != nil {
		story.Story = *upd.Story
	}
	if upd.CourseTitle != nil {
		story.CourseTitle = *upd.CourseTitle
	}
	if upd.Image != nil {
		story.Image = *upd.Image
	}
	if upd.Featured != nil {
		story.Featured = *upd.Featured
	}

	if err := s.StoryRepo.Update(story); err != nil {
		return nil, err
	}
	return story, nil
}

func (s *SuccessStoryService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.StoryRepo.Delete(id)
}
