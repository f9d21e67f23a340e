package service

import (
	"coursehub_backend/internal/model"
	"coursehub_backend/internal/repository"
	"time"
)

type AdminService struct {
	UserRepo    *repository.UserRepository
	CourseRepo  *repository.CourseRepository
	LectureRepo *repository.LectureRepository
	StoryRepo   *repository.SuccessStoryRepository
}

func NewAdminService(userRepo *repository.UserRepository, courseRepo *repository.CourseRepository, lectureRepo *repository.LectureRepository, storyRepo *repository.SuccessStoryRepository) *AdminService {
	return &AdminService{
		UserRepo:    userRepo,
		CourseRepo:  courseRepo,
		LectureRepo: lectureRepo,
		StoryRepo:   storyRepo,
	}
}

type DashboardStats struct {
	TotalUsers    int64        `json:"totalUsers"`
	Students      int64        `json:"students"`
	Teachers      int64        `json:"teachers"`
	Admins        int64        `json:"admins"`
	TotalCourses  int64        `json:"totalCourses"`
	TotalLectures int64        `json:"totalLectures"`
	TotalStories  int64        `json:"totalStories"`
	RecentSignups []model.User `json:"recentSignups"`
}

func (s *AdminService) Dashboard() (*DashboardStats, error) {
	stats := &DashboardStats{}
	var err error

	if stats.TotalUsers, err = s.UserRepo.Count(); err != nil {
		return nil, err
	}
	if stats.Students, err = s.UserRepo.CountByRole(model.Student); err != nil {
		return nil, err
	}
	if stats.Teachers, err = s.UserRepo.CountByRole(model.Teacher); err != nil {
		return nil, err
	}
	if stats.Admins, err = s.UserRepo.CountByRole(model.Admin); err != nil {
		return nil, err
	}
	if stats.TotalCourses, err = s.CourseRepo.Count(); err != nil {
		return nil, err
	}
	if stats.TotalLectures, err = s.LectureRepo.Count(); err != nil {
		return nil, err
	}
	if stats.TotalStories, err = s.StoryRepo.Count(); err != nil {
		return nil, err
	}
	if stats.RecentSignups, err = s.UserRepo.FindRecent(5); err != nil {
		return nil, err
	}

	return stats, nil
}

type Analytics struct {
	SignupsPerDay       map[string]int64 `json:"signupsPerDay"`
	LecturesPerCategory map[string]int64 `json:"lecturesPerCategory"`
	TopLectures         []model.Lecture  `json:"topLectures"`
}

// Analytics 汇总最近 N 天的注册曲线、分类分布和热门讲座
func (s *AdminService) Analytics(days int) (*Analytics, error) {
	if days <= 0 {
		days = 30
	}
	since := time.Now().AddDate(0, 0, -days)

	signups, err := s.UserRepo.CountSignupsSince(since)
	if err != nil {
		return nil, err
	}

	perCategory, err := s.LectureRepo.CountByCategory()
	if err != nil {
		return nil, err
	}

	top, err := s.LectureRepo.FindTopByViews(10, "")
	if err != nil {
		return nil, err
	}

	return &Analytics{
		SignupsPerDay:       signups,
		LecturesPerCategory: perCategory,
		TopLectures:         top,
	}, nil
}
