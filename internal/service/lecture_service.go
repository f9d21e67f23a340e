package service

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"coursehub_backend/internal/model"
	"coursehub_backend/internal/repository"
	"coursehub_backend/internal/util"
	"coursehub_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	popularLecturesKey = "lectures:popular:"
	popularCacheTTL    = 5 * time.Minute
)

type LectureService struct {
	LectureRepo *repository.LectureRepository
	UserRepo    *repository.UserRepository
	Redis       *redis.Client
}

func NewLectureService(lectureRepo *repository.LectureRepository, userRepo *repository.UserRepository, rdb *redis.Client) *LectureService {
	return &LectureService{
		LectureRepo: lectureRepo,
		UserRepo:    userRepo,
		Redis:       rdb,
	}
}

func (s *LectureService) List(page, limit int, f repository.LectureFilter) ([]model.Lecture, int64, error) {
	offset := (page - 1) * limit
	return s.LectureRepo.FindWithPagination(offset, limit, f)
}

// Get 讲座详情，每次读取视为一次观看
func (s *LectureService) Get(id uint) (*model.Lecture, error) {
	lecture, err := s.LectureRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrLectureNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := s.LectureRepo.IncrementCounter(id, "stats_views"); err != nil {
		logger.Log.Warn("view counter increment failed", zap.Uint("lecture", id), zap.Error(err))
	} else {
		lecture.Stats.Views++
	}

	return lecture, nil
}

type LectureCreate struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	YoutubeURL  string   `json:"youtubeUrl" binding:"required"`
	Thumbnail   string   `json:"thumbnail"`
	Category    string   `json:"category" binding:"required"`
	Tags        []string `json:"tags"`
	Level       string   `json:"level"`
	Duration    string   `json:"duration"`
	CourseID    *uint    `json:"courseId"`
	Status      string   `json:"status"`
}

func (s *LectureService) Create(instructorID uint, req LectureCreate) (*model.Lecture, error) {
	instructor, err := s.UserRepo.FindByID(instructorID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}
	if instructor.Role != model.Teacher && instructor.Role != model.Admin {
		return nil, util.ErrNotInstructor
	}

	videoID, err := util.ExtractVideoID(req.YoutubeURL)
	if err != nil {
		return nil, err
	}

	thumbnail := req.Thumbnail
	if thumbnail == "" {
		thumbnail = util.ThumbnailURL(videoID)
	}

	level := req.Level
	if level == "" {
		level = string(model.Beginner)
	}

	status := model.ContentStatus(req.Status)
	if req.Status == "" {
		status = model.StatusPublished
	} else if !status.Valid() {
		return nil, errors.New("invalid status")
	}

	lecture := &model.Lecture{
		Title:          req.Title,
		Description:    req.Description,
		YoutubeURL:     req.YoutubeURL,
		VideoID:        videoID,
		Thumbnail:      thumbnail,
		Category:       req.Category,
		Tags:           model.JoinList(req.Tags),
		Level:          level,
		Duration:       req.Duration,
		InstructorID:   instructor.ID,
		InstructorName: instructor.Name,
		CourseID:       req.CourseID,
		Status:         status,
		UploadDate:     time.Now(),
	}

	if err := s.LectureRepo.Create(lecture); err != nil {
		return nil, err
	}

	s.invalidatePopularCache()
	return lecture, nil
}

type LectureUpdate struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	YoutubeURL  *string  `json:"youtubeUrl"`
	Thumbnail   *string  `json:"thumbnail"`
	Category    *string  `json:"category"`
	Tags        []string `json:"tags"`
	Level       *string  `json:"level"`
	Duration    *string  `json:"duration"`
	CourseID    *uint    `json:"courseId"`
	Status      *string  `json:"status"`
}

// Update 部分更新；只有提交了新链接才重新校验
func (s *LectureService) Update(id uint, actor *util.Claims, upd LectureUpdate) (*model.Lecture, error) {
	lecture, err := s.LectureRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrLectureNotFound
	}
	if err != nil {
		return nil, err
	}

	if actor.Role != model.Admin && lecture.InstructorID != actor.UserID {
		return nil, util.ErrPermissionDenied
	}

	if upd.YoutubeURL != nil {
		videoID, err := util.ExtractVideoID(*upd.YoutubeURL)
		if err != nil {
			return nil, err
		}
		lecture.YoutubeURL = *upd.YoutubeURL
		lecture.VideoID = videoID
		if upd.Thumbnail == nil {
			lecture.Thumbnail = util.ThumbnailURL(videoID)
		}
	}
	if upd.Title != nil {
		lecture.Title = *upd.Title
	}
	if upd.Description != nil {
		lecture.Description = *upd.Description
	}
	if upd.Thumbnail != nil {
		lecture.Thumbnail = *upd.Thumbnail
	}
	if upd.Category != nil {
		lecture.Category = *upd.Category
	}
	if upd.Tags != nil {
		lecture.Tags = model.JoinList(upd.Tags)
	}
	if upd.Level != nil {
		lecture.Level = *upd.Level
	}
	if upd.Duration != nil {
		lecture.Duration = *upd.Duration
	}
	if upd.CourseID != nil {
		lecture.CourseID = upd.CourseID
	}
	if upd.Status != nil {
		st := model.ContentStatus(*upd.Status)
		if !st.Valid() {
			return nil, errors.New("invalid status")
		}
		lecture.Status = st
	}

	if err := s.LectureRepo.Update(lecture); err != nil {
		return nil, err
	}

	s.invalidatePopularCache()
	return lecture, nil
}

func (s *LectureService) Delete(id uint, actor *util.Claims) error {
	lecture, err := s.LectureRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrLectureNotFound
	}
	if err != nil {
		return err
	}

	if actor.Role != model.Admin && lecture.InstructorID != actor.UserID {
		return util.ErrPermissionDenied
	}

	if err := s.LectureRepo.Delete(id); err != nil {
		return err
	}

	s.invalidatePopularCache()
	return nil
}

func (s *LectureService) Like(id uint) error {
	if _, err := s.LectureRepo.FindByID(id); errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrLectureNotFound
	} else if err != nil {
		return err
	}
	return s.LectureRepo.IncrementCounter(id, "stats_likes")
}

func (s *LectureService) Enroll(id, studentID uint) error {
	if _, err := s.LectureRepo.FindByID(id); errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrLectureNotFound
	} else if err != nil {
		return err
	}
	if err := s.LectureRepo.IncrementCounter(id, "stats_enrollments"); err != nil {
		return err
	}
	return s.UserRepo.IncrementStat(studentID, "stats_courses_enrolled", 1)
}

// Popular 按观看数取热门讲座，结果在 Redis 里缓存几分钟。
// 没配 Redis 时直接落库。
func (s *LectureService) Popular(ctx context.Context, limit int) ([]model.Lecture, error) {
	key := popularLecturesKey + strconv.Itoa(limit)
	if s.Redis != nil {
		if val, err := s.Redis.Get(ctx, key).Result(); err == nil {
			var lectures []model.Lecture
			if json.Unmarshal([]byte(val), &lectures) == nil {
				return lectures, nil
			}
		}
	}

	lectures, err := s.LectureRepo.FindTopByViews(limit, model.StatusPublished)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if data, err := json.Marshal(lectures); err == nil {
			if err := s.Redis.Set(ctx, key, data, popularCacheTTL).Err(); err != nil {
				logger.Log.Warn("popular cache write failed", zap.Error(err))
			}
		}
	}

	return lectures, nil
}

func (s *LectureService) ByCategory(category string, page, limit int) ([]model.Lecture, int64, error) {
	return s.List(page, limit, repository.LectureFilter{
		Category: category,
		Status:   model.StatusPublished,
	})
}

func (s *LectureService) invalidatePopularCache() {
	if s.Redis == nil {
		return
	}
	ctx := context.Background()
	iter := s.Redis.Scan(ctx, 0, popularLecturesKey+"*", 0).Iterator()
	for iter.Next(ctx) {
		s.Redis.Del(ctx, iter.Val())
	}
}
