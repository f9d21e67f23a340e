package service

import (
	"coursehub_backend/internal/model"
	"coursehub_backend/internal/repository"
	"coursehub_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

type CourseService struct {
	CourseRepo  *repository.CourseRepository
	LectureRepo *repository.LectureRepository
	UserRepo    *repository.UserRepository
}

func NewCourseService(courseRepo *repository.CourseRepository, lectureRepo *repository.LectureRepository, userRepo *repository.UserRepository) *CourseService {
	return &CourseService{
		CourseRepo:  courseRepo,
		LectureRepo: lectureRepo,
		UserRepo:    userRepo,
	}
}

func (s *CourseService) List(page, limit int, f repository.CourseFilter) ([]model.Course, int64, error) {
	offset := (page - 1) * limit
	return s.CourseRepo.FindWithPagination(offset, limit, f)
}

// GetWithLectures 课程详情带其下全部讲座
func (s *CourseService) GetWithLectures(id uint) (*model.Course, []model.Lecture, error) {
	course, err := s.CourseRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, util.ErrCourseNotFound
	}
	if err != nil {
		return nil, nil, err
	}

	lectures, err := s.LectureRepo.FindByCourse(id)
	if err != nil {
		return nil, nil, err
	}
	return course, lectures, nil
}

// CourseVideoInput 内嵌视频，创建/更新时逐条校验链接
type CourseVideoInput struct {
	Title      string `json:"title" binding:"required"`
	YoutubeURL string `json:"youtubeUrl" binding:"required"`
	Duration   string `json:"duration"`
}

type CourseCreate struct {
	Title       string             `json:"title" binding:"required"`
	Description string             `json:"description"`
	Category    string             `json:"category" binding:"required"`
	Difficulty  string             `json:"difficulty"`
	Duration    string             `json:"duration"`
	Price       float64            `json:"price"`
	Tags        []string           `json:"tags"`
	Status      string             `json:"status"`
	Thumbnail   string             `json:"thumbnail"`
	Videos      []CourseVideoInput `json:"videos"`
}

func (s *CourseService) Create(instructorID uint, req CourseCreate) (*model.Course, error) {
	instructor, err := s.UserRepo.FindByID(instructorID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}
	if instructor.Role != model.Teacher && instructor.Role != model.Admin {
		return nil, util.ErrNotInstructor
	}

	difficulty := model.CourseDifficulty(req.Difficulty)
	if req.Difficulty == "" {
		difficulty = model.Beginner
	} else if !difficulty.Valid() {
		return nil, errors.New("invalid difficulty")
	}

	status := model.ContentStatus(req.Status)
	if req.Status == "" {
		status = model.StatusDraft
	} else if !status.Valid() {
		return nil, errors.New("invalid status")
	}

	videos := make([]model.CourseVideo, 0, len(req.Videos))
	for i, v := range req.Videos {
		videoID, err := util.ExtractVideoID(v.YoutubeURL)
		if err != nil {
			return nil, err
		}
		videos = append(videos, model.CourseVideo{
			Title:      v.Title,
			YoutubeURL: v.YoutubeURL,
			VideoID:    videoID,
			Duration:   v.Duration,
			Order:      i,
		})
	}

	course := &model.Course{
		Title:          req.Title,
		Description:    req.Description,
		Category:       req.Category,
		Difficulty:     difficulty,
		Duration:       req.Duration,
		InstructorID:   instructor.ID,
		InstructorName: instructor.Name,
		InstructorBio:  instructor.Profile.Bio,
		Price:          req.Price,
		Tags:           model.JoinList(req.Tags),
		Lessons:        len(videos),
		Status:         status,
		Thumbnail:      req.Thumbnail,
		Videos:         videos,
	}

	if err := s.CourseRepo.Create(course); err != nil {
		return nil, err
	}

	if err := s.UserRepo.IncrementStat(instructor.ID, "stats_courses_created", 1); err != nil {
		return nil, err
	}

	return course, nil
}

type CourseUpdate struct {
	Title       *string             `json:"title"`
	Description *string             `json:"description"`
	Category    *string             `json:"category"`
	Difficulty  *string             `json:"difficulty"`
	Duration    *string             `json:"duration"`
	Price       *float64            `json:"price"`
	Tags        []string            `json:"tags"`
	Status      *string             `json:"status"`
	Thumbnail   *string             `json:"thumbnail"`
	Videos      *[]CourseVideoInput `json:"videos"`
}

// Update 部分更新，只有讲师本人或管理员可改
func (s *CourseService) Update(id uint, actor *util.Claims, upd CourseUpdate) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCourseNotFound
	}
	if err != nil {
		return nil, err
	}

	if actor.Role != model.Admin && course.InstructorID != actor.UserID {
		return nil, util.ErrPermissionDenied
	}

	if upd.Title != nil {
		course.Title = *upd.Title
	}
	if upd.Description != nil {
		course.Description = *upd.Description
	}
	if upd.Category != nil {
		course.Category = *upd.Category
	}
	if upd.Difficulty != nil {
		d := model.CourseDifficulty(*upd.Difficulty)
		if !d.Valid() {
			return nil, errors.New("invalid difficulty")
		}
		course.Difficulty = d
	}
	if upd.Duration != nil {
		course.Duration = *upd.Duration
	}
	if upd.Price != nil {
		course.Price = *upd.Price
	}
	if upd.Tags != nil {
		course.Tags = model.JoinList(upd.Tags)
	}
	if upd.Status != nil {
		st := model.ContentStatus(*upd.Status)
		if !st.Valid() {
			return nil, errors.New("invalid status")
		}
		course.Status = st
	}
	if upd.Thumbnail != nil {
		course.Thumbnail = *upd.Thumbnail
	}

	if upd.Videos != nil {
		videos := make([]model.CourseVideo, 0, len(*upd.Videos))
		for i, v := range *upd.Videos {
			videoID, err := util.ExtractVideoID(v.YoutubeURL)
			if err != nil {
				return nil, err
			}
			videos = append(videos, model.CourseVideo{
				Title:      v.Title,
				YoutubeURL: v.YoutubeURL,
				VideoID:    videoID,
				Duration:   v.Duration,
				Order:      i,
			})
		}
		if err := s.CourseRepo.ReplaceVideos(course.ID, videos); err != nil {
			return nil, err
		}
		course.Videos = videos
		course.Lessons = len(videos)
	}

	// Save 会把 Videos 一并写回，子表已在 ReplaceVideos 里处理过
	courseCopy := *course
	courseCopy.Videos = nil
	if err := s.CourseRepo.Update(&courseCopy); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) Delete(id uint, actor *util.Claims) error {
	course, err := s.CourseRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrCourseNotFound
	}
	if err != nil {
		return err
	}

	if actor.Role != model.Admin && course.InstructorID != actor.UserID {
		return util.ErrPermissionDenied
	}

	return s.CourseRepo.Delete(id)
}

// Enroll 报名：课程计数、学生计数、讲师计数各自原子自增
func (s *CourseService) Enroll(courseID, studentID uint) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCourseNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := s.CourseRepo.IncrementEnrollment(courseID); err != nil {
		return nil, err
	}
	if err := s.UserRepo.IncrementStat(studentID, "stats_courses_enrolled", 1); err != nil {
		return nil, err
	}
	if course.InstructorID > 0 {
		if err := s.UserRepo.IncrementStat(course.InstructorID, "stats_students_enrolled", 1); err != nil {
			return nil, err
		}
	}

	course.StudentsEnrolled++
	return course, nil
}
