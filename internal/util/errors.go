package util

import "errors"

var (
	ErrUserNotFound      = errors.New("用户不存在")
	ErrEmailRegistered   = errors.New("该邮箱已被注册")
	ErrInvalidYouTubeURL = errors.New("invalid youtube url: no 11-character video id")
	ErrNotInstructor     = errors.New("instructor must have the teacher role")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrCourseNotFound    = errors.New("course not found")
	ErrLectureNotFound   = errors.New("lecture not found")
	ErrStoryNotFound     = errors.New("success story not found")
	ErrStatusNotFound    = errors.New("community status not found")
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
	ErrInvalidRole       = errors.New("invalid role")
)
