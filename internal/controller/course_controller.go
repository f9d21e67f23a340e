package controller

import (
	"coursehub_backend/internal/model"
	"coursehub_backend/internal/repository"
	"coursehub_backend/internal/service"
	"coursehub_backend/internal/util"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService *service.CourseService
}

func NewCourseController(courseService *service.CourseService) *CourseController {
	return &CourseController{CourseService: courseService}
}

// List godoc
// @Summary 课程目录
// @Description 分页浏览课程，游客和学生只看已发布的
// @Tags 课程
// @Produce  json
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(20)
// @Param search query string false "搜索词"
// @Param category query string false "分类"
// @Param difficulty query string false "难度" Enums(beginner, intermediate, advanced)
// @Param status query string false "状态(仅教师/管理员)"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/courses [get]
func (c *CourseController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	f := repository.CourseFilter{
		Search:     ctx.Query("search"),
		Category:   ctx.Query("category"),
		Difficulty: model.CourseDifficulty(ctx.Query("difficulty")),
	}

	// 草稿/归档只对教师(自己的)和管理员可见
	claims := util.GetUserFromContext(ctx)
	switch {
	case claims == nil || claims.Role == model.Student:
		f.Status = model.StatusPublished
	case claims.Role == model.Teacher:
		f.Status = model.ContentStatus(ctx.Query("status"))
		switch {
		case f.Status == "":
			// 不带 status 时：已发布的，加上自己的未发布内容
			f.VisibleTo = claims.UserID
		case f.Status != model.StatusPublished:
			f.Instructor = claims.UserID
		}
	default:
		f.Status = model.ContentStatus(ctx.Query("status"))
	}

	courses, total, err := c.CourseService.List(page, limit, f)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.NewPageResponse(courses, total, page, limit))
}

// Get godoc
// @Summary 课程详情
// @Description 返回课程及其全部讲座
// @Tags 课程
// @Produce  json
// @Param id path int true "课程ID"
// @Success 200 {object} util.Response{data=object}
// @Failure 404 {object} util.Response
// @Router /api/courses/{id} [get]
func (c *CourseController) Get(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	course, lectures, err := c.CourseService.GetWithLectures(id)
	if errors.Is(err, util.ErrCourseNotFound) {
		util.NotFound(ctx)
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"course": course, "lectures": lectures})
}

// Create godoc
// @Summary 创建课程
// @Tags 课程
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param body body service.CourseCreate true "课程信息"
// @Success 201 {object} util.Response{data=model.Course}
// @Failure 400 {object} util.Response
// @Router /api/courses [post]
func (c *CourseController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req service.CourseCreate
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.CourseService.Create(claims.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrNotInstructor), errors.Is(err, util.ErrInvalidYouTubeURL):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrUserNotFound):
			util.Unauthorized(ctx)
		default:
			util.BadRequest(ctx, err.Error())
		}
		return
	}

	util.Created(ctx, course)
}

// Update godoc
// @Summary 更新课程
// @Description 部分更新，只有讲师本人或管理员可改
// @Tags 课程
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param id path int true "课程ID"
// @Param body body service.CourseUpdate true "更新字段"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/courses/{id} [put]
func (c *CourseController) Update(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	id := util.MustParseUint(ctx.Param("id"))

	var upd service.CourseUpdate
	if err := ctx.ShouldBindJSON(&upd); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.CourseService.Update(id, claims, upd)
	switch {
	case errors.Is(err, util.ErrCourseNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	case errors.Is(err, util.ErrInvalidYouTubeURL):
		util.BadRequest(ctx, err.Error())
	case err != nil:
		util.BadRequest(ctx, err.Error())
	default:
		util.Success(ctx, course)
	}
}

// Delete godoc
// @Summary 删除课程
// @Description 级联删除其下全部讲座
// @Tags 课程
// @Produce  json
// @Security ApiKeyAuth
// @Param id path int true "课程ID"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/courses/{id} [delete]
func (c *CourseController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	id := util.MustParseUint(ctx.Param("id"))

	err := c.CourseService.Delete(id, claims)
	switch {
	case errors.Is(err, util.ErrCourseNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	case err != nil:
		util.LogInternalError(ctx, err)
	default:
		util.Success(ctx, gin.H{"deleted": id})
	}
}

// Enroll godoc
// @Summary 报名课程
// @Tags 课程
// @Produce  json
// @Security ApiKeyAuth
// @Param id path int true "课程ID"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 404 {object} util.Response
// @Router /api/courses/{id}/enroll [post]
func (c *CourseController) Enroll(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	id := util.MustParseUint(ctx.Param("id"))

	course, err := c.CourseService.Enroll(id, claims.UserID)
	if errors.Is(err, util.ErrCourseNotFound) {
		util.NotFound(ctx)
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, course)
}
