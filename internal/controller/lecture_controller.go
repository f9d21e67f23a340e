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

type LectureController struct {
	LectureService *service.LectureService
}

func NewLectureController(lectureService *service.LectureService) *LectureController {
	return &LectureController{LectureService: lectureService}
}

// List godoc
// @Summary 讲座列表
// @Description 分页浏览讲座，支持分类/讲师筛选和标题/描述搜索
// @Tags 讲座
// @Produce  json
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(20)
// @Param search query string false "搜索词"
// @Param category query string false "分类"
// @Param instructor query int false "讲师ID"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/lectures [get]
func (c *LectureController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	f := repository.LectureFilter{
		Search:     ctx.Query("search"),
		Category:   ctx.Query("category"),
		Instructor: util.MustParseUint(ctx.Query("instructor")),
	}

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

	lectures, total, err := c.LectureService.List(page, limit, f)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.NewPageResponse(lectures, total, page, limit))
}

// Get godoc
// @Summary 讲座详情
// @Description 返回讲座并累加一次观看数
// @Tags 讲座
// @Produce  json
// @Param id path int true "讲座ID"
// @Success 200 {object} util.Response{data=model.Lecture}
// @Failure 404 {object} util.Response
// @Router /api/lectures/{id} [get]
func (c *LectureController) Get(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	lecture, err := c.LectureService.Get(id)
	if errors.Is(err, util.ErrLectureNotFound) {
		util.NotFound(ctx)
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, lecture)
}

// Create godoc
// @Summary 上传讲座
// @Description 校验 YouTube 链接并派生视频 id 和封面图
// @Tags 讲座
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param body body service.LectureCreate true "讲座信息"
// @Success 201 {object} util.Response{data=model.Lecture}
// @Failure 400 {object} util.Response
// @Router /api/lectures [post]
func (c *LectureController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req service.LectureCreate
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lecture, err := c.LectureService.Create(claims.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUserNotFound):
			util.Unauthorized(ctx)
		default:
			util.BadRequest(ctx, err.Error())
		}
		return
	}

	util.Created(ctx, lecture)
}

// Update godoc
// @Summary 更新讲座
// @Description 部分更新；提交了新链接才重新校验
// @Tags 讲座
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param id path int true "讲座ID"
// @Param body body service.LectureUpdate true "更新字段"
// @Success 200 {object} util.Response{data=model.Lecture}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/lectures/{id} [put]
func (c *LectureController) Update(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	id := util.MustParseUint(ctx.Param("id"))

	var upd service.LectureUpdate
	if err := ctx.ShouldBindJSON(&upd); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lecture, err := c.LectureService.Update(id, claims, upd)
	switch {
	case errors.Is(err, util.ErrLectureNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	case err != nil:
		util.BadRequest(ctx, err.Error())
	default:
		util.Success(ctx, lecture)
	}
}

// Delete godoc
// @Summary 删除讲座
// @Tags 讲座
// @Produce  json
// @Security ApiKeyAuth
// @Param id path int true "讲座ID"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/lectures/{id} [delete]
func (c *LectureController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	id := util.MustParseUint(ctx.Param("id"))

	err := c.LectureService.Delete(id, claims)
	switch {
	case errors.Is(err, util.ErrLectureNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	case err != nil:
		util.LogInternalError(ctx, err)
	default:
		util.Success(ctx, gin.H{"deleted": id})
	}
}

// Like godoc
// @Summary 点赞讲座
// @Tags 讲座
// @Produce  json
// @Security ApiKeyAuth
// @Param id path int true "讲座ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/lectures/{id}/like [post]
func (c *LectureController) Like(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	err := c.LectureService.Like(id)
	if errors.Is(err, util.ErrLectureNotFound) {
		util.NotFound(ctx)
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"liked": id})
}

// Enroll godoc
// @Summary 报名讲座
// @Tags 讲座
// @Produce  json
// @Security ApiKeyAuth
// @Param id path int true "讲座ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/lectures/{id}/enroll [post]
func (c *LectureController) Enroll(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	id := util.MustParseUint(ctx.Param("id"))

	err := c.LectureService.Enroll(id, claims.UserID)
	if errors.Is(err, util.ErrLectureNotFound) {
		util.NotFound(ctx)
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"enrolled": id})
}

// Popular godoc
// @Summary 热门讲座
// @Description 按观看数排序，结果短暂缓存
// @Tags 讲座
// @Produce  json
// @Param limit query int false "数量" default(10)
// @Success 200 {object} util.Response{data=[]model.Lecture}
// @Router /api/lectures/popular/top [get]
func (c *LectureController) Popular(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	if limit < 1 || limit > 50 {
		limit = 10
	}

	lectures, err := c.LectureService.Popular(ctx.Request.Context(), limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, lectures)
}

// ByCategory godoc
// @Summary 按分类浏览讲座
// @Tags 讲座
// @Produce  json
// @Param category path string true "分类"
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(20)
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/lectures/category/{category} [get]
func (c *LectureController) ByCategory(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	lectures, total, err := c.LectureService.ByCategory(ctx.Param("category"), page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.NewPageResponse(lectures, total, page, limit))
}
