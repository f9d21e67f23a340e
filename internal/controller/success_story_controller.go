package controller

import (
	"coursehub_backend/internal/service"
	"coursehub_backend/internal/util"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

type SuccessStoryController struct {
	StoryService *service.SuccessStoryService
}

func NewSuccessStoryController(storyService *service.SuccessStoryService) *SuccessStoryController {
	return &SuccessStoryController{StoryService: storyService}
}

// List godoc
// @Summary 学员故事列表
// @Tags 学员故事
// @Produce  json
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(20)
// @Param search query string false "搜索词"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/success-stories [get]
func (c *SuccessStoryController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var featured *bool
	if v := ctx.Query("featured"); v != "" {
		b := v == "true"
		featured = &b
	}

	stories, total, err := c.StoryService.List(page, limit, ctx.Query("search"), featured)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.NewPageResponse(stories, total, page, limit))
}

// Featured godoc
// @Summary 精选学员故事
// @Tags 学员故事
// @Produce  json
// @Param limit query int false "数量" default(6)
// @Success 200 {object} util.Response{data=[]model.SuccessStory}
// @Router /api/success-stories/featured [get]
func (c *SuccessStoryController) Featured(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "6"))
	if limit < 1 || limit > 50 {
		limit = 6
	}

	stories, err := c.StoryService.Featured(limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, stories)
}

// Get godoc
// @Summary 学员故事详情
// @Tags 学员故事
// @Produce  json
// @Param id path int true "故事ID"
// @Success 200 {object} util.Response{data=model.SuccessStory}
// @Failure 404 {object} util.Response
// @Router /api/success-stories/{id} [get]
func (c *SuccessStoryController) Get(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	story, err := c.StoryService.Get(id)
	if errors.Is(err, util.ErrStoryNotFound) {
		util.NotFound(ctx)
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, story)
}

// Create godoc
// @Summary 发布学员故事
// @Tags 学员故事
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param body body service.StoryCreate true "故事内容"
// @Success 201 {object} util.Response{data=model.SuccessStory}
// @Failure 400 {object} util.Response
// @Router /api/success-stories [post]
func (c *SuccessStoryController) Create(ctx *gin.Context) {
	var req service.StoryCreate
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	story, err := c.StoryService.Create(req)
	if errors.Is(err, util.ErrInvalidRating) {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, story)
}

// Update godoc
// @Summary 更新学员故事
// @Tags 学员故事
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param id path int true "故事ID"
// @Param body body service.StoryUpdate true "更新字段"
// @Success 200 {object} util.Response{data=model.SuccessStory}
// @Failure 404 {object} util.Response
// @Router /api/success-stories/{id} [put]
func (c *SuccessStoryController) Update(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	var upd service.StoryUpdate
	if err := ctx.ShouldBindJSON(&upd); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	story, err := c.StoryService.Update(id, upd)
	switch {
	case errors.Is(err, util.ErrStoryNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrInvalidRating):
		util.BadRequest(ctx, err.Error())
	case err != nil:
		util.LogInternalError(ctx, err)
	default:
		util.Success(ctx, story)
	}
}

// Delete godoc
// @Summary 删除学员故事
// @Tags 学员故事
// @Produce  json
// @Security ApiKeyAuth
// @Param id path int true "故事ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/success-stories/{id} [delete]
func (c *SuccessStoryController) Delete(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	err := c.StoryService.Delete(id)
	if errors.Is(err, util.ErrStoryNotFound) {
		util.NotFound(ctx)
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": id})
}
