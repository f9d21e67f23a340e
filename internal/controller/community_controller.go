package controller

import (
	"coursehub_backend/internal/service"
	"coursehub_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type CommunityController struct {
	CommunityService *service.CommunityService
}

func NewCommunityController(communityService *service.CommunityService) *CommunityController {
	return &CommunityController{CommunityService: communityService}
}

// swagger:model StatusRequest
type StatusRequest struct {
	Status string `json:"status" binding:"required,max=500"`
}

// List godoc
// @Summary 社区公告列表
// @Tags 社区
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.CommunityStatus}
// @Router /api/community [get]
func (c *CommunityController) List(ctx *gin.Context) {
	statuses, err := c.CommunityService.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, statuses)
}

// Create godoc
// @Summary 发布社区公告
// @Description 仅管理员
// @Tags 社区
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param body body StatusRequest true "公告内容"
// @Success 201 {object} util.Response{data=model.CommunityStatus}
// @Failure 400 {object} util.Response
// @Router /api/community [post]
func (c *CommunityController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req StatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	status, err := c.CommunityService.Create(claims.UserID, req.Status)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, status)
}

// Update godoc
// @Summary 更新社区公告
// @Description 仅管理员
// @Tags 社区
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param id path int true "公告ID"
// @Param body body StatusRequest true "公告内容"
// @Success 200 {object} util.Response{data=model.CommunityStatus}
// @Failure 404 {object} util.Response
// @Router /api/community/{id} [put]
func (c *CommunityController) Update(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	id := util.MustParseUint(ctx.Param("id"))

	var req StatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	status, err := c.CommunityService.Update(id, claims.UserID, req.Status)
	if errors.Is(err, util.ErrStatusNotFound) {
		util.NotFound(ctx)
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, status)
}

// Delete godoc
// @Summary 删除社区公告
// @Description 仅管理员
// @Tags 社区
// @Produce  json
// @Security ApiKeyAuth
// @Param id path int true "公告ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/community/{id} [delete]
func (c *CommunityController) Delete(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	err := c.CommunityService.Delete(id)
	if errors.Is(err, util.ErrStatusNotFound) {
		util.NotFound(ctx)
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": id})
}
