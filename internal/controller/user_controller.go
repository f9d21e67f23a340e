package controller

import (
	"coursehub_backend/internal/model"
	"coursehub_backend/internal/service"
	"coursehub_backend/internal/util"
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService    *service.UserService
	StorageService *service.StorageService
}

func NewUserController(userService *service.UserService, storageService *service.StorageService) *UserController {
	return &UserController{
		UserService:    userService,
		StorageService: storageService,
	}
}

// List godoc
// @Summary 用户列表
// @Description 管理员分页查询用户，支持姓名/邮箱搜索和角色筛选
// @Tags 用户
// @Produce  json
// @Security ApiKeyAuth
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(20)
// @Param search query string false "搜索词"
// @Param role query string false "角色" Enums(student, teacher, admin)
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/users [get]
func (c *UserController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	search := ctx.Query("search")
	role := model.UserRole(ctx.Query("role"))
	if role != "" && !role.Valid() {
		util.BadRequest(ctx, util.ErrInvalidRole.Error())
		return
	}

	users, total, err := c.UserService.List(page, limit, search, role)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.NewPageResponse(users, total, page, limit))
}

// Get godoc
// @Summary 用户详情
// @Tags 用户
// @Produce  json
// @Security ApiKeyAuth
// @Param id path int true "用户ID"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 404 {object} util.Response
// @Router /api/users/{id} [get]
func (c *UserController) Get(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	user, err := c.UserService.GetByID(id)
	if errors.Is(err, util.ErrUserNotFound) {
		util.NotFound(ctx)
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, user)
}

// Update godoc
// @Summary 更新用户资料
// @Description 本人或管理员可改，字段白名单限定
// @Tags 用户
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param id path int true "用户ID"
// @Param body body service.ProfileUpdate true "资料字段"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 403 {object} util.Response
// @Router /api/users/{id} [put]
func (c *UserController) Update(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	id := util.MustParseUint(ctx.Param("id"))

	if claims.Role != model.Admin && claims.UserID != id {
		util.Forbidden(ctx)
		return
	}

	var upd service.ProfileUpdate
	if err := ctx.ShouldBindJSON(&upd); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.UpdateProfile(id, upd)
	if errors.Is(err, util.ErrUserNotFound) {
		util.NotFound(ctx)
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, user)
}

// Delete godoc
// @Summary 删除用户
// @Description 管理员硬删除，不级联
// @Tags 用户
// @Produce  json
// @Security ApiKeyAuth
// @Param id path int true "用户ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/users/{id} [delete]
func (c *UserController) Delete(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	err := c.UserService.Delete(id)
	if errors.Is(err, util.ErrUserNotFound) {
		util.NotFound(ctx)
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": id})
}

// ListTeachers godoc
// @Summary 教师名录
// @Tags 用户
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.User}
// @Router /api/users/role/teachers [get]
func (c *UserController) ListTeachers(ctx *gin.Context) {
	teachers, err := c.UserService.ListTeachers()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, teachers)
}

// UploadAvatar godoc
// @Summary 上传头像
// @Tags 用户
// @Accept  multipart/form-data
// @Produce  json
// @Security ApiKeyAuth
// @Param avatar formData file true "图片文件"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 400 {object} util.Response
// @Router /api/users/avatar [post]
func (c *UserController) UploadAvatar(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	file, header, err := ctx.Request.FormFile("avatar")
	if err != nil {
		util.BadRequest(ctx, "avatar file is required")
		return
	}
	defer file.Close()

	if header.Size > util.MaxImageSize {
		util.BadRequest(ctx, "image too large")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, util.MimeImage) {
		util.BadRequest(ctx, "only image uploads are allowed")
		return
	}

	filename, ok := service.UniqueImageName("avatars", header.Filename)
	if !ok {
		util.BadRequest(ctx, "unsupported image extension")
		return
	}

	url, err := c.StorageService.Upload(ctx.Request.Context(), filename, file, header.Size, contentType)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	user, err := c.UserService.SetAvatar(claims.UserID, url)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, user)
}
