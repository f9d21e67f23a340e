package controller

import (
	"coursehub_backend/internal/service"
	"coursehub_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	AdminService *service.AdminService
}

func NewAdminController(adminService *service.AdminService) *AdminController {
	return &AdminController{AdminService: adminService}
}

// Dashboard godoc
// @Summary 管理后台总览
// @Description 各角色用户数、课程/讲座/故事总数和最近注册
// @Tags 管理
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.DashboardStats}
// @Router /api/admin/dashboard [get]
func (c *AdminController) Dashboard(ctx *gin.Context) {
	stats, err := c.AdminService.Dashboard()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, stats)
}

// Analytics godoc
// @Summary 平台分析
// @Description 注册曲线、分类分布、热门讲座
// @Tags 管理
// @Produce  json
// @Security ApiKeyAuth
// @Param days query int false "统计天数" default(30)
// @Success 200 {object} util.Response{data=service.Analytics}
// @Router /api/admin/analytics [get]
func (c *AdminController) Analytics(ctx *gin.Context) {
	days, _ := strconv.Atoi(ctx.DefaultQuery("days", "30"))

	analytics, err := c.AdminService.Analytics(days)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, analytics)
}
