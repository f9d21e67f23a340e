package app

import (
	"bytes"
	"coursehub_backend/internal/config"
	"coursehub_backend/internal/model"
	"coursehub_backend/pkg/database"
	"coursehub_backend/pkg/logger"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type testApp struct {
	app      *App
	router   *gin.Engine
	services *services
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:     "router-test-secret",
			ExpireTime: time.Hour,
		},
		Storage: config.StorageConfig{
			Type:      "local",
			LocalPath: t.TempDir(),
		},
	}

	app := &App{Config: cfg, DB: db}
	repos := app.initRepositories(db)
	svcs := app.initServices(repos, cfg, nil)
	ctrls := app.initControllers(svcs, db)

	router := gin.New()
	app.Router = router
	app.registerRoutes(router, ctrls, repos, cfg)

	return &testApp{app: app, router: router, services: svcs}
}

type apiResponse struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (ta *testApp) do(t *testing.T, method, path, token string, body interface{}) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	ta.router.ServeHTTP(w, req)

	var resp apiResponse
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
	}
	return w, resp
}

func (ta *testApp) register(t *testing.T, name, email, role string) string {
	t.Helper()
	w, resp := ta.do(t, http.MethodPost, "/api/users/register", "", gin.H{
		"name":     name,
		"email":    email,
		"password": "password123",
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	require.NotEmpty(t, data.Token)
	return data.Token
}

func (ta *testApp) adminToken(t *testing.T) string {
	t.Helper()
	admin := &model.User{Name: "Root", Email: "root@example.com", Password: "adminpass123", Role: model.Admin}
	require.NoError(t, ta.services.auth.Register(admin))
	token, err := ta.services.auth.GenerateToken(admin)
	require.NoError(t, err)
	return token
}

func TestHealthEndpoint(t *testing.T) {
	ta := newTestApp(t)
	w, _ := ta.do(t, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegisterLoginFlow(t *testing.T) {
	ta := newTestApp(t)
	ta.register(t, "Ada", "ada@example.com", "teacher")

	// 邮箱查重
	w, _ := ta.do(t, http.MethodPost, "/api/users/register", "", gin.H{
		"name": "冒名者", "email": "ada@example.com", "password": "password123", "role": "student",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// 不能通过注册接口直接拿到管理员角色
	w, _ = ta.do(t, http.MethodPost, "/api/users/register", "", gin.H{
		"name": "黑客", "email": "hack@example.com", "password": "password123", "role": "admin",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, resp := ta.do(t, http.MethodPost, "/api/users/login", "", gin.H{
		"email": "ada@example.com", "password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var data struct {
		Token string     `json:"token"`
		User  model.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.NotEmpty(t, data.Token)
	assert.Equal(t, "ada@example.com", data.User.Email)

	w, _ = ta.do(t, http.MethodPost, "/api/users/login", "", gin.H{
		"email": "ada@example.com", "password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLectureUploadFlow(t *testing.T) {
	ta := newTestApp(t)
	teacherToken := ta.register(t, "Ada", "ada@example.com", "teacher")
	studentToken := ta.register(t, "Bob", "bob@example.com", "student")

	body := gin.H{
		"title":      "Go 并发入门",
		"youtubeUrl": "https://youtu.be/dQw4w9WgXcQ",
		"category":   "programming",
	}

	// 未登录 401
	w, _ := ta.do(t, http.MethodPost, "/api/lectures", "", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 学生 403
	w, _ = ta.do(t, http.MethodPost, "/api/lectures", studentToken, body)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// 教师 201，并派生出视频 id
	w, resp := ta.do(t, http.MethodPost, "/api/lectures", teacherToken, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var lecture model.Lecture
	require.NoError(t, json.Unmarshal(resp.Data, &lecture))
	assert.Equal(t, "dQw4w9WgXcQ", lecture.VideoID)
	assert.Equal(t, "Ada", lecture.InstructorName)

	// 坏链接 400
	w, _ = ta.do(t, http.MethodPost, "/api/lectures", teacherToken, gin.H{
		"title": "坏链接", "youtubeUrl": "https://vimeo.com/123", "category": "misc",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 游客能看到已发布的讲座
	w, resp = ta.do(t, http.MethodGet, "/api/lectures", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var page struct {
		List  []model.Lecture `json:"list"`
		Total int64           `json:"total"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &page))
	assert.Equal(t, int64(1), page.Total)
}

// 教师不带 status 的列表只能看到已发布的和自己的未发布内容，
// 看不到其他教师的草稿
func TestLectureListHidesOthersDrafts(t *testing.T) {
	ta := newTestApp(t)
	adaToken := ta.register(t, "Ada", "ada@example.com", "teacher")
	eveToken := ta.register(t, "Eve", "eve@example.com", "teacher")

	w, _ := ta.do(t, http.MethodPost, "/api/lectures", adaToken, gin.H{
		"title": "Ada 的草稿", "youtubeUrl": "https://youtu.be/dQw4w9WgXcQ",
		"category": "misc", "status": "draft",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, _ = ta.do(t, http.MethodPost, "/api/lectures", adaToken, gin.H{
		"title": "Ada 公开课", "youtubeUrl": "https://youtu.be/aBcDeFgHiJk",
		"category": "misc",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var page struct {
		List  []model.Lecture `json:"list"`
		Total int64           `json:"total"`
	}

	// Eve 不带 status 查询，只能看到公开课
	w, resp := ta.do(t, http.MethodGet, "/api/lectures", eveToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(resp.Data, &page))
	require.Equal(t, int64(1), page.Total)
	assert.Equal(t, "Ada 公开课", page.List[0].Title)

	// Ada 自己不带 status 查询，草稿和公开课都在
	w, resp = ta.do(t, http.MethodGet, "/api/lectures", adaToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(resp.Data, &page))
	assert.Equal(t, int64(2), page.Total)

	// 游客还是只有已发布的
	w, resp = ta.do(t, http.MethodGet, "/api/lectures", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(resp.Data, &page))
	assert.Equal(t, int64(1), page.Total)
}

func TestCourseListHidesOthersDrafts(t *testing.T) {
	ta := newTestApp(t)
	adaToken := ta.register(t, "Ada", "ada@example.com", "teacher")
	eveToken := ta.register(t, "Eve", "eve@example.com", "teacher")

	w, _ := ta.do(t, http.MethodPost, "/api/courses", adaToken, gin.H{
		"title": "Ada 的草稿课程", "category": "misc",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = ta.do(t, http.MethodPost, "/api/courses", eveToken, gin.H{
		"title": "Eve 的草稿课程", "category": "misc",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var page struct {
		List  []model.Course `json:"list"`
		Total int64          `json:"total"`
	}

	w, resp := ta.do(t, http.MethodGet, "/api/courses", eveToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(resp.Data, &page))
	require.Equal(t, int64(1), page.Total)
	assert.Equal(t, "Eve 的草稿课程", page.List[0].Title)
}

func TestCourseVisibility(t *testing.T) {
	ta := newTestApp(t)
	teacherToken := ta.register(t, "Ada", "ada@example.com", "teacher")

	w, _ := ta.do(t, http.MethodPost, "/api/courses", teacherToken, gin.H{
		"title": "草稿课程", "category": "programming",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, _ = ta.do(t, http.MethodPost, "/api/courses", teacherToken, gin.H{
		"title": "已发布课程", "category": "programming", "status": "published",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// 游客只能看到已发布的
	w, resp := ta.do(t, http.MethodGet, "/api/courses", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var page struct {
		List  []model.Course `json:"list"`
		Total int64          `json:"total"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &page))
	require.Equal(t, int64(1), page.Total)
	assert.Equal(t, "已发布课程", page.List[0].Title)

	// 教师查自己的草稿
	w, resp = ta.do(t, http.MethodGet, "/api/courses?status=draft", teacherToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(resp.Data, &page))
	require.Equal(t, int64(1), page.Total)
	assert.Equal(t, "草稿课程", page.List[0].Title)
}

func TestCourseEnrollEndpoint(t *testing.T) {
	ta := newTestApp(t)
	teacherToken := ta.register(t, "Ada", "ada@example.com", "teacher")
	studentToken := ta.register(t, "Bob", "bob@example.com", "student")

	w, resp := ta.do(t, http.MethodPost, "/api/courses", teacherToken, gin.H{
		"title": "报名课", "category": "misc", "status": "published",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var course model.Course
	require.NoError(t, json.Unmarshal(resp.Data, &course))

	// 教师不能报名
	w, _ = ta.do(t, http.MethodPost, "/api/courses/"+itoa(course.ID)+"/enroll", teacherToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, resp = ta.do(t, http.MethodPost, "/api/courses/"+itoa(course.ID)+"/enroll", studentToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(resp.Data, &course))
	assert.Equal(t, 1, course.StudentsEnrolled)
}

func TestAdminRoutesGated(t *testing.T) {
	ta := newTestApp(t)
	studentToken := ta.register(t, "Bob", "bob@example.com", "student")
	adminToken := ta.adminToken(t)

	w, _ := ta.do(t, http.MethodGet, "/api/admin/dashboard", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = ta.do(t, http.MethodGet, "/api/admin/dashboard", studentToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, resp := ta.do(t, http.MethodGet, "/api/admin/dashboard", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stats struct {
		TotalUsers int64 `json:"totalUsers"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &stats))
	assert.Equal(t, int64(2), stats.TotalUsers)

	w, _ = ta.do(t, http.MethodGet, "/api/admin/analytics?days=7", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCommunityAdminOnlyWrites(t *testing.T) {
	ta := newTestApp(t)
	studentToken := ta.register(t, "Bob", "bob@example.com", "student")
	adminToken := ta.adminToken(t)

	w, _ := ta.do(t, http.MethodPost, "/api/community", studentToken, gin.H{"status": "偷发公告"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = ta.do(t, http.MethodPost, "/api/community", adminToken, gin.H{"status": "周六答疑"})
	assert.Equal(t, http.StatusCreated, w.Code)

	// 公告对游客开放
	w, resp := ta.do(t, http.MethodGet, "/api/community", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []model.CommunityStatus
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "周六答疑", list[0].Status)
}

func TestSuccessStoriesPublicReads(t *testing.T) {
	ta := newTestApp(t)
	adminToken := ta.adminToken(t)

	w, _ := ta.do(t, http.MethodPost, "/api/success-stories", adminToken, gin.H{
		"name": "小王", "story": "转行成功", "featured": true,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, resp := ta.do(t, http.MethodGet, "/api/success-stories/featured", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []model.SuccessStory
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "小王", list[0].Name)
}

func TestProfileEndpoint(t *testing.T) {
	ta := newTestApp(t)
	token := ta.register(t, "Ada", "ada@example.com", "teacher")

	w, resp := ta.do(t, http.MethodGet, "/api/users/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var user model.User
	require.NoError(t, json.Unmarshal(resp.Data, &user))
	assert.Equal(t, "ada@example.com", user.Email)
	// 密码散列不外泄
	assert.NotContains(t, w.Body.String(), "password")
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
