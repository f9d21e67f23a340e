package service

import (
	"context"
	"coursehub_backend/internal/model"
	"coursehub_backend/internal/repository"
	"coursehub_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newLectureFixture(t *testing.T) (*AuthService, *LectureService) {
	t.Helper()
	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	auth := NewAuthService(userRepo, testJWTConfig())
	lectures := NewLectureService(repository.NewLectureRepository(db), userRepo, nil)
	return auth, lectures
}

func TestLectureCreateDerivesVideoFields(t *testing.T) {
	auth, lectures := newLectureFixture(t)
	teacher := registerUser(t, auth, "Ada", "ada@example.com", model.Teacher)

	lecture, err := lectures.Create(teacher.ID, LectureCreate{
		Title:      "并发入门",
		YoutubeURL: "https://youtu.be/dQw4w9WgXcQ",
		Category:   "programming",
		Tags:       []string{"go", "concurrency"},
	})
	require.NoError(t, err)

	assert.Equal(t, "dQw4w9WgXcQ", lecture.VideoID)
	assert.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/hqdefault.jpg", lecture.Thumbnail)
	assert.Equal(t, teacher.ID, lecture.InstructorID)
	assert.Equal(t, "Ada", lecture.InstructorName)
	assert.Equal(t, model.StatusPublished, lecture.Status)
	assert.Nil(t, lecture.CourseID)
	assert.False(t, lecture.UploadDate.IsZero())
}

func TestLectureCreateKeepsProvidedThumbnail(t *testing.T) {
	auth, lectures := newLectureFixture(t)
	teacher := registerUser(t, auth, "Ada", "ada@example.com", model.Teacher)

	lecture, err := lectures.Create(teacher.ID, LectureCreate{
		Title:      "自定义封面",
		YoutubeURL: "https://youtu.be/dQw4w9WgXcQ",
		Thumbnail:  "https://cdn.example.com/custom.jpg",
		Category:   "misc",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/custom.jpg", lecture.Thumbnail)
}

func TestLectureCreateRejectsBadURL(t *testing.T) {
	auth, lectures := newLectureFixture(t)
	teacher := registerUser(t, auth, "Ada", "ada@example.com", model.Teacher)

	_, err := lectures.Create(teacher.ID, LectureCreate{
		Title:      "坏链接",
		YoutubeURL: "https://example.com/not-youtube",
		Category:   "misc",
	})
	assert.ErrorIs(t, err, util.ErrInvalidYouTubeURL)
}

func TestLectureCreateRejectsStudent(t *testing.T) {
	auth, lectures := newLectureFixture(t)
	student := registerUser(t, auth, "Bob", "bob@example.com", model.Student)

	_, err := lectures.Create(student.ID, LectureCreate{
		Title:      "偷跑",
		YoutubeURL: "https://youtu.be/dQw4w9WgXcQ",
		Category:   "misc",
	})
	assert.ErrorIs(t, err, util.ErrNotInstructor)
}

func TestLectureGetCountsView(t *testing.T) {
	auth, lectures := newLectureFixture(t)
	teacher := registerUser(t, auth, "Ada", "ada@example.com", model.Teacher)

	created, err := lectures.Create(teacher.ID, LectureCreate{
		Title:      "观看计数",
		YoutubeURL: "https://youtu.be/dQw4w9WgXcQ",
		Category:   "misc",
	})
	require.NoError(t, err)

	first, err := lectures.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Stats.Views)

	second, err := lectures.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, second.Stats.Views)
}

func TestLectureUpdatePartial(t *testing.T) {
	auth, lectures := newLectureFixture(t)
	teacher := registerUser(t, auth, "Ada", "ada@example.com", model.Teacher)

	created, err := lectures.Create(teacher.ID, LectureCreate{
		Title:      "旧标题",
		YoutubeURL: "https://youtu.be/dQw4w9WgXcQ",
		Category:   "misc",
	})
	require.NoError(t, err)

	// 不带新链接的更新不碰视频字段
	newTitle := "新标题"
	updated, err := lectures.Update(created.ID, claimsFor(teacher), LectureUpdate{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "新标题", updated.Title)
	assert.Equal(t, "dQw4w9WgXcQ", updated.VideoID)

	// 换链接时重新派生 id 和封面
	newURL := "https://www.youtube.com/watch?v=aBcDeFgHiJk"
	updated, err = lectures.Update(created.ID, claimsFor(teacher), LectureUpdate{YoutubeURL: &newURL})
	require.NoError(t, err)
	assert.Equal(t, "aBcDeFgHiJk", updated.VideoID)
	assert.Equal(t, "https://img.youtube.com/vi/aBcDeFgHiJk/hqdefault.jpg", updated.Thumbnail)

	badURL := "https://vimeo.com/123"
	_, err = lectures.Update(created.ID, claimsFor(teacher), LectureUpdate{YoutubeURL: &badURL})
	assert.ErrorIs(t, err, util.ErrInvalidYouTubeURL)
}

func TestLectureUpdateOwnership(t *testing.T) {
	auth, lectures := newLectureFixture(t)
	owner := registerUser(t, auth, "Ada", "ada@example.com", model.Teacher)
	other := registerUser(t, auth, "Eve", "eve@example.com", model.Teacher)

	created, err := lectures.Create(owner.ID, LectureCreate{
		Title:      "课",
		YoutubeURL: "https://youtu.be/dQw4w9WgXcQ",
		Category:   "misc",
	})
	require.NoError(t, err)

	title := "别人的"
	_, err = lectures.Update(created.ID, claimsFor(other), LectureUpdate{Title: &title})
	assert.ErrorIs(t, err, util.ErrPermissionDenied)

	err = lectures.Delete(created.ID, claimsFor(other))
	assert.ErrorIs(t, err, util.ErrPermissionDenied)
}

func TestLectureLikeAndEnroll(t *testing.T) {
	auth, lectures := newLectureFixture(t)
	teacher := registerUser(t, auth, "Ada", "ada@example.com", model.Teacher)
	student := registerUser(t, auth, "Bob", "bob@example.com", model.Student)

	created, err := lectures.Create(teacher.ID, LectureCreate{
		Title:      "互动",
		YoutubeURL: "https://youtu.be/dQw4w9WgXcQ",
		Category:   "misc",
	})
	require.NoError(t, err)

	require.NoError(t, lectures.Like(created.ID))
	require.NoError(t, lectures.Enroll(created.ID, student.ID))

	stored, err := lectures.LectureRepo.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Stats.Likes)
	assert.Equal(t, 1, stored.Stats.Enrollments)

	storedStudent, err := auth.UserRepo.FindByID(student.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, storedStudent.Stats.CoursesEnrolled)
}

// 没配 Redis 时热门榜直接落库，按观看数排序且只取已发布的
func TestLecturePopularWithoutRedis(t *testing.T) {
	auth, lectures := newLectureFixture(t)
	teacher := registerUser(t, auth, "Ada", "ada@example.com", model.Teacher)

	low, err := lectures.Create(teacher.ID, LectureCreate{
		Title: "冷门", YoutubeURL: "https://youtu.be/dQw4w9WgXcQ", Category: "misc",
	})
	require.NoError(t, err)
	high, err := lectures.Create(teacher.ID, LectureCreate{
		Title: "热门", YoutubeURL: "https://youtu.be/aBcDeFgHiJk", Category: "misc",
	})
	require.NoError(t, err)
	_, err = lectures.Create(teacher.ID, LectureCreate{
		Title: "草稿", YoutubeURL: "https://youtu.be/k1234567890", Category: "misc", Status: "draft",
	})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, lectures.LectureRepo.IncrementCounter(high.ID, "stats_views"))
	}
	require.NoError(t, lectures.LectureRepo.IncrementCounter(low.ID, "stats_views"))

	popular, err := lectures.Popular(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, popular, 2)
	assert.Equal(t, "热门", popular[0].Title)
	assert.Equal(t, "冷门", popular[1].Title)
}

func TestLectureNotFound(t *testing.T) {
	_, lectures := newLectureFixture(t)

	_, err := lectures.Get(9999)
	assert.ErrorIs(t, err, util.ErrLectureNotFound)

	err = lectures.Like(9999)
	assert.ErrorIs(t, err, util.ErrLectureNotFound)

	_, err = lectures.LectureRepo.FindByID(9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
