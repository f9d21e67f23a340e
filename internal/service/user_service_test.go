package service

import (
	"coursehub_backend/internal/model"
	"coursehub_backend/internal/repository"
	"coursehub_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserFixture(t *testing.T) (*AuthService, *UserService) {
	t.Helper()
	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	return NewAuthService(userRepo, testJWTConfig()), NewUserService(userRepo)
}

func TestUpdateProfilePartial(t *testing.T) {
	auth, users := newUserFixture(t)
	user := registerUser(t, auth, "Ada", "ada@example.com", model.Teacher)

	bio := "十年后端"
	subject := "分布式系统"
	updated, err := users.UpdateProfile(user.ID, ProfileUpdate{
		Bio:     &bio,
		Subject: &subject,
		Badges:  []string{"early-adopter"},
	})
	require.NoError(t, err)

	assert.Equal(t, "十年后端", updated.Profile.Bio)
	assert.Equal(t, "分布式系统", updated.Profile.Subject)
	assert.Equal(t, []string{"early-adopter"}, updated.Badges.Values())
	// 未提交的字段保持原样
	assert.Equal(t, "Ada", updated.Name)
	assert.Equal(t, model.Teacher, updated.Role)
}

func TestUpdateProfileCannotTouchRoleOrStats(t *testing.T) {
	auth, users := newUserFixture(t)
	user := registerUser(t, auth, "Bob", "bob@example.com", model.Student)

	name := "Bobby"
	updated, err := users.UpdateProfile(user.ID, ProfileUpdate{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, model.Student, updated.Role)
	assert.Equal(t, 0, updated.Stats.CoursesEnrolled)
}

func TestSetAvatar(t *testing.T) {
	auth, users := newUserFixture(t)
	user := registerUser(t, auth, "Ada", "ada@example.com", model.Teacher)

	updated, err := users.SetAvatar(user.ID, "/uploads/avatars/abc.png")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/avatars/abc.png", updated.Profile.Avatar)
}

func TestListTeachers(t *testing.T) {
	auth, users := newUserFixture(t)
	registerUser(t, auth, "Ada", "ada@example.com", model.Teacher)
	registerUser(t, auth, "Bob", "bob@example.com", model.Student)
	registerUser(t, auth, "Carol", "carol@example.com", model.Teacher)

	teachers, err := users.ListTeachers()
	require.NoError(t, err)
	require.Len(t, teachers, 2)
	assert.Equal(t, "Ada", teachers[0].Name)
	assert.Equal(t, "Carol", teachers[1].Name)
}

func TestUserListSearchAndRoleFilter(t *testing.T) {
	auth, users := newUserFixture(t)
	registerUser(t, auth, "Ada Lovelace", "ada@example.com", model.Teacher)
	registerUser(t, auth, "Bob", "bob@example.com", model.Student)

	list, total, err := users.List(1, 20, "ada", "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, "Ada Lovelace", list[0].Name)

	_, total, err = users.List(1, 20, "", model.Student)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestUserDelete(t *testing.T) {
	auth, users := newUserFixture(t)
	user := registerUser(t, auth, "Ada", "ada@example.com", model.Teacher)

	require.NoError(t, users.Delete(user.ID))

	_, err := users.GetByID(user.ID)
	assert.ErrorIs(t, err, util.ErrUserNotFound)

	err = users.Delete(9999)
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}

func TestUniqueImageName(t *testing.T) {
	name, ok := UniqueImageName("avatars", "photo.PNG")
	require.True(t, ok)
	assert.Contains(t, name, "avatars/")
	assert.Contains(t, name, ".png")

	_, ok = UniqueImageName("avatars", "malware.exe")
	assert.False(t, ok)

	_, ok = UniqueImageName("avatars", "noextension")
	assert.False(t, ok)
}
