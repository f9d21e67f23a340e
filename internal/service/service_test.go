package service

import (
	"coursehub_backend/internal/config"
	"coursehub_backend/internal/model"
	"coursehub_backend/internal/repository"
	"coursehub_backend/internal/util"
	"coursehub_backend/pkg/database"
	"coursehub_backend/pkg/logger"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

// newTestDB 每个测试用独立的内存库，表结构和生产走同一份迁移。
// cache=shared 让连接池里的所有连接看到同一个库。
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func testJWTConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:     "service-test-secret",
			ExpireTime: time.Hour,
		},
	}
}

func registerUser(t *testing.T, auth *AuthService, name, email string, role model.UserRole) *model.User {
	t.Helper()
	user := &model.User{
		Name:     name,
		Email:    email,
		Password: "password123",
		Role:     role,
	}
	require.NoError(t, auth.Register(user))
	return user
}

func claimsFor(user *model.User) *util.Claims {
	return &util.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}
}

func newAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(repository.NewUserRepository(db), testJWTConfig())
}
