package util

import (
	"coursehub_backend/internal/model"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-unit-tests-only"

func testUser() *model.User {
	u := &model.User{
		Name:  "测试用户",
		Email: "user@example.com",
		Role:  model.Teacher,
	}
	u.ID = 42
	return u
}

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT(testUser(), testSecret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, model.Teacher, claims.Role)
}

func TestParseJWTExpired(t *testing.T) {
	token, err := GenerateJWT(testUser(), testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(token, testSecret)
	assert.Error(t, err)
}

func TestParseJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT(testUser(), testSecret, time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT(token, "a-completely-different-secret")
	assert.Error(t, err)
}

func TestParseJWTMalformed(t *testing.T) {
	_, err := ParseJWT("not.a.token", testSecret)
	assert.Error(t, err)

	_, err = ParseJWT("", testSecret)
	assert.Error(t, err)
}

// 旧版签发路径把角色写在 userType 字段里，解析后必须归一到 Role
func TestParseJWTLegacyUserTypeClaim(t *testing.T) {
	legacy := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId":   float64(7),
		"email":    "legacy@example.com",
		"userType": "teacher",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	token, err := legacy.SignedString([]byte(testSecret))
	require.NoError(t, err)

	claims, err := ParseJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, model.Teacher, claims.Role)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Empty(t, claims.LegacyUserType)
}

// 显式 role 字段优先于历史 userType
func TestParseJWTRoleWinsOverLegacy(t *testing.T) {
	mixed := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId":   float64(8),
		"role":     "admin",
		"userType": "student",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	token, err := mixed.SignedString([]byte(testSecret))
	require.NoError(t, err)

	claims, err := ParseJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, model.Admin, claims.Role)
}

// 只接受 HS256，其他签名算法一律拒绝
func TestParseJWTRejectsOtherAlgorithms(t *testing.T) {
	other := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"userId": float64(9),
		"exp":    time.Now().Add(time.Hour).Unix(),
	})
	token, err := other.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ParseJWT(token, testSecret)
	assert.Error(t, err)
}
