package service

import (
	"coursehub_backend/internal/config"
	"coursehub_backend/internal/model"
	"coursehub_backend/internal/repository"
	"coursehub_backend/internal/util"
	"coursehub_backend/pkg/logger"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Cfg:      cfg,
	}
}

func (s *AuthService) Register(user *model.User) error {
	_, err := s.UserRepo.FindByEmail(user.Email)
	if err == nil {
		return util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashedPassword)
	now := time.Now()
	user.JoinedDate = now
	user.LastLogin = now
	user.LastSeen = now
	return s.UserRepo.Create(user)
}

// Login 唯一的登录路径，没有内置凭据的旁路
func (s *AuthService) Login(email, password string) (string, *model.User, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	user.LastLogin = time.Now()
	if err := s.UserRepo.Update(user); err != nil {
		logger.Log.Warn("failed to record last login", zap.Uint("user", user.ID), zap.Error(err))
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) GenerateToken(user *model.User) (string, error) {
	return util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
}

func (s *AuthService) GetCurrentUser(c *gin.Context) *model.User {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		return nil
	}

	user, err := s.UserRepo.FindByID(claims.UserID)
	if err != nil {
		return nil
	}
	return user
}

// BootstrapAdmin 启动时播种初始管理员。只有在配置了引导凭据
// 且库里还没有任何 admin 时才会创建，之后这段配置可以撤掉。
func (s *AuthService) BootstrapAdmin() error {
	cfg := s.Cfg.Admin
	if cfg.BootstrapEmail == "" || cfg.BootstrapPassword == "" {
		return nil
	}

	count, err := s.UserRepo.CountByRole(model.Admin)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	name := cfg.BootstrapName
	if name == "" {
		name = "Administrator"
	}

	admin := &model.User{
		Name:     name,
		Email:    cfg.BootstrapEmail,
		Password: cfg.BootstrapPassword,
		Role:     model.Admin,
	}
	if err := s.Register(admin); err != nil {
		return err
	}

	logger.Log.Info("bootstrap admin created", zap.String("email", admin.Email))
	return nil
}
