// @title CourseHub 后端 API
// @version 1.0
// @description 课程与讲座市场平台的后端服务器。

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"coursehub_backend/internal/app"
	"coursehub_backend/internal/config"
	"coursehub_backend/pkg/configwatcher"
	"coursehub_backend/pkg/logger"
	"log"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		// 限流/CORS等热更新只影响后续请求，JWT密钥和端口需要重启
		*cfg = *newCfg
		logger.Log.Info("config reloaded")
	})

	application.Run()
}
