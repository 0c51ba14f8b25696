// @title 课程证书后端 API
// @version 1.0
// @description 课程视频受限播放、学习进度跟踪与结业证书服务。

// @contact.name API支持
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"course_cert_backend/internal/app"
	"course_cert_backend/internal/config"
	"course_cert_backend/pkg/logger"
	"flag"
	"log"
)

func main() {
	// 命令行参数
	configDir := flag.String("config", "configs", "配置文件所在目录（读取其中的 config.yaml）")
	driver := flag.String("progress-driver", "", "覆盖 progress.driver：memory、gorm 或 redis")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *driver != "" {
		cfg.Progress.Driver = *driver
		if err := cfg.Validate(); err != nil {
			log.Fatalf("Invalid config: %v", err)
		}
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	application.Run()
}
