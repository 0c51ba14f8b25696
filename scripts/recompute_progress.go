// 手动重算学员课程进度脚本
//
// 课程目录调整（增删视频）后，已存储的进度文档中的 totalVideos 和完成状态
// 可能过期。此脚本按当前目录重新统计并执行结业判定，已结业的课程不会被撤销。
//
// 用法: go run scripts/recompute_progress.go -learners alice,bob [-config configs]

package main

import (
	"context"
	"course_cert_backend/internal/config"
	"course_cert_backend/internal/repository"
	"course_cert_backend/internal/service"
	"course_cert_backend/internal/util"
	"course_cert_backend/pkg/database"
	"course_cert_backend/pkg/logger"
	"flag"
	"log"
	"sort"
	"strings"
)

func main() {
	configDir := flag.String("config", "configs", "配置文件目录")
	learners := flag.String("learners", "", "逗号分隔的学员ID")
	flag.Parse()

	if strings.TrimSpace(*learners) == "" {
		log.Fatal("必须通过 -learners 指定至少一个学员")
	}

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	var substrate repository.Substrate
	switch cfg.Progress.Driver {
	case util.ProgressDriverGorm:
		db, err := database.InitDB(&cfg.Database)
		if err != nil {
			log.Fatalf("数据库连接失败: %v", err)
		}
		substrate = repository.NewGormSubstrate(db)
	case util.ProgressDriverRedis:
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			log.Fatalf("Redis 连接失败: %v", err)
		}
		defer rdb.Close()
		substrate = repository.NewRedisSubstrate(rdb, cfg.Progress.RedisTTL)
	default:
		log.Fatal("memory 存储没有可重算的持久化数据")
	}

	source, err := service.NewContentSource(&cfg.Catalog)
	if err != nil {
		log.Fatalf("课程目录不可用: %v", err)
	}

	store := repository.NewProgressStore(substrate, cfg.Progress.StorageKey)
	progress := service.NewProgressService(store)
	courses := service.NewCourseService(source, progress)

	ctx := context.Background()
	for _, learnerID := range strings.Split(*learners, ",") {
		learnerID = strings.TrimSpace(learnerID)
		if learnerID == "" {
			continue
		}

		doc := store.Load(ctx, learnerID)
		courseIDs := make([]string, 0, len(doc.Courses))
		for id := range doc.Courses {
			courseIDs = append(courseIDs, id)
		}
		sort.Strings(courseIDs)

		for _, courseID := range courseIDs {
			_, course, err := courses.OpenCourse(ctx, learnerID, courseID)
			if err != nil {
				log.Printf("[%s] 跳过课程 %s: %v", learnerID, courseID, err)
				continue
			}
			log.Printf("[%s] %s: %d/%d 已完成, 结业=%t",
				learnerID, courseID, course.CompletedVideos, course.TotalVideos, course.CourseCompleted)
		}
	}
	log.Println("完成！")
}
