// Package main 是应用程序的入口点。
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"curriculum-design-go/internal/config"
	"curriculum-design-go/internal/handler"
	"curriculum-design-go/internal/middleware"
	"curriculum-design-go/internal/model"
	"curriculum-design-go/internal/repository"
	"curriculum-design-go/internal/service"
	"curriculum-design-go/pkg/database"
	"curriculum-design-go/pkg/llm"
	"curriculum-design-go/pkg/log"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. 初始化配置
	config.Init("./configs/config.yaml")
	cfg := config.Conf

	// 2. 初始化日志记录器
	log.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.OutputPath)
	defer log.Sync() // 确保在程序退出时刷新所有缓冲的日志条目
	log.Info("日志记录器初始化成功")

	// 3. 校验必需的模型密钥，缺失时拒绝启动
	if cfg.LLM.APIKey == "" {
		log.Fatalf("GROQ_API_KEY 未设置：请通过环境变量或 configs/config.yaml 提供模型密钥")
	}

	// 4. 初始化数据库和 Redis
	database.InitMySQL(cfg.Database.MySQL.DSN)
	database.InitRedis(cfg.Database.Redis.Addr, cfg.Database.Redis.Password, cfg.Database.Redis.DB)
	if err := database.DB.AutoMigrate(&model.CurriculumRecord{}); err != nil {
		log.Fatal("数据库迁移失败", err)
	}

	// 5. 初始化 Repository
	historyRepo := repository.NewHistoryRepository(
		database.RDB,
		cfg.Curriculum.HistoryLimit,
		time.Duration(cfg.Curriculum.HistoryTTLHours)*time.Hour,
	)
	recordRepo := repository.NewRecordRepository(database.DB)

	// 6. 初始化 Service (依赖注入)
	llmClient := llm.NewClient(cfg.LLM)
	curriculumService := service.NewCurriculumService(llmClient, recordRepo, historyRepo)
	historyService := service.NewHistoryService(historyRepo, recordRepo)

	// 7. 设置 Gin 模式并创建路由引擎
	gin.SetMode(cfg.Server.Mode)
	r := gin.New() // 使用 New() 创建一个不带默认中间件的引擎
	r.Use(middleware.RequestLogger(), gin.Recovery())

	// 8. 注册路由
	// 表单页面
	r.StaticFile("/", "./web/index.html")

	apiV1 := r.Group("/api/v1")
	{
		curriculum := apiV1.Group("/curriculum")
		{
			curriculumHandler := handler.NewCurriculumHandler(curriculumService)
			curriculum.POST("/structure", curriculumHandler.GenerateStructure)
			curriculum.POST("/topics", curriculumHandler.RecommendTopics)
			curriculum.POST("/timeline", curriculumHandler.CreateTimeline)
			curriculum.POST("/outcomes", curriculumHandler.MapOutcomes)
			curriculum.POST("/optimize", curriculumHandler.Optimize)
			curriculum.POST("/generate", curriculumHandler.GenerateFull)

			historyHandler := handler.NewHistoryHandler(historyService)
			curriculum.GET("/history", historyHandler.GetHistory)
			curriculum.GET("/records", historyHandler.ListRecords)
		}
	}

	// 启动 HTTP 服务器并实现优雅停机
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: r,
	}

	go func() {
		log.Infof("服务启动于 %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP 服务监听失败: %s\n", err)
		}
	}()

	// 等待中断信号以实现优雅停机
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("接收到停机信号，正在关闭服务...")

	// 设置一个5秒的超时上下文
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("HTTP 服务器关闭失败: %v", err)
	}

	log.Info("服务已优雅关闭")
}
