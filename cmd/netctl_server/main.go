package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"netctl_server/internal/config"
	myredis "netctl_server/internal/dao/redis"
	"netctl_server/internal/dao/storage"
	"netctl_server/internal/handler"
	"netctl_server/internal/https_server"
	"netctl_server/internal/infrastructure/logger"
	"netctl_server/internal/service"

	"go.uber.org/zap"
)

func main() {
	// 1. 加载配置
	conf := config.GetConfig()

	// 2. 初始化日志
	if err := logger.Init(&conf.LogConfig, "dev"); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	zap.L().Info("日志初始化成功")

	// 3. 初始化参数校验翻译器
	if err := handler.InitTrans("zh"); err != nil {
		zap.L().Fatal("翻译器初始化失败", zap.Error(err))
	}

	// 4. 初始化本地存储
	// SQLite 打开失败不致命：降级为纯内存运行，仅丢失持久化能力
	var repos *storage.Repositories
	if conf.StorageConfig.Disable {
		repos = storage.NewMemoryRepositories()
		zap.L().Info("已按配置禁用本地存储，使用内存模式")
	} else {
		var err error
		repos, err = storage.Init(&conf.StorageConfig)
		if err != nil {
			zap.L().Warn("本地存储初始化失败，降级为内存模式", zap.Error(err))
			repos = storage.NewMemoryRepositories()
		} else {
			zap.L().Info("本地存储初始化成功", zap.String("path", conf.StorageConfig.SqlitePath))
		}
	}

	// 5. 按配置切换呼号缓存后端
	// Redis 连接失败同样降级，继续使用本地缓存表
	if conf.CacheConfig.Mode == "redis" {
		cache, err := myredis.Init(&conf.CacheConfig)
		if err != nil {
			zap.L().Warn("Redis 初始化失败，继续使用本地缓存", zap.Error(err))
		} else {
			repos.CallsignCache = cache
			zap.L().Info("呼号缓存已切换至 Redis")
		}
	}

	// 6. 初始化 Service 层 (依赖注入)
	services := service.NewServices(repos, conf)
	zap.L().Info("Service 层初始化成功")

	// 7. 初始化 Handler 层与 HTTP 服务器
	handlers := handler.NewHandlers(services)
	engine := https_server.Init(handlers)
	zap.L().Info("HTTP 服务器初始化成功")

	// 8. 启动服务
	host := conf.MainConfig.Host
	port := conf.MainConfig.Port
	go func() {
		if err := engine.Run(fmt.Sprintf("%s:%d", host, port)); err != nil {
			zap.L().Fatal("server running fault", zap.Error(err))
		}
	}()
	zap.L().Info("服务已启动", zap.String("host", host), zap.Int("port", port))

	// 设置信号监听
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// 等待信号
	<-quit

	zap.L().Info("关闭服务器...")
	zap.L().Info("服务器已关闭")
}
