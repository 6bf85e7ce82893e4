// Package config 提供应用程序的配置加载和管理功能
// 使用 TOML 格式的配置文件，支持多路径查找
package config

import (
	"fmt"

	"netctl_server/pkg/constants"

	"github.com/BurntSushi/toml" // TOML 配置文件解析库
)

// MainConfig 主配置，包含应用基本信息
type MainConfig struct {
	AppName string `toml:"appName"` // 应用名称，用于日志标识等
	Host    string `toml:"host"`    // 服务器监听地址，如 "127.0.0.1"
	Port    int    `toml:"port"`    // 服务器监听端口，如 8090
}

// StorageConfig 本地存储配置
// 存储不可用时应用自动降级为纯内存运行，不视为致命错误
type StorageConfig struct {
	SqlitePath string `toml:"sqlitePath"` // SQLite 数据库文件路径，如 "data/netctl.db"
	Disable    bool   `toml:"disable"`    // 置 true 则强制纯内存运行（调试用）
}

// CacheConfig 呼号查询缓存配置
type CacheConfig struct {
	Mode     string `toml:"mode"`     // 缓存模式："local"（SQLite 表）或 "redis"
	Host     string `toml:"host"`     // Redis 服务器地址（mode=redis 时生效）
	Port     int    `toml:"port"`     // Redis 端口，默认 6379
	Password string `toml:"password"` // Redis 密码，无密码留空
	Db       int    `toml:"db"`       // Redis 数据库编号，默认 0
}

// HamdbConfig 外部呼号目录服务配置
type HamdbConfig struct {
	BaseURL        string `toml:"baseURL"`        // 目录服务地址，默认 "https://api.hamdb.org"
	TimeoutSeconds int    `toml:"timeoutSeconds"` // HTTP 查询超时（秒）
	AppName        string `toml:"appName"`        // 目录接口要求携带的应用标识
}

// LogConfig 日志配置，使用 lumberjack 进行日志轮转
type LogConfig struct {
	LogPath    string `toml:"logPath"`    // 日志文件存储目录
	FileName   string `toml:"fileName"`   // 日志文件名
	MaxSize    int    `toml:"maxSize"`    // 单个日志文件最大大小（MB）
	MaxBackups int    `toml:"maxBackups"` // 保留旧日志文件的最大个数
	MaxAge     int    `toml:"maxAge"`     // 保留旧日志文件的最大天数
	Level      string `toml:"level"`      // 日志级别：debug, info, warn, error
}

// StaticSrcConfig 静态资源路径配置
type StaticSrcConfig struct {
	WebDistPath string `toml:"webDistPath"` // 前端编译产物目录，映射到 /static
}

// Config 应用程序总配置，聚合所有子配置
type Config struct {
	MainConfig      `toml:"mainConfig"`      // 主配置
	StorageConfig   `toml:"storageConfig"`   // 本地存储配置
	CacheConfig     `toml:"cacheConfig"`     // 呼号缓存配置
	HamdbConfig     `toml:"hamdbConfig"`     // 呼号目录配置
	LogConfig       `toml:"logConfig"`       // 日志配置
	StaticSrcConfig `toml:"staticSrcConfig"` // 静态资源配置
}

// config 全局配置单例，延迟加载
var config *Config

// LoadConfig 从多个候选路径加载配置文件
// 按顺序尝试加载，找到第一个可用的配置文件即停止
func LoadConfig() error {
	// 候选配置文件路径（优先加载本地配置）
	paths := []string{
		"configs/config_local.toml",       // 本地开发配置（优先）
		"configs/config.toml",             // 默认配置
		"../../configs/config_local.toml", // 从子目录运行时的路径
		"../../configs/config.toml",       // 从子目录运行时的路径
	}

	// 依次尝试加载配置文件
	for _, path := range paths {
		if _, err := toml.DecodeFile(path, config); err == nil {
			return nil // 加载成功
		}
	}

	return fmt.Errorf("could not find configuration file in any of the search paths")
}

// GetConfig 获取全局配置实例（单例模式）
// 首次调用时会自动加载配置文件，加载失败时使用内置默认值
func GetConfig() *Config {
	if config == nil {
		config = new(Config)
		_ = LoadConfig() // 忽略加载错误，使用默认值
		applyDefaults(config)
	}
	return config
}

// applyDefaults 为缺失的配置项补充默认值
// 本应用面向单机单用户，默认值需保证零配置也能启动
func applyDefaults(c *Config) {
	if c.MainConfig.AppName == "" {
		c.MainConfig.AppName = "netctl_server"
	}
	if c.MainConfig.Host == "" {
		c.MainConfig.Host = "127.0.0.1"
	}
	if c.MainConfig.Port == 0 {
		c.MainConfig.Port = 8090
	}
	if c.StorageConfig.SqlitePath == "" {
		c.StorageConfig.SqlitePath = "data/netctl.db"
	}
	if c.CacheConfig.Mode == "" {
		c.CacheConfig.Mode = "local"
	}
	if c.CacheConfig.Port == 0 {
		c.CacheConfig.Port = 6379
	}
	if c.HamdbConfig.BaseURL == "" {
		c.HamdbConfig.BaseURL = "https://api.hamdb.org"
	}
	if c.HamdbConfig.TimeoutSeconds == 0 {
		c.HamdbConfig.TimeoutSeconds = constants.LookupTimeoutSecs
	}
	if c.HamdbConfig.AppName == "" {
		c.HamdbConfig.AppName = "netctl"
	}
	if c.LogConfig.LogPath == "" {
		c.LogConfig.LogPath = "logs"
	}
}
