// Package storage 提供数据访问层的初始化和数据库实例管理
// 负责建立 SQLite 连接、自动迁移表结构、初始化 Repository 层
package storage

import (
	"os"
	"path/filepath"

	"netctl_server/internal/config"

	"github.com/glebarez/sqlite" // GORM 纯 Go SQLite 驱动
	"gorm.io/gorm"               // GORM ORM 框架
)

// Init 初始化 SQLite 连接并返回 Repository 层实例
// 执行步骤：
//  1. 从配置读取数据库文件路径，确保父目录存在
//  2. 使用 GORM 建立数据库连接
//  3. 执行 AutoMigrate 自动迁移表结构
//  4. 创建并返回 Repository 实例
//
// 与服务器类应用不同，这里连接失败不 Fatal：调用方（main）捕获错误后
// 降级为纯内存 Repository，应用继续以无持久化模式运行
func Init(conf *config.StorageConfig) (*Repositories, error) {
	// 确保数据库文件所在目录存在
	if dir := filepath.Dir(conf.SqlitePath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, wrapDBErrorf(err, "创建数据目录 %s", dir)
		}
	}

	// 使用 GORM 打开数据库连接
	db, err := gorm.Open(sqlite.Open(conf.SqlitePath), &gorm.Config{})
	if err != nil {
		return nil, wrapDBErrorf(err, "打开 SQLite 数据库 %s", conf.SqlitePath)
	}

	// AutoMigrate 自动迁移表结构
	// 如果表不存在则创建，如果字段变更则更新结构
	// 注意：不会删除已有字段或数据
	err = db.AutoMigrate(
		&SessionBundleRecord{}, // 网次数据包表
		&AppStateRecord{},      // 应用状态表（活动网次指针）
		&CallsignCacheRecord{}, // 呼号缓存表
	)
	if err != nil {
		return nil, wrapDBError(err, "迁移表结构")
	}

	// 创建并返回 Repository 实例集合
	return NewRepositories(db), nil
}

// NewRepositories 创建 SQLite 后端的 Repository 实例集合
// 将 db 注入到所有 Repository
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Bundle:        NewBundleRepository(db),
		CallsignCache: NewCallsignCacheRepository(db),
	}
}
