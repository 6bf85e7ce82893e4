// Package storage 定义数据访问层接口和聚合结构
// 采用 Repository 模式将数据访问逻辑与业务逻辑分离
// 所有 Repository 接口在此文件定义，具体实现在各自的文件中
package storage

import (
	"context"

	"netctl_server/internal/model"
)

// ==================== Repository 接口定义 ====================

// BundleRepository 网次数据包持久化接口
// 所有实现均为尽力而为语义：Service 层吞掉写入错误，仅记录日志，
// 调用方不得依赖持久化一定成功
type BundleRepository interface {
	// Load 按网次 ID 读取数据包
	// 不存在或数据损坏时返回 CodeNotFound 错误（损坏数据视为不存在，绝不致命）
	Load(sessionId string) (*model.SessionBundle, error)
	// Save 整体覆盖写入数据包（无部分更新/合并），
	// 并作为副作用将活动网次指针更新为该数据包的网次 ID
	Save(bundle *model.SessionBundle) error
	// Delete 删除指定网次的数据包
	Delete(sessionId string) error
	// ActiveSessionId 读取活动网次指针，无则返回空串
	ActiveSessionId() (string, error)
	// SetActiveSessionId 设置活动网次指针，空串表示清除
	SetActiveSessionId(sessionId string) error
}

// CallsignCacheRepository 呼号查询缓存接口
// 只增不减：条目永不过期、永不刷新
// 具体实现有 SQLite 表（本地模式）、Redis（redis 模式）和内存（降级/测试）
type CallsignCacheRepository interface {
	// Get 按规范化呼号读取缓存条目，未命中返回 CodeNotFound 错误
	Get(ctx context.Context, callsign string) (*model.CallsignCacheEntry, error)
	// Put 写入缓存条目，覆盖同呼号的旧值
	Put(ctx context.Context, callsign string, entry *model.CallsignCacheEntry) error
}

// ==================== Repository 聚合 ====================

// Repositories 聚合所有 Repository 实例
// 作为依赖注入的入口，Service 层通过此结构访问各个 Repository
type Repositories struct {
	Bundle        BundleRepository        // 网次数据包
	CallsignCache CallsignCacheRepository // 呼号查询缓存
}
