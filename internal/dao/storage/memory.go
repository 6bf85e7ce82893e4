// Package storage 提供数据访问层的具体实现
// 本文件实现内存版 Repository：SQLite 不可用时的降级后端，也是测试用的替身
package storage

import (
	"context"
	"encoding/json"
	"sync"

	"netctl_server/internal/model"
	"netctl_server/pkg/errorx"
)

// memoryBundleRepository BundleRepository 的内存实现
// 行为与 SQLite 实现一致，但进程退出即丢失（纯内存运行模式）
type memoryBundleRepository struct {
	mu       sync.Mutex
	bundles  map[string]string // 网次ID -> 数据包 JSON（与 SQLite 存同样的序列化形式）
	activeId string            // 活动网次指针
}

// memoryCallsignCacheRepository CallsignCacheRepository 的内存实现
type memoryCallsignCacheRepository struct {
	mu      sync.Mutex
	entries map[string]model.CallsignCacheEntry // 规范化呼号 -> 缓存条目
}

// NewMemoryRepositories 创建内存后端的 Repository 实例集合
func NewMemoryRepositories() *Repositories {
	return &Repositories{
		Bundle: &memoryBundleRepository{
			bundles: make(map[string]string),
		},
		CallsignCache: &memoryCallsignCacheRepository{
			entries: make(map[string]model.CallsignCacheEntry),
		},
	}
}

// Load 按网次 ID 读取数据包
func (r *memoryBundleRepository) Load(sessionId string) (*model.SessionBundle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, ok := r.bundles[sessionId]
	if !ok {
		return nil, errorx.Newf(errorx.CodeNotFound, "网次数据包不存在 session_id=%s", sessionId)
	}
	var bundle model.SessionBundle
	if err := json.Unmarshal([]byte(raw), &bundle); err != nil {
		return nil, errorx.Wrapf(err, errorx.CodeNotFound, "网次数据包损坏 session_id=%s", sessionId)
	}
	return &bundle, nil
}

// Save 整体覆盖写入数据包，并更新活动网次指针
func (r *memoryBundleRepository) Save(bundle *model.SessionBundle) error {
	raw, err := json.Marshal(bundle)
	if err != nil {
		return errorx.Wrap(err, errorx.CodeDBError, "序列化网次数据包")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.bundles[bundle.Session.Id] = string(raw)
	r.activeId = bundle.Session.Id
	return nil
}

// Delete 删除指定网次的数据包
func (r *memoryBundleRepository) Delete(sessionId string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.bundles, sessionId)
	return nil
}

// ActiveSessionId 读取活动网次指针
func (r *memoryBundleRepository) ActiveSessionId() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.activeId, nil
}

// SetActiveSessionId 设置活动网次指针，空串表示清除
func (r *memoryBundleRepository) SetActiveSessionId(sessionId string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.activeId = sessionId
	return nil
}

// Get 按规范化呼号读取缓存条目
func (r *memoryCallsignCacheRepository) Get(ctx context.Context, callsign string) (*model.CallsignCacheEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[callsign]
	if !ok {
		return nil, errorx.Newf(errorx.CodeNotFound, "呼号缓存未命中 callsign=%s", callsign)
	}
	return &entry, nil
}

// Put 写入缓存条目
func (r *memoryCallsignCacheRepository) Put(ctx context.Context, callsign string, entry *model.CallsignCacheEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[callsign] = *entry
	return nil
}
