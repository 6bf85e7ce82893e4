// Package storage 提供数据访问层的具体实现
// 本文件实现 CallsignCacheRepository 接口的 SQLite 后端（cacheConfig.mode = "local"）
package storage

import (
	"context"
	"encoding/json"

	"netctl_server/internal/model"
	"netctl_server/pkg/errorx"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// callsignCacheRepository CallsignCacheRepository 接口的 SQLite 实现
type callsignCacheRepository struct {
	db *gorm.DB // GORM 数据库实例
}

// NewCallsignCacheRepository 创建 CallsignCacheRepository 实例
func NewCallsignCacheRepository(db *gorm.DB) CallsignCacheRepository {
	return &callsignCacheRepository{db: db}
}

// Get 按规范化呼号读取缓存条目
// 未命中返回 CodeNotFound；损坏的 JSON 同样按未命中处理
func (r *callsignCacheRepository) Get(ctx context.Context, callsign string) (*model.CallsignCacheEntry, error) {
	var record CallsignCacheRecord
	if err := r.db.WithContext(ctx).Where("callsign = ?", callsign).First(&record).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询呼号缓存 callsign=%s", callsign)
	}

	var result model.CallsignLookupResult
	if err := json.Unmarshal([]byte(record.Data), &result); err != nil {
		zap.L().Warn("呼号缓存 JSON 损坏，按未命中处理",
			zap.String("callsign", callsign),
			zap.Error(err),
		)
		return nil, errorx.Wrapf(err, errorx.CodeNotFound, "呼号缓存损坏 callsign=%s", callsign)
	}
	return &model.CallsignCacheEntry{Result: result, CachedAt: record.CachedAt}, nil
}

// Put 写入缓存条目，覆盖同呼号的旧值
// 缓存只增不减：没有删除路径，也没有过期字段
func (r *callsignCacheRepository) Put(ctx context.Context, callsign string, entry *model.CallsignCacheEntry) error {
	raw, err := json.Marshal(entry.Result)
	if err != nil {
		return errorx.Wrap(err, errorx.CodeCacheError, "序列化呼号查询结果")
	}

	res := r.db.WithContext(ctx).Model(&CallsignCacheRecord{}).
		Where("callsign = ?", callsign).
		Updates(map[string]interface{}{"data": string(raw), "cached_at": entry.CachedAt})
	if res.Error != nil {
		return wrapDBErrorf(res.Error, "更新呼号缓存 callsign=%s", callsign)
	}
	if res.RowsAffected == 0 {
		record := CallsignCacheRecord{Callsign: callsign, Data: string(raw), CachedAt: entry.CachedAt}
		if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
			return wrapDBErrorf(err, "创建呼号缓存 callsign=%s", callsign)
		}
	}
	return nil
}
