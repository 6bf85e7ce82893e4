// Package storage 提供数据访问层的具体实现
// 本文件实现 BundleRepository 接口，处理网次数据包的读写
package storage

import (
	"encoding/json"
	"errors"

	"netctl_server/internal/model"
	"netctl_server/pkg/constants"
	"netctl_server/pkg/errorx"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// bundleRepository BundleRepository 接口的 SQLite 实现
type bundleRepository struct {
	db *gorm.DB // GORM 数据库实例
}

// NewBundleRepository 创建 BundleRepository 实例
func NewBundleRepository(db *gorm.DB) BundleRepository {
	return &bundleRepository{db: db}
}

// Load 按网次 ID 读取数据包
// 记录不存在或 JSON 损坏都返回 CodeNotFound：损坏的持久化数据按"无数据"处理
func (r *bundleRepository) Load(sessionId string) (*model.SessionBundle, error) {
	var record SessionBundleRecord
	if err := r.db.Where("session_id = ?", sessionId).First(&record).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询网次数据包 session_id=%s", sessionId)
	}

	var bundle model.SessionBundle
	if err := json.Unmarshal([]byte(record.Data), &bundle); err != nil {
		// 数据损坏视为不存在，绝不向上传播反序列化错误
		zap.L().Warn("网次数据包 JSON 损坏，按不存在处理",
			zap.String("session_id", sessionId),
			zap.Error(err),
		)
		return nil, errorx.Wrapf(err, errorx.CodeNotFound, "网次数据包损坏 session_id=%s", sessionId)
	}
	return &bundle, nil
}

// Save 整体覆盖写入数据包，并更新活动网次指针
// 无部分更新：data 列每次被完整替换
func (r *bundleRepository) Save(bundle *model.SessionBundle) error {
	raw, err := json.Marshal(bundle)
	if err != nil {
		return errorx.Wrap(err, errorx.CodeDBError, "序列化网次数据包")
	}

	sessionId := bundle.Session.Id
	res := r.db.Model(&SessionBundleRecord{}).
		Where("session_id = ?", sessionId).
		Update("data", string(raw))
	if res.Error != nil {
		return wrapDBErrorf(res.Error, "更新网次数据包 session_id=%s", sessionId)
	}
	if res.RowsAffected == 0 {
		record := SessionBundleRecord{SessionId: sessionId, Data: string(raw)}
		if err := r.db.Create(&record).Error; err != nil {
			return wrapDBErrorf(err, "创建网次数据包 session_id=%s", sessionId)
		}
	}

	// 保存的副作用：活动网次指针指向本数据包
	return r.SetActiveSessionId(sessionId)
}

// Delete 删除指定网次的数据包
func (r *bundleRepository) Delete(sessionId string) error {
	if err := r.db.Where("session_id = ?", sessionId).Delete(&SessionBundleRecord{}).Error; err != nil {
		return wrapDBErrorf(err, "删除网次数据包 session_id=%s", sessionId)
	}
	return nil
}

// ActiveSessionId 读取活动网次指针
// 指针未设置返回空串和 nil（不视为错误）
func (r *bundleRepository) ActiveSessionId() (string, error) {
	var record AppStateRecord
	if err := r.db.Where("key = ?", constants.ActiveSessionKey).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil // 指针不存在，返回空但不报错
		}
		return "", wrapDBError(err, "查询活动网次指针")
	}
	return record.Value, nil
}

// SetActiveSessionId 设置活动网次指针，空串表示清除
func (r *bundleRepository) SetActiveSessionId(sessionId string) error {
	if sessionId == "" {
		if err := r.db.Where("key = ?", constants.ActiveSessionKey).Delete(&AppStateRecord{}).Error; err != nil {
			return wrapDBError(err, "清除活动网次指针")
		}
		return nil
	}

	res := r.db.Model(&AppStateRecord{}).
		Where("key = ?", constants.ActiveSessionKey).
		Update("value", sessionId)
	if res.Error != nil {
		return wrapDBError(res.Error, "更新活动网次指针")
	}
	if res.RowsAffected == 0 {
		record := AppStateRecord{Key: constants.ActiveSessionKey, Value: sessionId}
		if err := r.db.Create(&record).Error; err != nil {
			return wrapDBError(err, "创建活动网次指针")
		}
	}
	return nil
}
