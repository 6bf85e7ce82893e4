// Package storage 提供数据访问层的具体实现
// 本文件定义 SQLite 表对应的记录模型
// 领域对象整体序列化为 JSON 存入 data 列，表结构只负责按键查找
//
// 记录不嵌入 gorm.Model：DeletedAt 会把删除变成软删除，而唯一索引
// 仍覆盖软删除行，清除指针/删除网次后同键重建会撞唯一约束。
// 这里的删除必须是物理删除，因此只保留显式时间戳字段
package storage

import (
	"time"
)

// SessionBundleRecord 网次数据包记录
// 对应数据库 session_bundle 表，网次ID -> JSON 数据包 的映射
type SessionBundleRecord struct {
	Id        uint      `gorm:"primarykey"`
	CreatedAt time.Time // 创建时间
	UpdatedAt time.Time // 更新时间

	// SessionId 网次 UUID，唯一键
	SessionId string `gorm:"column:session_id;uniqueIndex;type:char(36);not null;comment:网次uuid"`

	// Data 整个 SessionBundle 的 JSON 序列化文本
	// 每次保存整体覆盖，不做字段级更新
	Data string `gorm:"column:data;type:TEXT;not null;comment:网次数据包JSON"`
}

// TableName 指定表名
func (SessionBundleRecord) TableName() string {
	return "session_bundle"
}

// AppStateRecord 应用级键值状态记录
// 对应数据库 app_state 表，目前仅存放活动网次指针
type AppStateRecord struct {
	Id        uint      `gorm:"primarykey"`
	CreatedAt time.Time // 创建时间
	UpdatedAt time.Time // 更新时间

	// Key 状态键，如 "activeSessionId"
	Key string `gorm:"column:key;uniqueIndex;type:varchar(64);not null;comment:状态键"`

	// Value 状态值
	Value string `gorm:"column:value;type:TEXT;comment:状态值"`
}

// TableName 指定表名
func (AppStateRecord) TableName() string {
	return "app_state"
}

// CallsignCacheRecord 呼号查询缓存记录
// 对应数据库 callsign_cache 表；条目只增不删，无过期策略
type CallsignCacheRecord struct {
	Id        uint      `gorm:"primarykey"`
	CreatedAt time.Time // 创建时间
	UpdatedAt time.Time // 更新时间

	// Callsign 规范化呼号（大写、去空白），唯一键
	Callsign string `gorm:"column:callsign;uniqueIndex;type:varchar(16);not null;comment:规范化呼号"`

	// Data 查询结果的 JSON 序列化文本
	Data string `gorm:"column:data;type:TEXT;not null;comment:查询结果JSON"`

	// CachedAt 写入缓存的时刻
	CachedAt time.Time `gorm:"column:cached_at;comment:缓存时间"`
}

// TableName 指定表名
func (CallsignCacheRecord) TableName() string {
	return "callsign_cache"
}
