// Package model 定义领域实体模型
// 本文件定义网次数据包，即持久化的最小单位
package model

// SessionBundle 网次数据包
// 每个网次一个数据包，整体 JSON 序列化后覆盖写入存储
// 存储层是 网次ID -> 数据包 的映射，另有独立的活动网次指针
type SessionBundle struct {
	// Session 网次元数据
	Session NetSession `json:"session"`

	// Participants 参与电台列表（按签到顺序）
	Participants []Participant `json:"participants"`

	// LogEntries 通联日志列表（按记录顺序）
	LogEntries []LogEntry `json:"logEntries"`

	// LastAcknowledgedEntryId 最近已确认日志条目的 ID
	// 单一标记（同一时刻至多一条被确认），纯界面辅助状态，空串表示无
	LastAcknowledgedEntryId string `json:"lastAcknowledgedEntryId"`
}
