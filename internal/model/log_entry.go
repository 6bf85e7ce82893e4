// Package model 定义领域实体模型
// 本文件定义通联日志条目模型
package model

import "time"

// LogEntry 通联日志条目模型
// 仅追加的列表；唯一的批量修改路径是参与电台改名时的令牌替换
type LogEntry struct {
	// Id 日志条目唯一标识，UUID v4
	Id string `json:"id"`

	// EntryNumber 日志序号，1 起始，创建时分配，单调递增
	EntryNumber int `json:"entryNumber"`

	// Time 记录时刻
	Time time.Time `json:"time"`

	// FromCallsign 发信方令牌
	// 自由文本而非外键：可以是某电台的呼号、战术呼号、
	// 保留令牌 "NC"/"ALL"，也可以不对应任何电台
	FromCallsign string `json:"fromCallsign"`

	// ToCallsign 收信方令牌，语义同 FromCallsign，空白时默认 "NC"
	ToCallsign string `json:"toCallsign"`

	// Message 消息内容，自由文本，可为空
	Message string `json:"message"`
}
