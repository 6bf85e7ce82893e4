// Package model 定义领域实体模型
// 本文件定义参与电台模型，即在某次网次中签到的电台
package model

import "time"

// Participant 参与电台模型
// 归属于所在网次，列表顺序即签到顺序（仅追加；移除只删除，不重排）
type Participant struct {
	// Id 参与电台唯一标识，UUID v4
	Id string `json:"id"`

	// Callsign 电台呼号，规范形式为大写、去空白、非空
	Callsign string `json:"callsign"`

	// TacticalCall 战术呼号，可选的角色别名（如 "Command"）
	// 在日志中可与呼号互换使用；网控操作员固定为 "NET"
	TacticalCall string `json:"tacticalCall"`

	// Name 操作员姓名
	Name string `json:"name"`

	// Location 所在位置，自由文本
	Location string `json:"location"`

	// CheckInTime 签到时刻
	CheckInTime time.Time `json:"checkInTime"`

	// CheckInNumber 签到序号，1 起始，创建时分配后不再变化
	// 不变式：同一网次内唯一且单调递增；网控操作员始终为 1
	CheckInNumber int `json:"checkInNumber"`
}
