// Package model 定义领域实体模型
// 本文件定义通联网次模型，一次网次即一场由网控台主持的无线电通联活动
package model

import "time"

// 网次状态枚举
// 状态机：pending -> active -> closed，closed 为终态
const (
	StatusPending = "pending" // 已创建，尚未开始记录
	StatusActive  = "active"  // 进行中，接受签到和日志记录
	StatusClosed  = "closed"  // 已结束，只读，可导出
)

// NetSession 通联网次模型
// 序列化为 JSON 整体存入 session_bundle 表（camelCase 与持久化布局保持一致）
type NetSession struct {
	// Id 网次唯一标识，UUID v4
	Id string `json:"id"`

	// Name 网次名称，如 "Morning Net"
	// 创建时必填，同时用于导出文件名
	Name string `json:"name"`

	// Frequency 通联频率，自由文本，如 "146.520 MHz"
	Frequency string `json:"frequency"`

	// NetControlOp 网控操作员呼号（大写、去空白）
	// 创建时必填，日志中的 "NC" 令牌解析到该呼号
	NetControlOp string `json:"netControlOp"`

	// NetControlName 网控操作员姓名
	NetControlName string `json:"netControlName"`

	// PreparedBy 填表人姓名，仅出现在 ICS-309 导出的签名栏
	PreparedBy string `json:"preparedBy"`

	// DateTime 网次创建（开始）时刻
	// status 为 active 时重载后据此重建计时起点
	DateTime time.Time `json:"dateTime"`

	// EndTime 网次结束时刻
	// 不变式：EndTime 非空 当且仅当 Status == closed
	EndTime *time.Time `json:"endTime"`

	// Status 网次状态，取值见上方常量
	Status string `json:"status"`
}
