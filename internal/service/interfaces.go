// Package service 提供业务逻辑层
// 本文件定义 Service 层接口，Handler 层依赖接口而非具体实现
package service

import (
	"context"
	"time"

	"netctl_server/internal/dto/request"
	"netctl_server/internal/dto/respond"
	"netctl_server/internal/model"
)

// NetService 通联网次业务接口
// 覆盖网次生命周期、参与电台与日志变更、导出导入
// 除 LoadSession / ImportCSV / 导出外，各操作不返回错误：
// 无效状态下的操作静默无操作，持久化失败在内部降级吞掉
type NetService interface {
	// CreateSession 创建网次（pending），自动创建网控操作员为 1 号电台
	CreateSession(req request.CreateSessionRequest) *respond.NetStateRespond
	// OpenSession 开始网次，仅 pending -> active 有效，其余静默无操作
	OpenSession() *respond.NetStateRespond
	// CloseSession 结束网次，写入结束时刻；closed 为终态
	CloseSession() *respond.NetStateRespond
	// LoadSession 加载历史网次；不存在返回 CodeNotFound（唯一可见错误路径）
	LoadSession(sessionId string) (*respond.NetStateRespond, error)
	// Reset 删除当前网次持久化数据并清空状态
	Reset() *respond.NetStateRespond
	// State 当前状态快照
	State() *respond.NetStateRespond
	// ElapsedTime 网次已进行时长，非 active 恒为 0
	ElapsedTime() time.Duration

	// AddParticipant 电台签到；active 状态下自动追加签到日志
	AddParticipant(req request.AddParticipantRequest) *respond.NetStateRespond
	// UpdateParticipant 编辑电台；呼号/战术呼号变化触发历史日志令牌改写
	UpdateParticipant(req request.UpdateParticipantRequest) *respond.NetStateRespond
	// RemoveParticipant 移除电台；不重排序号，不改写日志
	RemoveParticipant(id string) *respond.NetStateRespond
	// AddLogEntry 追加日志；收信方空白默认 "NC"
	AddLogEntry(req request.AddLogEntryRequest) *respond.NetStateRespond
	// AcknowledgeEntry 覆盖"最近已确认"标记
	AcknowledgeEntry(entryId string) *respond.NetStateRespond
	// ResolveCallsign 解析日志令牌到参与电台（显示用）
	ResolveCallsign(token string) *respond.ResolveCallsignRespond

	// ExportCSV 导出 CSV，返回 (文件名, 内容, 错误)
	ExportCSV() (string, string, error)
	// ExportPDF 导出 ICS-309 PDF，返回 (文件名, 字节, 错误)
	ExportPDF() (string, []byte, error)
	// ImportCSV 从 CSV 重建网次并设为当前网次（强制 active）
	ImportCSV(csvText string) (*respond.NetStateRespond, error)
}

// CallsignService 呼号目录查询业务接口
type CallsignService interface {
	// Lookup 查询呼号；无结果或任何失败返回 (nil, nil)，绝不抛错
	Lookup(ctx context.Context, callsign string) (*model.CallsignLookupResult, error)
}
