// Package handler 提供 HTTP 请求处理器
// 本文件处理通联日志相关的 API 请求
package handler

import (
	"netctl_server/internal/dto/request"
	"netctl_server/internal/service"

	"github.com/gin-gonic/gin"
)

// LogHandler 通联日志请求处理器
type LogHandler struct {
	netSvc service.NetService
}

// NewLogHandler 创建通联日志处理器实例
// netSvc: 网次服务接口
func NewLogHandler(netSvc service.NetService) *LogHandler {
	return &LogHandler{netSvc: netSvc}
}

// AddLogEntry 追加通联日志
// POST /log/add
// 请求体: request.AddLogEntryRequest
// 响应: respond.NetStateRespond
func (h *LogHandler) AddLogEntry(c *gin.Context) {
	var req request.AddLogEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	HandleSuccess(c, h.netSvc.AddLogEntry(req))
}

// AcknowledgeEntry 标记已确认日志条目
// POST /log/acknowledge
// 请求体: request.AcknowledgeEntryRequest
// 响应: respond.NetStateRespond
func (h *LogHandler) AcknowledgeEntry(c *gin.Context) {
	var req request.AcknowledgeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	HandleSuccess(c, h.netSvc.AcknowledgeEntry(req.EntryId))
}
