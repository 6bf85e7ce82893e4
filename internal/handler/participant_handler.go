// Package handler 提供 HTTP 请求处理器
// 本文件处理参与电台相关的 API 请求
package handler

import (
	"netctl_server/internal/dto/request"
	"netctl_server/internal/service"

	"github.com/gin-gonic/gin"
)

// ParticipantHandler 参与电台请求处理器
type ParticipantHandler struct {
	netSvc service.NetService
}

// NewParticipantHandler 创建参与电台处理器实例
// netSvc: 网次服务接口
func NewParticipantHandler(netSvc service.NetService) *ParticipantHandler {
	return &ParticipantHandler{netSvc: netSvc}
}

// AddParticipant 电台签到
// POST /participant/add
// 请求体: request.AddParticipantRequest
// 响应: respond.NetStateRespond
func (h *ParticipantHandler) AddParticipant(c *gin.Context) {
	var req request.AddParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	HandleSuccess(c, h.netSvc.AddParticipant(req))
}

// UpdateParticipant 编辑参与电台
// POST /participant/update
// 请求体: request.UpdateParticipantRequest
// 响应: respond.NetStateRespond
func (h *ParticipantHandler) UpdateParticipant(c *gin.Context) {
	var req request.UpdateParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	HandleSuccess(c, h.netSvc.UpdateParticipant(req))
}

// RemoveParticipant 移除参与电台
// POST /participant/remove
// 请求体: request.RemoveParticipantRequest
// 响应: respond.NetStateRespond
func (h *ParticipantHandler) RemoveParticipant(c *gin.Context) {
	var req request.RemoveParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	HandleSuccess(c, h.netSvc.RemoveParticipant(req.Id))
}

// ResolveCallsign 解析日志令牌到参与电台
// GET /participant/resolve?token=xxx
// 查询参数: request.ResolveCallsignRequest
// 响应: respond.ResolveCallsignRespond
func (h *ParticipantHandler) ResolveCallsign(c *gin.Context) {
	var req request.ResolveCallsignRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	HandleSuccess(c, h.netSvc.ResolveCallsign(req.Token))
}
