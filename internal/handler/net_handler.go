// Package handler 提供 HTTP 请求处理器
// 本文件处理网次生命周期相关的 API 请求
package handler

import (
	"netctl_server/internal/dto/request"
	"netctl_server/internal/dto/respond"
	"netctl_server/internal/service"

	"github.com/gin-gonic/gin"
)

// NetHandler 网次请求处理器
// 通过构造函数注入 NetService，遵循依赖倒置原则
type NetHandler struct {
	netSvc service.NetService
}

// NewNetHandler 创建网次处理器实例
// netSvc: 网次服务接口
func NewNetHandler(netSvc service.NetService) *NetHandler {
	return &NetHandler{netSvc: netSvc}
}

// CreateSession 创建网次
// POST /net/createSession
// 请求体: request.CreateSessionRequest
// 响应: respond.NetStateRespond
func (h *NetHandler) CreateSession(c *gin.Context) {
	var req request.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	HandleSuccess(c, h.netSvc.CreateSession(req))
}

// OpenSession 开始网次
// POST /net/openSession
// 响应: respond.NetStateRespond
func (h *NetHandler) OpenSession(c *gin.Context) {
	HandleSuccess(c, h.netSvc.OpenSession())
}

// CloseSession 结束网次
// POST /net/closeSession
// 响应: respond.NetStateRespond
func (h *NetHandler) CloseSession(c *gin.Context) {
	HandleSuccess(c, h.netSvc.CloseSession())
}

// LoadSession 加载历史网次
// POST /net/loadSession
// 请求体: request.LoadSessionRequest
// 响应: respond.NetStateRespond
func (h *NetHandler) LoadSession(c *gin.Context) {
	var req request.LoadSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	state, err := h.netSvc.LoadSession(req.SessionId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, state)
}

// Reset 重置当前网次
// POST /net/reset
// 响应: respond.NetStateRespond
func (h *NetHandler) Reset(c *gin.Context) {
	HandleSuccess(c, h.netSvc.Reset())
}

// State 获取当前网次状态快照
// GET /net/state
// 响应: respond.NetStateRespond
func (h *NetHandler) State(c *gin.Context) {
	HandleSuccess(c, h.netSvc.State())
}

// ElapsedTime 获取网次已进行时长
// GET /net/elapsedTime
// 响应: respond.ElapsedTimeRespond
func (h *NetHandler) ElapsedTime(c *gin.Context) {
	HandleSuccess(c, respond.ElapsedTimeRespond{
		ElapsedMs: h.netSvc.ElapsedTime().Milliseconds(),
	})
}
