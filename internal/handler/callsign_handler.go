// Package handler 提供 HTTP 请求处理器
// 本文件处理呼号目录查询的 API 请求
package handler

import (
	"netctl_server/internal/dto/request"
	"netctl_server/internal/service"

	"github.com/gin-gonic/gin"
)

// CallsignHandler 呼号查询请求处理器
type CallsignHandler struct {
	callsignSvc service.CallsignService
}

// NewCallsignHandler 创建呼号查询处理器实例
// callsignSvc: 呼号查询服务接口
func NewCallsignHandler(callsignSvc service.CallsignService) *CallsignHandler {
	return &CallsignHandler{callsignSvc: callsignSvc}
}

// Lookup 查询呼号登记信息
// GET /callsign/lookup?callsign=xxx
// 查询参数: request.LookupCallsignRequest
// 响应: model.CallsignLookupResult，查无此呼号时为 null
func (h *CallsignHandler) Lookup(c *gin.Context) {
	var req request.LookupCallsignRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	result, err := h.callsignSvc.Lookup(c.Request.Context(), req.Callsign)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, result)
}
