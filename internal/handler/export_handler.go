// Package handler 提供 HTTP 请求处理器
// 本文件处理网次导出与导入的 API 请求
// 导出接口直接返回文件流（附 Content-Disposition），不走统一 JSON 响应
package handler

import (
	"fmt"
	"net/http"

	"netctl_server/internal/dto/request"
	"netctl_server/internal/service"

	"github.com/gin-gonic/gin"
)

// ExportHandler 导出导入请求处理器
type ExportHandler struct {
	netSvc service.NetService
}

// NewExportHandler 创建导出处理器实例
// netSvc: 网次服务接口
func NewExportHandler(netSvc service.NetService) *ExportHandler {
	return &ExportHandler{netSvc: netSvc}
}

// ExportCSV 导出当前网次为 CSV 文件
// GET /export/csv
// 响应: text/csv 文件流
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	filename, content, err := h.netSvc.ExportCSV()
	if err != nil {
		HandleError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(content))
}

// ExportPDF 导出当前网次为 ICS-309 PDF 文件
// GET /export/pdf
// 响应: application/pdf 文件流
func (h *ExportHandler) ExportPDF(c *gin.Context) {
	filename, content, err := h.netSvc.ExportPDF()
	if err != nil {
		HandleError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", content)
}

// ImportCSV 从 CSV 导入并恢复网次
// POST /export/importCsv
// 请求体: request.ImportCsvRequest
// 响应: respond.NetStateRespond
func (h *ExportHandler) ImportCSV(c *gin.Context) {
	var req request.ImportCsvRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	state, err := h.netSvc.ImportCSV(req.CsvText)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, state)
}
