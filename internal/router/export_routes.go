// Package router 提供 HTTP 路由注册
// 本文件定义导出导入相关的路由
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterExportRoutes 注册导出导入相关路由
// CSV/PDF 导出返回文件流，导入接收导出格式的 CSV 全文
func (rt *Router) RegisterExportRoutes(rg *gin.RouterGroup) {
	exportGroup := rg.Group("/export")
	{
		exportGroup.GET("/csv", rt.handlers.Export.ExportCSV)        // 导出 CSV
		exportGroup.GET("/pdf", rt.handlers.Export.ExportPDF)        // 导出 ICS-309 PDF
		exportGroup.POST("/importCsv", rt.handlers.Export.ImportCSV) // 从 CSV 导入
	}
}
