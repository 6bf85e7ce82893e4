// Package router 提供 HTTP 路由注册
// 本文件定义通联日志相关的路由
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterLogRoutes 注册通联日志相关路由
func (rt *Router) RegisterLogRoutes(rg *gin.RouterGroup) {
	logGroup := rg.Group("/log")
	{
		logGroup.POST("/add", rt.handlers.Log.AddLogEntry)              // 追加日志
		logGroup.POST("/acknowledge", rt.handlers.Log.AcknowledgeEntry) // 标记已确认
	}
}
