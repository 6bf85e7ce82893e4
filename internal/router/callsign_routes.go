// Package router 提供 HTTP 路由注册
// 本文件定义呼号目录查询的路由
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterCallsignRoutes 注册呼号查询路由
func (rt *Router) RegisterCallsignRoutes(rg *gin.RouterGroup) {
	callsignGroup := rg.Group("/callsign")
	{
		callsignGroup.GET("/lookup", rt.handlers.Callsign.Lookup) // 查询呼号登记信息
	}
}
