// Package router 提供 HTTP 路由注册
// 本文件定义网次生命周期相关的路由
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterNetRoutes 注册网次相关路由
// 包括网次的创建、启停、加载、重置与状态查询
func (rt *Router) RegisterNetRoutes(rg *gin.RouterGroup) {
	netGroup := rg.Group("/net")
	{
		// ===== 生命周期 =====
		netGroup.POST("/createSession", rt.handlers.Net.CreateSession) // 创建网次
		netGroup.POST("/openSession", rt.handlers.Net.OpenSession)     // 开始网次
		netGroup.POST("/closeSession", rt.handlers.Net.CloseSession)   // 结束网次
		netGroup.POST("/loadSession", rt.handlers.Net.LoadSession)     // 加载历史网次
		netGroup.POST("/reset", rt.handlers.Net.Reset)                 // 重置当前网次

		// ===== 查询 =====
		netGroup.GET("/state", rt.handlers.Net.State)             // 当前状态快照
		netGroup.GET("/elapsedTime", rt.handlers.Net.ElapsedTime) // 已进行时长
	}
}
