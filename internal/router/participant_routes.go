// Package router 提供 HTTP 路由注册
// 本文件定义参与电台相关的路由
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterParticipantRoutes 注册参与电台相关路由
// 包括电台签到、编辑、移除与令牌解析
func (rt *Router) RegisterParticipantRoutes(rg *gin.RouterGroup) {
	participantGroup := rg.Group("/participant")
	{
		participantGroup.POST("/add", rt.handlers.Participant.AddParticipant)       // 电台签到
		participantGroup.POST("/update", rt.handlers.Participant.UpdateParticipant) // 编辑电台
		participantGroup.POST("/remove", rt.handlers.Participant.RemoveParticipant) // 移除电台
		participantGroup.GET("/resolve", rt.handlers.Participant.ResolveCallsign)   // 令牌解析
	}
}
