// Package router 提供 HTTP 路由注册
// 本文件是路由注册的入口，聚合所有子模块的路由
package router

import (
	"netctl_server/internal/handler"

	"github.com/gin-gonic/gin"
)

// Router 路由管理器
// 持有 Handler 聚合对象，各子模块路由通过其方法注册
type Router struct {
	handlers *handler.Handlers
}

// NewRouter 创建路由管理器实例
// handlers: Handler 聚合对象
func NewRouter(handlers *handler.Handlers) *Router {
	return &Router{handlers: handlers}
}

// RegisterRoutes 注册所有路由
// 在 https_server.Init() 中调用
// 按模块分别注册各个路由组
func (rt *Router) RegisterRoutes(engine *gin.Engine) {
	root := engine.Group("")
	rt.RegisterNetRoutes(root)         // 网次生命周期路由
	rt.RegisterParticipantRoutes(root) // 参与电台路由
	rt.RegisterLogRoutes(root)         // 通联日志路由
	rt.RegisterExportRoutes(root)      // 导出导入路由
	rt.RegisterCallsignRoutes(root)    // 呼号查询路由
}
