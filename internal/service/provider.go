// Package service 提供业务逻辑层
// 本文件实现 Service 层的依赖注入和聚合
package service

import (
	"netctl_server/internal/config"
	"netctl_server/internal/dao/storage"
	"netctl_server/internal/service/callsign"
	"netctl_server/internal/service/net"
)

// Services 聚合所有 Service 实例
// 作为依赖注入的入口，Handler 层通过此结构访问各个 Service
type Services struct {
	Net      NetService      // 通联网次 Service
	Callsign CallsignService // 呼号查询 Service
}

// NewServices 创建并注入所有 Service 实例
// 依赖注入流程：
//  1. 接收 Repository 聚合实例（SQLite 或降级后的内存实现）
//  2. 创建各个 Service 实例，注入 Repository 依赖
//  3. 返回 Services 聚合
//
// repos: Repository 层聚合实例（CallsignCache 可能已被替换为 Redis 后端）
// conf: 应用配置
func NewServices(repos *storage.Repositories, conf *config.Config) *Services {
	netSvc := net.NewNetService(repos.Bundle)
	callsignSvc := callsign.NewCallsignService(repos.CallsignCache, &conf.HamdbConfig)

	return &Services{
		Net:      netSvc,
		Callsign: callsignSvc,
	}
}
