// Package net 实现通联网次的核心业务逻辑
// 本文件实现日志令牌到参与电台的解析（仅用于显示，不影响存储）
package net

import (
	"netctl_server/internal/dto/respond"
	"netctl_server/internal/model"
	"netctl_server/pkg/constants"
)

// ResolveCallsign 解析日志令牌
// 匹配顺序：精确呼号 -> 精确战术呼号 -> 保留令牌 "NC"
// "NC" 解析到网控操作员：即使没有任何电台的呼号字面等于 "NC"，
// 也按网次配置的网控呼号或战术呼号 "NET" 匹配
// 未匹配时 display 为令牌原文，participant 为 nil
func (s *netService) ResolveCallsign(token string) *respond.ResolveCallsignRespond {
	s.mu.Lock()
	defer s.mu.Unlock()

	participant := s.resolveLocked(token)
	display := token
	if participant != nil {
		if participant.TacticalCall != "" {
			display = participant.TacticalCall + " (" + participant.Callsign + ")"
		} else {
			display = participant.Callsign
		}
	}
	return &respond.ResolveCallsignRespond{
		Display:     display,
		Participant: participant,
	}
}

// resolveLocked 令牌解析的核心匹配，调用方必须已持有锁
func (s *netService) resolveLocked(token string) *model.Participant {
	// 1. 精确呼号匹配
	for i := range s.participants {
		if s.participants[i].Callsign == token {
			copied := s.participants[i]
			return &copied
		}
	}
	// 2. 精确战术呼号匹配
	for i := range s.participants {
		if s.participants[i].TacticalCall != "" && s.participants[i].TacticalCall == token {
			copied := s.participants[i]
			return &copied
		}
	}
	// 3. 保留令牌 "NC" -> 网控操作员
	if token == constants.NetControlToken && s.session != nil {
		for i := range s.participants {
			if s.participants[i].Callsign == s.session.NetControlOp ||
				s.participants[i].TacticalCall == constants.NetControlTactical {
				copied := s.participants[i]
				return &copied
			}
		}
	}
	return nil
}
