package respond

import "netctl_server/internal/model"

// ResolveCallsignRespond 令牌解析响应
// 使用位置:
//   - internal/handler/participant_handler.go: ResolveCallsign
type ResolveCallsignRespond struct {
	Display     string             `json:"display"`     // 显示文本，如 "NET (W1ABC)"，未匹配时为令牌原文
	Participant *model.Participant `json:"participant"` // 解析到的参与电台，未匹配时为 null
}
