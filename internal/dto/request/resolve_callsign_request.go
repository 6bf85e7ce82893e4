package request

// ResolveCallsignRequest 令牌解析请求（显示用）
// 使用位置:
//   - internal/handler/participant_handler.go: ResolveCallsign
type ResolveCallsignRequest struct {
	Token string `json:"token" form:"token" binding:"required"` // 日志令牌：呼号、战术呼号或 "NC"
}
