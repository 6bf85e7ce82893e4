package request

// LoadSessionRequest 加载历史网次请求
// 使用位置:
//   - internal/handler/net_handler.go: LoadSession
type LoadSessionRequest struct {
	SessionId string `json:"sessionId" binding:"required"` // 要加载的网次 ID
}
