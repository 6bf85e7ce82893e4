package request

// AddLogEntryRequest 追加通联日志请求
// 使用位置:
//   - internal/handler/log_handler.go: AddLogEntry
//   - internal/service/net/service.go: AddLogEntry
type AddLogEntryRequest struct {
	FromCallsign string `json:"fromCallsign" binding:"required"` // 发信方令牌，必填
	ToCallsign   string `json:"toCallsign"`                      // 收信方令牌，空白时默认 "NC"
	Message      string `json:"message"`                         // 消息内容，可为空
}
