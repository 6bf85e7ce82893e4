package respond

// ElapsedTimeRespond 网次已进行时长响应
// 使用位置:
//   - internal/handler/net_handler.go: ElapsedTime
type ElapsedTimeRespond struct {
	ElapsedMs int64 `json:"elapsedMs"` // 已进行时长（毫秒），非 active 状态恒为 0
}
