package request

// AcknowledgeEntryRequest 标记已确认日志条目请求
// 使用位置:
//   - internal/handler/log_handler.go: AcknowledgeEntry
type AcknowledgeEntryRequest struct {
	EntryId string `json:"entryId" binding:"required"` // 日志条目 ID，必填
}
