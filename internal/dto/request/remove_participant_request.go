package request

// RemoveParticipantRequest 移除参与电台请求
// 使用位置:
//   - internal/handler/participant_handler.go: RemoveParticipant
type RemoveParticipantRequest struct {
	Id string `json:"id" binding:"required"` // 参与电台 ID，必填
}
