package request

// UpdateParticipantRequest 编辑参与电台请求
// 使用位置:
//   - internal/handler/participant_handler.go: UpdateParticipant
//   - internal/service/net/service.go: UpdateParticipant
//
// 可选字段使用指针区分"未提供"与"置空"：
// 仅提供的字段会被更新；呼号或战术呼号的字面值变化会触发历史日志的令牌改写
type UpdateParticipantRequest struct {
	Id           string  `json:"id" binding:"required"` // 参与电台 ID，必填
	Callsign     *string `json:"callsign"`              // 新呼号
	TacticalCall *string `json:"tacticalCall"`          // 新战术呼号
	Name         *string `json:"name"`                  // 新姓名
	Location     *string `json:"location"`              // 新位置
}
