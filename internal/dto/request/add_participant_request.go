package request

// AddParticipantRequest 电台签到请求
// 使用位置:
//   - internal/handler/participant_handler.go: AddParticipant
//   - internal/service/net/service.go: AddParticipant
//
// 呼号非空校验在此边界完成（binding:"required"），核心逻辑不再校验
type AddParticipantRequest struct {
	Callsign     string `json:"callsign" binding:"required"` // 电台呼号，必填
	TacticalCall string `json:"tacticalCall"`                // 战术呼号，可选
	Name         string `json:"name"`                        // 操作员姓名
	Location     string `json:"location"`                    // 所在位置
}
