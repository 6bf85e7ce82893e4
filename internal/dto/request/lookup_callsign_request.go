package request

// LookupCallsignRequest 呼号目录查询请求
// 使用位置:
//   - internal/handler/callsign_handler.go: Lookup
type LookupCallsignRequest struct {
	Callsign string `json:"callsign" form:"callsign" binding:"required"` // 待查询呼号
}
