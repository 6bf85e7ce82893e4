package request

// CreateSessionRequest 创建网次请求
// 使用位置:
//   - internal/handler/net_handler.go: CreateSession
//   - internal/service/net/service.go: CreateSession
type CreateSessionRequest struct {
	Name           string `json:"name" binding:"required"`         // 网次名称，必填
	Frequency      string `json:"frequency"`                       // 通联频率
	NetControlOp   string `json:"netControlOp" binding:"required"` // 网控操作员呼号，必填
	NetControlName string `json:"netControlName"`                  // 网控操作员姓名
	PreparedBy     string `json:"preparedBy"`                      // 填表人姓名
}
