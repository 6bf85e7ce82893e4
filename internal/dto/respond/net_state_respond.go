package respond

import "netctl_server/internal/model"

// NetStateRespond 当前网次完整状态响应
// 几乎所有网次操作成功后都返回该结构，前端据此整体刷新视图
// 使用位置:
//   - internal/service/net/service.go: 各操作的返回值
type NetStateRespond struct {
	Session                 *model.NetSession   `json:"session"`                 // 网次元数据，无网次时为 null
	Participants            []model.Participant `json:"participants"`            // 参与电台列表
	LogEntries              []model.LogEntry    `json:"logEntries"`              // 通联日志列表
	LastAcknowledgedEntryId string              `json:"lastAcknowledgedEntryId"` // 最近已确认条目 ID，空串表示无
}
