// Package export 实现网次的导出与导入编解码
// 本文件实现 CSV 导入：解析导出格式的分节布局，重建网次数据包
//
// 容错策略：缺字段、非数字序号等异常一律回退默认值（顺序重编号），
// 不拒绝导入；只有完全空白的输入才报错
package export

import (
	"strconv"
	"strings"
	"time"

	"netctl_server/internal/model"
	"netctl_server/pkg/constants"
	"netctl_server/pkg/errorx"

	"github.com/google/uuid"
)

// ParseSessionCSV 将导出格式的 CSV 文本解析为网次数据包
// 重建规则：
//   - 网次获得全新 ID；无论导出时状态如何，一律恢复为 active（导入即继续通联）
//   - 参与电台与日志条目均分配全新 ID
//   - 名册中缺少网控操作员时自动补建（前插，签到序号取 max+1）
func ParseSessionCSV(csvText string) (*model.SessionBundle, error) {
	if strings.TrimSpace(csvText) == "" {
		return nil, errorx.New(errorx.CodeImportFailed, "CSV 内容为空")
	}

	// 统一换行符
	normalized := strings.ReplaceAll(csvText, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	lines := strings.Split(normalized, "\n")

	// 元数据块按标签取值
	name := valueAfterLabel(lines, "Net Name")
	if name == "" {
		name = "Imported Net"
	}
	frequency := valueAfterLabel(lines, "Frequency")

	netControlLine := valueAfterLabel(lines, "Net Control")
	netControlOp, netControlName := splitNetControl(netControlLine)

	dateTime := time.Now()
	if raw := valueAfterLabel(lines, "Date/Time"); raw != "" {
		if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
			dateTime = parsed
		}
	}

	// 分节扫描
	const (
		sectionNone = iota
		sectionParticipants
		sectionLog
	)
	section := sectionNone

	var participants []model.Participant
	var logEntries []model.LogEntry

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if line == csvParticipantsLabel {
			section = sectionParticipants
			continue
		}
		if line == csvLogLabel {
			section = sectionLog
			continue
		}
		// 跳过各节的表头行
		if strings.HasPrefix(line, "Check-In #") || strings.HasPrefix(line, "Entry #") {
			continue
		}
		if section == sectionNone {
			continue
		}

		fields := parseCSVLine(line)
		switch section {
		case sectionParticipants:
			if p, ok := parseParticipantRow(fields, dateTime, len(participants)); ok {
				participants = append(participants, p)
			}
		case sectionLog:
			if e, ok := parseLogEntryRow(fields, dateTime, len(logEntries)); ok {
				logEntries = append(logEntries, e)
			}
		}
	}

	// 网控操作员缺失时补建
	netControlExists := false
	for _, p := range participants {
		if p.Callsign == netControlOp {
			netControlExists = true
			break
		}
	}
	if !netControlExists {
		nextCheckIn := 0
		for _, p := range participants {
			if p.CheckInNumber > nextCheckIn {
				nextCheckIn = p.CheckInNumber
			}
		}
		netControl := model.Participant{
			Id:            uuid.NewString(),
			Callsign:      netControlOp,
			TacticalCall:  constants.NetControlTactical,
			Name:          netControlName,
			Location:      "",
			CheckInTime:   dateTime,
			CheckInNumber: nextCheckIn + 1,
		}
		participants = append([]model.Participant{netControl}, participants...)
	}

	session := model.NetSession{
		Id:             uuid.NewString(),
		Name:           name,
		Frequency:      frequency,
		NetControlOp:   netControlOp,
		NetControlName: netControlName,
		DateTime:       dateTime,
		EndTime:        nil,
		Status:         model.StatusActive,
	}

	return &model.SessionBundle{
		Session:                 session,
		Participants:            participants,
		LogEntries:              logEntries,
		LastAcknowledgedEntryId: "",
	}, nil
}

// parseCSVLine 逐字符解析一行 CSV
// 支持引号包裹字段及翻倍引号转义，与导出端的 quoteField 配对
func parseCSVLine(line string) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		ch := line[i]
		if inQuotes {
			if ch == '"' && i+1 < len(line) && line[i+1] == '"' {
				current.WriteByte('"')
				i++
			} else if ch == '"' {
				inQuotes = false
			} else {
				current.WriteByte(ch)
			}
			continue
		}
		switch ch {
		case ',':
			fields = append(fields, current.String())
			current.Reset()
		case '"':
			inQuotes = true
		default:
			current.WriteByte(ch)
		}
	}
	fields = append(fields, current.String())
	return fields
}

// valueAfterLabel 在元数据块中查找 "标签,值" 形式的行并取值
// 值本身含逗号时重新拼回（如 Net Control 的 "OP - Name" 行不受影响）
func valueAfterLabel(lines []string, label string) string {
	prefix := label + ","
	for _, line := range lines {
		if strings.HasPrefix(line, prefix) {
			fields := parseCSVLine(line)
			if len(fields) < 2 {
				return ""
			}
			return strings.TrimSpace(strings.Join(fields[1:], ","))
		}
	}
	return ""
}

// splitNetControl 拆开 "OP - Name" 形式的网控行
// 姓名中出现 " - " 时归入姓名（只按第一个分隔符拆）
func splitNetControl(line string) (op string, name string) {
	parts := strings.Split(line, " - ")
	op = strings.ToUpper(strings.TrimSpace(parts[0]))
	if op == "" {
		op = constants.NetControlTactical
	}
	if len(parts) > 1 {
		name = strings.TrimSpace(strings.Join(parts[1:], " - "))
	}
	return op, name
}

// parseParticipantRow 解析参与电台数据行
// 列：Check-In #, Callsign, Tactical, Name, Location, Time
// 呼号为空的行丢弃；序号非数字时按当前列表长度顺序重编号
func parseParticipantRow(fields []string, fallbackTime time.Time, parsedCount int) (model.Participant, bool) {
	callsign := strings.ToUpper(strings.TrimSpace(fieldAt(fields, 1)))
	if callsign == "" {
		return model.Participant{}, false
	}

	checkInNumber, err := strconv.Atoi(strings.TrimSpace(fieldAt(fields, 0)))
	if err != nil || checkInNumber <= 0 {
		checkInNumber = parsedCount + 1
	}

	checkInTime := fallbackTime
	if raw := strings.TrimSpace(fieldAt(fields, 5)); raw != "" {
		if parsed, perr := time.Parse(time.RFC3339, raw); perr == nil {
			checkInTime = parsed
		}
	}

	return model.Participant{
		Id:            uuid.NewString(),
		Callsign:      callsign,
		TacticalCall:  strings.TrimSpace(fieldAt(fields, 2)),
		Name:          strings.TrimSpace(fieldAt(fields, 3)),
		Location:      strings.TrimSpace(fieldAt(fields, 4)),
		CheckInTime:   checkInTime,
		CheckInNumber: checkInNumber,
	}, true
}

// parseLogEntryRow 解析通联日志数据行
// 列：Entry #, Time, From, To, Message
// From/To/Message 全空的行丢弃；序号非数字时顺序重编号
func parseLogEntryRow(fields []string, fallbackTime time.Time, parsedCount int) (model.LogEntry, bool) {
	from := strings.TrimSpace(fieldAt(fields, 2))
	to := strings.TrimSpace(fieldAt(fields, 3))
	message := strings.TrimSpace(fieldAt(fields, 4))
	if from == "" && to == "" && message == "" {
		return model.LogEntry{}, false
	}

	entryNumber, err := strconv.Atoi(strings.TrimSpace(fieldAt(fields, 0)))
	if err != nil || entryNumber <= 0 {
		entryNumber = parsedCount + 1
	}

	entryTime := fallbackTime
	if raw := strings.TrimSpace(fieldAt(fields, 1)); raw != "" {
		if parsed, perr := time.Parse(time.RFC3339, raw); perr == nil {
			entryTime = parsed
		}
	}

	return model.LogEntry{
		Id:           uuid.NewString(),
		EntryNumber:  entryNumber,
		Time:         entryTime,
		FromCallsign: from,
		ToCallsign:   to,
		Message:      message,
	}, true
}

// fieldAt 越界安全的字段取值
func fieldAt(fields []string, idx int) string {
	if idx < len(fields) {
		return fields[idx]
	}
	return ""
}
