// Package export 实现网次的导出与导入编解码
// 本文件实现 CSV 导出：固定的分节纯文本布局
//
// 已知格式局限（沿袭原格式，不做静默修正）：只有 Message 列做标准 CSV
// 引号转义，其余字段原样写出——呼号/姓名/位置中若含逗号会破坏列对齐
package export

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"netctl_server/internal/model"
)

// 分节布局中的固定文本
const (
	csvTitle             = "ICS 309 Communications Log"
	csvParticipantsLabel = "Participants"
	csvLogLabel          = "Communications Log"
	csvParticipantsHead  = "Check-In #,Callsign,Tactical,Name,Location,Time"
	csvLogHead           = "Entry #,Time,From,To,Message"
)

// whitespaceRe 文件名中把连续空白压成单个下划线
var whitespaceRe = regexp.MustCompile(`\s+`)

// BuildSessionCSV 将网次数据包序列化为 CSV 文本
// 布局：元数据块、空行、参与电台节、空行、通联日志节；行以 \n 连接
func BuildSessionCSV(bundle *model.SessionBundle) string {
	session := &bundle.Session

	lines := make([]string, 0, 8+len(bundle.Participants)+len(bundle.LogEntries))
	lines = append(lines, csvTitle)
	lines = append(lines, "Net Name,"+session.Name)
	lines = append(lines, "Frequency,"+session.Frequency)
	lines = append(lines, "Net Control,"+session.NetControlOp+" - "+session.NetControlName)
	lines = append(lines, "Date/Time,"+formatInstant(session.DateTime))
	lines = append(lines, "")

	lines = append(lines, csvParticipantsLabel)
	lines = append(lines, csvParticipantsHead)
	for _, p := range bundle.Participants {
		lines = append(lines, strings.Join([]string{
			strconv.Itoa(p.CheckInNumber),
			p.Callsign,
			p.TacticalCall,
			p.Name,
			p.Location,
			formatInstant(p.CheckInTime),
		}, ","))
	}
	lines = append(lines, "")

	lines = append(lines, csvLogLabel)
	lines = append(lines, csvLogHead)
	for _, e := range bundle.LogEntries {
		lines = append(lines, strings.Join([]string{
			strconv.Itoa(e.EntryNumber),
			formatInstant(e.Time),
			e.FromCallsign,
			e.ToCallsign,
			quoteField(e.Message),
		}, ","))
	}

	return strings.Join(lines, "\n")
}

// CSVFilename 构造 CSV 下载文件名：<网次名（空白转下划线）>_<ISO 日期>.csv
func CSVFilename(session *model.NetSession) string {
	return underscoreName(session.Name) + "_" + time.Now().UTC().Format("2006-01-02") + ".csv"
}

// PDFFilename 构造 PDF 下载文件名：ICS309_<网次名（空白转下划线）>_<ISO 日期>.pdf
func PDFFilename(session *model.NetSession) string {
	return "ICS309_" + underscoreName(session.Name) + "_" + time.Now().UTC().Format("2006-01-02") + ".pdf"
}

// quoteField 标准 CSV 引号包裹：内嵌引号翻倍转义
// 仅用于 Message 列
func quoteField(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}

// formatInstant 时刻统一输出 RFC3339（UTC），与持久化 JSON 的格式一致
func formatInstant(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// underscoreName 网次名中的空白折叠为下划线
func underscoreName(name string) string {
	return whitespaceRe.ReplaceAllString(name, "_")
}
