// 本文件基于 go-pdf/fpdf 生成 ICS-309 通信日志 PDF
// 页面为信纸尺寸，坐标单位为 point，日志表可跨页续排
package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"netctl_server/internal/model"
	"netctl_server/pkg/errorx"

	"github.com/go-pdf/fpdf"
)

const (
	pdfMargin      = 50.0
	pdfPageWidth   = 612.0
	pdfPageHeight  = 792.0
	pdfLineHeight  = 10.0
	pdfRowPadding  = 6.0
	pdfMinRowH     = 15.0
	pdfFooterSpace = 60.0
)

// 日志表五列：序号 / 时间 / 发报方 / 收报方 / 内容
var logColWidths = [5]float64{30, 50, 70, 70, 200}
var logColHeads = [5]string{"#", "Time", "From", "To", "Message"}

// BuildICS309PDF 将网次数据包渲染为 ICS-309 格式的 PDF 文档
func BuildICS309PDF(bundle *model.SessionBundle) ([]byte, error) {
	session := bundle.Session

	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(false, pdfMargin)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetXY(pdfMargin, pdfPageHeight-35)
		pdf.CellFormat(pdfPageWidth-2*pdfMargin, 10,
			fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	// 标题
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(pdfMargin, pdfMargin)
	pdf.CellFormat(pdfPageWidth-2*pdfMargin, 18,
		"ICS 309 - COMMUNICATIONS LOG", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	// 表头信息框：事件名称与作业时段
	drawHeaderBox(pdf, &session, lastEntryTime(bundle))

	// 电台操作员与频率框
	drawOperatorBox(pdf, &session)

	// 签到名册
	drawRoster(pdf, bundle.Participants)

	// 通联日志表
	drawLogTable(pdf, bundle.LogEntries)

	// 制表人签名栏只出现在末页
	drawPreparedBy(pdf, &session)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errorx.Wrap(err, errorx.CodeExportFailed, "PDF 生成失败")
	}
	return buf.Bytes(), nil
}

// drawHeaderBox 绘制事件名称与作业时段框
// 未关闭的网次结束时间显示 "Present"；已关闭但缺结束时间时
// 依次回退到最后一条日志时间、开始时间
func drawHeaderBox(pdf *fpdf.Fpdf, session *model.NetSession, lastEntry *time.Time) {
	boxW := pdfPageWidth - 2*pdfMargin
	y := pdf.GetY()
	pdf.Rect(pdfMargin, y, boxW, 34, "D")
	pdf.Line(pdfMargin+boxW/2, y, pdfMargin+boxW/2, y+34)

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(pdfMargin+4, y+3)
	pdf.CellFormat(boxW/2-8, 8, "1. Incident Name", "", 0, "L", false, 0, "")
	pdf.SetXY(pdfMargin+boxW/2+4, y+3)
	pdf.CellFormat(boxW/2-8, 8, "2. Operational Period", "", 0, "L", false, 0, "")

	end := "Present"
	if session.Status == model.StatusClosed {
		switch {
		case session.EndTime != nil:
			end = formatPdfTime(*session.EndTime)
		case lastEntry != nil:
			end = formatPdfTime(*lastEntry)
		default:
			end = formatPdfTime(session.DateTime)
		}
	}
	period := fmt.Sprintf("Start: %s  End: %s", formatPdfTime(session.DateTime), end)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetXY(pdfMargin+4, y+14)
	pdf.CellFormat(boxW/2-8, 12, session.Name, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetXY(pdfMargin+boxW/2+4, y+14)
	pdf.CellFormat(boxW/2-8, 12, period, "", 0, "L", false, 0, "")

	pdf.SetY(y + 34 + 8)
}

// drawOperatorBox 绘制网控操作员与频率框
func drawOperatorBox(pdf *fpdf.Fpdf, session *model.NetSession) {
	boxW := pdfPageWidth - 2*pdfMargin
	y := pdf.GetY()
	pdf.Rect(pdfMargin, y, boxW, 34, "D")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(pdfMargin+4, y+3)
	pdf.CellFormat(boxW-8, 8, "3. Radio Operator (Net Control)", "", 0, "L", false, 0, "")

	operator := session.NetControlOp
	if session.NetControlName != "" {
		operator += " - " + session.NetControlName
	}
	if session.Frequency != "" {
		operator += "    Frequency: " + session.Frequency
	}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetXY(pdfMargin+4, y+14)
	pdf.CellFormat(boxW-8, 12, operator, "", 0, "L", false, 0, "")

	pdf.SetY(y + 34 + 8)
}

// drawRoster 绘制签到名册段落
// 每台电台格式为 "战术呼号 / 呼号 (姓名)"，逗号连接并按页宽折行
func drawRoster(pdf *fpdf.Fpdf, participants []model.Participant) {
	usableW := pdfPageWidth - 2*pdfMargin

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(usableW, 12,
		fmt.Sprintf("Checked-In Stations (%d):", len(participants)), "", 1, "L", false, 0, "")

	entries := make([]string, 0, len(participants))
	for _, p := range participants {
		label := p.Callsign
		if p.TacticalCall != "" {
			label = p.TacticalCall + " / " + p.Callsign
		}
		if p.Name != "" {
			label += " (" + p.Name + ")"
		}
		entries = append(entries, label)
	}
	text := strings.Join(entries, ", ")

	pdf.SetFont("Helvetica", "", 9)
	for _, line := range wrapText(pdf, text, usableW) {
		ensureSpace(pdf, pdfLineHeight, "Checked-In Stations (cont.):")
		pdf.CellFormat(usableW, pdfLineHeight, line, "", 1, "L", false, 0, "")
	}
	pdf.Ln(8)
}

// drawLogTable 绘制通联日志表，条目多时自动分页续排
func drawLogTable(pdf *fpdf.Fpdf, entries []model.LogEntry) {
	drawLogTableHeader(pdf, false)

	for _, entry := range entries {
		msgLines := wrapText(pdf, entry.Message, logColWidths[4]-8)
		if len(msgLines) == 0 {
			msgLines = []string{""}
		}
		rowH := float64(len(msgLines))*pdfLineHeight + pdfRowPadding
		if rowH < pdfMinRowH {
			rowH = pdfMinRowH
		}

		if pdf.GetY()+rowH > pdfPageHeight-pdfFooterSpace {
			pdf.AddPage()
			drawLogTableHeader(pdf, true)
		}

		y := pdf.GetY()
		x := pdfMargin
		cells := [4]string{
			fmt.Sprintf("%d", entry.EntryNumber),
			entry.Time.UTC().Format("15:04"),
			entry.FromCallsign,
			entry.ToCallsign,
		}
		pdf.SetFont("Helvetica", "", 8)
		for i, cell := range cells {
			pdf.Rect(x, y, logColWidths[i], rowH, "D")
			pdf.SetXY(x+4, y+3)
			pdf.CellFormat(logColWidths[i]-8, pdfLineHeight, cell, "", 0, "L", false, 0, "")
			x += logColWidths[i]
		}
		pdf.Rect(x, y, logColWidths[4], rowH, "D")
		for j, line := range msgLines {
			pdf.SetXY(x+4, y+3+float64(j)*pdfLineHeight)
			pdf.CellFormat(logColWidths[4]-8, pdfLineHeight, line, "", 0, "L", false, 0, "")
		}
		pdf.SetY(y + rowH)
	}
	pdf.Ln(8)
}

// drawLogTableHeader 绘制日志表标题与灰底表头行
func drawLogTableHeader(pdf *fpdf.Fpdf, continued bool) {
	title := "4. Log (Communications)"
	if continued {
		title += " (cont.)"
	}
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(pdfPageWidth-2*pdfMargin, 12, title, "", 1, "L", false, 0, "")

	y := pdf.GetY()
	x := pdfMargin
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(230, 230, 230)
	for i, head := range logColHeads {
		pdf.Rect(x, y, logColWidths[i], pdfMinRowH, "FD")
		pdf.SetXY(x+4, y+3)
		pdf.CellFormat(logColWidths[i]-8, pdfLineHeight, head, "", 0, "L", false, 0, "")
		x += logColWidths[i]
	}
	pdf.SetY(y + pdfMinRowH)
}

// drawPreparedBy 在末页底部绘制制表人与签名栏
func drawPreparedBy(pdf *fpdf.Fpdf, session *model.NetSession) {
	ensureSpace(pdf, 40, "")

	preparedBy := session.PreparedBy
	if preparedBy == "" {
		preparedBy = session.NetControlOp
	}

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(200, 12, "5. Prepared by: "+preparedBy, "", 0, "L", false, 0, "")

	y := pdf.GetY()
	pdf.Line(pdfMargin+260, y+10, pdfPageWidth-pdfMargin, y+10)
	pdf.SetXY(pdfMargin+260, y+12)
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(pdfPageWidth-2*pdfMargin-260, 8, "Signature", "", 1, "L", false, 0, "")
}

// ensureSpace 检查当前页剩余空间，不足时换页
// continuedTitle 非空时在新页重绘续排标题
func ensureSpace(pdf *fpdf.Fpdf, needed float64, continuedTitle string) {
	if pdf.GetY()+needed <= pdfPageHeight-pdfFooterSpace {
		return
	}
	pdf.AddPage()
	if continuedTitle != "" {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(pdfPageWidth-2*pdfMargin, 12, continuedTitle, "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
	}
}

// wrapText 按可用宽度将文本折成多行，单词过长时按字符硬切
func wrapText(pdf *fpdf.Fpdf, text string, width float64) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var lines []string
	var current string
	for _, word := range strings.Fields(text) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if pdf.GetStringWidth(candidate) <= width {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
			current = ""
		}
		// 单词本身超宽时硬切
		for pdf.GetStringWidth(word) > width {
			cut := len(word)
			for cut > 1 && pdf.GetStringWidth(word[:cut]) > width {
				cut--
			}
			lines = append(lines, word[:cut])
			word = word[cut:]
		}
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// lastEntryTime 取最后一条日志的时间，无日志时返回 nil
func lastEntryTime(bundle *model.SessionBundle) *time.Time {
	if len(bundle.LogEntries) == 0 {
		return nil
	}
	t := bundle.LogEntries[len(bundle.LogEntries)-1].Time
	return &t
}

// formatPdfTime 表头时段使用的时间格式
func formatPdfTime(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04")
}
