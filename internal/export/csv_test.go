package export

import (
	"strings"
	"testing"
	"time"

	"netctl_server/internal/model"
)

func sampleBundle() *model.SessionBundle {
	start := time.Date(2024, 6, 1, 18, 0, 0, 0, time.UTC)
	return &model.SessionBundle{
		Session: model.NetSession{
			Id:             "s-1",
			Name:           "Morning Net",
			Frequency:      "146.520 MHz",
			NetControlOp:   "W1ABC",
			NetControlName: "Alice",
			DateTime:       start,
			Status:         model.StatusActive,
		},
		Participants: []model.Participant{
			{Id: "p-1", Callsign: "W1ABC", TacticalCall: "NET", Name: "Alice", CheckInTime: start, CheckInNumber: 1},
			{Id: "p-2", Callsign: "K2DEF", TacticalCall: "OPS", Name: "Bob", Location: "Hilltop", CheckInTime: start.Add(time.Minute), CheckInNumber: 2},
		},
		LogEntries: []model.LogEntry{
			{Id: "e-1", EntryNumber: 1, Time: start.Add(2 * time.Minute), FromCallsign: "K2DEF", ToCallsign: "NC", Message: "check in"},
			{Id: "e-2", EntryNumber: 2, Time: start.Add(3 * time.Minute), FromCallsign: "W1ABC", ToCallsign: "ALL", Message: `please copy, "urgent" traffic`},
		},
	}
}

func TestBuildSessionCSVLayout(t *testing.T) {
	csv := BuildSessionCSV(sampleBundle())
	lines := strings.Split(csv, "\n")

	if lines[0] != "ICS 309 Communications Log" {
		t.Errorf("title line = %q", lines[0])
	}
	if lines[1] != "Net Name,Morning Net" {
		t.Errorf("name line = %q", lines[1])
	}
	if lines[3] != "Net Control,W1ABC - Alice" {
		t.Errorf("net control line = %q", lines[3])
	}
	// Message 列做标准 CSV 转义，内嵌引号翻倍
	if !strings.Contains(csv, `"please copy, ""urgent"" traffic"`) {
		t.Errorf("message not quoted: %s", csv)
	}
}

func TestCSVRoundTrip(t *testing.T) {
	original := sampleBundle()
	csv := BuildSessionCSV(original)

	restored, err := ParseSessionCSV(csv)
	if err != nil {
		t.Fatal(err)
	}

	if restored.Session.Name != "Morning Net" {
		t.Errorf("name = %q", restored.Session.Name)
	}
	if restored.Session.Frequency != "146.520 MHz" {
		t.Errorf("frequency = %q", restored.Session.Frequency)
	}
	if restored.Session.NetControlOp != "W1ABC" || restored.Session.NetControlName != "Alice" {
		t.Errorf("net control = %q / %q", restored.Session.NetControlOp, restored.Session.NetControlName)
	}

	if len(restored.Participants) != 2 {
		t.Fatalf("participants = %d, want 2", len(restored.Participants))
	}
	p := restored.Participants[1]
	if p.Callsign != "K2DEF" || p.TacticalCall != "OPS" || p.Location != "Hilltop" || p.CheckInNumber != 2 {
		t.Errorf("participant = %+v", p)
	}

	if len(restored.LogEntries) != 2 {
		t.Fatalf("logEntries = %d, want 2", len(restored.LogEntries))
	}
	// 含逗号与引号的消息原样恢复
	if restored.LogEntries[1].Message != `please copy, "urgent" traffic` {
		t.Errorf("message = %q", restored.LogEntries[1].Message)
	}
}

func TestImportForcesActiveWithFreshIds(t *testing.T) {
	original := sampleBundle()
	original.Session.Status = model.StatusClosed
	end := original.Session.DateTime.Add(time.Hour)
	original.Session.EndTime = &end

	restored, err := ParseSessionCSV(BuildSessionCSV(original))
	if err != nil {
		t.Fatal(err)
	}
	if restored.Session.Status != model.StatusActive {
		t.Errorf("status = %q, want forced active", restored.Session.Status)
	}
	if restored.Session.EndTime != nil {
		t.Error("endTime should be cleared on import")
	}
	if restored.Session.Id == original.Session.Id {
		t.Error("imported session should get a fresh id")
	}
	for i, p := range restored.Participants {
		if p.Id == original.Participants[i].Id {
			t.Errorf("participant %d kept old id", i)
		}
	}
	if restored.LastAcknowledgedEntryId != "" {
		t.Error("acknowledgement marker should not survive import")
	}
}

func TestImportRebuildsMissingNetControl(t *testing.T) {
	// 名册中没有网控操作员的导入文本
	csv := strings.Join([]string{
		"ICS 309 Communications Log",
		"Net Name,Evening Net",
		"Frequency,",
		"Net Control,W9XYZ - Dana",
		"Date/Time,2024-06-01T18:00:00Z",
		"",
		"Participants",
		"Check-In #,Callsign,Tactical,Name,Location,Time",
		"2,K2DEF,,Bob,,2024-06-01T18:01:00Z",
		"5,N3GHI,,Carol,,2024-06-01T18:02:00Z",
		"",
		"Communications Log",
		"Entry #,Time,From,To,Message",
	}, "\n")

	restored, err := ParseSessionCSV(csv)
	if err != nil {
		t.Fatal(err)
	}
	if len(restored.Participants) != 3 {
		t.Fatalf("participants = %d, want 3 with rebuilt net control", len(restored.Participants))
	}
	nc := restored.Participants[0]
	if nc.Callsign != "W9XYZ" || nc.TacticalCall != "NET" || nc.Name != "Dana" {
		t.Errorf("rebuilt net control = %+v", nc)
	}
	// 签到序号取现有最大值 +1
	if nc.CheckInNumber != 6 {
		t.Errorf("rebuilt checkInNumber = %d, want 6", nc.CheckInNumber)
	}
}

func TestImportTolerantFallbacks(t *testing.T) {
	csv := strings.Join([]string{
		"ICS 309 Communications Log",
		"Frequency,146.520",
		"Net Control,",
		"",
		"Participants",
		"Check-In #,Callsign,Tactical,Name,Location,Time",
		"abc,k2def,,,,not-a-time", // 序号与时间均非法
		",,,,,",                   // 空呼号行丢弃
		"",
		"Communications Log",
		"Entry #,Time,From,To,Message",
		"x,also-bad,W1ABC,NC,hello",
		",,,,", // 全空行丢弃
	}, "\n")

	restored, err := ParseSessionCSV(csv)
	if err != nil {
		t.Fatal(err)
	}
	if restored.Session.Name != "Imported Net" {
		t.Errorf("name fallback = %q", restored.Session.Name)
	}
	// 网控行为空时操作员回退为 "NET"
	if restored.Session.NetControlOp != "NET" {
		t.Errorf("netControlOp fallback = %q", restored.Session.NetControlOp)
	}

	var imported *model.Participant
	for i := range restored.Participants {
		if restored.Participants[i].Callsign == "K2DEF" {
			imported = &restored.Participants[i]
		}
	}
	if imported == nil {
		t.Fatal("expected imported participant K2DEF")
	}
	if imported.CheckInNumber != 1 {
		t.Errorf("checkInNumber fallback = %d, want 1", imported.CheckInNumber)
	}

	if len(restored.LogEntries) != 1 {
		t.Fatalf("logEntries = %d, want 1", len(restored.LogEntries))
	}
	if restored.LogEntries[0].EntryNumber != 1 || restored.LogEntries[0].Message != "hello" {
		t.Errorf("entry = %+v", restored.LogEntries[0])
	}
}

func TestImportRejectsEmptyInput(t *testing.T) {
	if _, err := ParseSessionCSV("   \n  "); err == nil {
		t.Fatal("expected error for blank input")
	}
}

func TestFilenames(t *testing.T) {
	session := &model.NetSession{Name: "Morning  Drill Net"}
	today := time.Now().UTC().Format("2006-01-02")

	if got := CSVFilename(session); got != "Morning_Drill_Net_"+today+".csv" {
		t.Errorf("csv filename = %q", got)
	}
	if got := PDFFilename(session); got != "ICS309_Morning_Drill_Net_"+today+".pdf" {
		t.Errorf("pdf filename = %q", got)
	}
}
