package export

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"netctl_server/internal/model"
)

func TestBuildICS309PDF(t *testing.T) {
	data, err := BuildICS309PDF(sampleBundle())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("output is not a PDF document")
	}
}

func TestBuildICS309PDFPaginatesLongLog(t *testing.T) {
	bundle := sampleBundle()
	start := bundle.Session.DateTime
	for i := 0; i < 120; i++ {
		bundle.LogEntries = append(bundle.LogEntries, model.LogEntry{
			Id:           fmt.Sprintf("bulk-%d", i),
			EntryNumber:  i + 3,
			Time:         start.Add(time.Duration(i) * time.Minute),
			FromCallsign: "K2DEF",
			ToCallsign:   "NC",
			Message:      "periodic status report with enough text to exercise message wrapping across the column",
		})
	}

	data, err := BuildICS309PDF(bundle)
	if err != nil {
		t.Fatal(err)
	}
	// 长日志必然跨页（/Pages 根节点也会计入一次，单页文档计数为 2）
	if n := bytes.Count(data, []byte("/Type /Page")); n < 3 {
		t.Errorf("page objects = %d, want multi-page output", n)
	}
}

func TestBuildICS309PDFClosedSession(t *testing.T) {
	bundle := sampleBundle()
	bundle.Session.Status = model.StatusClosed
	end := bundle.Session.DateTime.Add(time.Hour)
	bundle.Session.EndTime = &end

	if _, err := BuildICS309PDF(bundle); err != nil {
		t.Fatal(err)
	}
}
