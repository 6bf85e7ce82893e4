package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"netctl_server/internal/config"
	"netctl_server/internal/dao/storage"
	"netctl_server/internal/handler"
	"netctl_server/internal/router"
	"netctl_server/internal/service"
	"netctl_server/pkg/errorx"

	"github.com/gin-gonic/gin"
)

// newTestEngine 组装 内存存储 -> Service -> Handler -> 路由 的完整链路
func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if err := handler.InitTrans("zh"); err != nil {
		t.Fatal(err)
	}

	repos := storage.NewMemoryRepositories()
	conf := config.GetConfig()
	services := service.NewServices(repos, conf)
	handlers := handler.NewHandlers(services)

	engine := gin.New()
	rt := router.NewRouter(handlers)
	rt.RegisterRoutes(engine)
	return engine
}

// doJSON 发送 JSON 请求并解析统一响应结构
func doJSON(t *testing.T, engine *gin.Engine, method, path, body string) (int, handler.ResponseData) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var resp handler.ResponseData
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return w.Code, resp
}

func TestSessionLifecycleOverHTTP(t *testing.T) {
	engine := newTestEngine(t)

	status, resp := doJSON(t, engine, http.MethodPost, "/net/createSession",
		`{"name":"Morning Net","frequency":"146.520","netControlOp":"W1ABC","netControlName":"Alice"}`)
	if status != http.StatusOK || resp.Code != errorx.CodeSuccess {
		t.Fatalf("create = (%d, %d): %v", status, resp.Code, resp.Msg)
	}

	state, ok := resp.Data.(map[string]any)
	if !ok {
		t.Fatalf("data = %T", resp.Data)
	}
	session := state["session"].(map[string]any)
	if session["status"] != "pending" {
		t.Errorf("status = %v, want pending", session["status"])
	}

	_, resp = doJSON(t, engine, http.MethodPost, "/net/openSession", "")
	session = resp.Data.(map[string]any)["session"].(map[string]any)
	if session["status"] != "active" {
		t.Errorf("status after open = %v, want active", session["status"])
	}

	// 签到触发自动日志
	_, resp = doJSON(t, engine, http.MethodPost, "/participant/add", `{"callsign":"k2def","name":"Bob"}`)
	entries := resp.Data.(map[string]any)["logEntries"].([]any)
	if len(entries) != 1 {
		t.Fatalf("logEntries = %d, want 1 check-in entry", len(entries))
	}
	entry := entries[0].(map[string]any)
	if entry["fromCallsign"] != "K2DEF" || entry["toCallsign"] != "NC" || entry["message"] != "check in" {
		t.Errorf("check-in entry = %v", entry)
	}

	_, resp = doJSON(t, engine, http.MethodPost, "/net/closeSession", "")
	session = resp.Data.(map[string]any)["session"].(map[string]any)
	if session["status"] != "closed" || session["endTime"] == nil {
		t.Errorf("session after close = %v", session)
	}
}

func TestValidationErrorOverHTTP(t *testing.T) {
	engine := newTestEngine(t)

	// 缺少必填的 netControlOp
	status, resp := doJSON(t, engine, http.MethodPost, "/net/createSession", `{"name":"Net"}`)
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if resp.Code != errorx.CodeInvalidParam {
		t.Errorf("code = %d, want CodeInvalidParam", resp.Code)
	}
}

func TestLoadMissingSessionOverHTTP(t *testing.T) {
	engine := newTestEngine(t)

	_, resp := doJSON(t, engine, http.MethodPost, "/net/loadSession", `{"sessionId":"missing"}`)
	if resp.Code != errorx.CodeNotFound {
		t.Errorf("code = %d, want CodeNotFound", resp.Code)
	}
}

func TestExportWithoutSessionOverHTTP(t *testing.T) {
	engine := newTestEngine(t)

	req := httptest.NewRequest(http.MethodGet, "/export/csv", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var resp handler.ResponseData
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Code != errorx.CodeNoActiveSession {
		t.Errorf("code = %d, want CodeNoActiveSession", resp.Code)
	}
}

func TestExportCSVDownloadOverHTTP(t *testing.T) {
	engine := newTestEngine(t)
	doJSON(t, engine, http.MethodPost, "/net/createSession",
		`{"name":"Morning Net","netControlOp":"W1ABC"}`)

	req := httptest.NewRequest(http.MethodGet, "/export/csv", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if got := w.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/csv") {
		t.Errorf("content-type = %q", got)
	}
	if got := w.Header().Get("Content-Disposition"); !strings.Contains(got, "Morning_Net_") {
		t.Errorf("content-disposition = %q", got)
	}
	if !strings.HasPrefix(w.Body.String(), "ICS 309 Communications Log") {
		t.Errorf("body = %q", w.Body.String()[:40])
	}
}

func TestImportCsvRoundTripOverHTTP(t *testing.T) {
	engine := newTestEngine(t)
	doJSON(t, engine, http.MethodPost, "/net/createSession",
		`{"name":"Morning Net","netControlOp":"W1ABC"}`)
	doJSON(t, engine, http.MethodPost, "/net/closeSession", "")

	req := httptest.NewRequest(http.MethodGet, "/export/csv", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	csvText := w.Body.String()

	payload, err := json.Marshal(map[string]string{"csvText": csvText})
	if err != nil {
		t.Fatal(err)
	}
	_, resp := doJSON(t, engine, http.MethodPost, "/export/importCsv", string(payload))
	if resp.Code != errorx.CodeSuccess {
		t.Fatalf("import code = %d: %v", resp.Code, resp.Msg)
	}
	session := resp.Data.(map[string]any)["session"].(map[string]any)
	// 导入强制恢复为 active
	if session["status"] != "active" {
		t.Errorf("imported status = %v, want active", session["status"])
	}
	if session["name"] != "Morning Net" {
		t.Errorf("imported name = %v", session["name"])
	}
}

func TestResolveCallsignOverHTTP(t *testing.T) {
	engine := newTestEngine(t)
	doJSON(t, engine, http.MethodPost, "/net/createSession",
		`{"name":"Net","netControlOp":"W1ABC"}`)

	req := httptest.NewRequest(http.MethodGet, "/participant/resolve?token=NC", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var resp handler.ResponseData
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	data := resp.Data.(map[string]any)
	if data["display"] != "NET (W1ABC)" {
		t.Errorf("display = %v", data["display"])
	}
}
