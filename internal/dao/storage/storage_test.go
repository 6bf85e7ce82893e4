package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"netctl_server/internal/config"
	"netctl_server/internal/model"
	"netctl_server/pkg/errorx"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func testBundle(sessionId string) *model.SessionBundle {
	start := time.Date(2024, 6, 1, 18, 0, 0, 0, time.UTC)
	return &model.SessionBundle{
		Session: model.NetSession{
			Id:           sessionId,
			Name:         "Test Net",
			NetControlOp: "W1ABC",
			DateTime:     start,
			Status:       model.StatusActive,
		},
		Participants: []model.Participant{
			{Id: "p-1", Callsign: "W1ABC", TacticalCall: "NET", CheckInTime: start, CheckInNumber: 1},
		},
		LogEntries: []model.LogEntry{
			{Id: "e-1", EntryNumber: 1, Time: start, FromCallsign: "W1ABC", ToCallsign: "ALL", Message: "net open"},
		},
		LastAcknowledgedEntryId: "e-1",
	}
}

// newSqliteRepos 在临时目录创建 SQLite 后端，附带原始 db 句柄供测试直写
func newSqliteRepos(t *testing.T) (*Repositories, *gorm.DB) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "netctl_test.db")
	repos, err := Init(&config.StorageConfig{SqlitePath: path})
	if err != nil {
		t.Fatal(err)
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		t.Fatal(err)
	}
	return repos, db
}

// 两种后端行为一致，共用一套用例
func runBundleRepositoryTests(t *testing.T, repo BundleRepository) {
	// 初始状态：指针为空，读取未知网次报 not found
	if activeId, err := repo.ActiveSessionId(); err != nil || activeId != "" {
		t.Fatalf("initial active = (%q, %v), want empty", activeId, err)
	}
	if _, err := repo.Load("missing"); !errorx.IsNotFound(err) {
		t.Fatalf("load missing = %v, want CodeNotFound", err)
	}

	// 保存副作用：活动指针指向保存的网次
	bundle := testBundle("s-1")
	if err := repo.Save(bundle); err != nil {
		t.Fatal(err)
	}
	if activeId, _ := repo.ActiveSessionId(); activeId != "s-1" {
		t.Errorf("active after save = %q, want s-1", activeId)
	}

	loaded, err := repo.Load("s-1")
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Session.Name != "Test Net" || len(loaded.Participants) != 1 || len(loaded.LogEntries) != 1 {
		t.Errorf("loaded bundle = %+v", loaded)
	}
	if loaded.LastAcknowledgedEntryId != "e-1" {
		t.Errorf("lastAcked = %q", loaded.LastAcknowledgedEntryId)
	}

	// 整体覆盖写入
	bundle.Session.Name = "Renamed Net"
	bundle.LogEntries = append(bundle.LogEntries, model.LogEntry{
		Id: "e-2", EntryNumber: 2, Time: time.Now(), FromCallsign: "K2DEF", ToCallsign: "NC",
	})
	if err := repo.Save(bundle); err != nil {
		t.Fatal(err)
	}
	loaded, err = repo.Load("s-1")
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Session.Name != "Renamed Net" || len(loaded.LogEntries) != 2 {
		t.Errorf("overwritten bundle = %+v", loaded.Session)
	}

	// 指针清除与删除
	if err := repo.SetActiveSessionId(""); err != nil {
		t.Fatal(err)
	}
	if activeId, _ := repo.ActiveSessionId(); activeId != "" {
		t.Errorf("active after clear = %q, want empty", activeId)
	}
	if err := repo.Delete("s-1"); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.Load("s-1"); !errorx.IsNotFound(err) {
		t.Errorf("load after delete = %v, want CodeNotFound", err)
	}

	// 清除后指针必须可重建（重置网次后再新建是常规路径）
	if err := repo.SetActiveSessionId("s-2"); err != nil {
		t.Fatalf("set after clear failed: %v", err)
	}
	if activeId, _ := repo.ActiveSessionId(); activeId != "s-2" {
		t.Errorf("active after re-set = %q, want s-2", activeId)
	}

	// 删除后同一网次 ID 必须可重新保存
	if err := repo.Save(testBundle("s-1")); err != nil {
		t.Fatalf("save after delete failed: %v", err)
	}
	if _, err := repo.Load("s-1"); err != nil {
		t.Errorf("load after re-save = %v", err)
	}
	if activeId, _ := repo.ActiveSessionId(); activeId != "s-1" {
		t.Errorf("active after re-save = %q, want s-1", activeId)
	}
}

func runCallsignCacheTests(t *testing.T, cache CallsignCacheRepository) {
	ctx := context.Background()

	if _, err := cache.Get(ctx, "W1ABC"); !errorx.IsNotFound(err) {
		t.Fatalf("get on empty cache = %v, want CodeNotFound", err)
	}

	entry := &model.CallsignCacheEntry{
		Result:   model.CallsignLookupResult{Callsign: "W1ABC", Name: "Alice Smith", Country: "USA"},
		CachedAt: time.Date(2024, 6, 1, 18, 0, 0, 0, time.UTC),
	}
	if err := cache.Put(ctx, "W1ABC", entry); err != nil {
		t.Fatal(err)
	}
	got, err := cache.Get(ctx, "W1ABC")
	if err != nil {
		t.Fatal(err)
	}
	if got.Result.Name != "Alice Smith" {
		t.Errorf("cached result = %+v", got.Result)
	}

	// 覆盖写入
	entry.Result.Name = "Alice Jones"
	if err := cache.Put(ctx, "W1ABC", entry); err != nil {
		t.Fatal(err)
	}
	got, err = cache.Get(ctx, "W1ABC")
	if err != nil {
		t.Fatal(err)
	}
	if got.Result.Name != "Alice Jones" {
		t.Errorf("overwritten result = %+v", got.Result)
	}
}

func TestMemoryBundleRepository(t *testing.T) {
	runBundleRepositoryTests(t, NewMemoryRepositories().Bundle)
}

func TestMemoryCallsignCache(t *testing.T) {
	runCallsignCacheTests(t, NewMemoryRepositories().CallsignCache)
}

func TestSqliteBundleRepository(t *testing.T) {
	repos, _ := newSqliteRepos(t)
	runBundleRepositoryTests(t, repos.Bundle)
}

func TestSqliteCallsignCache(t *testing.T) {
	repos, _ := newSqliteRepos(t)
	runCallsignCacheTests(t, repos.CallsignCache)
}

func TestSqliteCorruptBundleTreatedAsMissing(t *testing.T) {
	repos, db := newSqliteRepos(t)

	// 直写损坏的 JSON 数据
	record := SessionBundleRecord{SessionId: "s-corrupt", Data: "{not valid json"}
	if err := db.Create(&record).Error; err != nil {
		t.Fatal(err)
	}

	if _, err := repos.Bundle.Load("s-corrupt"); !errorx.IsNotFound(err) {
		t.Errorf("corrupt bundle load = %v, want CodeNotFound", err)
	}
}

func TestSqliteActivePointerSurvivesResetCycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "netctl_test.db")
	conf := &config.StorageConfig{SqlitePath: path}

	repos, err := Init(conf)
	if err != nil {
		t.Fatal(err)
	}
	// 保存 -> 重置（删数据包、清指针）-> 新建网次
	if err := repos.Bundle.Save(testBundle("s-old")); err != nil {
		t.Fatal(err)
	}
	if err := repos.Bundle.Delete("s-old"); err != nil {
		t.Fatal(err)
	}
	if err := repos.Bundle.SetActiveSessionId(""); err != nil {
		t.Fatal(err)
	}
	if err := repos.Bundle.Save(testBundle("s-new")); err != nil {
		t.Fatalf("save after reset failed: %v", err)
	}

	// 重启后必须恢复到新网次
	reopened, err := Init(conf)
	if err != nil {
		t.Fatal(err)
	}
	activeId, err := reopened.Bundle.ActiveSessionId()
	if err != nil {
		t.Fatal(err)
	}
	if activeId != "s-new" {
		t.Errorf("active after reset cycle = %q, want s-new", activeId)
	}
	if _, err := reopened.Bundle.Load("s-new"); err != nil {
		t.Errorf("load after reset cycle = %v", err)
	}
}

func TestSqlitePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "netctl_test.db")
	conf := &config.StorageConfig{SqlitePath: path}

	repos, err := Init(conf)
	if err != nil {
		t.Fatal(err)
	}
	if err := repos.Bundle.Save(testBundle("s-1")); err != nil {
		t.Fatal(err)
	}

	// 重新打开同一数据库文件
	reopened, err := Init(conf)
	if err != nil {
		t.Fatal(err)
	}
	if activeId, _ := reopened.Bundle.ActiveSessionId(); activeId != "s-1" {
		t.Errorf("active after reopen = %q, want s-1", activeId)
	}
	if _, err := reopened.Bundle.Load("s-1"); err != nil {
		t.Errorf("load after reopen = %v", err)
	}
}
