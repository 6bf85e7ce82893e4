package callsign

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"netctl_server/internal/config"
	"netctl_server/internal/dao/storage"
	"netctl_server/pkg/errorx"
)

// newTestService 构造指向本地假目录服务的查询服务
func newTestService(t *testing.T, handler http.HandlerFunc) (*callsignService, *storage.Repositories) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	repos := storage.NewMemoryRepositories()
	svc := NewCallsignService(repos.CallsignCache, &config.HamdbConfig{
		BaseURL:        server.URL,
		TimeoutSeconds: 5,
		AppName:        "netctl",
	})
	return svc, repos
}

func TestLookupSuccessAndCacheWrite(t *testing.T) {
	requests := 0
	svc, repos := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		if r.URL.Path != "/v1/W1ABC/json/netctl" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(`{"hamdb":{"callsign":{
			"call":"W1ABC","fname":"Alice","name":"Smith",
			"addr1":"1 Main St","addr2":"Springfield","state":"MA","country":"","grid":"FN42"}}}`))
	})

	// 查询时呼号做规范化（去空白 + 大写）
	result, err := svc.Lookup(context.Background(), " w1abc ")
	if err != nil {
		t.Fatal(err)
	}
	if result == nil {
		t.Fatal("expected lookup result")
	}
	if result.Name != "Alice Smith" {
		t.Errorf("name = %q, want joined first/last", result.Name)
	}
	if result.City != "Springfield" || result.State != "MA" || result.Grid != "FN42" {
		t.Errorf("result = %+v", result)
	}
	// 国家缺失时默认 USA
	if result.Country != "USA" {
		t.Errorf("country = %q, want USA default", result.Country)
	}

	// 成功查询写入缓存
	if _, err := repos.CallsignCache.Get(context.Background(), "W1ABC"); err != nil {
		t.Errorf("cache entry missing after lookup: %v", err)
	}

	// 第二次查询命中缓存，不再请求目录服务
	if _, err := svc.Lookup(context.Background(), "W1ABC"); err != nil {
		t.Fatal(err)
	}
	if requests != 1 {
		t.Errorf("directory requests = %d, want 1 (second hit from cache)", requests)
	}
}

func TestLookupEmptyCallsign(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("directory should not be called for empty callsign")
	})
	result, err := svc.Lookup(context.Background(), "   ")
	if err != nil || result != nil {
		t.Errorf("empty callsign = (%v, %v), want (nil, nil)", result, err)
	}
}

func TestLookupNotFoundDoesNotCache(t *testing.T) {
	svc, repos := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		// 目录无此呼号时 callsign 字段缺失
		w.Write([]byte(`{"hamdb":{"messages":{"status":"NOT_FOUND"}}}`))
	})

	result, err := svc.Lookup(context.Background(), "XX9XX")
	if err != nil || result != nil {
		t.Fatalf("not-found lookup = (%v, %v), want (nil, nil)", result, err)
	}
	// 失败路径不写缓存
	if _, err := repos.CallsignCache.Get(context.Background(), "XX9XX"); !errorx.IsNotFound(err) {
		t.Error("not-found lookup should not create a cache entry")
	}
}

func TestLookupServerErrorDegrades(t *testing.T) {
	svc, repos := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	result, err := svc.Lookup(context.Background(), "W1ABC")
	if err != nil || result != nil {
		t.Fatalf("server error lookup = (%v, %v), want (nil, nil)", result, err)
	}
	if _, err := repos.CallsignCache.Get(context.Background(), "W1ABC"); !errorx.IsNotFound(err) {
		t.Error("failed lookup should not create a cache entry")
	}
}

func TestLookupMalformedResponseDegrades(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json at all"))
	})
	result, err := svc.Lookup(context.Background(), "W1ABC")
	if err != nil || result != nil {
		t.Fatalf("malformed lookup = (%v, %v), want (nil, nil)", result, err)
	}
}

func TestLookupCallFieldFallback(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"hamdb":{"callsign":{"fname":"Bob"}}}`))
	})
	result, err := svc.Lookup(context.Background(), "k2def")
	if err != nil || result == nil {
		t.Fatalf("lookup = (%v, %v)", result, err)
	}
	// 目录未回传呼号时回退为规范化的查询呼号
	if result.Callsign != "K2DEF" {
		t.Errorf("callsign = %q, want K2DEF fallback", result.Callsign)
	}
}
