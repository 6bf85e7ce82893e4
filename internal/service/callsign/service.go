// Package callsign 实现呼号目录查询业务逻辑
// 查询链路：规范化 -> 缓存 -> 外部目录服务（hamdb.org）-> 写缓存
// 任何网络/解析失败都降级为"无结果"，绝不向调用方抛出错误
package callsign

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"netctl_server/internal/config"
	"netctl_server/internal/dao/storage"
	"netctl_server/internal/model"

	"go.uber.org/zap"
)

// callsignService 呼号查询业务逻辑实现
// 通过构造函数注入缓存 Repository 依赖
type callsignService struct {
	cache   storage.CallsignCacheRepository // 呼号缓存（SQLite / Redis / 内存）
	client  *http.Client                    // 带超时的 HTTP 客户端（原实现无超时，这里补上显式截止时间）
	baseURL string                          // 目录服务地址
	appName string                          // 目录接口要求携带的应用标识
	now     func() time.Time                // 时钟，测试时可替换
}

// NewCallsignService 创建呼号查询服务实例
func NewCallsignService(cache storage.CallsignCacheRepository, conf *config.HamdbConfig) *callsignService {
	return &callsignService{
		cache:   cache,
		client:  &http.Client{Timeout: time.Duration(conf.TimeoutSeconds) * time.Second},
		baseURL: strings.TrimRight(conf.BaseURL, "/"),
		appName: conf.AppName,
		now:     time.Now,
	}
}

// ==================== 目录服务响应结构 ====================

// hamdbResponse hamdb.org 的嵌套响应：{"hamdb": {"callsign": {...}}}
type hamdbResponse struct {
	Hamdb hamdbData `json:"hamdb"`
}

// hamdbData 响应第二层
type hamdbData struct {
	Callsign *hamdbCallsign `json:"callsign"` // 缺失表示目录无此呼号
}

// hamdbCallsign 目录返回的呼号明细
type hamdbCallsign struct {
	Call    string `json:"call"`    // 呼号
	Fname   string `json:"fname"`   // 名
	Name    string `json:"name"`    // 姓
	Addr1   string `json:"addr1"`   // 地址行 1（街道）
	Addr2   string `json:"addr2"`   // 地址行 2（城市）
	State   string `json:"state"`   // 州/省
	Country string `json:"country"` // 国家
	Grid    string `json:"grid"`    // 网格定位
}

// Lookup 查询呼号
// 缓存命中立即返回（不做新鲜度检查）；未命中则请求目录服务，
// 成功后写入缓存再返回。失败路径统一返回 (nil, nil)，且不写缓存
func (s *callsignService) Lookup(ctx context.Context, callsign string) (*model.CallsignLookupResult, error) {
	normalized := strings.ToUpper(strings.TrimSpace(callsign))
	if normalized == "" {
		return nil, nil
	}

	// 1. 查缓存，命中直接返回
	if entry, err := s.cache.Get(ctx, normalized); err == nil {
		return &entry.Result, nil
	}

	// 2. 请求外部目录服务
	lookupURL := fmt.Sprintf("%s/v1/%s/json/%s", s.baseURL, url.PathEscape(normalized), s.appName)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		zap.L().Warn("构造呼号查询请求失败", zap.String("callsign", normalized), zap.Error(err))
		return nil, nil
	}
	resp, err := s.client.Do(req)
	if err != nil {
		zap.L().Warn("呼号查询请求失败", zap.String("callsign", normalized), zap.Error(err))
		return nil, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		zap.L().Warn("呼号查询返回非 200",
			zap.String("callsign", normalized),
			zap.Int("status", resp.StatusCode),
		)
		return nil, nil
	}

	// 3. 解析嵌套响应
	var data hamdbResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		zap.L().Warn("解析呼号查询响应失败", zap.String("callsign", normalized), zap.Error(err))
		return nil, nil
	}
	cs := data.Hamdb.Callsign
	if cs == nil {
		// 目录无此呼号：无结果，也不写缓存
		return nil, nil
	}

	// 4. 压平为查询结果
	nameParts := make([]string, 0, 2)
	if cs.Fname != "" {
		nameParts = append(nameParts, cs.Fname)
	}
	if cs.Name != "" {
		nameParts = append(nameParts, cs.Name)
	}
	result := model.CallsignLookupResult{
		Callsign: cs.Call,
		Name:     strings.Join(nameParts, " "),
		City:     cs.Addr2,
		State:    cs.State,
		Country:  cs.Country,
		Grid:     cs.Grid,
	}
	if result.Callsign == "" {
		result.Callsign = normalized
	}
	if result.Country == "" {
		result.Country = "USA"
	}

	// 5. 写缓存（尽力而为，失败不影响返回）
	entry := model.CallsignCacheEntry{Result: result, CachedAt: s.now()}
	if err := s.cache.Put(ctx, normalized, &entry); err != nil {
		zap.L().Warn("写入呼号缓存失败", zap.String("callsign", normalized), zap.Error(err))
	}
	return &result, nil
}
