// Package model 定义领域实体模型
// 本文件定义呼号目录查询结果及其缓存条目
package model

import "time"

// CallsignLookupResult 呼号目录查询的扁平化结果
// 由外部目录服务（hamdb.org）的嵌套响应解析而来
type CallsignLookupResult struct {
	Callsign string `json:"callsign"` // 呼号（目录返回值，缺失时回退为查询呼号）
	Name     string `json:"name"`     // 姓名（名 + 姓拼接）
	City     string `json:"city"`     // 城市
	State    string `json:"state"`    // 州/省
	Country  string `json:"country"`  // 国家，目录缺失时默认 "USA"
	Grid     string `json:"grid"`     // 网格定位（Maidenhead grid locator）
}

// CallsignCacheEntry 呼号查询缓存条目
// 以规范化呼号为键；只增不减，无 TTL、不主动失效
type CallsignCacheEntry struct {
	Result   CallsignLookupResult `json:"result"`   // 查询结果
	CachedAt time.Time            `json:"cachedAt"` // 写入缓存的时刻
}
