// Package redis 提供 Redis 后端的呼号缓存实现（cacheConfig.mode = "redis"）
// 使用 github.com/redis/go-redis/v9 作为底层客户端
// 与 SQLite 后端语义一致：只增不减，写入时不设置 TTL，条目永不过期
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"netctl_server/internal/config"
	"netctl_server/internal/dao/storage"
	"netctl_server/internal/model"
	"netctl_server/pkg/constants"
	"netctl_server/pkg/errorx"

	"github.com/redis/go-redis/v9"
)

// callsignCacheRepository storage.CallsignCacheRepository 接口的 Redis 实现
type callsignCacheRepository struct {
	client *redis.Client // Redis 客户端实例
}

// Init 初始化 Redis 连接并返回呼号缓存 Repository
// 启动时 Ping 一次确认可达；不可达时返回错误，由 main 降级到本地缓存
func Init(conf *config.CacheConfig) (storage.CallsignCacheRepository, error) {
	// 拼接地址：host:port
	addr := conf.Host + ":" + strconv.Itoa(conf.Port)

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: conf.Password,
		DB:       conf.Db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, errorx.Wrapf(err, errorx.CodeCacheError, "连接 Redis %s", addr)
	}

	return &callsignCacheRepository{client: client}, nil
}

// cacheKey 构造呼号缓存的 Redis 键
func cacheKey(callsign string) string {
	return constants.CallsignCacheKey + callsign
}

// Get 按规范化呼号读取缓存条目
// 键不存在返回 CodeNotFound；JSON 损坏同样按未命中处理
func (r *callsignCacheRepository) Get(ctx context.Context, callsign string) (*model.CallsignCacheEntry, error) {
	raw, err := r.client.Get(ctx, cacheKey(callsign)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errorx.Newf(errorx.CodeNotFound, "呼号缓存未命中 callsign=%s", callsign)
		}
		return nil, errorx.Wrapf(err, errorx.CodeCacheError, "redis get callsign=%s", callsign)
	}

	var entry model.CallsignCacheEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return nil, errorx.Wrapf(err, errorx.CodeNotFound, "呼号缓存损坏 callsign=%s", callsign)
	}
	return &entry, nil
}

// Put 写入缓存条目，覆盖同呼号的旧值
// 过期时间传 0：条目永不过期（缓存无淘汰策略）
func (r *callsignCacheRepository) Put(ctx context.Context, callsign string, entry *model.CallsignCacheEntry) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return errorx.Wrap(err, errorx.CodeCacheError, "序列化呼号缓存条目")
	}
	if err := r.client.Set(ctx, cacheKey(callsign), string(raw), 0).Err(); err != nil {
		return errorx.Wrapf(err, errorx.CodeCacheError, "redis set callsign=%s", callsign)
	}
	return nil
}
