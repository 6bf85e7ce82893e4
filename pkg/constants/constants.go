package constants

const (
	NetControlToken    = "NC"       // 日志中指代网控台的保留令牌
	NetControlTactical = "NET"      // 网控操作员固定的战术呼号
	CheckInMessage     = "check in" // 签到自动日志的消息内容

	ActiveSessionKey  = "activeSessionId"  // app_state 表中活动网次指针的键
	CallsignCacheKey  = "netctl:callsign:" // Redis 呼号缓存键前缀
	LookupTimeoutSecs = 10                 // 呼号查询 HTTP 默认超时（秒）
)
