package version

import (
	"fmt"
	"runtime"
)

// 构建时通过 ldflags 注入
var (
	GoVersion  = runtime.Version()
	CommitId   string
	BuildTime  string
	AppVersion string
)

// String 启动日志里打印的一行版本信息
func String() string {
	return fmt.Sprintf("voice-bridge %s (commit: %s, built: %s, %s)", orDev(AppVersion), orDev(CommitId), orDev(BuildTime), GoVersion)
}

func orDev(s string) string {
	if s == "" {
		return "dev"
	}
	return s
}
