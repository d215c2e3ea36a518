package tilingconfig

import (
	"os"
	"strings"
)

const (
	LogLevelEnvKey = `TILEPLAN_CONFIG_LOG_LEVEL`
	NoColorEnvKey  = `TILEPLAN_CONFIG_NO_COLOR`
)

var ConfigEnvKeys = []string{
	LogLevelEnvKey,
	NoColorEnvKey,
}

var (
	LogLevel = `INFO`
	NoColor  = false
)

func init() {
	if val := os.Getenv(LogLevelEnvKey); len(val) > 0 {
		LogLevel = strings.ToUpper(val)
	}
	if val := os.Getenv(NoColorEnvKey); len(val) > 0 {
		NoColor = isTrue(val)
	}
}

func isTrue(val string) bool {
	return val == "true"
}
