package env

import (
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

func Bool(env string, defaultValue bool) bool {
	e := os.Getenv(env)
	if e == "" {
		return defaultValue
	}

	p, err := strconv.ParseBool(strings.TrimSpace(e))
	if err != nil {
		log.Errorf("invalid %s: %s", env, e)
		return defaultValue
	}

	return p
}

func Int64(env string, defaultValue int64) int64 {
	e := os.Getenv(env)
	if e == "" {
		return defaultValue
	}

	num, err := strconv.ParseInt(strings.TrimSpace(e), 10, 64)
	if err != nil {
		log.Errorf("invalid %s: %s", env, e)
		return defaultValue
	}

	return num
}

func String(env, defaultValue string) string {
	e := os.Getenv(env)
	if e == "" {
		return defaultValue
	}

	return e
}
