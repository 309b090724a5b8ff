// Package config exposes the panel configuration. Everything is driven by
// environment variables with sensible defaults; the embedded name/version
// files identify the build.
package config

import (
	_ "embed"
	"os"
	"strconv"
	"strings"
	"time"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("CYBERBANK_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("CYBERBANK_DEBUG") == "true"
}

// GetBackendURL returns the base URL of the incident backend API.
func GetBackendURL() string {
	backendURL := os.Getenv("CYBERBANK_BACKEND_URL")
	if backendURL == "" {
		backendURL = "http://localhost:8000"
	}
	return strings.TrimRight(backendURL, "/")
}

// GetAPITimeout returns the timeout applied to backend requests.
// Zero disables the timeout, which matches the historical behavior.
func GetAPITimeout() time.Duration {
	seconds, err := strconv.Atoi(os.Getenv("CYBERBANK_API_TIMEOUT"))
	if err != nil || seconds < 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}

func GetListen() string {
	return os.Getenv("CYBERBANK_LISTEN")
}

func GetPort() int {
	port, err := strconv.Atoi(os.Getenv("CYBERBANK_PORT"))
	if err != nil || port <= 0 || port > 65535 {
		return 3000
	}
	return port
}

// GetBasePath returns the base path for all panel routes, normalized to
// have leading and trailing slashes.
func GetBasePath() string {
	basePath := os.Getenv("CYBERBANK_BASE_PATH")
	if basePath == "" {
		return "/"
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	if !strings.HasSuffix(basePath, "/") {
		basePath += "/"
	}
	return basePath
}

func GetWebDomain() string {
	return os.Getenv("CYBERBANK_WEB_DOMAIN")
}

func GetCertFile() string {
	return os.Getenv("CYBERBANK_CERT_FILE")
}

func GetKeyFile() string {
	return os.Getenv("CYBERBANK_KEY_FILE")
}

// GetSessionSecret returns the cookie store secret. Empty means a random
// secret is generated at startup, invalidating sessions across restarts.
func GetSessionSecret() string {
	return os.Getenv("CYBERBANK_SESSION_SECRET")
}

// GetSessionMaxAge returns the session cookie lifetime in minutes.
// Zero keeps the cookie for the browser session only.
func GetSessionMaxAge() int {
	maxAge, err := strconv.Atoi(os.Getenv("CYBERBANK_SESSION_MAX_AGE"))
	if err != nil || maxAge < 0 {
		return 0
	}
	return maxAge
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("CYBERBANK_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "/var/log"
	}
	return logFolderPath
}
