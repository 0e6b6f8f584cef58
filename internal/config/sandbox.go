package config

import (
	"os"
	"strconv"
	"time"
)

type SandboxConfig struct {
	Url            string
	CompileTimeout time.Duration
	RunTimeout     time.Duration
}

func NewSandboxConfig() *SandboxConfig {
	url := os.Getenv("SANDBOX_URL")
	if url == "" {
		url = "http://localhost:2000"
	}
	compileMs := intEnv("SANDBOX_COMPILE_TIMEOUT_MS", 10000)
	runMs := intEnv("SANDBOX_RUN_TIMEOUT_MS", 3000)
	return &SandboxConfig{
		Url:            url,
		CompileTimeout: time.Duration(compileMs) * time.Millisecond,
		RunTimeout:     time.Duration(runMs) * time.Millisecond,
	}
}

func intEnv(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
