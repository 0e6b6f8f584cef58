// package sandbox contains the HTTP adapter for the remote code execution
// service. The service is the actual isolation boundary; this process only
// talks to it over its JSON API.
package sandbox

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"gitlab.com/codequiz-2025.net/internal/config"
	"gitlab.com/codequiz-2025.net/internal/core/ports/primary"
	"gitlab.com/codequiz-2025.net/internal/core/ports/secondary"
	"gitlab.com/codequiz-2025.net/internal/domain"
)

var _ secondary.SandboxRunner = (*Client)(nil)

// runtimeVersions maps languages to the runtime version requested from the
// execution service.
var runtimeVersions = map[domain.Language]string{
	domain.LanguagePython:     "3.10.0",
	domain.LanguageJavaScript: "18.15.0",
	domain.LanguageJava:       "15.0.2",
	domain.LanguageCpp:        "10.2.0",
	domain.LanguageC:          "10.2.0",
}

// sourceFileNames maps languages to the file name the runtime expects
var sourceFileNames = map[domain.Language]string{
	domain.LanguagePython:     "main.py",
	domain.LanguageJavaScript: "main.js",
	domain.LanguageJava:       "Main.java",
	domain.LanguageCpp:        "main.cpp",
	domain.LanguageC:          "main.c",
}

type executeRequest struct {
	Language       string        `json:"language"`
	Version        string        `json:"version"`
	Files          []executeFile `json:"files"`
	Stdin          string        `json:"stdin"`
	CompileTimeout int64         `json:"compile_timeout"`
	RunTimeout     int64         `json:"run_timeout"`
}

type executeFile struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

type executeStage struct {
	Stdout string `json:"stdout"`
	Stderr string `json:"stderr"`
	Code   int    `json:"code"`
}

type executeResponse struct {
	Compile *executeStage `json:"compile,omitempty"`
	Run     executeStage  `json:"run"`
}

// Client implements the SandboxRunner port against a Piston-style execution
// API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cfg        *config.SandboxConfig
	logger     primary.Logger
}

// NewClient creates a new sandbox client
func NewClient(cfg *config.SandboxConfig, logger primary.Logger) *Client {
	return &Client{
		baseURL: cfg.Url,
		httpClient: &http.Client{
			// Per-request deadlines come from the caller's context; this is
			// the hard upper bound for a stuck connection.
			Timeout: cfg.CompileTimeout + cfg.RunTimeout,
		},
		cfg:    cfg,
		logger: logger,
	}
}

// Run submits one program to the execution service. A single attempt is
// made; the orchestrator treats any error as a failed case.
func (c *Client) Run(ctx context.Context, req secondary.RunRequest) (*secondary.RunResult, error) {
	body, err := json.Marshal(executeRequest{
		Language: string(req.Language),
		Version:  runtimeVersions[req.Language],
		Files: []executeFile{
			{Name: sourceFileNames[req.Language], Content: req.Program},
		},
		Stdin:          req.Stdin,
		CompileTimeout: c.cfg.CompileTimeout.Milliseconds(),
		RunTimeout:     c.cfg.RunTimeout.Milliseconds(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal execute request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v2/execute", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build execute request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("execution service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("execution service returned %d: %s", resp.StatusCode, string(msg))
	}

	var execResp executeResponse
	if err := json.NewDecoder(resp.Body).Decode(&execResp); err != nil {
		return nil, fmt.Errorf("failed to decode execute response: %w", err)
	}

	result := &secondary.RunResult{
		Stdout:   execResp.Run.Stdout,
		Stderr:   execResp.Run.Stderr,
		ExitCode: execResp.Run.Code,
	}
	if execResp.Compile != nil {
		result.CompileStdout = execResp.Compile.Stdout
		result.CompileStderr = execResp.Compile.Stderr
		result.CompileCode = execResp.Compile.Code
	}
	return result, nil
}
