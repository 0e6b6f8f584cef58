package sandbox

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gitlab.com/codequiz-2025.net/internal/config"
	"gitlab.com/codequiz-2025.net/internal/core/ports/secondary"
	"gitlab.com/codequiz-2025.net/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Warn(msg string, args ...interface{})  {}

func testConfig(url string) *config.SandboxConfig {
	return &config.SandboxConfig{
		Url:            url,
		CompileTimeout: 10 * time.Second,
		RunTimeout:     3 * time.Second,
	}
}

func TestClientRunSuccess(t *testing.T) {
	var gotReq executeRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v2/execute" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(executeResponse{
			Run: executeStage{Stdout: "5\n", Code: 0},
		})
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), nopLogger{})
	res, err := client.Run(context.Background(), secondary.RunRequest{
		Language: domain.LanguagePython,
		Program:  "print(5)",
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if res.Stdout != "5\n" || res.ExitCode != 0 {
		t.Fatalf("result = %+v", res)
	}
	if gotReq.Language != "python" || gotReq.Files[0].Content != "print(5)" {
		t.Fatalf("request = %+v", gotReq)
	}
	if gotReq.CompileTimeout != 10000 || gotReq.RunTimeout != 3000 {
		t.Fatalf("timeouts = %d/%d, want 10000/3000", gotReq.CompileTimeout, gotReq.RunTimeout)
	}
}

func TestClientRunCompileStage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(executeResponse{
			Compile: &executeStage{Stderr: "error: expected ';'", Code: 1},
			Run:     executeStage{},
		})
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), nopLogger{})
	res, err := client.Run(context.Background(), secondary.RunRequest{
		Language: domain.LanguageCpp,
		Program:  "int main() { return 0 }",
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !res.CompileFailed() {
		t.Fatalf("result = %+v, want compile failure", res)
	}
	if !strings.Contains(res.CompileStderr, "expected ';'") {
		t.Fatalf("compile stderr = %q", res.CompileStderr)
	}
}

func TestClientRunNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "queue full", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), nopLogger{})
	_, err := client.Run(context.Background(), secondary.RunRequest{
		Language: domain.LanguagePython,
		Program:  "print(1)",
	})
	if err == nil {
		t.Fatal("Run() should fail on a non-2xx response")
	}
	if !strings.Contains(err.Error(), "503") {
		t.Fatalf("error = %v, want status in message", err)
	}
}

func TestClientRunUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // immediately, so the address refuses connections

	client := NewClient(testConfig(srv.URL), nopLogger{})
	_, err := client.Run(context.Background(), secondary.RunRequest{
		Language: domain.LanguagePython,
		Program:  "print(1)",
	})
	if err == nil {
		t.Fatal("Run() should fail when the service is unreachable")
	}
}
