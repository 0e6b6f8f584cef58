package validation

import (
	"strings"
	"testing"

	"gitlab.com/codequiz-2025.net/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Warn(msg string, args ...interface{})  {}

func newService() *ValidationService {
	return NewValidationService(nopLogger{})
}

func TestValidateAcceptsCleanCode(t *testing.T) {
	svc := newService()

	verdict := svc.Validate("def add(a,b): return a+b", []domain.TestCase{
		{Input: "add(2,3)", ExpectedOutput: "5"},
	})

	if !verdict.Accepted {
		t.Fatalf("clean code rejected: reason=%s detail=%s", verdict.Reason, verdict.Detail)
	}
}

func TestValidateBlocksOSAccess(t *testing.T) {
	svc := newService()

	verdict := svc.Validate("import os\nos.system('ls')", nil)

	if verdict.Accepted {
		t.Fatal("os access should be rejected")
	}
	if verdict.Reason != domain.ReasonBlockedPattern {
		t.Fatalf("reason = %s, want %s", verdict.Reason, domain.ReasonBlockedPattern)
	}
}

func TestValidateBlockedPatterns(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{"python eval", "eval('1+1')"},
		{"python exec", "exec('print(1)')"},
		{"python dunder import", "__import__('os')"},
		{"python subprocess", "import subprocess"},
		{"python open", "open('/etc/passwd')"},
		{"python builtins", "x = __builtins__"},
		{"python subclasses walk", "().__class__.__bases__[0].__subclasses__()"},
		{"python globals dump", "print(globals())"},
		{"python socket", "import socket"},
		{"python base64", "import base64"},
		{"python codecs decode", "b'xyz'.decode('rot13')"},
		{"js require fs", "const fs = require('fs')"},
		{"js child_process", "require('child_process')"},
		{"js function constructor", "new Function('return 1')()"},
		{"js fetch", "fetch('http://example.com')"},
		{"js atob", "atob('aGk=')"},
		{"java runtime", "Runtime.getRuntime().exec(\"ls\")"},
		{"java process builder", "new ProcessBuilder(\"ls\").start()"},
		{"java reflection", "import java.lang.reflect.Method;"},
		{"c system", "system(\"ls\");"},
		{"c fopen", "FILE *f = fopen(\"x\", \"r\");"},
		{"hex escape", "s = '\\x65\\x76'"},
		{"unicode escape", "s = '\\u0065\\u0076'"},
	}

	svc := newService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := svc.Validate(tt.code, nil)
			if verdict.Accepted {
				t.Fatalf("code %q should be rejected", tt.code)
			}
			if verdict.Reason != domain.ReasonBlockedPattern {
				t.Fatalf("reason = %s, want %s (detail %s)", verdict.Reason, domain.ReasonBlockedPattern, verdict.Detail)
			}
		})
	}
}

func TestValidateChecksTestCaseInputs(t *testing.T) {
	svc := newService()

	// The input string is concatenated into the executed program, so it goes
	// through the same denylist as the source.
	verdict := svc.Validate("def add(a,b): return a+b", []domain.TestCase{
		{Input: "__import__('os').system('ls')", ExpectedOutput: "0"},
	})

	if verdict.Accepted {
		t.Fatal("hostile test-case input should be rejected")
	}
	if verdict.Reason != domain.ReasonBlockedPattern {
		t.Fatalf("reason = %s, want %s", verdict.Reason, domain.ReasonBlockedPattern)
	}
}

func TestValidateSizeLimits(t *testing.T) {
	svc := newService()

	t.Run("oversized source", func(t *testing.T) {
		verdict := svc.Validate(strings.Repeat("a", domain.MaxSourceLen+1), nil)
		if verdict.Accepted || verdict.Reason != domain.ReasonSizeLimit {
			t.Fatalf("verdict = %+v, want SIZE_LIMIT rejection", verdict)
		}
	})

	t.Run("too many test cases", func(t *testing.T) {
		cases := make([]domain.TestCase, domain.MaxTestCases+1)
		for i := range cases {
			cases[i] = domain.TestCase{Input: "1", ExpectedOutput: "1"}
		}
		verdict := svc.Validate("x = 1", cases)
		if verdict.Accepted || verdict.Reason != domain.ReasonSizeLimit {
			t.Fatalf("verdict = %+v, want SIZE_LIMIT rejection", verdict)
		}
	})

	t.Run("oversized test case input", func(t *testing.T) {
		verdict := svc.Validate("x = 1", []domain.TestCase{
			{Input: strings.Repeat("1", domain.MaxTestCaseInput+1), ExpectedOutput: "1"},
		})
		if verdict.Accepted || verdict.Reason != domain.ReasonSizeLimit {
			t.Fatalf("verdict = %+v, want SIZE_LIMIT rejection", verdict)
		}
	})

	t.Run("at the limits", func(t *testing.T) {
		cases := make([]domain.TestCase, domain.MaxTestCases)
		for i := range cases {
			cases[i] = domain.TestCase{Input: "1", ExpectedOutput: "1"}
		}
		verdict := svc.Validate(strings.Repeat("a", domain.MaxSourceLen), cases)
		if !verdict.Accepted {
			t.Fatalf("limit-sized submission rejected: %+v", verdict)
		}
	})
}

func TestValidateObfuscation(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{"concat assembles eval", `f = "e"+"v"+"a"+"l"`},
		{"concat assembles import", `n = 'i'+'m'+'p'+'o'+'r'+'t'`},
		{"chr construction", "c = chr(101)"},
		{"fromCharCode", "const s = String.fromCharCode(101, 118)"},
	}

	svc := newService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := svc.Validate(tt.code, nil)
			if verdict.Accepted {
				t.Fatalf("code %q should be rejected", tt.code)
			}
			if verdict.Reason != domain.ReasonObfuscation {
				t.Fatalf("reason = %s, want %s", verdict.Reason, domain.ReasonObfuscation)
			}
		})
	}
}

func TestValidateAllowsHarmlessConcat(t *testing.T) {
	svc := newService()

	verdict := svc.Validate(`greeting = "h"+"i"`, nil)

	if !verdict.Accepted {
		t.Fatalf("harmless concatenation rejected: %+v", verdict)
	}
}

func TestValidateNestingDepth(t *testing.T) {
	svc := newService()

	deep := strings.Repeat("(", domain.MaxNestingDepth+1) + "1" + strings.Repeat(")", domain.MaxNestingDepth+1)
	verdict := svc.Validate("x = "+deep, nil)
	if verdict.Accepted || verdict.Reason != domain.ReasonExcessiveNesting {
		t.Fatalf("verdict = %+v, want EXCESSIVE_NESTING rejection", verdict)
	}

	ok := strings.Repeat("(", domain.MaxNestingDepth) + "1" + strings.Repeat(")", domain.MaxNestingDepth)
	verdict = svc.Validate("x = "+ok, nil)
	if !verdict.Accepted {
		t.Fatalf("depth at the threshold rejected: %+v", verdict)
	}
}
