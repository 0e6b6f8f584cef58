package domain

import "fmt"

// Language identifies a supported submission language
type Language string

const (
	LanguagePython     Language = "python"
	LanguageJavaScript Language = "javascript"
	LanguageJava       Language = "java"
	LanguageCpp        Language = "cpp"
	LanguageC          Language = "c"
)

// ParseLanguage validates a raw language identifier from a request
func ParseLanguage(raw string) (Language, error) {
	switch Language(raw) {
	case LanguagePython, LanguageJavaScript, LanguageJava, LanguageCpp, LanguageC:
		return Language(raw), nil
	default:
		return "", fmt.Errorf("unsupported language: %q", raw)
	}
}

// Compiled reports whether the language has a compilation step. Compiled
// languages receive the test-case input on stdin instead of an appended
// expression.
func (l Language) Compiled() bool {
	switch l {
	case LanguageJava, LanguageCpp, LanguageC:
		return true
	default:
		return false
	}
}
