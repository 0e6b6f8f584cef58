package execution

import (
	"fmt"

	"gitlab.com/codequiz-2025.net/internal/domain"
)

// BuildProgram assembles the program for one test case. Script languages get
// the case input appended as a printed expression after the student source;
// compiled languages run the source as-is and receive the input on stdin.
func BuildProgram(language domain.Language, sourceCode, input string) (program string, stdin string) {
	if language.Compiled() {
		return sourceCode, input
	}
	switch language {
	case domain.LanguageJavaScript:
		return fmt.Sprintf("%s\nconsole.log(%s);\n", sourceCode, input), ""
	default:
		return fmt.Sprintf("%s\nprint(%s)\n", sourceCode, input), ""
	}
}
