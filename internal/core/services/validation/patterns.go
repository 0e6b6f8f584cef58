package validation

import "regexp"

// blockedPattern pairs a compiled expression with the category reported in
// server-side logs. The catalogue is fixed at startup; responses to callers
// never echo which entry matched.
type blockedPattern struct {
	category string
	re       *regexp.Regexp
}

var blockedPatterns = []blockedPattern{
	// filesystem access
	{"filesystem", regexp.MustCompile(`(?i)\bimport\s+os\b`)},
	{"filesystem", regexp.MustCompile(`(?i)\bfrom\s+os\b`)},
	{"filesystem", regexp.MustCompile(`\bos\s*\.`)},
	{"filesystem", regexp.MustCompile(`\bopen\s*\(`)},
	{"filesystem", regexp.MustCompile(`\bfopen\s*\(`)},
	{"filesystem", regexp.MustCompile(`(?i)\bpathlib\b`)},
	{"filesystem", regexp.MustCompile(`(?i)\bshutil\b`)},
	{"filesystem", regexp.MustCompile(`\bfs\s*\.`)},
	{"filesystem", regexp.MustCompile(`require\s*\(\s*['"]fs['"]`)},
	{"filesystem", regexp.MustCompile(`java\.io\.File`)},
	{"filesystem", regexp.MustCompile(`\bfstream\b`)},
	{"filesystem", regexp.MustCompile(`\bifstream\b|\bofstream\b`)},

	// network access
	{"network", regexp.MustCompile(`(?i)\bsocket\b`)},
	{"network", regexp.MustCompile(`(?i)\burllib\b`)},
	{"network", regexp.MustCompile(`(?i)\brequests\b`)},
	{"network", regexp.MustCompile(`\bhttp[s]?\s*\.`)},
	{"network", regexp.MustCompile(`\bfetch\s*\(`)},
	{"network", regexp.MustCompile(`XMLHttpRequest`)},
	{"network", regexp.MustCompile(`java\.net\b`)},
	{"network", regexp.MustCompile(`\bcurl\b|\bwget\b`)},

	// dynamic code evaluation
	{"dynamic-eval", regexp.MustCompile(`\beval\s*\(`)},
	{"dynamic-eval", regexp.MustCompile(`\bexec\s*\(`)},
	{"dynamic-eval", regexp.MustCompile(`\bcompile\s*\(`)},
	{"dynamic-eval", regexp.MustCompile(`\b__import__\s*\(`)},
	{"dynamic-eval", regexp.MustCompile(`(?i)\bimportlib\b`)},
	{"dynamic-eval", regexp.MustCompile(`\bFunction\s*\(`)},
	{"dynamic-eval", regexp.MustCompile(`\bimport\s*\(`)},
	{"dynamic-eval", regexp.MustCompile(`new\s+Function`)},

	// process / subprocess spawning
	{"process", regexp.MustCompile(`(?i)\bsubprocess\b`)},
	{"process", regexp.MustCompile(`\bpopen\s*\(`)},
	{"process", regexp.MustCompile(`child_process`)},
	{"process", regexp.MustCompile(`Runtime\s*\.\s*getRuntime`)},
	{"process", regexp.MustCompile(`ProcessBuilder`)},
	{"process", regexp.MustCompile(`\bfork\s*\(`)},
	{"process", regexp.MustCompile(`\bsystem\s*\(`)},
	{"process", regexp.MustCompile(`\bexecve?\s*\(`)},

	// runtime introspection
	{"introspection", regexp.MustCompile(`__builtins__`)},
	{"introspection", regexp.MustCompile(`__globals__`)},
	{"introspection", regexp.MustCompile(`__subclasses__`)},
	{"introspection", regexp.MustCompile(`__bases__|__mro__`)},
	{"introspection", regexp.MustCompile(`__class__`)},
	{"introspection", regexp.MustCompile(`__dict__|__code__`)},
	{"introspection", regexp.MustCompile(`\bglobals\s*\(\s*\)`)},
	{"introspection", regexp.MustCompile(`\blocals\s*\(\s*\)`)},
	{"introspection", regexp.MustCompile(`\bvars\s*\(\s*\)`)},
	{"introspection", regexp.MustCompile(`\bgetattr\s*\(|\bsetattr\s*\(|\bdelattr\s*\(`)},
	{"introspection", regexp.MustCompile(`\bReflect\b`)},
	{"introspection", regexp.MustCompile(`java\.lang\.reflect`)},
	{"introspection", regexp.MustCompile(`constructor\s*\[`)},

	// escape-hatch encodings
	{"encoding", regexp.MustCompile(`\\x[0-9a-fA-F]{2}`)},
	{"encoding", regexp.MustCompile(`\\u[0-9a-fA-F]{4}`)},
	{"encoding", regexp.MustCompile(`(?i)\bbase64\b`)},
	{"encoding", regexp.MustCompile(`(?i)\bcodecs\b`)},
	{"encoding", regexp.MustCompile(`\.decode\s*\(`)},
	{"encoding", regexp.MustCompile(`\bfromhex\s*\(`)},
	{"encoding", regexp.MustCompile(`\batob\s*\(`)},
	{"encoding", regexp.MustCompile(`Buffer\s*\.\s*from`)},
}

// denylistedKeywords are the names the obfuscation heuristic tries to catch
// being rebuilt character by character.
var denylistedKeywords = []string{
	"eval",
	"exec",
	"compile",
	"import",
	"open",
	"system",
	"require",
	"subprocess",
	"getattr",
}

// charConcatChain matches chains of single-character string literals joined
// with +, e.g. "e"+"v"+"a"+"l".
var charConcatChain = regexp.MustCompile(`['"].['"](?:\s*\+\s*['"].['"])+`)

// quotedChar extracts the individual characters of a matched chain
var quotedChar = regexp.MustCompile(`['"](.)['"]`)

// charCodeBuild matches character-code construction of strings
var charCodeBuild = regexp.MustCompile(`\bchr\s*\(|String\s*\.\s*fromCharCode|fromCodePoint|\(char\)\s*\d`)
