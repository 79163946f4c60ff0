package domain

import (
	"path"
	"regexp"

	m "github.com/mrdannyclark82/MillaCore-Fusion/internal/model"
)

// languageRules is the block-start pattern set for one language.
type languageRules struct {
	// starts capture the declared name in group 1.
	starts []*regexp.Regexp
	// boundary matches any line that ends the current block: a new
	// definition header or a class definition.
	boundary *regexp.Regexp
}

var pythonRules = languageRules{
	starts: []*regexp.Regexp{
		regexp.MustCompile(`^def\s+([a-zA-Z0-9_]+)\s*\(.*\):`),
	},
	boundary: regexp.MustCompile(`^def\s+|^class\s+`),
}

var scriptRules = languageRules{
	starts: []*regexp.Regexp{
		regexp.MustCompile(`^export\s+(?:default\s+)?(?:async\s+)?function\s+([a-zA-Z0-9_]+)\s*\(`),
		regexp.MustCompile(`^(?:export\s+)?const\s+([a-zA-Z0-9_]+)\s*=\s*(?:async\s+)?\(`),
		regexp.MustCompile(`^(?:async\s+)?function\s+([a-zA-Z0-9_]+)\s*\(`),
	},
	boundary: regexp.MustCompile(
		`^(?:export\s+(?:default\s+)?)?(?:async\s+)?function\s+` +
			`|^(?:export\s+)?const\s+.*=\s*(?:async\s+)?\(` +
			`|^(?:export\s+(?:default\s+)?)?class\s+`,
	),
}

// supportedExtensions maps file extensions to languages. Matching is
// case-sensitive.
var supportedExtensions = map[string]m.Language{
	".py":  m.LanguagePython,
	".ts":  m.LanguageScript,
	".tsx": m.LanguageScript,
	".js":  m.LanguageScript,
	".jsx": m.LanguageScript,
}

// DetectLanguage returns the language for p, or LanguageUnknown when the
// extension is not scanned.
func DetectLanguage(p m.Path) m.Language {
	if lang, ok := supportedExtensions[path.Ext(string(p))]; ok {
		return lang
	}

	return m.LanguageUnknown
}

func rulesFor(lang m.Language) (languageRules, bool) {
	switch lang {
	case m.LanguagePython:
		return pythonRules, true
	case m.LanguageScript:
		return scriptRules, true
	case m.LanguageUnknown:
		return languageRules{}, false
	}

	return languageRules{}, false
}

// matchStart returns the declared name when line opens a block.
func (r languageRules) matchStart(line string) (string, bool) {
	for _, re := range r.starts {
		if match := re.FindStringSubmatch(line); match != nil {
			return match[1], true
		}
	}

	return "", false
}
