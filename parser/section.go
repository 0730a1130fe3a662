package parser

import (
	"github.com/saylorsolutions/docopt/option"
	"regexp"
	"strings"
)

var optionLinePattern = regexp.MustCompile(`\n *-`)

// Sections finds every section of doc that starts with a line containing name, compared case-insensitive.
// A section runs until the first line that is not indented.
func Sections(name, doc string) []string {
	re := regexp.MustCompile(`(?im)^([^\n]*` + regexp.QuoteMeta(name) + `[^\n]*\n?(?:[ \t].*?(?:\n|$))*)`)
	found := re.FindAllString(doc, -1)
	for i := range found {
		found[i] = strings.TrimSpace(found[i])
	}
	return found
}

// Usage returns the only "usage:" section of doc.
func Usage(doc string) (string, error) {
	sections := Sections("usage:", doc)
	switch len(sections) {
	case 0:
		return "", NewGrammarError(`"usage:" (case-insensitive) not found`)
	case 1:
		return sections[0], nil
	default:
		return "", NewGrammarError(`more than one "usage:" (case-insensitive)`)
	}
}

// FormalUsage folds a usage section into a single pattern.
// The first word after the label is the program name, and every later repeat of it starts a new alternative.
//
//	Usage: prog a
//	       prog b
//
// becomes "( a ) | ( b )".
func FormalUsage(section string) string {
	_, body, _ := strings.Cut(section, ":")
	words := strings.Fields(body)
	if len(words) == 0 {
		return "( )"
	}
	program := words[0]
	parts := make([]string, 0, len(words)+1)
	parts = append(parts, "(")
	for _, w := range words[1:] {
		if w == program {
			parts = append(parts, ") | (")
			continue
		}
		parts = append(parts, w)
	}
	parts = append(parts, ")")
	return strings.Join(parts, " ")
}

// Defaults reads every option description in the "options:" sections of doc.
// Each description starts on a line whose first non-space character is '-', and continues until the next one.
func Defaults(doc string) []option.Option {
	var defaults []option.Option
	for _, section := range Sections("options:", doc) {
		_, body, _ := strings.Cut(section, ":")
		text := "\n" + body
		starts := optionLinePattern.FindAllStringIndex(text, -1)
		for i, loc := range starts {
			end := len(text)
			if i+1 < len(starts) {
				end = starts[i+1][0]
			}
			defaults = append(defaults, option.Parse(text[loc[1]-1:end]))
		}
	}
	return defaults
}
