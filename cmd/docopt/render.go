package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/fatih/color"
	"github.com/saylorsolutions/docopt"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

var (
	ErrFormat = errors.New("unknown output format")

	shellNamePattern = regexp.MustCompile(`[^A-Za-z0-9_]+`)
)

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// defaultFormat prefers readable output for people and JSON for programs.
func defaultFormat(w io.Writer) string {
	if isTerminal(w) {
		return "text"
	}
	return "json"
}

func render(w io.Writer, format string, vals docopt.Values) error {
	switch format {
	case "text":
		return renderText(w, vals, isTerminal(w))
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(vals)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(map[string]any(vals)); err != nil {
			return err
		}
		return enc.Close()
	case "shell":
		return renderShell(w, vals)
	default:
		return fmt.Errorf("%w: %s", ErrFormat, format)
	}
}

func renderText(w io.Writer, vals docopt.Values, colored bool) error {
	var (
		keyColor   = color.New(color.FgCyan, color.Bold)
		unsetColor = color.New(color.Faint)
		maxLen     int
	)
	if colored {
		keyColor.EnableColor()
		unsetColor.EnableColor()
	} else {
		keyColor.DisableColor()
		unsetColor.DisableColor()
	}
	keys := vals.Keys()
	for _, key := range keys {
		maxLen = max(maxLen, len(key))
	}
	for _, key := range keys {
		value := formatValue(vals[key])
		if !vals.Has(key) {
			value = unsetColor.Sprint(value)
		}
		padding := strings.Repeat(" ", maxLen-len(key))
		if _, err := fmt.Fprintf(w, "%s%s  %s\n", keyColor.Sprint(key), padding, value); err != nil {
			return err
		}
	}
	return nil
}

func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(v)
	case []string:
		quoted := make([]string, len(v))
		for i, s := range v {
			quoted[i] = strconv.Quote(s)
		}
		return "[" + strings.Join(quoted, ", ") + "]"
	default:
		return fmt.Sprint(v)
	}
}

// shellName turns a key like "--dry-run" or "<file>" into a variable name like "dry_run" or "file".
func shellName(key string) string {
	name := strings.Trim(shellNamePattern.ReplaceAllString(key, "_"), "_")
	if len(name) == 0 || (name[0] >= '0' && name[0] <= '9') {
		name = "_" + name
	}
	return name
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func renderShell(w io.Writer, vals docopt.Values) error {
	for _, key := range vals.Keys() {
		var value string
		switch v := vals[key].(type) {
		case nil:
			value = "''"
		case bool:
			value = strconv.FormatBool(v)
		case int:
			value = strconv.Itoa(v)
		case string:
			value = shellQuote(v)
		case []string:
			quoted := make([]string, len(v))
			for i, s := range v {
				quoted[i] = shellQuote(s)
			}
			value = "(" + strings.Join(quoted, " ") + ")"
		}
		if _, err := fmt.Fprintf(w, "%s=%s\n", shellName(key), value); err != nil {
			return err
		}
	}
	return nil
}
