package option

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	defaultPattern = regexp.MustCompile(`(?i)\[default: (.*?)\]`)
	envPattern     = regexp.MustCompile(`(?i)\[env: (\S+?)\]`)
)

// Option is a single recognized flag.
// Value is false for arity 0 options that have not been set, and either nil or a string for arity 1 options.
type Option struct {
	Short string
	Long  string
	Arity int
	Value any
	Env   string // Env names an environment variable that may provide the default value.
}

// New creates an [Option] with the zero value that matches its arity.
func New(short, long string, arity int) Option {
	o := Option{Short: short, Long: long, Arity: arity}
	if arity == 0 {
		o.Value = false
	}
	return o
}

// Parse interprets a single option description line from an options section.
//
// The flags part ends at the first double space. Commas and '=' separate words in the flags part.
// A word starting with "--" is the long form, a word starting with "-" is the short form, and any other word is an argument placeholder that gives the option an arity of 1.
func Parse(description string) Option {
	var (
		short, long string
		arity       int
	)
	flags, desc, _ := strings.Cut(strings.TrimSpace(description), "  ")
	flags = strings.NewReplacer(",", " ", "=", " ").Replace(flags)
	for _, word := range strings.Fields(flags) {
		switch {
		case strings.HasPrefix(word, "--"):
			long = word
		case strings.HasPrefix(word, "-"):
			short = word
		default:
			arity = 1
		}
	}
	o := New(short, long, arity)
	if arity > 0 {
		if m := defaultPattern.FindStringSubmatch(desc); m != nil {
			o.Value = m[1]
		}
	}
	if m := envPattern.FindStringSubmatch(desc); m != nil {
		o.Env = m[1]
	}
	return o
}

// Name is the key used for this [Option] in bindings.
// The long form is preferred when both are present.
func (o Option) Name() string {
	if len(o.Long) > 0 {
		return o.Long
	}
	return o.Short
}

// Same reports whether two options are aliases of one another.
// Long forms are compared when both are present, and short forms are compared when both are present.
func (o Option) Same(other Option) bool {
	if len(o.Long) > 0 && len(other.Long) > 0 && o.Long == other.Long {
		return true
	}
	return len(o.Short) > 0 && len(other.Short) > 0 && o.Short == other.Short
}

// WithValue returns a copy of the [Option] bound to the given value.
func (o Option) WithValue(value any) Option {
	o.Value = value
	return o
}

func (o Option) String() string {
	short, long := o.Short, o.Long
	if len(short) == 0 {
		short = "-"
	}
	if len(long) == 0 {
		long = "-"
	}
	return fmt.Sprintf("Option(%s, %s, %d, %v)", short, long, o.Arity, FormatValue(o.Value))
}

// FormatValue renders a bound value the way it appears in debugging output.
func FormatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case string:
		return fmt.Sprintf("%q", v)
	case []string:
		quoted := make([]string, len(v))
		for i, s := range v {
			quoted[i] = fmt.Sprintf("%q", s)
		}
		return "[" + strings.Join(quoted, " ") + "]"
	default:
		return fmt.Sprint(v)
	}
}
