package env

import (
	"os"
	"strings"
)

var (
	DefaultTrue  = []string{"1", "yes", "true", "on"}  // DefaultTrue are the values considered "true" for flags, and can be changed.
	DefaultFalse = []string{"0", "no", "false", "off"} // DefaultFalse are the values considered "false" for flags, and can be changed.
)

func getEnv() map[string]string {
	envMap := map[string]string{}
	environ := os.Environ()
	for i := 0; i < len(environ); i++ {
		key, val, found := strings.Cut(environ[i], "=")
		if !found {
			continue
		}
		envMap[strings.ToLower(key)] = val
	}
	return envMap
}

// Lookup gets the trimmed value of an environment variable.
// False is returned if the variable isn't set, or is blank.
func Lookup(key string) (string, bool) {
	val, ok := getEnv()[strings.ToLower(key)]
	if !ok {
		return "", false
	}
	val = strings.TrimSpace(val)
	if len(val) == 0 {
		return "", false
	}
	return val, true
}

// Val will attempt to get an environment variable value using the given key.
// If the variable isn't set, or is empty, then the defaultVal will be returned.
func Val(key string, defaultVal string) string {
	if val, ok := Lookup(key); ok {
		return val
	}
	return defaultVal
}

// Bool interprets an environment variable as a boolean, using [DefaultTrue] and [DefaultFalse].
// False is returned with the boolean if the variable isn't set, is empty, or isn't one of those values.
func Bool(key string) (value bool, ok bool) {
	sval, ok := Lookup(key)
	if !ok {
		return false, false
	}
	for _, candidate := range DefaultTrue {
		if strings.EqualFold(sval, candidate) {
			return true, true
		}
	}
	for _, candidate := range DefaultFalse {
		if strings.EqualFold(sval, candidate) {
			return false, true
		}
	}
	return false, false
}
