package config

import (
	"fmt"
	"sort"
	"strings"
)

// enumNormalizer provides case-insensitive string-to-enum normalization.
type enumNormalizer[T ~string] struct {
	values    map[string]T
	validKeys []string
}

func newEnumNormalizer[T ~string](values ...T) *enumNormalizer[T] {
	n := &enumNormalizer[T]{values: make(map[string]T, len(values))}
	for _, v := range values {
		key := normalizeKey(string(v))
		n.values[key] = v
		n.validKeys = append(n.validKeys, key)
	}
	sort.Strings(n.validKeys)
	return n
}

// normalize returns the canonical value, or an error naming the valid options.
// Empty input yields the zero value.
func (n *enumNormalizer[T]) normalize(raw string) (T, error) {
	cleaned := normalizeKey(raw)
	if cleaned == "" {
		return "", nil
	}
	if v, ok := n.values[cleaned]; ok {
		return v, nil
	}
	return "", fmt.Errorf("invalid value %q, valid options: %v", raw, n.validKeys)
}

func normalizeKey(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// LogLevel enumerates supported logging levels.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LogFormat enumerates supported log output formats.
type LogFormat string

const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

// Target selects the framework configuration that is emitted.
type Target string

const (
	TargetVuePress Target = "vuepress"
	TargetHugo     Target = "hugo"
)

var (
	logLevels  = newEnumNormalizer(LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError)
	logFormats = newEnumNormalizer(LogFormatJSON, LogFormatText)
	targets    = newEnumNormalizer(TargetVuePress, TargetHugo)
)
