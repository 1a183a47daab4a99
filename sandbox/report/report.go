// Package report decodes the line-oriented usage report lrun writes on its
// dedicated file descriptor.
package report

import (
	"strconv"
	"strings"

	appErr "lrungo/pkg/errors"
	"lrungo/sandbox/result"
)

// Stats is the decoded portion of a Result that comes from the report
// channel.
type Stats struct {
	MemoryBytes int64
	CPUTime     float64
	ExitCode    int
	Signaled    bool
	Signal      int
	Exceeded    result.Exceeded
}

// Parse decodes report text of "KEY VALUE" lines. Numeric fields degrade to
// zero when missing or garbled; an EXCEED value that matches no known limit
// is a decode error. When exact is false, EXCEED is classified by
// case-insensitive substring so variants like "CPU_TIME" still map to the
// time limit.
func Parse(text string, exact bool) (Stats, error) {
	stats := Stats{Exceeded: result.ExceedNone}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		key, value := splitLine(line)
		switch key {
		case "MEMORY":
			stats.MemoryBytes, _ = strconv.ParseInt(value, 10, 64)
		case "CPUTIME":
			stats.CPUTime, _ = strconv.ParseFloat(value, 64)
		case "EXITCODE":
			stats.ExitCode, _ = strconv.Atoi(value)
		case "SIGNALED":
			stats.Signaled = value != "0" && value != ""
		case "TERMSIG":
			stats.Signal, _ = strconv.Atoi(value)
		case "EXCEED":
			exceeded, err := classifyExceed(value, exact)
			if err != nil {
				return Stats{}, err
			}
			stats.Exceeded = exceeded
		}
	}
	if !stats.Signaled {
		stats.Signal = 0
	}
	return stats, nil
}

func splitLine(line string) (string, string) {
	idx := strings.Index(line, " ")
	if idx < 0 {
		return line, ""
	}
	return line[:idx], strings.TrimSpace(line[idx+1:])
}

func classifyExceed(value string, exact bool) (result.Exceeded, error) {
	if value == "none" {
		return result.ExceedNone, nil
	}
	upper := strings.ToUpper(value)
	match := func(keyword string) bool {
		if exact {
			return upper == keyword
		}
		return strings.Contains(upper, keyword)
	}
	switch {
	case match("TIME"):
		return result.ExceedTime, nil
	case match("OUTPUT"):
		return result.ExceedOutput, nil
	case match("MEMORY"):
		return result.ExceedMemory, nil
	default:
		return result.ExceedNone, appErr.Newf(appErr.UnknownExceedValue,
			"unexpected EXCEED value: %q", value).
			WithDetail("value", value)
	}
}
