package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
)

// command is one parsed command-mode input line.
type command struct {
	name string
	args []string
}

var commandNames = []string{
	"start",
	"end",
	"clear",
	"block",
	"unblock",
	"goto",
	"today",
	"granularity",
	"save",
	"quit",
}

func parseCommand(input string) (command, bool) {
	fields := strings.Fields(strings.TrimSpace(input))
	if len(fields) == 0 {
		return command{}, false
	}
	return command{name: strings.ToLower(fields[0]), args: fields[1:]}, true
}

func knownCommand(name string) bool {
	for _, c := range commandNames {
		if c == name {
			return true
		}
	}
	return false
}

// suggestCommand returns the closest known command within an edit distance
// of 2, or "" when nothing is close enough to be a plausible typo.
func suggestCommand(name string) string {
	best, bestDist := "", 3
	for _, c := range commandNames {
		if d := levenshtein.ComputeDistance(name, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

func unknownCommandStatus(name string) string {
	if s := suggestCommand(name); s != "" {
		return fmt.Sprintf("unknown command %q (did you mean %q?)", name, s)
	}
	return fmt.Sprintf("unknown command %q", name)
}

// parseDate accepts the configured display format first, then ISO dates.
func parseDate(s, format string, loc *time.Location) (time.Time, error) {
	for _, layout := range []string{format, "2006-01-02", "2006-01", "2006"} {
		if layout == "" {
			continue
		}
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", s)
}
