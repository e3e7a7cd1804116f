package tui

import (
	"strings"
	"testing"
	"time"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
		name  string
		args  []string
	}{
		{"start 2017-06-15", true, "start", []string{"2017-06-15"}},
		{"  CLEAR  ", true, "clear", nil},
		{"block 2017-06-10 2017-06-20 summer trip", true, "block", []string{"2017-06-10", "2017-06-20", "summer", "trip"}},
		{"", false, "", nil},
		{"   ", false, "", nil},
	}
	for _, tt := range tests {
		cmd, ok := parseCommand(tt.input)
		if ok != tt.ok {
			t.Errorf("parseCommand(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			continue
		}
		if !ok {
			continue
		}
		if cmd.name != tt.name {
			t.Errorf("parseCommand(%q) name = %q, want %q", tt.input, cmd.name, tt.name)
		}
		if len(cmd.args) != len(tt.args) {
			t.Errorf("parseCommand(%q) args = %v, want %v", tt.input, cmd.args, tt.args)
			continue
		}
		for i := range tt.args {
			if cmd.args[i] != tt.args[i] {
				t.Errorf("parseCommand(%q) args[%d] = %q, want %q", tt.input, i, cmd.args[i], tt.args[i])
			}
		}
	}
}

func TestSuggestCommand(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"strat", "start"},
		{"ned", "end"},
		{"claer", "clear"},
		{"quti", "quit"},
		{"frobnicate", ""},
	}
	for _, tt := range tests {
		if got := suggestCommand(tt.input); got != tt.want {
			t.Errorf("suggestCommand(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestUnknownCommandStatus(t *testing.T) {
	if got := unknownCommandStatus("strat"); !strings.Contains(got, `"start"`) {
		t.Errorf("status %q should suggest start", got)
	}
	if got := unknownCommandStatus("zzz"); strings.Contains(got, "did you mean") {
		t.Errorf("status %q should not suggest anything", got)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2017-06-15", time.Date(2017, 6, 15, 0, 0, 0, 0, time.UTC)},
		{"2017-06", time.Date(2017, 6, 1, 0, 0, 0, 0, time.UTC)},
		{"2017", time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"15/06/2017", time.Date(2017, 6, 15, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got, err := parseDate(tt.input, "02/01/2006", time.UTC)
		if err != nil {
			t.Errorf("parseDate(%q): %v", tt.input, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("parseDate(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}

	if _, err := parseDate("not a date", "2006-01-02", time.UTC); err == nil {
		t.Fatal("expected error for unparseable input")
	}
}
