package core

import "testing"

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{NoLevel, "NONE"},
		{ErrorLevel, "ERROR"},
		{WarningLevel, "WARNING"},
		{InfoLevel, "INFO"},
		{DebugLevel, "DEBUG"},
		{Level(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestLevelLetter(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{ErrorLevel, "E"},
		{WarningLevel, "W"},
		{InfoLevel, "I"},
		{DebugLevel, "D"},
		{NoLevel, "_"},
		{Level(99), "_"},
	}

	for _, tt := range tests {
		if got := tt.level.Letter(); got != tt.want {
			t.Errorf("Level(%d).Letter() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestLevelOrdering(t *testing.T) {
	// Verbosity increases with the numeric value; the gate relies on this.
	if !(NoLevel < ErrorLevel && ErrorLevel < WarningLevel &&
		WarningLevel < InfoLevel && InfoLevel < DebugLevel) {
		t.Error("levels are not ordered by increasing verbosity")
	}
}
