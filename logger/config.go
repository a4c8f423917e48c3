package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/martidominguez/nanolog/core"
)

// Backend identifies the output sink a logger dispatches to. The set is
// closed; New selects exactly one sink from it.
type Backend int

const (
	// Console writes to standard output (or a configured writer)
	Console Backend = iota
	// UART writes to a serial port
	UART
	// File appends to a log file
	File
	// Memory retains lines in an in-process ring buffer
	Memory
	// Network is reserved; selecting it fails with ErrUnsupportedBackend
	Network
)

// String returns the string representation of the backend
func (b Backend) String() string {
	switch b {
	case Console:
		return "console"
	case UART:
		return "uart"
	case File:
		return "file"
	case Memory:
		return "memory"
	case Network:
		return "network"
	default:
		return "unknown"
	}
}

// ParseBackend converts a string to a Backend
func ParseBackend(s string) (Backend, error) {
	switch strings.ToLower(s) {
	case "console", "terminal":
		return Console, nil
	case "uart":
		return UART, nil
	case "file":
		return File, nil
	case "memory":
		return Memory, nil
	case "network":
		return Network, nil
	default:
		return Console, fmt.Errorf("nanolog: unknown backend %q", s)
	}
}

// Config is the runtime configuration surface of a Logger.
type Config struct {
	// Enabled is the master switch; when false every emission is filtered.
	Enabled bool
	// MinLevel filters out messages more verbose than this level.
	MinLevel core.Level
	// Per-level switches, ANDed with the MinLevel filter.
	EnableError   bool
	EnableWarning bool
	EnableInfo    bool
	EnableDebug   bool
	// MaxMessage bounds the rendered user message in bytes
	// (default: core.DefaultMaxMessage).
	MaxMessage int
	// UseColor wraps lines in ANSI escapes keyed by level.
	UseColor bool
	// Timestamp includes a second-resolution wall-clock timestamp.
	Timestamp bool
	// JSON switches the output mode from text lines to JSON objects.
	JSON bool
	// Backend selects the output sink.
	Backend Backend
	// Writer overrides the console sink's destination (default: os.Stdout).
	Writer io.Writer
	// File sink settings.
	FileDir  string
	FileName string
	FileExt  string
	// MemorySize is the memory sink's line capacity.
	MemorySize int
	// UART sink settings.
	UARTPort string
	UARTBaud int
}

// DefaultConfig returns a fully populated configuration: all levels
// enabled, timestamps on, color off, console backend.
func DefaultConfig() Config {
	return Config{
		Enabled:       true,
		MinLevel:      core.DebugLevel,
		EnableError:   true,
		EnableWarning: true,
		EnableInfo:    true,
		EnableDebug:   true,
		MaxMessage:    core.DefaultMaxMessage,
		Timestamp:     true,
		Backend:       Console,
		FileDir:       "LogOutput",
		FileName:      "log",
		FileExt:       "txt",
	}
}

// applyDefaults fills in zero-value size fields. Boolean switches are
// taken as-is; start from DefaultConfig to get everything enabled.
func applyDefaults(cfg *Config) {
	if cfg.MaxMessage <= 0 {
		cfg.MaxMessage = core.DefaultMaxMessage
	}
	if cfg.FileDir == "" {
		cfg.FileDir = "LogOutput"
	}
	if cfg.FileName == "" {
		cfg.FileName = "log"
	}
	if cfg.FileExt == "" {
		cfg.FileExt = "txt"
	}
}

// fileConfig is the YAML schema for LoadConfig. Pointer fields
// distinguish "absent" from "false" so the defaults survive a sparse
// file.
type fileConfig struct {
	Enabled  *bool  `yaml:"enabled"`
	MinLevel string `yaml:"min_level"`
	Levels   struct {
		Error   *bool `yaml:"error"`
		Warning *bool `yaml:"warning"`
		Info    *bool `yaml:"info"`
		Debug   *bool `yaml:"debug"`
	} `yaml:"levels"`
	MaxMessage int    `yaml:"max_message"`
	UseColor   *bool  `yaml:"use_color"`
	Timestamp  *bool  `yaml:"timestamp"`
	JSON       *bool  `yaml:"json"`
	Backend    string `yaml:"backend"`
	File       struct {
		Dir  string `yaml:"dir"`
		Name string `yaml:"name"`
		Ext  string `yaml:"ext"`
	} `yaml:"file"`
	MemorySize int `yaml:"memory_size"`
	UART       struct {
		Port string `yaml:"port"`
		Baud int    `yaml:"baud"`
	} `yaml:"uart"`
}

// LoadConfig reads a YAML configuration file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("nanolog: reading config %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("nanolog: parsing config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if fc.Enabled != nil {
		cfg.Enabled = *fc.Enabled
	}
	if fc.MinLevel != "" {
		cfg.MinLevel = ParseLevel(fc.MinLevel)
	}
	if fc.Levels.Error != nil {
		cfg.EnableError = *fc.Levels.Error
	}
	if fc.Levels.Warning != nil {
		cfg.EnableWarning = *fc.Levels.Warning
	}
	if fc.Levels.Info != nil {
		cfg.EnableInfo = *fc.Levels.Info
	}
	if fc.Levels.Debug != nil {
		cfg.EnableDebug = *fc.Levels.Debug
	}
	if fc.MaxMessage > 0 {
		cfg.MaxMessage = fc.MaxMessage
	}
	if fc.UseColor != nil {
		cfg.UseColor = *fc.UseColor
	}
	if fc.Timestamp != nil {
		cfg.Timestamp = *fc.Timestamp
	}
	if fc.JSON != nil {
		cfg.JSON = *fc.JSON
	}
	if fc.Backend != "" {
		b, err := ParseBackend(fc.Backend)
		if err != nil {
			return Config{}, err
		}
		cfg.Backend = b
	}
	if fc.File.Dir != "" {
		cfg.FileDir = fc.File.Dir
	}
	if fc.File.Name != "" {
		cfg.FileName = fc.File.Name
	}
	if fc.File.Ext != "" {
		cfg.FileExt = fc.File.Ext
	}
	if fc.MemorySize > 0 {
		cfg.MemorySize = fc.MemorySize
	}
	if fc.UART.Port != "" {
		cfg.UARTPort = fc.UART.Port
	}
	if fc.UART.Baud > 0 {
		cfg.UARTBaud = fc.UART.Baud
	}

	return cfg, nil
}
