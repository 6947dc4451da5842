package cli

import (
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/mcoot/reversi-go/internal/factory"
	"github.com/mcoot/reversi-go/internal/model"
)

// Config holds CLI configuration
type Config struct {
	Board   string
	Size    int
	Output  string
	Verbose bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Board:   getEnvOrDefault("REVERSI_BOARD", string(model.BoardKindHex)),
		Size:    getEnvIntOrDefault("REVERSI_SIZE", 0),
		Output:  "text",
		Verbose: false,
	}
}

// BoardKind validates the configured board
func (c *Config) BoardKind() (model.BoardKind, error) {
	return model.ParseBoardKind(c.Board)
}

// SideLength returns the configured size, or the board's default if unset
func (c *Config) SideLength(kind model.BoardKind) int {
	if c.Size > 0 {
		return c.Size
	}
	return kind.DefaultSideLength()
}

// NewLogger creates the JSON logger for a command. Only warnings are shown
// unless verbose output is on.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if c.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// FactoryConfig builds the match wiring shared by every command
func (c *Config) FactoryConfig(black, white string, logger *slog.Logger) (factory.Config, error) {
	kind, err := c.BoardKind()
	if err != nil {
		return factory.Config{}, err
	}
	return factory.Config{
		Board:      kind,
		SideLength: c.SideLength(kind),
		Black:      black,
		White:      white,
		Logger:     logger,
	}, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvIntOrDefault(key string, defaultVal int) int {
	val, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultVal
	}
	return val
}
