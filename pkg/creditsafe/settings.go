// Package creditsafe retrieves company financial records from the Creditsafe
// Connect API and writes one report tab per company into a template workbook.
package creditsafe

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const (
	// DefaultInputFile is the input workbook looked up in the base directory.
	DefaultInputFile = "Creditsafe.xlsm"
	// DefaultLogFile is the run log appended to in the base directory.
	DefaultLogFile = "Creditsafe Log.txt"
)

// Settings configures where the connector finds its files.
type Settings struct {
	// BaseDir holds the input workbook, the output workbook and the log.
	BaseDir string `mapstructure:"base_dir"`
	// InputFile is the input workbook name or path.
	InputFile string `mapstructure:"input_file"`
	// LogFile is the log file name or path.
	LogFile string `mapstructure:"log_file"`
	// LogLevel is a zerolog level name.
	LogLevel string `mapstructure:"log_level"`
	// InputOverride, when set, replaces the input workbook path (CLI argument).
	InputOverride string `mapstructure:"-"`
}

// LoadSettings reads CREDITSAFE_* environment variables over the defaults.
func LoadSettings() (Settings, error) {
	v := viper.New()
	v.SetEnvPrefix("CREDITSAFE")
	v.AutomaticEnv()

	v.SetDefault("base_dir", executableDir())
	v.SetDefault("input_file", DefaultInputFile)
	v.SetDefault("log_file", DefaultLogFile)
	v.SetDefault("log_level", zerolog.LevelInfoValue)

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings: %w", err)
	}
	return s, nil
}

// InputPath returns the input workbook path.
func (s Settings) InputPath() string {
	if s.InputOverride != "" {
		return s.InputOverride
	}
	return s.resolve(s.InputFile)
}

// LogPath returns the log file path.
func (s Settings) LogPath() string {
	return s.resolve(s.LogFile)
}

// OutputPath returns the path of the named output workbook.
func (s Settings) OutputPath(name string) string {
	return s.resolve(name)
}

// Level parses LogLevel, falling back to info.
func (s Settings) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(s.LogLevel)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

func (s Settings) resolve(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.BaseDir, name)
}

func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}
