package creditsafe

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_Defaults(t *testing.T) {
	s, err := LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, DefaultInputFile, s.InputFile)
	assert.Equal(t, DefaultLogFile, s.LogFile)
	assert.NotEmpty(t, s.BaseDir)
	assert.Equal(t, zerolog.InfoLevel, s.Level())
}

func TestLoadSettings_Environment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CREDITSAFE_BASE_DIR", dir)
	t.Setenv("CREDITSAFE_INPUT_FILE", "Companies.xlsx")
	t.Setenv("CREDITSAFE_LOG_LEVEL", "debug")

	s, err := LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "Companies.xlsx"), s.InputPath())
	assert.Equal(t, filepath.Join(dir, DefaultLogFile), s.LogPath())
	assert.Equal(t, zerolog.DebugLevel, s.Level())
}

func TestSettings_Paths(t *testing.T) {
	base := filepath.Join(string(filepath.Separator), "srv", "creditsafe")
	s := Settings{BaseDir: base, InputFile: DefaultInputFile, LogFile: DefaultLogFile}

	assert.Equal(t, filepath.Join(base, DefaultInputFile), s.InputPath())
	assert.Equal(t, filepath.Join(base, "Results.xlsx"), s.OutputPath("Results.xlsx"))

	abs := filepath.Join(string(filepath.Separator), "tmp", "Results.xlsx")
	assert.Equal(t, abs, s.OutputPath(abs))

	s.InputOverride = "other.xlsm"
	assert.Equal(t, "other.xlsm", s.InputPath())
}

func TestSettings_Level(t *testing.T) {
	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{"", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"nonsense", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Settings{LogLevel: tt.input}.Level(), "level %q", tt.input)
	}
}
