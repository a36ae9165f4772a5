package repo

import (
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"StageDJ/audio"
	"StageDJ/emulator"

	"github.com/sirkon/errors"
	"gopkg.in/yaml.v3"
)

const (
	folderName = "StageDJ"
	configName = "config.yml"
)

// Config is the user's config.yml.
type Config struct {
	Process          string                  `yaml:"process"`
	PollInterval     int64                   `yaml:"pollInterval"`
	ReconnectBackoff int64                   `yaml:"reconnectBackoff"`
	Volume           float64                 `yaml:"volume"`
	// PausedMultiplier scales Volume while the game is paused.
	PausedMultiplier float64                 `yaml:"pausedMultiplier"`
	Hooks            string                  `yaml:"hooks,omitempty"`
	Feed             string                  `yaml:"feed,omitempty"`
	Layout           emulator.LayoutOverride `yaml:"layout,omitempty"`
	Playlists        map[int][]Song          `yaml:"playlists"`

	dir string
}

// Song is a playlist entry. A bare string in YAML is taken as the path.
type Song struct {
	audio.Source `yaml:",inline"`
}

func (s *Song) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		s.Path = value.Value
		return nil
	}

	var src audio.Source
	if err := value.Decode(&src); err != nil {
		return err
	}
	s.Source = src
	return nil
}

func DefaultConfig() *Config {
	return &Config{
		Process:          emulator.DefaultProcessName,
		PollInterval:     10,
		ReconnectBackoff: 1000,
		Volume:           0.5,
		PausedMultiplier: 0.2,
		Playlists:        map[int][]Song{},
	}
}

// SetupPaths makes sure ~/StageDJ exists and returns it.
func SetupPaths() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	folder := filepath.Join(home, folderName)
	err = os.MkdirAll(folder, os.ModePerm)
	if err != nil {
		return "", err
	}

	return folder, nil
}

// ConfigPath is the default config.yml location inside folder.
func ConfigPath(folder string) string {
	return filepath.Join(folder, configName)
}

// LoadConfig reads path. A missing file gives the defaults, a broken one is an
// error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.dir = filepath.Dir(path)

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, errors.Wrap(err, "read config").Str("path", path)
	}

	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, errors.Wrap(err, "parse config").Str("path", path)
	}

	if err := cfg.validate(); err != nil {
		return nil, errors.Wrap(err, "validate config").Str("path", path)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Process == "" {
		return errors.New("process name is empty")
	}
	if c.PollInterval <= 0 {
		return errors.New("pollInterval must be positive").Int64("pollInterval", c.PollInterval)
	}
	if c.ReconnectBackoff <= 0 {
		return errors.New("reconnectBackoff must be positive").Int64("reconnectBackoff", c.ReconnectBackoff)
	}
	if c.Volume < 0 || c.Volume > 1 {
		return errors.New("volume must be within [0, 1]").Float64("volume", c.Volume)
	}
	if c.PausedMultiplier < 0 || c.PausedMultiplier > 1 {
		return errors.New("pausedMultiplier must be within [0, 1]").Float64("pausedMultiplier", c.PausedMultiplier)
	}
	for stage := range c.Playlists {
		if stage < 0 || stage > 0xFF {
			return errors.New("playlist stage does not fit in a byte").Int("stage", stage)
		}
	}
	return c.MemoryLayout().Validate()
}

func (c *Config) PollEvery() time.Duration {
	return time.Duration(c.PollInterval) * time.Millisecond
}

func (c *Config) BackoffEvery() time.Duration {
	return time.Duration(c.ReconnectBackoff) * time.Millisecond
}

// MemoryLayout is the default layout with the config overrides applied.
func (c *Config) MemoryLayout() emulator.Layout {
	return emulator.DefaultLayout().Merge(c.Layout)
}

// HooksPath resolves the hooks script relative to the config file.
func (c *Config) HooksPath() string {
	if c.Hooks == "" || filepath.IsAbs(c.Hooks) {
		return c.Hooks
	}
	return filepath.Join(c.dir, c.Hooks)
}

// Pick returns a random song for the stage. Relative song paths are resolved
// against the config file's folder.
func (c *Config) Pick(stage emulator.StageID) (audio.Source, bool) {
	songs := c.Playlists[int(stage)]
	if len(songs) == 0 {
		return audio.Source{}, false
	}

	src := songs[rand.Intn(len(songs))].Source
	if !filepath.IsAbs(src.Path) && c.dir != "" {
		src.Path = filepath.Join(c.dir, src.Path)
	}
	return src, true
}
