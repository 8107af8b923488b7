package settings

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/kirsle/configdir"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const (
	KeyPlayer      = "player"
	KeyStartLevel  = "start_level"
	KeyBaseScore   = "base_score"
	KeyGhost       = "ghost"
	KeySpawnColumn = "spawn_column"
	KeyLogFile     = "log_file"
)

// Config is the typed view of the settings file
type Config struct {
	Player      string `mapstructure:"player"`
	StartLevel  int    `mapstructure:"start_level"`
	BaseScore   int    `mapstructure:"base_score"`
	Ghost       bool   `mapstructure:"ghost"`
	SpawnColumn int    `mapstructure:"spawn_column"`
	LogFile     string `mapstructure:"log_file"`
}

var defaults = map[string]any{
	KeyPlayer:      "",
	KeyStartLevel:  1,
	KeyBaseScore:   100,
	KeyGhost:       true,
	KeySpawnColumn: 3,
	KeyLogFile:     ".blockfall.log",
}

type Settings struct {
	changed bool
}

var settings *Settings

// ReadSettings loads the settings file, creating it with defaults when missing
func ReadSettings() (*Settings, error) {
	if settings != nil {
		return settings, nil
	}

	configPath := configdir.LocalConfig("blockfall")
	configPathFlag := viper.GetString("config-path")
	if len(configPathFlag) > 0 {
		configPath = configPathFlag
	}
	err := configdir.MakePath(configPath)
	if err != nil {
		return nil, err
	}

	for key, value := range defaults {
		viper.SetDefault(key, value)
	}

	viper.SetConfigName("settings")
	viper.SetConfigType("json")
	viper.AddConfigPath(configPath)
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading settings: %w", err)
		}
		// Force config creation
		if err := viper.SafeWriteConfig(); err != nil {
			return nil, fmt.Errorf("error creating settings: %w", err)
		}
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading settings: %w", err)
		}
	}

	settings = &Settings{}
	return settings, nil
}

// PersistChanges writes the settings file if anything was set
func PersistChanges() error {
	if settings == nil || !settings.changed {
		return nil
	}
	if err := viper.WriteConfig(); err != nil {
		return fmt.Errorf("error saving settings: %w", err)
	}
	settings.changed = false
	return nil
}

// Keys returns the known setting keys, sorted
func Keys() []string {
	keys := maps.Keys(defaults)
	slices.Sort(keys)
	return keys
}

// Config decodes all settings into a Config
func (s *Settings) Config() (Config, error) {
	var config Config
	if err := mapstructure.WeakDecode(viper.AllSettings(), &config); err != nil {
		return config, fmt.Errorf("error decoding settings: %w", err)
	}
	return config, nil
}

// Set parses value for key and stores it
func (s *Settings) Set(key string, value string) error {
	var parsed any
	switch key {
	case KeyPlayer, KeyLogFile:
		parsed = value
	case KeyStartLevel, KeyBaseScore, KeySpawnColumn:
		number, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s must be a number: %w", key, err)
		}
		if number < 0 {
			return fmt.Errorf("%s must not be negative", key)
		}
		parsed = number
	case KeyGhost:
		if value != "on" && value != "off" {
			return fmt.Errorf("%s must be either 'on' or 'off'", key)
		}
		parsed = value == "on"
	default:
		return fmt.Errorf("unknown config: %s", key)
	}
	viper.Set(key, parsed)
	s.changed = true
	return nil
}

// Get returns the raw value of key
func (s *Settings) Get(key string) any {
	return viper.Get(key)
}

// SetPlayer remembers the player name
func (s *Settings) SetPlayer(name string) {
	viper.Set(KeyPlayer, name)
	s.changed = true
}

// GetPlayer returns the remembered player name
func (s *Settings) GetPlayer() string {
	return viper.GetString(KeyPlayer)
}

// ConfigFile returns the path of the settings file in use
func (s *Settings) ConfigFile() string {
	return viper.ConfigFileUsed()
}
