package store

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config tells the store where its data lives.
type Config interface {
	BasePath() string
}

// LoadConfig resolves the store path from a .quirk config file or QUIRK_*
// environment variables, defaulting to ~/.quirk.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.quirk.db")
	viper.SetConfigName(".quirk") // .yaml is implicit
	viper.SetEnvPrefix("QUIRK")
	viper.AutomaticEnv()

	if override := os.Getenv("QUIRK_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: reading config file: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expanding path: %w", err)
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
