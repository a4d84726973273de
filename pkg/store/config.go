package store

import (
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the on-disk workspace database.
type Config interface {
	BasePath() string
}

// LoadConfig resolves the database path from a .mills config file or the
// MILLS_PATH environment variable, defaulting to ~/.mills.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.mills.db")
	viper.SetConfigName(".mills") // .yaml is implicit
	viper.SetEnvPrefix("MILLS")
	viper.AutomaticEnv()

	if override := os.Getenv("MILLS_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
