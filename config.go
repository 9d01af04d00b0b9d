package kspdv

import (
	"fmt"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// ConfigEnv is the environment variable of the directory holding conf.toml.
	ConfigEnv = "KSPDV_CONFIG"
	envPrefix = "KSPDV"
)

var (
	cfgMu     sync.Mutex
	cfgLoaded = false
	cfgErr    error
	config    = _dvconfig{outputDir: "."}
)

// _dvconfig is a "hidden" struct, just use `dvConfig`
type _dvconfig struct {
	outputDir string
}

// OutputDir returns the directory where exports are written.
func (c _dvconfig) OutputDir() string {
	return c.outputDir
}

// LoadConfig (re)loads the configuration from the environment, a .env file if any,
// and $KSPDV_CONFIG/conf.toml if that variable is set. The keys are also set on
// the global viper instance, where general.verbose is read by the CLI.
func LoadConfig() error {
	cfgMu.Lock()
	defer cfgMu.Unlock()
	config, cfgErr = readConfig(viper.GetViper())
	cfgLoaded = true
	return cfgErr
}

// dvConfig returns the configuration, loading it on first use. The error of the
// last load is returned along with the defaults if it failed.
func dvConfig() (_dvconfig, error) {
	cfgMu.Lock()
	loaded := cfgLoaded
	cfgMu.Unlock()
	if !loaded {
		LoadConfig()
	}
	cfgMu.Lock()
	defer cfgMu.Unlock()
	return config, cfgErr
}

func readConfig(v *viper.Viper) (_dvconfig, error) {
	// A missing .env is not an error.
	godotenv.Load()

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetDefault("general.output_path", ".")
	v.SetDefault("general.verbose", false)
	v.BindEnv("general.output_path", envPrefix+"_OUTPUT_PATH")
	v.BindEnv("general.verbose", envPrefix+"_VERBOSE")

	if confPath := os.Getenv(ConfigEnv); confPath != "" {
		v.SetConfigName("conf")
		v.SetConfigType("toml")
		v.AddConfigPath(confPath)
		if err := v.ReadInConfig(); err != nil {
			return _dvconfig{outputDir: "."}, fmt.Errorf("%w: %s/conf.toml: %s", ErrInvalidConfiguration, confPath, err)
		}
	}
	return _dvconfig{outputDir: v.GetString("general.output_path")}, nil
}
