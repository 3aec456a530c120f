package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the application reads.
const EnvPrefix = "FORTUNE"

// Default values
const (
	DefaultLogLevel = "warn"
	DefaultTimezone = "Local"
	DefaultFormat   = "text"
)

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"log-level":  "app.log_level",
	"timezone":   "app.timezone",
	"store-path": "store.path",
	"format":     "output.format",
}

// RegisterFlags adds the flags that can override configuration values to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a YAML config file (env "+EnvPrefix+"_CONFIG)")
	fs.String("log-level", "", "log level: debug, info, warn or error")
	fs.String("timezone", "", "IANA time zone used to decide today's date")
	fs.String("store-path", "", "file the birthday is stored in")
	fs.String("format", "", "output format: text or json")
}

// Load configuration from defaults, an optional YAML config file, environment
// variables and command-line flags, in increasing order of precedence.
// fs may be nil. Returns a populated Config struct or an error if
// loading/validation fails.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("app.log_level", DefaultLogLevel)
	v.SetDefault("app.timezone", DefaultTimezone)
	v.SetDefault("store.path", DefaultStorePath())
	v.SetDefault("output.format", DefaultFormat)

	// Configure environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind environment variables so Unmarshal sees them
	bindEnvs := []struct {
		key    string
		envVar string
	}{
		{"app.log_level", EnvPrefix + "_APP_LOG_LEVEL"},
		{"app.timezone", EnvPrefix + "_APP_TIMEZONE"},
		{"store.path", EnvPrefix + "_STORE_PATH"},
		{"output.format", EnvPrefix + "_OUTPUT_FORMAT"},
	}
	for _, env := range bindEnvs {
		if err := v.BindEnv(env.key, env.envVar); err != nil {
			return nil, fmt.Errorf("error binding environment variable %s: %w", env.envVar, err)
		}
	}

	if fs != nil {
		for name, key := range flagKeys {
			flag := fs.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("error binding flag --%s: %w", name, err)
			}
		}
	}

	if path := configFilePath(fs); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "fortune"))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	// Unmarshal and validate
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := newValidator().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// newValidator returns a validator that also understands the "location" tag,
// which accepts any name time.LoadLocation accepts, including "Local" and "UTC".
func newValidator() *validator.Validate {
	validate := validator.New()
	_ = validate.RegisterValidation("location", func(fl validator.FieldLevel) bool {
		_, err := time.LoadLocation(fl.Field().String())
		return err == nil
	})
	return validate
}

// DefaultStorePath returns the default birthday file location under the
// user's configuration directory, falling back to the working directory.
func DefaultStorePath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "fortune", "birthday.yaml")
	}
	return filepath.Join(".", ".fortune-birthday.yaml")
}

// configFilePath picks the explicit config file from --config or FORTUNE_CONFIG.
func configFilePath(fs *pflag.FlagSet) string {
	if fs != nil {
		if flag := fs.Lookup("config"); flag != nil && flag.Value.String() != "" {
			return flag.Value.String()
		}
	}
	return os.Getenv(EnvPrefix + "_CONFIG")
}
