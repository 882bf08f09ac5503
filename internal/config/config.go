package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment key, e.g. AUTOWATCH_TIMEOUT.
const EnvPrefix = "AUTOWATCH"

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the settings of one autowatch run. The bearer token is not part
// of it; see the credential package.
type Config struct {
	Env          string        `mapstructure:"env"`           // "production" switches to JSON logs
	LogLevel     string        `mapstructure:"log_level"`     // zap level name
	Origin       string        `mapstructure:"origin"`        // scheme://host of the platform API
	ProgressPath string        `mapstructure:"progress_path"` // GraphQL path of the progress service
	OutlinePath  string        `mapstructure:"outline_path"`  // GraphQL path of the course-outline service
	Timeout      time.Duration `mapstructure:"timeout"`       // per GraphQL call
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Env:          "local",
		LogLevel:     "info",
		Origin:       "https://api.studyplatform.app",
		ProgressPath: "/progress/graphql",
		OutlinePath:  "/course-outline/graphql",
		Timeout:      30 * time.Second,
	}
}

// ProgressURL is the endpoint used for videoProgress and storeDailyVideoProgress.
func (c Config) ProgressURL() string {
	return strings.TrimRight(c.Origin, "/") + c.ProgressPath
}

// OutlineURL is the endpoint used for GetMe and CourseOutline.
func (c Config) OutlineURL() string {
	return strings.TrimRight(c.Origin, "/") + c.OutlinePath
}

// Validate checks the fields that would otherwise fail at the first request.
func (c Config) Validate() error {
	u, err := url.Parse(c.Origin)
	if err != nil || u.Host == "" || (u.Scheme != "https" && u.Scheme != "http") {
		return fmt.Errorf("%w: origin %q must be an http(s) URL", ErrInvalidConfig, c.Origin)
	}
	if !strings.HasPrefix(c.ProgressPath, "/") || !strings.HasPrefix(c.OutlinePath, "/") {
		return fmt.Errorf("%w: endpoint paths must start with /", ErrInvalidConfig)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive, got %s", ErrInvalidConfig, c.Timeout)
	}
	return nil
}

// Load reads configuration from, in increasing precedence: defaults, an
// optional autowatch.yaml, and AUTOWATCH_* environment variables. A .env file
// in the working directory is loaded into the process environment first.
// searchPaths replaces the default config file locations when given.
func Load(searchPaths ...string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()
	v.SetConfigName("autowatch")
	v.SetConfigType("yaml")
	if len(searchPaths) == 0 {
		searchPaths = defaultSearchPaths()
	}
	for _, p := range searchPaths {
		v.AddConfigPath(p)
	}

	def := Default()
	v.SetDefault("env", def.Env)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("origin", def.Origin)
	v.SetDefault("progress_path", def.ProgressPath)
	v.SetDefault("outline_path", def.OutlinePath)
	v.SetDefault("timeout", def.Timeout.String())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func defaultSearchPaths() []string {
	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "autowatch"))
	}
	return paths
}
