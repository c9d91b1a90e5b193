package project

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig marks values that parse but make no sense.
var ErrInvalidConfig = errors.New("invalid config")

// Config - итоговые настройки команды tokenize.
// Порядок слоёв: defaults < mygo.toml < env < flags.
type Config struct {
	Tokenize TokenizeConfig `toml:"tokenize"`
	Trace    TraceConfig    `toml:"trace"`
}

// TokenizeConfig is the [tokenize] section.
type TokenizeConfig struct {
	Format         string `toml:"format"`          // pretty|json|yaml|msgpack
	MaxDiagnostics int    `toml:"max_diagnostics"` // 0 - без ограничения
	Jobs           int    `toml:"jobs"`            // 0 - GOMAXPROCS
	KeepTrivia     bool   `toml:"keep_trivia"`
	NFC            bool   `toml:"nfc"`
	Cache          bool   `toml:"cache"` // кэш токенов в $XDG_CACHE_HOME/mygo
}

// TraceConfig is the [trace] section.
type TraceConfig struct {
	Level  string `toml:"level"`
	Output string `toml:"output"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Tokenize: TokenizeConfig{
			Format:         "pretty",
			MaxDiagnostics: 100,
		},
		Trace: TraceConfig{
			Level:  "off",
			Output: "-",
		},
	}
}

// LoadConfig decodes path on top of Default. Keys absent from the file keep
// their default values; unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, fmt.Errorf("%s: %w: unknown keys %s", path, ErrInvalidConfig, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch strings.ToLower(c.Tokenize.Format) {
	case "pretty", "json", "yaml", "yml", "msgpack", "mp":
	default:
		return fmt.Errorf("%w: tokenize.format %q", ErrInvalidConfig, c.Tokenize.Format)
	}
	if c.Tokenize.MaxDiagnostics < 0 {
		return fmt.Errorf("%w: tokenize.max_diagnostics must be >= 0", ErrInvalidConfig)
	}
	if c.Tokenize.Jobs < 0 {
		return fmt.Errorf("%w: tokenize.jobs must be >= 0", ErrInvalidConfig)
	}
	return nil
}

// Overrides - значения, заданные явно (env или флагами). nil - не задано.
type Overrides struct {
	Format         *string
	MaxDiagnostics *int
	Jobs           *int
	KeepTrivia     *bool
	NFC            *bool
	Cache          *bool
	TraceLevel     *string
	TraceOutput    *string
}

// Apply returns c with every set override written over it.
func (c Config) Apply(o Overrides) Config {
	if o.Format != nil {
		c.Tokenize.Format = *o.Format
	}
	if o.MaxDiagnostics != nil {
		c.Tokenize.MaxDiagnostics = *o.MaxDiagnostics
	}
	if o.Jobs != nil {
		c.Tokenize.Jobs = *o.Jobs
	}
	if o.KeepTrivia != nil {
		c.Tokenize.KeepTrivia = *o.KeepTrivia
	}
	if o.NFC != nil {
		c.Tokenize.NFC = *o.NFC
	}
	if o.Cache != nil {
		c.Tokenize.Cache = *o.Cache
	}
	if o.TraceLevel != nil {
		c.Trace.Level = *o.TraceLevel
	}
	if o.TraceOutput != nil {
		c.Trace.Output = *o.TraceOutput
	}
	return c
}

// Resolve builds the effective configuration for a run started in startDir.
// configPath is empty when no mygo.toml was found.
func Resolve(startDir string, flags Overrides) (cfg Config, configPath string, err error) {
	cfg = Default()
	path, ok, err := FindConfig(startDir)
	if err != nil {
		return Config{}, "", err
	}
	if ok {
		if cfg, err = LoadConfig(path); err != nil {
			return Config{}, path, err
		}
		configPath = path
	}
	cfg = cfg.Apply(EnvOverrides()).Apply(flags)
	if err := cfg.Validate(); err != nil {
		return Config{}, configPath, err
	}
	return cfg, configPath, nil
}
