package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/splice/pkg/errors"
	"github.com/arthur-debert/splice/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override, e.g. SPLICE_SOURCE or
// SPLICE_DATA_TITLE for data.title
const EnvPrefix = "SPLICE_"

// ProjectFiles are looked up in order in the project directory
var ProjectFiles = []string{"splice.toml", ".splice.toml", "splice.yaml", ".splice.yaml"}

// Config is the resolved configuration
type Config struct {
	Source   string                 `koanf:"source"`
	Output   string                 `koanf:"output"`
	Dest     string                 `koanf:"dest"`
	Shell    string                 `koanf:"shell"`
	Data     map[string]interface{} `koanf:"data"`
	Commands map[string]string      `koanf:"commands"`

	// File is the project file that was loaded, if any
	File string `koanf:"-"`
}

// LoadOptions selects where configuration comes from
type LoadOptions struct {
	// Dir is searched for ProjectFiles. Empty means the working directory.
	Dir string
	// File forces a specific project file, which must exist
	File string
	// Overrides are applied last, keyed by dotted path
	Overrides map[string]interface{}
	// SkipEnv ignores SPLICE_ environment variables
	SkipEnv bool
}

// Load resolves the configuration layers into a Config
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Project file
	path, err := projectFile(opts)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("loaded project config")
	}

	// 3. Environment
	if !opts.SkipEnv {
		if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
		}
	}

	// 4. Command line
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	cfg.File = path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps an environment variable to a config key. A table prefix
// becomes a path, SPLICE_DATA_MY_VAR is data.my_var, and everything after
// it is kept as written.
func envKey(name string) string {
	key := strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
	for _, table := range []string{"data", "commands"} {
		if rest, ok := strings.CutPrefix(key, table+"_"); ok && rest != "" {
			return table + "." + rest
		}
	}
	return key
}

// Validate checks the fields every command relies on
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Source) == "" {
		return errors.New(errors.ErrConfigValid, "source must not be empty")
	}
	if len(c.Commands) > 0 && strings.TrimSpace(c.Shell) == "" {
		return errors.New(errors.ErrConfigValid, "shell must be set when commands are configured")
	}
	return nil
}

func projectFile(opts LoadOptions) (string, error) {
	if opts.File != "" {
		if _, err := os.Stat(opts.File); err != nil {
			return "", errors.Wrapf(err, errors.ErrNotFound, "config file %s", opts.File).
				WithDetail("path", opts.File)
		}
		return opts.File, nil
	}

	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	for _, name := range ProjectFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// ParseAssignments turns key=value pairs into a map suitable for
// LoadOptions.Overrides, each key placed under prefix
func ParseAssignments(prefix string, pairs []string) (map[string]interface{}, error) {
	out := make(map[string]interface{}, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, errors.Newf(errors.ErrInvalidInput, "expected key=value, got %q", pair)
		}
		if prefix != "" {
			key = prefix + "." + key
		}
		out[key] = value
	}
	return out, nil
}
