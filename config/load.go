package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"hive/internal/domain/constants"
	"hive/internal/errors"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultMaxRequestBodySize = "100KB"
	defaultStoreDriver        = constants.StoreDriverMemory
	defaultDotEnvFile         = ".env"
	replicaEnvPrefix          = "POSTGRES_REPLICAS_"
)

// New loads config.yaml from the working directory or a config directory up
// to two levels above it.
func New() (*Config, error) {
	if err := loadDotEnv(defaultDotEnvFile); err != nil {
		return nil, err
	}

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)
	if err := validate(cfg); err != nil {
		return nil, err
	}

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = replicasFromEnv()
	}

	return cfg, nil
}

// LoadWithEnv reads <name>.yaml and overlays environment variables. An
// underscored variable overrides the YAML key it spells case-insensitively,
// so RATELIMIT_REQUESTSPERSECOND sets rateLimit.requestsPerSecond.
func LoadWithEnv[T any](name string, dirs ...string) (*T, error) {
	path, err := findConfigFile(name+".yaml", dirs)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	fromYAML := k.Raw()
	overlay := env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(key, fromYAML), value
		},
	})
	if err := k.Load(overlay, nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	cfg := new(T)
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
			MatchName:        strings.EqualFold,
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s", path)
	}

	return cfg, nil
}

// findConfigFile looks in the working directory first, then in dirs
// relative to it.
func findConfigFile(fileName string, dirs []string) (string, error) {
	candidates := []string{fileName}
	if len(dirs) > 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "os.Getwd")
		}
		for _, dir := range dirs {
			candidates = append(candidates, filepath.Join(pwd, dir, fileName))
		}
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("config file %s not found in any search path", fileName)
}

// loadDotEnv exports an optional .env file. Variables already set in the
// process win.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.Wrapf(err, "load %s", path)
	}

	return nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Store == nil {
		cfg.Store = &StoreConfig{}
	}
	if strings.TrimSpace(cfg.Store.Driver) == "" {
		cfg.Store.Driver = defaultStoreDriver
	}
}

// validate rejects combinations that would only fail later, at first use.
func validate(cfg *Config) error {
	var problems []error

	switch cfg.Store.Driver {
	case constants.StoreDriverMemory:
	case constants.StoreDriverPostgres:
		if cfg.Postgres == nil {
			problems = append(problems, errors.New("store.driver postgres needs a postgres section"))
		}
	case constants.StoreDriverRedis:
		if cfg.Redis == nil || cfg.Redis.Addr == "" {
			problems = append(problems, errors.New("store.driver redis needs redis.addr"))
		}
	default:
		problems = append(problems, errors.Errorf("unknown store.driver %q", cfg.Store.Driver))
	}

	if cfg.PubSub != nil {
		switch cfg.PubSub.Provider {
		case "", constants.PubSubProviderNoop, constants.PubSubProviderLocal,
			constants.PubSubProviderGoogle, constants.PubSubProviderNATS:
		default:
			problems = append(problems, errors.Errorf("unknown pubsub.provider %q", cfg.PubSub.Provider))
		}
	}

	if cfg.Mail != nil {
		switch cfg.Mail.Provider {
		case "", constants.MailProviderLog, constants.MailProviderSendGrid:
		default:
			problems = append(problems, errors.Errorf("unknown mail.provider %q", cfg.Mail.Provider))
		}
	}

	return errors.Join(problems...)
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		matched, next, ok := findExistingSegment(current, segment)
		if !ok {
			matched, next = segment, nil
		}
		canonical = append(canonical, matched)
		current = next
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (string, map[string]any, bool) {
	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) == needle {
			child, _ := value.(map[string]any)

			return key, child, true
		}
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}

		return -1
	}, s)
}

// replicasFromEnv reads POSTGRES_REPLICAS_<n>_{HOST,PORT,USERNAME,PASSWORD}
// for n = 0, 1, ... until a host or port is missing.
func replicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig
	for i := 0; ; i++ {
		get := func(field string) string {
			return os.Getenv(replicaEnvPrefix + strconv.Itoa(i) + "_" + field)
		}
		if get("HOST") == "" || get("PORT") == "" {
			return replicas
		}
		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     get("HOST"),
			Port:     get("PORT"),
			UserName: get("USERNAME"),
			Password: get("PASSWORD"),
		})
	}
}
