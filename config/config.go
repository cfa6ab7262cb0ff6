package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath             = "."
	defaultAPITimeout       = 15 * time.Second
	defaultRefreshDelay     = time.Second
	defaultListDescLimit    = 30
	defaultFavoriteDescLen  = 100
	defaultStorageProvider  = StorageProviderMemory
	defaultBackendTokenTTL  = 24 * time.Hour
	defaultRegionLatitude   = 35.0068
	defaultRegionLongitude  = 10.6866
	defaultRegionDelta      = 5
	defaultBackendPort      = 8080
	defaultServiceName      = "placebook"
	defaultBackendSecretKey = "placebook-dev-secret"
	defaultBackendBodyLimit = "1M"
)

// Storage providers for the local key-value persistence.
const (
	StorageProviderMemory = "memory"
	StorageProviderBlob   = "blob"
	StorageProviderRedis  = "redis"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	// API describes the remote places service the client talks to
	API APIConfig `json:"api" yaml:"api"`

	// Storage selects the key-value backend behind the favorites and token store
	Storage StorageConfig `json:"storage" yaml:"storage"`

	Favorites FavoritesConfig `json:"favorites" yaml:"favorites"`

	Places PlacesConfig `json:"places" yaml:"places"`

	// Backend configures the development places service (cmd/placesd)
	Backend *BackendConfig `json:"backend" yaml:"backend"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// APIConfig defines where the remote places service lives
type APIConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// StorageConfig defines the local persistence backend
type StorageConfig struct {
	// Provider is one of "memory", "blob" or "redis"
	Provider string `json:"provider" yaml:"provider"`

	// BlobURL is a gocloud.dev bucket URL (mem://, file:///path, s3://bucket, gs://bucket)
	BlobURL string `json:"blobUrl" yaml:"blobUrl"`

	// KeyPrefix is prepended to every key written by the blob and redis backends
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`

	Redis RedisConfig `json:"redis" yaml:"redis"`
}

type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// FavoritesConfig defines the awaited places policy
type FavoritesConfig struct {
	// AllowDuplicates keeps the append-always behavior; by default entries are unique by id
	AllowDuplicates bool `json:"allowDuplicates" yaml:"allowDuplicates"`

	DescriptionLimit int `json:"descriptionLimit" yaml:"descriptionLimit"`
}

// PlacesConfig defines place directory behavior
type PlacesConfig struct {
	// RefreshDelay is how long CreateAndRefresh waits before re-listing
	RefreshDelay time.Duration `json:"refreshDelay" yaml:"refreshDelay"`

	DescriptionLimit int `json:"descriptionLimit" yaml:"descriptionLimit"`

	// AdminOverride lets users with the admin role edit and delete any place
	AdminOverride bool `json:"adminOverride" yaml:"adminOverride"`

	DefaultRegion RegionConfig `json:"defaultRegion" yaml:"defaultRegion"`
}

type RegionConfig struct {
	Latitude       float64 `json:"latitude" yaml:"latitude"`
	Longitude      float64 `json:"longitude" yaml:"longitude"`
	LatitudeDelta  float64 `json:"latitudeDelta" yaml:"latitudeDelta"`
	LongitudeDelta float64 `json:"longitudeDelta" yaml:"longitudeDelta"`
}

// BackendConfig defines the development places service
type BackendConfig struct {
	Port      int           `json:"port" yaml:"port"`
	SecretKey string        `json:"secretKey" yaml:"secretKey"`
	TokenTTL  time.Duration `json:"tokenTTL" yaml:"tokenTTL"`
	// BodyLimit caps request bodies, in echo's size notation ("1M", "512K")
	BodyLimit string        `json:"bodyLimit" yaml:"bodyLimit"`
	Users     []BackendUser `json:"users" yaml:"users"`
}

// BackendUser is a seeded account of the development backend
type BackendUser struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Email    string `json:"email" yaml:"email"`
	Role     string `json:"role" yaml:"role"`
	Password string `json:"password" yaml:"password"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// .env is optional; real environment variables still win
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "load .env")
	}

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// API_BASEURL -> api.baseUrl, aligned with the keys already in YAML
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	return cfg, nil
}

// ApplyDefaults fills every unset field with its default. It is safe to call
// on a zero Config, which is how tests build one.
func (c *Config) ApplyDefaults() {
	if strings.TrimSpace(c.Env.ServiceName) == "" {
		c.Env.ServiceName = defaultServiceName
	}
	if c.API.Timeout <= 0 {
		c.API.Timeout = defaultAPITimeout
	}
	c.API.BaseURL = strings.TrimRight(c.API.BaseURL, "/")

	if strings.TrimSpace(c.Storage.Provider) == "" {
		c.Storage.Provider = defaultStorageProvider
	}

	if c.Favorites.DescriptionLimit <= 0 {
		c.Favorites.DescriptionLimit = defaultFavoriteDescLen
	}

	if c.Places.RefreshDelay <= 0 {
		c.Places.RefreshDelay = defaultRefreshDelay
	}
	if c.Places.DescriptionLimit <= 0 {
		c.Places.DescriptionLimit = defaultListDescLimit
	}
	if c.Places.DefaultRegion == (RegionConfig{}) {
		c.Places.DefaultRegion = RegionConfig{
			Latitude:       defaultRegionLatitude,
			Longitude:      defaultRegionLongitude,
			LatitudeDelta:  defaultRegionDelta,
			LongitudeDelta: defaultRegionDelta,
		}
	}

	if c.Backend != nil {
		if c.Backend.Port == 0 {
			c.Backend.Port = defaultBackendPort
		}
		if c.Backend.SecretKey == "" {
			c.Backend.SecretKey = defaultBackendSecretKey
		}
		if c.Backend.TokenTTL <= 0 {
			c.Backend.TokenTTL = defaultBackendTokenTTL
		}
		if c.Backend.BodyLimit == "" {
			c.Backend.BodyLimit = defaultBackendBodyLimit
		}
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
