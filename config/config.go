package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "8MB"
	defaultMaxUploadBytes     = 5 * 1024 * 1024
	defaultBulkLimit          = 50
	defaultLiveLimit          = 20
	defaultUsersLimit         = 20
	defaultNotificationsLimit = 20
	defaultPushPort           = 8081
	defaultQRSize             = 256
	defaultQRLevel            = "M"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Host               string `json:"host" yaml:"host"`
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Firebase project shared by auth, document store, storage and messaging
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Auth selects the identity provider
	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Store selects the document store backend
	Store *StoreConfig `json:"store" yaml:"store"`

	// Storage configures the photo blob bucket
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// Feed holds the query limits used by the wall
	Feed *FeedConfig `json:"feed" yaml:"feed"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Push configuration for the push worker
	Push *PushConfig `json:"push" yaml:"push"`

	// Share configures the photo share codes
	Share *ShareConfig `json:"share" yaml:"share"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines the Firebase project the client talks to
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`

	// Web API key used by the identity toolkit endpoints
	APIKey string `json:"apiKey" yaml:"apiKey"`

	// Host of the auth emulator, e.g. "localhost:9099". Empty talks to production.
	AuthEmulatorHost string `json:"authEmulatorHost" yaml:"authEmulatorHost"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	// Provider type: "firebase" or "memory"
	Provider string `json:"provider" yaml:"provider"`

	// OAuth client id that federated Google ID tokens must be issued for.
	// Empty skips the local audience check.
	GoogleClientID string `json:"googleClientId" yaml:"googleClientId"`

	// bcrypt cost of the memory provider's password hashes
	BcryptCost int `json:"bcryptCost" yaml:"bcryptCost"`

	// Revoke the user's refresh tokens on every device at logout. Needs
	// service account credentials. Off by default: logout is local.
	RevokeOnLogout bool `json:"revokeOnLogout" yaml:"revokeOnLogout"`
}

// StoreConfig defines the document store backend
type StoreConfig struct {
	// Provider type: "firestore" or "memory"
	Provider string `json:"provider" yaml:"provider"`
}

// StorageConfig defines the blob bucket holding photos
type StorageConfig struct {
	// gocloud bucket URL: gs://bucket, file:///dir or mem://
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// Prefix of download URLs, e.g. https://firebasestorage.googleapis.com/v0/b/<bucket>/o
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`

	MaxUploadBytes int64 `json:"maxUploadBytes" yaml:"maxUploadBytes"`

	// Remove the blob when its photo record is deleted
	DeleteObjectsOnPhotoDelete bool `json:"deleteObjectsOnPhotoDelete" yaml:"deleteObjectsOnPhotoDelete"`
}

// FeedConfig defines the wall query limits
type FeedConfig struct {
	BulkLimit          int `json:"bulkLimit" yaml:"bulkLimit"`
	LiveLimit          int `json:"liveLimit" yaml:"liveLimit"`
	UsersLimit         int `json:"usersLimit" yaml:"usersLimit"`
	NotificationsLimit int `json:"notificationsLimit" yaml:"notificationsLimit"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP, "google" for Google Pub/Sub, "noop" to disable
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// PushConfig defines the push worker
type PushConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Port of the push worker HTTP server
	Port int `json:"port" yaml:"port"`

	// Topic name prefix, the recipient user id is appended
	TopicPrefix string `json:"topicPrefix" yaml:"topicPrefix"`

	// Audience expected on Pub/Sub push OIDC tokens. Empty skips verification.
	Audience string `json:"audience" yaml:"audience"`
}

// ShareConfig defines the QR codes handed out for photo links
type ShareConfig struct {
	// Edge length of the PNG in pixels
	QRSize int `json:"qrSize" yaml:"qrSize"`

	// Error correction level: L, M, Q or H
	QRLevel string `json:"qrLevel" yaml:"qrLevel"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
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

	// Try to find and load the config file
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

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: STORAGE_MAXUPLOADBYTES -> storage.maxUploadBytes
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
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

	cfg.applyDefaults()

	return cfg, nil
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

// applyDefaults fills sections that the yaml file may omit.
func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Firebase == nil {
		cfg.Firebase = &FirebaseConfig{}
	}
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.Provider == "" {
		cfg.Auth.Provider = "memory"
	}
	if cfg.Store == nil {
		cfg.Store = &StoreConfig{}
	}
	if cfg.Store.Provider == "" {
		cfg.Store.Provider = "memory"
	}
	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.BucketURL == "" {
		cfg.Storage.BucketURL = "mem://"
	}
	if cfg.Storage.MaxUploadBytes <= 0 {
		cfg.Storage.MaxUploadBytes = defaultMaxUploadBytes
	}
	if cfg.Feed == nil {
		cfg.Feed = &FeedConfig{}
	}
	cfg.Feed.BulkLimit = positiveOr(cfg.Feed.BulkLimit, defaultBulkLimit)
	cfg.Feed.LiveLimit = positiveOr(cfg.Feed.LiveLimit, defaultLiveLimit)
	cfg.Feed.UsersLimit = positiveOr(cfg.Feed.UsersLimit, defaultUsersLimit)
	cfg.Feed.NotificationsLimit = positiveOr(cfg.Feed.NotificationsLimit, defaultNotificationsLimit)
	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{}
	}
	if cfg.Push == nil {
		cfg.Push = &PushConfig{}
	}
	cfg.Push.Port = positiveOr(cfg.Push.Port, defaultPushPort)
	if cfg.Share == nil {
		cfg.Share = &ShareConfig{}
	}
	cfg.Share.QRSize = positiveOr(cfg.Share.QRSize, defaultQRSize)
	if cfg.Share.QRLevel == "" {
		cfg.Share.QRLevel = defaultQRLevel
	}
}

func positiveOr(value, fallback int) int {
	if value > 0 {
		return value
	}

	return fallback
}
