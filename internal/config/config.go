package config

import (
	"os"
	"strconv"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// ErrNotConfigured is returned when a component needs a credential that was not supplied.
var ErrNotConfigured = errors.New("credential not configured")

const (
	CategorizerKeyword   = "keyword"
	CategorizerHybrid    = "hybrid"
	CategorizerInference = "inference"

	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"

	CacheBackendPostgres = "postgres"
	CacheBackendBolt     = "bolt"
)

// Credentials holds every secret the process may use. An unset value means
// the matching integration is not configured.
type Credentials struct {
	ProviderAPIKey       omit.Val[string]
	LedgerConsumerKey    omit.Val[string]
	LedgerConsumerSecret omit.Val[string]
	LedgerAPIKey         omit.Val[string]
}

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	Credentials Credentials

	LedgerBaseURL string

	InferenceProvider          string
	InferenceModel             string
	InferenceRequestsPerMinute int
	InferenceMaxTokens         int

	CategorizerMode     string
	RulesPath           string
	ClassifyBatchSize   int
	ClassifyConcurrency int

	SyncPageSize    int
	SyncMaxCount    int
	DefaultCurrency string

	CacheBackend  string
	BoltPath      string
	CacheFrontTTL time.Duration

	Port     string
	LogLevel string
}

func ProcessEnvironmentVariables() (*Config, error) {
	// A missing .env file is fine, the process environment still applies.
	_ = godotenv.Load()

	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		PostgresAddress:            "localhost",
		PostgresPort:               "5433",
		PostgresDB:                 "postgres",
		PostgresUsername:           "postgres",
		PostgresPassword:           "testpassword",
		LedgerBaseURL:              "https://secure.splitwise.com/api/v3.0",
		InferenceProvider:          ProviderAnthropic,
		InferenceModel:             "claude-3-5-haiku-latest",
		InferenceRequestsPerMinute: 30,
		InferenceMaxTokens:         200,
		CategorizerMode:            CategorizerHybrid,
		ClassifyBatchSize:          15,
		ClassifyConcurrency:        1,
		SyncPageSize:               100,
		SyncMaxCount:               0,
		DefaultCurrency:            "INR",
		CacheBackend:               CacheBackendPostgres,
		BoltPath:                   "category_cache.db",
		CacheFrontTTL:              5 * time.Minute,
		Port:                       "9446",
		LogLevel:                   "info",
	}

	setString(&env.PostgresAddress, "POSTGRES_ADDRESS")
	setString(&env.PostgresPort, "POSTGRES_PORT")
	setString(&env.PostgresDB, "POSTGRES_DB")
	setString(&env.PostgresUsername, "POSTGRES_USERNAME")
	setString(&env.PostgresPassword, "POSTGRES_PASSWORD")

	env.Credentials = Credentials{
		ProviderAPIKey:       secret("PROVIDER_API_KEY"),
		LedgerConsumerKey:    secret("LEDGER_CONSUMER_KEY"),
		LedgerConsumerSecret: secret("LEDGER_CONSUMER_SECRET"),
		LedgerAPIKey:         secret("LEDGER_API_KEY"),
	}

	setString(&env.LedgerBaseURL, "LEDGER_BASE_URL")
	setString(&env.InferenceProvider, "INFERENCE_PROVIDER")
	setString(&env.InferenceModel, "INFERENCE_MODEL")
	setString(&env.CategorizerMode, "CATEGORIZER_MODE")
	setString(&env.RulesPath, "RULES_PATH")
	setString(&env.DefaultCurrency, "DEFAULT_CURRENCY")
	setString(&env.CacheBackend, "CACHE_BACKEND")
	setString(&env.BoltPath, "BOLT_PATH")
	setString(&env.Port, "PORT")
	setString(&env.LogLevel, "LOG_LEVEL")

	ints := []struct {
		key string
		dst *int
	}{
		{"INFERENCE_REQUESTS_PER_MINUTE", &env.InferenceRequestsPerMinute},
		{"INFERENCE_MAX_TOKENS", &env.InferenceMaxTokens},
		{"CLASSIFY_BATCH_SIZE", &env.ClassifyBatchSize},
		{"CLASSIFY_CONCURRENCY", &env.ClassifyConcurrency},
		{"SYNC_PAGE_SIZE", &env.SyncPageSize},
		{"SYNC_MAX_COUNT", &env.SyncMaxCount},
	}
	for _, i := range ints {
		if err := setInt(i.dst, i.key); err != nil {
			return nil, err
		}
	}

	if v := os.Getenv("CACHE_FRONT_TTL"); len(v) != 0 {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, errors.Wrap(err, "parse CACHE_FRONT_TTL")
		}
		env.CacheFrontTTL = ttl
	}

	if err := env.validate(); err != nil {
		return nil, err
	}

	return &env, nil
}

func (c *Config) validate() error {
	switch c.CategorizerMode {
	case CategorizerKeyword, CategorizerHybrid, CategorizerInference:
	default:
		return errors.Errorf("unknown CATEGORIZER_MODE %q", c.CategorizerMode)
	}

	switch c.InferenceProvider {
	case ProviderAnthropic, ProviderGemini:
	default:
		return errors.Errorf("unknown INFERENCE_PROVIDER %q", c.InferenceProvider)
	}

	switch c.CacheBackend {
	case CacheBackendPostgres, CacheBackendBolt:
	default:
		return errors.Errorf("unknown CACHE_BACKEND %q", c.CacheBackend)
	}

	if c.ClassifyBatchSize < 1 {
		return errors.New("CLASSIFY_BATCH_SIZE must be positive")
	}
	if c.SyncPageSize < 1 {
		return errors.New("SYNC_PAGE_SIZE must be positive")
	}

	return nil
}

// PostgresURL builds the connection string used by the server and the migration script.
func (c *Config) PostgresURL() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}

// Require returns the credential value or ErrNotConfigured naming it.
func Require(v omit.Val[string], name string) (string, error) {
	s, ok := v.Get()
	if !ok {
		return "", errors.Wrap(ErrNotConfigured, name)
	}
	return s, nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); len(v) != 0 {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v := os.Getenv(key)
	if len(v) == 0 {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return errors.Wrapf(err, "parse %s", key)
	}
	*dst = n
	return nil
}

func secret(key string) omit.Val[string] {
	v := os.Getenv(key)
	if len(v) == 0 {
		return omit.Val[string]{}
	}
	return omit.From(v)
}
