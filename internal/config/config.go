package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration. It is resolved once at process
// start and passed explicitly to the flows.
type Config struct {
	AWS        AWSConfig
	Store      StoreConfig
	Notifier   NotifierConfig
	Summarizer SummarizerConfig
}

// AWSConfig holds settings shared by every AWS-backed client.
type AWSConfig struct {
	Region    string `mapstructure:"region"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// StoreConfig holds key-value store settings.
type StoreConfig struct {
	TableName string `mapstructure:"table_name"`
	Enabled   bool   `mapstructure:"enabled"`
}

// NotifierConfig holds notification topic settings.
type NotifierConfig struct {
	TopicARN string `mapstructure:"topic_arn"`
	Enabled  bool   `mapstructure:"enabled"`
}

// SummarizerConfig holds LLM summarization settings.
type SummarizerConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	APIKeyParam string `mapstructure:"api_key_param"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// Load reads configuration from environment variables with the DIGEST_
// prefix. All three step flags default to enabled.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DIGEST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AWS defaults
	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("aws.endpoint", "")

	// Store defaults
	v.SetDefault("store.table_name", "docdigest-summaries")
	v.SetDefault("store.enabled", true)

	// Notifier defaults
	v.SetDefault("notifier.topic_arn", "")
	v.SetDefault("notifier.enabled", true)

	// Summarizer defaults
	v.SetDefault("summarizer.enabled", true)
	v.SetDefault("summarizer.api_key_param", "/docdigest/openrouter-api-key")
	v.SetDefault("summarizer.timeout_secs", 120)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"aws.region":               "DIGEST_AWS_REGION",
		"aws.endpoint":             "DIGEST_AWS_ENDPOINT",
		"aws.access_key":           "DIGEST_AWS_ACCESS_KEY",
		"aws.secret_key":           "DIGEST_AWS_SECRET_KEY",
		"store.table_name":         "DIGEST_STORE_TABLE_NAME",
		"store.enabled":            "DIGEST_STORE_ENABLED",
		"notifier.topic_arn":       "DIGEST_NOTIFIER_TOPIC_ARN",
		"notifier.enabled":         "DIGEST_NOTIFIER_ENABLED",
		"summarizer.enabled":       "DIGEST_SUMMARIZER_ENABLED",
		"summarizer.api_key_param": "DIGEST_SUMMARIZER_API_KEY_PARAM",
		"summarizer.timeout_secs":  "DIGEST_SUMMARIZER_TIMEOUT_SECS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}
	cfg.AWS = AWSConfig{
		Region:    v.GetString("aws.region"),
		Endpoint:  v.GetString("aws.endpoint"),
		AccessKey: v.GetString("aws.access_key"),
		SecretKey: v.GetString("aws.secret_key"),
	}
	cfg.Store = StoreConfig{
		TableName: v.GetString("store.table_name"),
		Enabled:   v.GetBool("store.enabled"),
	}
	cfg.Notifier = NotifierConfig{
		TopicARN: v.GetString("notifier.topic_arn"),
		Enabled:  v.GetBool("notifier.enabled"),
	}
	cfg.Summarizer = SummarizerConfig{
		Enabled:     v.GetBool("summarizer.enabled"),
		APIKeyParam: v.GetString("summarizer.api_key_param"),
		TimeoutSecs: v.GetInt("summarizer.timeout_secs"),
	}

	return cfg, nil
}
