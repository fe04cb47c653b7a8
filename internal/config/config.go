package config

import (
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	private Private
}

type Public struct {
	Addr           string        `yaml:"addr"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
	SecureCookies  bool          `yaml:"secure_cookies"`
	JwtTTL         time.Duration `yaml:"jwt_ttl"`

	LogLevel string `yaml:"log_level"`
	LogJSON  bool   `yaml:"log_json"`

	CommentMaxLen  int `yaml:"comment_max_len"`  // characters, after trimming
	TitleMaxLen    int `yaml:"title_max_len"`    // thread title limit
	ContentMaxLen  int `yaml:"content_max_len"`  // thread markdown limit
	MaxTags        int `yaml:"max_tags"`         // tags per thread
	TrendingLimit  int `yaml:"trending_limit"`   // threads returned by the trending view
	NotificationCap int `yaml:"notification_cap"` // per-user queue bound, oldest evicted

	AiModel          string        `yaml:"ai_model"`
	AiEmbeddingModel string        `yaml:"ai_embedding_model"`
	AiTimeout        time.Duration `yaml:"ai_timeout"`
	SummaryMaxTokens int           `yaml:"summary_max_tokens"`
}

type Private struct {
	JwtKey    string `yaml:"jwt_key"`
	OpenAIKey string `yaml:"openai_api_key"`
}

func (s *Config) JwtKey() string {
	return s.private.JwtKey
}

func (s *Config) JwtTTL() time.Duration {
	return s.Public.JwtTTL
}

func (s *Config) OpenAIKey() string {
	return s.private.OpenAIKey
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	if err = yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{public, private}
	cfg.applyDefaults()
	return cfg
}

func (s *Config) applyDefaults() {
	p := &s.Public
	if p.Addr == "" {
		p.Addr = ":3001"
	}
	if p.JwtTTL == 0 {
		p.JwtTTL = 24 * time.Hour
	}
	if p.CommentMaxLen == 0 {
		p.CommentMaxLen = 500
	}
	if p.TitleMaxLen == 0 {
		p.TitleMaxLen = 200
	}
	if p.ContentMaxLen == 0 {
		p.ContentMaxLen = 50000
	}
	if p.MaxTags == 0 {
		p.MaxTags = 10
	}
	if p.TrendingLimit == 0 {
		p.TrendingLimit = 10
	}
	if p.NotificationCap == 0 {
		p.NotificationCap = 100
	}
	if p.AiModel == "" {
		p.AiModel = "gpt-4o-mini"
	}
	if p.AiEmbeddingModel == "" {
		p.AiEmbeddingModel = "text-embedding-3-small"
	}
	if p.AiTimeout == 0 {
		p.AiTimeout = 30 * time.Second
	}
	if p.SummaryMaxTokens == 0 {
		p.SummaryMaxTokens = 150
	}
}
