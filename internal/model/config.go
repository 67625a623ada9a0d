package model

import "time"

// Config holds the complete application configuration. It is built once at
// startup and passed explicitly through constructors; nothing mutates it
// after that.
type Config struct {
	Project ProjectConfig `yaml:"project" mapstructure:"project"`
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`
	ArXiv   ArXivConfig   `yaml:"arxiv" mapstructure:"arxiv"`
	HTTP    HTTPConfig    `yaml:"http" mapstructure:"http"`
	LLM     LLMConfig     `yaml:"llm" mapstructure:"llm"`
	Chunk   ChunkConfig   `yaml:"chunk" mapstructure:"chunk"`
	Cache   CacheConfig   `yaml:"cache" mapstructure:"cache"`
}

// ProjectConfig identifies the service.
type ProjectConfig struct {
	Name  string `yaml:"name" mapstructure:"name"`
	Debug bool   `yaml:"debug" mapstructure:"debug"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host string `yaml:"host" mapstructure:"host"`
	Port int    `yaml:"port" mapstructure:"port"`
}

// ArXivConfig configures the paper search upstream.
type ArXivConfig struct {
	BaseURL      string `yaml:"base_url" mapstructure:"base_url"`
	DefaultQuery string `yaml:"default_query" mapstructure:"default_query"`
	MaxResults   int    `yaml:"max_results" mapstructure:"max_results"`
}

// HTTPConfig configures outbound HTTP behavior shared by the fetchers.
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent    string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
}

// LLMConfig configures the summarizer models.
type LLMConfig struct {
	APIKey            string        `yaml:"api_key" mapstructure:"api_key"`
	BaseURL           string        `yaml:"base_url" mapstructure:"base_url"` // Ollama endpoint
	PrimaryModel      string        `yaml:"primary_model" mapstructure:"primary_model"`
	FallbackModel     string        `yaml:"fallback_model" mapstructure:"fallback_model"`
	Timeout           time.Duration `yaml:"timeout" mapstructure:"timeout"`
	MaxTokens         int           `yaml:"max_tokens" mapstructure:"max_tokens"`
	RequestsPerSecond float64       `yaml:"requests_per_second" mapstructure:"requests_per_second"`
}

// ChunkConfig configures document splitting.
type ChunkConfig struct {
	Size int `yaml:"size" mapstructure:"size"` // Max chunk size in characters
}

// CacheConfig configures the in-process TTL cache.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// DefaultConfig returns the built-in defaults. These mirror the documented
// environment keys; viper overlays file, env, and flag values on top.
func DefaultConfig() *Config {
	return &Config{
		Project: ProjectConfig{
			Name:  "ArXiv Paper Analyzer",
			Debug: false,
		},
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8000,
		},
		ArXiv: ArXivConfig{
			BaseURL:      "http://export.arxiv.org/api/query",
			DefaultQuery: "RAG LLM",
			MaxResults:   1,
		},
		HTTP: HTTPConfig{
			Timeout:      30 * time.Second,
			UserAgent:    "paperlens/1.0 (+https://github.com/ppiankov/paperlens)",
			MaxBodyBytes: 4_000_000,
		},
		LLM: LLMConfig{
			BaseURL:           "http://localhost:11434",
			PrimaryModel:      "gpt-4-turbo-preview",
			FallbackModel:     "llama3.2",
			Timeout:           120 * time.Second,
			MaxTokens:         2000,
			RequestsPerSecond: 1,
		},
		Chunk: ChunkConfig{
			Size: 20000,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     15 * time.Minute,
		},
	}
}
