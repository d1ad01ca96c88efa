package config

import "time"

type HTTPConfig struct {
	Addr              string        `yaml:"addr" env:"DRILLS_HTTP_ADDR"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout" env:"DRILLS_HTTP_READ_HEADER_TIMEOUT"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout" env:"DRILLS_HTTP_SHUTDOWN_TIMEOUT"`
	MaxBodyBytes      int64         `yaml:"max_body_bytes" env:"DRILLS_HTTP_MAX_BODY_BYTES"`
	AllowedOrigins    []string      `yaml:"allowed_origins" env:"DRILLS_HTTP_ALLOWED_ORIGINS" envSeparator:","`
}

type LogConfig struct {
	Mode  string `yaml:"mode" env:"LOG_MODE"`
	Level string `yaml:"level" env:"LOG_LEVEL"`
}

// DBConfig selects the store. Driver "postgres" builds a DSN from the parts
// unless DSN is set; "sqlite" opens SQLitePath.
type DBConfig struct {
	Driver     string `yaml:"driver" env:"DRILLS_DB_DRIVER"`
	DSN        string `yaml:"dsn" env:"DRILLS_DB_DSN"`
	Host       string `yaml:"host" env:"POSTGRES_HOST"`
	Port       int    `yaml:"port" env:"POSTGRES_PORT"`
	User       string `yaml:"user" env:"POSTGRES_USER"`
	Password   string `yaml:"password" env:"POSTGRES_PASSWORD"`
	Name       string `yaml:"name" env:"POSTGRES_NAME"`
	SQLitePath string `yaml:"sqlite_path" env:"DRILLS_SQLITE_PATH"`
}

type RedisConfig struct {
	Enabled  bool          `yaml:"enabled" env:"REDIS_ENABLED"`
	Addr     string        `yaml:"addr" env:"REDIS_ADDR"`
	Password string        `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int           `yaml:"db" env:"REDIS_DB"`
	TTL      time.Duration `yaml:"ttl" env:"REDIS_CHALLENGE_TTL"`
}

type LLMConfig struct {
	Enabled      bool          `yaml:"enabled" env:"DRILLS_LLM_ENABLED"`
	APIKey       string        `yaml:"api_key" env:"OPENAI_API_KEY"`
	BaseURL      string        `yaml:"base_url" env:"OPENAI_BASE_URL"`
	Model        string        `yaml:"model" env:"OPENAI_MODEL"`
	Timeout      time.Duration `yaml:"timeout" env:"OPENAI_TIMEOUT"`
	MaxAttempts  int           `yaml:"max_attempts" env:"DRILLS_LLM_MAX_ATTEMPTS"`
	SystemPrompt string        `yaml:"system_prompt"`
	Translate    bool          `yaml:"translate_seed" env:"DRILLS_LLM_TRANSLATE_SEED"`
}

type GenerationConfig struct {
	MaxTries           int    `yaml:"max_tries" env:"DRILLS_GENERATION_MAX_TRIES"`
	FallbackDifficulty string `yaml:"fallback_difficulty" env:"DRILLS_GENERATION_FALLBACK_DIFFICULTY"`
	MaxAnswerRunes     int    `yaml:"max_answer_runes" env:"DRILLS_MAX_ANSWER_RUNES"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"DRILLS_METRICS_ENABLED"`
	Path    string `yaml:"path" env:"DRILLS_METRICS_PATH"`
}

// OtelConfig drives tracing. With Enabled and no Endpoint, spans go to stdout.
type OtelConfig struct {
	Enabled     bool              `yaml:"enabled" env:"OTEL_ENABLED"`
	ServiceName string            `yaml:"service_name" env:"OTEL_SERVICE_NAME"`
	Environment string            `yaml:"environment" env:"DRILLS_ENV"`
	Version     string            `yaml:"version" env:"DRILLS_VERSION"`
	Endpoint    string            `yaml:"endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	Insecure    bool              `yaml:"insecure" env:"OTEL_EXPORTER_OTLP_INSECURE"`
	Headers     map[string]string `yaml:"headers" env:"OTEL_EXPORTER_OTLP_HEADERS" envKeyValSeparator:"="`
	SampleRatio float64           `yaml:"sample_ratio" env:"OTEL_SAMPLER_RATIO"`
}

type Config struct {
	HTTP       HTTPConfig       `yaml:"http"`
	Log        LogConfig        `yaml:"log"`
	DB         DBConfig         `yaml:"db"`
	Redis      RedisConfig      `yaml:"redis"`
	LLM        LLMConfig        `yaml:"llm"`
	Generation GenerationConfig `yaml:"generation"`
	Metrics    MetricsConfig    `yaml:"metrics"`
	Otel       OtelConfig       `yaml:"otel"`
}
