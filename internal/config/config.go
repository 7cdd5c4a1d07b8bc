package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Admin    AdminConfig    `yaml:"admin"`
	Notify   NotifyConfig   `yaml:"notify"`
	Forms    FormsConfig    `yaml:"forms"`
	CORS     CORSConfig     `yaml:"cors"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`

	// LoginRateLimit caps credential endpoints (login, register, admin login)
	// per IP per minute.
	LoginRateLimit int `yaml:"login_rate_limit" env:"SERVER_LOGIN_RATE_LIMIT" env-default:"30"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds authentication settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"         env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"tillyhacks"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"   env-default:"24h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"10"`

	// GitHub OAuth app credentials. OAuth login is disabled when unset.
	GitHubClientID     string `yaml:"github_client_id"     env:"AUTH_GITHUB_CLIENT_ID"`
	GitHubClientSecret string `yaml:"github_client_secret" env:"AUTH_GITHUB_CLIENT_SECRET"`
	GitHubRedirectURI  string `yaml:"github_redirect_uri"  env:"AUTH_GITHUB_REDIRECT_URI"`
}

// AdminConfig holds the admin dashboard gate settings. The password is a
// shared secret checked with a constant-time compare; it is a soft gate in
// front of the dashboard, not an access-control system.
type AdminConfig struct {
	Password string `yaml:"password" env:"ADMIN_PASSWORD" env-required:"true"`
}

// NotifyConfig holds outbound webhook settings. An empty WebhookURL disables
// notifications entirely.
type NotifyConfig struct {
	WebhookURL string        `yaml:"webhook_url" env:"DISCORD_WEBHOOK_URL"`
	Timeout    time.Duration `yaml:"timeout"     env:"NOTIFY_TIMEOUT" env-default:"10s"`
}

// FormsConfig holds registration flow settings.
type FormsConfig struct {
	// Disabled closes the whole registration flow; when set the form
	// endpoints answer 503 while the rest of the site stays up. The zero
	// value keeps forms open, so cleanenv never has a default to apply
	// over a value read from the YAML file.
	Disabled bool `yaml:"disabled" env:"FORMS_DISABLED"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Admin-Token"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
