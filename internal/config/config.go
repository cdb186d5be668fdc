package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"cidgate/internal/domain"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Auth     AuthConfig
	Storage  StorageConfig
	Metadata MetadataConfig
	Upload   UploadConfig
	Gateway  GatewayConfig
	Log      LogConfig
	CORS     CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string            `mapstructure:"port"`
	Mode         domain.ServerMode `mapstructure:"mode"`
	ReadTimeout  time.Duration     `mapstructure:"read_timeout"`
	WriteTimeout time.Duration     `mapstructure:"write_timeout"`
	Environment  string            `mapstructure:"environment"`
}

// AuthConfig holds bearer token verification settings.
type AuthConfig struct {
	Provider domain.AuthProvider `mapstructure:"provider"`
	// FirebaseCredentials is the service account JSON blob; only its
	// project_id is used.
	FirebaseCredentials string `mapstructure:"firebase_credentials"`
	FirebaseProjectID   string `mapstructure:"firebase_project_id"`
	GoogleClientID      string `mapstructure:"google_client_id"`
	HMACSecret          string `mapstructure:"hmac_secret"`
	HMACIssuer          string `mapstructure:"hmac_issuer"`
}

// ProjectID returns the Firebase project, preferring the explicit setting
// over the one embedded in the service account blob.
func (a *AuthConfig) ProjectID() (string, error) {
	if a.FirebaseProjectID != "" {
		return a.FirebaseProjectID, nil
	}
	if a.FirebaseCredentials == "" {
		return "", errors.New("firebase project id or service account credentials required")
	}
	var sa struct {
		ProjectID string `json:"project_id"`
	}
	if err := json.Unmarshal([]byte(a.FirebaseCredentials), &sa); err != nil {
		return "", fmt.Errorf("parsing firebase service account: %w", err)
	}
	if sa.ProjectID == "" {
		return "", errors.New("firebase service account has no project_id")
	}
	return sa.ProjectID, nil
}

// StorageConfig holds object store settings. The defaults target Filebase,
// which pins uploads to IPFS and reports the CID as object metadata.
type StorageConfig struct {
	Provider       domain.StorageProvider `mapstructure:"provider"`
	Endpoint       string                 `mapstructure:"endpoint"`
	Region         string                 `mapstructure:"region"`
	Bucket         string                 `mapstructure:"bucket"`
	AccessKey      string                 `mapstructure:"access_key"`
	SecretKey      string                 `mapstructure:"secret_key"`
	UseSSL         bool                   `mapstructure:"use_ssl"`
	CIDMetadataKey string                 `mapstructure:"cid_metadata_key"`
}

// MetadataConfig holds metadata store settings.
type MetadataConfig struct {
	Backend  domain.MetadataBackend `mapstructure:"backend"`
	MongoURI string                 `mapstructure:"mongo_uri"`
	MongoDB  string                 `mapstructure:"mongo_database"`
	DB       DBConfig               `mapstructure:"db"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// UploadConfig holds upload handling settings.
type UploadConfig struct {
	// MaxFileSizeMB caps buffered uploads; zero means no limit.
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
	LocalDir      string `mapstructure:"local_dir"`
}

// MaxBytes returns the size cap in bytes, or zero when unlimited.
func (u *UploadConfig) MaxBytes() int64 {
	return u.MaxFileSizeMB * 1024 * 1024
}

// GatewayConfig holds request handling policy for the gateway routes.
type GatewayConfig struct {
	// LookupRequiresAuth puts /user-cids behind the bearer middleware.
	// Off by default: the lookup route is public.
	LookupRequiresAuth bool `mapstructure:"lookup_requires_auth"`
	// RequestTimeout bounds collaborator calls per request; zero means none.
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Validate checks settings that must be present before the server starts.
func (c *Config) Validate() error {
	switch c.Server.Mode {
	case domain.ModeLocal:
		if c.Upload.LocalDir == "" {
			return errors.New("upload.local_dir is required in local mode")
		}
		return nil
	case domain.ModeGateway:
	default:
		return fmt.Errorf("unknown server mode %q", c.Server.Mode)
	}

	if c.Storage.AccessKey == "" || c.Storage.SecretKey == "" || c.Storage.Bucket == "" {
		return errors.New("missing object store credentials: access key, secret key and bucket are required")
	}
	switch c.Auth.Provider {
	case domain.AuthProviderFirebase:
		if _, err := c.Auth.ProjectID(); err != nil {
			return err
		}
	case domain.AuthProviderGoogle:
		if c.Auth.GoogleClientID == "" {
			return errors.New("auth.google_client_id is required for the google provider")
		}
	case domain.AuthProviderHMAC:
		if c.Auth.HMACSecret == "" {
			return errors.New("auth.hmac_secret is required for the hmac provider")
		}
	default:
		return fmt.Errorf("unknown auth provider %q", c.Auth.Provider)
	}
	switch c.Metadata.Backend {
	case domain.MetadataBackendMongo:
		if c.Metadata.MongoURI == "" {
			return errors.New("metadata.mongo_uri is required for the mongo backend")
		}
	case domain.MetadataBackendPostgres, domain.MetadataBackendMemory:
	default:
		return fmt.Errorf("unknown metadata backend %q", c.Metadata.Backend)
	}
	return nil
}

// Load reads configuration from a .env file (if present) and environment
// variables with the CIDGATE_ prefix.
func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("CIDGATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":3000")
	v.SetDefault("server.mode", string(domain.ModeGateway))
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "0s")
	v.SetDefault("server.environment", "development")

	// Auth defaults
	v.SetDefault("auth.provider", string(domain.AuthProviderFirebase))
	v.SetDefault("auth.hmac_issuer", "cidgate")

	// Storage defaults
	v.SetDefault("storage.provider", string(domain.StorageProviderS3))
	v.SetDefault("storage.endpoint", "https://s3.filebase.com")
	v.SetDefault("storage.region", "us-east-1")
	v.SetDefault("storage.use_ssl", true)
	v.SetDefault("storage.cid_metadata_key", "cid")

	// Metadata defaults
	v.SetDefault("metadata.backend", string(domain.MetadataBackendMongo))
	v.SetDefault("metadata.mongo_database", "cidgate")
	v.SetDefault("metadata.db.host", "localhost")
	v.SetDefault("metadata.db.port", 5432)
	v.SetDefault("metadata.db.user", "cidgate")
	v.SetDefault("metadata.db.password", "cidgate_secret")
	v.SetDefault("metadata.db.name", "cidgate_db")
	v.SetDefault("metadata.db.sslmode", "disable")
	v.SetDefault("metadata.db.max_open", 25)
	v.SetDefault("metadata.db.max_idle", 10)

	// Upload defaults
	v.SetDefault("upload.max_file_size_mb", 0)
	v.SetDefault("upload.local_dir", "uploads")

	// Gateway defaults
	v.SetDefault("gateway.lookup_requires_auth", false)
	v.SetDefault("gateway.request_timeout", "0s")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	v.SetDefault("cors.allowed_origins", "*")

	// Bind environment variables explicitly for nested keys. Later names are
	// the variables the service historically read.
	envBindings := map[string][]string{
		"server.port":                   {"CIDGATE_SERVER_PORT"},
		"server.mode":                   {"CIDGATE_SERVER_MODE"},
		"server.read_timeout":           {"CIDGATE_SERVER_READ_TIMEOUT"},
		"server.write_timeout":          {"CIDGATE_SERVER_WRITE_TIMEOUT"},
		"server.environment":            {"CIDGATE_SERVER_ENVIRONMENT"},
		"auth.provider":                 {"CIDGATE_AUTH_PROVIDER"},
		"auth.firebase_credentials":     {"CIDGATE_AUTH_FIREBASE_CREDENTIALS", "FIREBASE_ADMIN_SDK"},
		"auth.firebase_project_id":      {"CIDGATE_AUTH_FIREBASE_PROJECT_ID"},
		"auth.google_client_id":         {"CIDGATE_AUTH_GOOGLE_CLIENT_ID"},
		"auth.hmac_secret":              {"CIDGATE_AUTH_HMAC_SECRET"},
		"auth.hmac_issuer":              {"CIDGATE_AUTH_HMAC_ISSUER"},
		"storage.provider":              {"CIDGATE_STORAGE_PROVIDER"},
		"storage.endpoint":              {"CIDGATE_STORAGE_ENDPOINT"},
		"storage.region":                {"CIDGATE_STORAGE_REGION"},
		"storage.bucket":                {"CIDGATE_STORAGE_BUCKET", "FILEBASE_BUCKET"},
		"storage.access_key":            {"CIDGATE_STORAGE_ACCESS_KEY", "FILEBASE_KEY"},
		"storage.secret_key":            {"CIDGATE_STORAGE_SECRET_KEY", "FILEBASE_SECRET"},
		"storage.use_ssl":               {"CIDGATE_STORAGE_USE_SSL"},
		"storage.cid_metadata_key":      {"CIDGATE_STORAGE_CID_METADATA_KEY"},
		"metadata.backend":              {"CIDGATE_METADATA_BACKEND"},
		"metadata.mongo_uri":            {"CIDGATE_METADATA_MONGO_URI", "MONGO_URI"},
		"metadata.mongo_database":       {"CIDGATE_METADATA_MONGO_DATABASE"},
		"metadata.db.host":              {"CIDGATE_METADATA_DB_HOST"},
		"metadata.db.port":              {"CIDGATE_METADATA_DB_PORT"},
		"metadata.db.user":              {"CIDGATE_METADATA_DB_USER"},
		"metadata.db.password":          {"CIDGATE_METADATA_DB_PASSWORD"},
		"metadata.db.name":              {"CIDGATE_METADATA_DB_NAME"},
		"metadata.db.sslmode":           {"CIDGATE_METADATA_DB_SSLMODE"},
		"metadata.db.max_open":          {"CIDGATE_METADATA_DB_MAX_OPEN"},
		"metadata.db.max_idle":          {"CIDGATE_METADATA_DB_MAX_IDLE"},
		"upload.max_file_size_mb":       {"CIDGATE_UPLOAD_MAX_FILE_SIZE_MB"},
		"upload.local_dir":              {"CIDGATE_UPLOAD_LOCAL_DIR"},
		"gateway.lookup_requires_auth":  {"CIDGATE_GATEWAY_LOOKUP_REQUIRES_AUTH"},
		"gateway.request_timeout":       {"CIDGATE_GATEWAY_REQUEST_TIMEOUT"},
		"log.level":                     {"CIDGATE_LOG_LEVEL"},
		"log.format":                    {"CIDGATE_LOG_FORMAT"},
		"cors.allowed_origins":          {"CIDGATE_CORS_ALLOWED_ORIGINS"},
	}
	for key, envs := range envBindings {
		_ = v.BindEnv(append([]string{key}, envs...)...)
	}

	cfg := &Config{}

	// Hosting platforms set a PORT env var. Use it if CIDGATE_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("CIDGATE_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		Mode:         domain.ServerMode(v.GetString("server.mode")),
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Auth = AuthConfig{
		Provider:            domain.AuthProvider(v.GetString("auth.provider")),
		FirebaseCredentials: v.GetString("auth.firebase_credentials"),
		FirebaseProjectID:   v.GetString("auth.firebase_project_id"),
		GoogleClientID:      v.GetString("auth.google_client_id"),
		HMACSecret:          v.GetString("auth.hmac_secret"),
		HMACIssuer:          v.GetString("auth.hmac_issuer"),
	}
	cfg.Storage = StorageConfig{
		Provider:       domain.StorageProvider(v.GetString("storage.provider")),
		Endpoint:       v.GetString("storage.endpoint"),
		Region:         v.GetString("storage.region"),
		Bucket:         v.GetString("storage.bucket"),
		AccessKey:      v.GetString("storage.access_key"),
		SecretKey:      v.GetString("storage.secret_key"),
		UseSSL:         v.GetBool("storage.use_ssl"),
		CIDMetadataKey: v.GetString("storage.cid_metadata_key"),
	}
	cfg.Metadata = MetadataConfig{
		Backend:  domain.MetadataBackend(v.GetString("metadata.backend")),
		MongoURI: v.GetString("metadata.mongo_uri"),
		MongoDB:  v.GetString("metadata.mongo_database"),
		DB: DBConfig{
			Host:     v.GetString("metadata.db.host"),
			Port:     v.GetInt("metadata.db.port"),
			User:     v.GetString("metadata.db.user"),
			Password: v.GetString("metadata.db.password"),
			Name:     v.GetString("metadata.db.name"),
			SSLMode:  v.GetString("metadata.db.sslmode"),
			MaxOpen:  v.GetInt("metadata.db.max_open"),
			MaxIdle:  v.GetInt("metadata.db.max_idle"),
		},
	}
	cfg.Upload = UploadConfig{
		MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
		LocalDir:      v.GetString("upload.local_dir"),
	}
	cfg.Gateway = GatewayConfig{
		LookupRequiresAuth: v.GetBool("gateway.lookup_requires_auth"),
		RequestTimeout:     v.GetDuration("gateway.request_timeout"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	return cfg, nil
}
