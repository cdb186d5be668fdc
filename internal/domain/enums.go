package domain

// ServerMode selects which surface the server exposes.
type ServerMode string

const (
	// ModeGateway serves the authenticated upload gateway.
	ModeGateway ServerMode = "gateway"
	// ModeLocal serves the single-slot local disk variant.
	ModeLocal ServerMode = "local"
)

// AuthProvider names a bearer token verifier implementation.
type AuthProvider string

const (
	AuthProviderFirebase AuthProvider = "firebase"
	AuthProviderGoogle   AuthProvider = "google"
	AuthProviderHMAC     AuthProvider = "hmac"
)

// StorageProvider names an object store implementation.
type StorageProvider string

const (
	StorageProviderS3    StorageProvider = "s3"
	StorageProviderMinio StorageProvider = "minio"
)

// MetadataBackend names a metadata store implementation.
type MetadataBackend string

const (
	MetadataBackendMongo    MetadataBackend = "mongo"
	MetadataBackendPostgres MetadataBackend = "postgres"
	MetadataBackendMemory   MetadataBackend = "memory"
)
