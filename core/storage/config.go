package storage

// Region is the signing region used for every connection. It is not configurable.
const Region = "eu-east-1"

// DefaultEndpoint is used when no endpoint URL is configured.
const DefaultEndpoint = "https://s3.amazonaws.com"

// Config holds configuration for the object storage connection.
type Config struct {
	// Endpoint is the URL of the storage service (e.g. http://localhost:9000).
	Endpoint string `mapstructure:"endpoint" env:"S3_ENDPOINT_URL" default:""`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" env:"AWS_ACCESS_KEY_ID" default:""`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" env:"AWS_SECRET_ACCESS_KEY" default:""`
	// UseSSL forces TLS even when the endpoint has no https scheme.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
}
