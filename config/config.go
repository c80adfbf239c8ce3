package config

import (
	"os"
)

type StorageConfig struct {
	Backend     string // "local" (default) or "s3"
	EvidenceDir string
}

type S3Config struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	PublicURL       string
	Region          string
}

type GeocodeConfig struct {
	APIKey  string
	BaseURL string
}

func GetStorageConfig() *StorageConfig {
	backend := os.Getenv("EVIDENCE_BACKEND")
	if backend == "" {
		backend = "local"
	}

	dir := os.Getenv("EVIDENCE_DIR")
	if dir == "" {
		dir = "EvidenceFiles"
	}

	return &StorageConfig{
		Backend:     backend,
		EvidenceDir: dir,
	}
}

func GetS3Config() *S3Config {
	region := os.Getenv("S3_REGION")
	if region == "" {
		region = "auto"
	}

	return &S3Config{
		Endpoint:        os.Getenv("S3_ENDPOINT"),
		AccessKeyID:     os.Getenv("S3_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("S3_SECRET_ACCESS_KEY"),
		BucketName:      os.Getenv("S3_BUCKET_NAME"),
		PublicURL:       os.Getenv("S3_PUBLIC_URL"),
		Region:          region,
	}
}

func GetGeocodeConfig() *GeocodeConfig {
	baseURL := os.Getenv("GEOCODE_BASE_URL")
	if baseURL == "" {
		baseURL = "https://maps.googleapis.com/maps/api/geocode/json"
	}

	return &GeocodeConfig{
		APIKey:  os.Getenv("GEOCODE_API_KEY"),
		BaseURL: baseURL,
	}
}

// JWTSecret returns the signing secret for auth cookies.
func JWTSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}
