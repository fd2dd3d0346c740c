// Package config loads the maskscore CLI configuration file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config represents the CLI config file.
type Config struct {
	// Source is a local centroid table path, or the object name when S3 or
	// MinIO is configured. Empty means the bundled table.
	Source   string      `yaml:"source"`
	Format   string      `yaml:"format"`
	LogLevel string      `yaml:"log_level"`
	S3       S3Config    `yaml:"s3"`
	MinIO    MinIOConfig `yaml:"minio"`
	Limits   Limits      `yaml:"limits"`
}

// S3Config selects an S3 bucket as the centroid source. When Table and
// Dataset are set, the object name is resolved from DynamoDB.
type S3Config struct {
	Bucket  string `yaml:"bucket"`
	Prefix  string `yaml:"prefix"`
	Region  string `yaml:"region"`
	Table   string `yaml:"ddb_table"`
	Dataset string `yaml:"dataset"`
}

// MinIOConfig selects a MinIO (or other S3-compatible) bucket.
type MinIOConfig struct {
	Endpoint  string `yaml:"endpoint"`
	Bucket    string `yaml:"bucket"`
	Prefix    string `yaml:"prefix"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Secure    bool   `yaml:"secure"`
}

// Limits bounds table loading.
type Limits struct {
	MaxConcurrentLoads int64 `yaml:"max_concurrent_loads"`
	IOBytesPerSec      int64 `yaml:"io_bytes_per_sec"`

	// Workers is the number of passwords scored in parallel. 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`
}

// Default returns the configuration used without a config file.
func Default() *Config {
	return &Config{
		Format:   FormatJSON,
		LogLevel: "warn",
	}
}

// Load reads the YAML file at path over the defaults. An empty path returns
// Default.
func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return c, nil
}

// Validate checks field combinations.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatJSON, FormatYAML:
	case "yml":
		c.Format = FormatYAML
	default:
		return fmt.Errorf("unsupported format %q", c.Format)
	}

	if c.S3.Bucket != "" && c.MinIO.Endpoint != "" {
		return errors.New("s3 and minio are mutually exclusive")
	}
	if c.MinIO.Endpoint != "" && c.MinIO.Bucket == "" {
		return errors.New("minio bucket required")
	}
	if (c.S3.Table == "") != (c.S3.Dataset == "") {
		return errors.New("ddb_table and dataset must be set together")
	}
	if c.S3.Table != "" && c.S3.Bucket == "" {
		return errors.New("ddb_table requires an s3 bucket")
	}
	if c.Limits.MaxConcurrentLoads < 0 || c.Limits.IOBytesPerSec < 0 || c.Limits.Workers < 0 {
		return errors.New("limits must not be negative")
	}
	return nil
}
