// Package config provides configuration management for hdfs-playground.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path"
	"strings"
)

// Filesystem implementation identifiers.
const (
	ImplHDFS  = "hdfs"
	ImplSFTP  = "sftp"
	ImplS3    = "s3"
	ImplLocal = "local"
)

// Environment variables overriding the configuration file.
const (
	EnvEndpoint  = "HDFS_URL"
	EnvImpl      = "HDFS_IMPL"
	EnvDirectory = "HDFS_DIRECTORY"
	EnvUser      = "HDFS_USER"
)

var implAliases = map[string]string{
	ImplHDFS:  ImplHDFS,
	ImplSFTP:  ImplSFTP,
	ImplS3:    ImplS3,
	ImplLocal: ImplLocal,
	"org.apache.hadoop.hdfs.DistributedFileSystem": ImplHDFS,
}

var schemeImpls = map[string]string{
	"hdfs": ImplHDFS,
	"sftp": ImplSFTP,
	"ssh":  ImplSFTP,
	"s3":   ImplS3,
	"file": ImplLocal,
}

// Config represents the application configuration.
type Config struct {
	Endpoint  string     `yaml:"endpoint"`
	Impl      string     `yaml:"impl"`
	Directory string     `yaml:"directory"`
	User      string     `yaml:"user"`
	HDFS      HDFSConfig `yaml:"hdfs"`
	SFTP      SFTPConfig `yaml:"sftp"`
	S3        S3Config   `yaml:"s3"`
}

// HDFSConfig holds options specific to the hdfs implementation.
type HDFSConfig struct {
	UseHadoopConf       bool `yaml:"use_hadoop_conf"`
	UseDatanodeHostname bool `yaml:"use_datanode_hostname"`
}

// SFTPConfig holds options specific to the sftp implementation.
type SFTPConfig struct {
	Password   string `yaml:"password"`
	KnownHosts string `yaml:"known_hosts"`
}

// S3Config holds options specific to the s3 implementation.
type S3Config struct {
	Region          string `yaml:"region"`
	EndpointURL     string `yaml:"endpoint_url"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	PathStyle       bool   `yaml:"path_style"`
}

// ResolveImpl returns the implementation identifier: the explicit impl when set,
// otherwise the one matching the endpoint scheme.
func (c Config) ResolveImpl() (string, error) {
	if c.Impl != "" {
		impl, ok := implAliases[c.Impl]
		if !ok {
			impl, ok = implAliases[strings.ToLower(c.Impl)]
		}
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrUnknownImpl, c.Impl)
		}
		return impl, nil
	}

	scheme, err := Scheme(c.Endpoint)
	if err != nil {
		return "", err
	}
	impl, ok := schemeImpls[scheme]
	if !ok {
		return "", fmt.Errorf("%w: no implementation for scheme %q", ErrUnknownImpl, scheme)
	}
	return impl, nil
}

// Scheme returns the lowercase scheme of an endpoint. Authorities url.Parse
// rejects, such as hdfs://nn1:9000,nn2 with several namenodes, still yield
// their scheme.
func Scheme(endpoint string) (string, error) {
	u, err := url.Parse(endpoint)
	if err == nil {
		if u.Scheme == "" {
			return "", fmt.Errorf("%w: missing scheme in %q", ErrEndpointInvalid, endpoint)
		}
		return u.Scheme, nil
	}

	scheme, rest, ok := strings.Cut(endpoint, "://")
	if !ok || rest == "" || !validScheme(scheme) {
		return "", fmt.Errorf("%w: %w", ErrEndpointInvalid, err)
	}
	return strings.ToLower(scheme), nil
}

func validScheme(scheme string) bool {
	if scheme == "" {
		return false
	}
	for i, r := range scheme {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '+' || r == '-' || r == '.'):
		default:
			return false
		}
	}
	return true
}

// Validate validates the configuration values.
func (c Config) Validate() error {
	if c.Endpoint == "" {
		return ErrEndpointEmpty
	}

	if _, err := Scheme(c.Endpoint); err != nil {
		return err
	}

	if c.Directory == "" {
		return ErrDirectoryEmpty
	}
	if !path.IsAbs(c.Directory) {
		return fmt.Errorf("%w: %s", ErrDirectoryNotAbsolute, c.Directory)
	}

	if _, err := c.ResolveImpl(); err != nil {
		return err
	}

	return nil
}

// ApplyEnv overrides fields from the environment and returns the result.
func (c Config) ApplyEnv() Config {
	if v := os.Getenv(EnvEndpoint); v != "" {
		c.Endpoint = v
	}
	if v := os.Getenv(EnvImpl); v != "" {
		c.Impl = v
	}
	if v := os.Getenv(EnvDirectory); v != "" {
		c.Directory = v
	}
	if v := os.Getenv(EnvUser); v != "" {
		c.User = v
	}
	return c
}
