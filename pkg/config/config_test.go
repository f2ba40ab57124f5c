//go:build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvEndpoint, EnvImpl, EnvDirectory, EnvUser} {
		t.Setenv(key, "")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:   "valid config",
			config: Config{Endpoint: "hdfs://namenode:8020", Directory: "/tmp/test"},
		},
		{
			name:    "empty endpoint",
			config:  Config{Directory: "/tmp/test"},
			wantErr: ErrEndpointEmpty,
		},
		{
			name:   "several namenodes, last without port",
			config: Config{Endpoint: "hdfs://nn1:9000,nn2", Directory: "/tmp/test"},
		},
		{
			name:    "malformed endpoint",
			config:  Config{Endpoint: "://nope", Directory: "/tmp/test"},
			wantErr: ErrEndpointInvalid,
		},
		{
			name:    "endpoint without scheme",
			config:  Config{Endpoint: "//namenode:8020", Directory: "/tmp/test"},
			wantErr: ErrEndpointInvalid,
		},
		{
			name:    "empty directory",
			config:  Config{Endpoint: "hdfs://namenode:8020"},
			wantErr: ErrDirectoryEmpty,
		},
		{
			name:    "relative directory",
			config:  Config{Endpoint: "hdfs://namenode:8020", Directory: "tmp/test"},
			wantErr: ErrDirectoryNotAbsolute,
		},
		{
			name:    "unknown scheme",
			config:  Config{Endpoint: "ftp://host", Directory: "/tmp/test"},
			wantErr: ErrUnknownImpl,
		},
		{
			name:    "unknown impl",
			config:  Config{Endpoint: "hdfs://namenode:8020", Impl: "webhdfs", Directory: "/tmp/test"},
			wantErr: ErrUnknownImpl,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestConfig_ResolveImpl(t *testing.T) {
	tests := []struct {
		endpoint string
		impl     string
		want     string
	}{
		{endpoint: "hdfs://namenode:8020", want: ImplHDFS},
		{endpoint: "sftp://user@host", want: ImplSFTP},
		{endpoint: "ssh://user@host", want: ImplSFTP},
		{endpoint: "s3://bucket/prefix", want: ImplS3},
		{endpoint: "file:///tmp/root", want: ImplLocal},
		{endpoint: "hdfs://nn1:9000,nn2", want: ImplHDFS},
		{endpoint: "HDFS://nn1:9000,nn2/data", want: ImplHDFS},
		{endpoint: "hdfs://namenode:8020", impl: "org.apache.hadoop.hdfs.DistributedFileSystem", want: ImplHDFS},
		{endpoint: "file:///tmp/root", impl: "LOCAL", want: ImplLocal},
	}

	for _, tt := range tests {
		t.Run(tt.endpoint+"/"+tt.impl, func(t *testing.T) {
			got, err := Config{Endpoint: tt.endpoint, Impl: tt.impl}.ResolveImpl()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfig_ApplyEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvEndpoint, "hdfs://other:9000")
	t.Setenv(EnvDirectory, "/user/test")

	config := Config{Endpoint: "hdfs://namenode:8020", Directory: "/tmp/test", User: "hdfs"}.ApplyEnv()

	assert.Equal(t, "hdfs://other:9000", config.Endpoint)
	assert.Equal(t, "/user/test", config.Directory)
	assert.Equal(t, "hdfs", config.User)
	assert.Empty(t, config.Impl)
}

func TestRealManager_DefaultConfig(t *testing.T) {
	manager := NewManager(filepath.Join(t.TempDir(), "config.yaml"))
	config := manager.DefaultConfig()

	assert.Equal(t, "hdfs://localhost:8020", config.Endpoint)
	assert.Equal(t, "/tmp/hdfs-playground", config.Directory)
	assert.Equal(t, "us-east-1", config.S3.Region)
	assert.True(t, config.S3.PathStyle)
	assert.NoError(t, config.Validate())
}

func TestRealManager_GetConfig(t *testing.T) {
	clearEnv(t)
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	validYAML := `endpoint: sftp://alice@files.example.com
directory: /home/alice/playground
sftp:
  password: secret
`
	require.NoError(t, os.WriteFile(configPath, []byte(validYAML), 0644))

	config, err := NewManager(configPath).GetConfig()
	require.NoError(t, err)
	assert.Equal(t, "sftp://alice@files.example.com", config.Endpoint)
	assert.Equal(t, "/home/alice/playground", config.Directory)
	assert.Equal(t, "secret", config.SFTP.Password)
}

func TestRealManager_GetConfig_FileNotFound(t *testing.T) {
	manager := NewManager(filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := manager.GetConfig()
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestRealManager_GetConfig_InvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("endpoint: [unclosed"), 0644))

	_, err := NewManager(configPath).GetConfig()
	assert.ErrorIs(t, err, ErrConfigFileParse)
}

func TestRealManager_GetConfig_Invalid(t *testing.T) {
	clearEnv(t)
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("endpoint: hdfs://nn\ndirectory: relative\n"), 0644))

	_, err := NewManager(configPath).GetConfig()
	assert.ErrorIs(t, err, ErrDirectoryNotAbsolute)
}

func TestRealManager_GetConfigWithFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvEndpoint, "hdfs://cluster:8020")

	config, err := NewManager(filepath.Join(t.TempDir(), "missing.yaml")).GetConfigWithFallback()
	require.NoError(t, err)
	assert.Equal(t, "hdfs://cluster:8020", config.Endpoint)
	assert.Equal(t, "/tmp/hdfs-playground", config.Directory)
}

func TestRealManager_SaveConfig(t *testing.T) {
	clearEnv(t)
	configPath := filepath.Join(t.TempDir(), "nested", "config.yaml")
	manager := NewManager(configPath)

	want := manager.DefaultConfig()
	want.Endpoint = "s3://bucket/prefix"
	want.S3.EndpointURL = "http://localhost:9000"

	require.NoError(t, manager.SaveConfig(want))
	assert.Equal(t, configPath, manager.GetConfigPath())

	got, err := manager.GetConfig()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
