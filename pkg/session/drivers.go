package session

import (
	"context"
	"net/url"

	"github.com/lerenn/hdfs-playground/pkg/config"
	"github.com/lerenn/hdfs-playground/pkg/fs"
	"github.com/lerenn/hdfs-playground/pkg/fs/hdfs"
	"github.com/lerenn/hdfs-playground/pkg/fs/s3"
	"github.com/lerenn/hdfs-playground/pkg/fs/sftp"
)

// Opener dials a filesystem for a configuration.
type Opener func(ctx context.Context, cfg config.Config) (fs.FS, error)

func defaultDrivers() map[string]Opener {
	return map[string]Opener{
		config.ImplHDFS:  openHDFS,
		config.ImplSFTP:  openSFTP,
		config.ImplS3:    openS3,
		config.ImplLocal: openLocal,
	}
}

func openHDFS(_ context.Context, cfg config.Config) (fs.FS, error) {
	return hdfs.New(hdfs.Options{
		Endpoint:            cfg.Endpoint,
		User:                cfg.User,
		UseHadoopConf:       cfg.HDFS.UseHadoopConf,
		UseDatanodeHostname: cfg.HDFS.UseDatanodeHostname,
	})
}

func openSFTP(_ context.Context, cfg config.Config) (fs.FS, error) {
	return sftp.New(sftp.Options{
		Endpoint:   cfg.Endpoint,
		User:       cfg.User,
		Password:   cfg.SFTP.Password,
		KnownHosts: cfg.SFTP.KnownHosts,
	})
}

func openS3(ctx context.Context, cfg config.Config) (fs.FS, error) {
	return s3.New(ctx, s3.Options{
		Endpoint:        cfg.Endpoint,
		Region:          cfg.S3.Region,
		EndpointURL:     cfg.S3.EndpointURL,
		AccessKeyID:     cfg.S3.AccessKeyID,
		SecretAccessKey: cfg.S3.SecretAccessKey,
		PathStyle:       cfg.S3.PathStyle,
	})
}

// openLocal roots the local filesystem at the path of a file:// endpoint.
func openLocal(_ context.Context, cfg config.Config) (fs.FS, error) {
	u, err := url.Parse(cfg.Endpoint)
	if err != nil {
		return nil, fs.Connection(cfg.Endpoint, err)
	}
	return fs.NewLocalFS(u.Path), nil
}
