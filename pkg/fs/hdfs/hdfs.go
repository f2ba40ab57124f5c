// Package hdfs provides an fs.FS backed by an HDFS namenode.
package hdfs

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"strings"

	"github.com/colinmarc/hdfs/v2"
	"github.com/colinmarc/hdfs/v2/hadoopconf"

	"github.com/lerenn/hdfs-playground/pkg/fs"
)

// DefaultPort is the namenode RPC port used when the endpoint omits one.
const DefaultPort = "8020"

// ErrNoNamenode is returned when neither the endpoint nor the Hadoop configuration names a namenode.
var ErrNoNamenode = errors.New("no namenode address")

// Options configures the HDFS connection.
type Options struct {
	// Endpoint is the filesystem URL, e.g. hdfs://namenode:8020.
	// Several namenodes can be listed: hdfs://nn1:8020,nn2:8020.
	Endpoint string
	// User is the HDFS user; empty means the current OS user.
	User string
	// UseHadoopConf merges namenode addresses from HADOOP_CONF_DIR / HADOOP_HOME.
	UseHadoopConf bool
	// UseDatanodeHostname connects to datanodes by hostname instead of IP.
	UseDatanodeHostname bool
}

// client is the subset of *hdfs.Client used by the driver.
type client interface {
	Stat(name string) (os.FileInfo, error)
	MkdirAll(dirname string, perm os.FileMode) error
	Create(name string) (*hdfs.FileWriter, error)
	Open(name string) (*hdfs.FileReader, error)
	Remove(name string) error
	Close() error
}

type hdfsFS struct {
	client client
}

// New connects to the namenode described by opts.
func New(opts Options) (fs.FS, error) {
	clientOpts, err := ClientOptions(opts)
	if err != nil {
		return nil, fs.Connection(opts.Endpoint, err)
	}

	c, err := hdfs.NewClient(clientOpts)
	if err != nil {
		return nil, fs.Connection(opts.Endpoint, err)
	}

	return &hdfsFS{client: c}, nil
}

// ClientOptions builds the client options for opts without dialing.
func ClientOptions(opts Options) (hdfs.ClientOptions, error) {
	var clientOpts hdfs.ClientOptions
	if opts.UseHadoopConf {
		conf, err := hadoopconf.LoadFromEnvironment()
		if err != nil {
			return clientOpts, fmt.Errorf("failed to load hadoop configuration: %w", err)
		}
		clientOpts = hdfs.ClientOptionsFromConf(conf)
	}

	addresses, err := Addresses(opts.Endpoint)
	if err != nil {
		return clientOpts, err
	}
	if len(addresses) > 0 {
		clientOpts.Addresses = addresses
	}
	if len(clientOpts.Addresses) == 0 {
		return clientOpts, ErrNoNamenode
	}

	clientOpts.User = opts.User
	if clientOpts.User == "" {
		clientOpts.User = currentUser()
	}
	clientOpts.UseDatanodeHostname = opts.UseDatanodeHostname

	return clientOpts, nil
}

// Addresses extracts namenode host:port pairs from an hdfs:// endpoint.
// Hosts are comma separated and each may omit its port. An endpoint without a
// host (hdfs:///) yields no addresses.
func Addresses(endpoint string) ([]string, error) {
	scheme, rest, ok := strings.Cut(endpoint, "://")
	if !ok || !strings.EqualFold(scheme, "hdfs") {
		return nil, fmt.Errorf("invalid endpoint %q: scheme must be hdfs", endpoint)
	}

	authority, _, _ := strings.Cut(rest, "/")
	if i := strings.LastIndex(authority, "@"); i >= 0 {
		authority = authority[i+1:]
	}

	var addresses []string
	for _, host := range strings.Split(authority, ",") {
		host = strings.TrimSpace(host)
		if host == "" {
			continue
		}
		if !hasPort(host) {
			host = net.JoinHostPort(strings.Trim(host, "[]"), DefaultPort)
		}
		addresses = append(addresses, host)
	}
	return addresses, nil
}

func hasPort(host string) bool {
	if strings.HasPrefix(host, "[") {
		return strings.Contains(host, "]:")
	}
	return strings.Contains(host, ":")
}

func currentUser() string {
	if u := os.Getenv("HADOOP_USER_NAME"); u != "" {
		return u
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "hdfs"
}

// Exists checks if a file or directory exists at the given path.
func (f *hdfsFS) Exists(path string) (bool, error) {
	_, err := f.client.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, fs.Wrap("stat", path, err)
}

// IsDir checks if the path is a directory.
func (f *hdfsFS) IsDir(path string) (bool, error) {
	info, err := f.client.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fs.Wrap("stat", path, err)
	}
	return info.IsDir(), nil
}

// IsFile checks if the path is a regular file.
func (f *hdfsFS) IsFile(path string) (bool, error) {
	info, err := f.client.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fs.Wrap("stat", path, err)
	}
	return info.Mode().IsRegular(), nil
}

// MkdirAll creates a directory and all parent directories.
func (f *hdfsFS) MkdirAll(path string, perm os.FileMode) error {
	return fs.Wrap("mkdir", path, f.client.MkdirAll(path, perm))
}

// Create opens the path for writing. HDFS refuses to create over an existing
// file, so an existing file is removed first.
func (f *hdfsFS) Create(path string) (io.WriteCloser, error) {
	isFile, err := f.IsFile(path)
	if err != nil {
		return nil, err
	}
	if isFile {
		if err := f.client.Remove(path); err != nil {
			return nil, fs.Wrap("create", path, err)
		}
	}

	w, err := f.client.Create(path)
	if err != nil {
		return nil, fs.Wrap("create", path, err)
	}
	return w, nil
}

// Open opens the path for reading.
func (f *hdfsFS) Open(path string) (io.ReadCloser, error) {
	r, err := f.client.Open(path)
	if err != nil {
		return nil, fs.Wrap("open", path, err)
	}
	return r, nil
}

// Remove removes a file or empty directory.
func (f *hdfsFS) Remove(path string) error {
	return fs.Wrap("remove", path, f.client.Remove(path))
}

// Close releases the namenode connection.
func (f *hdfsFS) Close() error {
	return f.client.Close()
}
