// Package sftp provides an fs.FS backed by an SFTP server.
package sftp

import (
	"errors"
	"fmt"
	"io"
	"net"
	"net/url"
	"os"
	"time"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"

	"github.com/lerenn/hdfs-playground/pkg/fs"
)

// DefaultPort is the SSH port used when the endpoint omits one.
const DefaultPort = "22"

// ErrNoUser is returned when neither the endpoint nor the options name a user.
var ErrNoUser = errors.New("no ssh user")

// Options configures the SFTP connection.
type Options struct {
	// Endpoint is the server URL, e.g. sftp://user@host:22.
	Endpoint string
	// User overrides the user from the endpoint.
	User string
	// Password authenticates the user; it may also be given in the endpoint.
	Password string
	// KnownHosts is a known_hosts file; empty accepts any host key.
	KnownHosts string
	// Timeout bounds the TCP dial.
	Timeout time.Duration
}

// client is the subset of *sftp.Client used by the driver.
type client interface {
	Stat(p string) (os.FileInfo, error)
	MkdirAll(path string) error
	Create(path string) (*sftp.File, error)
	Open(path string) (*sftp.File, error)
	Remove(path string) error
	Close() error
}

type sftpFS struct {
	client client
	conn   io.Closer
}

// New dials the SSH server and starts an SFTP subsystem on it.
func New(opts Options) (fs.FS, error) {
	addr, config, err := ClientConfig(opts)
	if err != nil {
		return nil, fs.Connection(opts.Endpoint, err)
	}

	conn, err := ssh.Dial("tcp", addr, config)
	if err != nil {
		return nil, fs.Connection(opts.Endpoint, err)
	}

	c, err := sftp.NewClient(conn)
	if err != nil {
		conn.Close()
		return nil, fs.Connection(opts.Endpoint, err)
	}

	return &sftpFS{client: c, conn: conn}, nil
}

// ClientConfig resolves the dial address and SSH configuration for opts.
func ClientConfig(opts Options) (string, *ssh.ClientConfig, error) {
	u, err := url.Parse(opts.Endpoint)
	if err != nil {
		return "", nil, fmt.Errorf("invalid endpoint %q: %w", opts.Endpoint, err)
	}
	if u.Scheme != "sftp" && u.Scheme != "ssh" {
		return "", nil, fmt.Errorf("invalid endpoint %q: scheme must be sftp", opts.Endpoint)
	}
	if u.Hostname() == "" {
		return "", nil, fmt.Errorf("invalid endpoint %q: missing host", opts.Endpoint)
	}

	port := u.Port()
	if port == "" {
		port = DefaultPort
	}
	addr := net.JoinHostPort(u.Hostname(), port)

	user := opts.User
	password := opts.Password
	if u.User != nil {
		if user == "" {
			user = u.User.Username()
		}
		if p, ok := u.User.Password(); ok && password == "" {
			password = p
		}
	}
	if user == "" {
		return "", nil, ErrNoUser
	}

	hostKeyCallback := ssh.InsecureIgnoreHostKey()
	if opts.KnownHosts != "" {
		knownHosts, err := fs.ExpandPath(opts.KnownHosts)
		if err != nil {
			return "", nil, err
		}
		hostKeyCallback, err = knownhosts.New(knownHosts)
		if err != nil {
			return "", nil, fmt.Errorf("failed to load known hosts: %w", err)
		}
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	config := &ssh.ClientConfig{
		User:            user,
		HostKeyCallback: hostKeyCallback,
		Timeout:         timeout,
	}
	if password != "" {
		config.Auth = []ssh.AuthMethod{ssh.Password(password)}
	}

	return addr, config, nil
}

// Exists checks if a file or directory exists at the given path.
func (f *sftpFS) Exists(path string) (bool, error) {
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
func (f *sftpFS) IsDir(path string) (bool, error) {
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
func (f *sftpFS) IsFile(path string) (bool, error) {
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
// The SFTP protocol applies the server's default mode, so perm is ignored.
func (f *sftpFS) MkdirAll(path string, _ os.FileMode) error {
	return fs.Wrap("mkdir", path, f.client.MkdirAll(path))
}

// Create opens the path for writing, truncating any existing file.
func (f *sftpFS) Create(path string) (io.WriteCloser, error) {
	file, err := f.client.Create(path)
	if err != nil {
		return nil, fs.Wrap("create", path, err)
	}
	return file, nil
}

// Open opens the path for reading.
func (f *sftpFS) Open(path string) (io.ReadCloser, error) {
	file, err := f.client.Open(path)
	if err != nil {
		return nil, fs.Wrap("open", path, err)
	}
	return file, nil
}

// Remove removes a file or empty directory.
func (f *sftpFS) Remove(path string) error {
	return fs.Wrap("remove", path, f.client.Remove(path))
}

// Close ends the SFTP subsystem and the underlying SSH connection.
func (f *sftpFS) Close() error {
	err := f.client.Close()
	if f.conn != nil {
		if cerr := f.conn.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
