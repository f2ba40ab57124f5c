// Package session acquires a filesystem for a configuration, guarantees the
// working directory exists, and releases the filesystem on Close.
package session

import (
	"context"
	"fmt"
	"path"
	"sync"

	"github.com/lerenn/hdfs-playground/pkg/config"
	"github.com/lerenn/hdfs-playground/pkg/fs"
	"github.com/lerenn/hdfs-playground/pkg/logger"
)

// DirPerm is the mode used when creating the working directory.
const DirPerm = 0755

// Session is a live handle to a remote filesystem. It is owned by a single
// test run and must not be shared between concurrent runs.
type Session struct {
	fs        fs.FS
	endpoint  string
	impl      string
	directory string
	logger    logger.Logger

	mu     sync.Mutex
	closed bool
}

// Option configures Open.
type Option func(*options)

type options struct {
	ctx     context.Context
	logger  logger.Logger
	drivers map[string]Opener
}

// WithLogger sets the logger used for session events.
func WithLogger(l logger.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithContext sets the context used by drivers that take one while dialing.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		o.ctx = ctx
	}
}

// WithDriver registers or replaces the opener for an implementation identifier.
func WithDriver(impl string, opener Opener) Option {
	return func(o *options) {
		o.drivers[impl] = opener
	}
}

// Open establishes a session for cfg. Every failure to reach or configure the
// endpoint wraps fs.ErrConnection.
func Open(cfg config.Config, opts ...Option) (*Session, error) {
	o := &options{
		ctx:     context.Background(),
		logger:  logger.NewNoopLogger(),
		drivers: defaultDrivers(),
	}
	for _, opt := range opts {
		opt(o)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fs.Connection(cfg.Endpoint, err)
	}

	impl, err := cfg.ResolveImpl()
	if err != nil {
		return nil, fs.Connection(cfg.Endpoint, err)
	}

	opener, ok := o.drivers[impl]
	if !ok {
		return nil, fs.Connection(cfg.Endpoint, fmt.Errorf("%w: %s", config.ErrUnknownImpl, impl))
	}

	o.logger.Logf("connecting to %s (%s)", cfg.Endpoint, impl)
	fsys, err := opener(o.ctx, cfg)
	if err != nil {
		o.logger.Logf("failed to connect to %s: %v", cfg.Endpoint, err)
		return nil, fs.Connection(cfg.Endpoint, err)
	}
	o.logger.Logf("connected to %s", cfg.Endpoint)

	return &Session{
		fs:        fsys,
		endpoint:  cfg.Endpoint,
		impl:      impl,
		directory: path.Clean(cfg.Directory),
		logger:    o.logger,
	}, nil
}

// FS returns the filesystem held by the session.
func (s *Session) FS() fs.FS {
	return s.fs
}

// Endpoint returns the endpoint address the session is connected to.
func (s *Session) Endpoint() string {
	return s.endpoint
}

// Impl returns the resolved implementation identifier.
func (s *Session) Impl() string {
	return s.impl
}

// Directory returns the working directory.
func (s *Session) Directory() string {
	return s.directory
}

// Path joins a file name onto the working directory.
func (s *Session) Path(name string) string {
	return path.Join(s.directory, name)
}

// EnsureWorkingDirectory ensures the configured working directory exists.
func (s *Session) EnsureWorkingDirectory() error {
	return s.EnsureDirectory(s.directory)
}

// EnsureDirectory creates dir and any missing parents when it is not already a
// directory. It is idempotent.
func (s *Session) EnsureDirectory(dir string) error {
	if s.isClosed() {
		return ErrClosed
	}

	isDir, err := s.fs.IsDir(dir)
	if err != nil {
		return err
	}
	if isDir {
		s.logger.Logf("directory %s already exists", dir)
		return nil
	}

	exists, err := s.fs.Exists(dir)
	if err != nil {
		return err
	}
	if exists {
		return fs.Wrap("mkdir", dir, fmt.Errorf("%s: %w", dir, fs.ErrNotDirectory))
	}

	s.logger.Logf("creating directory %s", dir)
	return s.fs.MkdirAll(dir, DirPerm)
}

// Close releases the filesystem. Only the first call reaches the driver;
// later calls return nil.
func (s *Session) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	s.logger.Logf("closing session to %s", s.endpoint)
	return s.fs.Close()
}

func (s *Session) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
