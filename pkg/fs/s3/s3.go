// Package s3 provides an fs.FS over an S3 bucket. Directories are empty
// marker objects whose key ends with a slash.
package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/lerenn/hdfs-playground/pkg/fs"
)

// Options configures the S3 connection.
type Options struct {
	// Endpoint is s3://bucket/optional/prefix.
	Endpoint string
	// Region is the bucket region.
	Region string
	// EndpointURL overrides the service URL (MinIO, Ceph RGW, LocalStack).
	EndpointURL string
	// AccessKeyID and SecretAccessKey select static credentials; empty uses the default chain.
	AccessKeyID     string
	SecretAccessKey string
	// PathStyle addresses the bucket in the URL path instead of the host name.
	PathStyle bool
}

// API is the subset of *s3.Client used by the driver.
type API interface {
	HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type s3FS struct {
	ctx    context.Context
	api    API
	bucket string
	prefix string
}

// New loads AWS configuration, builds a client and checks the bucket is reachable.
func New(ctx context.Context, opts Options) (fs.FS, error) {
	bucket, prefix, err := ParseEndpoint(opts.Endpoint)
	if err != nil {
		return nil, fs.Connection(opts.Endpoint, err)
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{}
	if opts.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(opts.Region))
	}
	if opts.AccessKeyID != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, "")))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fs.Connection(opts.Endpoint, err)
	}

	api := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.EndpointURL != "" {
			o.BaseEndpoint = aws.String(opts.EndpointURL)
		}
		o.UsePathStyle = opts.PathStyle
	})

	return NewWithAPI(ctx, api, bucket, prefix)
}

// NewWithAPI wraps an existing client after checking the bucket is reachable.
func NewWithAPI(ctx context.Context, api API, bucket, prefix string) (fs.FS, error) {
	if _, err := api.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(bucket)}); err != nil {
		return nil, fs.Connection("s3://"+bucket, err)
	}
	return &s3FS{ctx: ctx, api: api, bucket: bucket, prefix: strings.Trim(prefix, "/")}, nil
}

// ParseEndpoint splits s3://bucket/prefix into its bucket and key prefix.
func ParseEndpoint(endpoint string) (bucket, prefix string, err error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", "", fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}
	if u.Scheme != "s3" {
		return "", "", fmt.Errorf("invalid endpoint %q: scheme must be s3", endpoint)
	}
	if u.Host == "" {
		return "", "", fmt.Errorf("invalid endpoint %q: missing bucket", endpoint)
	}
	return u.Host, strings.Trim(u.Path, "/"), nil
}

// key maps a namespace path to an object key.
func (f *s3FS) key(p string) string {
	clean := strings.TrimPrefix(path.Clean("/"+p), "/")
	if f.prefix == "" {
		return clean
	}
	if clean == "" {
		return f.prefix
	}
	return f.prefix + "/" + clean
}

// dirKey maps a namespace path to its directory marker key.
func (f *s3FS) dirKey(p string) string {
	k := f.key(p)
	if k == "" {
		return ""
	}
	return k + "/"
}

func (f *s3FS) objectExists(key string) (bool, error) {
	_, err := f.api.HeadObject(f.ctx, &s3.HeadObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(key),
	})
	if err == nil {
		return true, nil
	}
	if isNotFound(err) {
		return false, nil
	}
	return false, translate(err)
}

// hasPrefix reports whether at least one object lives under the prefix.
func (f *s3FS) hasPrefix(prefix string, exclude string) (bool, error) {
	out, err := f.api.ListObjectsV2(f.ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(f.bucket),
		Prefix:  aws.String(prefix),
		MaxKeys: aws.Int32(2),
	})
	if err != nil {
		return false, translate(err)
	}
	for _, obj := range out.Contents {
		if aws.ToString(obj.Key) != exclude {
			return true, nil
		}
	}
	return false, nil
}

// Exists checks if a file or directory exists at the given path.
func (f *s3FS) Exists(p string) (bool, error) {
	isFile, err := f.IsFile(p)
	if err != nil || isFile {
		return isFile, err
	}
	return f.IsDir(p)
}

// IsDir checks if the path is a directory: a marker object or any object below it.
func (f *s3FS) IsDir(p string) (bool, error) {
	dk := f.dirKey(p)
	if dk == "" {
		return true, nil
	}
	found, err := f.hasPrefix(dk, "")
	if err != nil {
		return false, fs.Wrap("stat", p, err)
	}
	return found, nil
}

// IsFile checks if an object exists at the path's key.
func (f *s3FS) IsFile(p string) (bool, error) {
	k := f.key(p)
	if k == "" {
		return false, nil
	}
	found, err := f.objectExists(k)
	if err != nil {
		return false, fs.Wrap("stat", p, err)
	}
	return found, nil
}

// MkdirAll writes a marker object for the directory and each missing parent.
func (f *s3FS) MkdirAll(p string, _ os.FileMode) error {
	k := f.key(p)
	if k == "" {
		return nil
	}
	segments := strings.Split(k, "/")
	for i := range segments {
		dk := strings.Join(segments[:i+1], "/") + "/"
		// Ancestors of the prefix lie outside the namespace.
		if len(dk) <= len(f.prefix) {
			continue
		}

		fileKey := strings.TrimSuffix(dk, "/")
		isFile, err := f.objectExists(fileKey)
		if err != nil {
			return fs.Wrap("mkdir", p, err)
		}
		if isFile {
			return fs.Wrap("mkdir", p, fmt.Errorf("%s: %w", fileKey, fs.ErrNotDirectory))
		}

		exists, err := f.objectExists(dk)
		if err != nil {
			return fs.Wrap("mkdir", p, err)
		}
		if exists {
			continue
		}
		if err := f.put(dk, nil); err != nil {
			return fs.Wrap("mkdir", p, err)
		}
	}
	return nil
}

func (f *s3FS) put(key string, data []byte) error {
	_, err := f.api.PutObject(f.ctx, &s3.PutObjectInput{
		Bucket:        aws.String(f.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	})
	return translate(err)
}

// Create returns a writer that buffers content and uploads it on Close.
func (f *s3FS) Create(p string) (io.WriteCloser, error) {
	k := f.key(p)
	if k == "" {
		return nil, fs.Wrap("create", p, os.ErrInvalid)
	}
	return &objectWriter{fs: f, path: p, key: k}, nil
}

// Open fetches the object body for reading.
func (f *s3FS) Open(p string) (io.ReadCloser, error) {
	out, err := f.api.GetObject(f.ctx, &s3.GetObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(f.key(p)),
	})
	if err != nil {
		return nil, fs.Wrap("open", p, translate(err))
	}
	return out.Body, nil
}

// Remove deletes the object, or an empty directory's marker.
func (f *s3FS) Remove(p string) error {
	k := f.key(p)
	isFile, err := f.objectExists(k)
	if err != nil {
		return fs.Wrap("remove", p, err)
	}
	if !isFile {
		dk := f.dirKey(p)
		hasMarker, err := f.objectExists(dk)
		if err != nil {
			return fs.Wrap("remove", p, err)
		}
		children, err := f.hasPrefix(dk, dk)
		if err != nil {
			return fs.Wrap("remove", p, err)
		}
		if children {
			return fs.Wrap("remove", p, fs.ErrNotEmpty)
		}
		if !hasMarker {
			return fs.Wrap("remove", p, os.ErrNotExist)
		}
		k = dk
	}

	_, err = f.api.DeleteObject(f.ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(k),
	})
	return fs.Wrap("remove", p, translate(err))
}

// Close is a no-op: the SDK client holds no session.
func (f *s3FS) Close() error {
	return nil
}

type objectWriter struct {
	fs     *s3FS
	path   string
	key    string
	buf    bytes.Buffer
	closed bool
}

func (w *objectWriter) Write(p []byte) (int, error) {
	if w.closed {
		return 0, fs.Wrap("write", w.path, os.ErrClosed)
	}
	return w.buf.Write(p)
}

func (w *objectWriter) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	return fs.Wrap("write", w.path, w.fs.put(w.key, w.buf.Bytes()))
}

func isNotFound(err error) bool {
	var notFound *types.NotFound
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &notFound) || errors.As(err, &noSuchKey) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NotFound", "NoSuchKey":
			return true
		}
	}
	return false
}

// translate maps S3 API errors onto the os error values the fs package classifies.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if isNotFound(err) {
		return fmt.Errorf("%w: %w", os.ErrNotExist, err)
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "AccessDenied", "Forbidden", "InvalidAccessKeyId", "SignatureDoesNotMatch":
			return fmt.Errorf("%w: %w", os.ErrPermission, err)
		}
	}
	return err
}
