// Package publish uploads an exported site to S3.
package publish

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/afero"

	"github.com/gyansetu/website/internal/config"
	"github.com/gyansetu/website/internal/progress"
)

// PutObjectAPI is the part of the S3 client the publisher uses.
type PutObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// NewClient builds an S3 client from the publish settings. Credentials come
// from the standard AWS_* environment variables.
func NewClient(cfg config.PublishConfig) *s3.Client {
	opts := s3.Options{
		Region:      cfg.Region,
		Credentials: aws.NewCredentialsCache(aws.CredentialsProviderFunc(envCredentials)),
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}
	return s3.New(opts)
}

func envCredentials(context.Context) (aws.Credentials, error) {
	id := os.Getenv("AWS_ACCESS_KEY_ID")
	secret := os.Getenv("AWS_SECRET_ACCESS_KEY")
	if id == "" || secret == "" {
		return aws.Credentials{}, fmt.Errorf("AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set")
	}
	return aws.Credentials{
		AccessKeyID:     id,
		SecretAccessKey: secret,
		SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
		Source:          "environment",
	}, nil
}

// Publisher uploads a directory tree to a bucket.
type Publisher struct {
	client   PutObjectAPI
	bucket   string
	prefix   string
	reporter progress.Reporter
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithReporter reports upload progress.
func WithReporter(r progress.Reporter) Option {
	return func(p *Publisher) { p.reporter = r }
}

// New creates a Publisher writing under prefix in bucket.
func New(client PutObjectAPI, bucket, prefix string, opts ...Option) *Publisher {
	p := &Publisher{
		client:   client,
		bucket:   bucket,
		prefix:   strings.Trim(prefix, "/"),
		reporter: progress.Discard{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Publish uploads every file under dir on fsys and returns the object keys
// written, in path order.
func (p *Publisher) Publish(ctx context.Context, fsys afero.Fs, dir string) ([]string, error) {
	var files []string
	err := afero.Walk(fsys, dir, func(name string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.Mode().IsRegular() {
			rel, err := filepath.Rel(dir, name)
			if err != nil {
				return err
			}
			files = append(files, filepath.ToSlash(rel))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("publish: walking %s: %w", dir, err)
	}
	sort.Strings(files)

	p.reporter.Start(len(files))
	defer p.reporter.Finish()

	keys := make([]string, 0, len(files))
	for i, rel := range files {
		data, err := afero.ReadFile(fsys, path.Join(filepath.ToSlash(dir), rel))
		if err != nil {
			return keys, fmt.Errorf("publish: reading %s: %w", rel, err)
		}
		key := p.Key(rel)
		_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:       aws.String(p.bucket),
			Key:          aws.String(key),
			Body:         bytes.NewReader(data),
			ContentType:  aws.String(ContentType(rel)),
			CacheControl: aws.String(CacheControl(rel)),
		})
		if err != nil {
			return keys, fmt.Errorf("publish: uploading %s: %w", key, err)
		}
		keys = append(keys, key)
		p.reporter.Update(i+1, key)
	}
	return keys, nil
}

// Key maps a relative file path to its object key.
func (p *Publisher) Key(rel string) string {
	if p.prefix == "" {
		return rel
	}
	return p.prefix + "/" + rel
}

// ContentType guesses a file's media type from its extension.
func ContentType(name string) string {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// CacheControl keeps pages fresh and lets static files be cached.
func CacheControl(name string) string {
	if strings.HasSuffix(name, ".html") {
		return "no-cache"
	}
	return "public, max-age=86400"
}
