package publish

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/afero"

	"github.com/gyansetu/website/internal/config"
)

type upload struct {
	bucket, key, contentType, cacheControl, body string
}

type fakeS3 struct {
	mu      sync.Mutex
	uploads []upload
	failOn  string
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if aws.ToString(in.Key) == f.failOn {
		return nil, errors.New("access denied")
	}
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads = append(f.uploads, upload{
		bucket:       aws.ToString(in.Bucket),
		key:          aws.ToString(in.Key),
		contentType:  aws.ToString(in.ContentType),
		cacheControl: aws.ToString(in.CacheControl),
		body:         string(body),
	})
	return &s3.PutObjectOutput{}, nil
}

func exportFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	files := map[string]string{
		"dist/index.html":               "<html>home</html>",
		"dist/about/index.html":         "<html>about</html>",
		"dist/static/style.css":         "body{}",
		"dist/static/img/team/anil.png": "png",
	}
	for name, body := range files {
		if err := afero.WriteFile(fs, name, []byte(body), 0o644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	return fs
}

func TestPublish(t *testing.T) {
	client := &fakeS3{}
	p := New(client, "gyansetu-site", "/www/")

	keys, err := p.Publish(context.Background(), exportFs(t), "dist")
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	want := []string{
		"www/about/index.html",
		"www/index.html",
		"www/static/img/team/anil.png",
		"www/static/style.css",
	}
	if strings.Join(keys, ",") != strings.Join(want, ",") {
		t.Errorf("keys = %v, want %v", keys, want)
	}
	for _, u := range client.uploads {
		if u.bucket != "gyansetu-site" {
			t.Errorf("%s: bucket %q", u.key, u.bucket)
		}
		if u.key == "www/index.html" {
			if !strings.HasPrefix(u.contentType, "text/html") || u.cacheControl != "no-cache" {
				t.Errorf("index.html uploaded as %q / %q", u.contentType, u.cacheControl)
			}
			if u.body != "<html>home</html>" {
				t.Errorf("index.html body = %q", u.body)
			}
		}
	}
}

func TestPublishStopsOnError(t *testing.T) {
	client := &fakeS3{failOn: "index.html"}
	keys, err := New(client, "b", "").Publish(context.Background(), exportFs(t), "dist")
	if err == nil {
		t.Fatal("expected upload error")
	}
	if len(keys) != 1 || keys[0] != "about/index.html" {
		t.Errorf("keys before failure = %v", keys)
	}
}

func TestContentType(t *testing.T) {
	tests := map[string]string{
		"index.html":   "text/html",
		"style.css":    "text/css",
		"live.js":      "javascript",
		"logo.png":     "image/png",
		"unknown.blob": "application/octet-stream",
	}
	for name, want := range tests {
		if got := ContentType(name); !strings.Contains(got, want) {
			t.Errorf("ContentType(%q) = %q, want it to contain %q", name, got, want)
		}
	}
}

func TestNewClient(t *testing.T) {
	c := NewClient(config.PublishConfig{Region: "ap-south-1", Endpoint: "http://localhost:9000"})
	opts := c.Options()
	if opts.Region != "ap-south-1" || !opts.UsePathStyle || aws.ToString(opts.BaseEndpoint) != "http://localhost:9000" {
		t.Errorf("client options = region %q path-style %v endpoint %q", opts.Region, opts.UsePathStyle, aws.ToString(opts.BaseEndpoint))
	}
}

func TestEnvCredentials(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "")
	if _, err := envCredentials(context.Background()); err == nil {
		t.Error("expected error without credentials")
	}
	t.Setenv("AWS_ACCESS_KEY_ID", "AKIA")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")
	creds, err := envCredentials(context.Background())
	if err != nil || creds.AccessKeyID != "AKIA" {
		t.Errorf("creds = %+v, err %v", creds, err)
	}
}
