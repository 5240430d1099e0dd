package conn

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/go-git/go-billy/v6/memfs"
	"github.com/go-git/go-billy/v6/util"
	"github.com/nickyhof/GamesDB/internal/gamestest"
)

func TestDetectScheme(t *testing.T) {
	tests := []struct {
		location string
		want     urlScheme
	}{
		{"db/database.sqlite", schemeLocal},
		{"/abs/games.sqlite", schemeLocal},
		{"file:///tmp/games.sqlite", schemeFile},
		{"http://example.com/games.sqlite", schemeHTTP},
		{"HTTPS://example.com/games.sqlite", schemeHTTPS},
		{"s3://bucket/games.sqlite", schemeS3},
	}

	for _, tt := range tests {
		if got := detectScheme(tt.location); got != tt.want {
			t.Errorf("detectScheme(%q): expected %s, got %s", tt.location, tt.want, got)
		}
	}
}

func TestParseS3URL(t *testing.T) {
	bucket, key, err := parseS3URL("s3://games/snapshots/sample.sqlite")
	if err != nil {
		t.Fatalf("parseS3URL failed: %v", err)
	}
	if bucket != "games" || key != "snapshots/sample.sqlite" {
		t.Errorf("Expected games / snapshots/sample.sqlite, got %s / %s", bucket, key)
	}

	for _, bad := range []string{"s3://games", "s3://games/", "s3:///key"} {
		if _, _, err := parseS3URL(bad); err == nil {
			t.Errorf("Expected error for %q", bad)
		}
	}
}

func TestStageLocalPaths(t *testing.T) {
	m, _ := setupTestManager(t, WithFilesystem(memfs.New()))

	got, err := m.Stage(context.Background(), "db/database.sqlite", RemoteConfig{})
	if err != nil || got != "db/database.sqlite" {
		t.Errorf("Expected local path unchanged, got %q, %v", got, err)
	}

	got, err = m.Stage(context.Background(), "file:///data/games.sqlite", RemoteConfig{})
	if err != nil || got != "/data/games.sqlite" {
		t.Errorf("Expected file URL to become a path, got %q, %v", got, err)
	}
}

func TestStageHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/files/games.sqlite" {
			http.NotFound(w, r)
			return
		}
		io.WriteString(w, "database bytes")
	}))
	defer server.Close()

	fs := memfs.New()
	m, logs := setupTestManager(t, WithFilesystem(fs))

	path, err := m.Stage(context.Background(), server.URL+"/files/games.sqlite", RemoteConfig{CacheDir: "/cache"})
	if err != nil {
		t.Fatalf("Stage failed: %v", err)
	}
	if path != "/cache/games.sqlite" {
		t.Errorf("Expected /cache/games.sqlite, got %s", path)
	}

	data, err := util.ReadFile(fs, path)
	if err != nil {
		t.Fatalf("Failed to read staged file: %v", err)
	}
	if string(data) != "database bytes" {
		t.Errorf("Expected staged content, got %q", data)
	}
	if !strings.Contains(logs.String(), "Staged") {
		t.Errorf("Expected staging to be logged, got %q", logs.String())
	}
}

func TestStageHTTPStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/broken.sqlite" {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		http.NotFound(w, r)
	}))
	defer server.Close()

	m, _ := setupTestManager(t, WithFilesystem(memfs.New()))

	_, err := m.Stage(context.Background(), server.URL+"/games.sqlite", RemoteConfig{CacheDir: "/cache"})
	if err == nil || !strings.Contains(err.Error(), "404") {
		t.Errorf("Expected status 404 error, got %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected 404 to match fs.ErrNotExist, got %v", err)
	}

	_, err = m.Stage(context.Background(), server.URL+"/broken.sqlite", RemoteConfig{CacheDir: "/cache"})
	if err == nil || !strings.Contains(err.Error(), "500") {
		t.Errorf("Expected status 500 error, got %v", err)
	}
	if errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected 500 not to match fs.ErrNotExist, got %v", err)
	}
}

func TestStageThenConnect(t *testing.T) {
	source := gamestest.NewDatabase(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, source)
	}))
	defer server.Close()

	m, _ := setupTestManager(t)
	path, err := m.Stage(context.Background(), server.URL+"/sample_database.sqlite", RemoteConfig{CacheDir: t.TempDir()})
	if err != nil {
		t.Fatalf("Stage failed: %v", err)
	}

	handle, err := m.Connect(context.Background(), path)
	if err != nil {
		t.Fatalf("Connect to staged file failed: %v", err)
	}
	defer m.Disconnect(handle)

	var count int
	if err := handle.QueryRow("SELECT COUNT(*) FROM Players").Scan(&count); err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if count != gamestest.PlayerCount {
		t.Errorf("Expected %d players, got %d", gamestest.PlayerCount, count)
	}
}

type fakeS3 struct {
	bucket string
	key    string
	body   string
	err    error
}

func (f *fakeS3) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.bucket = aws.ToString(in.Bucket)
	f.key = aws.ToString(in.Key)
	if f.err != nil {
		return nil, f.err
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(f.body))}, nil
}

func swapS3Client(t *testing.T, client objectGetter) *RemoteConfig {
	t.Helper()
	var seen RemoteConfig
	original := newS3Client
	newS3Client = func(ctx context.Context, cfg RemoteConfig) (objectGetter, error) {
		seen = cfg
		return client, nil
	}
	t.Cleanup(func() { newS3Client = original })
	return &seen
}

func TestStageS3(t *testing.T) {
	fake := &fakeS3{body: "s3 bytes"}
	seen := swapS3Client(t, fake)

	fs := memfs.New()
	m, _ := setupTestManager(t, WithFilesystem(fs))

	cfg := RemoteConfig{Region: "eu-west-1", CacheDir: "/cache"}
	path, err := m.Stage(context.Background(), "s3://games/snapshots/sample.sqlite", cfg)
	if err != nil {
		t.Fatalf("Stage failed: %v", err)
	}

	if fake.bucket != "games" || fake.key != "snapshots/sample.sqlite" {
		t.Errorf("Expected games/snapshots/sample.sqlite, got %s/%s", fake.bucket, fake.key)
	}
	if seen.Region != "eu-west-1" {
		t.Errorf("Expected config to reach the client factory, got %+v", *seen)
	}
	if path != "/cache/sample.sqlite" {
		t.Errorf("Expected /cache/sample.sqlite, got %s", path)
	}

	data, err := util.ReadFile(fs, path)
	if err != nil || string(data) != "s3 bytes" {
		t.Errorf("Expected staged S3 content, got %q, %v", data, err)
	}
}

func TestStageS3Error(t *testing.T) {
	denied := errors.New("access denied")
	swapS3Client(t, &fakeS3{err: denied})

	m, _ := setupTestManager(t, WithFilesystem(memfs.New()))
	_, err := m.Stage(context.Background(), "s3://games/sample.sqlite", RemoteConfig{CacheDir: "/cache"})
	if !errors.Is(err, denied) {
		t.Errorf("Expected wrapped S3 error, got %v", err)
	}
	if errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected access error not to match fs.ErrNotExist, got %v", err)
	}
}

func TestStageS3MissingKey(t *testing.T) {
	swapS3Client(t, &fakeS3{err: &types.NoSuchKey{Message: aws.String("no such key")}})

	m, _ := setupTestManager(t, WithFilesystem(memfs.New()))
	_, err := m.Stage(context.Background(), "s3://games/missing.sqlite", RemoteConfig{CacheDir: "/cache"})
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected missing key to match fs.ErrNotExist, got %v", err)
	}
}

func TestNewS3ClientOptions(t *testing.T) {
	// Keep the SDK away from the developer's own profile.
	t.Setenv("AWS_CONFIG_FILE", os.DevNull)
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", os.DevNull)

	client, err := newS3Client(context.Background(), RemoteConfig{
		AccessKey: "AKIDEXAMPLE",
		SecretKey: "secret",
		Region:    "eu-west-1",
		Endpoint:  "http://localhost:9000",
	})
	if err != nil {
		t.Fatalf("newS3Client failed: %v", err)
	}

	s3Client, ok := client.(*s3.Client)
	if !ok {
		t.Fatalf("Expected *s3.Client, got %T", client)
	}

	opts := s3Client.Options()
	if opts.Region != "eu-west-1" {
		t.Errorf("Expected region eu-west-1, got %s", opts.Region)
	}
	if aws.ToString(opts.BaseEndpoint) != "http://localhost:9000" || !opts.UsePathStyle {
		t.Errorf("Expected path-style custom endpoint, got %v %v", aws.ToString(opts.BaseEndpoint), opts.UsePathStyle)
	}

	creds, err := opts.Credentials.Retrieve(context.Background())
	if err != nil {
		t.Fatalf("Retrieve credentials failed: %v", err)
	}
	if creds.AccessKeyID != "AKIDEXAMPLE" {
		t.Errorf("Expected static access key, got %s", creds.AccessKeyID)
	}
}
