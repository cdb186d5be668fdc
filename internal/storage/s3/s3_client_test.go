package s3_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cidgate/internal/config"
	"cidgate/internal/port"
	s3storage "cidgate/internal/storage/s3"
)

// fakeBucket answers the PUT and HEAD requests issued for a single-part upload.
type fakeBucket struct {
	mu      sync.Mutex
	cid     string
	putKeys []string
	putBody []byte
	failPut bool
}

func (f *fakeBucket) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch r.Method {
	case http.MethodPut:
		body, _ := io.ReadAll(r.Body)
		if f.failPut {
			w.WriteHeader(http.StatusForbidden)
			_, _ = io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>AccessDenied</Code><Message>denied</Message></Error>`)
			return
		}
		f.putKeys = append(f.putKeys, r.URL.Path)
		f.putBody = body
		w.Header().Set("ETag", `"etag-1"`)
		w.WriteHeader(http.StatusOK)
	case http.MethodHead:
		if f.cid != "" {
			w.Header().Set("x-amz-meta-cid", f.cid)
		}
		w.Header().Set("ETag", `"etag-1"`)
		w.Header().Set("Last-Modified", time.Now().UTC().Format(http.TimeFormat))
		w.WriteHeader(http.StatusOK)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func newClient(t *testing.T, fake *fakeBucket) port.ObjectStorage {
	t.Helper()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	client, err := s3storage.NewS3Client(&config.StorageConfig{
		Endpoint:       srv.URL,
		Region:         "us-east-1",
		Bucket:         "photos",
		AccessKey:      "key",
		SecretKey:      "secret",
		CIDMetadataKey: "cid",
	})
	require.NoError(t, err)
	return client
}

func TestS3Client_Put_ReturnsCID(t *testing.T) {
	fake := &fakeBucket{cid: "bafybeigdyrzt"}
	client := newClient(t, fake)

	out, err := client.Put(context.Background(), port.PutInput{
		Name:        "cat.png",
		Body:        []byte("png-bytes"),
		ContentType: "image/png",
	})

	require.NoError(t, err)
	assert.Equal(t, "bafybeigdyrzt", out.CID)
	assert.Equal(t, []string{"/photos/cat.png"}, fake.putKeys)
	assert.Equal(t, []byte("png-bytes"), fake.putBody)
}

func TestS3Client_Put_NoCIDMetadata(t *testing.T) {
	client := newClient(t, &fakeBucket{})

	out, err := client.Put(context.Background(), port.PutInput{Name: "a.png", Body: []byte("x"), ContentType: "image/png"})

	require.NoError(t, err)
	assert.Empty(t, out.CID)
}

func TestS3Client_Put_Error(t *testing.T) {
	client := newClient(t, &fakeBucket{failPut: true})

	out, err := client.Put(context.Background(), port.PutInput{Name: "a.png", Body: []byte("x"), ContentType: "image/png"})

	assert.Error(t, err)
	assert.Nil(t, out)
}
