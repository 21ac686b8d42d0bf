package storage

import (
	"io"
	"testing"

	"movie-manager/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ Client = (*mocks.Client)(nil)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		client, err := NewClient(Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			Bucket:    "movies",
			Region:    "us-east-1",
		})
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithScheme", func(t *testing.T) {
		client, err := NewClient(Config{Endpoint: "https://s3.amazonaws.com", Region: "us-east-1"})
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EmptyEndpoint", func(t *testing.T) {
		_, err := NewClient(Config{})
		assert.Error(t, err)
	})
}

func TestNormalizeEndpoint(t *testing.T) {
	cases := []struct {
		in         string
		useSSL     bool
		wantHost   string
		wantSecure bool
	}{
		{"localhost:9000", false, "localhost:9000", false},
		{"localhost:9000", true, "localhost:9000", true},
		{"http://minio:9000/", false, "minio:9000", false},
		{"https://s3.amazonaws.com", false, "s3.amazonaws.com", true},
		{"  ", false, "", false},
	}
	for _, tc := range cases {
		host, secure := normalizeEndpoint(tc.in, tc.useSSL)
		assert.Equal(t, tc.wantHost, host, tc.in)
		assert.Equal(t, tc.wantSecure, secure, tc.in)
	}
}

func TestMockHelpers(t *testing.T) {
	var keys []string
	for obj := range mocks.Objects(minio.ObjectInfo{Key: "a"}, minio.ObjectInfo{Key: "b"}) {
		keys = append(keys, obj.Key)
	}
	assert.Equal(t, []string{"a", "b"}, keys)

	data, err := io.ReadAll(mocks.Body("[]"))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}
