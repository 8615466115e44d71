package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicURL(t *testing.T) {
	tests := []struct {
		name string
		base string
		key  string
		want string
	}{
		{"host only", "https://cdn.example.com", "rounds/round-001.json", "https://cdn.example.com/rounds/round-001.json"},
		{"base with trailing slash", "https://cdn.example.com/t/", "rounds/latest.json", "https://cdn.example.com/t/rounds/latest.json"},
		{"base path without slash", "https://cdn.example.com/t", "rounds/latest.json", "https://cdn.example.com/t/rounds/latest.json"},
		{"key with leading slash", "https://cdn.example.com/", "/rounds/latest.json", "https://cdn.example.com/rounds/latest.json"},
		{"empty key", "https://cdn.example.com", "", ""},
		{"empty base", "", "rounds/latest.json", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, publicURL(tt.base, tt.key))
		})
	}
}

func TestS3UploaderConfigEndpoint(t *testing.T) {
	assert.Equal(t, "https://abc.r2.cloudflarestorage.com", S3UploaderConfig{AccountID: "abc"}.endpoint())
	assert.Equal(t, "http://localhost:9000", S3UploaderConfig{AccountID: "abc", Endpoint: "http://localhost:9000"}.endpoint())
	assert.Empty(t, S3UploaderConfig{}.endpoint())
}

func TestNewS3UploaderValidation(t *testing.T) {
	_, err := NewS3Uploader(context.Background(), S3UploaderConfig{AccountID: "abc", BucketName: "rounds"})
	assert.Error(t, err)

	u, err := NewS3Uploader(context.Background(), S3UploaderConfig{
		Endpoint:        "http://localhost:9000",
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
		BucketName:      "rounds",
		PublicBaseURL:   "https://cdn.example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/rounds/latest.json", u.GetPublicURL("rounds/latest.json"))
}
