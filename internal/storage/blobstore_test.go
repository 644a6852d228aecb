package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildObjectNamePreservesExtension(t *testing.T) {
	name := BuildObjectName("holiday photo.JPG")
	assert.True(t, strings.HasSuffix(name, ".JPG"))
	assert.NotContains(t, name, " ")
}

func TestBuildObjectNameWithoutExtension(t *testing.T) {
	name := BuildObjectName("rawfile")
	assert.NotContains(t, name, ".")
	assert.NotEmpty(t, name)
}

func TestBuildObjectNameIsCollisionResistant(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		name := BuildObjectName("img.png")
		assert.False(t, seen[name], "duplicate object name %s", name)
		seen[name] = true
	}
}

func TestPublicURLFromEndpoint(t *testing.T) {
	store, err := NewMinioStore(Config{
		Endpoint:  "localhost:9000",
		AccessKey: "test",
		SecretKey: "test",
		Bucket:    "post-images",
	})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000/post-images/abc.png", store.PublicURL("abc.png"))
}

func TestPublicURLWithBaseOverride(t *testing.T) {
	store, err := NewMinioStore(Config{
		Endpoint:      "localhost:9000",
		AccessKey:     "test",
		SecretKey:     "test",
		Bucket:        "post-images",
		PublicBaseURL: "https://cdn.example.com/post-images/",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/post-images/abc.png", store.PublicURL("abc.png"))
}
