package uploadpath_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/newsdeskhq/newsdesk-backend/internal/pkg/uploadpath"
)

func TestBuild(t *testing.T) {
	now := time.Date(2026, time.March, 7, 12, 0, 0, 0, time.UTC)

	t.Run("builds dated key with sanitized name", func(t *testing.T) {
		key := uploadpath.Build("article", "My Photo.JPG", now)
		assert.Equal(t, "articles/2026/03/My_Photo.jpg", key)
	})

	t.Run("strips disallowed characters", func(t *testing.T) {
		key := uploadpath.Build("author", "héllo (1)!.png", now)
		assert.Equal(t, "authors/2026/03/hllo_1.png", key)
	})

	t.Run("keeps hyphens and underscores", func(t *testing.T) {
		key := uploadpath.Build("article", "breaking-news_photo.jpeg", now)
		assert.Equal(t, "articles/2026/03/breaking-news_photo.jpeg", key)
	})

	t.Run("handles missing extension", func(t *testing.T) {
		key := uploadpath.Build("article", "cover", now)
		assert.Equal(t, "articles/2026/03/cover", key)
	})
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "a_b-c_9", uploadpath.Sanitize("a b-c_9"))
	assert.Equal(t, "trailing", uploadpath.Sanitize("trailing   "))
	assert.Equal(t, "", uploadpath.Sanitize("!@#$%"))
}
