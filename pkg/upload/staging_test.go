package upload

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaging(t *testing.T) {
	entry := Entry{
		Filename: "report.pdf",
		FileType: "pdf",
		MimeType: "application/pdf",
		FileData: []byte("%PDF"),
		FileSize: 4,
		UserID:   "alice",
	}

	t.Run("put then take round trips and consumes", func(t *testing.T) {
		s := NewStaging(time.Hour)
		token := s.Put(entry)
		require.NotEmpty(t, token)
		assert.Equal(t, 1, s.Len())

		got, err := s.Take(token)
		require.NoError(t, err)
		assert.Equal(t, entry.Filename, got.Filename)
		assert.Equal(t, entry.FileData, got.FileData)
		assert.Equal(t, "alice", got.UserID)
		assert.False(t, got.StagedAt.IsZero())

		// Consumed: a second take misses.
		_, err = s.Take(token)
		require.ErrorIs(t, err, ErrTokenNotFound)
		assert.Zero(t, s.Len())
	})

	t.Run("unknown token", func(t *testing.T) {
		s := NewStaging(time.Hour)
		_, err := s.Take("nope")
		require.ErrorIs(t, err, ErrTokenNotFound)
	})

	t.Run("expired entry is rejected and removed", func(t *testing.T) {
		s := NewStaging(10 * time.Millisecond)
		token := s.Put(entry)
		time.Sleep(30 * time.Millisecond)

		_, err := s.Take(token)
		require.ErrorIs(t, err, ErrAttachmentExpired)
		assert.Zero(t, s.Len())
	})

	t.Run("janitor sweeps expired entries", func(t *testing.T) {
		s := NewStaging(10 * time.Millisecond)
		s.Put(entry)
		s.Put(entry)
		s.StartJanitor(20 * time.Millisecond)
		defer s.Stop()

		assert.Eventually(t, func() bool { return s.Len() == 0 },
			time.Second, 10*time.Millisecond)
	})

	t.Run("tokens are unique", func(t *testing.T) {
		s := NewStaging(time.Hour)
		a := s.Put(entry)
		b := s.Put(entry)
		assert.NotEqual(t, a, b)
	})
}
