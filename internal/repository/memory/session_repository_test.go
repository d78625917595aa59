package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"miva-analytics-be/pkg/store"
)

func TestSessionRepositoryRoundTrip(t *testing.T) {
	repo := NewSessionRepository(time.Minute)

	session := &store.Session{
		ID:        "sess-1",
		Username:  "miva_admin",
		IpAddress: "127.0.0.1",
		UserAgent: "test-agent",
		CreatedAt: time.Now(),
	}
	repo.Save(session)

	got, found := repo.Get("sess-1")
	assert.True(t, found)
	assert.Equal(t, "miva_admin", got.Username)

	repo.Delete("sess-1")
	_, found = repo.Get("sess-1")
	assert.False(t, found)
}

func TestSessionRepositoryUnknownID(t *testing.T) {
	repo := NewSessionRepository(time.Minute)

	_, found := repo.Get("no-such-session")
	assert.False(t, found)
}

func TestSessionRepositoryExpiry(t *testing.T) {
	repo := NewSessionRepository(20 * time.Millisecond)

	repo.Save(&store.Session{ID: "sess-2", Username: "miva_admin"})
	time.Sleep(50 * time.Millisecond)

	_, found := repo.Get("sess-2")
	assert.False(t, found)
}
