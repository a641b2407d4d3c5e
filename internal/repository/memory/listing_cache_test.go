package memory

import (
	"testing"
	"time"

	"noteshare-be/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestListingCacheRoundTrip(t *testing.T) {
	c := NewListingCache(time.Minute)

	_, found := c.Get("index")
	assert.False(t, found)

	items := []dto.NoteListItem{{Id: uuid.New(), Title: "first"}}
	c.Set("index", items)

	got, found := c.Get("index")
	assert.True(t, found)
	assert.Equal(t, items, got)
}

func TestListingCacheInvalidate(t *testing.T) {
	c := NewListingCache(time.Minute)
	c.Set("index", []dto.NoteListItem{{Id: uuid.New()}})
	c.Set("most-liked", []dto.NoteListItem{{Id: uuid.New()}})

	c.Invalidate()

	_, found := c.Get("index")
	assert.False(t, found)
	_, found = c.Get("most-liked")
	assert.False(t, found)
}

func TestListingCacheExpiry(t *testing.T) {
	c := NewListingCache(10 * time.Millisecond)
	c.Set("index", []dto.NoteListItem{{Id: uuid.New()}})

	time.Sleep(30 * time.Millisecond)

	_, found := c.Get("index")
	assert.False(t, found)
}
