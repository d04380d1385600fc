package progression

import (
	"encoding/json"
	"time"

	"github.com/coocood/freecache"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// ProfileCache keeps recently read or written profiles for the profile view.
// The engine refreshes an entry after every write it makes.
type ProfileCache struct {
	cache *freecache.Cache
	ttl   time.Duration
}

func NewProfileCache(sizeMB int, ttl time.Duration) *ProfileCache {
	return &ProfileCache{
		cache: freecache.NewCache(sizeMB * 1024 * 1024),
		ttl:   ttl,
	}
}

func (c *ProfileCache) Get(clientID uuid.UUID) (*Profile, bool) {
	data, err := c.cache.Get(clientID[:])
	if err != nil {
		return nil, false
	}
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		log.Errorf("unmarshal cached profile %s: %s", clientID, err)
		c.cache.Del(clientID[:])
		return nil, false
	}
	return &p, true
}

func (c *ProfileCache) Set(p Profile) {
	data, err := json.Marshal(p)
	if err != nil {
		log.Errorf("marshal profile %s for cache: %s", p.ClientID, err)
		return
	}
	if err := c.cache.Set(p.ClientID[:], data, int(c.ttl.Seconds())); err != nil {
		log.Warnf("cache profile %s: %s", p.ClientID, err)
	}
}

// Fill caches a profile read from the store unless an entry already exists.
// Entries written by the engine are newer than any concurrent store read.
func (c *ProfileCache) Fill(p Profile) {
	data, err := json.Marshal(p)
	if err != nil {
		log.Errorf("marshal profile %s for cache: %s", p.ClientID, err)
		return
	}
	if _, err := c.cache.GetOrSet(p.ClientID[:], data, int(c.ttl.Seconds())); err != nil {
		log.Warnf("fill cached profile %s: %s", p.ClientID, err)
	}
}

func (c *ProfileCache) Delete(clientID uuid.UUID) {
	c.cache.Del(clientID[:])
}

func (c *ProfileCache) HitRate() float64 {
	return c.cache.HitRate()
}
