package settings

import (
	"errors"
	"sort"
)

const sourceNotWritableMessageConstant = "source is not writable"

// ErrSourceNotWritable is reported when a write is attempted on a read-only
// source.
var ErrSourceNotWritable = errors.New(sourceNotWritableMessageConstant)

// Source is a single origin of settings. Load synchronizes the reported
// settings with the state of the underlying source; Reinit resets the
// source interface so a subsequent Load is a from-scratch synchronization.
// Neither touches the underlying source itself.
type Source interface {
	Load() error
	Reinit()
	Keys() []string
	Get(key string) (Setting, bool)
	Has(key string) bool
	Writable() bool
}

// WritableSource is a Source whose settings can be assigned and removed.
type WritableSource interface {
	Source
	Set(key string, value Setting) error
	Delete(key string) error
}

// CachingSource is a map-backed settings cache used as the base of sources
// that materialize their settings in memory. Loaders populate it via Set
// during Load; reads are served from the cache.
type CachingSource struct {
	items map[string]Setting
}

// Reinit discards all cached settings.
func (source *CachingSource) Reinit() {
	source.items = nil
}

// Keys returns the cached setting keys in sorted order.
func (source *CachingSource) Keys() []string {
	keys := make([]string, 0, len(source.items))
	for key := range source.items {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the cached setting for the key.
func (source *CachingSource) Get(key string) (Setting, bool) {
	cachedSetting, present := source.items[key]
	return cachedSetting, present
}

// Has reports whether the key is cached.
func (source *CachingSource) Has(key string) bool {
	_, present := source.items[key]
	return present
}

// Set stores a setting in the cache.
func (source *CachingSource) Set(key string, value Setting) error {
	if source.items == nil {
		source.items = map[string]Setting{}
	}
	source.items[key] = value
	return nil
}

// Delete removes a setting from the cache.
func (source *CachingSource) Delete(key string) error {
	delete(source.items, key)
	return nil
}
