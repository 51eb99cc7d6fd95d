package settings

import "sort"

// NamedSource pairs a source with the identifier used to address it on the
// manager.
type NamedSource struct {
	Name   string
	Source Source
}

// Settings queries an ordered list of sources. Sources declared earlier
// take precedence over sources declared later. A requested setting is
// flattened across all sources: each property comes from the
// highest-precedence source that defines it, so a value and its coercer may
// originate from different sources.
type Settings struct {
	sources []NamedSource
}

// NewSettings returns a manager over the given sources in precedence order.
func NewSettings(sources ...NamedSource) *Settings {
	return &Settings{sources: sources}
}

// Source returns the source registered under the given name. It is used to
// address individual sources for source-specific operations, such as
// writing a setting.
func (manager *Settings) Source(name string) (Source, bool) {
	for _, namedSource := range manager.sources {
		if namedSource.Name == name {
			return namedSource.Source, true
		}
	}
	return nil, false
}

// Load loads every source in declaration order, stopping at the first
// failure.
func (manager *Settings) Load() error {
	for _, namedSource := range manager.sources {
		if loadError := namedSource.Source.Load(); loadError != nil {
			return loadError
		}
	}
	return nil
}

// Get returns the flattened setting for the key. Starting from the
// lowest-precedence source that knows the key, the setting is updated with
// the information of every higher-precedence source in turn, so properties
// absent from high-precedence sources are inherited from lower ones.
func (manager *Settings) Get(key string) (Setting, bool) {
	var flattened Setting
	found := false
	for sourceIndex := len(manager.sources) - 1; sourceIndex >= 0; sourceIndex-- {
		sourceSetting, present := manager.sources[sourceIndex].Source.Get(key)
		if !present {
			continue
		}
		if !found {
			flattened = sourceSetting
			found = true
			continue
		}
		flattened.Update(sourceSetting)
	}
	return flattened, found
}

// GetAll returns every setting known for the key, one per source that knows
// it, ordered from lowest to highest precedence.
func (manager *Settings) GetAll(key string) []Setting {
	var collected []Setting
	for sourceIndex := len(manager.sources) - 1; sourceIndex >= 0; sourceIndex-- {
		if sourceSetting, present := manager.sources[sourceIndex].Source.Get(key); present {
			collected = append(collected, sourceSetting)
		}
	}
	return collected
}

// Has reports whether any source knows the key.
func (manager *Settings) Has(key string) bool {
	for _, namedSource := range manager.sources {
		if namedSource.Source.Has(key) {
			return true
		}
	}
	return false
}

// Keys returns the sorted union of setting keys across all sources.
func (manager *Settings) Keys() []string {
	keySet := map[string]struct{}{}
	for _, namedSource := range manager.sources {
		for _, key := range namedSource.Source.Keys() {
			keySet[key] = struct{}{}
		}
	}
	keys := make([]string, 0, len(keySet))
	for key := range keySet {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
