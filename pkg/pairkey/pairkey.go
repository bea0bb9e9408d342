package pairkey

import (
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Pair is an ordered (source, target) pair of entity type names. The
// members are not cross-checked against any entity type registry.
type Pair struct {
	Source string
	Target string
}

// String re-encodes the pair in the surface syntax accepted by Decode.
func (p Pair) String() string {
	return fmt.Sprintf("('%s', '%s')", p.Source, p.Target)
}

// Decode parses a key of the form "('Source', 'Target')". The key must
// begin with "('" and end with "')"; the content between is split on
// the literal "'," and each part is trimmed of surrounding whitespace
// and stray quote characters.
//
// Known limitation, kept deliberately: a name containing "'," cannot be
// decoded, and no escaping is supported.
func Decode(key string) (Pair, error) {
	if !strings.HasPrefix(key, "('") || !strings.HasSuffix(key, "')") {
		return Pair{}, &KeyFormatError{Key: key}
	}
	// The affixes can overlap on keys shorter than 4 bytes, e.g. "(')";
	// such keys have no content between them.
	var content string
	if len(key) >= 4 {
		content = key[2 : len(key)-2]
	}
	parts := strings.Split(content, "',")
	if len(parts) != 2 {
		return Pair{}, &KeyArityError{Key: key}
	}
	return Pair{
		Source: trimPart(parts[0]),
		Target: trimPart(parts[1]),
	}, nil
}

func trimPart(s string) string {
	return strings.Trim(strings.TrimSpace(s), `'"`)
}

// MappingHook observes each successfully built mapping entry. Used by
// callers to emit log events; the builder itself has no side effects.
type MappingHook func(pair Pair, edgeTypes []string)

// Option configures BuildMapping.
type Option func(*config)

type config struct {
	hook MappingHook
}

// WithMappingHook registers fn to be called once per mapping entry, in
// insertion order.
func WithMappingHook(fn MappingHook) Option {
	return func(c *config) { c.hook = fn }
}

// BuildMapping decodes each key and builds the pair-to-edge-types
// table. Entries are processed in insertion order; distinct key
// spellings that decode to the same pair silently overwrite earlier
// entries (last write wins). Edge type lists are kept as given: empty
// lists are valid and duplicates are not removed. Any undecodable key
// aborts the whole build.
func BuildMapping(entries *orderedmap.OrderedMap[string, []string], opts ...Option) (map[Pair][]string, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	out := make(map[Pair][]string, entries.Len())
	for entry := entries.Oldest(); entry != nil; entry = entry.Next() {
		pair, err := Decode(entry.Key)
		if err != nil {
			return nil, err
		}
		out[pair] = entry.Value
		if cfg.hook != nil {
			cfg.hook(pair, entry.Value)
		}
	}
	return out, nil
}
