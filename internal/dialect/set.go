package dialect

import (
	"fmt"
	"strings"
)

// Set is the capability bitmask of active dialects for one parse invocation.
type Set uint8

// NewSet builds a set from the given dialects.
func NewSet(kinds ...Kind) Set {
	var s Set
	for _, k := range kinds {
		s = s.With(k)
	}
	return s
}

// ParseSet resolves a list of identifiers into a Set.
// Неизвестный идентификатор — ошибка конфигурации, не диагностика.
func ParseSet(names []string) (Set, error) {
	var s Set
	for _, name := range names {
		k, ok := Parse(name)
		if !ok {
			return 0, fmt.Errorf("unknown dialect %q", name)
		}
		s = s.With(k)
	}
	return s, nil
}

func (s Set) With(k Kind) Set {
	if k == Unknown || k >= kindCount {
		return s
	}
	return s | 1<<(k-1)
}

func (s Set) Has(k Kind) bool {
	if k == Unknown || k >= kindCount {
		return false
	}
	return s&(1<<(k-1)) != 0
}

// List returns the active dialects in declaration order.
func (s Set) List() []Kind {
	var out []Kind
	for _, k := range All() {
		if s.Has(k) {
			out = append(out, k)
		}
	}
	return out
}

func (s Set) String() string {
	kinds := s.List()
	if len(kinds) == 0 {
		return "none"
	}
	parts := make([]string, 0, len(kinds))
	for _, k := range kinds {
		parts = append(parts, k.String())
	}
	return strings.Join(parts, ",")
}
