package models

import (
	"fmt"
	"strconv"
	"strings"
)

var DefaultRoster = Roster{"Keith", "Mike", "Colleen", "Toby"}

// Roster is the fixed, ordered set of players. Slot i is keyed "player{i+1}"
// in score payloads.
type Roster []string

func (r Roster) KeyFor(name string) (string, bool) {
	for i, n := range r {
		if strings.EqualFold(n, name) {
			return "player" + strconv.Itoa(i+1), true
		}
	}
	return "", false
}

func (r Roster) NameFor(key string) (string, bool) {
	idx, err := strconv.Atoi(strings.TrimPrefix(key, "player"))
	if err != nil || !strings.HasPrefix(key, "player") || idx < 1 || idx > len(r) {
		return "", false
	}
	return r[idx-1], true
}

// Canonical returns the roster spelling of name.
func (r Roster) Canonical(name string) (string, bool) {
	for _, n := range r {
		if strings.EqualFold(n, name) {
			return n, true
		}
	}
	return "", false
}

func (r Roster) Keys() []string {
	keys := make([]string, len(r))
	for i := range r {
		keys[i] = fmt.Sprintf("player%d", i+1)
	}
	return keys
}

func (r Roster) String() string {
	return strings.Join(r, "/")
}
