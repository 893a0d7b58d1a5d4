package world

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoMatch   = errors.New("no matching item")
	ErrAmbiguous = errors.New("ambiguous item reference")
)

// AmbiguousError lists the items a token could refer to.
type AmbiguousError struct {
	Token   string
	Matches []*Item
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("%q could mean %s", e.Token, strings.Join(e.Names(), " or "))
}

func (e *AmbiguousError) Unwrap() error { return ErrAmbiguous }

// Names returns the display names of the matching items.
func (e *AmbiguousError) Names() []string {
	names := make([]string, len(e.Matches))
	for i, it := range e.Matches {
		names[i] = it.Name
	}
	return names
}

// Resolve maps a player's token to one of the candidate items. Matching is case
// insensitive: an exact id, name or alias wins first, then a unique prefix. It never
// guesses between several matches.
func Resolve(token string, candidates []*Item) (*Item, error) {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return nil, ErrNoMatch
	}

	if found := match(candidates, func(name string) bool { return name == token }); len(found) > 0 {
		return pick(token, found)
	}
	found := match(candidates, func(name string) bool { return strings.HasPrefix(name, token) })
	if len(found) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoMatch, token)
	}
	return pick(token, found)
}

func match(candidates []*Item, fn func(string) bool) []*Item {
	var found []*Item
	for _, it := range candidates {
		for _, name := range it.Names() {
			if fn(name) {
				found = append(found, it)
				break
			}
		}
	}
	return found
}

func pick(token string, found []*Item) (*Item, error) {
	if len(found) > 1 {
		return nil, &AmbiguousError{Token: token, Matches: found}
	}
	return found[0], nil
}
