package systems

import (
	"fmt"

	"github.com/automoto/hopper/tags"
	"github.com/yohamta/donburi"
)

// InvariantError reports a broken entity-count invariant, e.g. two Current platforms
type InvariantError struct {
	Role  string
	Count int
	Want  string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s: found %d, want %s", e.Role, e.Count, e.Want)
}

func collect(w donburi.World, tag *donburi.ComponentType[donburi.Tag]) []*donburi.Entry {
	var out []*donburi.Entry
	tag.Each(w, func(e *donburi.Entry) {
		out = append(out, e)
	})
	return out
}

// CurrentPlatform returns the single platform the player stands on
func CurrentPlatform(w donburi.World) (*donburi.Entry, error) {
	found := collect(w, tags.CurrentPlatform)
	if len(found) != 1 {
		return nil, &InvariantError{Role: "current platform", Count: len(found), Want: "exactly 1"}
	}
	return found[0], nil
}

// NextPlatform returns the jump target, or nil when none has been spawned yet
func NextPlatform(w donburi.World) (*donburi.Entry, error) {
	found := collect(w, tags.NextPlatform)
	switch len(found) {
	case 0:
		return nil, nil
	case 1:
		return found[0], nil
	}
	return nil, &InvariantError{Role: "next platform", Count: len(found), Want: "at most 1"}
}

// Player returns the player entity
func Player(w donburi.World) (*donburi.Entry, error) {
	found := collect(w, tags.Player)
	if len(found) != 1 {
		return nil, &InvariantError{Role: "player", Count: len(found), Want: "exactly 1"}
	}
	return found[0], nil
}

func MustCurrentPlatform(w donburi.World) *donburi.Entry {
	e, err := CurrentPlatform(w)
	if err != nil {
		panic(fmt.Errorf("registry: %w", err))
	}
	return e
}

func MustNextPlatform(w donburi.World) *donburi.Entry {
	e, err := NextPlatform(w)
	if err != nil {
		panic(fmt.Errorf("registry: %w", err))
	}
	return e
}

func MustPlayer(w donburi.World) *donburi.Entry {
	e, err := Player(w)
	if err != nil {
		panic(fmt.Errorf("registry: %w", err))
	}
	return e
}
