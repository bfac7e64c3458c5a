// Package registry keeps the game modes the platform can start.
// Modes register themselves in init() so commands and menus can list and
// create them by ID.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// ErrUnknownGame is returned by Create for an ID nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is the interface every game mode implements.
// Games hold pure simulation logic and never import Bubble Tea.
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns the mode identifier (e.g., "arkanoid", "arkanoid_endless").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a new session for the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a pre-cleared screen buffer.
	Render(dst *core.Screen)

	// State returns the current score, level and flags.
	State() core.GameState
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string
	Title string
	// Variant marks a mode that is offered from another mode's own menu
	// (endless under arkanoid) rather than as a top-level entry.
	Variant bool
	// Order sorts List results; ties fall back to the ID.
	Order int
}

// Factory creates a fresh game instance.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a mode. It panics on an empty or duplicate ID.
func Register(info GameInfo, f Factory) {
	if info.ID == "" || f == nil {
		panic("registry: Register needs an ID and a factory")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[info.ID]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", info.ID))
	}
	if info.Title == "" {
		info.Title = f().Title()
	}
	entries[info.ID] = entry{info: info, factory: f}
}

// List returns every registered mode sorted by Order, then ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Order != result[j].Order {
			return result[i].Order < result[j].Order
		}
		return result[i].ID < result[j].ID
	})
	return result
}

// Lookup returns the info of a registered mode.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}

// unregister removes a mode. Tests use it to clean up.
func unregister(id string) {
	mu.Lock()
	defer mu.Unlock()
	delete(entries, id)
}
