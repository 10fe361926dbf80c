// Package registry provides a global registry of visual themes.
// Themes register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/sprite"
)

// Theme bundles everything that changes together when the look of the game
// changes: the sprite table, the glyph art, the actor frame table and
// optionally the obstacle table. A session swaps a whole Theme at once.
type Theme struct {
	ID    string
	Title string

	Sprites    sprite.Table
	Art        map[sprite.Name]sprite.Art
	TrexFrames map[string]sprite.Animation

	// Obstacles replaces the configured obstacle table when non-nil.
	Obstacles []config.ObstacleType

	// Ground and Sky are the fallback colors of the scene.
	Ground core.Color
	Sky    core.Color
}

// ObstacleTable returns the obstacle table the theme plays with. A theme's
// own table replaces the configured one and is tuned for cfg's variant.
func (t Theme) ObstacleTable(cfg config.RunnerConfig) []config.ObstacleType {
	if t.Obstacles != nil {
		return config.ObstacleTypesFor(t.Obstacles, cfg.Variant)
	}
	return cfg.Obstacles
}

// Animation returns the actor frames for a status name, falling back to the
// standard table.
func (t Theme) Animation(status string) sprite.Animation {
	if a, ok := t.TrexFrames[status]; ok && len(a.Frames) > 0 {
		return a
	}
	return sprite.DefaultTrexAnimations()[status]
}

// ThemeInfo contains metadata about a registered theme.
type ThemeInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a theme.
type Factory func() Theme

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// DefaultTheme is the theme used when none is requested.
const DefaultTheme = "classic"

// Register adds a theme factory to the registry.
// Panics if a theme with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: theme %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title
}

// List returns information about all registered themes, sorted by ID.
func List() []ThemeInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ThemeInfo, 0, len(factories))
	for id := range factories {
		result = append(result, ThemeInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a theme by its ID.
// Returns an error if the theme ID is not registered.
func Create(id string) (Theme, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return Theme{}, fmt.Errorf("registry: unknown theme %q", id)
	}

	return f(), nil
}

// Exists checks if a theme with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
