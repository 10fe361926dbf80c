package core

// RuntimeConfig contains the platform settings a session is created with.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames requested per second by the host loop
	Seed     int64 // RNG seed, 0 means seed from the current time
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState is a read-only snapshot of a runner session for the platform layer.
type GameState struct {
	Score     int  // Displayed distance
	HighScore int  // Displayed high score
	Speed     float64
	Playing   bool
	GameOver  bool
	Paused    bool
	Inverted  bool // Night inversion is active
	Activated bool // The first jump has started the session
}
