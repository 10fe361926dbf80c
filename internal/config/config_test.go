package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(defaultRunnerYAML)
	if err != nil {
		t.Fatalf("Parse(embedded) error = %v", err)
	}
	def := DefaultRunnerConfig()

	if cfg.Game != def.Game {
		t.Errorf("game section = %+v, expected %+v", cfg.Game, def.Game)
	}
	if cfg.Slow != def.Slow {
		t.Errorf("slow section = %+v, expected %+v", cfg.Slow, def.Slow)
	}
	if cfg.Jump != def.Jump || cfg.SlowJump != def.SlowJump {
		t.Errorf("jump sections differ from builtin defaults")
	}
	if cfg.Meter != def.Meter {
		t.Errorf("meter section = %+v, expected %+v", cfg.Meter, def.Meter)
	}
	if len(cfg.Obstacles) != len(def.Obstacles) {
		t.Fatalf("len(obstacles) = %d, expected %d", len(cfg.Obstacles), len(def.Obstacles))
	}
	for i := range def.Obstacles {
		got, want := cfg.Obstacles[i], def.Obstacles[i]
		if got.Type != want.Type || got.FrameRate != want.FrameRate || len(got.CollisionBoxes) != len(want.CollisionBoxes) {
			t.Errorf("obstacles[%d] = %+v, expected %+v", i, got, want)
		}
	}
	if cfg.Trex.CollisionRunning[0] != def.Trex.CollisionRunning[0] {
		t.Errorf("trex running box 0 = %+v, expected %+v", cfg.Trex.CollisionRunning[0], def.Trex.CollisionRunning[0])
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("game:\n  speed: 7\n  max_speed: 14\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Game.Speed != 7 || cfg.Game.MaxSpeed != 14 {
		t.Errorf("speed = %v/%v, expected 7/14", cfg.Game.Speed, cfg.Game.MaxSpeed)
	}
	if cfg.Game.Acceleration != 0.001 {
		t.Errorf("Acceleration = %v, expected untouched default 0.001", cfg.Game.Acceleration)
	}
	if len(cfg.Obstacles) != 4 {
		t.Errorf("len(obstacles) = %d, expected defaults kept", len(cfg.Obstacles))
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "runner.yaml")
	if err := os.WriteFile(path, []byte("game:\n  clear_time: 1000\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Game.ClearTime != 1000 {
		t.Errorf("ClearTime = %v, expected 1000", cfg.Game.ClearTime)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom path should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RunnerConfig)
		wantErr string
	}{
		{"defaults", func(*RunnerConfig) {}, ""},
		{"zero duplication", func(c *RunnerConfig) { c.Game.MaxObstacleDuplication = 0 }, "max_obstacle_duplication"},
		{"no spawnable obstacle", func(c *RunnerConfig) {
			for i := range c.Obstacles {
				c.Obstacles[i].MinSpeed = 100
			}
		}, "at least one non-collectable"},
		{"only collectables", func(c *RunnerConfig) { c.Obstacles = c.Obstacles[3:] }, "at least one non-collectable"},
		{"duplicate type", func(c *RunnerConfig) { c.Obstacles[1].Type = c.Obstacles[0].Type }, "duplicate type"},
		{"positive jump velocity", func(c *RunnerConfig) { c.Jump.InitialJumpVelocity = 3 }, "initial_jump_velocity"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			tc.mutate(&cfg)
			err := Validate(cfg)
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected error containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := DefaultRunnerConfig()
	cfg.Game.Width = 0
	cfg.Game.MaxObstacleDuplication = 0

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Validate() = nil, expected errors")
	}
	msg := err.Error()
	if !strings.Contains(msg, "dimensions") || !strings.Contains(msg, "max_obstacle_duplication") {
		t.Errorf("Validate() = %q, expected both problems reported", msg)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultRunnerConfig())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) error = %v", err)
	}
	if cfg.Game != DefaultRunnerConfig().Game {
		t.Errorf("game section changed through marshal: %+v", cfg.Game)
	}
}
