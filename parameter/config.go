package parameter

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config is the immutable game configuration
// Built once at startup and passed by value to every constructor
type Config struct {
	ArenaWidth  int `toml:"arena_width"`
	ArenaHeight int `toml:"arena_height"`

	PaddleWidth  int `toml:"paddle_width"`
	PaddleHeight int `toml:"paddle_height"`
	// PlayerInset is the distance from the bottom edge to the player paddle top
	PlayerInset int `toml:"player_inset"`
	AIPaddleX   int `toml:"ai_paddle_x"`
	AIPaddleY   int `toml:"ai_paddle_y"`

	BallSize   int `toml:"ball_size"`
	BallSpeedX int `toml:"ball_speed_x"`
	BallSpeedY int `toml:"ball_speed_y"`

	PlayerSpeed int `toml:"player_speed"`
	AISpeed     int `toml:"ai_speed"`
	// SpinDivisor scales off-center paddle hits into horizontal ball speed
	SpinDivisor int `toml:"spin_divisor"`

	// Color is the entity fill color, "white" or a #rrggbb hex string
	Color string `toml:"color"`
}

// Default returns the stock 800x600 configuration
func Default() Config {
	return Config{
		ArenaWidth:   800,
		ArenaHeight:  600,
		PaddleWidth:  80,
		PaddleHeight: 5,
		PlayerInset:  20,
		AIPaddleX:    20,
		AIPaddleY:    10,
		BallSize:     20,
		BallSpeedX:   0,
		BallSpeedY:   5,
		PlayerSpeed:  10,
		AISpeed:      2,
		SpinDivisor:  5,
		Color:        "white",
	}
}

// Load reads a TOML file on top of Default and validates the result
// Keys missing from the file keep their default values
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: unknown key %q in %s", ErrInvalidConfig, undecoded[0].String(), path)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the simulation cannot run with
func (c Config) Validate() error {
	positive := []struct {
		name string
		v    int
	}{
		{"arena_width", c.ArenaWidth},
		{"arena_height", c.ArenaHeight},
		{"paddle_width", c.PaddleWidth},
		{"paddle_height", c.PaddleHeight},
		{"ball_size", c.BallSize},
		{"player_speed", c.PlayerSpeed},
		{"ai_speed", c.AISpeed},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, p.name, p.v)
		}
	}

	switch {
	case c.SpinDivisor == 0:
		return fmt.Errorf("%w: spin_divisor must be non-zero", ErrInvalidConfig)
	case c.BallSpeedY == 0:
		return fmt.Errorf("%w: ball_speed_y must be non-zero", ErrInvalidConfig)
	case c.PaddleWidth > c.ArenaWidth:
		return fmt.Errorf("%w: paddle_width %d exceeds arena_width %d", ErrInvalidConfig, c.PaddleWidth, c.ArenaWidth)
	case c.BallSize > c.ArenaWidth || c.BallSize > c.ArenaHeight:
		return fmt.Errorf("%w: ball_size %d does not fit the arena", ErrInvalidConfig, c.BallSize)
	case c.PlayerInset < c.PaddleHeight || c.PlayerInset > c.ArenaHeight:
		return fmt.Errorf("%w: player_inset %d must lie in [paddle_height, arena_height]", ErrInvalidConfig, c.PlayerInset)
	}
	return nil
}
