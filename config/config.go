package config

import "time"

// MovementConfig contains intent-driven movement values
type MovementConfig struct {
	PlayerSpeed float64 `yaml:"player_speed"`
	EnemySpeed  float64 `yaml:"enemy_speed"`

	// Intents at or below this squared length leave the recorded facing unchanged
	DirectionThreshold float64 `yaml:"direction_threshold"`
}

// DashConfig contains dash ability values
type DashConfig struct {
	Speed           float64       `yaml:"speed"`
	Duration        time.Duration `yaml:"duration"`
	LandingDuration time.Duration `yaml:"landing_duration"`
	Cooldown        time.Duration `yaml:"cooldown"`
	TurnRate        float64       `yaml:"turn_rate"`  // Radians per tick
	SnapSpeed       float64       `yaml:"snap_speed"` // Below this speed the dash velocity snaps instead of turning
}

// CombatConfig contains health, attack and contact damage values
type CombatConfig struct {
	PlayerHealth float64 `yaml:"player_health"`
	EnemyHealth  float64 `yaml:"enemy_health"`

	// Melee damage zone
	AttackDamage   float64       `yaml:"attack_damage"`
	AttackLifetime time.Duration `yaml:"attack_lifetime"`
	AttackRadius   float64       `yaml:"attack_radius"`
	AttackReach    float64       `yaml:"attack_reach"`
	SwingFrames    int           `yaml:"swing_frames"`

	// Enemy touch damage
	ContactDamagePerSecond float64 `yaml:"contact_damage_per_second"`

	// Squared distance at which followers stop
	FollowUntilDistance float64 `yaml:"follow_until_distance"`
}

// BodyConfig contains collider dimensions
type BodyConfig struct {
	PlayerRadius  float64
	EnemyRadius   float64
	HurtboxRadius float64
}

// ArenaConfig contains world and tick values
type ArenaConfig struct {
	Width         int
	Height        int
	CellSize      int
	WallThickness float64
	TickRate      int

	// Apart pairs closer than this are still reported as contacts
	SpeculativeMargin float64
}

// Collision layers. A body's Layers.Member holds the layers it is on and
// Layers.Filter the layers it collides with.
const (
	LayerPlayerMovement uint32 = 1 << iota
	LayerPlayerHitbox
	LayerEnemies
	LayerLevelBounds
)

// Global configuration instances
var Movement MovementConfig
var Dash DashConfig
var Combat CombatConfig
var Body BodyConfig
var Arena ArenaConfig

func init() {
	Reset()
}

// Reset restores every configuration instance to its built-in defaults.
func Reset() {
	Movement = MovementConfig{
		PlayerSpeed:        200.0,
		EnemySpeed:         100.0,
		DirectionThreshold: 0.05,
	}

	Dash = DashConfig{
		Speed:           600.0,
		Duration:        200 * time.Millisecond,
		LandingDuration: 100 * time.Millisecond,
		Cooldown:        2 * time.Second,
		TurnRate:        0.25,
		SnapSpeed:       1.0,
	}

	Combat = CombatConfig{
		PlayerHealth:           200.0,
		EnemyHealth:            30.0,
		AttackDamage:           10.0,
		AttackLifetime:         180 * time.Millisecond,
		AttackRadius:           32.0,
		AttackReach:            32.0,
		SwingFrames:            6,
		ContactDamagePerSecond: 60.0,
		FollowUntilDistance:    5.0,
	}

	Body = BodyConfig{
		PlayerRadius:  10.0,
		EnemyRadius:   10.0,
		HurtboxRadius: 10.0,
	}

	Arena = ArenaConfig{
		Width:             2000,
		Height:            800,
		CellSize:          32,
		WallThickness:     50.0,
		TickRate:          60,
		SpeculativeMargin: 4.0,
	}
}

// TickInterval returns the fixed step length for Arena.TickRate.
func TickInterval() time.Duration {
	return time.Second / time.Duration(Arena.TickRate)
}
