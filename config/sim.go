package config

import (
	"strings"

	"github.com/go-ini/ini"
	"github.com/pkg/errors"
)

const (
	_DEFAULT_CONFIG_FILE = "ski.ini"
	_DEFAULT_LOG_LEVEL   = "info"
)

// LoopConfig defines the simulation cadence
type LoopConfig struct {
	CycleMillis int // simulated milliseconds per cycle
}

// SkierConfig defines the player state machine tuning
type SkierConfig struct {
	StandardSpeed       float64
	JumpSpeedBonus      float64
	BoostFactor         float64
	BoostMillis         int
	BoostCooldownMillis int
	CrashMillis         int
	JumpMillis          int
	TrickStepMillis     int
	TurnEaseCycles      int
}

// MonsterConfig defines the pursuer state machine tuning
type MonsterConfig struct {
	StandardSpeed     float64
	EatingStageMillis int
	EatingStages      int
}

// SnowboarderConfig defines the drifting entity tuning
type SnowboarderConfig struct {
	StandardSpeed       float64
	RetargetChance      int // one in RetargetChance cycles picks a new x
	SpeedJitter         int
	BelowViewportOffset float64
}

// SpawnConfig defines how often the slope fills up. Each chance is one in N
// cycles while the skier is moving.
type SpawnConfig struct {
	ObstacleOneIn    int
	JumpOneIn        int
	SnowboarderOneIn int
	MonsterDistance  float64 // distance travelled before a monster gives chase
	CullMargin       float64 // how far above the screen scenery is dropped
	Lives            int
}

// LogConfig defines logging
type LogConfig struct {
	Level  string
	Source string
}

// SimConfig is the whole simulation config
type SimConfig struct {
	Loop        LoopConfig
	Skier       SkierConfig
	Monster     MonsterConfig
	Snowboarder SnowboarderConfig
	Spawn       SpawnConfig
	Log         LogConfig
}

// Default returns the tuning the game ships with
func Default() *SimConfig {
	return &SimConfig{
		Loop: LoopConfig{CycleMillis: 20},
		Skier: SkierConfig{
			StandardSpeed:       5,
			JumpSpeedBonus:      2,
			BoostFactor:         2,
			BoostMillis:         2000,
			BoostCooldownMillis: 10000,
			CrashMillis:         1500,
			JumpMillis:          1000,
			TrickStepMillis:     300,
			TurnEaseCycles:      70,
		},
		Monster: MonsterConfig{
			StandardSpeed:     6,
			EatingStageMillis: 300,
			EatingStages:      5,
		},
		Snowboarder: SnowboarderConfig{
			StandardSpeed:       3,
			RetargetChance:      11,
			SpeedJitter:         1,
			BelowViewportOffset: 600,
		},
		Spawn: SpawnConfig{
			ObstacleOneIn:    8,
			JumpOneIn:        60,
			SnowboarderOneIn: 400,
			MonsterDistance:  10000,
			CullMargin:       200,
			Lives:            3,
		},
		Log: LogConfig{Level: _DEFAULT_LOG_LEVEL, Source: "ski"},
	}
}

// DefaultConfigFile is the config file looked up when none is given
func DefaultConfigFile() string {
	return _DEFAULT_CONFIG_FILE
}

// Load reads an ini file (path or raw bytes) on top of the defaults
func Load(source interface{}) (*SimConfig, error) {
	iniFile, err := ini.Load(source)
	if err != nil {
		return nil, errors.Wrap(err, "load sim config")
	}

	cfg := Default()
	for _, sec := range iniFile.Sections() {
		if sec.Name() == ini.DefaultSection {
			if len(sec.Keys()) > 0 {
				return nil, errors.Errorf("keys outside of a section: %v", sec.KeyStrings())
			}
			continue
		}

		switch strings.ToLower(sec.Name()) {
		case "loop":
			err = readLoopConfig(sec, &cfg.Loop)
		case "skier":
			err = readSkierConfig(sec, &cfg.Skier)
		case "monster":
			err = readMonsterConfig(sec, &cfg.Monster)
		case "snowboarder":
			err = readSnowboarderConfig(sec, &cfg.Snowboarder)
		case "spawn":
			err = readSpawnConfig(sec, &cfg.Spawn)
		case "log":
			err = readLogConfig(sec, &cfg.Log)
		default:
			err = errors.Errorf("unknown section: %s", sec.Name())
		}
		if err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the state machines cannot run with
func (cfg *SimConfig) Validate() error {
	if cfg.Loop.CycleMillis <= 0 {
		return errors.Errorf("loop.cycle_millis must be positive, got %d", cfg.Loop.CycleMillis)
	}
	if cfg.Skier.TurnEaseCycles <= 0 {
		return errors.Errorf("skier.turn_ease_cycles must be positive, got %d", cfg.Skier.TurnEaseCycles)
	}
	if cfg.Skier.StandardSpeed <= 0 {
		return errors.Errorf("skier.standard_speed must be positive, got %v", cfg.Skier.StandardSpeed)
	}
	if cfg.Monster.EatingStages <= 0 {
		return errors.Errorf("monster.eating_stages must be positive, got %d", cfg.Monster.EatingStages)
	}
	if cfg.Spawn.ObstacleOneIn <= 0 || cfg.Spawn.JumpOneIn <= 0 || cfg.Spawn.SnowboarderOneIn <= 0 {
		return errors.Errorf("spawn chances must be positive, got %+v", cfg.Spawn)
	}
	if cfg.Snowboarder.SpeedJitter < 0 {
		return errors.Errorf("snowboarder.speed_jitter must not be negative, got %d", cfg.Snowboarder.SpeedJitter)
	}
	if cfg.Snowboarder.RetargetChance <= 0 {
		return errors.Errorf("snowboarder.retarget_chance must be positive, got %d", cfg.Snowboarder.RetargetChance)
	}
	return nil
}

// MillisToCycles converts simulated milliseconds to whole cycles, rounding up
func (cfg *SimConfig) MillisToCycles(ms int) int {
	return (ms + cfg.Loop.CycleMillis - 1) / cfg.Loop.CycleMillis
}

func readLoopConfig(sec *ini.Section, lc *LoopConfig) (err error) {
	for _, key := range sec.Keys() {
		name := strings.ToLower(key.Name())
		switch name {
		case "cycle_millis":
			lc.CycleMillis, err = key.Int()
		default:
			err = errors.Errorf("section %s has unknown key: %s", sec.Name(), key.Name())
		}
		if err != nil {
			return errors.Wrapf(err, "[%s] %s", sec.Name(), key.Name())
		}
	}
	return nil
}

func readSkierConfig(sec *ini.Section, sc *SkierConfig) (err error) {
	for _, key := range sec.Keys() {
		name := strings.ToLower(key.Name())
		switch name {
		case "standard_speed":
			sc.StandardSpeed, err = key.Float64()
		case "jump_speed_bonus":
			sc.JumpSpeedBonus, err = key.Float64()
		case "boost_factor":
			sc.BoostFactor, err = key.Float64()
		case "boost_millis":
			sc.BoostMillis, err = key.Int()
		case "boost_cooldown_millis":
			sc.BoostCooldownMillis, err = key.Int()
		case "crash_millis":
			sc.CrashMillis, err = key.Int()
		case "jump_millis":
			sc.JumpMillis, err = key.Int()
		case "trick_step_millis":
			sc.TrickStepMillis, err = key.Int()
		case "turn_ease_cycles":
			sc.TurnEaseCycles, err = key.Int()
		default:
			err = errors.Errorf("section %s has unknown key: %s", sec.Name(), key.Name())
		}
		if err != nil {
			return errors.Wrapf(err, "[%s] %s", sec.Name(), key.Name())
		}
	}
	return nil
}

func readMonsterConfig(sec *ini.Section, mc *MonsterConfig) (err error) {
	for _, key := range sec.Keys() {
		name := strings.ToLower(key.Name())
		switch name {
		case "standard_speed":
			mc.StandardSpeed, err = key.Float64()
		case "eating_stage_millis":
			mc.EatingStageMillis, err = key.Int()
		case "eating_stages":
			mc.EatingStages, err = key.Int()
		default:
			err = errors.Errorf("section %s has unknown key: %s", sec.Name(), key.Name())
		}
		if err != nil {
			return errors.Wrapf(err, "[%s] %s", sec.Name(), key.Name())
		}
	}
	return nil
}

func readSnowboarderConfig(sec *ini.Section, sc *SnowboarderConfig) (err error) {
	for _, key := range sec.Keys() {
		name := strings.ToLower(key.Name())
		switch name {
		case "standard_speed":
			sc.StandardSpeed, err = key.Float64()
		case "retarget_chance":
			sc.RetargetChance, err = key.Int()
		case "speed_jitter":
			sc.SpeedJitter, err = key.Int()
		case "below_viewport_offset":
			sc.BelowViewportOffset, err = key.Float64()
		default:
			err = errors.Errorf("section %s has unknown key: %s", sec.Name(), key.Name())
		}
		if err != nil {
			return errors.Wrapf(err, "[%s] %s", sec.Name(), key.Name())
		}
	}
	return nil
}

func readSpawnConfig(sec *ini.Section, sc *SpawnConfig) (err error) {
	for _, key := range sec.Keys() {
		name := strings.ToLower(key.Name())
		switch name {
		case "obstacle_one_in":
			sc.ObstacleOneIn, err = key.Int()
		case "jump_one_in":
			sc.JumpOneIn, err = key.Int()
		case "snowboarder_one_in":
			sc.SnowboarderOneIn, err = key.Int()
		case "monster_distance":
			sc.MonsterDistance, err = key.Float64()
		case "cull_margin":
			sc.CullMargin, err = key.Float64()
		case "lives":
			sc.Lives, err = key.Int()
		default:
			err = errors.Errorf("section %s has unknown key: %s", sec.Name(), key.Name())
		}
		if err != nil {
			return errors.Wrapf(err, "[%s] %s", sec.Name(), key.Name())
		}
	}
	return nil
}

func readLogConfig(sec *ini.Section, lc *LogConfig) error {
	for _, key := range sec.Keys() {
		name := strings.ToLower(key.Name())
		switch name {
		case "level":
			lc.Level = key.MustString(_DEFAULT_LOG_LEVEL)
		case "source":
			lc.Source = key.String()
		default:
			return errors.Errorf("section %s has unknown key: %s", sec.Name(), key.Name())
		}
	}
	return nil
}
