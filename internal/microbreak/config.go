package microbreak

import "time"

// Default thresholds for break scheduling.
const (
	// DefaultMinSessionDuration is the shortest focus stretch before
	// any break is recommended.
	DefaultMinSessionDuration = 10 * time.Minute

	// DefaultMaxSessionDuration is the stretch after which a break is
	// strongly recommended regardless of fatigue.
	DefaultMaxSessionDuration = 15 * time.Minute

	// DefaultBreakDuration is the base break length before fatigue
	// scaling.
	DefaultBreakDuration = 60 * time.Second

	// MaxBreakDuration caps the fatigue-scaled break length.
	MaxBreakDuration = 120 * time.Second

	// FatigueDurationScale stretches the break by up to 30% at full
	// fatigue.
	FatigueDurationScale = 0.3

	// HighLoadThreshold is the cognitive load (exclusive) above which
	// calming break types are preferred.
	HighLoadThreshold = 0.7

	// LongSessionThreshold is the session length (exclusive) above
	// which a movement break is preferred.
	LongSessionThreshold = 20 * time.Minute

	// Re-evaluation poll intervals returned to the caller.
	IdleCheckInterval   = 60 * time.Second
	ActiveCheckInterval = 30 * time.Second
)

// Fatigue thresholds for the urgency ladder.
const (
	StrongFatigueThreshold    = 0.7
	ModerateFatigueThreshold  = 0.5
	SuggestedFatigueThreshold = 0.3
)

// Config controls break scheduling behavior. The zero value is not
// useful; start from DefaultConfig.
type Config struct {
	// MinSessionDuration gates all break recommendations.
	MinSessionDuration time.Duration `yaml:"min_session_duration"`

	// MaxSessionDuration forces a strong recommendation once exceeded.
	MaxSessionDuration time.Duration `yaml:"max_session_duration"`

	// BreakDuration is the base break length before fatigue scaling.
	BreakDuration time.Duration `yaml:"break_duration"`

	// AdaptToPerformance is accepted for forward compatibility; no
	// branch consumes it yet.
	AdaptToPerformance bool `yaml:"adapt_to_performance"`

	// AdaptToCognitiveLoad gates the high-load break-type rule.
	AdaptToCognitiveLoad bool `yaml:"adapt_to_cognitive_load"`

	// Per-type enablement. Disabling every type falls back to a
	// breathing break rather than erroring.
	EnableBreathing   bool `yaml:"enable_breathing"`
	EnableMovement    bool `yaml:"enable_movement"`
	EnableMindfulness bool `yaml:"enable_mindfulness"`
	EnableGazeShift   bool `yaml:"enable_gaze_shift"`
}

// DefaultConfig returns the documented defaults with every break type
// enabled.
func DefaultConfig() Config {
	return Config{
		MinSessionDuration:   DefaultMinSessionDuration,
		MaxSessionDuration:   DefaultMaxSessionDuration,
		BreakDuration:        DefaultBreakDuration,
		AdaptToPerformance:   true,
		AdaptToCognitiveLoad: true,
		EnableBreathing:      true,
		EnableMovement:       true,
		EnableMindfulness:    true,
		EnableGazeShift:      true,
	}
}

// enabledTypes returns the enabled break types in rotation order.
func (c Config) enabledTypes() []BreakType {
	var types []BreakType
	if c.EnableBreathing {
		types = append(types, BreakBreathing)
	}
	if c.EnableMovement {
		types = append(types, BreakMovement)
	}
	if c.EnableMindfulness {
		types = append(types, BreakMindfulness)
	}
	if c.EnableGazeShift {
		types = append(types, BreakGazeShift)
	}
	return types
}

func (c Config) typeEnabled(t BreakType) bool {
	switch t {
	case BreakBreathing:
		return c.EnableBreathing
	case BreakMovement:
		return c.EnableMovement
	case BreakMindfulness:
		return c.EnableMindfulness
	case BreakGazeShift:
		return c.EnableGazeShift
	default:
		return false
	}
}
