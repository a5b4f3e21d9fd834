package breakout

import "github.com/chamale-rac/breakout/internal/core"

// PickupType represents different types of power-up pickups.
type PickupType int

const (
	PickupWiden     PickupType = iota // Widen paddle
	PickupShrink                      // Shrink paddle
	PickupSlowBall                    // Slow the ball down
	PickupFastBall                    // Speed the ball up
	PickupExtraLife                   // Extra life
	PickupCount                       // Sentinel for counting types
)

// Glyph returns the display character for a pickup type.
func (p PickupType) Glyph() rune {
	switch p {
	case PickupWiden:
		return 'W'
	case PickupShrink:
		return 'S'
	case PickupSlowBall:
		return '-'
	case PickupFastBall:
		return '+'
	case PickupExtraLife:
		return '♥'
	default:
		return '?'
	}
}

// String returns the name of the pickup type.
func (p PickupType) String() string {
	switch p {
	case PickupWiden:
		return "Widen"
	case PickupShrink:
		return "Shrink"
	case PickupSlowBall:
		return "Slow"
	case PickupFastBall:
		return "Fast"
	case PickupExtraLife:
		return "Life"
	default:
		return "?"
	}
}

// Pickup represents a falling power-up token dropped by a destroyed block.
type Pickup struct {
	Type   PickupType
	Bounds core.RectF
	VY     float64 // Fall speed in units per second (positive = down)
	Active bool
}

// EffectType represents active timed effects on the paddle or ball.
type EffectType int

const (
	EffectWiden    EffectType = iota // Paddle is widened
	EffectShrink                     // Paddle is shrunk
	EffectSlowBall                   // Ball speed decreased
	EffectFastBall                   // Ball speed increased
	EffectCount                      // Sentinel for counting types
)

// String returns the short name for effect display.
func (e EffectType) String() string {
	switch e {
	case EffectWiden:
		return "W"
	case EffectShrink:
		return "S"
	case EffectSlowBall:
		return "-"
	case EffectFastBall:
		return "+"
	default:
		return "?"
	}
}

// Effect represents an active timed effect. Until is measured in
// seconds of simulated play time since the last reset.
type Effect struct {
	Type  EffectType
	Until float64
}

// TimeRemaining returns how many seconds until the effect expires.
func (e *Effect) TimeRemaining(now float64) float64 {
	remaining := e.Until - now
	if remaining < 0 {
		return 0
	}
	return remaining
}

// PowerUpConfig holds tuning for power-up spawning and effects.
type PowerUpConfig struct {
	// Spawn settings
	SpawnChance int // Percentage chance to spawn on block destroy (0-100)

	// Spawn weights (relative, higher = more common)
	WeightWiden     int
	WeightShrink    int
	WeightSlowBall  int
	WeightFastBall  int
	WeightExtraLife int

	// Effect durations in seconds
	DurationWiden    float64
	DurationShrink   float64
	DurationSlowBall float64
	DurationFastBall float64

	// Pickup physics
	FallSpeed  float64 // Field units per second
	PickupSize float64 // Pickup square edge in field units

	// Paddle width effects
	WidenFactor    float64
	ShrinkFactor   float64
	MinPaddleWidth float64
	MaxPaddleWidth float64

	// Ball speed effects (vertical component only, so the horizontal
	// rebound range stays as configured)
	FastFactor float64
	SlowFactor float64
	MinSpeedY  float64
	MaxSpeedY  float64
}

// DefaultPowerUpConfig returns default power-up tuning.
func DefaultPowerUpConfig() PowerUpConfig {
	return PowerUpConfig{
		SpawnChance: 15,

		// Weights (positive pickups more common)
		WeightWiden:     25,
		WeightShrink:    15,
		WeightSlowBall:  20,
		WeightFastBall:  15,
		WeightExtraLife: 5, // Rare

		DurationWiden:    12,
		DurationShrink:   12,
		DurationSlowBall: 8,
		DurationFastBall: 8,

		FallSpeed:  120,
		PickupSize: 16,

		WidenFactor:    1.5,
		ShrinkFactor:   0.6,
		MinPaddleWidth: 50,
		MaxPaddleWidth: 200,

		FastFactor: 1.3,
		SlowFactor: 0.75,
		MinSpeedY:  150,
		MaxSpeedY:  450,
	}
}

// PowerUpManager handles pickup spawning, falling, collection, and effects.
type PowerUpManager struct {
	Config  PowerUpConfig
	Pickups []*Pickup
	Effects []*Effect
	RNG     *SimpleRNG
}

// NewPowerUpManager creates a new power-up manager with the given seed.
func NewPowerUpManager(seed int64, cfg PowerUpConfig) *PowerUpManager {
	return &PowerUpManager{
		Config:  cfg,
		Pickups: make([]*Pickup, 0),
		Effects: make([]*Effect, 0),
		RNG:     NewSimpleRNG(seed),
	}
}

// Reseed restarts the RNG stream. Called on a full game reset so the
// same seed replays the same pickup roll sequence.
func (pm *PowerUpManager) Reseed(seed int64) {
	pm.RNG = NewSimpleRNG(seed)
}

// Clear drops all pickups and effects, keeping the RNG stream.
// Called when a life is lost: nothing survives the ball.
func (pm *PowerUpManager) Clear() {
	pm.Pickups = pm.Pickups[:0]
	pm.Effects = pm.Effects[:0]
}

// TrySpawnPickup rolls the spawn chance for a destroyed block at the
// given center position. Returns true if a pickup was spawned.
func (pm *PowerUpManager) TrySpawnPickup(centerX, centerY float64) bool {
	roll := pm.RNG.Intn(100)
	if roll >= pm.Config.SpawnChance {
		return false
	}

	pickupType := pm.rollPickupType()
	size := pm.Config.PickupSize

	pickup := &Pickup{
		Type:   pickupType,
		Bounds: core.NewRectF(centerX-size/2, centerY-size/2, size, size),
		VY:     pm.Config.FallSpeed,
		Active: true,
	}

	pm.Pickups = append(pm.Pickups, pickup)
	return true
}

// rollPickupType selects a random pickup type based on weights.
func (pm *PowerUpManager) rollPickupType() PickupType {
	weights := []struct {
		Type   PickupType
		Weight int
	}{
		{PickupWiden, pm.Config.WeightWiden},
		{PickupShrink, pm.Config.WeightShrink},
		{PickupSlowBall, pm.Config.WeightSlowBall},
		{PickupFastBall, pm.Config.WeightFastBall},
		{PickupExtraLife, pm.Config.WeightExtraLife},
	}

	totalWeight := 0
	for _, w := range weights {
		totalWeight += w.Weight
	}
	if totalWeight <= 0 {
		return PickupWiden
	}

	roll := pm.RNG.Intn(totalWeight)
	cumulative := 0
	for _, w := range weights {
		cumulative += w.Weight
		if roll < cumulative {
			return w.Type
		}
	}

	return PickupWiden
}

// Update advances all falling pickups by dt seconds and drops the ones
// that left the bottom of the field.
func (pm *PowerUpManager) Update(dt, fieldH float64) {
	active := pm.Pickups[:0]
	for _, p := range pm.Pickups {
		if !p.Active {
			continue
		}
		p.Bounds.Y += p.VY * dt
		if p.Bounds.Top() < fieldH {
			active = append(active, p)
		}
	}
	pm.Pickups = active
}

// Catch returns the type of the first pickup overlapping the paddle,
// removing it from play. Returns -1 if nothing was caught.
func (pm *PowerUpManager) Catch(paddle *Paddle) PickupType {
	for _, p := range pm.Pickups {
		if !p.Active {
			continue
		}
		if core.Overlaps(p.Bounds, paddle.Bounds) {
			p.Active = false
			return p.Type
		}
	}
	return PickupType(-1)
}

// AddEffect adds an effect expiring at now+duration, or extends it if
// the effect is already active.
func (pm *PowerUpManager) AddEffect(effectType EffectType, now, duration float64) {
	for _, e := range pm.Effects {
		if e.Type == effectType {
			e.Until = now + duration
			return
		}
	}

	pm.Effects = append(pm.Effects, &Effect{
		Type:  effectType,
		Until: now + duration,
	})
}

// RemoveEffect removes an effect by type.
func (pm *PowerUpManager) RemoveEffect(effectType EffectType) {
	for i, e := range pm.Effects {
		if e.Type == effectType {
			pm.Effects = append(pm.Effects[:i], pm.Effects[i+1:]...)
			return
		}
	}
}

// Expire removes effects that have run out and returns their types so
// the game can revert them.
func (pm *PowerUpManager) Expire(now float64) []EffectType {
	expired := make([]EffectType, 0)
	active := pm.Effects[:0]

	for _, e := range pm.Effects {
		if e.Until <= now {
			expired = append(expired, e.Type)
		} else {
			active = append(active, e)
		}
	}

	pm.Effects = active
	return expired
}

// HasEffect returns true if the given effect is active.
func (pm *PowerUpManager) HasEffect(effectType EffectType) bool {
	for _, e := range pm.Effects {
		if e.Type == effectType {
			return true
		}
	}
	return false
}

// SimpleRNG is a deterministic pseudo-random number generator.
// Uses a simple LCG (Linear Congruential Generator) so identical seeds
// replay identical sessions.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a random int in [0, n).
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n)) //#nosec G115 -- n is always positive
}
