package breakout

import "math"

// Snapshot is a primitive-field copy of the complete simulation state.
// Two games that produce equal snapshot hashes after the same input
// script are in identical states. In-memory only, never persisted.
type Snapshot struct {
	Frame   uint64
	Phase   int
	Score   int
	Lives   int
	Elapsed float64
	SpeedY  float64

	PaddleX  float64
	PaddleY  float64
	PaddleW  float64
	PaddleH  float64
	PaddleVX float64

	BallX      float64
	BallY      float64
	BallW      float64
	BallH      float64
	BallVX     float64
	BallVY     float64
	BallActive bool
	BallReady  bool

	// Active flag per block slot, row-major.
	Blocks []bool

	// Type, X, Y, VY per live pickup, flattened.
	Pickups []float64

	// Type, Until per active effect, flattened.
	Effects []float64

	RNGState uint64
}

// Snapshot captures the current simulation state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Frame:   g.frames,
		Phase:   int(g.phase),
		Score:   g.score,
		Lives:   g.lives,
		Elapsed: g.elapsed,
		SpeedY:  g.speedY,

		PaddleX:  g.paddle.Bounds.X,
		PaddleY:  g.paddle.Bounds.Y,
		PaddleW:  g.paddle.Bounds.W,
		PaddleH:  g.paddle.Bounds.H,
		PaddleVX: g.paddle.Velocity.X,

		BallX:      g.ball.Bounds.X,
		BallY:      g.ball.Bounds.Y,
		BallW:      g.ball.Bounds.W,
		BallH:      g.ball.Bounds.H,
		BallVX:     g.ball.Velocity.X,
		BallVY:     g.ball.Velocity.Y,
		BallActive: g.ball.Active,
		BallReady:  g.ball.Ready,

		RNGState: g.powerups.RNG.state,
	}

	s.Blocks = make([]bool, g.arena.Len())
	for i := 0; i < g.arena.Len(); i++ {
		s.Blocks[i] = g.arena.At(i).Active
	}

	for _, p := range g.powerups.Pickups {
		if !p.Active {
			continue
		}
		s.Pickups = append(s.Pickups, float64(p.Type), p.Bounds.X, p.Bounds.Y, p.VY)
	}

	for _, e := range g.powerups.Effects {
		s.Effects = append(s.Effects, float64(e.Type), e.Until)
	}

	return s
}

// Hash folds every snapshot field into a single uint64. Floats hash by
// their bit patterns, so two states hash equal only when they are
// bit-for-bit identical.
func (s *Snapshot) Hash() uint64 {
	h := s.Frame
	h = h*31 + uint64(s.Phase) //#nosec G115 -- phase values are small non-negative ints
	h = h*31 + uint64(s.Score) //#nosec G115 -- score is non-negative
	h = h*31 + uint64(s.Lives) //#nosec G115 -- lives is non-negative
	h = h*31 + math.Float64bits(s.Elapsed)
	h = h*31 + math.Float64bits(s.SpeedY)

	for _, f := range []float64{
		s.PaddleX, s.PaddleY, s.PaddleW, s.PaddleH, s.PaddleVX,
		s.BallX, s.BallY, s.BallW, s.BallH, s.BallVX, s.BallVY,
	} {
		h = h*31 + math.Float64bits(f)
	}

	h = h*31 + boolBit(s.BallActive)
	h = h*31 + boolBit(s.BallReady)

	for _, active := range s.Blocks {
		h = h*31 + boolBit(active)
	}
	for _, f := range s.Pickups {
		h = h*31 + math.Float64bits(f)
	}
	for _, f := range s.Effects {
		h = h*31 + math.Float64bits(f)
	}

	h = h*31 + s.RNGState
	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
