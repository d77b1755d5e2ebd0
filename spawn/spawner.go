// Package spawn places the ball on a free grid cell
package spawn

import (
	"math"

	"go.uber.org/zap"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/entity"
	"github.com/lixenwraith/vi-snake/geometry"
)

// Source yields uniform values in [0, 1)
// *rand.Rand from golang.org/x/exp/rand satisfies it
type Source interface {
	Float64() float64
}

// Spawner picks ball positions, deterministic for a given Source
type Spawner struct {
	rng         Source
	ballSize    int
	maxAttempts int
	log         *zap.Logger
}

// Option configures a Spawner
type Option func(*Spawner)

// WithBallSize overrides the ball edge in pixels
func WithBallSize(size int) Option {
	return func(s *Spawner) {
		if size > 0 {
			s.ballSize = size
		}
	}
}

// WithMaxAttempts overrides the number of placements tried before the fallback
func WithMaxAttempts(n int) Option {
	return func(s *Spawner) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

// WithLogger attaches a logger for fallback reporting
func WithLogger(log *zap.Logger) Option {
	return func(s *Spawner) {
		if log != nil {
			s.log = log
		}
	}
}

// New creates a spawner drawing from rng
func New(rng Source, opts ...Option) *Spawner {
	s := &Spawner{
		rng:         rng,
		ballSize:    constants.BallSize,
		maxAttempts: constants.SpawnMaxAttempts,
		log:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewSeeded creates a spawner over a seeded x/exp/rand generator
func NewSeeded(seed uint64, opts ...Option) *Spawner {
	return New(rand.New(rand.NewSource(seed)), opts...)
}

// BallSize returns the configured ball edge
func (s *Spawner) BallSize() int {
	return s.ballSize
}

// Spawn returns a ball position not within one cell of any snake cell on both axes
// After maxAttempts rejections the fixed far-corner fallback is returned and fallback is true
func (s *Spawner) Spawn(geo geometry.Geometry, snake *entity.Snake) (ball entity.Ball, fallback bool) {
	cell := geo.CellSize
	if cell < 1 {
		cell = 1
	}
	size := float64(s.ballSize)

	maxX := int(math.Floor((geo.Width - size) / float64(cell)))
	maxY := int(math.Floor((geo.Height - size) / float64(cell)))
	if maxX <= 0 {
		maxX = 1
	}
	if maxY <= 0 {
		maxY = 1
	}
	limitX := geo.Width - size - float64(cell)
	limitY := geo.Height - size - float64(cell)

	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		x := s.draw(maxX, cell, limitX)
		y := s.draw(maxY, cell, limitY)
		c := entity.Cell{X: x, Y: y}
		if snake == nil || !snake.Near(c, cell) {
			return entity.Ball{Cell: c, Size: s.ballSize}, false
		}
	}

	c := entity.Cell{
		X: int(math.Floor(geo.Width)) - constants.SpawnFallbackCells*cell,
		Y: int(math.Floor(geo.Height)) - constants.SpawnFallbackCells*cell,
	}
	s.log.Warn("no free spot for ball, using fallback position",
		zap.Int("attempts", s.maxAttempts),
		zap.Int("x", c.X),
		zap.Int("y", c.Y),
	)
	return entity.Ball{Cell: c, Size: s.ballSize}, true
}

// draw picks a grid-aligned coordinate in [0, max) cells, clamped to limit
func (s *Spawner) draw(max, cell int, limit float64) int {
	v := int(math.Floor(s.rng.Float64()*float64(max))) * cell
	if float64(v) > limit {
		v = int(math.Floor(limit))
	}
	return v
}
