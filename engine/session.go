package engine

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine/status"
	"github.com/lixenwraith/vi-snake/entity"
	"github.com/lixenwraith/vi-snake/geometry"
)

// Session is the game lifecycle state machine
// Every command and tick runs under one mutex, so they apply in arrival order
// Commands that are invalid for the current phase are no-ops and return false
type Session struct {
	mu sync.Mutex

	state    State
	settings Settings
	clock    Clock
	spawner  BallSpawner
	log      *zap.Logger

	observers []Observer

	id string
	// epoch invalidates ticks delivered by a timer that has since been replaced
	epoch uint64

	viewW, viewH     float64
	settleCancel     func()
	settleGen        uint64
	visibilityPaused bool

	// Cached metric pointers
	statusReg  *status.Registry
	statTicks  *atomic.Int64
	statBalls  *atomic.Int64
	statGames  *atomic.Int64
	statWall   *atomic.Int64
	statSelf   *atomic.Int64
	statSpeed  *atomic.Int64
	statActive *atomic.Bool
}

// Option configures a Session
type Option func(*Session)

// WithSettings overrides the default tuning
func WithSettings(s Settings) Option {
	return func(sess *Session) { sess.settings = s }
}

// WithLogger attaches a structured logger
func WithLogger(log *zap.Logger) Option {
	return func(sess *Session) {
		if log != nil {
			sess.log = log
		}
	}
}

// WithObserver registers a snapshot observer
func WithObserver(o Observer) Option {
	return func(sess *Session) {
		if o != nil {
			sess.observers = append(sess.observers, o)
		}
	}
}

// WithRegistry publishes counters into an existing registry
func WithRegistry(r *status.Registry) Option {
	return func(sess *Session) {
		if r != nil {
			sess.statusReg = r
		}
	}
}

// WithViewport sets the initial container size
func WithViewport(width, height float64) Option {
	return func(sess *Session) {
		sess.viewW, sess.viewH = width, height
	}
}

// NewSession creates an Idle session
func NewSession(clock Clock, spawner BallSpawner, opts ...Option) *Session {
	s := &Session{
		settings:  DefaultSettings(),
		clock:     clock,
		spawner:   spawner,
		log:       zap.NewNop(),
		statusReg: status.NewRegistry(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.statTicks = s.statusReg.Ints.Get("engine.ticks")
	s.statBalls = s.statusReg.Ints.Get("engine.balls")
	s.statGames = s.statusReg.Ints.Get("engine.games")
	s.statWall = s.statusReg.Ints.Get("engine.deaths.wall")
	s.statSelf = s.statusReg.Ints.Get("engine.deaths.self")
	s.statSpeed = s.statusReg.Ints.Get("engine.speed_ms")
	s.statActive = s.statusReg.Bools.Get("engine.clock_active")

	s.state.Phase = PhaseIdle
	s.state.Geometry = s.computeGeometry()
	return s
}

// Registry returns the metrics registry the session publishes into
func (s *Session) Registry() *status.Registry {
	return s.statusReg
}

// Snapshot returns a copy of the current state
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Phase returns the current lifecycle phase
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Phase
}

// Start begins a fresh session from Idle or GameOver
func (s *Session) Start() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !CanTransition(s.state.Phase, PhaseRunning) || s.state.Phase == PhasePaused {
		return false
	}

	s.cancelSettleLocked()
	s.visibilityPaused = false
	s.id = uuid.NewString()

	geo := s.computeGeometry()
	start := entity.Cell{
		X: geo.Align(math.Floor(geo.Width / constants.StartFraction)),
		Y: geo.Align(math.Floor(geo.Height / constants.StartFraction)),
	}
	snake := entity.NewSnake(start, s.settings.InitialLength, geo.CellSize, entity.DirRight)

	s.state = State{
		Phase:     PhaseRunning,
		Geometry:  geo,
		Snake:     snake,
		Direction: entity.DirRight,
		Pending:   entity.DirRight,
		Speed:     s.settings.InitialSpeed,
	}
	s.state.Ball, _ = s.spawner.Spawn(geo, &s.state.Snake)
	s.state.HasBall = true

	s.armLocked()
	s.statGames.Add(1)

	s.log.Info("session started",
		zap.String("session", s.id),
		zap.Int("cell", geo.CellSize),
		zap.Float64("width", geo.Width),
		zap.Float64("height", geo.Height),
		zap.Stringer("head", start),
	)
	s.notifyLocked()
	return true
}

// Stop discards a running or paused session and returns to Idle
func (s *Session) Stop() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Phase != PhaseRunning && s.state.Phase != PhasePaused {
		return false
	}

	s.disarmLocked()
	s.cancelSettleLocked()
	s.visibilityPaused = false

	s.log.Info("session stopped", zap.String("session", s.id), zap.Int("score", s.state.Score))

	s.state = State{
		Phase:    PhaseIdle,
		Geometry: s.computeGeometry(),
	}
	s.notifyLocked()
	return true
}

// Pause halts the clock, keeping all session state
func (s *Session) Pause() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.pauseLocked("command") {
		return false
	}
	s.notifyLocked()
	return true
}

// Resume re-arms the clock at the current speed
func (s *Session) Resume() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Phase != PhasePaused {
		return false
	}

	s.state.Phase = PhaseRunning
	s.armLocked()
	s.log.Debug("session resumed", zap.String("session", s.id), zap.Duration("speed", s.state.Speed))
	s.notifyLocked()
	return true
}

// RequestDirection queues a heading for the next tick, only while Running
// The exact reverse of the committed direction is discarded
func (s *Session) RequestDirection(d entity.Direction) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Phase != PhaseRunning {
		return false
	}
	if !s.state.RequestDirection(d) {
		return false
	}
	s.notifyLocked()
	return true
}

// Resize records a new container size
// A running session pauses and recomputes geometry after the settle delay; it never resumes on its own
// Otherwise geometry is recomputed immediately
func (s *Session) Resize(width, height float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.viewW, s.viewH = width, height

	if s.state.Phase == PhaseRunning || s.settleCancel != nil {
		s.pauseLocked("resize")
		s.cancelSettleLocked()
		s.settleGen++
		gen := s.settleGen
		s.settleCancel = s.clock.After(s.settings.SettleDelay, func() { s.settle(gen) })
		s.notifyLocked()
		return true
	}

	s.applyGeometryLocked()
	s.notifyLocked()
	return true
}

// SetBackground reports a visibility change
// Going to the background pauses a running session; returning never resumes it
func (s *Session) SetBackground(hidden bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !hidden {
		if !s.visibilityPaused {
			return false
		}
		s.visibilityPaused = false
		s.notifyLocked()
		return true
	}

	if !s.pauseLocked("background") {
		return false
	}
	s.visibilityPaused = true
	s.notifyLocked()
	return true
}

// settle runs after the resize delay scheduled as gen
func (s *Session) settle(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.settleCancel == nil || gen != s.settleGen {
		return
	}
	s.settleCancel = nil
	s.applyGeometryLocked()
	s.notifyLocked()
}

// onTick is the clock callback for the timer armed at epoch
func (s *Session) onTick(epoch uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if epoch != s.epoch || s.state.Phase != PhaseRunning {
		return
	}

	res := Step(&s.state, s.spawner, s.settings)
	s.statTicks.Add(1)

	switch res.Outcome {
	case OutcomeDied:
		s.disarmLocked()
		switch res.Cause {
		case CauseWall:
			s.statWall.Add(1)
		case CauseSelf:
			s.statSelf.Add(1)
		}
		s.log.Info(res.Cause.String()+" collision",
			zap.String("session", s.id),
			zap.Int("x", res.Head.X),
			zap.Int("y", res.Head.Y),
			zap.Int("score", s.state.FinalScore),
		)

	case OutcomeGrew:
		s.statBalls.Add(1)
		if res.SpeedChanged {
			// The in-flight tick already fired: the new period starts from now
			s.armLocked()
			s.log.Debug("speed up", zap.String("session", s.id), zap.Duration("speed", s.state.Speed))
		}
	}

	s.notifyLocked()
}

// pauseLocked moves Running to Paused; false when not Running
func (s *Session) pauseLocked(reason string) bool {
	if s.state.Phase != PhaseRunning {
		return false
	}
	s.disarmLocked()
	s.state.Phase = PhasePaused
	s.log.Info("session paused", zap.String("session", s.id), zap.String("reason", reason))
	return true
}

// armLocked replaces the active timer with one at the current speed
func (s *Session) armLocked() {
	s.epoch++
	epoch := s.epoch
	s.clock.Arm(s.state.Speed, func() { s.onTick(epoch) })
	s.statSpeed.Store(s.state.Speed.Milliseconds())
	s.statActive.Store(true)
}

func (s *Session) disarmLocked() {
	s.epoch++
	s.clock.Disarm()
	s.statActive.Store(false)
}

func (s *Session) cancelSettleLocked() {
	if s.settleCancel != nil {
		s.settleCancel()
		s.settleCancel = nil
	}
}

func (s *Session) computeGeometry() geometry.Geometry {
	return geometry.ComputeWithDivisor(s.viewW, s.viewH, s.settings.GridDivisor)
}

// applyGeometryLocked recomputes the grid and keeps a live ball inside the new bounds
// Snake cells keep their pixel positions; only render-facing sizes follow the new cell size
func (s *Session) applyGeometryLocked() {
	s.state.Geometry = s.computeGeometry()

	if !s.state.HasBall || s.state.Phase == PhaseGameOver {
		return
	}
	size := float64(s.state.Ball.Size)
	if maxX := s.state.Geometry.Width - size; float64(s.state.Ball.X) > maxX {
		s.state.Ball.X = int(math.Floor(maxX))
	}
	if maxY := s.state.Geometry.Height - size; float64(s.state.Ball.Y) > maxY {
		s.state.Ball.Y = int(math.Floor(maxY))
	}
}

func (s *Session) snapshotLocked() Snapshot {
	body := make([]entity.Cell, len(s.state.Snake.Body))
	copy(body, s.state.Snake.Body)

	return Snapshot{
		SessionID:        s.id,
		Phase:            s.state.Phase,
		Geometry:         s.state.Geometry,
		Snake:            body,
		Ball:             s.state.Ball,
		HasBall:          s.state.HasBall,
		Direction:        s.state.Direction,
		Pending:          s.state.Pending,
		Score:            s.state.Score,
		FinalScore:       s.state.FinalScore,
		Speed:            s.state.Speed,
		Cause:            s.state.Cause,
		Ticks:            s.state.Ticks,
		VisibilityPaused: s.visibilityPaused,
		Settling:         s.settleCancel != nil,
	}
}

func (s *Session) notifyLocked() {
	if len(s.observers) == 0 {
		return
	}
	snap := s.snapshotLocked()
	for _, o := range s.observers {
		o(snap)
	}
}
