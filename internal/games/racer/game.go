package racer

import (
	"sort"

	"github.com/merrillholt/F1Game/internal/config"
	"github.com/merrillholt/F1Game/internal/core"
	"github.com/merrillholt/F1Game/internal/gamelog"
	"github.com/merrillholt/F1Game/internal/registry"
)

// introLandTicks is the length of the intro animation; the title settles
// and the title chord plays when the clock reaches it.
const introLandTicks = 90

// Package-level configuration injected by the platform before Reset. The
// registry creates games through a bare factory, so the CLI cannot pass
// constructor arguments; it sets these instead.
var (
	configPath       string
	difficultyPreset string
	startHighScore   int
	powerUpsOff      bool
	eventLog         *gamelog.Logger
)

// SetConfigPath overrides the YAML config search path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficulty presets the difficulty selection, overriding the configured
// default. Invalid labels are ignored.
func SetDifficulty(label string) {
	difficultyPreset = label
}

// SetHighScore seeds the persisted high score so the HUD shows it from the
// first frame.
func SetHighScore(score int) {
	startHighScore = score
}

// SetPowerUpsOff disables power-up spawning regardless of config.
func SetPowerUpsOff(off bool) {
	powerUpsOff = off
}

// SetEventLog installs the diagnostic event logger. A nil logger (the
// default) disables event logging.
func SetEventLog(l *gamelog.Logger) {
	eventLog = l
}

// session holds the state of one round. A fresh session is created every
// time a race starts; the crash screen keeps the last one around for the
// final score display.
type session struct {
	profile config.Profile

	tick      int     // Racing ticks since GO; frozen during countdown and pause
	countdown int     // Ticks left in the 3-2-1 sequence; 0 while racing
	baseSpeed float64 // Current obstacle base speed; ramps up on every dodge
	score     int
	dodges    int
	distance  float64 // Road distance scrolled, drives the lane marker animation

	car       *Car
	obstacles []*Obstacle
	powerUps  []*PowerUp
	effects   *EffectManager
	spawner   *Spawner

	milestones    []int // Sorted celebration thresholds
	nextMilestone int   // Index of the next uncrossed threshold
}

func newSession(cfg config.Config, p config.Profile, seed int64, tickRate int) *session {
	milestones := append([]int(nil), cfg.Gameplay.Milestones...)
	sort.Ints(milestones)
	pu := cfg.PowerUps
	return &session{
		profile:    p,
		countdown:  3 * cfg.Gameplay.CountdownTicks,
		baseSpeed:  p.ObstacleSpeed,
		car:        NewCar(cfg.Display.LaneWidth, cfg.Display.LaneHeight, cfg.Gameplay.CarStep),
		effects:    NewEffectManager(pu.ShieldSeconds, pu.SlowMoSeconds, pu.BoostSeconds, pu.SlowMoFactor, pu.BoostFactor, tickRate),
		spawner: NewSpawner(seed, cfg.Display.LaneWidth, cfg.Gameplay.SpawnMargin,
			cfg.Gameplay.MaxObstacles, p.SpawnIntervalMin, p.SpawnIntervalMax,
			pu.Enabled, pu.SpawnChance, pu.Size, pu.FallSpeed),
		milestones: milestones,
	}
}

// countdownNumeral returns 3, 2 or 1 while the countdown runs, 0 otherwise.
func (s *session) countdownNumeral(stepTicks int) int {
	if s.countdown <= 0 {
		return 0
	}
	return (s.countdown-1)/stepTicks + 1
}

// Game implements the racer. It owns the full screen flow: intro,
// difficulty selection, racing, pause, and the crash screen.
type Game struct {
	state   GameStateType
	runtime core.RuntimeConfig
	cfg     config.Config

	profile    config.Profile
	profileIdx int // Menu cursor on the difficulty screen

	session *session
	rounds  int64 // Rounds started; salts the per-round seed

	highScore int  // Best score seen this process, persisted by the platform
	newBest   bool // Current round beat the previous best

	introTicks int // Intro animation clock
	goLinger   int // Ticks the GO! banner stays up after the countdown

	cues []core.Cue
}

// New creates a racer game instance.
func New() *Game {
	return &Game{state: StateIntro}
}

// ID returns the unique game identifier.
func (g *Game) ID() string {
	return "racer"
}

// Title returns the human-readable game name.
func (g *Game) Title() string {
	return "F1 Racer"
}

// Reset initializes the game, loading configuration and returning to the
// intro screen. Screen dimensions in cfg affect rendering only.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = 60
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		eventLog.Warn("config load failed, using defaults", "error", err)
		cfg = config.DefaultConfig()
	}
	for _, w := range cfg.Normalize() {
		eventLog.Warn(w)
	}
	if powerUpsOff {
		cfg.PowerUps.Enabled = false
	}
	g.cfg = cfg

	label := cfg.Gameplay.DefaultProfile
	if difficultyPreset != "" {
		label = difficultyPreset
	}
	profile, ok := config.ProfileByLabel(label)
	if !ok {
		profile, _ = config.ProfileByLabel(cfg.Gameplay.DefaultProfile)
	}
	g.profile = profile
	g.profileIdx = profileIndex(profile.Label)

	if startHighScore > g.highScore {
		g.highScore = startHighScore
	}

	g.session = nil
	g.rounds = 0
	g.newBest = false
	g.introTicks = 0
	g.goLinger = 0
	g.state = StateIntro
	g.cues = g.cues[:0]
}

// Step advances the game one tick. The returned cue slice is reused and
// only valid until the next Step call.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.cues = g.cues[:0]
	switch g.state {
	case StateIntro:
		g.stepIntro(in)
	case StateDifficulty:
		g.stepDifficulty(in)
	case StatePlaying:
		g.stepPlaying(in)
	case StatePaused:
		g.stepPaused(in)
	case StateCrashed:
		g.stepCrashed(in)
	}
	return core.StepResult{State: g.State(), Cues: g.cues}
}

// State returns the current observable game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		HighScore: g.highScore,
		GameOver:  g.state == StateCrashed,
		Paused:    g.state == StatePaused,
		Quit:      g.state == StateQuit,
	}
	if g.session != nil {
		st.Score = g.session.score
		st.Difficulty = g.session.profile.Label
	}
	return st
}

// setState records a screen transition. Every transition is logged.
func (g *Game) setState(to GameStateType) {
	if g.state == to {
		return
	}
	eventLog.StateChange(string(g.state), string(to))
	g.state = to
}

func (g *Game) emit(c core.Cue) {
	g.cues = append(g.cues, c)
}

func (g *Game) stepIntro(in core.InputFrame) {
	g.introTicks++
	if g.introTicks == 1 {
		g.emit(core.CueIntro)
	}
	if g.introTicks == introLandTicks {
		g.emit(core.CueTitle)
	}
	switch {
	case in.Has(core.ActionQuit):
		g.setState(StateQuit)
	case in.Has(core.ActionConfirm):
		g.setState(StateDifficulty)
	}
}

func (g *Game) stepDifficulty(in core.InputFrame) {
	profiles := config.Profiles()
	switch {
	case in.Has(core.ActionQuit):
		g.setState(StateQuit)
	case in.Has(core.ActionBack):
		g.introTicks = introLandTicks // Return with the title already settled
		g.setState(StateIntro)
	case in.Has(core.ActionDifficulty1):
		g.startRound(profiles[0])
	case in.Has(core.ActionDifficulty2):
		g.startRound(profiles[1])
	case in.Has(core.ActionDifficulty3):
		g.startRound(profiles[2])
	case in.Has(core.ActionConfirm):
		g.startRound(profiles[g.profileIdx])
	case in.Has(core.ActionUp):
		if g.profileIdx > 0 {
			g.profileIdx--
		}
	case in.Has(core.ActionDown):
		if g.profileIdx < len(profiles)-1 {
			g.profileIdx++
		}
	}
}

// startRound begins a fresh race with the given profile. Each round gets
// its own seed so restarting does not replay the previous round.
func (g *Game) startRound(p config.Profile) {
	g.profile = p
	g.profileIdx = profileIndex(p.Label)
	g.rounds++
	seed := g.runtime.Seed + g.rounds*0x9e3779b9
	g.session = newSession(g.cfg, p, seed, g.runtime.TickRate)
	g.newBest = false
	g.goLinger = 0
	eventLog.SessionStart(p.Label, seed)
	g.setState(StatePlaying)
	g.emit(core.CueIgnition)
	g.emit(core.CueCountdown) // First numeral sounds with the ignition
}

func (g *Game) stepPlaying(in core.InputFrame) {
	switch {
	case in.Has(core.ActionQuit):
		g.emit(core.CueMusicStop)
		g.setState(StateQuit)
		return
	case in.Has(core.ActionPause), in.Has(core.ActionBack):
		g.emit(core.CueMusicPause)
		g.setState(StatePaused)
		return
	}

	s := g.session
	if s.countdown > 0 {
		g.tickCountdown(s)
		return
	}
	if g.goLinger > 0 {
		g.goLinger--
	}
	g.tickRace(s, in)
}

// tickCountdown advances the 3-2-1 sequence. Physics stay frozen until it
// reaches zero; GO and the engine hum mark the handoff to racing.
func (g *Game) tickCountdown(s *session) {
	step := g.cfg.Gameplay.CountdownTicks
	s.countdown--
	if s.countdown == 0 {
		g.emit(core.CueGo)
		g.emit(core.CueMusicStart)
		g.goLinger = step
		return
	}
	if s.countdown%step == 0 {
		g.emit(core.CueCountdown)
	}
}

// tickRace runs one racing tick: steering, movement, spawning, collision
// and scoring, then effect expiry.
func (g *Game) tickRace(s *session, in core.InputFrame) {
	s.tick++

	dir := 0
	if in.Has(core.ActionLeft) {
		dir--
	}
	if in.Has(core.ActionRight) {
		dir++
	}
	s.car.Move(dir, s.effects.CarStepFactor())

	slow := s.effects.ObstacleSpeedFactor()
	for _, o := range s.obstacles {
		o.Advance(s.baseSpeed, slow)
	}
	for _, p := range s.powerUps {
		p.Advance()
	}
	s.distance += s.baseSpeed * slow

	// Entities spawned this tick sit above the lane and take no part in
	// this tick's collision pass.
	settled := len(s.obstacles)
	if o := s.spawner.TrySpawnObstacle(settled); o != nil {
		s.obstacles = append(s.obstacles, o)
		eventLog.Spawn(o.Kind.String(), o.X)
	}
	if p := s.spawner.TrySpawnPowerUp(); p != nil {
		s.powerUps = append(s.powerUps, p)
		eventLog.PowerUpSpawn(p.Kind.String(), p.X)
	}

	if g.resolveCollision(s, settled) {
		return
	}
	g.scoreDodges(s)
	g.collectPowerUps(s)

	if s.score > g.highScore {
		g.highScore = s.score
		g.newBest = true
	}

	for _, kind := range s.effects.Expire(s.tick) {
		eventLog.EffectExpired(kind.String())
	}
}

// resolveCollision runs the obstacle-car test over the obstacles that were
// settled before this tick's spawn. The shield state is read once up front,
// and at most one contact resolves per tick: a shielded hit destroys the
// obstacle and ends the pass, an unshielded one ends the round. Returns
// true when the round ended.
func (g *Game) resolveCollision(s *session, settled int) bool {
	car := s.car.Bounds()
	insetX := g.cfg.Gameplay.CollisionInsetX
	insetY := g.cfg.Gameplay.CollisionInsetY
	shielded := s.effects.ShieldActive()
	for i := 0; i < settled; i++ {
		o := s.obstacles[i]
		if !car.Intersects(o.Bounds().Inset(insetX, insetY)) {
			continue
		}
		if shielded {
			eventLog.ShieldAbsorb(o.Kind.String())
			g.emit(core.CueShieldHit)
			s.obstacles = append(s.obstacles[:i], s.obstacles[i+1:]...)
			return false
		}
		g.crash(s, o)
		return true
	}
	return false
}

func (g *Game) crash(s *session, o *Obstacle) {
	eventLog.Collision(o.Kind.String(), s.score)
	if g.newBest {
		eventLog.HighScore(s.score)
	}
	g.emit(core.CueCrash)
	g.emit(core.CueMusicStop)
	g.setState(StateCrashed)
}

// scoreDodges removes obstacles that cleared the bottom edge, awarding
// their points and ramping the base speed per dodge.
func (g *Game) scoreDodges(s *session) {
	laneH := g.cfg.Display.LaneHeight
	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		if !o.OffScreen(laneH) {
			kept = append(kept, o)
			continue
		}
		s.score += o.Kind.Points()
		s.dodges++
		s.baseSpeed += s.profile.SpeedIncrement
		eventLog.Dodge(o.Kind.String(), s.score, s.baseSpeed)
	}
	s.obstacles = kept
	g.checkMilestones(s)
}

// checkMilestones fires the celebration cue when the score crosses the next
// threshold. A multi-point dodge can cross several at once; each is logged,
// the cue plays once.
func (g *Game) checkMilestones(s *session) {
	crossed := false
	for s.nextMilestone < len(s.milestones) && s.score >= s.milestones[s.nextMilestone] {
		eventLog.Milestone(s.milestones[s.nextMilestone])
		s.nextMilestone++
		crossed = true
	}
	if crossed {
		g.emit(core.CueMilestone)
	}
}

// collectPowerUps picks up power-ups touching the car and drops the ones
// that fell past the bottom edge.
func (g *Game) collectPowerUps(s *session) {
	laneH := g.cfg.Display.LaneHeight
	car := s.car.Bounds()
	kept := s.powerUps[:0]
	for _, p := range s.powerUps {
		switch {
		case car.Intersects(p.Bounds()):
			ticks := s.effects.Activate(p.Kind, s.tick)
			eventLog.Pickup(p.Kind.String(), float64(ticks)/float64(g.runtime.TickRate))
			g.emit(core.CuePickup)
		case p.OffScreen(laneH):
			// Missed; gone without ceremony
		default:
			kept = append(kept, p)
		}
	}
	s.powerUps = kept
}

func (g *Game) stepPaused(in core.InputFrame) {
	switch {
	case in.Has(core.ActionQuit):
		g.emit(core.CueMusicStop)
		g.setState(StateQuit)
	case in.Has(core.ActionPause), in.Has(core.ActionConfirm), in.Has(core.ActionBack):
		g.emit(core.CueMusicResume)
		g.setState(StatePlaying)
	}
}

func (g *Game) stepCrashed(in core.InputFrame) {
	switch {
	case in.Has(core.ActionQuit):
		g.setState(StateQuit)
	case in.Has(core.ActionRestart), in.Has(core.ActionConfirm):
		g.startRound(g.profile)
	case in.Has(core.ActionBack):
		g.setState(StateDifficulty)
	}
}

func profileIndex(label string) int {
	for i, p := range config.Profiles() {
		if p.Label == label {
			return i
		}
	}
	return 1 // Normal
}

func init() {
	registry.Register("racer", func() registry.Game {
		return New()
	})
}
