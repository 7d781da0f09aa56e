package core

// Cue identifies a discrete sound event produced by the game.
// The game emits cues through StepResult; it never touches the audio
// device itself, so a muted or failed audio backend cannot affect gameplay.
type Cue int

const (
	CueNone        Cue = iota
	CueIntro           // swoosh as the title animation starts
	CueTitle           // chord when the title lands
	CueIgnition        // engine ignition at countdown start
	CueCountdown       // short beep on each 3-2-1 step
	CueGo              // higher beep on GO
	CueCrash           // impact noise on an unshielded collision
	CuePickup          // chime on power-up collection
	CueShieldHit       // dull thud when the shield absorbs a hit
	CueMilestone       // arpeggio at score milestones
	CueMusicStart      // start the looping engine hum
	CueMusicPause      // pause the hum (game paused)
	CueMusicResume     // resume the hum
	CueMusicStop       // stop the hum (crash or quit)
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueNone:
		return "none"
	case CueIntro:
		return "intro"
	case CueTitle:
		return "title"
	case CueIgnition:
		return "ignition"
	case CueCountdown:
		return "countdown"
	case CueGo:
		return "go"
	case CueCrash:
		return "crash"
	case CuePickup:
		return "pickup"
	case CueShieldHit:
		return "shield_hit"
	case CueMilestone:
		return "milestone"
	case CueMusicStart:
		return "music_start"
	case CueMusicPause:
		return "music_pause"
	case CueMusicResume:
		return "music_resume"
	case CueMusicStop:
		return "music_stop"
	default:
		return "unknown"
	}
}
