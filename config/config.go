// Package config holds every tunable the widgets read: wheel geometry
// and timing, physics profiles, theme colors, audio enablement. Values
// here are product decisions, not derived quantities; the shipped
// defaults match the tuning the widgets were built with and a TOML file
// can override any subset of them.
package config

// Config is the root of all runtime tuning
type Config struct {
	Wheel WheelConfig `toml:"wheel"`
	Game  GameConfig  `toml:"game"`
	Audio AudioConfig `toml:"audio"`
	Theme Theme       `toml:"theme"`
}

// WheelConfig tunes the spin animation and wheel geometry
type WheelConfig struct {
	// SpinSeconds is the full duration of one spin animation
	SpinSeconds float64 `toml:"spin_seconds" validate:"gt=0,lte=60"`

	// MinTurns is the minimum number of full revolutions per spin
	MinTurns int `toml:"min_turns" validate:"gte=1,lte=20"`

	// ExtraTurns is the upper bound of the random extra revolutions
	// added on top of MinTurns
	ExtraTurns float64 `toml:"extra_turns" validate:"gte=0,lte=10"`

	// WobbleAmplitude scales the trailing oscillation of the easing
	// curve, in fractions of the total sweep. Tuned by eye.
	WobbleAmplitude float64 `toml:"wobble_amplitude" validate:"gte=0,lte=0.05"`

	// WobbleCycles is how many oscillations the tail makes
	WobbleCycles float64 `toml:"wobble_cycles" validate:"gte=0,lte=10"`

	// DecayPower shapes the ease-out falloff; higher stops harder
	DecayPower float64 `toml:"decay_power" validate:"gte=1,lte=8"`

	// FlashMillis is how long the pointer flash lasts after a slice
	// boundary passes under it
	FlashMillis int `toml:"flash_millis" validate:"gte=0,lte=1000"`

	// GlowSeconds is the period of the idle winner-glow pulse
	GlowSeconds float64 `toml:"glow_seconds" validate:"gt=0,lte=10"`

	// RadiusFrac sizes the wheel relative to the shorter half-extent
	// of the view
	RadiusFrac float64 `toml:"radius_frac" validate:"gt=0,lte=1"`

	// LabelRadiusFrac places labels along the slice bisector
	LabelRadiusFrac float64 `toml:"label_radius_frac" validate:"gt=0,lte=1"`

	// HubRadiusFrac sizes the center hub
	HubRadiusFrac float64 `toml:"hub_radius_frac" validate:"gte=0,lte=0.5"`
}

// Profile is a fixed bundle of physics constants selected by
// difficulty name. Units are cells and 60Hz ticks.
type Profile struct {
	// Gravity is added to vertical velocity every tick (cells/tick²)
	Gravity float64 `toml:"gravity" validate:"gt=0,lte=1"`

	// FlapImpulse replaces vertical velocity on a flap (negative = up)
	FlapImpulse float64 `toml:"flap_impulse" validate:"lt=0,gte=-3"`

	// TerminalVelocity caps downward speed (cells/tick)
	TerminalVelocity float64 `toml:"terminal_velocity" validate:"gt=0,lte=5"`

	// GapSize is the vertical opening between pipe halves (cells)
	GapSize float64 `toml:"gap_size" validate:"gte=3,lte=30"`

	// ScrollSpeed moves pipes leftward (cells/tick)
	ScrollSpeed float64 `toml:"scroll_speed" validate:"gt=0,lte=3"`

	// SpawnTicks is the interval between pipe spawns
	SpawnTicks int `toml:"spawn_ticks" validate:"gte=20,lte=600"`

	// Forgiveness shrinks the bird's hitbox on every side (cells).
	// Tuned by feel, not derived.
	Forgiveness float64 `toml:"forgiveness" validate:"gte=0,lte=2"`
}

// GameConfig tunes the hidden game
type GameConfig struct {
	// BirdXFrac is the bird's fixed horizontal position as a fraction
	// of the view width
	BirdXFrac float64 `toml:"bird_x_frac" validate:"gt=0,lt=1"`

	// GroundRows is the height of the scrolling ground strip
	GroundRows int `toml:"ground_rows" validate:"gte=1,lte=6"`

	// MaxPipes caps the obstacle pool
	MaxPipes int `toml:"max_pipes" validate:"gte=2,lte=64"`

	// PipeWidth is the obstacle thickness in cells
	PipeWidth float64 `toml:"pipe_width" validate:"gte=1,lte=12"`

	// CloudCount, TreeDensity and PlaneSeconds shape the decorative
	// background; none of it affects play.
	CloudCount   int     `toml:"cloud_count" validate:"gte=0,lte=32"`
	TreeDensity  float64 `toml:"tree_density" validate:"gte=0,lte=1"`
	PlaneSeconds float64 `toml:"plane_seconds" validate:"gte=2,lte=120"`

	// Profiles maps difficulty name to its physics bundle
	Profiles map[string]Profile `toml:"profiles" validate:"required,dive"`
}

// AudioConfig switches procedural sound on or off
type AudioConfig struct {
	Enabled bool `toml:"enabled"`
}

// Theme carries every color as "#rrggbb". Conversion to terminal
// colors happens where the colors are used.
type Theme struct {
	Background  string `toml:"background" validate:"hexcolor"`
	WheelRim    string `toml:"wheel_rim" validate:"hexcolor"`
	WheelHub    string `toml:"wheel_hub" validate:"hexcolor"`
	Pointer     string `toml:"pointer" validate:"hexcolor"`
	Label       string `toml:"label" validate:"hexcolor"`
	Accent      string `toml:"accent" validate:"hexcolor"`
	Heart       string `toml:"heart" validate:"hexcolor"`
	SkyTop      string `toml:"sky_top" validate:"hexcolor"`
	SkyBottom   string `toml:"sky_bottom" validate:"hexcolor"`
	Ground      string `toml:"ground" validate:"hexcolor"`
	Pipe        string `toml:"pipe" validate:"hexcolor"`
	Bird        string `toml:"bird" validate:"hexcolor"`
	Cloud       string `toml:"cloud" validate:"hexcolor"`
	Skyline     string `toml:"skyline" validate:"hexcolor"`
	Building    string `toml:"building" validate:"hexcolor"`
	Tree        string `toml:"tree" validate:"hexcolor"`
	Plane       string `toml:"plane" validate:"hexcolor"`
	CardBg      string `toml:"card_bg" validate:"hexcolor"`
	CardText    string `toml:"card_text" validate:"hexcolor"`
	CardBorder  string `toml:"card_border" validate:"hexcolor"`

	// PickedDim scales colors of already-picked wedges toward black
	PickedDim float64 `toml:"picked_dim" validate:"gt=0,lte=1"`

	// SliceSaturation and SliceValue feed the HSV palette sweep that
	// colors the wedges
	SliceSaturation float64 `toml:"slice_saturation" validate:"gte=0,lte=1"`
	SliceValue      float64 `toml:"slice_value" validate:"gte=0,lte=1"`
}

// DifficultyOrder is the fixed presentation order of the difficulty
// tiers in the picker. Names not present in Profiles are skipped.
var DifficultyOrder = []string{"easy", "normal", "hard"}

// DefaultDifficulty is used when no preference has been persisted
const DefaultDifficulty = "normal"

// Default returns the built-in tuning. Every field is exercised by the
// widgets, so a zero Config is never used directly.
func Default() Config {
	return Config{
		Wheel: WheelConfig{
			SpinSeconds:     4.2,
			MinTurns:        4,
			ExtraTurns:      2.0,
			WobbleAmplitude: 0.006,
			WobbleCycles:    2.5,
			DecayPower:      3.0,
			FlashMillis:     90,
			GlowSeconds:     1.6,
			RadiusFrac:      0.86,
			LabelRadiusFrac: 0.62,
			HubRadiusFrac:   0.16,
		},
		Game: GameConfig{
			BirdXFrac:    0.28,
			GroundRows:   2,
			MaxPipes:     8,
			PipeWidth:    5,
			CloudCount:   6,
			TreeDensity:  0.14,
			PlaneSeconds: 16,
			Profiles: map[string]Profile{
				"easy": {
					Gravity:          0.035,
					FlapImpulse:      -0.48,
					TerminalVelocity: 0.90,
					GapSize:          9,
					ScrollSpeed:      0.30,
					SpawnTicks:       115,
					Forgiveness:      0.75,
				},
				"normal": {
					Gravity:          0.050,
					FlapImpulse:      -0.58,
					TerminalVelocity: 1.05,
					GapSize:          7,
					ScrollSpeed:      0.38,
					SpawnTicks:       95,
					Forgiveness:      0.50,
				},
				"hard": {
					Gravity:          0.068,
					FlapImpulse:      -0.66,
					TerminalVelocity: 1.20,
					GapSize:          6,
					ScrollSpeed:      0.48,
					SpawnTicks:       78,
					Forgiveness:      0.30,
				},
			},
		},
		Audio: AudioConfig{
			Enabled: true,
		},
		Theme: Theme{
			Background:      "#1a1b26",
			WheelRim:        "#414868",
			WheelHub:        "#c0caf5",
			Pointer:         "#f7768e",
			Label:           "#1a1b26",
			Accent:          "#7aa2f7",
			Heart:           "#f7768e",
			SkyTop:          "#24283b",
			SkyBottom:       "#3d59a1",
			Ground:          "#9ece6a",
			Pipe:            "#73daca",
			Bird:            "#e0af68",
			Cloud:           "#565f89",
			Skyline:         "#2f3549",
			Building:        "#414868",
			Tree:            "#33635c",
			Plane:           "#a9b1d6",
			CardBg:          "#16161e",
			CardText:        "#c0caf5",
			CardBorder:      "#7aa2f7",
			PickedDim:       0.35,
			SliceSaturation: 0.55,
			SliceValue:      0.85,
		},
	}
}
