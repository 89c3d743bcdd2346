package config

// Config is the demo CLI's theme file.
type Config struct {
	Border      string    `yaml:"border" validate:"omitempty,border"`
	BorderColor ColorPair `yaml:"border_color"`
	ValueColor  ColorPair `yaml:"value_color"`
	TextColor   ColorPair `yaml:"text_color"`
	Padding     Padding   `yaml:"padding"`
	Wrap        Wrap      `yaml:"wrap"`
	Log         Log       `yaml:"log"`
}

// ColorPair names a foreground and background. Empty values inherit the
// console's current color.
type ColorPair struct {
	Foreground string `yaml:"foreground" validate:"omitempty,color"`
	Background string `yaml:"background" validate:"omitempty,color"`
}

// Padding surrounds table cell values.
type Padding struct {
	Left  string `yaml:"left" validate:"max=8"`
	Right string `yaml:"right" validate:"max=8"`
}

// Wrap configures paragraph wrapping. A zero line length follows the console width.
type Wrap struct {
	LineLength int  `yaml:"line_length" validate:"gte=0,lte=1000"`
	PadEnds    bool `yaml:"pad_ends"`
}

// Log configures diagnostic logging.
type Log struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn warning error"`
	Human bool   `yaml:"human"`
}

// Default returns the built-in theme.
func Default() *Config {
	return &Config{
		Border:  "double",
		Padding: Padding{Left: " ", Right: " "},
		Wrap:    Wrap{PadEnds: true},
		Log:     Log{Level: "info", Human: true},
	}
}
