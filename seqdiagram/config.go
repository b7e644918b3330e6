package seqdiagram

// Config holds the fixed measurements of a diagram. All values are in diagram units.
type Config struct {
	// EntitySpacing is the minimum gap between neighboring entity heads.
	EntitySpacing float64 `json:"entitySpacing"`

	ComponentHeadPaddingH float64 `json:"componentHeadPaddingH"`
	ComponentHeadPaddingV float64 `json:"componentHeadPaddingV"`

	FontSize float64 `json:"fontSize"`

	LineWidthLifelines float64 `json:"lineWidthLifelines"`
	LineWidthArrows    float64 `json:"lineWidthArrows"`

	// ActivationThickness is the width of an activation bar. Nested bars are indented by half of it.
	ActivationThickness float64 `json:"activationThickness"`

	// MessageSpacing is the vertical gap between consecutive messages.
	MessageSpacing float64 `json:"messageSpacing"`
	// MessagePadding is kept on both sides of a message label.
	MessagePadding float64 `json:"messagePadding"`

	// FoundWidth is the length of lost and found arrows.
	FoundWidth float64 `json:"foundWidth"`
	SelfWidth  float64 `json:"selfWidth"`
	SelfHeight float64 `json:"selfHeight"`
}

func DefaultConfig() *Config {
	return &Config{
		EntitySpacing:         16,
		ComponentHeadPaddingH: 8,
		ComponentHeadPaddingV: 12,
		FontSize:              16,
		LineWidthLifelines:    1,
		LineWidthArrows:       2,
		ActivationThickness:   15,
		MessageSpacing:        40,
		MessagePadding:        4,
		FoundWidth:            80,
		SelfWidth:             30,
		SelfHeight:            30,
	}
}

func (c *Config) indent() float64 {
	return c.ActivationThickness / 2
}
