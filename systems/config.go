package systems

// DefaultSpeedPresets are the multipliers selected by the four speed
// commands.
var DefaultSpeedPresets = [4]float32{1.0, 0.75, 0.5, 0.25}

// SimulationConfig holds the runtime switches changed by key commands and
// read by the physics system every frame.
type SimulationConfig struct {
	GravityEnabled  bool
	Paused          bool
	SpeedMultiplier float32

	presets [4]float32
}

// NewSimulationConfig returns a running, gravity-free config at the first
// preset.
func NewSimulationConfig(presets [4]float32) SimulationConfig {
	return SimulationConfig{
		SpeedMultiplier: presets[0],
		presets:         presets,
	}
}

// ToggleGravity flips gravity on or off.
func (c *SimulationConfig) ToggleGravity() {
	c.GravityEnabled = !c.GravityEnabled
}

// TogglePause flips the paused flag.
func (c *SimulationConfig) TogglePause() {
	c.Paused = !c.Paused
}

// SelectSpeed sets the multiplier to preset i (0-3). Other indices are
// ignored.
func (c *SimulationConfig) SelectSpeed(i int) {
	if i < 0 || i >= len(c.presets) {
		return
	}
	c.SpeedMultiplier = c.presets[i]
}

// Presets returns the configured speed multipliers.
func (c SimulationConfig) Presets() [4]float32 {
	return c.presets
}
