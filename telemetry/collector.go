// Package telemetry provides run statistics, performance tracking and CSV
// output for the simulator.
package telemetry

// Collector accumulates events within frame windows and produces WindowStats.
type Collector struct {
	windowFrames int32
	dt           float64

	// Current window tracking
	windowStartFrame int32

	// Event counters for current window
	placed       int
	committed    int
	wraps        int
	commands     int
	resets       int
	pausedFrames int
}

// NewCollector creates a stats collector.
// windowFrames: frames per window
// dt: seconds per frame (used for frame-to-time conversion)
func NewCollector(windowFrames int, dt float64) *Collector {
	if windowFrames < 1 {
		windowFrames = 1
	}
	return &Collector{
		windowFrames: int32(windowFrames),
		dt:           dt,
	}
}

// RecordPlaced records a new particle centre. wrapped marks a placement that
// overwrote an existing slot.
func (c *Collector) RecordPlaced(wrapped bool) {
	c.placed++
	if wrapped {
		c.wraps++
	}
}

// RecordCommitted records a completed particle.
func (c *Collector) RecordCommitted() {
	c.committed++
}

// RecordCommand records a key command.
func (c *Collector) RecordCommand(reset bool) {
	c.commands++
	if reset {
		c.resets++
	}
}

// RecordPausedFrame records a frame skipped by pause.
func (c *Collector) RecordPausedFrame() {
	c.pausedFrames++
}

// ShouldFlush returns true if enough frames have passed to flush the window.
func (c *Collector) ShouldFlush(frame int32) bool {
	return frame-c.windowStartFrame >= c.windowFrames
}

// Switches is the simulation configuration sampled at window end.
type Switches struct {
	Gravity bool
	Paused  bool
	Speed   float64
	Mode    string
}

// Flush produces a WindowStats and resets counters for the next window.
// speeds and radii describe the filled slots at the end of the window.
func (c *Collector) Flush(frame int32, filled int, speeds, radii []float64, sw Switches) WindowStats {
	k := ComputeKinematics(speeds, radii)

	stats := WindowStats{
		WindowStartFrame: c.windowStartFrame,
		WindowEndFrame:   frame,
		ElapsedSec:       float64(frame) * c.dt,

		Filled: filled,

		Placed:       c.placed,
		Committed:    c.committed,
		Wraps:        c.wraps,
		Commands:     c.commands,
		Resets:       c.resets,
		PausedFrames: c.pausedFrames,

		SpeedMean:  k.SpeedMean,
		SpeedStd:   k.SpeedStd,
		SpeedMax:   k.SpeedMax,
		RadiusMean: k.RadiusMean,
		RadiusMax:  k.RadiusMax,

		Gravity: sw.Gravity,
		Paused:  sw.Paused,
		Speed:   sw.Speed,
		Mode:    sw.Mode,
	}

	// Reset for next window
	c.windowStartFrame = frame
	c.placed = 0
	c.committed = 0
	c.wraps = 0
	c.commands = 0
	c.resets = 0
	c.pausedFrames = 0

	return stats
}

// WindowFrames returns the number of frames per window.
func (c *Collector) WindowFrames() int32 {
	return c.windowFrames
}
