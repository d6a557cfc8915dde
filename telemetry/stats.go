package telemetry

import (
	"log/slog"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a window of frames.
type WindowStats struct {
	WindowStartFrame int32   `csv:"-"`
	WindowEndFrame   int32   `csv:"window_end"`
	ElapsedSec       float64 `csv:"elapsed"`

	// Table occupancy at window end
	Filled int `csv:"filled"`

	// Events during window
	Placed       int `csv:"placed"`
	Committed    int `csv:"committed"`
	Wraps        int `csv:"wraps"`
	Commands     int `csv:"commands"`
	Resets       int `csv:"resets"`
	PausedFrames int `csv:"paused_frames"`

	// Kinematics of filled slots at window end
	SpeedMean  float64 `csv:"speed_mean"`
	SpeedStd   float64 `csv:"speed_std"`
	SpeedMax   float64 `csv:"speed_max"`
	RadiusMean float64 `csv:"radius_mean"`
	RadiusMax  float64 `csv:"radius_max"`

	// Switches at window end
	Gravity bool    `csv:"gravity"`
	Paused  bool    `csv:"paused"`
	Speed   float64 `csv:"speed_multiplier"`
	Mode    string  `csv:"render_mode"`
}

// Kinematics summarises per-particle speeds and radii.
type Kinematics struct {
	SpeedMean, SpeedStd, SpeedMax float64
	RadiusMean, RadiusMax         float64
}

// ComputeKinematics returns mean, spread and maximum of the given speeds and
// radii. Empty inputs produce zeros.
func ComputeKinematics(speeds, radii []float64) Kinematics {
	var k Kinematics
	if len(speeds) > 0 {
		k.SpeedMean, k.SpeedStd = stat.PopMeanStdDev(speeds, nil)
		k.SpeedMax = floats.Max(speeds)
	}
	if len(radii) > 0 {
		k.RadiusMean = stat.Mean(radii, nil)
		k.RadiusMax = floats.Max(radii)
	}
	return k
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_end", int(s.WindowEndFrame)),
		slog.Float64("elapsed", s.ElapsedSec),
		slog.Int("filled", s.Filled),
		slog.Int("placed", s.Placed),
		slog.Int("committed", s.Committed),
		slog.Int("wraps", s.Wraps),
		slog.Int("commands", s.Commands),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_max", s.SpeedMax),
		slog.Float64("radius_mean", s.RadiusMean),
		slog.Bool("gravity", s.Gravity),
		slog.Bool("paused", s.Paused),
		slog.Float64("speed_multiplier", s.Speed),
		slog.String("render_mode", s.Mode),
	)
}
