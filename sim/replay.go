package sim

import (
	"fmt"

	"github.com/pthm-cable/metaballs/interaction"
	"github.com/pthm-cable/metaballs/telemetry"
)

// Replay turns a telemetry script into per-frame Input.
type Replay struct {
	frames map[int32]Input
	last   int32
}

// NewReplay converts every script row up front so a bad command name fails
// before the run starts.
func NewReplay(script *telemetry.Script) (*Replay, error) {
	r := &Replay{frames: make(map[int32]Input), last: script.LastFrame()}

	for _, row := range script.Rows() {
		in := r.frames[row.Frame]
		switch row.Kind {
		case telemetry.RowCommand:
			cmd, err := interaction.ParseCommand(row.Command)
			if err != nil {
				return nil, fmt.Errorf("frame %d: %w", row.Frame, err)
			}
			in.Commands = append(in.Commands, cmd)
		case telemetry.RowMove:
			in.Pointer = append(in.Pointer, interaction.Move(row.X, row.Y))
		case telemetry.RowPress:
			in.Pointer = append(in.Pointer, interaction.Press(row.X, row.Y))
		case telemetry.RowRelease:
			in.Pointer = append(in.Pointer, interaction.Release(row.X, row.Y))
		default:
			return nil, fmt.Errorf("frame %d: unknown kind %q", row.Frame, row.Kind)
		}
		r.frames[row.Frame] = in
	}
	return r, nil
}

// At returns the input scheduled for frame.
func (r *Replay) At(frame int32) Input {
	if r == nil {
		return Input{}
	}
	return r.frames[frame]
}

// LastFrame returns the last frame with scripted input, or -1.
func (r *Replay) LastFrame() int32 {
	if r == nil {
		return -1
	}
	return r.last
}

// Run advances s by frames frames with a fixed time step, feeding the input
// scheduled for each of s's frame numbers, and returns the summed report.
func (r *Replay) Run(s *State, frames int, dt float32) Report {
	var total Report
	for i := 0; i < frames; i++ {
		frame := s.FrameCount()
		_, rep := s.Frame(r.At(frame), float32(frame)*dt)
		total.add(rep)
	}
	return total
}

func (r *Report) add(o Report) {
	r.Placed += o.Placed
	r.Wrapped += o.Wrapped
	r.Committed += o.Committed
	r.Commands += o.Commands
	r.Resets += o.Resets
	r.Paused = o.Paused
}
