package telemetry

import (
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/metaballs/config"
)

func TestComputeKinematics(t *testing.T) {
	tests := []struct {
		name   string
		speeds []float64
		radii  []float64
		want   Kinematics
	}{
		{"empty", nil, nil, Kinematics{}},
		{
			"single particle",
			[]float64{0.02}, []float64{0.3},
			Kinematics{SpeedMean: 0.02, SpeedMax: 0.02, RadiusMean: 0.3, RadiusMax: 0.3},
		},
		{
			"spread",
			[]float64{1, 3}, []float64{0.1, 0.2, 0.6},
			Kinematics{SpeedMean: 2, SpeedStd: 1, SpeedMax: 3, RadiusMean: 0.3, RadiusMax: 0.6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeKinematics(tt.speeds, tt.radii)
			check := func(field string, g, w float64) {
				if math.Abs(g-w) > 1e-9 {
					t.Errorf("%s = %v, want %v", field, g, w)
				}
			}
			check("SpeedMean", got.SpeedMean, tt.want.SpeedMean)
			check("SpeedStd", got.SpeedStd, tt.want.SpeedStd)
			check("SpeedMax", got.SpeedMax, tt.want.SpeedMax)
			check("RadiusMean", got.RadiusMean, tt.want.RadiusMean)
			check("RadiusMax", got.RadiusMax, tt.want.RadiusMax)
		})
	}
}

func TestCollectorFlush(t *testing.T) {
	c := NewCollector(60, 1.0/60)

	c.RecordPlaced(false)
	c.RecordPlaced(true)
	c.RecordCommitted()
	c.RecordCommand(false)
	c.RecordCommand(true)
	c.RecordPausedFrame()

	if c.ShouldFlush(59) {
		t.Error("ShouldFlush(59) true before window end")
	}
	if !c.ShouldFlush(60) {
		t.Fatal("ShouldFlush(60) false at window end")
	}

	stats := c.Flush(60, 2, []float64{0.01, 0.03}, []float64{0.2, 0.4}, Switches{Gravity: true, Speed: 0.5, Mode: "glow"})

	if stats.Placed != 2 || stats.Wraps != 1 || stats.Committed != 1 {
		t.Errorf("placement counters = %+v", stats)
	}
	if stats.Commands != 2 || stats.Resets != 1 || stats.PausedFrames != 1 {
		t.Errorf("command counters = %+v", stats)
	}
	if math.Abs(stats.ElapsedSec-1) > 1e-9 {
		t.Errorf("elapsed = %v, want 1", stats.ElapsedSec)
	}
	if math.Abs(stats.SpeedMean-0.02) > 1e-9 || math.Abs(stats.RadiusMax-0.4) > 1e-9 {
		t.Errorf("kinematics = %+v", stats)
	}
	if !stats.Gravity || stats.Speed != 0.5 || stats.Mode != "glow" {
		t.Errorf("switches = %+v", stats)
	}

	next := c.Flush(120, 2, nil, nil, Switches{})
	if next.Placed != 0 || next.Commands != 0 || next.WindowStartFrame != 60 {
		t.Errorf("counters not reset after flush: %+v", next)
	}
}

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil || om != nil {
		t.Fatalf("NewOutputManager(\"\") = %v, %v; want nil, nil", om, err)
	}
	if err := om.WriteSlots([]SlotSample{{Frame: 1}}); err != nil {
		t.Errorf("WriteSlots on nil manager: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Errorf("Close on nil manager: %v", err)
	}
}

func TestOutputManagerWritesHeaderOnce(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager error: %v", err)
	}

	for frame := int32(0); frame < 3; frame++ {
		if err := om.WriteSlots([]SlotSample{{Frame: frame, Slot: 0, X: 1, Y: 1, Radius: 0.3}}); err != nil {
			t.Fatalf("WriteSlots error: %v", err)
		}
	}
	if err := om.WriteWindow(WindowStats{WindowEndFrame: 300, Mode: "metaball"}); err != nil {
		t.Fatalf("WriteWindow error: %v", err)
	}
	if err := om.WriteConfig(config.Defaults()); err != nil {
		t.Fatalf("WriteConfig error: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "slots.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Fatalf("slots.csv has %d lines, want header + 3 rows:\n%s", len(lines), data)
	}
	if lines[0] != "frame,slot,x,y,vx,vy,radius" {
		t.Errorf("header = %q", lines[0])
	}
	if strings.Count(string(data), "frame,") != 1 {
		t.Error("header written more than once")
	}

	for _, name := range []string{"windows.csv", "perf.csv", "config.yaml"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s missing: %v", name, err)
		}
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if err := WritePNG(path, img); err != nil {
		t.Fatalf("WritePNG error: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding written PNG: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("bounds = %v, want %v", decoded.Bounds(), img.Bounds())
	}

	if err := WritePNG(filepath.Join(t.TempDir(), "missing", "frame.png"), img); err == nil {
		t.Error("WritePNG into a missing directory succeeded")
	}
}
