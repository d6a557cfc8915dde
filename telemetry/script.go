package telemetry

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/gocarina/gocsv"
)

// Script row kinds. Pointer kinds carry x/y in window pixels; command rows
// carry a command name.
const (
	RowMove    = "move"
	RowPress   = "press"
	RowRelease = "release"
	RowCommand = "command"
)

// ScriptRow is one scripted input.
type ScriptRow struct {
	Frame   int32   `csv:"frame"`
	Kind    string  `csv:"kind"`
	X       float32 `csv:"x"`
	Y       float32 `csv:"y"`
	Command string  `csv:"command"`
}

// Script is an input script ordered by frame. Rows sharing a frame keep
// their file order.
type Script struct {
	rows []ScriptRow
}

// LoadScript decodes a CSV script with header frame,kind,x,y,command.
func LoadScript(r io.Reader) (*Script, error) {
	var rows []ScriptRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("decoding script: %w", err)
	}

	for i, row := range rows {
		line := i + 2 // header is line 1
		if row.Frame < 0 {
			return nil, fmt.Errorf("script line %d: negative frame %d", line, row.Frame)
		}
		switch row.Kind {
		case RowMove, RowPress, RowRelease:
		case RowCommand:
			if row.Command == "" {
				return nil, fmt.Errorf("script line %d: command row without command", line)
			}
		default:
			return nil, fmt.Errorf("script line %d: unknown kind %q", line, row.Kind)
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Frame < rows[j].Frame
	})
	return &Script{rows: rows}, nil
}

// LoadScriptFile opens path and decodes it with LoadScript.
func LoadScriptFile(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening script: %w", err)
	}
	defer f.Close()

	s, err := LoadScript(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Rows returns the rows in frame order.
func (s *Script) Rows() []ScriptRow {
	return s.rows
}

// LastFrame returns the frame of the final row, or -1 for an empty script.
func (s *Script) LastFrame() int32 {
	if len(s.rows) == 0 {
		return -1
	}
	return s.rows[len(s.rows)-1].Frame
}
