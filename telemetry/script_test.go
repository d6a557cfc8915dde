package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadScript(t *testing.T) {
	src := `frame,kind,x,y,command
2,press,320,320,
0,command,0,0,gravity
1,move,420,320,
1,release,420,320,
`
	s, err := LoadScript(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadScript error: %v", err)
	}

	rows := s.Rows()
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want 4", len(rows))
	}
	wantKinds := []string{RowCommand, RowMove, RowRelease, RowPress}
	for i, want := range wantKinds {
		if rows[i].Kind != want {
			t.Errorf("rows[%d].Kind = %q, want %q", i, rows[i].Kind, want)
		}
	}
	if rows[0].Command != "gravity" {
		t.Errorf("command = %q, want gravity", rows[0].Command)
	}
	if rows[1].X != 420 || rows[1].Y != 320 {
		t.Errorf("move at (%v, %v), want (420, 320)", rows[1].X, rows[1].Y)
	}
	if s.LastFrame() != 2 {
		t.Errorf("LastFrame() = %d, want 2", s.LastFrame())
	}
}

func TestLoadScriptRejects(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{"unknown kind", "frame,kind,x,y,command\n0,drag,1,1,\n", "unknown kind"},
		{"empty command", "frame,kind,x,y,command\n0,command,0,0,\n", "without command"},
		{"negative frame", "frame,kind,x,y,command\n-1,move,0,0,\n", "negative frame"},
		{"bad number", "frame,kind,x,y,command\nzero,move,0,0,\n", "decoding script"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScript(strings.NewReader(tt.src))
			if err == nil {
				t.Fatal("LoadScript succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadScriptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.csv")
	if err := os.WriteFile(path, []byte("frame,kind,x,y,command\n"), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadScriptFile(path)
	if err != nil {
		t.Fatalf("LoadScriptFile error: %v", err)
	}
	if s.LastFrame() != -1 {
		t.Errorf("empty script LastFrame() = %d, want -1", s.LastFrame())
	}

	if _, err := LoadScriptFile(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Error("missing script loaded without error")
	}
}
