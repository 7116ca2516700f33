// seehuhn.de/go/pixcurve - tone curves for RGB pixel buffers
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pixcurve

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const testConfig = `
curves:
  - name: deep shadows
    points:
      - {x: 60, y: 10}
      - {x: 200, y: 240}
  - name: lift
    points:
      - {x: 100, y: 150}
`

func TestDecodeConfig(t *testing.T) {
	cfg, err := DecodeConfig([]byte(testConfig))
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Curves) != 2 {
		t.Fatalf("got %d curves, want 2", len(cfg.Curves))
	}
	want := []Point{{60, 10}, {200, 240}}
	if diff := cmp.Diff(want, cfg.Curves[0].Points); diff != "" {
		t.Errorf("points (-want +got):\n%s", diff)
	}

	r, err := cfg.Registry()
	if err != nil {
		t.Fatal(err)
	}
	sel, ok := r.Find("lift")
	if !ok || sel != 5 {
		t.Errorf("Find(lift) = %d, %t, want 5", sel, ok)
	}
	if got, _ := r.Find("mid shades"); got != Mid {
		t.Errorf("built-in curve moved to selector %d", got)
	}

	buf := []byte{100, 200, 0}
	if err := NewProcessor(r).Apply(sel, buf); err != nil {
		t.Fatal(err)
	}
	// 200 -> 150 + 100/155*105 = 217.74
	if diff := cmp.Diff([]byte{150, 218, 0}, buf); diff != "" {
		t.Errorf("apply custom curve (-want +got):\n%s", diff)
	}
}

func TestDecodeConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"syntax", "curves: [\n"},
		{"wrong type", "curves: 7\n"},
		{"out of range", "curves:\n  - name: a\n    points: [{x: 300, y: 10}]\n"},
		{"not increasing", "curves:\n  - name: a\n    points: [{x: 30, y: 10}, {x: 20, y: 10}]\n"},
		{"empty entry", "curves:\n  -\n"},
	}
	for _, tt := range tests {
		_, err := DecodeConfig([]byte(tt.yaml))
		if err == nil {
			t.Errorf("%s: no error", tt.name)
		}
	}

	_, err := DecodeConfig([]byte("curves:\n  - name: a\n    points: [{x: 0, y: 10}]\n"))
	var curveErr *InvalidCurveError
	if !errors.As(err, &curveErr) || curveErr.Name != "a" {
		t.Errorf("got %v, want InvalidCurveError for curve a", err)
	}
}

func TestConfigDuplicateName(t *testing.T) {
	cfg, err := DecodeConfig([]byte("curves:\n  - name: dark shades\n"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := cfg.Registry(); err == nil {
		t.Error("curve replacing a built-in curve accepted")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curves.yaml")
	if err := os.WriteFile(path, []byte(testConfig), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Curves) != 2 || cfg.Curves[1].Name != "lift" {
		t.Errorf("unexpected curves: %v", cfg.Curves)
	}

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v, want ErrNotExist", err)
	}
}

func TestEncodeYAMLRoundTrip(t *testing.T) {
	cfg, err := DecodeConfig([]byte(testConfig))
	if err != nil {
		t.Fatal(err)
	}
	r1, err := cfg.Registry()
	if err != nil {
		t.Fatal(err)
	}

	data, err := r1.EncodeYAML()
	if err != nil {
		t.Fatal(err)
	}
	cfg2, err := DecodeConfig(data)
	if err != nil {
		t.Fatalf("decoding %q: %v", data, err)
	}
	r2, err := NewRegistry(cfg2.Curves...)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(r1.List(), r2.List()); diff != "" {
		t.Errorf("curve list (-want +got):\n%s", diff)
	}
	for _, info := range r1.List() {
		c1, _ := r1.Lookup(info.Selector)
		c2, _ := r2.Lookup(info.Selector)
		if diff := cmp.Diff(c1.Points, c2.Points); diff != "" {
			t.Errorf("%s: points (-want +got):\n%s", info.Name, diff)
		}
	}
}
