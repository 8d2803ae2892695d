package ppm

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/df07/go-gradient-raytracer/pkg/core"
)

func TestQuantize(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected uint8
	}{
		{"zero", 0, 0},
		{"one", 1, 255},
		{"half truncates", 0.5, 127},
		{"sky green", 0.7, 179},
		{"below first level", 0.001, 0},
		{"first level", 0.004, 1},
		{"negative saturates low", -0.25, 0},
		{"above one saturates high", 1.5, 255},
		{"positive infinity", math.Inf(1), 255},
		{"negative infinity", math.Inf(-1), 0},
		{"NaN", math.NaN(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Quantize(tt.input); got != tt.expected {
				t.Errorf("Quantize(%v): expected %d, got %d", tt.input, tt.expected, got)
			}
		})
	}
}

func TestWriter_Format(t *testing.T) {
	var out bytes.Buffer
	w := NewWriter(&out)

	if err := w.WriteHeader(3, 2); err != nil {
		t.Fatalf("WriteHeader failed: %v", err)
	}
	pixels := []core.Color{
		core.NewVec3(1, 1, 1),
		core.NewVec3(0.5, 0.7, 1.0),
		core.NewVec3(0, 0, 0),
	}
	for _, p := range pixels {
		if err := w.WritePixel(p); err != nil {
			t.Fatalf("WritePixel failed: %v", err)
		}
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	expected := "P3\n3 2\n255\n255 255 255\n127 179 255\n0 0 0\n"
	if out.String() != expected {
		t.Errorf("Expected output %q, got %q", expected, out.String())
	}
	if w.Pixels() != len(pixels) {
		t.Errorf("Expected %d pixels counted, got %d", len(pixels), w.Pixels())
	}
}

func TestWriter_BuffersUntilFlush(t *testing.T) {
	var out bytes.Buffer
	w := NewWriter(&out)

	if err := w.WriteHeader(1, 1); err != nil {
		t.Fatalf("WriteHeader failed: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("Expected nothing written before Flush, got %q", out.String())
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	if out.String() != "P3\n1 1\n255\n" {
		t.Errorf("Unexpected header %q", out.String())
	}
}

type failingWriter struct{}

var errDiskFull = errors.New("disk full")

func (failingWriter) Write(p []byte) (int, error) { return 0, errDiskFull }

func TestWriter_PropagatesErrors(t *testing.T) {
	w := NewWriter(failingWriter{})
	if err := w.WriteHeader(1, 1); err != nil {
		t.Fatalf("Header should still fit in the buffer, got %v", err)
	}
	if err := w.Flush(); !errors.Is(err, errDiskFull) {
		t.Errorf("Expected %v from Flush, got %v", errDiskFull, err)
	}
}
