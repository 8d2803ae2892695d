// Package ppm writes images in the ASCII "plain" portable pixmap format:
//
//	P3
//	<width> <height>
//	255
//	<r> <g> <b>
//	...
//
// with one pixel per line in the order they are written.
package ppm

import (
	"bufio"
	"io"
	"math"
	"strconv"

	"github.com/df07/go-gradient-raytracer/pkg/core"
)

// MaxValue is the largest channel value declared in the header
const MaxValue = 255

// channelScale maps [0, 1) onto the 256 integer levels under truncation
const channelScale = 255.999

// Writer encodes pixels to an underlying stream
type Writer struct {
	w      *bufio.Writer
	buf    []byte
	pixels int
}

// NewWriter creates a Writer buffering output to w. Call Flush when done.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w:   bufio.NewWriter(w),
		buf: make([]byte, 0, 16),
	}
}

// WriteHeader writes the magic number, the dimensions and the max value
func (pw *Writer) WriteHeader(width, height int) error {
	b := pw.buf[:0]
	b = append(b, "P3\n"...)
	b = strconv.AppendInt(b, int64(width), 10)
	b = append(b, ' ')
	b = strconv.AppendInt(b, int64(height), 10)
	b = append(b, '\n')
	b = strconv.AppendInt(b, MaxValue, 10)
	b = append(b, '\n')
	pw.buf = b
	_, err := pw.w.Write(b)
	return err
}

// WritePixel quantizes c and writes it as one "r g b" line
func (pw *Writer) WritePixel(c core.Color) error {
	b := pw.buf[:0]
	b = strconv.AppendUint(b, uint64(Quantize(c.X)), 10)
	b = append(b, ' ')
	b = strconv.AppendUint(b, uint64(Quantize(c.Y)), 10)
	b = append(b, ' ')
	b = strconv.AppendUint(b, uint64(Quantize(c.Z)), 10)
	b = append(b, '\n')
	pw.buf = b
	if _, err := pw.w.Write(b); err != nil {
		return err
	}
	pw.pixels++
	return nil
}

// Flush writes any buffered data to the underlying stream
func (pw *Writer) Flush() error {
	return pw.w.Flush()
}

// Pixels returns the number of pixel lines written so far
func (pw *Writer) Pixels() int {
	return pw.pixels
}

// Quantize converts a color component to an 8-bit channel by truncating
// 255.999*x toward zero. Components are not clamped to [0, 1] first; the
// float-to-byte conversion itself saturates: NaN and negatives become 0,
// anything at or above 255 becomes 255.
func Quantize(x float64) uint8 {
	scaled := channelScale * x
	switch {
	case math.IsNaN(scaled) || scaled <= 0:
		return 0
	case scaled >= MaxValue:
		return MaxValue
	}
	return uint8(scaled)
}
