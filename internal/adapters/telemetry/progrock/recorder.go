// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/sde/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements the ports.Telemetry interface using the progrock library.
type Recorder struct {
	w    progrock.Writer
	rec  *progrock.Recorder
	tape *progrock.Tape
}

// New creates a new Recorder with a default tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a new Recorder with the given writer.
// Only a *progrock.Tape writer can be reported on.
func NewRecorder(w progrock.Writer) *Recorder {
	tape, _ := w.(*progrock.Tape)
	return &Recorder{
		w:    w,
		rec:  progrock.NewRecorder(w),
		tape: tape,
	}
}

// Record starts recording a new vertex. Vertices are addressed by the digest of
// their name, so repeated lookups of the same identity share a vertex.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	d := digest.FromString(name)
	v := r.rec.Vertex(d, name)
	return ctx, &Vertex{vertex: v}
}

// Report writes one line per recorded vertex followed by a totals line.
func (r *Recorder) Report(w io.Writer) error {
	if r.tape == nil {
		return nil
	}

	var hits, misses, failed int
	for _, vtx := range r.tape.Vertices() {
		status := "miss"
		switch {
		case vtx.GetError() != "":
			status = "fail"
			failed++
		case vtx.GetCached():
			status = "hit"
			hits++
		case vtx.GetCompleted() == nil:
			status = "open"
		default:
			misses++
		}

		line := fmt.Sprintf("%-4s %s", status, vtx.GetName())
		if started, completed := vtx.GetStarted(), vtx.GetCompleted(); started != nil && completed != nil {
			elapsed := completed.AsTime().Sub(started.AsTime()).Round(time.Millisecond)
			line += fmt.Sprintf(" (%s)", elapsed)
		}
		if msg := vtx.GetError(); msg != "" {
			line += ": " + msg
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "cache: %d hit, %d miss, %d failed\n", hits, misses, failed)
	return err
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
