// Package trace writes control cycles to disk for offline analysis.
package trace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/xid"
	"github.com/tebeka/atexit"
	"pfeifer.dev/controlsd/controls"
	"pfeifer.dev/controlsd/cruise"
)

const HEADER = "frame,v_ego,regen,cruise_enabled,buttons,enabled,v_cruise,button_count,long_pressed," +
	"desired_curvature,desired_curvature_rate,max_curvature_rate,steer_max,plan_valid\n"

// CSVCycleWriter buffers control cycles and writes them as CSV rows.
type CSVCycleWriter struct {
	dir  string
	path string
	file *os.File

	cycles     []controls.Cycle
	bufferSize int
}

func NewCSVCycleWriter(dir string) *CSVCycleWriter {
	return &CSVCycleWriter{
		dir:        dir,
		bufferSize: 1000,
	}
}

// Init creates a uniquely named trace file in the writer's directory and
// registers the final flush to run at exit.
func (t *CSVCycleWriter) Init() error {
	err := os.MkdirAll(t.dir, 0o775)
	if err != nil {
		return errors.Wrap(err, "could not create trace directory")
	}

	t.path = filepath.Join(t.dir, "controlsd_trace_"+xid.New().String()+".csv")
	file, err := os.OpenFile(t.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o664)
	if err != nil {
		return errors.Wrapf(err, "could not create trace file %s", t.path)
	}
	err = t.start(file)
	if err != nil {
		os.Remove(t.path)
		return err
	}

	atexit.Register(func() {
		if err := t.Close(); err != nil {
			fmt.Fprintln(os.Stderr, "could not close trace:", err)
		}
	})
	return nil
}

// start writes the header and takes ownership of file. The file is closed
// when the header cannot be written.
func (t *CSVCycleWriter) start(file *os.File) error {
	_, err := file.WriteString(HEADER)
	if err != nil {
		file.Close()
		return errors.Wrap(err, "could not write trace header")
	}
	t.file = file
	return nil
}

func (t *CSVCycleWriter) Path() string {
	return t.path
}

func (t *CSVCycleWriter) Record(cycle controls.Cycle) error {
	t.cycles = append(t.cycles, cycle)
	if len(t.cycles) >= t.bufferSize {
		return t.Flush()
	}
	return nil
}

// Flush writes the buffered cycles. The buffer is emptied even when a write
// fails so no row is written twice.
func (t *CSVCycleWriter) Flush() error {
	if t.file == nil {
		return errors.New("trace is not open")
	}
	cycles := t.cycles
	t.cycles = nil
	for _, c := range cycles {
		_, err := fmt.Fprintf(t.file, "%d,%.4f,%t,%t,%s,%t,%.4f,%d,%t,%.8f,%.8f,%.8f,%.4f,%t\n",
			c.Frame,
			c.Input.VEgo,
			c.Input.Regen,
			c.Input.CruiseEnabled,
			formatEvents(c.Input.Events),
			c.Output.Enabled,
			c.Output.VCruise,
			c.Output.ButtonCount,
			c.Output.LongPressed,
			c.Output.DesiredCurvature,
			c.Output.DesiredCurvatureRate,
			c.Output.MaxCurvatureRate,
			c.Output.SteerMax,
			c.Output.PlanValid,
		)
		if err != nil {
			return errors.Wrapf(err, "could not write trace row for frame %d", c.Frame)
		}
	}
	return nil
}

// Close flushes and closes the file. The file is closed even when the flush
// fails. Closing twice is a no-op.
func (t *CSVCycleWriter) Close() error {
	if t.file == nil {
		return nil
	}
	flushErr := t.Flush()
	err := t.file.Close()
	t.file = nil
	if flushErr != nil {
		return flushErr
	}
	if err != nil {
		return errors.Wrap(err, "could not close trace file")
	}
	return nil
}

// formatEvents renders events as type+ for presses and type- for releases.
func formatEvents(events []cruise.ButtonEvent) string {
	parts := make([]string, len(events))
	for i, e := range events {
		if e.Pressed {
			parts[i] = e.Type.String() + "+"
		} else {
			parts[i] = e.Type.String() + "-"
		}
	}
	return strings.Join(parts, ";")
}
