package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/progress"
	"github.com/mattn/go-isatty"
)

// progressRenderer displays staged operation progress. Live rendering is
// used on a terminal, plain log lines everywhere else so piped output stays
// readable.
type progressRenderer interface {
	update(label string, percent float64)
	finish(message string)
}

func newProgressRenderer(out io.Writer, title string) progressRenderer {
	if shouldRenderLive(out) {
		return newLiveRenderer(out, title)
	}
	return &plainRenderer{out: out}
}

func shouldRenderLive(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

type liveRenderer struct {
	writer  progress.Writer
	tracker *progress.Tracker
}

func newLiveRenderer(out io.Writer, title string) *liveRenderer {
	pw := progress.NewWriter()
	pw.SetOutputWriter(out)
	pw.SetTrackerLength(30)
	pw.SetUpdateFrequency(50 * time.Millisecond)
	pw.SetStyle(progress.StyleBlocks)
	pw.Style().Visibility.ETA = false
	pw.Style().Visibility.Time = false

	tracker := &progress.Tracker{Message: title, Total: 100}
	pw.AppendTracker(tracker)
	go pw.Render()

	return &liveRenderer{writer: pw, tracker: tracker}
}

func (r *liveRenderer) update(label string, percent float64) {
	if label != "" {
		r.tracker.UpdateMessage(label)
	}
	r.tracker.SetValue(int64(percent))
}

func (r *liveRenderer) finish(message string) {
	if message != "" {
		r.tracker.UpdateMessage(message)
	}
	r.tracker.MarkAsDone()
	r.writer.Stop()
	for r.writer.IsRenderInProgress() {
		time.Sleep(10 * time.Millisecond)
	}
}

type plainRenderer struct {
	out       io.Writer
	lastLabel string
}

func (r *plainRenderer) update(label string, percent float64) {
	if label != "" && label != r.lastLabel {
		r.lastLabel = label
		fmt.Fprintf(r.out, "%s\n", label)
	}
	fmt.Fprintf(r.out, "  %3.0f%%\n", percent)
}

func (r *plainRenderer) finish(message string) {
	if message != "" {
		fmt.Fprintln(r.out, message)
	}
}
