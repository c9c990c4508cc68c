// Package progressbar implements functionality of printing a progress
// bar to the terminal window
package progressbar

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gosuri/uilive"
)

// ProgressBar implements a progress bar that must be manually managed.
// Each time an iteration is performed Increment should be called, and
// the bar is redrawn in place every displayEvery increments.
//
// ProgressBar does not use concurrency and is not safe for concurrent
// use.
type ProgressBar struct {
	width           float64
	maxProgress     float64
	currentProgress float64
	displayEvery    int
	status          string

	bar       strings.Builder
	startTime time.Time
	writer    *uilive.Writer
}

// New returns a new ProgressBar which is width characters wide,
// reaches 100% after max calls to Increment, and is redrawn on out
// every displayEvery calls to Increment. If displayEvery is not
// positive, the bar is only drawn by calls to Display.
func New(out io.Writer, width, max, displayEvery int) *ProgressBar {
	writer := uilive.New()
	writer.Out = out

	return &ProgressBar{
		width:        float64(width),
		maxProgress:  float64(max),
		displayEvery: displayEvery,
		startTime:    time.Now(),
		writer:       writer,
	}
}

// Increment increments the internal progress counter
func (p *ProgressBar) Increment() error {
	if p.currentProgress < p.maxProgress {
		p.currentProgress++
	}

	if p.displayEvery > 0 && int(p.currentProgress)%p.displayEvery == 0 {
		return p.Display()
	}
	return nil
}

// SetStatus sets a message displayed after the bar
func (p *ProgressBar) SetStatus(status string) {
	p.status = status
}

// Progress returns the fraction of the bar that is complete
func (p *ProgressBar) Progress() float64 {
	if p.maxProgress == 0 {
		return 1
	}
	return p.currentProgress / p.maxProgress
}

// Display redraws the progress bar
func (p *ProgressBar) Display() error {
	fmt.Fprintln(p.writer, p.String())
	return p.writer.Flush()
}

// Close draws the progress bar a final time
func (p *ProgressBar) Close() error {
	return p.Display()
}

// String returns the progress bar as a string
func (p *ProgressBar) String() string {
	p.bar.Reset()
	p.bar.WriteString("|")

	currentProg := p.Progress() * p.width
	for i := 0.0; i < currentProg; i++ {
		p.bar.WriteString("█")
	}
	for i := currentProg; i < p.width; i++ {
		p.bar.WriteString(" ")
	}
	p.bar.WriteString(fmt.Sprintf("| [%.2f%v | elapsed: %v]",
		p.Progress()*100, "%", time.Since(p.startTime).Truncate(time.Second)))

	if p.status != "" {
		p.bar.WriteString(" " + p.status)
	}
	return p.bar.String()
}
