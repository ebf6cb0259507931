package net

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

// CSVLogger streams the error curve as CSV records to a writer.
type CSVLogger struct {
	BaseCallback

	writer *csv.Writer
	start  time.Time
	err    error
}

// NewCSVLogger creates a new CSVLogger writing to w.
func NewCSVLogger(w io.Writer) *CSVLogger {
	return &CSVLogger{writer: csv.NewWriter(w)}
}

func (c *CSVLogger) OnTrainBegin(n *Network) {
	c.start = time.Now()
	c.write([]string{"step", "epoch", "error", "time_seconds"})
}

func (c *CSVLogger) OnStep(res StepResult, n *Network) {
	c.write([]string{
		strconv.Itoa(res.StepIndex),
		strconv.Itoa(res.Epoch),
		fmt.Sprintf("%.6f", res.MeanError),
		fmt.Sprintf("%.2f", time.Since(c.start).Seconds()),
	})
}

func (c *CSVLogger) OnTrainEnd(reason StopReason, n *Network) {
	c.writer.Flush()
	if err := c.writer.Error(); err != nil && c.err == nil {
		c.err = err
	}
}

func (c *CSVLogger) write(record []string) {
	if c.err != nil {
		return
	}
	if err := c.writer.Write(record); err != nil {
		c.err = err
		fmt.Printf("CSVLogger: failed to write record: %v\n", err)
		return
	}
	c.writer.Flush()
	if err := c.writer.Error(); err != nil {
		c.err = err
		fmt.Printf("CSVLogger: failed to flush: %v\n", err)
	}
}

// Err returns the first write error, if any.
func (c *CSVLogger) Err() error {
	return c.err
}
