package calibration

import (
	"context"
	"runtime"
	"sync"

	"github.com/pkg/errors"
)

// LineValue calibrates one line of a document.
func (c *Calibrator) LineValue(number int, line string) *LineResult {
	result := &LineResult{Number: number, Text: line}

	first, ok := c.First(line)
	if !ok {
		result.Err = ErrNoValue
		return result
	}
	last, ok := c.Last(line)
	if !ok {
		result.Err = ErrNoValue
		return result
	}

	result.First = first
	result.Last = last
	result.Value = first*10 + last
	return result
}

// Calibrate computes the value of every line and sums them.
//
// Lines are scanned by up to concurrency goroutines, runtime.NumCPU() when
// concurrency is not positive. A line without value fails the whole document
// unless skipInvalid is set, in which case it is recorded and left out of the
// total. The context is checked before each line.
func (c *Calibrator) Calibrate(ctx context.Context, lines []string, concurrency int, skipInvalid bool) (*Report, error) {
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}

	results := make([]*LineResult, len(lines))
	var wg sync.WaitGroup
	sem := make(chan struct{}, concurrency)

	for i := range lines {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(index int) {
			defer wg.Done()
			defer func() { <-sem }()
			if ctx.Err() != nil {
				return
			}
			results[index] = c.LineValue(index+1, lines[index])
		}(i)
	}
	wg.Wait()
	close(sem)

	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "calibration interrupted")
	}

	report := &Report{Mode: c.mode, Results: results}
	for _, result := range results {
		if result.Skipped() {
			if !skipInvalid {
				return nil, errors.Wrapf(result.Err, "line %d %q", result.Number, result.Text)
			}
			c.logger.Warn("skipping line", "number", result.Number, "line", result.Text)
			report.Skipped++
			continue
		}
		report.Total += result.Value
	}

	c.logger.Debug("document calibrated",
		"mode", c.mode,
		"lines", len(lines),
		"total", report.Total,
		"skipped", report.Skipped)
	return report, nil
}
