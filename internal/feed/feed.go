// Package feed turns a line-oriented stream of readings into gauge updates.
//
// Each line is one reading: a bare number is a quantity ("42", "12.5") and a
// number with a trailing percent sign is a percentage ("42%"). Blank lines
// and lines starting with '#' are skipped.
package feed

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rileyhilliard/thermo/internal/errors"
	"github.com/rileyhilliard/thermo/internal/logger"
)

// Kind says which fill operation a reading drives.
type Kind int

const (
	KindQuantity Kind = iota
	KindPercent
)

func (k Kind) String() string {
	if k == KindPercent {
		return "percent"
	}
	return "quantity"
}

// Reading is one parsed value.
type Reading struct {
	Kind  Kind
	Value float64
}

func (r Reading) String() string {
	v := strconv.FormatFloat(r.Value, 'f', -1, 64)
	if r.Kind == KindPercent {
		return v + "%"
	}
	return v
}

// Filler is the part of a gauge a reading is applied to.
type Filler interface {
	FillByQuantity(num float64)
	FillByPercent(pct float64)
}

// Apply pushes the reading into f.
func (r Reading) Apply(f Filler) {
	if r.Kind == KindPercent {
		f.FillByPercent(r.Value)
		return
	}
	f.FillByQuantity(r.Value)
}

// ErrSkip is returned by Parse for blank and comment lines.
var ErrSkip = stderrors.New("feed: nothing to read on this line")

// Parse reads one line.
func Parse(line string) (Reading, error) {
	s := strings.TrimSpace(line)
	if s == "" || strings.HasPrefix(s, "#") {
		return Reading{}, ErrSkip
	}

	kind := KindQuantity
	if strings.HasSuffix(s, "%") {
		kind = KindPercent
		s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Reading{}, errors.WrapWithCode(err, errors.ErrInput,
			fmt.Sprintf("Can't read %q as a gauge value", strings.TrimSpace(line)),
			"Use a number like 42 for a quantity or 42% for a percentage")
	}
	return Reading{Kind: kind, Value: v}, nil
}

// Sink receives readings from Stream.
type Sink interface {
	Reading(r Reading)
	Done(err error)
}

// Stream reads lines from r until EOF or ctx is cancelled, forwarding every
// parsed reading to sink. Malformed lines are logged and skipped. Done is
// always called exactly once with the terminating error (nil on EOF).
func Stream(ctx context.Context, r io.Reader, sink Sink, log logger.Logger) error {
	if log == nil {
		log = logger.Noop()
	}

	err := scan(ctx, r, sink, log)
	sink.Done(err)
	return err
}

func scan(ctx context.Context, r io.Reader, sink Sink, log logger.Logger) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		lineNo++

		reading, err := Parse(scanner.Text())
		if stderrors.Is(err, ErrSkip) {
			continue
		}
		if err != nil {
			log.Warn("line %d: skipping %q", lineNo, scanner.Text())
			continue
		}
		log.Debug("line %d: %s", lineNo, reading)
		sink.Reading(reading)
	}
	if err := scanner.Err(); err != nil {
		return errors.WrapWithCode(err, errors.ErrInput,
			"Failed to read gauge values",
			"Check the input file or pipe")
	}
	return ctx.Err()
}
