// internal/defs/waves.go
package defs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrMalformedRecord is returned for a wave script line that cannot be parsed.
	ErrMalformedRecord = errors.New("malformed wave record")
	// ErrInvalidWave is returned for a record whose values are out of range.
	ErrInvalidWave = errors.New("invalid wave record")
)

// MaxWave is the highest wave number a script may use.
const MaxWave = 1000

// EventKind tags a wave record.
type EventKind int

const (
	EventDelay EventKind = iota
	EventSpawn
)

func (k EventKind) String() string {
	if k == EventDelay {
		return "delay"
	}
	return "spawn"
}

// WaveRecord is one line of a wave script:
//
//	1,delay,1000
//	1,spawn,5,slicer,1000
type WaveRecord struct {
	Wave       int
	Kind       EventKind
	DurationMs float64 // delay only
	Count      int     // spawn only
	SlicerTag  string  // spawn only
	IntervalMs float64 // spawn only
}

// SlicerType resolves the record's tag.
func (r WaveRecord) SlicerType() SlicerType {
	return SlicerTypeFromTag(r.SlicerTag)
}

// Validate checks a record that was built in code rather than parsed.
func (r WaveRecord) Validate() error {
	if r.Wave < 1 {
		return fmt.Errorf("%w: wave number %d must be at least 1", ErrInvalidWave, r.Wave)
	}
	if r.Wave > MaxWave {
		return fmt.Errorf("%w: wave number %d above %d", ErrInvalidWave, r.Wave, MaxWave)
	}
	switch r.Kind {
	case EventDelay:
		if !finite(r.DurationMs) {
			return fmt.Errorf("%w: delay %v is not a number of milliseconds", ErrInvalidWave, r.DurationMs)
		}
		if r.DurationMs < 0 {
			return fmt.Errorf("%w: negative delay %v", ErrInvalidWave, r.DurationMs)
		}
	case EventSpawn:
		if r.Count < 0 {
			return fmt.Errorf("%w: negative spawn count %d", ErrInvalidWave, r.Count)
		}
		if !finite(r.IntervalMs) {
			return fmt.Errorf("%w: spawn interval %v is not a number of milliseconds", ErrInvalidWave, r.IntervalMs)
		}
		if r.IntervalMs < 0 {
			return fmt.Errorf("%w: negative spawn interval %v", ErrInvalidWave, r.IntervalMs)
		}
	default:
		return fmt.Errorf("%w: unknown event kind %d", ErrInvalidWave, r.Kind)
	}
	return nil
}

// finite отсекает NaN и Inf, которые пропускает strconv.ParseFloat.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ParseWaveScript reads the comma separated wave script format. Blank lines
// and lines starting with '#' are skipped. Any malformed line fails the whole
// script.
func ParseWaveScript(r io.Reader) ([]WaveRecord, error) {
	var records []WaveRecord
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rec, err := parseWaveLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read wave script: %w", err)
	}
	return records, nil
}

func parseWaveLine(line string) (WaveRecord, error) {
	fields := strings.Split(line, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	if len(fields) < 3 {
		return WaveRecord{}, fmt.Errorf("%w: %q", ErrMalformedRecord, line)
	}

	wave, err := strconv.Atoi(fields[0])
	if err != nil {
		return WaveRecord{}, fmt.Errorf("%w: wave number %q", ErrMalformedRecord, fields[0])
	}

	var rec WaveRecord
	switch strings.ToLower(fields[1]) {
	case "delay":
		if len(fields) != 3 {
			return WaveRecord{}, fmt.Errorf("%w: delay wants 3 fields, got %d", ErrMalformedRecord, len(fields))
		}
		d, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return WaveRecord{}, fmt.Errorf("%w: delay %q", ErrMalformedRecord, fields[2])
		}
		rec = WaveRecord{Wave: wave, Kind: EventDelay, DurationMs: d}
	case "spawn":
		if len(fields) != 5 {
			return WaveRecord{}, fmt.Errorf("%w: spawn wants 5 fields, got %d", ErrMalformedRecord, len(fields))
		}
		count, err := strconv.Atoi(fields[2])
		if err != nil {
			return WaveRecord{}, fmt.Errorf("%w: spawn count %q", ErrMalformedRecord, fields[2])
		}
		interval, err := strconv.ParseFloat(fields[4], 64)
		if err != nil {
			return WaveRecord{}, fmt.Errorf("%w: spawn interval %q", ErrMalformedRecord, fields[4])
		}
		rec = WaveRecord{Wave: wave, Kind: EventSpawn, Count: count, SlicerTag: fields[3], IntervalMs: interval}
	default:
		return WaveRecord{}, fmt.Errorf("%w: unknown event %q", ErrMalformedRecord, fields[1])
	}

	if err := rec.Validate(); err != nil {
		return WaveRecord{}, err
	}
	return rec, nil
}
