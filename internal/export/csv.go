package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/okian/matchtag/internal/domain/model"
)

// CSVHeader is the column order of CSV exports.
var CSVHeader = []string{
	"id", "minute", "second", "time_in_second", "team", "event_type",
	"cross_outcome", "shot_outcome", "zone", "created_at",
}

// CSV renders events with a header row in ledger order.
func (e *Exporter) CSV(events []model.Event) ([]byte, error) {
	if len(events) == 0 {
		return nil, ErrEmptyLedger
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(CSVHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, ev := range events {
		if err := w.Write(csvRecord(ev)); err != nil {
			return nil, fmt.Errorf("write csv row %d: %w", ev.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func csvRecord(ev model.Event) []string {
	rec := []string{
		strconv.Itoa(ev.ID),
		formatNumber(ev.Minute),
		formatNumber(ev.Second),
		formatNumber(ev.TimeInSecond),
		string(ev.Team),
		ev.EventType,
		"",
		"",
		"",
		ev.CreatedAt.Format(time.RFC3339Nano),
	}
	if ev.CrossOutcome != nil {
		rec[6] = string(*ev.CrossOutcome)
	}
	if ev.ShotOutcome != nil {
		rec[7] = string(*ev.ShotOutcome)
	}
	if ev.Zone != nil {
		rec[8] = strconv.Itoa(*ev.Zone)
	}
	return rec
}

// ParseCSV reads a CSV export back into events. Empty optional cells become nil.
func ParseCSV(r io.Reader) ([]model.Event, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(CSVHeader)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrMalformed, err)
	}
	for i, col := range CSVHeader {
		if header[i] != col {
			return nil, fmt.Errorf("%w: column %d is %q, want %q", ErrMalformed, i, header[i], col)
		}
	}

	var events []model.Event
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		ev, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformed, line, err)
		}
		events = append(events, ev)
	}
	return events, nil
}

func parseRecord(rec []string) (model.Event, error) {
	var (
		ev  model.Event
		err error
	)
	if ev.ID, err = strconv.Atoi(rec[0]); err != nil {
		return ev, fmt.Errorf("id: %w", err)
	}
	if ev.Minute, err = strconv.ParseFloat(rec[1], 64); err != nil {
		return ev, fmt.Errorf("minute: %w", err)
	}
	if ev.Second, err = strconv.ParseFloat(rec[2], 64); err != nil {
		return ev, fmt.Errorf("second: %w", err)
	}
	if ev.TimeInSecond, err = strconv.ParseFloat(rec[3], 64); err != nil {
		return ev, fmt.Errorf("time_in_second: %w", err)
	}
	ev.Team = model.Team(rec[4])
	ev.EventType = rec[5]
	if rec[6] != "" {
		ev.CrossOutcome = model.Ptr(model.CrossOutcome(rec[6]))
	}
	if rec[7] != "" {
		ev.ShotOutcome = model.Ptr(model.ShotOutcome(rec[7]))
	}
	if rec[8] != "" {
		zone, err := strconv.Atoi(rec[8])
		if err != nil {
			return ev, fmt.Errorf("zone: %w", err)
		}
		ev.Zone = &zone
	}
	if ev.CreatedAt, err = time.Parse(time.RFC3339Nano, rec[9]); err != nil {
		return ev, fmt.Errorf("created_at: %w", err)
	}
	return ev, nil
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
