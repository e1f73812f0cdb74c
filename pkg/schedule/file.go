package schedule

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/zusitools/fahrplangen/pkg/config"
	"golang.org/x/net/html/charset"
)

// csvEntry is one row of a schedule in CSV form. Empty cells mean "not set".
type csvEntry struct {
	Betriebsstelle string `csv:"betriebsstelle"`
	DrivingTime    string `csv:"driving_time"`
	StopTime       string `csv:"stop_time"`
	TimeFix        string `csv:"time_fix"`
}

func isCSV(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".csv")
}

// ReadFile reads a schedule from XML, or from CSV when path ends in .csv.
func ReadFile(path string) (*Schedule, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schedule %s: %w", path, err)
	}

	var schedule *Schedule
	if isCSV(path) {
		schedule, err = parseCSV(content)
	} else {
		schedule, err = parseXML(content)
	}
	if err != nil {
		return nil, fmt.Errorf("schedule %s: %w", path, err)
	}

	return schedule, nil
}

func WriteFile(path string, schedule *Schedule) error {
	var content []byte
	var err error
	if isCSV(path) {
		content, err = marshalCSV(schedule)
	} else {
		content, err = marshalXML(schedule)
	}
	if err != nil {
		return fmt.Errorf("schedule %s: %w", path, err)
	}

	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("schedule %s: %w", path, err)
	}
	return nil
}

func parseXML(content []byte) (*Schedule, error) {
	d := xml.NewDecoder(bytes.NewReader(content))
	d.CharsetReader = charset.NewReaderLabel

	var schedule Schedule
	if err := d.Decode(&schedule); err != nil {
		return nil, err
	}
	return &schedule, nil
}

func marshalXML(schedule *Schedule) ([]byte, error) {
	var buffer bytes.Buffer
	buffer.WriteString(xml.Header)

	encoder := xml.NewEncoder(&buffer)
	encoder.Indent("", "  ")
	if err := encoder.Encode(schedule); err != nil {
		return nil, err
	}
	buffer.WriteString("\n")

	return buffer.Bytes(), nil
}

func parseCSV(content []byte) (*Schedule, error) {
	var rows []*csvEntry
	if err := gocsv.UnmarshalBytes(content, &rows); err != nil {
		return nil, err
	}

	schedule := &Schedule{}
	for i, row := range rows {
		entry := Entry{Betriebsstelle: row.Betriebsstelle}

		if row.DrivingTime != "" {
			drivingTime, err := config.ParseDuration(row.DrivingTime)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i+1, err)
			}
			entry.DrivingTime = drivingTime
		}
		if row.StopTime != "" {
			stopTime, err := config.ParseDuration(row.StopTime)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i+1, err)
			}
			entry.StopTime = &stopTime
		}
		if row.TimeFix != "" {
			var anchor TimeFixAnchor
			if err := anchor.UnmarshalText([]byte(row.TimeFix)); err != nil {
				return nil, fmt.Errorf("row %d: %w", i+1, err)
			}
			entry.TimeFix = &anchor
		}

		schedule.Entries = append(schedule.Entries, entry)
	}

	return schedule, nil
}

func marshalCSV(schedule *Schedule) ([]byte, error) {
	rows := make([]*csvEntry, 0, len(schedule.Entries))
	for _, entry := range schedule.Entries {
		row := &csvEntry{
			Betriebsstelle: entry.Betriebsstelle,
			DrivingTime:    entry.DrivingTime.String(),
		}
		if entry.StopTime != nil {
			row.StopTime = entry.StopTime.String()
		}
		if entry.TimeFix != nil {
			row.TimeFix = string(*entry.TimeFix)
		}
		rows = append(rows, row)
	}

	return gocsv.MarshalBytes(&rows)
}
