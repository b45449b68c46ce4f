package signal

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/montanaflynn/stats"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	TimeColumn  string // Column with sample times in seconds (optional)
	ValueColumn string // Column with sample values (default: "value")
	IDColumn    string // Column with a recording/channel ID (optional, for filtering)
	IDFilter    string // Value to filter by ID column
	HasHeader   bool   // Whether CSV has a header row (default: true)
	Delimiter   rune   // Field delimiter (default: ',')
	SkipRows    int    // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		ValueColumn: "value",
		HasHeader:   true,
		Delimiter:   ',',
	}
}

// LoadCSV loads a single-channel signal from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Signal, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	s, err := LoadCSVFromReader(file, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return s, nil
}

// LoadCSVFromReader loads a single-channel signal from an io.Reader.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Signal, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	headers, rows, err := readTable(r, opts)
	if err != nil {
		return nil, err
	}

	valueIdx, timeIdx, idIdx := -1, -1, -1
	if opts.HasHeader {
		for i, h := range headers {
			h = cleanCell(h)
			switch {
			case h == opts.ValueColumn || (opts.ValueColumn == "" && (h == "value" || h == "Value" || h == "y")):
				valueIdx = i
			case opts.TimeColumn != "" && h == opts.TimeColumn:
				timeIdx = i
			case h == "time" || h == "t" || h == "timestamp":
				if timeIdx == -1 {
					timeIdx = i
				}
			case opts.IDColumn != "" && h == opts.IDColumn:
				idIdx = i
			case h == "id" || h == "ID" || h == "channel":
				if idIdx == -1 && opts.IDColumn == "" {
					idIdx = i
				}
			}
		}

		// Default to the last column when the value column is not found
		if valueIdx == -1 {
			valueIdx = len(headers) - 1
		}
	} else {
		// No header: assume a single value column, or time then value
		valueIdx = 0
		if len(rows) > 0 && len(rows[0]) > 1 {
			timeIdx = 0
			valueIdx = 1
		}
	}

	var values []float64
	var times []float64

	for _, record := range rows {
		if opts.IDFilter != "" && idIdx >= 0 && idIdx < len(record) {
			if cleanCell(record[idIdx]) != opts.IDFilter {
				continue
			}
		}

		if valueIdx < 0 || valueIdx >= len(record) {
			continue
		}

		val, ok := parseCell(record[valueIdx])
		if !ok {
			continue
		}
		values = append(values, val)

		if timeIdx >= 0 && timeIdx < len(record) {
			if ts, tok := parseCell(record[timeIdx]); tok {
				times = append(times, ts)
			}
		}
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("%w: no valid data found in CSV", ErrEmptySignal)
	}

	name := ""
	if opts.HasHeader && valueIdx < len(headers) {
		name = cleanCell(headers[valueIdx])
	}

	s := NewNamed(name, values)
	if len(times) == len(values) {
		s.SamplingRate = rateFromTimes(times)
	}
	return s, nil
}

// LoadCSVColumn loads a specific column from a CSV file as a signal.
func LoadCSVColumn(filename string, column string) (*Signal, error) {
	opts := DefaultCSVOptions()
	opts.ValueColumn = column
	return LoadCSV(filename, opts)
}

// LoadCSVFiltered loads a filtered signal from a long-format CSV file.
func LoadCSVFiltered(filename string, idColumn, idValue, valueColumn string) (*Signal, error) {
	opts := DefaultCSVOptions()
	opts.IDColumn = idColumn
	opts.IDFilter = idValue
	if valueColumn != "" {
		opts.ValueColumn = valueColumn
	}
	return LoadCSV(filename, opts)
}

// LoadCSVChannels loads a wide-format CSV file as one signal per column.
// columns selects and orders the channels; nil or empty selects every column
// except the time and ID columns, in file order.
func LoadCSVChannels(filename string, columns []string, opts *CSVOptions) ([]*Signal, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	channels, err := LoadCSVChannelsFromReader(file, columns, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return channels, nil
}

// LoadCSVChannelsFromReader loads wide-format channels from an io.Reader.
func LoadCSVChannelsFromReader(r io.Reader, columns []string, opts *CSVOptions) ([]*Signal, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}
	if !opts.HasHeader {
		return nil, errors.New("channel loading requires a header row with channel names")
	}

	headers, rows, err := readTable(r, opts)
	if err != nil {
		return nil, err
	}
	if len(headers) == 0 {
		return nil, errors.New("no header row found in CSV")
	}

	cleaned := make([]string, len(headers))
	for i, h := range headers {
		cleaned[i] = cleanCell(h)
	}

	timeIdx := -1
	for i, h := range cleaned {
		if (opts.TimeColumn != "" && h == opts.TimeColumn) ||
			(opts.TimeColumn == "" && (h == "time" || h == "t" || h == "timestamp")) {
			timeIdx = i
			break
		}
	}

	// Resolve the channel columns, preserving the requested order
	var indices []int
	if len(columns) > 0 {
		for _, want := range columns {
			found := -1
			for i, h := range cleaned {
				if h == want {
					found = i
					break
				}
			}
			if found == -1 {
				return nil, fmt.Errorf("column %q not found in CSV header", want)
			}
			indices = append(indices, found)
		}
	} else {
		for i, h := range cleaned {
			if i == timeIdx {
				continue
			}
			if opts.IDColumn != "" && h == opts.IDColumn {
				continue
			}
			indices = append(indices, i)
		}
	}

	if len(indices) == 0 {
		return nil, errors.New("no channel columns found in CSV")
	}

	values := make([][]float64, len(indices))
	var times []float64

	for _, record := range rows {
		for c, idx := range indices {
			if idx >= len(record) {
				continue
			}
			if v, ok := parseCell(record[idx]); ok {
				values[c] = append(values[c], v)
			}
		}
		if timeIdx >= 0 && timeIdx < len(record) {
			if ts, ok := parseCell(record[timeIdx]); ok {
				times = append(times, ts)
			}
		}
	}

	rate := rateFromTimes(times)

	channels := make([]*Signal, len(indices))
	for c, idx := range indices {
		if len(values[c]) == 0 {
			return nil, fmt.Errorf("%w: column %q contains no valid data", ErrEmptySignal, cleaned[idx])
		}
		channels[c] = NewNamed(cleaned[idx], values[c]).WithRate(rate)
	}

	return channels, nil
}

// SaveCSV saves a signal to a CSV file, with a time column when the
// sampling rate is known and includeTime is set.
func SaveCSV(s *Signal, filename string, includeTime bool) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	defer writer.Flush()

	name := s.Name
	if name == "" {
		name = "value"
	}

	withTime := includeTime && s.SamplingRate > 0

	if withTime {
		writer.WriteString("time," + name + "\n")
	} else {
		writer.WriteString(name + "\n")
	}

	for i, v := range s.Values {
		if withTime {
			writer.WriteString(strconv.FormatFloat(float64(i)/s.SamplingRate, 'f', -1, 64))
			writer.WriteString(",")
		}
		writer.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
		writer.WriteString("\n")
	}

	return nil
}

// SaveCSVChannels saves channels to a wide-format CSV file.
func SaveCSVChannels(channels []*Signal, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	defer writer.Flush()

	return WriteCSVChannels(writer, channels)
}

// WriteCSVChannels writes channels as wide-format CSV, one named column per
// channel plus a leading time column when the sampling rate is known.
// Channels must have equal lengths.
func WriteCSVChannels(w io.Writer, channels []*Signal) error {
	if len(channels) == 0 {
		return errors.New("no channels to write")
	}

	n := channels[0].Len()
	for _, c := range channels[1:] {
		if c.Len() != n {
			return fmt.Errorf("channel %q has %d samples, expected %d", c.Name, c.Len(), n)
		}
	}

	rate := channels[0].SamplingRate

	var header []string
	if rate > 0 {
		header = append(header, "time")
	}
	for i, c := range channels {
		name := c.Name
		if name == "" {
			name = fmt.Sprintf("ch%d", i+1)
		}
		header = append(header, name)
	}
	if _, err := io.WriteString(w, strings.Join(header, ",")+"\n"); err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		var row []string
		if rate > 0 {
			row = append(row, strconv.FormatFloat(float64(i)/rate, 'f', -1, 64))
		}
		for _, c := range channels {
			row = append(row, strconv.FormatFloat(c.Values[i], 'f', -1, 64))
		}
		if _, err := io.WriteString(w, strings.Join(row, ",")+"\n"); err != nil {
			return err
		}
	}

	return nil
}

// readTable reads all rows, applying SkipRows and splitting off the header.
func readTable(r io.Reader, opts *CSVOptions) (headers []string, rows [][]string, err error) {
	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, nil, err
		}
	}

	if opts.HasHeader {
		headers, err = reader.Read()
		if err != nil {
			return nil, nil, err
		}
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		rows = append(rows, record)
	}

	return headers, rows, nil
}

// cleanCell strips whitespace and stray quotes from a CSV cell.
func cleanCell(s string) string {
	return strings.TrimSpace(strings.Trim(s, "\""))
}

// parseCell parses a CSV cell as a float, reporting NA-like cells as invalid.
func parseCell(s string) (float64, bool) {
	s = cleanCell(s)
	if s == "" || s == "NA" || s == "NaN" || s == "null" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// rateFromTimes estimates the sampling rate from a time column in seconds,
// using the median step to tolerate occasional gaps. Returns 0 when the
// rate cannot be determined.
func rateFromTimes(times []float64) float64 {
	if len(times) < 2 {
		return 0
	}

	diffs := make([]float64, 0, len(times)-1)
	for i := 1; i < len(times); i++ {
		diffs = append(diffs, times[i]-times[i-1])
	}

	step, err := stats.Median(diffs)
	if err != nil || step <= 0 {
		return 0
	}
	return 1 / step
}
