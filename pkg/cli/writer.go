package cli

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
)

// Stats counts sequences going through a command.
type Stats struct {
	Input   int // sequences read from the input files
	Unique  int // distinct sequences stored in the trie
	Removed int
	Output  int // sequences written
}

type Writer interface {
	Write(out io.Writer, sequences []string) error
}

// NewWriter returns the writer for format, key names the csv column or json field.
func NewWriter(format string, key string, stats *Stats) (Writer, error) {
	switch format {
	case "lines":
		return &LinesWriter{Stats: stats}, nil
	case "csv":
		return &CsvWriter{key: key, Stats: stats}, nil
	case "tsv":
		return &CsvWriter{key: key, isTSV: true, Stats: stats}, nil
	case "json":
		return &JsonWriter{key: key, Stats: stats}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

type LinesWriter struct {
	Stats *Stats
}

func (w LinesWriter) Write(out io.Writer, sequences []string) error {
	buffered := bufio.NewWriter(out)
	for _, seq := range sequences {
		if _, err := buffered.WriteString(seq + "\n"); err != nil {
			return err
		}
		w.Stats.Output++
	}
	return buffered.Flush()
}

// JsonWriter writes an array of objects holding the sequence under key.
type JsonWriter struct {
	key   string
	Stats *Stats
}

func (w JsonWriter) Write(out io.Writer, sequences []string) error {
	encoder := json.NewEncoder(out)

	if _, err := out.Write([]byte("[")); err != nil {
		return err
	}
	for i, seq := range sequences {
		if i > 0 {
			if _, err := out.Write([]byte(",")); err != nil {
				return err
			}
		}
		if err := encoder.Encode(Record{w.key: seq}); err != nil {
			return err
		}
		w.Stats.Output++
	}
	if _, err := out.Write([]byte("]\n")); err != nil {
		return err
	}
	return nil
}

// CsvWriter writes a single column table with key as header.
type CsvWriter struct {
	key   string
	isTSV bool
	Stats *Stats
}

func (w CsvWriter) Write(out io.Writer, sequences []string) error {
	// Create a CSV writer
	writer := csv.NewWriter(out)
	if w.isTSV {
		writer.Comma = '\t'
	}

	if err := writer.Write([]string{w.key}); err != nil {
		return err
	}
	for _, seq := range sequences {
		if err := writer.Write([]string{seq}); err != nil {
			return err
		}
		w.Stats.Output++
	}

	writer.Flush()
	return writer.Error()
}
