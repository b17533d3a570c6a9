package cli

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/htmlindex"
)

type Record map[string]string

// Parser reads sequences out of input files.
type Parser struct {
	cfg        InputConfig
	normalizer *Normalizer
}

func NewParser(cfg InputConfig, normalizer *Normalizer) (*Parser, error) {
	switch cfg.Format {
	case "lines", "csv", "tsv", "json":
	default:
		return nil, fmt.Errorf("unknown input format %q", cfg.Format)
	}
	if _, err := htmlindex.Get(cfg.Encoding); err != nil {
		return nil, fmt.Errorf("unknown input encoding %q: %w", cfg.Encoding, err)
	}
	if cfg.Format == "csv" && utf8.RuneCountInString(cfg.Delimiter) != 1 {
		return nil, fmt.Errorf("csv delimiter must be a single character, got %q", cfg.Delimiter)
	}
	return &Parser{cfg: cfg, normalizer: normalizer}, nil
}

// ParseFile calls onEachSequence for every sequence in the file, in file order.
func (p *Parser) ParseFile(filepath string, onEachSequence func(seq string) error) error {
	file, err := os.Open(filepath)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := p.Parse(file, onEachSequence); err != nil {
		return fmt.Errorf("failed to parse %s: %w", filepath, err)
	}
	return nil
}

// Parse decodes r from the configured encoding and reads it in the configured format.
func (p *Parser) Parse(r io.Reader, onEachSequence func(seq string) error) error {
	enc, err := htmlindex.Get(p.cfg.Encoding)
	if err != nil {
		return err
	}
	decoded := enc.NewDecoder().Reader(r)

	normalized := func(seq string) error {
		return onEachSequence(p.normalizer.Normalize(seq))
	}

	switch p.cfg.Format {
	case "json":
		return parseJson(decoded, p.cfg.Key, normalized)
	case "csv":
		delimiter, _ := utf8.DecodeRuneInString(p.cfg.Delimiter)
		return parseCsv(decoded, delimiter, p.cfg.Key, normalized)
	case "tsv":
		return parseCsv(decoded, '\t', p.cfg.Key, normalized)
	default:
		return parseLines(decoded, normalized)
	}
}

// one sequence per line, blank lines are skipped
func parseLines(r io.Reader, onEachSequence func(seq string) error) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := onEachSequence(line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func parseJson(r io.Reader, key string, onEachSequence func(seq string) error) error {
	// Create a JSON Decoder
	decoder := json.NewDecoder(r)

	// Read opening bracket of the array
	if _, err := decoder.Token(); err != nil {
		return err
	}

	// Decode each element of the array
	for decoder.More() {
		data := Record{}
		if err := decoder.Decode(&data); err != nil {
			return err
		}
		seq, found := data[key]
		if !found {
			return fmt.Errorf("record has no %q field: %v", key, data)
		}
		if err := onEachSequence(seq); err != nil {
			return err
		}
	}

	// Read closing bracket of the array
	if _, err := decoder.Token(); err != nil {
		return err
	}

	return nil
}

func parseCsv(r io.Reader, delimiter rune, key string, onEachSequence func(seq string) error) error {
	// Create a CSV Reader
	reader := csv.NewReader(r)
	reader.Comma = delimiter

	// Read the header to find the sequence column
	headers, err := reader.Read()
	if err != nil {
		return fmt.Errorf("failed to read header: %w", err)
	}
	column := -1
	for i, header := range headers {
		if header == key {
			column = i
			break
		}
	}
	if column < 0 {
		return fmt.Errorf("header %v has no %q column", headers, key)
	}

	// Read each record from the CSV
	for {
		recordData, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := onEachSequence(recordData[column]); err != nil {
			return err
		}
	}
}
