package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParser(t *testing.T, input InputConfig, normalize NormalizeConfig) *Parser {
	t.Helper()
	normalizer, err := NewNormalizer(normalize)
	require.NoError(t, err)
	parser, err := NewParser(input, normalizer)
	require.NoError(t, err)
	return parser
}

func collect(t *testing.T, parser *Parser, input string) []string {
	t.Helper()
	seqs := []string{}
	err := parser.Parse(strings.NewReader(input), func(seq string) error {
		seqs = append(seqs, seq)
		return nil
	})
	require.NoError(t, err)
	return seqs
}

func TestParseFormats(t *testing.T) {
	testCases := []struct {
		name     string
		input    InputConfig
		data     string
		expected []string
	}{
		{
			name:     "lines",
			input:    InputConfig{Format: "lines", Encoding: "utf-8"},
			data:     "cat\r\n\ncar\n  \ncart\n",
			expected: []string{"cat", "car", "cart"},
		},
		{
			name:     "csv",
			input:    InputConfig{Format: "csv", Key: "word", Delimiter: ";", Encoding: "utf-8"},
			data:     "id;word\n1;cat\n2;car\n",
			expected: []string{"cat", "car"},
		},
		{
			name:     "tsv",
			input:    InputConfig{Format: "tsv", Key: "word", Encoding: "utf-8"},
			data:     "word\tid\ncat\t1\n",
			expected: []string{"cat"},
		},
		{
			name:     "json",
			input:    InputConfig{Format: "json", Key: "word", Encoding: "utf-8"},
			data:     `[{"word": "cat", "id": "1"}, {"word": "car"}]`,
			expected: []string{"cat", "car"},
		},
		{
			name:     "latin1",
			input:    InputConfig{Format: "lines", Encoding: "latin1"},
			data:     "caf\xe9\n",
			expected: []string{"café"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			parser := newTestParser(t, tc.input, NormalizeConfig{Form: "nfc"})
			assert.Equal(t, tc.expected, collect(t, parser, tc.data))
		})
	}
}

func TestParseErrors(t *testing.T) {
	csvParser := newTestParser(t, InputConfig{Format: "csv", Key: "word", Delimiter: ",", Encoding: "utf-8"}, NormalizeConfig{})
	err := csvParser.Parse(strings.NewReader("id,name\n1,cat\n"), func(string) error { return nil })
	assert.ErrorContains(t, err, `no "word" column`)

	jsonParser := newTestParser(t, InputConfig{Format: "json", Key: "word", Encoding: "utf-8"}, NormalizeConfig{})
	err = jsonParser.Parse(strings.NewReader(`[{"name": "cat"}]`), func(string) error { return nil })
	assert.ErrorContains(t, err, `no "word" field`)

	err = jsonParser.Parse(strings.NewReader(`{`), func(string) error { return nil })
	assert.Error(t, err)

	normalizer, err := NewNormalizer(NormalizeConfig{})
	require.NoError(t, err)
	_, err = NewParser(InputConfig{Format: "xml", Encoding: "utf-8"}, normalizer)
	assert.Error(t, err)
	_, err = NewParser(InputConfig{Format: "lines", Encoding: "klingon"}, normalizer)
	assert.Error(t, err)
	_, err = NewParser(InputConfig{Format: "csv", Delimiter: ",,", Encoding: "utf-8"}, normalizer)
	assert.Error(t, err)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\n"), 0o644))
	parser := newTestParser(t, InputConfig{Format: "lines", Encoding: "utf-8"}, NormalizeConfig{})

	seqs := []string{}
	require.NoError(t, parser.ParseFile(path, func(seq string) error {
		seqs = append(seqs, seq)
		return nil
	}))
	assert.Equal(t, []string{"one", "two"}, seqs)

	assert.Error(t, parser.ParseFile(filepath.Join(t.TempDir(), "missing.txt"), func(string) error { return nil }))
}

func TestNormalizer(t *testing.T) {
	decomposed := "cafe\u0301"

	nfc, err := NewNormalizer(NormalizeConfig{Form: "nfc"})
	require.NoError(t, err)
	assert.Equal(t, "café", nfc.Normalize(decomposed))

	none, err := NewNormalizer(NormalizeConfig{Form: "none"})
	require.NoError(t, err)
	assert.Equal(t, decomposed, none.Normalize(decomposed))

	folding, err := NewNormalizer(NormalizeConfig{Form: "nfc", Fold: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"café", "cat"}, folding.NormalizeAll([]string{"CAFE\u0301", "Cat"}))

	_, err = NewNormalizer(NormalizeConfig{Form: "nfx"})
	assert.Error(t, err)
}
