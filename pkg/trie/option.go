package trie

import "github.com/rs/zerolog"

type Option[E comparable] func(*Trie[E]) *Trie[E]

// WithLogger sets the logger used for copy-on-write and pruning events.
// Events are logged at debug level.
func WithLogger[E comparable](logger zerolog.Logger) Option[E] {
	return func(t *Trie[E]) *Trie[E] {
		t.logger = logger
		return t
	}
}
