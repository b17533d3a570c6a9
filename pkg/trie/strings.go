package trie

// Strings is a Trie of bytes that takes and returns Go strings.
// Strings are stored byte for byte, so any string, valid UTF-8 or not,
// comes back exactly as it was inserted.
type Strings struct {
	bytes *Trie[byte]
}

func NewStrings(opts ...Option[byte]) *Strings {
	return &Strings{bytes: New(opts...)}
}

func (s *Strings) Clone() *Strings {
	return &Strings{bytes: s.bytes.Clone()}
}

func (s *Strings) Release() {
	s.bytes.Release()
}

func (s *Strings) IsShared() bool {
	return s.bytes.IsShared()
}

func (s *Strings) Count() int {
	return s.bytes.Count()
}

func (s *Strings) IsEmpty() bool {
	return s.bytes.IsEmpty()
}

func (s *Strings) Insert(str string) {
	s.bytes.Insert([]byte(str))
}

func (s *Strings) Contains(str string) bool {
	return s.bytes.Contains([]byte(str))
}

// Remove deletes str, see Trie.Remove.
func (s *Strings) Remove(str string) (string, bool) {
	if _, ok := s.bytes.Remove([]byte(str)); !ok {
		return "", false
	}
	return str, true
}

func (s *Strings) Collections() []string {
	return s.CollectionsWithPrefix("")
}

// CollectionsWithPrefix returns every stored string starting with prefix.
// The prefix is matched byte for byte, like strings.HasPrefix.
func (s *Strings) CollectionsWithPrefix(prefix string) []string {
	result := []string{}
	s.bytes.Walk([]byte(prefix), func(seq []byte) bool {
		result = append(result, string(seq))
		return true
	})
	return result
}

// Walk calls f for every stored string starting with prefix until f returns false.
func (s *Strings) Walk(prefix string, f func(str string) bool) {
	s.bytes.Walk([]byte(prefix), func(seq []byte) bool {
		return f(string(seq))
	})
}
