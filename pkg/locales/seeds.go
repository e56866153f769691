package locales

import (
	"bufio"
	"io"
	"sort"
	"strings"
)

// SeedList holds locale tokens present in the CLDR seed pool but not yet in
// the main dataset. It only annotates unsupported locales.
type SeedList struct {
	tokens map[string]struct{}
}

// NewSeedList builds a SeedList from tokens, ignoring blanks.
func NewSeedList(tokens ...string) *SeedList {
	s := &SeedList{tokens: make(map[string]struct{}, len(tokens))}
	for _, token := range tokens {
		if token = strings.TrimSpace(token); token != "" {
			s.tokens[token] = struct{}{}
		}
	}
	return s
}

// ParseSeedList reads newline-delimited tokens. Lines starting with '#' are
// comments.
func ParseSeedList(r io.Reader) (*SeedList, error) {
	var tokens []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		tokens = append(tokens, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return NewSeedList(tokens...), nil
}

// Contains reports whether token is a seed locale.
func (s *SeedList) Contains(token string) bool {
	if s == nil {
		return false
	}
	_, ok := s.tokens[token]
	return ok
}

// Len returns the number of seed tokens.
func (s *SeedList) Len() int {
	if s == nil {
		return 0
	}
	return len(s.tokens)
}

// Tokens returns the seed tokens sorted.
func (s *SeedList) Tokens() []string {
	out := make([]string, 0, s.Len())
	if s == nil {
		return out
	}
	for token := range s.tokens {
		out = append(out, token)
	}
	sort.Strings(out)
	return out
}

// Annotate explains whether an unsupported locale is available in the seed
// pool, either as itself or through its primary subtag.
func (s *SeedList) Annotate(id ID) string {
	switch {
	case s.Contains(string(id)):
		return "available in seed"
	case s.Contains(id.Primary()):
		return "available in seed as " + id.Primary()
	default:
		return ""
	}
}
