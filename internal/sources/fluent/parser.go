// Package fluent reads message identifiers and values from Fluent (.ftl)
// resources.
//
// Only what term comparison needs is kept: public messages and their
// values. Comments, private terms (-brand-name) and attributes are
// discarded, and unparseable entries are reported without stopping the
// parse.
package fluent

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"github.com/flodolo/moz-cldr-data/pkg/errors"
	"github.com/flodolo/moz-cldr-data/pkg/terms"
)

// Format is the format name used in parse errors.
const Format = "ftl"

// Parse reads a Fluent resource. file names the resource in errors.
// The returned error is non-nil only when r cannot be read; malformed
// entries are listed in Document.Malformed.
func Parse(r io.Reader, file string) (terms.Document, error) {
	p := &parser{file: file}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		p.line(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return terms.Document{}, errors.WrapIO("read", file, err)
	}
	p.flush()
	return p.doc, nil
}

// ParseBytes parses an in-memory resource.
func ParseBytes(data []byte, file string) (terms.Document, error) {
	return Parse(bytes.NewReader(data), file)
}

// state of the entry being read.
type state int

const (
	stateNone state = iota
	stateMessage
	stateSkip
)

type parser struct {
	file  string
	n     int
	start int
	state state
	key   string
	value []string
	// attribute is set once an attribute line has been seen, so further
	// indented lines belong to it and not to the value.
	attribute bool
	doc       terms.Document
}

func (p *parser) line(text string) {
	p.n++
	text = strings.TrimSuffix(text, "\r")

	if strings.TrimSpace(text) == "" {
		if p.state == stateMessage {
			// Blank lines may separate value lines; they are kept and
			// trimmed when the entry ends.
			p.value = append(p.value, "")
		}
		return
	}

	if isIndented(text) {
		p.continuation(strings.TrimSpace(text))
		return
	}

	p.flush()

	switch {
	case strings.HasPrefix(text, "#"):
		return
	case strings.HasPrefix(text, "-"):
		// Private term.
		p.state = stateSkip
		return
	}

	id, value, ok := strings.Cut(text, "=")
	id = strings.TrimSpace(id)
	if !ok || !isIdentifier(id) {
		p.junk("expected message \"identifier = value\"")
		return
	}

	p.state = stateMessage
	p.start = p.n
	p.key = id
	if value = strings.TrimSpace(value); value != "" {
		p.value = append(p.value, value)
	}
}

func (p *parser) continuation(text string) {
	switch p.state {
	case stateMessage:
		if strings.HasPrefix(text, ".") {
			p.attribute = true
			return
		}
		if !p.attribute {
			p.value = append(p.value, text)
		}
	case stateNone:
		p.junk("unexpected indented line")
	}
}

// flush ends the current entry.
func (p *parser) flush() {
	if p.state == stateMessage {
		value := strings.TrimSpace(strings.Join(p.value, "\n"))
		if value != "" {
			p.doc.Entries = append(p.doc.Entries, terms.Entry{Key: p.key, Value: value})
		} else if !p.attribute {
			p.doc.Malformed = append(p.doc.Malformed, &errors.ParseError{
				Format:  Format,
				File:    p.file,
				Line:    p.start,
				Column:  1,
				Message: "message " + p.key + " has neither value nor attributes",
			})
		}
	}
	p.state = stateNone
	p.key = ""
	p.value = nil
	p.attribute = false
}

func (p *parser) junk(message string) {
	p.doc.Malformed = append(p.doc.Malformed, &errors.ParseError{
		Format:  Format,
		File:    p.file,
		Line:    p.n,
		Column:  1,
		Message: message,
	})
	p.state = stateSkip
}

func isIndented(text string) bool {
	return text[0] == ' ' || text[0] == '\t'
}

// isIdentifier matches [a-zA-Z][a-zA-Z0-9_-]*.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '_' || r == '-'):
		default:
			return false
		}
	}
	return true
}
