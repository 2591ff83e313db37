package rdf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// encodeNTriples serializes the graph as N-Triples, one sorted triple per
// line with absolute IRIs.
func encodeNTriples(g *Graph) []byte {
	var sb strings.Builder
	for _, t := range g.Triples() {
		sb.WriteString("<" + t.S.Value + "> ")
		sb.WriteString("<" + t.P.Value + "> ")
		sb.WriteString(ntObject(t.O))
		sb.WriteString(" .\n")
	}
	return []byte(sb.String())
}

func ntObject(o Term) string {
	switch v := o.(type) {
	case IRI:
		return "<" + v.Value + ">"
	case Literal:
		lex := "\"" + escapeLiteral(v.Lexical) + "\""
		if v.Lang != "" {
			return lex + "@" + v.Lang
		}
		if v.Datatype != "" {
			return lex + "^^<" + v.Datatype + ">"
		}
		return lex
	default:
		return o.String()
	}
}

// ParseNTriples reads an N-Triples document into a graph. Blank lines and
// comment lines are skipped. Used for round-trip verification of encoder
// output; it accepts the full N-Triples grammar minus blank nodes, which
// this model never produces.
func ParseNTriples(r io.Reader) (*Graph, error) {
	g := NewGraph()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		t, err := parseNTLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		g.Add(t)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return g, nil
}

func parseNTLine(line string) (Triple, error) {
	c := &ntCursor{input: line}

	s, err := c.parseIRI()
	if err != nil {
		return Triple{}, fmt.Errorf("subject: %w", err)
	}
	p, err := c.parseIRI()
	if err != nil {
		return Triple{}, fmt.Errorf("predicate: %w", err)
	}
	o, err := c.parseObject()
	if err != nil {
		return Triple{}, fmt.Errorf("object: %w", err)
	}
	if !c.consume('.') {
		return Triple{}, fmt.Errorf("expected '.' at end of statement")
	}
	return Triple{S: s, P: p, O: o}, nil
}

type ntCursor struct {
	input string
	pos   int
}

func (c *ntCursor) skipWS() {
	for c.pos < len(c.input) {
		switch c.input[c.pos] {
		case ' ', '\t':
			c.pos++
		default:
			return
		}
	}
}

func (c *ntCursor) consume(ch byte) bool {
	c.skipWS()
	if c.pos < len(c.input) && c.input[c.pos] == ch {
		c.pos++
		return true
	}
	return false
}

func (c *ntCursor) parseIRI() (IRI, error) {
	if !c.consume('<') {
		return IRI{}, fmt.Errorf("expected '<' at position %d", c.pos)
	}
	start := c.pos
	for c.pos < len(c.input) && c.input[c.pos] != '>' {
		c.pos++
	}
	if c.pos >= len(c.input) {
		return IRI{}, fmt.Errorf("unterminated IRI")
	}
	iri := c.input[start:c.pos]
	c.pos++ // consume '>'
	return IRI{Value: iri}, nil
}

func (c *ntCursor) parseObject() (Term, error) {
	c.skipWS()
	if c.pos >= len(c.input) {
		return nil, fmt.Errorf("unexpected end of statement")
	}
	if c.input[c.pos] == '<' {
		return c.parseIRI()
	}
	if c.input[c.pos] == '"' {
		return c.parseLiteral()
	}
	return nil, fmt.Errorf("unexpected character %q at position %d", c.input[c.pos], c.pos)
}

func (c *ntCursor) parseLiteral() (Literal, error) {
	c.pos++ // consume opening quote
	var b strings.Builder
	for c.pos < len(c.input) {
		ch := c.input[c.pos]
		if ch == '"' {
			c.pos++
			return c.parseLiteralSuffix(b.String())
		}
		if ch == '\\' {
			unescaped, consumed, err := unescapeSequence(c.input[c.pos:])
			if err != nil {
				return Literal{}, err
			}
			b.WriteString(unescaped)
			c.pos += consumed
			continue
		}
		b.WriteByte(ch)
		c.pos++
	}
	return Literal{}, fmt.Errorf("unterminated literal")
}

func (c *ntCursor) parseLiteralSuffix(lexical string) (Literal, error) {
	if c.pos < len(c.input) && c.input[c.pos] == '@' {
		c.pos++
		start := c.pos
		for c.pos < len(c.input) && isLangChar(c.input[c.pos]) {
			c.pos++
		}
		if c.pos == start {
			return Literal{}, fmt.Errorf("empty language tag")
		}
		return Literal{Lexical: lexical, Lang: c.input[start:c.pos]}, nil
	}
	if strings.HasPrefix(c.input[c.pos:], "^^") {
		c.pos += 2
		dt, err := c.parseIRI()
		if err != nil {
			return Literal{}, fmt.Errorf("datatype: %w", err)
		}
		return Literal{Lexical: lexical, Datatype: dt.Value}, nil
	}
	return Literal{Lexical: lexical}, nil
}

func isLangChar(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch >= '0' && ch <= '9' || ch == '-'
}

// unescapeSequence decodes one backslash escape at the start of s, returning
// the decoded text and the number of input bytes consumed.
func unescapeSequence(s string) (string, int, error) {
	if len(s) < 2 {
		return "", 0, fmt.Errorf("dangling escape")
	}
	switch s[1] {
	case 't':
		return "\t", 2, nil
	case 'n':
		return "\n", 2, nil
	case 'r':
		return "\r", 2, nil
	case '"':
		return "\"", 2, nil
	case '\\':
		return "\\", 2, nil
	case 'u':
		if len(s) < 6 {
			return "", 0, fmt.Errorf("truncated \\u escape")
		}
		code, err := strconv.ParseUint(s[2:6], 16, 32)
		if err != nil {
			return "", 0, fmt.Errorf("invalid \\u escape: %w", err)
		}
		return string(rune(code)), 6, nil
	case 'U':
		if len(s) < 10 {
			return "", 0, fmt.Errorf("truncated \\U escape")
		}
		code, err := strconv.ParseUint(s[2:10], 16, 32)
		if err != nil {
			return "", 0, fmt.Errorf("invalid \\U escape: %w", err)
		}
		return string(rune(code)), 10, nil
	default:
		return "", 0, fmt.Errorf("unknown escape \\%c", s[1])
	}
}
