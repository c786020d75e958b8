package confscan

import (
	"bytes"
	"fmt"
	"os"
)

type mode int

const (
	modeInitial mode = iota
	modeComment
	modeString
	modeIncludeFile
	modeIncludeDir
)

// Scanner turns a byte stream drawn from one or more configuration files
// into a token stream. All state lives on the Scanner itself; independent
// scanners never share anything.
type Scanner struct {
	frames  []frame
	onStack map[string]struct{}

	mode    mode
	acc     []byte
	accLine int

	err *ScanError
}

// Open constructs a scanner whose root frame reads from the file at path.
// The file's directory is the base for relative @include resolution.
func Open(path string) (*Scanner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return New(data, path), nil
}

// New constructs a scanner over an in-memory root source. The path is
// used for position stamping and as the base for relative includes; it
// does not need to exist on disk.
func New(src []byte, path string) *Scanner {
	s := &Scanner{onStack: make(map[string]struct{})}
	canon := ""
	if path != "" {
		if c, err := canonicalPath(path); err == nil {
			canon = c
		}
	}
	if canon != "" {
		s.onStack[canon] = struct{}{}
	}
	s.frames = append(s.frames, frame{src: src, line: 1, path: path, canon: canon})
	return s
}

// Next pulls the next token. After the root frame is exhausted it keeps
// returning a token of KindEOF.
//
// A KindName payload aliases the scanner's buffer and is valid only until
// the following Next call; KindString payloads are owned by the caller.
func (s *Scanner) Next() Token {
	for {
		var (
			tok     Token
			emitted bool
		)
		switch s.mode {
		case modeComment:
			tok, emitted = s.scanComment()
		case modeString, modeIncludeFile, modeIncludeDir:
			tok, emitted = s.scanQuoted()
		default:
			tok, emitted = s.scanInitial()
		}
		if emitted {
			return tok
		}
	}
}

// Err exposes the error channel: details for the most recent KindError
// token. An ERROR is not necessarily fatal; the caller decides whether to
// keep pulling.
func (s *Scanner) Err() *ScanError {
	return s.err
}

// Line reports the 1-based line number of the active frame.
func (s *Scanner) Line() int {
	if f := s.top(); f != nil {
		return f.line
	}
	return 0
}

// Path reports the file path of the active frame.
func (s *Scanner) Path() string {
	if f := s.top(); f != nil {
		return f.path
	}
	return ""
}

// Close releases every frame, the accumulator, and any directory
// iterator. It is idempotent and safe to call mid-stream.
func (s *Scanner) Close() error {
	s.frames = nil
	s.onStack = nil
	s.acc = nil
	s.mode = modeInitial
	return nil
}

func (s *Scanner) scanInitial() (Token, bool) {
	for {
		f := s.top()
		if f == nil {
			return Token{Kind: KindEOF}, true
		}
		if f.pos >= len(f.src) {
			if len(s.frames) == 1 {
				return Token{Kind: KindEOF, Line: f.line, Path: f.path}, true
			}
			if err := s.popAdvance(); err != nil {
				return s.errorToken(err.Error()), true
			}
			continue
		}

		c := f.src[f.pos]
		switch c {
		case ' ', '\t', '\r', '\f':
			f.pos++
		case '\n':
			f.pos++
			f.line++
		case '#':
			s.skipLine(f)
		case '/':
			switch {
			case f.pos+1 < len(f.src) && f.src[f.pos+1] == '/':
				s.skipLine(f)
			case f.pos+1 < len(f.src) && f.src[f.pos+1] == '*':
				f.pos += 2
				s.mode = modeComment
				return Token{}, false
			default:
				f.pos++
				return s.garbage(c, f), true
			}
		case '=', ':':
			f.pos++
			return s.tok(KindEquals, f), true
		case ',':
			f.pos++
			return s.tok(KindComma, f), true
		case ';':
			f.pos++
			return s.tok(KindSemicolon, f), true
		case '{':
			f.pos++
			return s.tok(KindGroupStart, f), true
		case '}':
			f.pos++
			return s.tok(KindGroupEnd, f), true
		case '[':
			f.pos++
			return s.tok(KindArrayStart, f), true
		case ']':
			f.pos++
			return s.tok(KindArrayEnd, f), true
		case '(':
			f.pos++
			return s.tok(KindListStart, f), true
		case ')':
			f.pos++
			return s.tok(KindListEnd, f), true
		case '"':
			f.pos++
			s.mode = modeString
			s.acc = []byte{}
			s.accLine = f.line
			return Token{}, false
		case '@':
			if s.scanDirective(f) {
				return Token{}, false
			}
			f.pos++
			return s.garbage(c, f), true
		default:
			switch {
			case isNameStart(c):
				return s.lexName(f), true
			case c >= '0' && c <= '9' || c == '-' || c == '+' || c == '.':
				return s.lexNumber(f), true
			default:
				f.pos++
				return s.garbage(c, f), true
			}
		}
	}
}

// scanDirective recognizes @include / @include_dir openings. Directives
// only count when nothing but spaces and tabs precede them on the line;
// anywhere else the @ falls through to GARBAGE and the keyword decomposes
// into ordinary tokens.
func (s *Scanner) scanDirective(f *frame) bool {
	if !f.atLineStart() {
		return false
	}
	rest := f.src[f.pos:]
	kw := len("@include")
	next := modeIncludeFile
	switch {
	case bytes.HasPrefix(rest, []byte("@include_dir")):
		kw = len("@include_dir")
		next = modeIncludeDir
	case bytes.HasPrefix(rest, []byte("@include")):
	default:
		return false
	}
	i := kw
	for i < len(rest) && (rest[i] == ' ' || rest[i] == '\t') {
		i++
	}
	if i == kw || i >= len(rest) || rest[i] != '"' {
		return false
	}
	f.pos += i + 1
	s.mode = next
	s.acc = []byte{}
	s.accLine = f.line
	return true
}

func (s *Scanner) scanComment() (Token, bool) {
	f := s.top()
	if f == nil {
		return Token{Kind: KindEOF}, true
	}
	for f.pos < len(f.src) {
		c := f.src[f.pos]
		if c == '*' && f.pos+1 < len(f.src) && f.src[f.pos+1] == '/' {
			f.pos += 2
			s.mode = modeInitial
			return Token{}, false
		}
		if c == '\n' {
			f.line++
		}
		f.pos++
	}
	s.mode = modeInitial
	return s.errorToken("unterminated comment"), true
}

func (s *Scanner) lexName(f *frame) Token {
	start := f.pos
	f.pos++
	for f.pos < len(f.src) && isNameByte(f.src[f.pos]) {
		f.pos++
	}
	lex := f.src[start:f.pos]
	if bytes.EqualFold(lex, trueBytes) || bytes.EqualFold(lex, falseBytes) {
		t := s.tok(KindBoolean, f)
		t.Bool = lex[0] == 't' || lex[0] == 'T'
		return t
	}
	t := s.tok(KindName, f)
	t.Bytes = lex
	return t
}

func (s *Scanner) skipLine(f *frame) {
	for f.pos < len(f.src) && f.src[f.pos] != '\n' {
		f.pos++
	}
}

func (s *Scanner) tok(kind Kind, f *frame) Token {
	return Token{Kind: kind, Line: f.line, Path: f.path}
}

func (s *Scanner) garbage(c byte, f *frame) Token {
	t := s.tok(KindGarbage, f)
	t.Byte = c
	return t
}

func (s *Scanner) errorToken(text string) Token {
	line, path := 0, ""
	if f := s.top(); f != nil {
		line, path = f.line, f.path
	}
	s.err = &ScanError{Text: text, File: path, Line: line}
	return Token{Kind: KindError, Line: line, Path: path}
}

var (
	trueBytes  = []byte("true")
	falseBytes = []byte("false")
)

func isNameStart(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c == '*'
}

func isNameByte(c byte) bool {
	return isNameStart(c) || c >= '0' && c <= '9' || c == '-' || c == '_'
}
