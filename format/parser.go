package format

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

var (
	markerLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "BoldOpen", Pattern: `<b>`},
		{Name: "BoldClose", Pattern: `</b>`},
		{Name: "ItalOpen", Pattern: `<i>`},
		{Name: "ItalClose", Pattern: `</i>`},
		{Name: "Newline", Pattern: `\r?\n`},
		{Name: "Space", Pattern: `[ \t]+`},
		{Name: "Text", Pattern: `[^<\s]+`},
		{Name: "Angle", Pattern: `<`},
	})

	newlineTokenType = mustTokenType("Newline")
	spaceTokenType   = mustTokenType("Space")
	textTokenType    = mustTokenType("Text")
	angleTokenType   = mustTokenType("Angle")

	// marker token type -> toggled style bit and open/close direction
	markerTypes = map[lexer.TokenType]marker{
		mustTokenType("BoldOpen"):  {style: Bold, open: true},
		mustTokenType("BoldClose"): {style: Bold},
		mustTokenType("ItalOpen"):  {style: Italic, open: true},
		mustTokenType("ItalClose"): {style: Italic},
	}
)

type marker struct {
	style Style
	open  bool
}

// SyntaxError reports a malformed inline marker.
type SyntaxError struct {
	Reason string
	Marker string
	Pos    lexer.Position
}

func (e *SyntaxError) Error() string {
	if e.Marker == "" {
		return fmt.Sprintf("format: %s at %s", e.Reason, e.Pos)
	}
	return fmt.Sprintf("format: %s at %s: %q", e.Reason, e.Pos, e.Marker)
}

// Parse tokenizes text into style runs. Markers toggle style bits via
// a stack: an opener pushes its toggle, a closer removes the most
// recent matching one, so overlapping ranges are legal. Markers must
// sit at word boundaries; a marker inside a word, a closer with no
// matching opener, or an opener still open at end of input is a
// SyntaxError. Newlines become Break runs; leading and trailing
// newlines are dropped.
func Parse(text string) ([]Run, error) {
	return parse(text, false)
}

// ParseDiscard validates markers exactly like Parse but emits every
// word as plain text.
func ParseDiscard(text string) ([]Run, error) {
	return parse(text, true)
}

// Literal splits text into runs without interpreting markers; they
// stay as literal characters.
func Literal(text string) []Run {
	var runs []Run
	text = strings.Trim(text, "\r\n")
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			runs = append(runs, Run{Break: true})
		}
		if words := strings.Fields(line); len(words) > 0 {
			runs = append(runs, Run{Words: words})
		}
	}
	return trimTrailingBreaks(runs)
}

// chunk states: markers leading a word, the word itself, markers
// trailing it
const (
	chunkLead = iota
	chunkWord
	chunkTrail
)

type toggle struct {
	style Style
	raw   string
	pos   lexer.Position
}

func parse(text string, discard bool) ([]Run, error) {
	text = strings.Trim(text, "\r\n")
	lex, err := markerLexer.LexString("", text)
	if err != nil {
		return nil, fmt.Errorf("format: lex: %w", err)
	}

	var (
		rb    runBuilder
		stack []toggle
		word  strings.Builder
		state = chunkLead
	)

	openStyle := func() Style {
		var s Style
		for _, t := range stack {
			s |= t.style
		}
		return s
	}

	apply := func(m marker, tok lexer.Token) error {
		if m.open {
			stack = append(stack, toggle{style: m.style, raw: tok.Value, pos: tok.Pos})
			return nil
		}
		for i := len(stack) - 1; i >= 0; i-- {
			if stack[i].style == m.style {
				stack = append(stack[:i], stack[i+1:]...)
				return nil
			}
		}
		return &SyntaxError{Reason: "closing marker without matching opener", Marker: tok.Value, Pos: tok.Pos}
	}

	emitWord := func() {
		if word.Len() == 0 {
			return
		}
		style := openStyle()
		if discard {
			style = Plain
		}
		rb.word(word.String(), style)
		word.Reset()
	}

	for {
		tok, err := lex.Next()
		if err != nil {
			return nil, fmt.Errorf("format: lex: %w", err)
		}
		if tok.EOF() {
			break
		}

		switch tok.Type {
		case spaceTokenType:
			emitWord()
			state = chunkLead
		case newlineTokenType:
			emitWord()
			rb.lineBreak()
			state = chunkLead
		case textTokenType, angleTokenType:
			// a bare '<' that opens nothing is literal text
			if state == chunkTrail {
				return nil, &SyntaxError{Reason: "marker inside word", Pos: tok.Pos}
			}
			word.WriteString(tok.Value)
			state = chunkWord
		default:
			m, ok := markerTypes[tok.Type]
			if !ok {
				return nil, &SyntaxError{Reason: "unexpected token", Marker: tok.Value, Pos: tok.Pos}
			}
			if state == chunkWord {
				// the word's style resolves before a trailing marker flips it
				emitWord()
				state = chunkTrail
			}
			if err := apply(m, tok); err != nil {
				return nil, err
			}
		}
	}
	emitWord()
	if len(stack) > 0 {
		t := stack[len(stack)-1]
		return nil, &SyntaxError{Reason: "marker never closed", Marker: t.raw, Pos: t.pos}
	}
	return rb.finish(), nil
}

// runBuilder accumulates words into maximal same-style runs.
type runBuilder struct {
	runs []Run
	cur  []string
	sty  Style
}

func (rb *runBuilder) word(text string, style Style) {
	if len(rb.cur) > 0 && style != rb.sty {
		rb.flush()
	}
	rb.sty = style
	rb.cur = append(rb.cur, text)
}

func (rb *runBuilder) lineBreak() {
	rb.flush()
	rb.runs = append(rb.runs, Run{Break: true})
}

func (rb *runBuilder) flush() {
	if len(rb.cur) > 0 {
		rb.runs = append(rb.runs, Run{Words: rb.cur, Style: rb.sty})
		rb.cur = nil
	}
}

func (rb *runBuilder) finish() []Run {
	rb.flush()
	return trimTrailingBreaks(rb.runs)
}

func trimTrailingBreaks(runs []Run) []Run {
	for len(runs) > 0 && runs[len(runs)-1].Break {
		runs = runs[:len(runs)-1]
	}
	return runs
}

// Markup reconstructs marker text from runs. The output is not
// byte-identical to the original input, but parses to the same runs.
func Markup(runs []Run) string {
	var b strings.Builder
	cur := Plain
	needSpace := false
	for _, r := range runs {
		if r.Break {
			b.WriteByte('\n')
			needSpace = false
			continue
		}
		for _, w := range r.Words {
			if needSpace {
				b.WriteByte(' ')
			}
			b.WriteString(closers(cur &^ r.Style))
			b.WriteString(openers(r.Style &^ cur))
			b.WriteString(w)
			cur = r.Style
			needSpace = true
		}
	}
	b.WriteString(closers(cur))
	return b.String()
}

func openers(s Style) string {
	var out string
	if s&Bold != 0 {
		out += "<b>"
	}
	if s&Italic != 0 {
		out += "<i>"
	}
	return out
}

func closers(s Style) string {
	var out string
	if s&Italic != 0 {
		out += "</i>"
	}
	if s&Bold != 0 {
		out += "</b>"
	}
	return out
}

func mustTokenType(name string) lexer.TokenType {
	tt, ok := markerLexer.Symbols()[name]
	if !ok {
		panic(fmt.Sprintf("token %s not defined", name))
	}
	return tt
}
