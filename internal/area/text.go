package area

import (
	"github.com/daviddao/hlbar/internal/canvas"
	"github.com/daviddao/hlbar/internal/markup"
)

// Text is a generic area whose content is a markup token sequence.
type Text struct {
	base
	tokens []markup.Token
}

// Tokens returns the current token sequence.
func (a *Text) Tokens() []markup.Token {
	return a.tokens
}

// SetText tokenizes raw and keeps the result if it differs from the current
// sequence.
func (a *Text) SetText(raw string) bool {
	toks := markup.Tokenize(raw)
	if markup.Equal(toks, a.tokens) {
		return false
	}
	a.tokens = toks
	return true
}

func (a *Text) Width(m canvas.Measurer) int {
	w := 0
	for _, tok := range a.tokens {
		w += tokenWidth(m, tok)
	}
	return w
}

func (a *Text) Render(s canvas.Surface, x, y, h int) {
	s.Save()
	defer s.Restore()
	for _, tok := range a.tokens {
		w := tokenWidth(s, tok)
		switch tok := tok.(type) {
		case markup.Text:
			s.DrawText(x, y, w, h, tok.S)
		case markup.Foreground:
			s.SetPen(a.style.PenColor(tok.Pen))
		case markup.Image:
			if _, ih := s.ImageSize(tok.Path); w > 0 {
				s.DrawImage(x, y+(h-ih)/2, tok.Path)
			}
		}
		x += w
	}
}

func tokenWidth(m canvas.Measurer, tok markup.Token) int {
	switch tok := tok.(type) {
	case markup.Text:
		return m.TextWidth(tok.S)
	case markup.Gap:
		return tok.Width
	case markup.Image:
		w, _ := m.ImageSize(tok.Path)
		return w
	}
	return 0
}
