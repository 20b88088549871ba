package markup

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Token
	}{
		{"empty", "", []Token{Text{""}}},
		{"plain", "hello world", []Token{Text{"hello world"}}},
		{"low", "a^low(x)b", []Token{Text{"a"}, Foreground{PenLow}, Text{"b"}}},
		{"norm", "^norm()x", []Token{Text{""}, Foreground{PenNormal}, Text{"x"}}},
		{"gaps", "a|b#c", []Token{Text{"a"}, Gap{8}, Text{"b"}, Gap{4}, Text{"c"}}},
		{"trailing gap", "a|", []Token{Text{"a"}, Gap{8}, Text{""}}},
		{"image first field", "^i(/icons/snd.xpm,1,2) 40%", []Token{Text{""}, Image{"/icons/snd.xpm"}, Text{" 40%"}}},
		{"image no comma", "^i(a.png)", []Token{Text{""}, Image{"a.png"}, Text{""}}},
		{"unknown command dropped", "x^fg(#ff0000)y", []Token{Text{"x"}, Text{"y"}}},
		{"gap chars inside args", "^i(a|b#c)", []Token{Text{""}, Image{"a|b#c"}, Text{""}}},
		{"unterminated args", "a^low(xyz", []Token{Text{"a"}, Foreground{PenLow}, Text{""}}},
		{"unterminated name", "a^low", []Token{Text{"a"}, Foreground{PenLow}, Text{""}}},
		{"caret at end", "a^", []Token{Text{"a"}, Text{""}}},
		{"unicode", "♪ 50%", []Token{Text{"♪ 50%"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTokenizeAlwaysEndsWithText(t *testing.T) {
	for _, in := range []string{"", "|", "#", "^low()", "a^i(x)", "^unknown(1,2)"} {
		got := Tokenize(in)
		if len(got) == 0 {
			t.Fatalf("Tokenize(%q) returned no tokens", in)
		}
		if _, ok := got[len(got)-1].(Text); !ok {
			t.Errorf("Tokenize(%q) last token = %#v, want Text", in, got[len(got)-1])
		}
	}
}

func TestEqualByValue(t *testing.T) {
	in := "cpu ^low()12%^norm() | ^i(x.png,3) mem#40%"
	a := Tokenize(in)
	b := Tokenize(in)
	if !Equal(a, b) {
		t.Errorf("re-tokenizing identical text should compare equal")
	}
	if Equal(a, Tokenize(in+" ")) {
		t.Errorf("different text should not compare equal")
	}
	if Equal(a, a[:len(a)-1]) {
		t.Errorf("prefix should not compare equal")
	}
}

func TestGapWidth(t *testing.T) {
	if w, ok := GapWidth('#'); !ok || w != 4 {
		t.Errorf("GapWidth('#') = %d, %v", w, ok)
	}
	if w, ok := GapWidth('|'); !ok || w != 8 {
		t.Errorf("GapWidth('|') = %d, %v", w, ok)
	}
	if _, ok := GapWidth('x'); ok {
		t.Errorf("GapWidth('x') should not be a gap")
	}
}
