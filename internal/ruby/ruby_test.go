package ruby

import (
	"errors"
	"testing"
)

func TestToHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "single annotation", in: "[今日](きょう)は", want: "<ruby>今日<rt>きょう</rt></ruby>は"},
		{name: "leading and trailing text", in: "ああ[空](そら)を見る", want: "ああ<ruby>空<rt>そら</rt></ruby>を見る"},
		{name: "several annotations", in: "[君](きみ)の[名前](なまえ)", want: "<ruby>君<rt>きみ</rt></ruby>の<ruby>名前<rt>なまえ</rt></ruby>"},
		{name: "no annotation", in: "ただのテキスト", want: "ただのテキスト"},
		{name: "empty reading allowed", in: "[空]()", want: "<ruby>空<rt></rt></ruby>"},
		{name: "stray closers are plain", in: "a]b)c", want: "a]b)c"},
		{name: "empty", in: "", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ToHTML(tc.in)
			if err != nil {
				t.Fatalf("ToHTML(%q) error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("ToHTML(%q) = %q; want %q", tc.in, got, tc.want)
			}
		})
	}
}

// Le crochet porte la base et la parenthèse la lecture : dans
// "今日[きょう](は)", きょう est la base annotée par は.
func TestBracketIsBaseParenIsReading(t *testing.T) {
	in := "今日[きょう](は)"
	html, err := ToHTML(in)
	if err != nil {
		t.Fatalf("ToHTML(%q): %v", in, err)
	}
	if want := "今日<ruby>きょう<rt>は</rt></ruby>"; html != want {
		t.Fatalf("ToHTML(%q) = %q; want %q", in, html, want)
	}
	reading, err := Reading(in)
	if err != nil {
		t.Fatalf("Reading(%q): %v", in, err)
	}
	if reading != "今日は" {
		t.Fatalf("Reading(%q) = %q; want %q", in, reading, "今日は")
	}
}

func TestScanMalformed(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		wantOffset int
	}{
		{name: "unterminated base", in: "ab[今日", wantOffset: 2},
		{name: "missing reading open", in: "[今日]きょう", wantOffset: 7},
		{name: "close at end", in: "[今日]", wantOffset: 7},
		{name: "unterminated reading", in: "[a](b", wantOffset: 3},
		{name: "empty base", in: "[](b)", wantOffset: 0},
		{name: "nested base", in: "[a[b](c)", wantOffset: 2},
		{name: "nested reading", in: "[a](b(c))", wantOffset: 5},
		{name: "bracket in reading", in: "[a](b[c)", wantOffset: 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Scan(tc.in)
			if err == nil {
				t.Fatalf("Scan(%q): expected error", tc.in)
			}
			if !errors.Is(err, ErrMalformedAnnotation) {
				t.Fatalf("Scan(%q): error %v does not wrap ErrMalformedAnnotation", tc.in, err)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("Scan(%q): error %T is not *ParseError", tc.in, err)
			}
			if pe.Offset != tc.wantOffset {
				t.Fatalf("Scan(%q): offset = %d; want %d", tc.in, pe.Offset, tc.wantOffset)
			}

			// ToHTML et Reading remontent la même erreur
			if _, err := ToHTML(tc.in); !errors.Is(err, ErrMalformedAnnotation) {
				t.Fatalf("ToHTML(%q): got %v", tc.in, err)
			}
			if _, err := Reading(tc.in); !errors.Is(err, ErrMalformedAnnotation) {
				t.Fatalf("Reading(%q): got %v", tc.in, err)
			}
		})
	}
}

func TestScanSegments(t *testing.T) {
	segs, err := Scan("わ[今日](きょう)は")
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	want := []Segment{
		{Kind: KindPlain, Text: "わ"},
		{Kind: KindAnnotated, Base: "今日", Reading: "きょう"},
		{Kind: KindPlain, Text: "は"},
	}
	if len(segs) != len(want) {
		t.Fatalf("got %d segments, want %d: %#v", len(segs), len(want), segs)
	}
	for i := range want {
		if segs[i] != want[i] {
			t.Errorf("segment %d = %#v; want %#v", i, segs[i], want[i])
		}
	}

	// entrée vide : un segment brut vide, jamais une slice vide
	segs, err = Scan("")
	if err != nil || len(segs) != 1 || segs[0].Kind != KindPlain || segs[0].Text != "" {
		t.Fatalf("Scan(\"\") = %#v, %v", segs, err)
	}
}

func TestRoundTrip(t *testing.T) {
	markups := []string{
		"[今日](きょう)は",
		"[君](きみ)の[名前](なまえ)を",
		"ラララ",
		"[a(b](c)",
		"",
	}
	for _, m := range markups {
		html, err := ToHTML(m)
		if err != nil {
			t.Fatalf("ToHTML(%q): %v", m, err)
		}
		if back := FromHTML(html); back != m {
			t.Errorf("FromHTML(ToHTML(%q)) = %q", m, back)
		}

		segs, err := Scan(m)
		if err != nil {
			t.Fatalf("Scan(%q): %v", m, err)
		}
		if j := Join(segs); j != m {
			t.Errorf("Join(Scan(%q)) = %q", m, j)
		}
	}

	presentations := []string{
		"<ruby>今日<rt>きょう</rt></ruby>は",
		"前<ruby>夜<rt>よる</rt></ruby>と<ruby>朝<rt>あさ</rt></ruby>",
	}
	for _, p := range presentations {
		got, err := ToHTML(FromHTML(p))
		if err != nil {
			t.Fatalf("ToHTML(FromHTML(%q)): %v", p, err)
		}
		if got != p {
			t.Errorf("ToHTML(FromHTML(%q)) = %q", p, got)
		}
	}
}

func TestReading(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "[今日](きょう)は", want: "きょうは"},
		{in: "[君](きみ)の[名前](なまえ)", want: "きみのなまえ"},
		{in: "ひらがなだけ", want: "ひらがなだけ"},
		{in: "[空]()", want: ""},
	}
	for _, tc := range tests {
		got, err := Reading(tc.in)
		if err != nil {
			t.Fatalf("Reading(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("Reading(%q) = %q; want %q", tc.in, got, tc.want)
		}
	}
}

func TestSanitize(t *testing.T) {
	if got := Sanitize("<b>"); got != "&lt;b&gt;" {
		t.Fatalf("Sanitize(<b>) = %q", got)
	}

	// "&" n'est pas échappé : un texte déjà échappé ressort identique, et on ne
	// peut plus distinguer "&lt;" tapé par l'auteur d'un "<" échappé.
	once := Sanitize("a < b & c")
	if once != "a &lt; b & c" {
		t.Fatalf("Sanitize once = %q", once)
	}
	if twice := Sanitize(once); twice != once {
		t.Fatalf("Sanitize twice = %q; documented behaviour is unchanged output", twice)
	}
	if Sanitize("&lt;") != Sanitize("<") {
		t.Fatalf("literal entity and escaped '<' are expected to collide")
	}
}
