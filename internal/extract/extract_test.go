package extract

import (
	"strings"
	"testing"
)

func TestFromHTML_TitleAndBodyText(t *testing.T) {
	html := `<!doctype html>
    <html>
      <head><title>Ai ой</title><style>a { color: red }</style></head>
      <body>
        <nav>Меню</nav>
        <main>
          <h1>Heading</h1>
          <p>I see a bee.</p>
        </main>
        <script>var io = 1;</script>
      </body>
    </html>`

	text := FromHTML([]byte(html))
	if !strings.HasPrefix(text, "Ai ой\n") {
		t.Fatalf("expected title on first line, got %q", text)
	}
	for _, want := range []string{"Меню", "Heading", "I see a bee."} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in %q", want, text)
		}
	}
	for _, unwanted := range []string{"color", "var io"} {
		if strings.Contains(text, unwanted) {
			t.Fatalf("did not expect %q in %q", unwanted, text)
		}
	}
}

func TestFromHTML_BlocksDoNotMerge(t *testing.T) {
	html := `<ul><li>a</li><li>o</li></ul><p>e</p><div>u</div>i<br>я`
	got := FromHTML([]byte(html))
	if fields := strings.Fields(got); strings.Join(fields, "|") != "a|o|e|u|i|я" {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestFromHTML_InlineElementsJoin(t *testing.T) {
	got := FromHTML([]byte(`<p><b>a</b><i>e</i> &amp; <span>io</span></p>`))
	if got != "ae & io" {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestForFormat(t *testing.T) {
	tests := []struct {
		name string
		want Extractor
	}{
		{"", PlainText{}},
		{"text", PlainText{}},
		{"TXT", PlainText{}},
		{"html", HTML{}},
		{" htm ", HTML{}},
	}
	for _, tc := range tests {
		got, err := ForFormat(tc.name)
		if err != nil {
			t.Fatalf("ForFormat(%q) error: %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("ForFormat(%q) = %T, want %T", tc.name, got, tc.want)
		}
	}
	if _, err := ForFormat("pdf"); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestPlainText_ReturnsInputUnchanged(t *testing.T) {
	in := " a\t<b>e</b>\r\n"
	if got := (PlainText{}).Extract([]byte(in)); got != in {
		t.Fatalf("got %q, want %q", got, in)
	}
}

func TestFromHTML_SkipsNoscriptAndTemplate(t *testing.T) {
	html := `<p>a</p><noscript>o</noscript><template><p>e</p></template><p>u</p>`
	got := FromHTML([]byte(html))
	if fields := strings.Fields(got); strings.Join(fields, "|") != "a|u" {
		t.Fatalf("unexpected text: %q", got)
	}
}
