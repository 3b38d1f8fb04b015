package prescription

import (
	"bytes"
	"strings"

	"github.com/alecthomas/chroma/formatters"
	"github.com/alecthomas/chroma/lexers"
	"github.com/alecthomas/chroma/styles"
	"github.com/rx-tui/rx-tui/internal/theme"
)

// DimPlaceholder fills the transcript before the first request.
var DimPlaceholder = theme.DimStyle.Render("No linearizer requests yet.")

// transcriptText is the last request and reply as shown in the transcript pane.
func transcriptText(request, result string) string {
	var b strings.Builder
	for _, line := range strings.Split(request, "\n") {
		b.WriteString("> " + line + "\n")
	}
	b.WriteString(result)
	return b.String()
}

// highlight colours the transcript; grammar shell syntax is close enough to
// Haskell for the lexer to be useful.
func highlight(text string) string {
	lexer := lexers.Get("haskell")
	if lexer == nil {
		lexer = lexers.Fallback
	}

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return text
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return text
	}
	return buf.String()
}

func (m *Model) setTranscript(request, result string) {
	m.transcript.SetContent(highlight(transcriptText(request, result)))
	m.transcript.GotoBottom()
}
