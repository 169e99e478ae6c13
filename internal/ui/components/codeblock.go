// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/modeldeck-tui/internal/ui/styles"
)

// =============================================================================
// CODE BLOCK RENDERER
// =============================================================================

// CodeBlock renders one fenced code block with syntax highlighting.
// Used when markdown rendering is disabled but replies still carry code.
type CodeBlock struct {
	Language string
	Code     string
	MaxWidth int
}

// NewCodeBlock creates a new code block.
func NewCodeBlock(language, code string) CodeBlock {
	return CodeBlock{
		Language: language,
		Code:     code,
		MaxWidth: 80,
	}
}

// Render renders the code block with highlighting and a language badge.
func (c CodeBlock) Render() string {
	code := strings.TrimSpace(c.Code)

	language := c.Language
	if language == "" {
		language = detectLanguage(code)
	}

	highlighted := HighlightCode(code, language)

	var header string
	if c.Language != "" {
		header = lipgloss.NewStyle().
			Foreground(styles.TextMuted).
			Background(styles.Overlay).
			Padding(0, 1).
			Bold(true).
			Render(c.Language) + "\n"
	}

	maxWidth := c.MaxWidth - 4
	if maxWidth < 20 {
		maxWidth = 20
	}

	return lipgloss.NewStyle().
		Background(styles.SurfaceDim).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.Overlay).
		Padding(1, 2).
		MaxWidth(maxWidth).
		Render(header + highlighted)
}

// ParseCodeBlocks replaces fenced code blocks in text with rendered,
// highlighted versions and leaves the surrounding prose untouched. An
// unclosed fence at the end of the text still renders as a block.
func ParseCodeBlocks(text string, maxWidth int) string {
	var out []string
	var fence []string
	fenceLang := ""
	open := false

	flush := func() {
		block := NewCodeBlock(fenceLang, strings.Join(fence, "\n"))
		block.MaxWidth = maxWidth
		out = append(out, block.Render())
		fence = nil
		fenceLang = ""
	}

	for _, line := range strings.Split(text, "\n") {
		switch {
		case strings.HasPrefix(line, "```"):
			if open {
				flush()
			} else {
				fenceLang = strings.TrimSpace(line[3:])
			}
			open = !open
		case open:
			fence = append(fence, line)
		default:
			out = append(out, line)
		}
	}
	if open && len(fence) > 0 {
		flush()
	}

	return strings.Join(out, "\n")
}

// =============================================================================
// SYNTAX HIGHLIGHTING
// =============================================================================

// HighlightCode runs code through chroma with the monokai style and a
// 256-color terminal formatter. Any highlighting failure returns the
// code unmodified; a reply must never be lost to a lexer error.
func HighlightCode(code, language string) string {
	lexer := pickLexer(code, language)

	tokens, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var out strings.Builder
	style := chromaStyles.Get("monokai")
	if style == nil {
		style = chromaStyles.Fallback
	}
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}
	if formatter.Format(&out, style, tokens) != nil {
		return code
	}
	return out.String()
}

func pickLexer(code, language string) chroma.Lexer {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer)
}

// detectLanguage guesses the language by content for unlabeled fences.
func detectLanguage(code string) string {
	if lexer := lexers.Analyse(code); lexer != nil {
		return lexer.Config().Name
	}
	return ""
}
