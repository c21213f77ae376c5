package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/tohojo/stgit-console/internal/format/table"
	"github.com/tohojo/stgit-console/internal/stgit"
)

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text contains ANSI escapes; skip style wrapping
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]styledLine, 0, 16)
	lines = append(lines, styledLine{text: m.header(), style: styles.Header})
	lines = append(lines, m.patchLines()...)
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.opts.ShowFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: "↑/↓ move  space mark  v range  / filter  enter show  q quit", style: styles.Footer})
	}
	lines = limitHeight(lines, m.height-2, m.width)
	lines = applyWidth(lines, m.width)

	// Bottom bar: error/status line + prompt or filter line.
	var statusLine styledLine
	if m.loading {
		statusLine = styledLine{text: fmt.Sprintf("Running stg %s…", m.pendingVerb), style: styles.Loading}
	}
	if m.errMsg != "" {
		statusLine = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	bottomLines := []styledLine{
		statusLine,
		{text: m.bottomPrompt(), raw: true},
	}
	bottomLines = applyWidth(bottomLines, m.width)
	lines = append(lines, bottomLines...)
	return renderLines(lines)
}

func (m *Model) header() string {
	branch := m.series.Branch()
	if branch == "" {
		return "stgit console"
	}
	if upstream := m.series.Upstream(); upstream != "" {
		return fmt.Sprintf("%s → %s", branch, upstream)
	}
	return branch
}

func (m *Model) patchLines() []styledLine {
	if !m.series.Initialized() {
		return []styledLine{{text: "(no patch stack here; press i to initialize)", style: styles.Info}}
	}
	entries := m.list.Entries
	if len(entries) == 0 {
		msg := "(no patches)"
		if m.list.Filter != "" {
			msg = fmt.Sprintf("No matches for %q", m.list.Filter)
		}
		return []styledLine{{text: msg, style: styles.Info}}
	}

	m.syncViewport()
	start := 0
	display := entries
	if maxRows := m.maxVisibleRows(); maxRows > 0 && len(display) > maxRows {
		start = m.list.ViewportOffset
		if start < 0 {
			start = 0
		}
		if start+maxRows > len(display) {
			start = len(display) - maxRows
			if start < 0 {
				start = 0
			}
			m.list.ViewportOffset = start
		}
		display = display[start : start+maxRows]
	}

	rows := make([][]string, 0, len(display))
	for _, entry := range display {
		rows = append(rows, m.patchRow(entry))
	}
	formatted := table.Format(rows, []table.Alignment{
		table.AlignLeft, table.AlignLeft, table.AlignLeft, table.AlignLeft,
	})

	lines := make([]styledLine, 0, len(formatted))
	for i, text := range formatted {
		idx := start + i
		lines = append(lines, styledLine{text: text, style: m.rowStyle(display[i], idx)})
	}
	return lines
}

// patchRow assembles the columns of one series line: point and mark
// glyphs, stack state, then the patch name and description.
func (m *Model) patchRow(entry stgit.PatchEntry) []string {
	glyphs := " "
	if m.marks.Contains(entry.Name) {
		glyphs = "*"
	}
	stateGlyph := entry.State.Glyph()
	if entry.Empty {
		stateGlyph = "0" + stateGlyph
	}
	name := ""
	if m.opts.ShowPatchNames {
		name = entry.Name
	}
	return []string{glyphs, stateGlyph, name, entry.Description}
}

func (m *Model) rowStyle(entry stgit.PatchEntry, idx int) *lipgloss.Style {
	if idx == m.list.Cursor {
		return styles.CursorItem
	}
	if m.list.InRange(entry.Name) {
		return styles.RangeItem
	}
	if entry.Empty {
		return styles.EmptyPatch
	}
	switch entry.State {
	case stgit.StateCurrent:
		return styles.Current
	case stgit.StateApplied:
		return styles.Applied
	case stgit.StateUnapplied:
		return styles.Unapplied
	case stgit.StateHidden:
		return styles.Hidden
	}
	return nil
}

// bottomPrompt renders the bottom input line: an active command prompt,
// a confirmation question, or the incremental filter.
func (m *Model) bottomPrompt() string {
	switch m.mode {
	case ModePrompt:
		if m.prompt != nil {
			title := m.prompt.title
			if styles.PromptTitle != nil {
				title = styles.PromptTitle.Render(title)
			}
			return title + ": " + m.prompt.value + m.renderCursor(" ")
		}
	case ModeConfirm:
		if m.confirm != nil {
			message := m.confirm.message
			if styles.PromptTitle != nil {
				message = styles.PromptTitle.Render(message)
			}
			return message + " [y/n]"
		}
	}
	return m.filterLine()
}

func (m *Model) filterLine() string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	prompt := "» "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	text := m.list.Filter
	if text == "" {
		if !m.filterActive {
			return prompt + render(styles.FilterPlaceholder, "(/ to filter)")
		}
		placeholder := "(type to filter)"
		runes := []rune(placeholder)
		caret := m.renderCursor(string(runes[0]))
		return prompt + caret + render(styles.FilterPlaceholder, string(runes[1:]))
	}
	runes := []rune(text)
	pos := m.list.FilterCursorPos()
	if pos < 0 {
		pos = 0
	}
	if pos > len(runes) {
		pos = len(runes)
	}
	before := render(styles.Filter, string(runes[:pos]))
	caretRune := " "
	if pos < len(runes) {
		caretRune = string(runes[pos])
	}
	caret := m.renderCursor(caretRune)
	after := ""
	if pos < len(runes) {
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + before + caret + after
}

func (m *Model) renderCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle.Inline(true)
	if m.filterCursor.Blink {
		return base.Render(char)
	}
	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Inline(true)
		base = base.Inherit(cursorStyle).Blink(false)
		return base.Render(char)
	}
	return base.Reverse(true).Render(char)
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{text: text, style: line.style, raw: line.raw}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if !line.raw && line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
