// SPDX-License-Identifier: AGPL-3.0-or-later

package projection

import (
	"slices"
	"strings"
)

var cellEscaper = strings.NewReplacer(
	`|`, `\|`,
	"\r\n", "<br>",
	"\n", "<br>",
)

// SortedKeys returns the keys of m in lexical order.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Cell makes s safe inside a Markdown table cell. Answers come from free-form
// issue comments, so a stray pipe would otherwise split the row.
func Cell(s string) string {
	return cellEscaper.Replace(s)
}

// RenderTable renders a Markdown table with every cell escaped.
// Rows are emitted in the order given.
func RenderTable(headers []string, rows [][]string) string {
	var b strings.Builder
	writeRow(&b, headers)

	b.WriteString("|")
	for range headers {
		b.WriteString(" --- |")
	}
	b.WriteString("\n")

	for _, row := range rows {
		writeRow(&b, row)
	}
	return b.String()
}

func writeRow(b *strings.Builder, cells []string) {
	b.WriteString("|")
	for _, c := range cells {
		b.WriteString(" " + Cell(c) + " |")
	}
	b.WriteString("\n")
}

// RenderList renders an unordered Markdown list, one item per line.
func RenderList(items []string) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString("- " + item + "\n")
	}
	return b.String()
}

// RenderHeader renders a Markdown heading followed by a blank line.
func RenderHeader(level int, text string) string {
	return strings.Repeat("#", level) + " " + text + "\n\n"
}
