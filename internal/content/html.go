package content

import "strings"

// These builders emit the article components the blog's stylesheet knows
// about. Indentation matches the surrounding template so generated files
// stay readable when inspected.

const (
	layersIcon = `<svg viewBox="0 0 24 24" stroke-width="2"><path d="M12 2L2 7l10 5 10-5-10-5z"/><path d="M2 17l10 5 10-5M2 12l10 5 10-5"/></svg>`
	checkIcon  = `<svg viewBox="0 0 24 24" stroke-width="2"><path d="M22 11.08V12a10 10 0 1 1-5.93-9.14"/><path d="M22 4L12 14.01l-3-3"/></svg>`
)

// Callout renders a highlighted box. Success styling swaps the accent color
// and icon.
func Callout(title, body string, success bool) string {
	icon := layersIcon
	cls := "callout"
	if success {
		icon = checkIcon
		cls = "callout success"
	}
	var b strings.Builder
	b.WriteString("\n            <div class=\"" + cls + "\">\n")
	b.WriteString("                <div class=\"callout-icon\">" + icon + "</div>\n")
	b.WriteString("                <p class=\"callout-title\">" + title + "</p>\n")
	b.WriteString("                <p>" + body + "</p>\n")
	b.WriteString("            </div>\n")
	return b.String()
}

// DataCard is one cell in a 2-column stat grid.
type DataCard struct {
	Title     string
	Highlight string
	Desc      string
}

// DataCards renders a grid of data cards.
func DataCards(cards []DataCard) string {
	var b strings.Builder
	b.WriteString("            <div class=\"card-grid\">\n")
	for _, c := range cards {
		b.WriteString("                <div class=\"data-card\">\n")
		b.WriteString("                    <h4>" + c.Title + "</h4>\n")
		b.WriteString("                    <div class=\"highlight\">" + c.Highlight + "</div>\n")
		b.WriteString("                    <p>" + c.Desc + "</p>\n")
		b.WriteString("                </div>\n")
	}
	b.WriteString("            </div>\n")
	return b.String()
}

// ListCard is one row in an icon list.
type ListCard struct {
	Title string
	Desc  string
}

// ListCards renders a vertical list of icon cards.
func ListCards(items []ListCard) string {
	var b strings.Builder
	b.WriteString("            <div class=\"list-cards\">\n")
	for _, item := range items {
		b.WriteString("                <div class=\"list-card\">\n")
		b.WriteString("                    <div class=\"list-card-icon\">" + checkIcon + "</div>\n")
		b.WriteString("                    <div class=\"list-card-info\">\n")
		b.WriteString("                        <h5>" + item.Title + "</h5>\n")
		b.WriteString("                        <p>" + item.Desc + "</p>\n")
		b.WriteString("                    </div>\n")
		b.WriteString("                </div>\n")
	}
	b.WriteString("            </div>\n")
	return b.String()
}

// Blockquote renders a styled pull quote.
func Blockquote(text string) string {
	return "\n            <blockquote>\n                <p>" + text + "</p>\n            </blockquote>\n"
}
