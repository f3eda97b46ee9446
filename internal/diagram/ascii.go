package diagram

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// Character rows per band in the text rendering.
var asciiBands = Bands{Soil: 2, Level: 3, Footing: 2}

const asciiWidth = 24

// DrawASCII renders the cross-section for a terminal, one text row per band
// unit, with the groundwater marker on the row it falls into.
func DrawASCII(s Section) string {
	var rows []string
	rows = append(rows, fmt.Sprintf("%7s ─%s─ GL", "", strings.Repeat("─", asciiWidth)))

	rows = append(rows,
		fmt.Sprintf("%7g │%s│", s.SoilHeightMM, center("soil", '░')),
		fmt.Sprintf("%7s │%s│", "", strings.Repeat("░", asciiWidth)),
	)
	for i, h := range s.LevelHeightsMM {
		rows = append(rows,
			fmt.Sprintf("%7g ├%s┤", h, strings.Repeat("─", asciiWidth)),
			fmt.Sprintf("%7s │%s│", "", center(fmt.Sprintf("B%dF", i+1), ' ')),
			fmt.Sprintf("%7s │%s│", "", strings.Repeat(" ", asciiWidth)),
		)
	}
	rows = append(rows,
		fmt.Sprintf("%6g ┌┴%s┴┐", s.FootingThickMM, strings.Repeat("─", asciiWidth)),
		fmt.Sprintf("%6s │ %s │", "", center(fmt.Sprintf("footing (%g)", s.FootingThickMM), ' ')),
	)
	rows = append(rows, fmt.Sprintf("%6s └%s┘", "", strings.Repeat("─", asciiWidth+2)))

	// Row 0 is the GL line; band unit k occupies row k+1.
	y := WaterMarkY(s, asciiBands)
	row := 0
	if y >= 0 {
		row = int(math.Floor(y)) + 1
	}
	if row > len(rows)-2 {
		row = len(rows) - 2
	}
	rows[row] += fmt.Sprintf("  ▽ GL-%gm", s.GroundwaterDepthM)
	return strings.Join(rows, "\n") + "\n"
}

func center(text string, fill rune) string {
	n := utf8.RuneCountInString(text)
	if n >= asciiWidth {
		return text
	}
	left := (asciiWidth - n) / 2
	right := asciiWidth - n - left
	pad := string(fill)
	return strings.Repeat(pad, left) + text + strings.Repeat(pad, right)
}

// SummaryBox frames a few result lines for the CLI.
func SummaryBox(title string, lines []string) string {
	var sb strings.Builder
	width := utf8.RuneCountInString(title)
	for _, line := range lines {
		width = max(width, utf8.RuneCountInString(line))
	}
	width += 4
	pad := func(s string) string {
		return s + strings.Repeat(" ", width-2-utf8.RuneCountInString(s))
	}
	border := strings.Repeat("═", width)
	fmt.Fprintf(&sb, "  ╔%s╗\n", border)
	fmt.Fprintf(&sb, "  ║  %s║\n", pad(title))
	fmt.Fprintf(&sb, "  ╠%s╣\n", border)
	for _, line := range lines {
		fmt.Fprintf(&sb, "  ║  %s║\n", pad(line))
	}
	fmt.Fprintf(&sb, "  ╚%s╝\n", border)
	return sb.String()
}
