package ui

import "strings"

// lineBreaks are the runes a URL line prefers to end on
const lineBreaks = "/?&=-_ "

// fitLines lays text out in at most maxLines lines, each no wider than width
// as reported by measure. A line ends after the last break rune that fits so
// path segments stay whole. Overflowing text ends with an ellipsis.
func fitLines(text string, width float32, maxLines int, measure func(string) float32) string {
	if width <= 0 || maxLines <= 0 {
		return ""
	}

	// Collapse control characters so the line count stays exact
	runes := []rune(strings.Join(strings.Fields(text), " "))

	lines := make([]string, 0, maxLines)
	for start := 0; start < len(runes) && len(lines) < maxLines; {
		end := longestFit(runes[start:], width, "", measure) + start

		if end == len(runes) {
			lines = append(lines, string(runes[start:]))
			break
		}

		if len(lines) == maxLines-1 {
			end = longestFit(runes[start:], width, string(TruncationEllipsis), measure) + start
			lines = append(lines, string(runes[start:end])+string(TruncationEllipsis))
			break
		}

		for i := end - 1; i > start; i-- {
			if strings.ContainsRune(lineBreaks, runes[i]) {
				end = i + 1
				break
			}
		}
		lines = append(lines, strings.TrimRight(string(runes[start:end]), " "))

		start = end
		for start < len(runes) && runes[start] == ' ' {
			start++
		}
	}

	return strings.Join(lines, "\n")
}

// longestFit returns how many leading runes fit in width with suffix appended.
// Without a suffix at least one rune is taken so layout makes progress.
func longestFit(runes []rune, width float32, suffix string, measure func(string) float32) int {
	n := 0
	for n < len(runes) && measure(string(runes[:n+1])+suffix) <= width {
		n++
	}
	if n == 0 && suffix == "" && len(runes) > 0 {
		return 1
	}
	return n
}
