package page

import "strings"

// Measurer returns the rendered width of text at a font size.
type Measurer func(text string, size int32) float32

// Wrap breaks text into lines no wider than width. Words longer than a line
// are kept whole on their own line. Blank input gives no lines.
func Wrap(text string, size int32, width float32, measure Measurer) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			candidate := line + " " + w
			if measure(candidate, size) <= width {
				line = candidate
				continue
			}
			lines = append(lines, line)
			line = w
		}
		lines = append(lines, line)
	}
	return lines
}
