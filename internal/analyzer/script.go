package analyzer

import (
	"regexp"
	"strings"
)

var (
	// Embedded script blocks, case-insensitive, non-greedy content
	// capture so adjacent blocks are not merged.
	scriptBlockPattern = regexp.MustCompile(`(?is)<script[^>]*>(.*?)</script>`)

	// querySelector also covers querySelectorAll; getElementsBy covers any
	// identifier with that prefix (ClassName, TagName, Name, ...).
	domQueryPattern = regexp.MustCompile(`querySelector|getElementById|getElementsBy\w*`)
)

// AnalyzeScripts extracts every embedded script block from a markup
// document in document order and accumulates pattern counts across all
// blocks. Markup with no script blocks yields all-zero metrics; that is
// a valid result, not an error.
func AnalyzeScripts(markupText string) ScriptMetrics {
	var m ScriptMetrics

	blocks := scriptBlockPattern.FindAllStringSubmatch(markupText, -1)
	m.ScriptBlockCount = len(blocks)

	for _, block := range blocks {
		body := block[1]
		m.TotalLines += CountLines(body)
		m.EventListenerCount += strings.Count(body, "addEventListener")
		m.SetTimeoutCount += strings.Count(body, "setTimeout")
		m.SetIntervalCount += strings.Count(body, "setInterval")
		m.AnimationFrameCount += strings.Count(body, "requestAnimationFrame")
		m.DOMQueryCount += len(domQueryPattern.FindAllString(body, -1))
	}

	return m
}
