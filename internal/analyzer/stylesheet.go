package analyzer

import (
	"regexp"
	"strings"
)

var (
	// A brace block containing no nested brace.
	cssRulePattern = regexp.MustCompile(`\{[^}]*\}`)

	// At-rule openers, matched through the first opening brace only.
	mediaQueryPattern = regexp.MustCompile(`@media[^{]*\{`)
	keyframesPattern  = regexp.MustCompile(`@keyframes[^{]*\{`)

	// Property-name tokens; whitespace before the colon is permitted.
	willChangePattern = regexp.MustCompile(`will-change\s*:`)
	transformPattern  = regexp.MustCompile(`transform\s*:`)
	animationPattern  = regexp.MustCompile(`animation\s*:`)
	transitionPattern = regexp.MustCompile(`transition\s*:`)

	// Selectors with at least four whitespace-separated components before
	// an opening brace. A proxy for descendant-combinator depth, not a
	// full selector parse; attribute selectors can misfire.
	complexSelectorPattern = regexp.MustCompile(`(?:[^\s{}]+\s+){3,}[^\s{}]+\s*\{`)
)

// AnalyzeStylesheet scans stylesheet text for structural and
// performance-relevant patterns. It is a pure function: identical text
// always yields identical metrics.
func AnalyzeStylesheet(cssText string) StylesheetMetrics {
	return StylesheetMetrics{
		TotalLines:           CountLines(cssText),
		TotalRules:           len(cssRulePattern.FindAllString(cssText, -1)),
		MediaQueryCount:      len(mediaQueryPattern.FindAllString(cssText, -1)),
		KeyframeCount:        len(keyframesPattern.FindAllString(cssText, -1)),
		WillChangeCount:      len(willChangePattern.FindAllString(cssText, -1)),
		TransformCount:       len(transformPattern.FindAllString(cssText, -1)),
		AnimationCount:       len(animationPattern.FindAllString(cssText, -1)),
		TransitionCount:      len(transitionPattern.FindAllString(cssText, -1)),
		ComplexSelectorCount: len(complexSelectorPattern.FindAllString(cssText, -1)),
		ImportantCount:       strings.Count(cssText, "!important"),
	}
}
