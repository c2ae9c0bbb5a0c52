// Package markdown flattens model output into plain chat text.
package markdown

import (
	"regexp"
	"strings"
)

var (
	codeFenceRe   = regexp.MustCompile("(?s)```.*?```")
	inlineCodeRe  = regexp.MustCompile("`([^`]+)`")
	headingRe     = regexp.MustCompile(`(?m)^[ \t]{0,3}#{1,6}[ \t]*`)
	blockquoteRe  = regexp.MustCompile(`(?m)^[ \t]*>[ \t]?`)
	horizRuleRe   = regexp.MustCompile(`(?m)^[ \t]*([-*_]){3,}[ \t]*$`)
	imageRe       = regexp.MustCompile(`!\[([^\]]*)\]\([^)]*\)`)
	linkRe        = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	boldItalicRe  = regexp.MustCompile(`\*\*\*([^*]+)\*\*\*`)
	boldRe        = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicRe      = regexp.MustCompile(`\*([^*]+)\*`)
	underBoldItRe = regexp.MustCompile(`___([^_]+)___`)
	underBoldRe   = regexp.MustCompile(`__([^_]+)__`)
	underItalicRe = regexp.MustCompile(`_([^_]+)_`)
	bulletRe      = regexp.MustCompile(`(?m)^[ \t]*[-*+][ \t]+`)
	orderedRe     = regexp.MustCompile(`(?m)^[ \t]*\d+\.[ \t]+`)
	blankLinesRe  = regexp.MustCompile(`\n{3,}`)
	lineEdgesRe   = regexp.MustCompile(`(?m)^[\t ]+|[\t ]+$`)
)

// Strip removes common markdown markup while keeping the visible text:
// code fences and inline code keep their contents, headings and blockquote
// markers are dropped, links and images collapse to their labels, emphasis
// markers and list prefixes disappear, and runs of blank lines shrink to one.
// Plain text passes through unchanged.
func Strip(input string) string {
	if input == "" {
		return ""
	}
	text := input

	text = codeFenceRe.ReplaceAllStringFunc(text, func(m string) string {
		return strings.ReplaceAll(m, "```", "")
	})
	text = inlineCodeRe.ReplaceAllString(text, "$1")

	text = headingRe.ReplaceAllString(text, "")
	text = blockquoteRe.ReplaceAllString(text, "")
	text = horizRuleRe.ReplaceAllString(text, "")

	text = imageRe.ReplaceAllString(text, "$1")
	text = linkRe.ReplaceAllString(text, "$1")

	text = boldItalicRe.ReplaceAllString(text, "$1")
	text = boldRe.ReplaceAllString(text, "$1")
	text = italicRe.ReplaceAllString(text, "$1")
	text = underBoldItRe.ReplaceAllString(text, "$1")
	text = underBoldRe.ReplaceAllString(text, "$1")
	text = underItalicRe.ReplaceAllString(text, "$1")

	text = bulletRe.ReplaceAllString(text, "")
	text = orderedRe.ReplaceAllString(text, "")

	text = blankLinesRe.ReplaceAllString(text, "\n\n")
	text = lineEdgesRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
