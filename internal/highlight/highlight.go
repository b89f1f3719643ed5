// Package highlight wraps keyword occurrences in styling markup.
//
// All matches are computed against the original text in a single pass and
// resolved into disjoint spans before any markup is written, so a keyword can
// never match inside markup produced for another keyword.
package highlight

import (
	"html/template"
	"regexp"
	"sort"
	"strings"
)

// Span is a half-open byte range [Start, End) of the input that matched
// the keyword at position Keyword in the list.
type Span struct {
	Start   int
	End     int
	Keyword int
}

// Len returns the span length in bytes.
func (s Span) Len() int { return s.End - s.Start }

func (s Span) overlaps(o Span) bool {
	return s.Start < o.End && o.Start < s.End
}

// Highlighter wraps keyword matches in <span class="...">.
type Highlighter struct {
	class    string
	keywords []string
	matchers []*regexp.Regexp
}

// New builds a Highlighter for keywords, matched case-insensitively as
// literals. Empty keywords are ignored; list order is the tie-break.
func New(keywords []string, class string) *Highlighter {
	h := &Highlighter{class: class}
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		h.keywords = append(h.keywords, kw)
		h.matchers = append(h.matchers, regexp.MustCompile("(?i)"+regexp.QuoteMeta(kw)))
	}
	return h
}

// Keywords returns the effective keyword list.
func (h *Highlighter) Keywords() []string {
	return append([]string(nil), h.keywords...)
}

// Class returns the class attribute applied to wrapped matches.
func (h *Highlighter) Class() string { return h.class }

// Spans returns the disjoint keyword spans of text, ordered by Start.
// Overlapping candidates are resolved longest first, then by keyword list
// order, then leftmost. Regions this Highlighter already wrapped are
// resolved: nothing inside them matches, so highlighting is idempotent.
func (h *Highlighter) Spans(text string) []Span {
	if h == nil || text == "" || len(h.matchers) == 0 {
		return nil
	}

	wrapped := h.wrapped(text)
	var candidates []Span
	for i, re := range h.matchers {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			c := Span{Start: loc[0], End: loc[1], Keyword: i}
			if c.Len() > 0 && !overlapsAny(wrapped, c) {
				candidates = append(candidates, c)
			}
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		ca, cb := candidates[a], candidates[b]
		if ca.Len() != cb.Len() {
			return ca.Len() > cb.Len()
		}
		if ca.Keyword != cb.Keyword {
			return ca.Keyword < cb.Keyword
		}
		return ca.Start < cb.Start
	})

	accepted := make([]Span, 0, len(candidates))
	for _, c := range candidates {
		if !overlapsAny(accepted, c) {
			accepted = append(accepted, c)
		}
	}

	sort.Slice(accepted, func(a, b int) bool { return accepted[a].Start < accepted[b].Start })
	return accepted
}

// wrapped returns the regions of text enclosed in this Highlighter's own
// markup, open tag through close tag.
func (h *Highlighter) wrapped(text string) []Span {
	open := h.openTag()
	var out []Span
	for pos := 0; pos < len(text); {
		i := strings.Index(text[pos:], open)
		if i < 0 {
			break
		}
		start := pos + i
		body := start + len(open)
		j := strings.Index(text[body:], closeTag)
		if j < 0 {
			break
		}
		end := body + j + len(closeTag)
		out = append(out, Span{Start: start, End: end, Keyword: -1})
		pos = end
	}
	return out
}

func (h *Highlighter) openTag() string {
	return `<span class="` + template.HTMLEscapeString(h.class) + `">`
}

const closeTag = `</span>`

func overlapsAny(spans []Span, s Span) bool {
	for _, o := range spans {
		if o.overlaps(s) {
			return true
		}
	}
	return false
}

// Highlight returns text with every resolved span wrapped in markup. Text
// outside spans is copied verbatim, so text without matches is returned
// unchanged.
func (h *Highlighter) Highlight(text string) string {
	return h.render(text, func(s string) string { return s })
}

// HTML is like Highlight but escapes the text of every segment, so the
// result is safe to emit into a template whatever text contains.
func (h *Highlighter) HTML(text string) template.HTML {
	return template.HTML(h.render(text, template.HTMLEscapeString)) //nolint:gosec // segments are escaped
}

func (h *Highlighter) render(text string, escape func(string) string) string {
	spans := h.Spans(text)
	if len(spans) == 0 {
		return escape(text)
	}

	open := h.openTag()

	var b strings.Builder
	b.Grow(len(text) + len(spans)*(len(open)+len(closeTag)))

	pos := 0
	for _, s := range spans {
		b.WriteString(escape(text[pos:s.Start]))
		b.WriteString(open)
		b.WriteString(escape(text[s.Start:s.End]))
		b.WriteString(closeTag)
		pos = s.End
	}
	b.WriteString(escape(text[pos:]))
	return b.String()
}
