package htmlscan

import (
	"regexp"
	"strings"
)

type SourceClass string

const (
	SourceWordProcessor  SourceClass = "word_processor"
	SourceOnlineDocument SourceClass = "online_document"
	SourceRichText       SourceClass = "rich_text"
)

func (c SourceClass) Label() string {
	switch c {
	case SourceWordProcessor:
		return "word processor"
	case SourceOnlineDocument:
		return "online document"
	case SourceRichText:
		return "rich text editor"
	}
	return string(c)
}

// Pattern is one entry of a classification table.
type Pattern struct {
	Name        string
	Description string
	Expr        *regexp.Regexp
	// Rewrite replaces a match that is only partly bloat. Nil removes the
	// whole match.
	Rewrite     func(match string) string
}

// Remove strips the bloat this pattern matches from src.
func (p Pattern) Remove(src string) string {
	if p.Rewrite == nil {
		return p.Expr.ReplaceAllLiteralString(src, "")
	}
	return p.Expr.ReplaceAllStringFunc(src, p.Rewrite)
}

// Find counts the matches that carry bloat and the bytes Remove would drop.
func (p Pattern) Find(src string) (int, uint64) {
	var hits int
	var bloat uint64
	for _, m := range p.Expr.FindAllString(src, -1) {
		removed := len(m)
		if p.Rewrite != nil {
			removed -= len(p.Rewrite(m))
		}
		if removed > 0 {
			hits++
			bloat += uint64(removed)
		}
	}
	return hits, bloat
}

// stripVendorClasses drops the Mso* tokens of a class attribute, and the
// attribute itself when nothing else is left.
func stripVendorClasses(attr string) string {
	eq := strings.IndexByte(attr, '=')
	value := strings.TrimSpace(attr[eq+1:])
	quote := ""
	if value[0] == '"' || value[0] == '\'' {
		quote = value[:1]
		value = value[1 : len(value)-1]
	}

	var kept []string
	for _, token := range strings.Fields(value) {
		if !strings.HasPrefix(token, "Mso") {
			kept = append(kept, token)
		}
	}
	if len(kept) == 0 {
		return ""
	}
	return attr[:eq+1] + quote + strings.Join(kept, " ") + quote
}

// PatternTable groups the patterns that identify one paste source.
type PatternTable struct {
	Class    SourceClass
	Patterns []Pattern
}

// VML (xmlns:v, v:*) is not matched: Outlook draws buttons and backgrounds with it.
var WordProcessorPatterns = PatternTable{
	Class: SourceWordProcessor,
	Patterns: []Pattern{
		{
			Name:        "mso-inline-style",
			Description: "vendor-prefixed inline style declarations",
			Expr:        regexp.MustCompile(`(?i)mso-[a-z0-9-]+\s*:\s*[^;"'}>]*;?`),
		},
		{
			Name:        "mso-class",
			Description: "vendor style class names",
			Expr:        regexp.MustCompile(`\s(?i:class)\s*=\s*(?:"[^"]*\bMso[\w-]*[^"]*"|'[^']*\bMso[\w-]*[^']*'|Mso[\w-]*)`),
			Rewrite:     stripVendorClasses,
		},
		{
			Name:        "office-xml-block",
			Description: "conditional Office XML blocks",
			Expr:        regexp.MustCompile(`(?i)<!--\[if gte mso \d+\]>\s*<xml>[\s\S]*?</xml>\s*<!\[endif\]-->`),
		},
		{
			Name:        "office-tag",
			Description: "vendor XML tags",
			Expr:        regexp.MustCompile(`(?i)</?[ow]:[a-z]+[^>]*>`),
		},
		{
			Name:        "office-namespace",
			Description: "vendor XML namespace declarations",
			Expr:        regexp.MustCompile(`(?i)\sxmlns:[owm]\s*=\s*"[^"]*"`),
		},
	},
}

var OnlineDocumentPatterns = PatternTable{
	Class: SourceOnlineDocument,
	Patterns: []Pattern{
		{
			Name:        "docs-guid",
			Description: "internal editor GUID markers",
			Expr:        regexp.MustCompile(`(?i)\s?id\s*=\s*"docs-internal-guid-[0-9a-f-]*"`),
		},
		{
			Name:        "generated-class",
			Description: "generated class names",
			Expr:        regexp.MustCompile(`\sclass\s*=\s*"c\d+(?:\s+c\d+)*"`),
		},
		{
			Name:        "smartmail-attribute",
			Description: "smart-mail data attributes",
			Expr:        regexp.MustCompile(`(?i)\sdata-smartmail\s*=\s*"[^"]*"`),
		},
		{
			Name:        "default-direction",
			Description: "default direction attributes",
			Expr:        regexp.MustCompile(`(?i)\sdir\s*=\s*"ltr"`),
		},
	},
}

var RichTextPatterns = PatternTable{
	Class: SourceRichText,
	Patterns: []Pattern{
		{
			Name:        "font-tag",
			Description: "legacy font tags",
			Expr:        regexp.MustCompile(`(?i)</?font\b[^>]*>`),
		},
		{
			Name:        "font-stack",
			Description: "complex font-family stacks",
			Expr:        regexp.MustCompile(`(?i)font-family\s*:\s*[^;"']*,[^;"']*,[^;"']*`),
		},
		{
			Name:        "empty-styled-span",
			Description: "empty styled spans",
			Expr:        regexp.MustCompile(`(?i)<span\s+style\s*=\s*"[^"]*"\s*>\s*</span>`),
		},
		{
			Name:        "empty-break-div",
			Description: "empty divs holding a line break",
			Expr:        regexp.MustCompile(`(?i)<div[^>]*>\s*<br\s*/?>\s*</div>`),
		},
		{
			Name:        "nbsp",
			Description: "non-breaking space entities",
			Expr:        nbspExpr,
		},
	},
}

// Tables lists every classification table in reporting order.
var Tables = []PatternTable{WordProcessorPatterns, OnlineDocumentPatterns, RichTextPatterns}

var (
	tagExpr         = regexp.MustCompile(`<(/?)([a-zA-Z][a-zA-Z0-9:-]*)([^>]*)>`)
	inlineStyleExpr = regexp.MustCompile(`(?i)\sstyle\s*=\s*(?:"[^"]*"|'[^']*')`)

	EmptySpanExpr = regexp.MustCompile(`(?i)<span\b[^>]*>\s*</span>`)
	CommentExpr   = regexp.MustCompile(`<!--[\s\S]*?-->`)
	WhitespaceRun = regexp.MustCompile(`\s+`)
	nbspExpr      = regexp.MustCompile(`(?i)&nbsp;`)
	dataURIExpr   = regexp.MustCompile(`(?i)data:image/[a-z0-9.+-]+;base64,[a-z0-9+/=\s]+`)
)

// ConditionalCommentPrefixes open or close conditional markup that some
// clients depend on, so those comments must survive sanitization.
var ConditionalCommentPrefixes = []string{`<!--[if`, `<!--<![endif]`}

// voidElements never push onto the nesting stack.
var voidElements = map[string]struct{}{
	"br":    {},
	"hr":    {},
	"img":   {},
	"input": {},
	"meta":  {},
	"link":  {},
}
