package htmlscan

import "strings"

// CountEmptySpans counts <span ...></span> pairs with nothing but whitespace inside.
func CountEmptySpans(src string) int {
	return len(EmptySpanExpr.FindAllStringIndex(src, -1))
}

// CountComments counts HTML comments, conditional ones included.
func CountComments(src string) int {
	return len(CommentExpr.FindAllStringIndex(src, -1))
}

func CountNbsp(src string) int {
	return len(nbspExpr.FindAllStringIndex(src, -1))
}

// DataURIImages returns the count and total bytes of base64 images inlined
// into the markup.
func DataURIImages(src string) (int, uint64) {
	hits := dataURIExpr.FindAllStringIndex(src, -1)
	var total uint64
	for _, h := range hits {
		total += uint64(h[1] - h[0])
	}
	return len(hits), total
}

// IsConditionalComment reports whether a comment opens or closes conditional markup.
func IsConditionalComment(comment string) bool {
	for _, prefix := range ConditionalCommentPrefixes {
		if strings.HasPrefix(comment, prefix) {
			return true
		}
	}
	return false
}
