package sanitize

import "regexp"

// Insertion and deletion spans. (?s) lets the lazy body cross newlines, so
// each match ends at the nearest closing marker after its opener.
var (
	insPattern = regexp.MustCompile(`(?s)<ins>(.*?)</ins>`)
	delPattern = regexp.MustCompile(`(?s)<del>.*?</del>`)
)

// Stats counts the spans matched by each rule.
type Stats struct {
	Insertions int
	Deletions  int
}

// Strip unwraps every <ins> span, then removes every <del> span, and
// reports how many spans each rule rewrote.
func Strip(text string) (string, Stats) {
	var st Stats
	out := dropDeletions(unwrapInsertions(text, &st.Insertions), &st.Deletions)
	return out, st
}

// StripMarks is Strip without the counts.
func StripMarks(text string) string {
	out, _ := Strip(text)
	return out
}

// UnwrapInsertions replaces each <ins>...</ins> span with its payload.
// The payload is copied literally; "$" is never expanded.
func UnwrapInsertions(text string) string {
	var n int
	return unwrapInsertions(text, &n)
}

// DropDeletions removes each <del>...</del> span, markers and payload.
func DropDeletions(text string) string {
	var n int
	return dropDeletions(text, &n)
}

func unwrapInsertions(text string, n *int) string {
	return insPattern.ReplaceAllStringFunc(text, func(span string) string {
		*n++
		return span[len("<ins>") : len(span)-len("</ins>")]
	})
}

func dropDeletions(text string, n *int) string {
	return delPattern.ReplaceAllStringFunc(text, func(string) string {
		*n++
		return ""
	})
}
