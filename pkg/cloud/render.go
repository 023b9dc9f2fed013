package cloud

import (
	"bufio"
	"fmt"
	"io"
)

// DefaultStylesheetURL supplies the f11..f47 classes the spans reference.
const DefaultStylesheetURL = "http://web.cse.ohio-state.edu/software/2231/web-sw2/assignments/projects/tag-cloud-generator/data/tagcloud.css"

// WritePage renders sel as a complete HTML document on w. The heading states
// the number of rendered words, which can be fewer than the user asked for.
// An empty selection still yields a well-formed page with an empty container.
// Word text is emitted as-is; it was lowercased upstream and gets no further
// transformation.
func WritePage(w io.Writer, sel Selection, scale FontScale, inputName, stylesheetURL string) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "<html>")
	fmt.Fprintln(bw, "<head>")
	fmt.Fprintf(bw, "<title>Top %d words in %s</title>\n", len(sel.Words), inputName)
	fmt.Fprintf(bw, "<link href=%q rel=\"stylesheet\" type=\"text/css\">\n", stylesheetURL)
	fmt.Fprintln(bw, "</head>")
	fmt.Fprintln(bw, "<body>")
	fmt.Fprintf(bw, "<h2>Top %d words in %s</h2>\n", len(sel.Words), inputName)
	fmt.Fprintln(bw, "<hr>")
	fmt.Fprintln(bw, "<div class=\"cdiv\">")
	fmt.Fprintln(bw, "<p class=\"cbox\">")

	for _, p := range sel.Words {
		size := scale.Size(sel.Min, sel.Max, p.Count)
		fmt.Fprintf(bw, "<span style=\"cursor:default\" class=\"f%d\" title=\"count: %d\">%s</span>\n",
			size, p.Count, p.Word)
	}

	fmt.Fprintln(bw, "</p>")
	fmt.Fprintln(bw, "</div>")
	fmt.Fprintln(bw, "</body>")
	fmt.Fprintln(bw, "</html>")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing tag cloud: %w", err)
	}
	return nil
}
