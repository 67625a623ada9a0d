package render

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	md = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// HTML converts Markdown to sanitized HTML fragment.
func HTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return sanitizer.Sanitize(buf.String()), nil
}

// Page wraps an HTML fragment in the shared page template.
func Page(title, body string) string {
	return fmt.Sprintf(`<html>
	<head>
		<title>%s</title>
		<link rel="stylesheet" href="https://cdnjs.cloudflare.com/ajax/libs/github-markdown-css/5.2.0/github-markdown.min.css">
		<style>
			.markdown-body {
				max-width: 800px;
				margin: 0 auto;
				padding: 20px;
			}
		</style>
	</head>
	<body class="markdown-body">
		%s
	</body>
</html>`, title, body)
}
