package frontmatter

import "strings"

// Delimiter marks the start and end of a header region.
const Delimiter = "---"

// Document is a markdown file cut at its header delimiters.
type Document struct {
	// Header is the raw text between the first and second delimiter.
	Header string

	// Body is everything after the second delimiter, including the newline
	// that ends the delimiter line. Later delimiters are part of the body.
	Body string
}

// Split cuts content into header and body.
// ok is false when content holds fewer than two delimiters or when anything
// other than whitespace precedes the first one.
func Split(content string) (doc Document, ok bool) {
	parts := strings.SplitN(content, Delimiter, 3)
	if len(parts) < 3 {
		return Document{}, false
	}
	if strings.TrimSpace(parts[0]) != "" {
		return Document{}, false
	}
	return Document{Header: parts[1], Body: parts[2]}, true
}

// HeaderLines returns the trimmed header split into lines with any trailing
// carriage returns removed. An empty header yields no lines.
func (d Document) HeaderLines() []string {
	trimmed := strings.TrimSpace(d.Header)
	if trimmed == "" {
		return nil
	}
	lines := strings.Split(trimmed, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Assemble renders header lines and the body back into a document.
func Assemble(lines []string, body string) string {
	var sb strings.Builder
	sb.WriteString(Delimiter)
	sb.WriteByte('\n')
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	sb.WriteString(Delimiter)
	sb.WriteString(body)
	return sb.String()
}
