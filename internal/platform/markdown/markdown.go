// Package markdown renders and updates markdown documents that carry YAML
// frontmatter and generated sections.
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const fence = "---\n"

// Document is a markdown file split into its frontmatter and body.
type Document struct {
	Meta map[string]any
	Body string
}

// Parse splits content into frontmatter and body. Content without a leading
// fence has empty metadata.
func Parse(content string) (Document, error) {
	if !strings.HasPrefix(content, fence) {
		return Document{Meta: map[string]any{}, Body: content}, nil
	}
	rest := content[len(fence):]
	end := strings.Index(rest, "\n"+fence)
	if end < 0 {
		return Document{}, fmt.Errorf("parse frontmatter: missing closing fence")
	}
	meta := map[string]any{}
	if err := yaml.Unmarshal([]byte(rest[:end]), &meta); err != nil {
		return Document{}, fmt.Errorf("parse frontmatter: %w", err)
	}
	return Document{Meta: meta, Body: rest[end+1+len(fence):]}, nil
}

// Render writes the document back with its metadata as YAML frontmatter.
func (d Document) Render() (string, error) {
	var buf bytes.Buffer
	if len(d.Meta) > 0 {
		raw, err := yaml.Marshal(d.Meta)
		if err != nil {
			return "", fmt.Errorf("render frontmatter: %w", err)
		}
		buf.WriteString(fence)
		buf.Write(raw)
		buf.WriteString(fence)
		if !strings.HasPrefix(d.Body, "\n") {
			buf.WriteByte('\n')
		}
	}
	buf.WriteString(d.Body)
	return buf.String(), nil
}

// SetSection replaces the text between the begin and end markers, appending a
// new marked section when the markers are absent. Text outside the markers is
// left untouched.
func (d *Document) SetSection(name, generated string) {
	begin := "<!-- " + name + ":begin -->"
	end := "<!-- " + name + ":end -->"
	section := begin + "\n" + strings.TrimRight(generated, "\n") + "\n" + end

	i := strings.Index(d.Body, begin)
	j := strings.Index(d.Body, end)
	switch {
	case i >= 0 && j > i:
		d.Body = d.Body[:i] + section + d.Body[j+len(end):]
	case strings.TrimSpace(d.Body) == "":
		d.Body = section + "\n"
	default:
		d.Body = strings.TrimRight(d.Body, "\n") + "\n\n" + section + "\n"
	}
}
