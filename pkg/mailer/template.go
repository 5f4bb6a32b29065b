package mailer

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

var frontmatterDelim = []byte("---")

// splitFrontmatter separates optional YAML frontmatter from the template
// body. Templates without an opening delimiter pass through unchanged with
// empty metadata. A template that opens frontmatter but never closes it is
// rejected.
func splitFrontmatter(content []byte) (map[string]any, string, error) {
	if !bytes.HasPrefix(content, frontmatterDelim) {
		return map[string]any{}, string(content), nil
	}

	rest := bytes.TrimLeft(bytes.TrimPrefix(content, frontmatterDelim), "\r\n")
	if len(rest) == 0 {
		return nil, "", fmt.Errorf("%w: no content after opening delimiter", ErrInvalidFrontmatter)
	}

	end := bytes.Index(rest, frontmatterDelim)
	if end == -1 {
		return nil, "", fmt.Errorf("%w: closing delimiter not found", ErrInvalidFrontmatter)
	}

	meta := map[string]any{}
	if head := bytes.TrimSpace(rest[:end]); len(head) > 0 {
		if err := yaml.Unmarshal(head, &meta); err != nil {
			return nil, "", fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
		}
	}

	body := rest[end+len(frontmatterDelim):]
	// Drop the single newline following the closing delimiter.
	switch {
	case bytes.HasPrefix(body, []byte("\r\n")):
		body = body[2:]
	case bytes.HasPrefix(body, []byte("\n")):
		body = body[1:]
	}

	return meta, string(body), nil
}
