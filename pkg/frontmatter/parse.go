package frontmatter

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/ocmigrate/internal/errors"
)

// Sentinel errors for header decoding.
var (
	// ErrNoFrontmatter indicates the document has no header region.
	ErrNoFrontmatter = errors.New("no frontmatter found")

	// ErrInvalidYAML indicates the header is not valid YAML.
	ErrInvalidYAML = errors.New("invalid YAML in frontmatter")
)

// Parse decodes the header of the document read from r into matter and
// returns the body.
func Parse[T any](r io.Reader, matter *T) (body string, err error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return "", errors.Wrap(err, "reading document")
	}

	doc, ok := Split(string(content))
	if !ok {
		return "", ErrNoFrontmatter
	}

	if err := yaml.Unmarshal([]byte(doc.Header), matter); err != nil {
		return "", errors.Wrapf(ErrInvalidYAML, "%v", err)
	}

	return doc.Body, nil
}
