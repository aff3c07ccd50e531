package mail

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"
)

// ErrTemplateNotFound is returned by Render for an unknown template id.
var ErrTemplateNotFound = errors.New("mail template not found")

// Templates renders HTML email bodies addressed by template id.
//
// The id of a template is its file name without extension, so
// "templates/user-activation-mail.html" is rendered as "user-activation-mail".
type Templates struct {
	set map[string]*template.Template
}

// NewTemplates parses every file in fsys matching pattern.
func NewTemplates(fsys fs.FS, pattern string) (*Templates, error) {
	files, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("mail: no templates match %q", pattern)
	}

	set := make(map[string]*template.Template, len(files))
	for _, file := range files {
		base := path.Base(file)
		id := strings.TrimSuffix(base, path.Ext(base))

		tpl, err := template.New(base).Option("missingkey=error").ParseFS(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("mail: parse %s: %w", file, err)
		}
		set[id] = tpl
	}

	return &Templates{set: set}, nil
}

// Render executes the template id with data.
func (t *Templates) Render(id string, data any) (string, error) {
	tpl, ok := t.set[id]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, id)
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
