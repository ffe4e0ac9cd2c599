package rawsite

import (
	"fmt"
	"os"
	"path/filepath"
)

// The five chrome files every site carries under its template directory.
const (
	TemplateHeaderFile   = "cms_header.txt"
	TemplateFooterFile   = "cms_footer.txt"
	TemplateBeginFile    = "cms_begin.txt"
	TemplateEndFile      = "cms_end.txt"
	TemplateSkeletonFile = "cms_skeleton.txt"
)

// TemplateSet holds the four structural templates wrapped around every page.
// The skeleton is not part of the set; it is only read when scaffolding a new
// fragment.
type TemplateSet struct {
	Header string
	Footer string
	Begin  string
	End    string
}

// LoadTemplate reads one template file as opaque text. The pipeline never
// parses template structure beyond placeholder searches, so there is nothing
// to validate here.
func LoadTemplate(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrTemplateMissing, path, err)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %s: not a regular file", ErrTemplateMissing, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrTemplateMissing, path, err)
	}
	return string(data), nil
}

// LoadTemplateSet loads the four structural templates from dir. A missing
// file fails the page currently being assembled, not the whole run.
func LoadTemplateSet(dir string) (*TemplateSet, error) {
	ts := &TemplateSet{}
	for _, t := range []struct {
		file string
		dst  *string
	}{
		{TemplateHeaderFile, &ts.Header},
		{TemplateFooterFile, &ts.Footer},
		{TemplateBeginFile, &ts.Begin},
		{TemplateEndFile, &ts.End},
	} {
		s, err := LoadTemplate(filepath.Join(dir, t.file))
		if err != nil {
			return nil, err
		}
		*t.dst = s
	}
	return ts, nil
}
