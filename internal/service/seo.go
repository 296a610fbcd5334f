package service

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Public page names that carry SEO metadata.
const (
	PageHome     = "home"
	PageAbout    = "about"
	PageServices = "services"
	PageProjects = "projects"
	PageResume   = "resume"
	PageContact  = "contact"
)

// SeoPages is the closed set of page names in display order.
var SeoPages = []string{PageHome, PageAbout, PageServices, PageProjects, PageResume, PageContact}

// ErrSeoPageUnknown is returned for page names outside SeoPages.
var ErrSeoPageUnknown = errors.New("unknown seo page")

//go:embed seo_defaults.yaml
var embeddedSeoDefaults []byte

// SeoFields is the metadata triple plus the social preview image.
type SeoFields struct {
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Keywords    []string `yaml:"keywords" json:"keywords"`
	OGImageURL  string   `yaml:"og_image_url" json:"ogImageUrl"`
}

// SeoDefaults maps page name to its built-in metadata.
type SeoDefaults map[string]SeoFields

type seoDefaultsFile struct {
	Pages map[string]SeoFields `yaml:"pages"`
}

// IsSeoPage reports whether page is in the closed page set.
func IsSeoPage(page string) bool {
	for _, candidate := range SeoPages {
		if candidate == page {
			return true
		}
	}
	return false
}

// MergeSeo resolves every field independently: a non-blank override wins,
// otherwise the default is used. A nil override yields defaults exactly.
func MergeSeo(override *SeoFields, defaults SeoFields) SeoFields {
	if override == nil {
		return defaults
	}

	merged := defaults
	if strings.TrimSpace(override.Title) != "" {
		merged.Title = override.Title
	}
	if strings.TrimSpace(override.Description) != "" {
		merged.Description = override.Description
	}
	if keywords := cleanList(override.Keywords); len(keywords) > 0 {
		merged.Keywords = keywords
	}
	if strings.TrimSpace(override.OGImageURL) != "" {
		merged.OGImageURL = override.OGImageURL
	}
	return merged
}

// DefaultSeoTable returns the built-in defaults shipped with the binary.
func DefaultSeoTable() SeoDefaults {
	defaults, err := ParseSeoDefaults(bytes.NewReader(embeddedSeoDefaults))
	if err != nil {
		panic(fmt.Sprintf("embedded seo defaults: %v", err))
	}
	return defaults
}

// LoadSeoDefaults returns the built-in table, or the table in path when set.
func LoadSeoDefaults(path string) (SeoDefaults, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return DefaultSeoTable(), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seo defaults: %w", err)
	}
	defer file.Close()

	return ParseSeoDefaults(file)
}

// ParseSeoDefaults decodes a YAML defaults table. Unknown page names are
// rejected; pages missing from the table get empty defaults.
func ParseSeoDefaults(r io.Reader) (SeoDefaults, error) {
	var parsed seoDefaultsFile
	if err := yaml.NewDecoder(r).Decode(&parsed); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode seo defaults: %w", err)
	}

	defaults := make(SeoDefaults, len(SeoPages))
	for _, page := range SeoPages {
		defaults[page] = SeoFields{Keywords: []string{}}
	}
	for page, fields := range parsed.Pages {
		name := strings.ToLower(strings.TrimSpace(page))
		if !IsSeoPage(name) {
			return nil, fmt.Errorf("%w: %s", ErrSeoPageUnknown, page)
		}
		fields.Keywords = cleanList(fields.Keywords)
		defaults[name] = fields
	}
	return defaults, nil
}

// For returns the defaults of one page.
func (d SeoDefaults) For(page string) (SeoFields, error) {
	if !IsSeoPage(page) {
		return SeoFields{}, fmt.Errorf("%w: %s", ErrSeoPageUnknown, page)
	}
	fields, ok := d[page]
	if !ok {
		return SeoFields{Keywords: []string{}}, nil
	}
	return fields, nil
}

// SeoRecord is the admin editing state of one page: either not yet stored
// (UnsavedSeo) or backed by a row (PersistedSeo).
type SeoRecord interface {
	Page() string
	Fields() SeoFields
	// WithFields returns the same variant carrying fields.
	WithFields(fields SeoFields) SeoRecord
	seoRecord()
}

// UnsavedSeo is a page whose metadata has never been stored.
type UnsavedSeo struct {
	PageName string
	Values   SeoFields
}

func (r UnsavedSeo) Page() string      { return r.PageName }
func (r UnsavedSeo) Fields() SeoFields { return r.Values }
func (r UnsavedSeo) WithFields(fields SeoFields) SeoRecord {
	return UnsavedSeo{PageName: r.PageName, Values: fields}
}
func (UnsavedSeo) seoRecord() {}

// PersistedSeo is a page with a stored override row.
type PersistedSeo struct {
	ID       string
	PageName string
	Values   SeoFields
}

func (r PersistedSeo) Page() string      { return r.PageName }
func (r PersistedSeo) Fields() SeoFields { return r.Values }
func (r PersistedSeo) WithFields(fields SeoFields) SeoRecord {
	return PersistedSeo{ID: r.ID, PageName: r.PageName, Values: fields}
}
func (PersistedSeo) seoRecord() {}
