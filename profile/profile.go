// Package profile holds the portfolio owner's data and the assistant prompt
// derived from it.
package profile

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed profile.yaml
var defaultProfileYAML []byte

// Profile is everything the portfolio shows about its owner.
type Profile struct {
	Name         string        `yaml:"name"`
	Title        string        `yaml:"title"`
	ShortBio     string        `yaml:"short_bio"`
	LongBio      string        `yaml:"long_bio"`
	Email        string        `yaml:"email"`
	Phone        string        `yaml:"phone"`
	Location     string        `yaml:"location"`
	Skills       []string      `yaml:"skills"`
	Education    []Education   `yaml:"education"`
	Experience   []Experience  `yaml:"experience"`
	Publications []Publication `yaml:"publications"`
	Projects     []Project     `yaml:"projects"`
	Socials      []Social      `yaml:"socials"`
}

type Project struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	Link        string   `yaml:"link"`
}

// HasLink reports whether the project points somewhere real.
func (p Project) HasLink() bool {
	return p.Link != "" && p.Link != "#"
}

type Social struct {
	Platform string `yaml:"platform"`
	URL      string `yaml:"url"`
}

type Experience struct {
	Role        string   `yaml:"role"`
	Company     string   `yaml:"company"`
	Period      string   `yaml:"period"`
	Description []string `yaml:"description"`
}

type Education struct {
	Degree      string   `yaml:"degree"`
	Institution string   `yaml:"institution"`
	Period      string   `yaml:"period"`
	Details     []string `yaml:"details"`
}

type Publication struct {
	Title   string `yaml:"title"`
	Authors string `yaml:"authors"`
	Journal string `yaml:"journal"`
	Date    string `yaml:"date"`
}

// Default returns the embedded profile.
func Default() *Profile {
	p, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("profile: embedded profile is invalid: %v", err))
	}
	return p
}

// Load reads a profile from path, or the embedded one if path is empty.
// A file replaces the embedded profile entirely.
func Load(path string) (*Profile, error) {
	data := defaultProfileYAML
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading profile: %w", err)
		}
	}

	p := &Profile{}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parsing profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks the fields every view depends on.
func (p *Profile) Validate() error {
	var errs []error
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, errors.New("name is required"))
	}
	for i, proj := range p.Projects {
		if proj.Title == "" {
			errs = append(errs, fmt.Errorf("projects[%d]: title is required", i))
		}
	}
	for i, s := range p.Socials {
		if s.URL == "" {
			errs = append(errs, fmt.Errorf("socials[%d] (%s): url is required", i, s.Platform))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid profile: %w", errors.Join(errs...))
	}
	return nil
}

// FirstName returns the first word of the name.
func (p *Profile) FirstName() string {
	if f := strings.Fields(p.Name); len(f) > 0 {
		return f[0]
	}
	return ""
}
