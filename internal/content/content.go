// Package content holds the static portfolio text and the registry mapping
// each page to the block that renders it.
package content

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/oluyale/portfolio/internal/pages"
)

// ProjectEntry is one portfolio project.
type ProjectEntry struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	TechStack   string `yaml:"tech_stack"`
	Link        string `yaml:"link"`
}

type Owner struct {
	Name         string `yaml:"name"`
	Role         string `yaml:"role"`
	Intro        string `yaml:"intro"`
	ProfileImage string `yaml:"profile_image"`
	Resume       string `yaml:"resume"`
	Footer       string `yaml:"footer"`
}

type Metric struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

type SkillGroup struct {
	Title string   `yaml:"title"`
	Items []string `yaml:"items"`
}

type ExperienceEntry struct {
	Icon string `yaml:"icon"`
	Text string `yaml:"text"`
}

// Portfolio is the full set of static content. Free-text fields are markdown.
type Portfolio struct {
	Owner             Owner             `yaml:"owner"`
	Metrics           []Metric          `yaml:"metrics"`
	Skills            []SkillGroup      `yaml:"skills"`
	Projects          []ProjectEntry    `yaml:"projects"`
	Experience        []ExperienceEntry `yaml:"experience"`
	ResearchInterests string            `yaml:"research_interests"`
	ContactIntro      string            `yaml:"contact_intro"`
	Animations        map[string]string `yaml:"animations"`
}

// AnimationURL returns the configured animation for a page, or "".
func (p *Portfolio) AnimationURL(id pages.ID) string {
	if p == nil || p.Animations == nil {
		return ""
	}
	return strings.TrimSpace(p.Animations[string(id)])
}

// Load reads a YAML content file layered over Default. An empty path or a
// missing file yields Default.
func Load(path string) (*Portfolio, error) {
	p := Default()
	if strings.TrimSpace(path) == "" {
		return p, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return p, nil
		}
		return nil, fmt.Errorf("content: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("content: parse %s: %w", path, err)
	}
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("content: %s: %w", path, err)
	}
	return p, nil
}

// validate also canonicalizes animation keys to page identifiers.
func (p *Portfolio) validate() error {
	if strings.TrimSpace(p.Owner.Name) == "" {
		return errors.New("owner.name is required")
	}
	for i, proj := range p.Projects {
		if strings.TrimSpace(proj.Title) == "" {
			return fmt.Errorf("projects[%d]: title is required", i)
		}
	}
	normalized := make(map[string]string, len(p.Animations))
	var overrides []string
	for key, url := range p.Animations {
		id, ok := pages.Parse(key)
		if !ok {
			return fmt.Errorf("animations: unknown page %q", key)
		}
		if key != string(id) {
			overrides = append(overrides, key)
			continue
		}
		normalized[key] = url
	}
	// Keys spelled differently from the canonical id come from the file and
	// take precedence over defaults merged into the same map.
	for _, key := range overrides {
		id, _ := pages.Parse(key)
		normalized[string(id)] = p.Animations[key]
	}
	p.Animations = normalized
	return nil
}
