package server

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/oluyale/portfolio/internal/contact"
	"github.com/oluyale/portfolio/internal/content"
	"github.com/oluyale/portfolio/internal/lottie"
	"github.com/oluyale/portfolio/internal/pages"
	"github.com/oluyale/portfolio/web"
)

// pageView is the data passed to every page template.
type pageView struct {
	Page             pages.ID
	Block            content.Block
	Nav              []pages.NavItem
	MenuOpen         bool
	OOB              bool
	Portfolio        *content.Portfolio
	Body             template.HTML
	Animation        lottie.Animation
	AnimationHeight  int
	HasProfileImage  bool
	ProfileImagePath string
	FormRelayURL     string

	// Set when the Contact page is rendered as the answer to a plain form post.
	Contact *contact.Result
	Form    contact.Submission
}

var animationHeights = map[pages.ID]int{
	pages.Home:   260,
	pages.Skills: 220,
}

func parseTemplates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"markdown": content.Markdown,
	}).ParseFS(web.ContentFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

// renderBody executes the page's block template into v.Body.
func (s *Server) renderBody(v *pageView) error {
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, v.Block.Template, v); err != nil {
		return fmt.Errorf("render %s: %w", v.Block.Template, err)
	}
	v.Body = template.HTML(buf.String())
	return nil
}

func animationHeight(id pages.ID) int {
	if h, ok := animationHeights[id]; ok {
		return h
	}
	return 200
}
