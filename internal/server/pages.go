package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/oluyale/portfolio/internal/analytics"
	"github.com/oluyale/portfolio/internal/contact"
	"github.com/oluyale/portfolio/internal/navstate"
	"github.com/oluyale/portfolio/internal/pages"
)

func isHTMX(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}

// handlePage renders the page selected by the page query value or, without
// one, redirects to the URL of the session's current page.
func (s *Server) handlePage(c *gin.Context) {
	st := s.loadState(c)
	raw, present := c.GetQuery(pages.QueryParam)
	page := pages.Resolve(raw, present, st.Page)

	if !present && !isHTMX(c) {
		c.Redirect(http.StatusFound, page.Href())
		return
	}
	if page != st.Page {
		st = navstate.Navigate(st, page)
	}
	s.saveState(c, st)
	c.Set(analytics.PageKey, page)

	v, err := s.view(c, st, page)
	if err != nil {
		s.logger.Error("render page", zap.String("page", page.String()), zap.Error(err))
		c.String(http.StatusInternalServerError, "Something went wrong rendering this page.")
		return
	}
	if isHTMX(c) {
		v.OOB = true
		c.Header("HX-Push-Url", page.Href())
		c.HTML(http.StatusOK, "block-response", v)
		return
	}
	c.HTML(http.StatusOK, "layout", v)
}

// handleNavigate is the button form of navigation: it stores the page and
// either redirects to it or returns the HTMX fragment.
func (s *Server) handleNavigate(c *gin.Context) {
	page, _ := pages.Parse(c.Param("page"))
	st := navstate.Navigate(s.loadState(c), page)
	s.saveState(c, st)

	if !isHTMX(c) {
		c.Redirect(http.StatusSeeOther, page.Href())
		return
	}
	c.Set(analytics.PageKey, page)
	v, err := s.view(c, st, page)
	if err != nil {
		s.logger.Error("render page", zap.String("page", page.String()), zap.Error(err))
		c.String(http.StatusInternalServerError, "Something went wrong rendering this page.")
		return
	}
	v.OOB = true
	c.Header("HX-Push-Url", page.Href())
	c.HTML(http.StatusOK, "block-response", v)
}

// handleToggleMenu opens or closes the hamburger menu.
func (s *Server) handleToggleMenu(c *gin.Context) {
	st := navstate.ToggleMenu(s.loadState(c))
	s.saveState(c, st)

	if !isHTMX(c) {
		c.Redirect(http.StatusSeeOther, st.Page.Href())
		return
	}
	c.HTML(http.StatusOK, "navbar", pageView{
		Page:      st.Page,
		Nav:       pages.Nav(st.Page),
		MenuOpen:  st.MenuOpen,
		Portfolio: s.portfolio,
	})
}

// handleContact checks the form fields. Nothing is stored or sent. Without
// HTMX the whole Contact page is returned with the result in place.
func (s *Server) handleContact(c *gin.Context) {
	var sub contact.Submission
	if err := c.ShouldBind(&sub); err != nil {
		s.logger.Debug("bind contact form", zap.Error(err))
	}
	res := contact.Validate(sub)
	if isHTMX(c) {
		c.HTML(http.StatusOK, "contact-result", res)
		return
	}

	st := navstate.Navigate(s.loadState(c), pages.Contact)
	s.saveState(c, st)
	c.Set(analytics.PageKey, pages.Contact)
	v := s.newView(c, st, pages.Contact)
	v.Contact = &res
	v.Form = sub
	if err := s.renderBody(v); err != nil {
		s.logger.Error("render page", zap.String("page", pages.Contact.String()), zap.Error(err))
		c.String(http.StatusInternalServerError, "Something went wrong rendering this page.")
		return
	}
	c.HTML(http.StatusOK, "layout", v)
}

// handleResume streams the résumé, or shows a warning when it is missing.
func (s *Server) handleResume(c *gin.Context) {
	rc, meta, ok := s.assets.OpenResume()
	if !ok {
		c.HTML(http.StatusOK, "resume-warning", s.assets.ResumePath())
		return
	}
	defer rc.Close()
	c.DataFromReader(http.StatusOK, meta.Size, meta.ContentType, rc, map[string]string{
		"Content-Disposition": `attachment; filename="` + meta.Name + `"`,
	})
}

func (s *Server) handleProfileImage(c *gin.Context) {
	rc, meta, ok := s.assets.OpenProfileImage()
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}
	defer rc.Close()
	c.Header("Cache-Control", "public, max-age=3600")
	c.DataFromReader(http.StatusOK, meta.Size, meta.ContentType, rc, nil)
}

func (s *Server) view(c *gin.Context, st navstate.State, page pages.ID) (*pageView, error) {
	v := s.newView(c, st, page)
	if err := s.renderBody(v); err != nil {
		return nil, err
	}
	return v, nil
}

// newView collects the data for page without rendering its block.
func (s *Server) newView(c *gin.Context, st navstate.State, page pages.ID) *pageView {
	_, hasImage := s.assets.ProfileImage()
	v := &pageView{
		Page:             page,
		Block:            s.registry.Block(page),
		Nav:              pages.Nav(page),
		MenuOpen:         st.MenuOpen,
		Portfolio:        s.portfolio,
		AnimationHeight:  animationHeight(page),
		HasProfileImage:  hasImage,
		ProfileImagePath: s.assets.ProfileImagePath(),
		FormRelayURL:     s.cfg.FormRelayURL,
	}
	if s.animations != nil {
		if anim, ok := s.animations.Fetch(c.Request.Context(), s.portfolio.AnimationURL(page)); ok {
			v.Animation = anim
		}
	}
	return v
}
