package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/portfolio/internal/logger"
	"github.com/portfolio/internal/service"
)

const pingTimeout = 3 * time.Second

// GetProfile returns the public profile, or null when none exists.
func (a *API) GetProfile(c *gin.Context) {
	profile, err := a.profile.Get()
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusOK, gin.H{"profile": nil})
			return
		}
		a.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": publicProfilePayload(*profile)})
}

// GetResume returns the resume text rendered as sanitized HTML plus the document link.
func (a *API) GetResume(c *gin.Context) {
	resume, err := a.resumePayload()
	if err != nil {
		a.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"resume": resume})
}

func (a *API) resumePayload() (gin.H, error) {
	profile, err := a.profile.Get()
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			return nil, nil
		}
		return nil, err
	}

	html, err := service.RenderMarkdown(profile.ResumeText)
	if err != nil {
		return nil, err
	}
	return gin.H{
		"text":   profile.ResumeText,
		"html":   string(html),
		"pdfUrl": profile.ResumePDFURL,
	}, nil
}

// GetPage returns everything one public page needs in a single payload.
func (a *API) GetPage(c *gin.Context) {
	page := strings.ToLower(strings.TrimSpace(c.Param("page")))
	seo, err := a.seo.Effective(page)
	if err != nil {
		a.handleServiceError(c, err)
		return
	}

	pref := a.requestLocale(c)
	body := gin.H{
		"page": page,
		"seo":  seoFieldsPayload(seo),
		"locale": gin.H{
			"language": pref.Language,
			"htmlLang": pref.HTMLLang,
			"dir":      pref.Dir,
		},
	}

	site, err := a.site.GetSettings()
	if err != nil {
		a.handleServiceError(c, err)
		return
	}
	body["site"] = sitePayload(site)

	profile, err := a.profile.Get()
	switch {
	case err == nil:
		body["profile"] = publicProfilePayload(*profile)
	case errors.Is(err, service.ErrProfileNotFound):
		body["profile"] = nil
	default:
		a.handleServiceError(c, err)
		return
	}

	links, err := a.socialLinks.List(service.ListOptions{})
	if err != nil {
		a.handleServiceError(c, err)
		return
	}
	body["socialLinks"] = mapItems(links, socialLinkPayload)

	if err := a.fillPage(page, body); err != nil {
		a.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, body)
}

func (a *API) fillPage(page string, body gin.H) error {
	wantServices := page == service.PageHome || page == service.PageServices
	wantProjects := page == service.PageHome || page == service.PageProjects

	if page == service.PageHome {
		sections, err := a.sections.VisibleNames()
		if err != nil {
			return err
		}
		body["sections"] = sections
	}
	if wantServices {
		items, err := a.services.List(service.ListOptions{})
		if err != nil {
			return err
		}
		body["services"] = mapItems(items, servicePayload)
	}
	if wantProjects {
		items, err := a.projects.List(service.ListOptions{})
		if err != nil {
			return err
		}
		body["projects"] = mapItems(items, projectPayload)
	}
	if page == service.PageResume {
		resume, err := a.resumePayload()
		if err != nil {
			return err
		}
		body["resume"] = resume
	}
	return nil
}

// KeepAlive pings the database so hosted instances stay warm.
func (a *API) KeepAlive(c *gin.Context) {
	if err := a.ping(c.Request.Context()); err != nil {
		a.log.Warn("keep-alive ping failed", logger.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":    "error",
			"timestamp": a.now().UTC().Format(time.RFC3339),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": a.now().UTC().Format(time.RFC3339),
	})
}

// Healthz reports liveness of the process and the database.
func (a *API) Healthz(c *gin.Context) {
	if err := a.ping(c.Request.Context()); err != nil {
		a.log.Error("health check ping failed", logger.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (a *API) ping(ctx context.Context) error {
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return sqlDB.PingContext(ctx)
}
