package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/portfolio/internal/db"
	"github.com/portfolio/internal/service"
	"github.com/portfolio/internal/view"
)

func servicePayload(item db.Service) gin.H {
	return gin.H{
		"id":          item.ID,
		"title":       item.Title,
		"description": item.Description,
		"icon":        item.Icon,
		"sortOrder":   item.SortOrder,
		"isVisible":   item.IsVisible,
	}
}

func projectPayload(item db.Project) gin.H {
	technologies := []string(item.Technologies)
	if technologies == nil {
		technologies = []string{}
	}
	return gin.H{
		"id":           item.ID,
		"title":        item.Title,
		"description":  item.Description,
		"technologies": technologies,
		"projectUrl":   item.ProjectURL,
		"githubUrl":    item.GithubURL,
		"imageUrl":     item.ImageURL,
		"sortOrder":    item.SortOrder,
		"isVisible":    item.IsVisible,
	}
}

func socialLinkPayload(item db.SocialLink) gin.H {
	style := view.Platform(item.Platform)
	return gin.H{
		"id":        item.ID,
		"platform":  item.Platform,
		"url":       item.URL,
		"icon":      item.Icon,
		"label":     style.Label,
		"color":     style.Color,
		"sortOrder": item.SortOrder,
		"isVisible": item.IsVisible,
	}
}

func sectionPayload(item db.SectionVisibility) gin.H {
	return gin.H{
		"id":        item.ID,
		"name":      item.SectionName,
		"title":     item.SectionTitle,
		"sortOrder": item.SortOrder,
		"isVisible": item.IsVisible,
	}
}

func profilePayload(profile db.Profile) gin.H {
	return gin.H{
		"id":                  profile.ID,
		"name":                profile.Name,
		"title":               profile.Title,
		"bio":                 profile.Bio,
		"email":               profile.Email,
		"phone":               profile.Phone,
		"location":            profile.Location,
		"resumeText":          profile.ResumeText,
		"resumePdfUrl":        profile.ResumePDFURL,
		"profileImageUrl":     profile.ProfileImageURL,
		"profileImageVisible": profile.ProfileImageVisible,
	}
}

// publicProfilePayload omits the picture when it is hidden.
func publicProfilePayload(profile db.Profile) gin.H {
	payload := profilePayload(profile)
	if !profile.ProfileImageVisible {
		payload["profileImageUrl"] = ""
	}
	delete(payload, "resumeText")
	return payload
}

func seoFieldsPayload(fields service.SeoFields) gin.H {
	keywords := fields.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	return gin.H{
		"title":       fields.Title,
		"description": fields.Description,
		"keywords":    keywords,
		"ogImageUrl":  fields.OGImageURL,
	}
}

func seoRecordPayload(record service.SeoRecord, effective service.SeoFields) gin.H {
	payload := gin.H{
		"page":      record.Page(),
		"values":    seoFieldsPayload(record.Fields()),
		"effective": seoFieldsPayload(effective),
		"keywords":  service.JoinList(record.Fields().Keywords),
	}
	switch rec := record.(type) {
	case service.PersistedSeo:
		payload["state"] = "persisted"
		payload["id"] = rec.ID
	case service.UnsavedSeo:
		payload["state"] = "unsaved"
		payload["id"] = nil
	}
	return payload
}

func messagePayload(message db.ContactMessage) gin.H {
	return gin.H{
		"id":        message.ID,
		"name":      message.Name,
		"email":     message.Email,
		"subject":   message.Subject,
		"message":   message.Message,
		"isRead":    message.IsRead,
		"createdAt": message.CreatedAt,
	}
}

func sitePayload(settings service.SiteSettings) gin.H {
	return gin.H{
		"siteName":   settings.SiteName,
		"logoLetter": settings.LogoLetter,
		"logoFont":   settings.LogoFont,
	}
}

func mapItems[T any](items []T, payload func(T) gin.H) []gin.H {
	out := make([]gin.H, 0, len(items))
	for _, item := range items {
		out = append(out, payload(item))
	}
	return out
}
