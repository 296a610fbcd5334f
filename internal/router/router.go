package router

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/portfolio/internal/handler"
	"github.com/portfolio/internal/logger"
)

const sessionName = "portfolio_session"

// Options tunes the engine around the handler set.
type Options struct {
	SessionSecret  string
	UploadDir      string
	UploadURLPath  string
	AllowedOrigins []string
	Logger         logger.Logger
}

// SetupRouter wires middleware and every public and admin route.
func SetupRouter(api *handler.API, opts Options) *gin.Engine {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(handler.RequestLogger(log))

	secret := strings.TrimSpace(opts.SessionSecret)
	if secret == "" {
		secret = "portfolio-dev-secret"
	}
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{Path: "/", MaxAge: 7 * 24 * 60 * 60, HttpOnly: true})
	r.Use(sessions.Sessions(sessionName, store))
	r.Use(api.LocaleMiddleware())

	if dir := strings.TrimSpace(opts.UploadDir); dir != "" {
		urlPath := strings.TrimRight(strings.TrimSpace(opts.UploadURLPath), "/")
		if urlPath == "" {
			urlPath = "/static/uploads"
		}
		r.Static(urlPath, dir)
	}

	r.GET("/healthz", api.Healthz)

	public := r.Group("/api")
	public.Use(corsMiddleware(opts.AllowedOrigins))
	{
		public.GET("/site", api.GetSite)
		public.GET("/profile", api.GetProfile)
		public.GET("/resume", api.GetResume)
		public.GET("/services", api.ListServices)
		public.GET("/projects", api.ListProjects)
		public.GET("/social-links", api.ListSocialLinks)
		public.GET("/sections", api.ListSections)
		public.GET("/seo/:page", api.GetSeo)
		public.GET("/pages/:page", api.GetPage)
		public.POST("/contact", api.SubmitContact)
		public.GET("/keep-alive", api.KeepAlive)
	}

	admin := r.Group("/admin")
	{
		admin.POST("/login", api.Login)
		admin.POST("/logout", api.Logout)

		auth := admin.Group("/api")
		auth.Use(api.AuthRequired())
		{
			auth.GET("/dashboard", api.ShowDashboard)
			auth.GET("/options", api.ListOptions)

			auth.GET("/profile", api.GetAdminProfile)
			auth.PUT("/profile", api.UpdateProfile)
			auth.POST("/profile/image", api.UploadProfileImage)
			auth.POST("/profile/resume", api.UploadResume)
			auth.POST("/profile/image-visibility", api.ToggleProfileImageVisibility)

			auth.GET("/services", api.ListAdminServices)
			auth.POST("/services", api.CreateService)
			auth.POST("/services/move", api.MoveService)
			auth.PUT("/services/reorder", api.ReorderServices)
			auth.PUT("/services/:id", api.UpdateService)
			auth.DELETE("/services/:id", api.DeleteService)
			auth.POST("/services/:id/visibility", api.ToggleServiceVisibility)

			auth.GET("/projects", api.ListAdminProjects)
			auth.POST("/projects", api.CreateProject)
			auth.POST("/projects/move", api.MoveProject)
			auth.PUT("/projects/reorder", api.ReorderProjects)
			auth.PUT("/projects/:id", api.UpdateProject)
			auth.DELETE("/projects/:id", api.DeleteProject)
			auth.POST("/projects/:id/visibility", api.ToggleProjectVisibility)
			auth.POST("/projects/:id/image", api.UploadProjectImage)

			auth.GET("/social-links", api.ListAdminSocialLinks)
			auth.POST("/social-links", api.CreateSocialLink)
			auth.POST("/social-links/move", api.MoveSocialLink)
			auth.PUT("/social-links/reorder", api.ReorderSocialLinks)
			auth.PUT("/social-links/:id", api.UpdateSocialLink)
			auth.DELETE("/social-links/:id", api.DeleteSocialLink)
			auth.POST("/social-links/:id/visibility", api.ToggleSocialLinkVisibility)

			auth.GET("/sections", api.ListAdminSections)
			auth.POST("/sections/move", api.MoveSection)
			auth.PUT("/sections/reorder", api.ReorderSections)
			auth.PUT("/sections/:id", api.UpdateSection)
			auth.POST("/sections/:id/visibility", api.ToggleSectionVisibility)

			auth.GET("/seo", api.ListSeoRecords)
			auth.PUT("/seo/:page", api.SaveSeo)
			auth.POST("/seo/:page/reset", api.ResetSeo)

			auth.GET("/branding", api.GetBranding)
			auth.PUT("/branding", api.UpdateBranding)

			auth.GET("/messages", api.ListMessages)
			auth.POST("/messages/:id/read", api.MarkMessageRead)
			auth.DELETE("/messages/:id", api.DeleteMessage)
		}
	}

	return r
}

// corsMiddleware allows the configured origins on the public API. An empty
// list allows any origin without credentials.
func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Accept-Language")
	cfg.MaxAge = 12 * time.Hour
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}
	return cors.New(cfg)
}
