package handler

import (
	"time"

	"github.com/portfolio/internal/logger"
	"github.com/portfolio/internal/notify"
	"github.com/portfolio/internal/service"
	"github.com/portfolio/internal/storage"
	"gorm.io/gorm"
)

// DefaultNoticeDismiss is how long a notice stays on screen when not configured.
const DefaultNoticeDismiss = 3 * time.Second

// Options carries the collaborators the handlers need besides the database.
type Options struct {
	Blobs            storage.BlobStore
	Notifier         notify.Notifier
	Logger           logger.Logger
	SeoDefaults      service.SeoDefaults
	NoticeDismiss    time.Duration
	LoginMaxAttempts int
	LoginWindow      time.Duration
}

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db          *gorm.DB
	log         logger.Logger
	blobs       storage.BlobStore
	profile     *service.ProfileService
	services    *service.CatalogService
	projects    *service.ProjectService
	socialLinks *service.SocialLinkService
	sections    *service.SectionService
	seo         *service.SeoService
	contacts    *service.ContactService
	site        *service.SiteSettingService
	dashboard   *service.DashboardService
	auth        *service.AuthService
	limiter     *service.LoginLimiter
	noticeTTL   time.Duration
	now         func() time.Time
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, opts Options) *API {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	ttl := opts.NoticeDismiss
	if ttl <= 0 {
		ttl = DefaultNoticeDismiss
	}

	catalog := service.NewCatalogService(gdb)
	projects := service.NewProjectService(gdb)
	contacts := service.NewContactService(gdb, opts.Notifier, log.With(logger.String("component", "contact")))

	return &API{
		db:          gdb,
		log:         log,
		blobs:       opts.Blobs,
		profile:     service.NewProfileService(gdb),
		services:    catalog,
		projects:    projects,
		socialLinks: service.NewSocialLinkService(gdb),
		sections:    service.NewSectionService(gdb),
		seo:         service.NewSeoService(gdb, opts.SeoDefaults),
		contacts:    contacts,
		site:        service.NewSiteSettingService(gdb),
		dashboard:   service.NewDashboardService(catalog, projects, contacts),
		auth:        service.NewAuthService(gdb),
		limiter:     service.NewLoginLimiter(opts.LoginMaxAttempts, opts.LoginWindow),
		noticeTTL:   ttl,
		now:         time.Now,
	}
}

// DB exposes the underlying gorm instance.
func (a *API) DB() *gorm.DB {
	return a.db
}

// Drain waits for background contact notifications to finish.
func (a *API) Drain() {
	a.contacts.Wait()
}
