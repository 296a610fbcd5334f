package service

// DashboardStats holds the counters shown on the admin landing page.
type DashboardStats struct {
	Services       int
	Projects       int
	Messages       int
	UnreadMessages int
}

// DashboardService aggregates counts from the other services.
type DashboardService struct {
	services *CatalogService
	projects *ProjectService
	contacts *ContactService
}

func NewDashboardService(services *CatalogService, projects *ProjectService, contacts *ContactService) *DashboardService {
	return &DashboardService{services: services, projects: projects, contacts: contacts}
}

func (s *DashboardService) Stats() (DashboardStats, error) {
	var stats DashboardStats
	var err error

	if stats.Services, err = s.services.Count(); err != nil {
		return DashboardStats{}, err
	}
	if stats.Projects, err = s.projects.Count(); err != nil {
		return DashboardStats{}, err
	}
	if stats.Messages, stats.UnreadMessages, err = s.contacts.Counts(); err != nil {
		return DashboardStats{}, err
	}
	return stats, nil
}
