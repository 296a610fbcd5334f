package main

import (
	"fmt"
	"log"

	"github.com/portfolio/internal/config"
	"github.com/portfolio/internal/db"
	"github.com/portfolio/internal/service"
	"gorm.io/gorm"
)

// Demo content generator for local development.
func main() {
	cfg := config.Load()
	gdb, err := db.Open(db.Options{Path: cfg.DatabasePath, ProfileName: cfg.ProfileName, Silent: true})
	if err != nil {
		log.Fatalf("open database: %v", err)
	}

	if err := db.EnsureUser(gdb, "admin", "admin123"); err != nil {
		log.Fatalf("create admin: %v", err)
	}

	result, err := seedDemo(gdb)
	if err != nil {
		log.Fatalf("seed demo content: %v", err)
	}

	fmt.Println("demo content ready")
	fmt.Println("user: admin (password: admin123)")
	fmt.Printf("services: %d, projects: %d, social links: %d\n", result.services, result.projects, result.links)
}

type seedResult struct {
	services int
	projects int
	links    int
}

var demoServices = []service.ServiceInput{
	{Title: ptr("Web Development"), Description: ptr("Fast, accessible websites and dashboards."), Icon: ptr("globe")},
	{Title: ptr("Mobile Apps"), Description: ptr("Cross-platform apps for iOS and Android."), Icon: ptr("smartphone")},
	{Title: ptr("Backend APIs"), Description: ptr("Reliable services with clean contracts."), Icon: ptr("database")},
	{Title: ptr("UI Design"), Description: ptr("Interfaces that are simple to use."), Icon: ptr("palette")},
}

var demoProjects = []service.ProjectInput{
	{Title: ptr("Online Store"), Description: ptr("Storefront with cart and checkout."), Technologies: ptr("Go, PostgreSQL, React"), ProjectURL: ptr("https://shop.example.com")},
	{Title: ptr("Clinic Booking"), Description: ptr("Appointment booking for a medical clinic."), Technologies: ptr("Flutter, Firebase")},
	{Title: ptr("Portfolio CMS"), Description: ptr("Content service for personal sites."), Technologies: ptr("Go, SQLite, Gin"), GithubURL: ptr("https://github.com/example/portfolio")},
	{Title: ptr("Internal Tools"), Description: ptr("Back office utilities, not public yet."), Technologies: ptr("Go"), Visible: boolPtr(false)},
}

var demoLinks = []service.SocialLinkInput{
	{Platform: ptr("github"), URL: ptr("https://github.com/example")},
	{Platform: ptr("linkedin"), URL: ptr("https://www.linkedin.com/in/example")},
	{Platform: ptr("email"), URL: ptr("mailto:hello@example.com")},
}

// seedDemo fills empty collections. Collections that already hold rows are skipped.
func seedDemo(gdb *gorm.DB) (seedResult, error) {
	var result seedResult

	catalog := service.NewCatalogService(gdb)
	if n, err := catalog.Count(); err != nil {
		return result, err
	} else if n == 0 {
		for _, input := range demoServices {
			if _, err := catalog.Create(input); err != nil {
				return result, err
			}
			result.services++
		}
	}

	projects := service.NewProjectService(gdb)
	if n, err := projects.Count(); err != nil {
		return result, err
	} else if n == 0 {
		for _, input := range demoProjects {
			if _, err := projects.Create(input); err != nil {
				return result, err
			}
			result.projects++
		}
	}

	links := service.NewSocialLinkService(gdb)
	if n, err := links.Count(); err != nil {
		return result, err
	} else if n == 0 {
		for _, input := range demoLinks {
			if _, err := links.Create(input); err != nil {
				return result, err
			}
			result.links++
		}
	}

	profile := service.NewProfileService(gdb)
	if _, err := profile.Update(service.ProfileInput{
		Title:      ptr("Software Developer"),
		Bio:        ptr("I build web and mobile products end to end."),
		Email:      ptr("hello@example.com"),
		Location:   ptr("Cairo, Egypt"),
		ResumeText: ptr("## Experience\n\n- Senior developer, 2020 to now\n- Developer, 2016 to 2020"),
	}); err != nil {
		return result, err
	}

	return result, nil
}

func ptr(value string) *string { return &value }

func boolPtr(value bool) *bool { return &value }
