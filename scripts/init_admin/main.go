package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/portfolio/internal/config"
	"github.com/portfolio/internal/db"
)

func main() {
	cfg := config.Load()

	username := flag.String("username", cfg.SuperRootUserName, "admin username")
	password := flag.String("password", cfg.SuperRootPassword, "admin password")
	flag.Parse()

	if *username == "" || *password == "" {
		log.Fatal("username and password are required (flags or SUPER_ROOT_USER_NAME / SUPER_ROOT_PASSWORD)")
	}

	gdb, err := db.Open(db.Options{Path: cfg.DatabasePath, ProfileName: cfg.ProfileName, Silent: true})
	if err != nil {
		log.Fatalf("open database: %v", err)
	}

	var count int64
	if err := gdb.Model(&db.User{}).Where("username = ?", *username).Count(&count).Error; err != nil {
		log.Fatalf("count users: %v", err)
	}
	if count > 0 {
		fmt.Printf("admin %q already exists, nothing to do\n", *username)
		return
	}

	if err := db.EnsureUser(gdb, *username, *password); err != nil {
		log.Fatalf("create admin: %v", err)
	}
	fmt.Printf("admin %q created in %s\n", *username, cfg.DatabasePath)
}
