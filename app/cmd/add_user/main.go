package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/mattmosz/APP-TESO/app/config"
	"github.com/mattmosz/APP-TESO/app/database"
	"github.com/mattmosz/APP-TESO/app/models"
	"github.com/mattmosz/APP-TESO/app/routes/auth"
)

// Creates an account directly in the database, bypassing the registration
// endpoint. Handy for bootstrapping the treasurer on a fresh install.
func main() {
	username := flag.String("username", "", "login username")
	password := flag.String("password", "", "plain password (will be hashed)")
	name := flag.String("name", "", "display name")
	role := flag.String("role", models.RoleAdmin, "account role: admin or guardian")
	flag.Parse()

	if *username == "" || *password == "" || *name == "" {
		log.Fatal("usage: add_user -username <u> -password <p> -name <display name> [-role admin|guardian]")
	}
	if *role != models.RoleAdmin && *role != models.RoleGuardian {
		log.Fatalf("unknown role %q", *role)
	}

	config.Init()
	db := config.GetDB()
	defer db.Close()

	hashed, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	user := &models.User{
		Username:    *username,
		Password:    hashed,
		DisplayName: *name,
		Role:        *role,
	}

	if err := database.CreateUser(db, user); err != nil {
		log.Fatal("Failed to create user:", err)
	}

	fmt.Printf("User created successfully: %s (%s, %s)\n", user.DisplayName, user.Username, user.Role)
}
