package main

import (
	"flag"
	"fmt"
	"log"
	"sukuu-backend/app/config"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Seeds one school and its first admin account. Intended for bootstrapping a
// fresh deployment; rerunning with the same email fails on the unique index.
func main() {
	school := flag.String("school", "", "school name")
	email := flag.String("email", "", "admin email")
	password := flag.String("password", "", "admin password")
	firstName := flag.String("first-name", "Admin", "first name")
	lastName := flag.String("last-name", "User", "last name")
	flag.Parse()

	if *school == "" || *email == "" || *password == "" {
		log.Fatal("Usage: add_user -school <name> -email <email> -password <password>")
	}

	config.InitDB()
	db := config.GetDB()
	if db == nil {
		log.Fatal("Failed to connect to database")
	}
	defer db.Close()

	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	tx, err := db.Begin()
	if err != nil {
		log.Fatal("Failed to begin transaction:", err)
	}
	defer tx.Rollback()

	schoolID := uuid.New().String()
	if _, err := tx.Exec(`INSERT INTO schools (id, name) VALUES ($1, $2)`, schoolID, *school); err != nil {
		log.Fatal("Failed to create school:", err)
	}

	userID := uuid.New().String()
	_, err = tx.Exec(`
		INSERT INTO users (id, school_id, email, password, first_name, last_name, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, true)
	`, userID, schoolID, *email, string(hashed), *firstName, *lastName)
	if err != nil {
		log.Fatal("Failed to create user:", err)
	}

	if _, err := tx.Exec(`INSERT INTO roles (id, name) VALUES (gen_random_uuid(), 'admin') ON CONFLICT (name) DO NOTHING`); err != nil {
		log.Fatal("Failed to ensure admin role:", err)
	}
	_, err = tx.Exec(`
		INSERT INTO user_roles (user_id, role_id)
		SELECT $1, id FROM roles WHERE name = 'admin'
	`, userID)
	if err != nil {
		log.Fatal("Failed to assign admin role:", err)
	}

	if err := tx.Commit(); err != nil {
		log.Fatal("Failed to commit:", err)
	}

	fmt.Printf("Admin created: %s %s (%s) for school %s\n", *firstName, *lastName, *email, *school)
}
