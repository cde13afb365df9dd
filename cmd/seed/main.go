package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"paintpro/internal/database"
	"paintpro/internal/domain"
	"paintpro/internal/modules/upload"
	"paintpro/internal/repository"
)

// Seeds a local database with an admin account plus a demo customer
// and vendor, so the dashboards have something to show.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "paintpro.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal(err)
	}
	if err := db.AutoMigrate(&upload.Upload{}); err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	vendors := repository.NewVendorRepository(db)

	adminPass := os.Getenv("SEED_ADMIN_PASSWORD")
	if adminPass == "" {
		adminPass = "admin123"
	}

	admin := &domain.User{
		Email:        "admin@paintpro.local",
		PasswordHash: mustHash(adminPass),
		Role:         domain.RoleAdmin,
		Name:         "Admin",
	}
	if err := users.Create(ctx, admin); err != nil {
		log.Printf("admin already seeded? %v", err)
	} else {
		log.Printf("seeded admin id=%d", admin.ID)
	}

	customer := &domain.User{
		Email:        "customer@paintpro.local",
		PasswordHash: mustHash("customer123"),
		Role:         domain.RoleCustomer,
		Name:         "Demo Customer",
	}
	if err := users.Create(ctx, customer); err != nil {
		log.Printf("customer already seeded? %v", err)
	}

	vendorUser := &domain.User{
		Email:        "vendor@paintpro.local",
		PasswordHash: mustHash("vendor123"),
		Role:         domain.RoleVendor,
		Name:         "Demo Painter",
		Phone:        "+77001234567",
	}
	if err := users.Create(ctx, vendorUser); err != nil {
		log.Printf("vendor user already seeded? %v", err)
	} else {
		v := &domain.Vendor{
			UserID:     vendorUser.ID,
			Username:   "Demo Painter",
			Email:      vendorUser.Email,
			Phone:      vendorUser.Phone,
			Experience: "5 years",
			Approval:   domain.ApprovalPending,
		}
		if err := vendors.Create(ctx, v); err != nil {
			log.Printf("vendor already seeded? %v", err)
		} else {
			log.Printf("seeded vendor id=%d (pending approval)", v.ID)
		}
	}

	log.Println("seed complete")
}

func mustHash(pw string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}
	return string(h)
}
