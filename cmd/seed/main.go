package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/config"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/services"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main migrates the schema, creates a super admin account and optionally
// seeds a demo catalog for both store modules.
// Usage: go run cmd/seed/main.go [-demo]
// This is a standalone CLI tool, not part of the main application
func main() {
	demo := flag.Bool("demo", false, "seed demo catalog (categories, brands, products, sections, configs)")
	flag.Parse()

	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("PETROCINO STORE - Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	// Initialize database connections
	config.InitDB()
	log.Println("✓ Connected to databases")

	if err := migrate(); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("✓ Schema migrated")

	seedSuperAdmin()

	if *demo {
		seedDemoCatalog()
	}
}

func migrate() error {
	return config.Gorm.AutoMigrate(
		&models.Admin{},
		&models.AdminInvite{},
		&models.AdminSession{},
		&models.ActivityLog{},
		&models.User{},
		&models.LoginEvent{},
		&models.Category{},
		&models.Brand{},
		&models.ProductModel{},
		&models.League{},
		&models.Product{},
		&models.HomeSection{},
		&models.StoreConfig{},
		&models.Question{},
	)
}

func seedSuperAdmin() {
	email, password, name := getAdminCredentials()

	// Check if admin already exists
	var existingAdmin models.Admin
	if err := config.Gorm.Where("email = ?", email).First(&existingAdmin).Error; err == nil {
		fmt.Printf("❌ Admin with email '%s' already exists\n", email)
		os.Exit(1)
	} else if err != gorm.ErrRecordNotFound {
		log.Fatalf("Database error: %v", err)
	}
	log.Printf("✓ Email '%s' is available", email)

	// Hash password
	authService := services.GetAdminAuthService()
	passwordHash, err := authService.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	log.Println("✓ Password hashed securely")

	superAdmin := models.Admin{
		ID:           uuid.Must(uuid.NewV7()),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Role:         "super_admin",
		Status:       "active",
	}

	if err := config.Gorm.Create(&superAdmin).Error; err != nil {
		log.Fatalf("Failed to create super admin: %v", err)
	}

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Super Admin Created Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("ID:    %s\n", superAdmin.ID)
	fmt.Printf("Email: %s\n", superAdmin.Email)
	fmt.Printf("Name:  %s\n", superAdmin.Name)
	fmt.Printf("Role:  %s\n", superAdmin.Role)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Login at POST /api/v1/admin/login with email and password")
	fmt.Println("3. Use the returned token for authenticated requests")
	fmt.Println("4. Invite other admins using POST /api/v1/admin/invites")
	fmt.Println()
}

// getAdminCredentials reads admin details from SEED_ADMIN_* env vars or
// prompts for them
func getAdminCredentials() (email, password, name string) {
	email = os.Getenv("SEED_ADMIN_EMAIL")
	password = os.Getenv("SEED_ADMIN_PASSWORD")
	name = os.Getenv("SEED_ADMIN_NAME")
	if email != "" && password != "" && name != "" {
		return email, password, name
	}

	fmt.Println("Enter Super Admin Details:")
	fmt.Println()

	// Email
	for {
		fmt.Print("Email: ")
		fmt.Scanln(&email)
		if email != "" {
			break
		}
		fmt.Println("❌ Email cannot be empty")
	}

	// Name
	for {
		fmt.Print("Name: ")
		fmt.Scanln(&name)
		if name != "" {
			break
		}
		fmt.Println("❌ Name cannot be empty")
	}

	// Password
	for {
		fmt.Print("Password (min 8 characters): ")
		fmt.Scanln(&password)

		authService := services.GetAdminAuthService()
		if !authService.ValidatePassword(password) {
			fmt.Println("❌ Password must be at least 8 characters")
			continue
		}
		break
	}

	// Confirm password
	for {
		fmt.Print("Confirm Password: ")
		var confirm string
		fmt.Scanln(&confirm)
		if confirm == password {
			break
		}
		fmt.Println("❌ Passwords do not match")
	}

	fmt.Println()
	return email, password, name
}

// seedDemoCatalog fills both modules with a small working catalog so the
// storefront renders out of the box.
func seedDemoCatalog() {
	fmt.Println("Seeding demo catalog...")

	db := config.Gorm

	// ── Sports categories (chuteiras has two subcategories) ──
	chuteiras := models.Category{Slug: "chuteiras", Name: "Chuteiras", Module: models.ModuleSports, Active: true}
	camisas := models.Category{Slug: "camisas", Name: "Camisas", Module: models.ModuleSports, Active: true}
	acessorios := models.Category{Slug: "acessorios", Name: "Acessórios", Module: models.ModuleSports, Active: true}
	mustCreate(db, &chuteiras)
	mustCreate(db, &camisas)
	mustCreate(db, &acessorios)

	campo := models.Category{Slug: "chuteiras-campo", Name: "Campo", Module: models.ModuleSports, ParentID: &chuteiras.ID, Active: true}
	society := models.Category{Slug: "chuteiras-society", Name: "Society", Module: models.ModuleSports, ParentID: &chuteiras.ID, Active: true}
	mustCreate(db, &campo)
	mustCreate(db, &society)

	// ── Automotive categories ──
	pecas := models.Category{Slug: "pecas", Name: "Peças", Module: models.ModuleAutomotive, Active: true}
	som := models.Category{Slug: "som-automotivo", Name: "Som Automotivo", Module: models.ModuleAutomotive, Active: true}
	mustCreate(db, &pecas)
	mustCreate(db, &som)

	// ── Reference entities ──
	nike := models.Brand{Name: "Nike", Module: models.ModuleSports, Active: true}
	adidas := models.Brand{Name: "Adidas", Module: models.ModuleSports, Active: true}
	bosch := models.Brand{Name: "Bosch", Module: models.ModuleAutomotive, Active: true}
	mustCreate(db, &nike)
	mustCreate(db, &adidas)
	mustCreate(db, &bosch)

	mercurial := models.ProductModel{Name: "Mercurial", BrandID: nike.ID.String(), Module: models.ModuleSports, Active: true}
	predator := models.ProductModel{Name: "Predator", BrandID: adidas.ID.String(), Module: models.ModuleSports, Active: true}
	mustCreate(db, &mercurial)
	mustCreate(db, &predator)

	brasileirao := models.League{Name: "Brasileirão", Module: models.ModuleSports, Active: true}
	premier := models.League{Name: "Premier League", Module: models.ModuleSports, Active: true}
	mustCreate(db, &brasileirao)
	mustCreate(db, &premier)

	media := func(url string) models.ProductMedia {
		return models.ProductMedia{Primary: models.MediaURL{URL: url}}
	}
	sizes := models.VariantsList{{Size: "40", Stock: 5}, {Size: "42", Stock: 3}}

	products := []models.Product{
		{
			Slug: "chuteira-mercurial-vapor", Name: "Chuteira Mercurial Vapor",
			Description: "Chuteira de campo leve para velocidade", Category: "chuteiras-campo",
			BrandID: nike.ID.String(), ModelID: mercurial.ID.String(),
			Price: 699.90, Media: media("https://placehold.co/products/mercurial.jpg"),
			Variants: sizes, Module: models.ModuleSports, Active: true,
		},
		{
			Slug: "chuteira-predator-24", Name: "Chuteira Predator 24",
			Description: "Controle total no chute", Category: "chuteiras-society",
			BrandID: adidas.ID.String(), ModelID: predator.ID.String(),
			Price: 599.90, Media: media("https://placehold.co/products/predator.jpg"),
			Variants: sizes, Module: models.ModuleSports, Active: true,
		},
		{
			Slug: "camisa-flamengo-2026", Name: "Camisa Flamengo 2026",
			Description: "Camisa oficial temporada 2026", Category: "camisas",
			BrandID: adidas.ID.String(), League: brasileirao.ID.String(),
			Price: 349.90, Media: media("https://placehold.co/products/flamengo.jpg"),
			Variants: models.VariantsList{{Size: "M", Stock: 10}, {Size: "G", Stock: 8}},
			Module:   models.ModuleSports, Active: true,
		},
		{
			Slug: "meiao-profissional", Name: "Meião Profissional",
			Description: "Meião de compressão para jogos", Category: "acessorios",
			BrandID: nike.ID.String(),
			Price:   49.90, Media: media("https://placehold.co/products/meiao.jpg"),
			Variants: models.VariantsList{{Size: "U", Stock: 30}},
			Module:   models.ModuleSports, Active: true,
		},
		{
			Slug: "vela-ignicao-bosch", Name: "Vela de Ignição Bosch",
			Description: "Jogo de velas para motores 1.0 a 1.6", Category: "pecas",
			Automotive: models.AutomotiveFields{Brand: "Bosch", Model: "Gol G5"},
			Price:      89.90, Media: media("https://placehold.co/products/vela.jpg"),
			Variants: models.VariantsList{{Size: "U", Stock: 50}},
			Module:   models.ModuleAutomotive, Active: true,
		},
		{
			Slug: "alto-falante-6pol", Name: "Alto-falante 6 polegadas",
			Description: "Par de alto-falantes 120W", Category: "som-automotivo",
			Automotive: models.AutomotiveFields{Brand: "Pioneer", Model: "Gol G5"},
			Price:      259.90, Media: media("https://placehold.co/products/altofalante.jpg"),
			Variants: models.VariantsList{{Size: "U", Stock: 12}},
			Module:   models.ModuleAutomotive, Active: true,
		},
	}
	for i := range products {
		mustCreate(db, &products[i])
	}

	// ── Home sections ──
	mustCreate(db, &models.HomeSection{
		Title:  "Lançamentos",
		Module: models.ModuleSports,
		ProductIDs: models.ProductIDList{
			products[0].ID, products[1].ID, products[2].ID,
		},
		Position: 0,
		Active:   true,
	})
	mustCreate(db, &models.HomeSection{
		Title:      "Destaques",
		Module:     models.ModuleAutomotive,
		ProductIDs: models.ProductIDList{products[4].ID, products[5].ID},
		Position:   0,
		Active:     true,
	})

	// ── Store configs ──
	mustCreate(db, &models.StoreConfig{
		Module:         models.ModuleSports,
		StoreName:      "Petrocino Sports",
		WhatsAppNumber: "5511999990000",
		Announcement:   "Frete grátis acima de R$ 299",
		Banners:        models.BannerList{{URL: "https://placehold.co/banners/sports.jpg"}},
	})
	mustCreate(db, &models.StoreConfig{
		Module:         models.ModuleAutomotive,
		StoreName:      "Petrocino Auto",
		WhatsAppNumber: "5511999990001",
		Banners:        models.BannerList{},
	})

	fmt.Println("✅ Demo catalog seeded (6 products across both modules)")
}

func mustCreate(db *gorm.DB, value interface{}) {
	if err := db.Create(value).Error; err != nil {
		log.Fatalf("Seed failed: %v", err)
	}
}
