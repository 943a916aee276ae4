package configs

import (
	"log"

	"sabor-backend/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first admin account from env, once.
func SeedAdmin(cfg *Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", cfg.AdminEmail)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	admin := entity.User{
		Email:    cfg.AdminEmail,
		Password: string(hash),
		Name:     "Admin",
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

// SeedLookups inserts the starting catalog, tables and discount codes.
func SeedLookups() error {
	// Discount codes
	db.FirstOrCreate(&entity.DiscountCode{}, entity.DiscountCode{Code: "EMMETT", Rate: 0.1})

	// Tables 1..6, all free
	for n := 1; n <= 6; n++ {
		db.FirstOrCreate(&entity.Table{}, entity.Table{TableNumber: n})
	}

	// Starter menu (prices in centavos)
	menu := []entity.Product{
		{Name: "Tacos", Price: 5000, Category: "Platos fuertes", Description: "Orden de tacos al pastor", Available: true},
		{Name: "Enchiladas", Price: 6000, Category: "Platos fuertes", Description: "Enchiladas verdes con pollo", Available: true},
		{Name: "Quesadillas", Price: 4500, Category: "Antojitos", Description: "Quesadillas de queso Oaxaca", Available: true},
		{Name: "Pozole", Price: 7000, Category: "Platos fuertes", Description: "Pozole rojo estilo Guerrero", Available: true},
	}
	for _, p := range menu {
		db.FirstOrCreate(&entity.Product{}, entity.Product{Name: p.Name, Price: p.Price, Category: p.Category, Description: p.Description, Available: true})
	}

	return nil
}
