package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/Lumen-Ecommerce/lumen-cms-backend/config"
	"github.com/Lumen-Ecommerce/lumen-cms-backend/models"
	"github.com/joho/godotenv"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main seeds demo catalog, users and a year of orders so the dashboard has
// something to render locally.
// Usage: go run cmd/seed/main.go
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("LUMEN CMS - Demo Data Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	defer config.CloseDB()
	log.Println("✓ Connected to database")

	if err := config.StoreGorm.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("✓ Schema migrated")

	categories := seedCategories()
	products := seedProducts(categories)
	users := seedUsers()
	seedOrders(users, products)

	fmt.Println()
	fmt.Println("✓ Done")
}

func seedCategories() []models.Category {
	names := []string{"Áo thun", "Quần jean", "Giày sneaker", "Phụ kiện"}

	categories := make([]models.Category, 0, len(names))
	for _, name := range names {
		category := models.Category{Name: name}
		if err := config.StoreGorm.FirstOrCreate(&category, models.Category{Name: name}).Error; err != nil {
			log.Fatalf("Failed to seed category %q: %v", name, err)
		}
		categories = append(categories, category)
	}
	log.Printf("✓ Seeded %d categories", len(categories))
	return categories
}

func seedProducts(categories []models.Category) []models.Product {
	type spec struct {
		name     string
		category int
	}
	specs := []spec{
		{"Áo thun basic trắng", 0},
		{"Áo thun oversize đen", 0},
		{"Quần jean slimfit xanh", 1},
		{"Quần jean baggy đen", 1},
		{"Sneaker trắng low-top", 2},
		{"Sneaker chạy bộ", 2},
		{"Mũ lưỡi trai", 3},
		{"Thắt lưng da", 3},
	}

	products := make([]models.Product, 0, len(specs))
	for _, s := range specs {
		product := models.Product{Name: s.name, CategoryID: categories[s.category].ID}
		if err := config.StoreGorm.FirstOrCreate(&product, models.Product{Name: s.name}).Error; err != nil {
			log.Fatalf("Failed to seed product %q: %v", s.name, err)
		}
		products = append(products, product)
	}
	log.Printf("✓ Seeded %d products", len(products))
	return products
}

func seedUsers() []models.User {
	users := make([]models.User, 0, 20)
	for i := 0; i < 20; i++ {
		email := fmt.Sprintf("demo-user-%02d@example.com", i)
		user := models.User{
			Email:     email,
			Name:      fmt.Sprintf("Demo User %02d", i),
			CreatedAt: time.Now().AddDate(0, 0, -rand.Intn(365)),
		}
		if err := config.StoreGorm.FirstOrCreate(&user, models.User{Email: email}).Error; err != nil {
			log.Fatalf("Failed to seed user %q: %v", email, err)
		}
		users = append(users, user)
	}
	log.Printf("✓ Seeded %d users", len(users))
	return users
}

func seedOrders(users []models.User, products []models.Product) {
	statuses := []string{
		models.OrderStatusPending,
		models.OrderStatusConfirmed,
		models.OrderStatusShipping,
		models.OrderStatusDelivered,
		models.OrderStatusDelivered, // weight towards delivered
		models.OrderStatusCancelled,
	}
	variants := []string{"S", "M", "L", "XL"}
	prices := []float64{149000, 199000, 349000, 499000, 799000, 1190000, 99000, 259000}

	var existing int64
	config.StoreGorm.Model(&models.Order{}).Count(&existing)
	if existing > 0 {
		log.Printf("✓ Orders already present (%d), skipping", existing)
		return
	}

	const orderCount = 240
	for i := 0; i < orderCount; i++ {
		user := users[rand.Intn(len(users))]
		createdAt := time.Now().AddDate(0, 0, -rand.Intn(365))

		order := models.Order{
			UserID:        user.ID,
			OrderNumber:   fmt.Sprintf("ORD-%s-%06d", createdAt.Format("2006"), i+1),
			CurrentStatus: statuses[rand.Intn(len(statuses))],
			CreatedAt:     createdAt,
		}

		itemCount := 1 + rand.Intn(3)
		var subtotal float64
		for j := 0; j < itemCount; j++ {
			idx := rand.Intn(len(products))
			quantity := 1 + rand.Intn(3)
			price := prices[idx]
			order.Items = append(order.Items, models.OrderItem{
				ProductID:   products[idx].ID,
				Name:        products[idx].Name,
				Image:       fmt.Sprintf("https://cdn.example.com/p/%02d.jpg", idx),
				VariantName: variants[rand.Intn(len(variants))],
				Price:       price,
				Quantity:    quantity,
			})
			subtotal += price * float64(quantity)
		}

		order.Subtotal = subtotal
		order.ShippingFee = 30000
		order.FinalTotal = subtotal + order.ShippingFee

		if err := config.StoreGorm.Create(&order).Error; err != nil {
			log.Fatalf("Failed to seed order %d: %v", i, err)
		}
	}
	log.Printf("✓ Seeded %d orders", orderCount)
}
