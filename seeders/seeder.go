package seeders

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"resto-api/config"
	"resto-api/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

func ptrString(s string) *string {
	return &s
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func Seed() {
	// ============= Seed Users =============
	users := []models.User{
		{Username: "admin", Password: "admin123", Role: "admin"},
		{Username: "cashier1", Password: "cashier123", Role: "cashier"},
	}

	for _, user := range users {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Println("Failed to hash seed password:", err)
			continue
		}
		user.Password = string(hashed)
		config.DB.FirstOrCreate(&user, models.User{Username: user.Username})
	}

	// ============= Seed Menu =============
	menuItems := []models.MenuItem{
		{Name: "Nasi Goreng Spesial", Description: ptrString("Nasi goreng dengan telur dan ayam"), Price: price("25000"), Category: "Makanan", Available: true},
		{Name: "Mie Ayam Bakso", Description: ptrString("Mie ayam dengan bakso sapi"), Price: price("22000"), Category: "Makanan", Available: true},
		{Name: "Ayam Bakar", Description: ptrString("Ayam bakar bumbu kecap"), Price: price("30000"), Category: "Makanan", Available: true},
		{Name: "Gado-Gado", Description: ptrString("Sayuran dengan bumbu kacang"), Price: price("18000"), Category: "Makanan", Available: true},
		{Name: "Sate Ayam", Description: ptrString("10 tusuk dengan lontong"), Price: price("28000"), Category: "Makanan", Available: true},
		{Name: "Es Teh Manis", Description: ptrString("Teh manis dingin"), Price: price("5000"), Category: "Minuman", Available: true},
		{Name: "Es Jeruk", Description: ptrString("Jeruk peras dingin"), Price: price("7000"), Category: "Minuman", Available: true},
		{Name: "Jus Alpukat", Description: ptrString("Jus alpukat dengan susu coklat"), Price: price("15000"), Category: "Minuman", Available: true},
		{Name: "Kopi Tubruk", Description: ptrString("Kopi hitam tradisional"), Price: price("8000"), Category: "Minuman", Available: true},
		{Name: "Pisang Goreng", Description: ptrString("5 potong pisang goreng crispy"), Price: price("12000"), Category: "Cemilan", Available: true},
		{Name: "Tahu Isi", Description: ptrString("Tahu isi sayuran"), Price: price("10000"), Category: "Cemilan", Available: false},
	}

	for _, item := range menuItems {
		config.DB.FirstOrCreate(&item, models.MenuItem{Name: item.Name})
	}

	var count int64
	config.DB.Model(&models.Order{}).Count(&count)
	if count > 0 {
		return
	}

	var allItems []models.MenuItem
	config.DB.Where("available = ?", true).Find(&allItems)
	if len(allItems) == 0 {
		return
	}

	// Orders spread over the last week across statuses, order types and
	// payment methods so the report screens have data out of the box.
	statuses := []string{models.StatusPending, models.StatusCompleted, models.StatusCancelled}
	orderTypes := []string{models.OrderTypeDineIn, models.OrderTypeTakeAway}
	payments := []string{models.PaymentCash, models.PaymentBCA}

	created := 0
	for day := 0; day < 7; day++ {
		for i := 0; i < 3; i++ {
			order := models.Order{
				Status:        statuses[rand.Intn(len(statuses))],
				OrderType:     orderTypes[rand.Intn(len(orderTypes))],
				PaymentMethod: payments[rand.Intn(len(payments))],
				AdminFee:      decimal.Zero,
			}
			if order.PaymentMethod == models.PaymentBCA {
				order.AdminFee = price("2.50")
			}

			n := rand.Intn(2) + 2
			for j := 0; j < n; j++ {
				item := allItems[rand.Intn(len(allItems))]
				if err := order.AddItem(item, rand.Intn(3)+1); err != nil {
					continue
				}
			}

			order.CreatedAt = time.Now().AddDate(0, 0, -day).Add(-time.Duration(rand.Intn(8)) * time.Hour)
			if err := config.DB.Create(&order).Error; err != nil {
				log.Println("Failed to seed order:", err)
				continue
			}
			created++
		}
	}

	fmt.Printf("Seeding selesai: %d users, %d menu items, %d orders\n", len(users), len(menuItems), created)
}
