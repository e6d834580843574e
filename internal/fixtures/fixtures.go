// Package fixtures holds the starter data of a fresh installation.
package fixtures

import (
	"context"
	"fmt"

	"github.com/qanyare/restaurant-service/internal/models"
	"github.com/qanyare/restaurant-service/internal/storage"
)

// Admin credentials of the seeded back office account
const (
	AdminUsername = "admin"
	AdminPassword = "password123"
)

// HashFunc turns a plaintext password into its stored form
type HashFunc func(password string) (string, error)

type seedItem struct {
	name, nameEn, description, image string
	price                            int64
}

type seedCategory struct {
	nameEn, nameSo, description string
	items                       []seedItem
}

var catalog = []seedCategory{
	{
		nameEn: "Drinks", nameSo: "Cabitaan", description: "Traditional Somali beverages",
		items: []seedItem{
			{"Shaah Somali", "Somali Tea", "Aromatic tea with milk, cardamom, and cinnamon", "https://images.pexels.com/photos/1638280/pexels-photo-1638280.jpeg", 150},
			{"Casiir Canbe", "Mango Juice", "Freshly squeezed mango juice from local fruits", "https://images.unsplash.com/photo-1546173159-315724a31696", 200},
		},
	},
	{
		nameEn: "Starters", nameSo: "Bilowga", description: "Appetizers and light bites",
		items: []seedItem{
			{"Sambuus", "Samosas", "Crispy pastries filled with spiced meat and vegetables", "https://images.unsplash.com/photo-1601050690597-df0568f70950", 300},
			{"Canjeero", "Flatbread", "Traditional fermented pancake, perfect for sharing", "https://images.pexels.com/photos/376464/pexels-photo-376464.jpeg", 250},
		},
	},
	{
		nameEn: "Main Course", nameSo: "Cunto Weyn", description: "Traditional main dishes",
		items: []seedItem{
			{"Bariis Iskukaris", "Spiced Rice", "Fragrant rice cooked with aromatic spices and tender meat", "https://images.unsplash.com/photo-1596560548464-f010549b84d7", 800},
			{"Hilib Shiilan", "Grilled Meat", "Tender grilled meat seasoned with traditional Somali spices", "https://images.unsplash.com/photo-1529193591184-b1d58069ecdd", 1200},
			{"Baasto", "Somali Pasta", "Pasta with traditional Somali sauce and vegetables", "https://images.pexels.com/photos/1279330/pexels-photo-1279330.jpeg", 650},
		},
	},
}

var tables = []models.Table{
	{Name: "Table 1", Capacity: 4, Type: "table", Description: ptr("Perfect for small families")},
	{Name: "Table 2", Capacity: 6, Type: "table", Description: ptr("Ideal for medium groups")},
	{Name: "Table 3", Capacity: 8, Type: "table", Description: ptr("Great for larger parties")},
	{Name: "Main Hall", Capacity: 50, Type: "hall", Description: ptr("Perfect for weddings and large celebrations")},
	{Name: "Private Hall", Capacity: 20, Type: "hall", Description: ptr("Intimate setting for special occasions")},
}

var staff = []models.Staff{
	{Name: "Ahmed Hassan Mohamed", Role: "Manager", Phone: ptr("+254 712 345 678"), Email: ptr("ahmed@qanyare.com")},
	{Name: "Fatima Omar Ali", Role: "Head Chef", Phone: ptr("+254 733 456 789"), Email: ptr("fatima@qanyare.com")},
	{Name: "Ibrahim Mohamed Aden", Role: "Waiter", Phone: ptr("+254 722 567 890"), Email: ptr("ibrahim@qanyare.com")},
	{Name: "Halima Abdi Hassan", Role: "Cashier", Phone: ptr("+254 711 678 901"), Email: ptr("halima@qanyare.com")},
}

var reviews = []models.Review{
	{CustomerName: "Ahmed Hassan", Rating: 5, Comment: "The best Somali restaurant in Mandera! The Bariis Iskukaris reminded me of my grandmother's cooking. Authentic flavors and warm hospitality."},
	{CustomerName: "Fatima Mohamed", Rating: 5, Comment: "Perfect venue for our family celebration! The staff was incredibly welcoming and the traditional dishes were absolutely delicious."},
	{CustomerName: "Ibrahim Ali", Rating: 5, Comment: "Outstanding service and truly authentic Somali cuisine. The Hilib Shiilan was perfectly seasoned and the atmosphere is very cultural."},
	{CustomerName: "Zeinab Omar", Rating: 5, Comment: "The best place in Mandera for authentic Somali food! Every dish tells a story of our rich culture. Highly recommended!"},
	{CustomerName: "Mohamed Abdi", Rating: 5, Comment: "Excellent venue for our wedding celebration! The team helped us create a memorable experience with traditional Somali hospitality."},
	{CustomerName: "Halima Isse", Rating: 5, Comment: "The Canjeero here is just like my mother used to make! Clean environment, friendly staff, and prices that won't break the bank."},
}

func ptr[T any](v T) *T { return &v }

// Seed writes the starter data through repos. It does nothing and reports false
// when the backend already holds categories.
func Seed(ctx context.Context, repos *storage.Repositories, hash HashFunc) (bool, error) {
	existing, err := repos.Category.List(ctx, models.CategoryFilter{IncludeInactive: true})
	if err != nil {
		return false, fmt.Errorf("check existing categories: %w", err)
	}
	if len(existing) > 0 {
		return false, nil
	}

	for _, c := range catalog {
		category, err := repos.Category.Create(ctx, models.Category{
			Name:        c.nameEn,
			NameEn:      c.nameEn,
			NameSo:      c.nameSo,
			Description: ptr(c.description),
			IsActive:    true,
		})
		if err != nil {
			return false, fmt.Errorf("seed category %s: %w", c.nameEn, err)
		}

		for _, it := range c.items {
			_, err := repos.MenuItem.Create(ctx, models.MenuItem{
				Name:        it.name,
				NameEn:      it.nameEn,
				NameSo:      it.name,
				Description: it.description,
				Price:       it.price,
				CategoryID:  category.ID,
				Image:       ptr(it.image),
				IsAvailable: true,
				IsActive:    true,
			})
			if err != nil {
				return false, fmt.Errorf("seed menu item %s: %w", it.name, err)
			}
		}
	}

	for _, t := range tables {
		t.IsAvailable = true
		if _, err := repos.Table.Create(ctx, t); err != nil {
			return false, fmt.Errorf("seed table %s: %w", t.Name, err)
		}
	}

	for _, s := range staff {
		s.IsActive = true
		if _, err := repos.Staff.Create(ctx, s); err != nil {
			return false, fmt.Errorf("seed staff %s: %w", s.Name, err)
		}
	}

	for _, r := range reviews {
		r.IsApproved = true
		if _, err := repos.Review.Create(ctx, r); err != nil {
			return false, fmt.Errorf("seed review by %s: %w", r.CustomerName, err)
		}
	}

	passwordHash, err := hash(AdminPassword)
	if err != nil {
		return false, fmt.Errorf("hash admin password: %w", err)
	}
	_, err = repos.User.Create(ctx, models.User{
		Username:     AdminUsername,
		PasswordHash: passwordHash,
		Name:         "Admin User",
		Email:        ptr("admin@qanyare.com"),
		Phone:        ptr("+254 712 345 678"),
		IsAdmin:      true,
	})
	if err != nil {
		return false, fmt.Errorf("seed admin user: %w", err)
	}

	return true, nil
}
