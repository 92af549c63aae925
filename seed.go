package main

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"moreyacht/internal/models"
	"moreyacht/internal/repositories"
)

// seedDatabase loads the demo fleet, rental services, accounts and report
// templates on first start. Each group is skipped if data already exists.
func seedDatabase(
	yachtRepo repositories.YachtRepository,
	serviceRepo repositories.RentalServiceRepository,
	userRepo repositories.UserRepository,
	reportRepo repositories.ReportRepository,
) {
	seedYachts(yachtRepo)
	seedRentalServices(serviceRepo)
	seedUsers(userRepo)
	seedReportTemplates(reportRepo)
}

func seedYachts(repo repositories.YachtRepository) {
	existing, err := repo.GetAll()
	if err != nil {
		log.Printf("Error checking fleet before seeding: %v", err)
		return
	}
	if len(existing) > 0 {
		return
	}

	yachts := []models.Yacht{
		{
			ID: "1", Name: "Синяя птица", Type: "Парусная яхта",
			Length: 12, Capacity: 6, Cabins: 2, Bathrooms: 1, Year: 2018,
			Description: "Элегантная парусная яхта идеально подходит для морских прогулок и путешествий вдоль побережья. Оснащена всем необходимым для комфортного отдыха до 6 человек.",
			PricePerDay: 25000,
			Images: []string{
				"https://images.unsplash.com/photo-1566288623394-377af472d81b?auto=format&fit=crop&q=80&w=800",
				"https://images.unsplash.com/photo-1566288619102-02708f511cd2?auto=format&fit=crop&q=80&w=800",
			},
			Features:  []string{"Кондиционер", "Холодильник", "Душ", "Аудиосистема", "Навигационное оборудование", "Тент от солнца"},
			Available: true, Location: "Севастополь",
		},
		{
			ID: "2", Name: "Морской бриз", Type: "Моторная яхта",
			Length: 15, Capacity: 8, Cabins: 3, Bathrooms: 2, Year: 2020,
			Description: "Современная моторная яхта с просторным салоном и открытой палубой. Идеальный вариант для активного отдыха на море, рыбалки или дневных прогулок.",
			PricePerDay: 40000,
			Images: []string{
				"https://images.unsplash.com/photo-1569263979104-865ab7cd8d13?auto=format&fit=crop&q=80&w=800",
				"https://images.unsplash.com/photo-1552463966-d4e9e636e44d?auto=format&fit=crop&q=80&w=800",
			},
			Features:  []string{"Кондиционер", "Холодильник", "Душ", "Телевизор", "Аудиосистема", "Водные игрушки", "Встроенный гриль"},
			Available: true, Location: "Ялта",
		},
		{
			ID: "3", Name: "Ласточка", Type: "Катамаран",
			Length: 14, Capacity: 10, Cabins: 4, Bathrooms: 2, Year: 2019,
			Description: "Просторный и устойчивый катамаран, обеспечивающий максимальный комфорт даже при высоких волнах. Идеален для больших компаний и семейного отдыха.",
			PricePerDay: 35000,
			Images: []string{
				"https://images.unsplash.com/photo-1588401273872-959d2076283d?auto=format&fit=crop&q=80&w=800",
				"https://images.unsplash.com/photo-1542856391-717156985b3d?auto=format&fit=crop&q=80&w=800",
			},
			Features:  []string{"Кондиционер", "Холодильник", "Душ", "Кухня", "Батут", "Плавательная платформа", "Солнечная панель"},
			Available: true, Location: "Сочи",
		},
		{
			ID: "4", Name: "Морская звезда", Type: "Парусная яхта",
			Length: 13, Capacity: 7, Cabins: 3, Bathrooms: 1, Year: 2017,
			Description: "Классическая парусная яхта с впечатляющими ходовыми качествами и уютным интерьером. Подходит как для новичков, так и для опытных яхтсменов.",
			PricePerDay: 28000,
			Images: []string{
				"https://images.unsplash.com/photo-1559742798-34f6c9effceb?auto=format&fit=crop&q=80&w=800",
				"https://images.unsplash.com/photo-1584188237525-99a71a4bdf92?auto=format&fit=crop&q=80&w=800",
			},
			Features:  []string{"Кондиционер", "Холодильник", "Автопилот", "Радар", "Навигационное оборудование", "Солнечная палуба"},
			Available: true, Location: "Севастополь",
		},
		{
			ID: "5", Name: "Адмирал", Type: "Моторная яхта",
			Length: 18, Capacity: 12, Cabins: 4, Bathrooms: 3, Year: 2021,
			Description: "Престижная моторная яхта премиум-класса с роскошным интерьером и передовым техническим оснащением. Просторный флайбридж идеален для отдыха и вечеринок.",
			PricePerDay: 65000,
			Images: []string{
				"https://images.unsplash.com/photo-1567899378494-47b22a2ae96a?auto=format&fit=crop&q=80&w=800",
				"https://images.unsplash.com/photo-1552306062-29a5d9c1b8b7?auto=format&fit=crop&q=80&w=800",
			},
			Features:  []string{"Джакузи", "Бар", "Кондиционер", "Спутниковое ТВ", "Wi-Fi", "Тендер", "Гидроцикл", "Стабилизаторы качки"},
			Available: true, Location: "Сочи",
		},
		{
			ID: "6", Name: "Бриз", Type: "Катер",
			Length: 8, Capacity: 6, Cabins: 1, Bathrooms: 1, Year: 2022,
			Description: "Компактный и быстрый катер для дневных морских прогулок, водных видов спорта и рыбалки. Идеален для активного отдыха в компании друзей.",
			PricePerDay: 15000,
			Images: []string{
				"https://images.unsplash.com/photo-1618931443679-09ed80914134?auto=format&fit=crop&q=80&w=800",
				"https://images.unsplash.com/photo-1595583176635-e71b662d07df?auto=format&fit=crop&q=80&w=800",
			},
			Features:  []string{"Аудиосистема", "Холодильник", "Платформа для купания", "Складной тент", "Душ на корме", "Эхолот"},
			Available: true, Location: "Феодосия",
		},
	}

	for i := range yachts {
		if err := repo.Create(&yachts[i]); err != nil {
			log.Printf("Error seeding yacht %s: %v", yachts[i].Name, err)
		} else {
			log.Printf("Seeded yacht: %s (ID: %s)", yachts[i].Name, yachts[i].ID)
		}
	}
}

func seedRentalServices(repo repositories.RentalServiceRepository) {
	existing, err := repo.GetAll()
	if err != nil {
		log.Printf("Error checking rental services before seeding: %v", err)
		return
	}
	if len(existing) > 0 {
		return
	}

	rentalServices := []models.RentalService{
		{ID: "1", Name: "Услуги капитана", Price: 5000, Description: "Профессиональный капитан на весь период аренды"},
		{ID: "2", Name: "Питание на борту", Price: 3000, Description: "Трехразовое питание для всех гостей"},
		{ID: "3", Name: "Трансфер до яхты", Price: 2000, Description: "Комфортная доставка от вашего отеля до места стоянки яхты"},
		{ID: "4", Name: "Полотенца и постельное белье", Price: 1000, Description: "Комплект для каждого гостя"},
		{ID: "5", Name: "Рыболовное снаряжение", Price: 2500, Description: "Удочки, снасти и приманки для морской рыбалки"},
	}

	for i := range rentalServices {
		if err := repo.Create(&rentalServices[i]); err != nil {
			log.Printf("Error seeding rental service %s: %v", rentalServices[i].Name, err)
		}
	}
}

func seedUsers(repo repositories.UserRepository) {
	_, total, err := repo.List(models.UserFilter{}, 1, 1)
	if err != nil {
		log.Printf("Error checking users before seeding: %v", err)
		return
	}
	if total > 0 {
		return
	}

	demoUsers := []struct {
		user     models.User
		password string
	}{
		{
			user: models.User{
				ID: "1", Name: "Иван Петров", Email: "ivan@example.com",
				Phone: "+7 (900) 123-45-67", Role: models.RoleUser,
				CreatedAt: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			},
			password: "password123",
		},
		{
			user: models.User{
				ID: "2", Name: "Мария Сидорова", Email: "maria@example.com",
				Role:      models.RoleUser,
				CreatedAt: time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC),
			},
			password: "password456",
		},
		{
			user: models.User{
				ID: "3", Name: "Админ Админович", Email: "admin@moreyacht.ru",
				Role:      models.RoleAdmin,
				CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			},
			password: "admin123",
		},
	}

	for i := range demoUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(demoUsers[i].password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("Error hashing password for %s: %v", demoUsers[i].user.Email, err)
			continue
		}
		demoUsers[i].user.PasswordHash = string(hash)
		if err := repo.Create(&demoUsers[i].user); err != nil {
			log.Printf("Error seeding user %s: %v", demoUsers[i].user.Email, err)
		}
	}
}

func seedReportTemplates(repo repositories.ReportRepository) {
	existing, err := repo.ListTemplates()
	if err != nil {
		log.Printf("Error checking report templates before seeding: %v", err)
		return
	}
	if len(existing) > 0 {
		return
	}

	templates := []models.ReportTemplate{
		{
			ID:          "tmpl-revenue",
			Name:        "Revenue overview",
			Description: "Monthly revenue with average booking value",
			Metrics:     []string{"revenue", "revenueByMonth", "averageBookingValue"},
		},
		{
			ID:          "tmpl-fleet",
			Name:        "Fleet utilization",
			Description: "Booking counts and most requested yachts",
			Metrics:     []string{"totalBookings", "popularYachts", "conversionRate"},
		},
		{
			ID:          "tmpl-customers",
			Name:        "Customer activity",
			Description: "Customer counts and repeat rentals",
			Metrics:     []string{"repeatCustomerRate", "completedBookings", "cancelledBookings"},
		},
	}

	for i := range templates {
		if err := repo.CreateTemplate(&templates[i]); err != nil {
			log.Printf("Error seeding report template %s: %v", templates[i].Name, err)
		}
	}
}
