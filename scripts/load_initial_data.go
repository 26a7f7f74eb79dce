package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"felka-transportes-backend/internal/config"
	"felka-transportes-backend/internal/database"
	"felka-transportes-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type VehicleData struct {
	Plate    string `yaml:"plate"`
	Brand    string `yaml:"brand"`
	Model    string `yaml:"model"`
	Year     int    `yaml:"year"`
	Category string `yaml:"category"`
	Status   string `yaml:"status"`
	Odometer int    `yaml:"odometer"`
	Notes    string `yaml:"notes,omitempty"`
}

type EmployeeData struct {
	FullName        string `yaml:"full_name"`
	CPF             string `yaml:"cpf"`
	Role            string `yaml:"role"`
	Department      string `yaml:"department"`
	Email           string `yaml:"email,omitempty"`
	Phone           string `yaml:"phone,omitempty"`
	Status          string `yaml:"status"`
	LicenseNumber   string `yaml:"license_number,omitempty"`
	LicenseCategory string `yaml:"license_category,omitempty"`
}

type VisitorData struct {
	FullName  string `yaml:"full_name"`
	CPF       string `yaml:"cpf"`
	Company   string `yaml:"company,omitempty"`
	Email     string `yaml:"email,omitempty"`
	Phone     string `yaml:"phone,omitempty"`
	Status    string `yaml:"status"`
	BadgeCode string `yaml:"badge_code,omitempty"`
}

// File structures
type VehiclesFile struct {
	Vehicles []VehicleData `yaml:"vehicles"`
}

type EmployeesFile struct {
	Employees []EmployeeData `yaml:"employees"`
}

type VisitorsFile struct {
	Visitors []VisitorData `yaml:"visitors"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	vehicles, err := loadVehicles(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load vehicles: %w", err)
	}

	employees, err := loadEmployees(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load employees: %w", err)
	}

	visitors, err := loadVisitors(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load visitors: %w", err)
	}

	created := 0
	for _, v := range vehicles {
		vehicle := models.Vehicle{
			Plate:    v.Plate,
			Brand:    v.Brand,
			Model:    v.Model,
			Year:     v.Year,
			Category: v.Category,
			Status:   models.VehicleStatus(v.Status),
			Odometer: v.Odometer,
			Notes:    v.Notes,
		}
		if vehicle.Status == "" {
			vehicle.Status = models.VehicleStatusActive
		}
		res := db.Where(models.Vehicle{Plate: v.Plate}).FirstOrCreate(&vehicle)
		if res.Error != nil {
			return fmt.Errorf("failed to create vehicle %s: %w", v.Plate, res.Error)
		}
		created += int(res.RowsAffected)
	}
	log.Printf("Vehicles: %d created, %d already present", created, len(vehicles)-created)

	created = 0
	for _, e := range employees {
		employee := models.Employee{
			FullName:        e.FullName,
			CPF:             e.CPF,
			Role:            e.Role,
			Department:      e.Department,
			Email:           e.Email,
			Phone:           e.Phone,
			Status:          models.EmployeeStatus(e.Status),
			LicenseNumber:   e.LicenseNumber,
			LicenseCategory: e.LicenseCategory,
		}
		if employee.Status == "" {
			employee.Status = models.EmployeeStatusActive
		}
		res := db.Where(models.Employee{CPF: e.CPF}).FirstOrCreate(&employee)
		if res.Error != nil {
			return fmt.Errorf("failed to create employee %s: %w", e.FullName, res.Error)
		}
		created += int(res.RowsAffected)
	}
	log.Printf("Employees: %d created, %d already present", created, len(employees)-created)

	created = 0
	for _, v := range visitors {
		visitor := models.Visitor{
			FullName:  v.FullName,
			CPF:       v.CPF,
			Company:   v.Company,
			Email:     v.Email,
			Phone:     v.Phone,
			Status:    models.VisitorStatus(v.Status),
			BadgeCode: v.BadgeCode,
		}
		if visitor.Status == "" {
			visitor.Status = models.VisitorStatusActive
		}
		res := db.Where(models.Visitor{CPF: v.CPF}).FirstOrCreate(&visitor)
		if res.Error != nil {
			return fmt.Errorf("failed to create visitor %s: %w", v.FullName, res.Error)
		}
		created += int(res.RowsAffected)
	}
	log.Printf("Visitors: %d created, %d already present", created, len(visitors)-created)

	return nil
}

func loadVehicles(dataDir string) ([]VehicleData, error) {
	var file VehiclesFile
	if err := readYAML(filepath.Join(dataDir, "vehicles.yaml"), &file); err != nil {
		return nil, err
	}
	return file.Vehicles, nil
}

func loadEmployees(dataDir string) ([]EmployeeData, error) {
	var file EmployeesFile
	if err := readYAML(filepath.Join(dataDir, "employees.yaml"), &file); err != nil {
		return nil, err
	}
	return file.Employees, nil
}

func loadVisitors(dataDir string) ([]VisitorData, error) {
	var file VisitorsFile
	if err := readYAML(filepath.Join(dataDir, "visitors.yaml"), &file); err != nil {
		return nil, err
	}
	return file.Visitors, nil
}

func readYAML(path string, target interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Skipping %s: file not found", path)
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, target)
}
