package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"project-catalog-backend/internal/config"
	"project-catalog-backend/internal/database"
	"project-catalog-backend/internal/database/models"
	"project-catalog-backend/internal/repository"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Data structures matching the seed YAML files

type TechnologyData struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

type UserData struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

type ProjectData struct {
	Name          string   `yaml:"name"`
	Description   string   `yaml:"description"`
	RepositoryURL string   `yaml:"repository_url,omitempty"`
	Language      string   `yaml:"language,omitempty"`
	Rating        *float64 `yaml:"rating,omitempty"`
	// Technologies reference technologies by name, users by email.
	// The first user becomes the project owner.
	Technologies []string `yaml:"technologies,omitempty"`
	Users        []string `yaml:"users,omitempty"`
}

type SeedFile struct {
	Technologies []TechnologyData `yaml:"technologies"`
	Users        []UserData       `yaml:"users"`
	Projects     []ProjectData    `yaml:"projects"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	dataDir := "scripts/data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}
	if err := loadDataFromYAMLFiles(db, dataDir); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry waits for Postgres readiness before giving up. Useful
// when the database container is still starting.
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
	entries, err := os.ReadDir(dataDir)
	if err != nil {
		return fmt.Errorf("failed to read data dir: %w", err)
	}

	var seed SeedFile
	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(dataDir, entry.Name()))
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", entry.Name(), err)
		}
		var file SeedFile
		if err := yaml.Unmarshal(raw, &file); err != nil {
			return fmt.Errorf("failed to parse %s: %w", entry.Name(), err)
		}
		seed.Technologies = append(seed.Technologies, file.Technologies...)
		seed.Users = append(seed.Users, file.Users...)
		seed.Projects = append(seed.Projects, file.Projects...)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		techByName, err := upsertTechnologies(tx, seed.Technologies)
		if err != nil {
			return err
		}
		userByEmail, err := upsertUsers(tx, seed.Users)
		if err != nil {
			return err
		}
		return loadProjects(tx, seed.Projects, techByName, userByEmail)
	})
}

func upsertTechnologies(tx *gorm.DB, data []TechnologyData) (map[string]uuid.UUID, error) {
	repo := repository.NewTechnologyRepository(tx)
	byName := make(map[string]uuid.UUID, len(data))
	for _, td := range data {
		existing, err := repo.GetByName(td.Name)
		if err == nil {
			byName[td.Name] = existing.ID
			continue
		}
		technology := &models.Technology{
			Name:        td.Name,
			Description: td.Description,
		}
		if err := repo.Create(technology); err != nil {
			return nil, fmt.Errorf("failed to create technology %q: %w", td.Name, err)
		}
		byName[td.Name] = technology.ID
		log.Printf("Created technology: %s", td.Name)
	}
	return byName, nil
}

func upsertUsers(tx *gorm.DB, data []UserData) (map[string]uuid.UUID, error) {
	repo := repository.NewUserRepository(tx)
	byEmail := make(map[string]uuid.UUID, len(data))
	for _, ud := range data {
		existing, err := repo.GetByEmail(ud.Email)
		if err == nil {
			byEmail[ud.Email] = existing.ID
			continue
		}
		user := &models.User{
			Name:  ud.Name,
			Email: ud.Email,
		}
		if err := repo.Create(user); err != nil {
			return nil, fmt.Errorf("failed to create user %q: %w", ud.Email, err)
		}
		byEmail[ud.Email] = user.ID
		log.Printf("Created user: %s", ud.Email)
	}
	return byEmail, nil
}

func loadProjects(tx *gorm.DB, data []ProjectData, techByName, userByEmail map[string]uuid.UUID) error {
	projects := repository.NewProjectRepository(tx)
	assoc := repository.NewProjectAssociationRepository(tx)

	for _, pd := range data {
		project := &models.Project{
			Name:          pd.Name,
			Description:   pd.Description,
			RepositoryURL: pd.RepositoryURL,
			Language:      pd.Language,
			Rating:        pd.Rating,
		}
		if err := projects.Create(project); err != nil {
			return fmt.Errorf("failed to create project %q: %w", pd.Name, err)
		}

		techIDs := make([]uuid.UUID, 0, len(pd.Technologies))
		for _, name := range pd.Technologies {
			id, ok := techByName[name]
			if !ok {
				return fmt.Errorf("project %q references unknown technology %q", pd.Name, name)
			}
			techIDs = append(techIDs, id)
		}
		if err := assoc.ReplaceTechnologies(project.ID, techIDs); err != nil {
			return fmt.Errorf("failed to attach technologies to %q: %w", pd.Name, err)
		}

		userIDs := make([]uuid.UUID, 0, len(pd.Users))
		for _, email := range pd.Users {
			id, ok := userByEmail[email]
			if !ok {
				return fmt.Errorf("project %q references unknown user %q", pd.Name, email)
			}
			userIDs = append(userIDs, id)
		}
		if err := assoc.ReplaceUsers(project.ID, userIDs); err != nil {
			return fmt.Errorf("failed to attach users to %q: %w", pd.Name, err)
		}

		log.Printf("Created project: %s (%d technologies, %d users)", pd.Name, len(techIDs), len(userIDs))
	}
	return nil
}
