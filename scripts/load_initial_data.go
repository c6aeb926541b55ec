package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"fleet-supply-backend/internal/config"
	"fleet-supply-backend/internal/database"
	"fleet-supply-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type UserData struct {
	Email     string `yaml:"email"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	UserType  string `yaml:"user_type"`
}

type OrganizationData struct {
	Name        string `yaml:"name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	OwnerEmail  string `yaml:"owner_email"`
}

type SubscriptionData struct {
	OrganizationName string `yaml:"organization_name"`
	Plan             string `yaml:"plan"`
	MaxVessels       int    `yaml:"max_vessels"`
	MaxUsers         int    `yaml:"max_users"`
}

type VesselData struct {
	Name             string `yaml:"name"`
	OrganizationName string `yaml:"organization_name"`
	IMONumber        string `yaml:"imo_number,omitempty"`
	Flag             string `yaml:"flag,omitempty"`
	Description      string `yaml:"description,omitempty"`
}

type MemberData struct {
	Email            string `yaml:"email"`
	OrganizationName string `yaml:"organization_name"`
	Role             string `yaml:"role"`
	Status           string `yaml:"status,omitempty"`
}

// File structures
type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type OrganizationsFile struct {
	Organizations []OrganizationData `yaml:"organizations"`
}

type SubscriptionsFile struct {
	Subscriptions []SubscriptionData `yaml:"subscriptions"`
}

type VesselsFile struct {
	Vessels []VesselData `yaml:"vessels"`
}

type MembersFile struct {
	Members []MemberData `yaml:"members"`
}

func main() {
	log.Println("Loading initial fleet data from YAML files...")

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

	log.Println("Initial fleet data loaded successfully")
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
	users, err := loadUsers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	organizations, err := loadOrganizations(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load organizations: %w", err)
	}

	subscriptions, err := loadSubscriptions(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load subscriptions: %w", err)
	}

	vessels, err := loadVessels(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load vessels: %w", err)
	}

	members, err := loadMembers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load members: %w", err)
	}

	// Users come first, everything else references them.
	userMap := make(map[string]*models.User)
	userCreated := 0
	for _, userData := range users {
		user, created, err := createUser(db, userData)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Email, err)
		}
		userMap[userData.Email] = user
		if created {
			userCreated++
		}
	}
	log.Printf("Users: %d created, %d total", userCreated, len(users))

	orgMap := make(map[string]*models.Organization)
	orgCreated := 0
	for _, orgData := range organizations {
		org, created, err := createOrganization(db, orgData, userMap)
		if err != nil {
			return fmt.Errorf("failed to create organization %s: %w", orgData.Name, err)
		}
		orgMap[orgData.Name] = org
		if created {
			orgCreated++
		}
	}
	log.Printf("Organizations: %d created, %d total", orgCreated, len(organizations))

	subCreated := 0
	for _, subData := range subscriptions {
		created, err := createSubscription(db, subData, orgMap)
		if err != nil {
			return fmt.Errorf("failed to create subscription for %s: %w", subData.OrganizationName, err)
		}
		if created {
			subCreated++
		}
	}
	log.Printf("Subscriptions: %d created, %d total", subCreated, len(subscriptions))

	vesselCreated := 0
	for _, vesselData := range vessels {
		created, err := createVessel(db, vesselData, orgMap)
		if err != nil {
			log.Printf("Warning: failed to create vessel %s: %v", vesselData.Name, err)
			continue
		}
		if created {
			vesselCreated++
		}
	}
	log.Printf("Vessels: %d created, %d total", vesselCreated, len(vessels))

	memberCreated := 0
	for _, memberData := range members {
		created, err := createMember(db, memberData, userMap, orgMap)
		if err != nil {
			log.Printf("Warning: failed to create member %s: %v", memberData.Email, err)
			continue
		}
		if created {
			memberCreated++
		}
	}
	log.Printf("Members: %d created, %d total", memberCreated, len(members))

	return nil
}

func loadUsers(dataDir string) ([]UserData, error) {
	var allUsers []UserData

	err := walkYAMLFiles(dataDir, "users", func(data []byte) error {
		var file UsersFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		allUsers = append(allUsers, file.Users...)
		return nil
	})

	return allUsers, err
}

func loadOrganizations(dataDir string) ([]OrganizationData, error) {
	var allOrgs []OrganizationData

	err := walkYAMLFiles(dataDir, "organizations", func(data []byte) error {
		var file OrganizationsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		allOrgs = append(allOrgs, file.Organizations...)
		return nil
	})

	return allOrgs, err
}

func loadSubscriptions(dataDir string) ([]SubscriptionData, error) {
	var allSubs []SubscriptionData

	err := walkYAMLFiles(dataDir, "subscriptions", func(data []byte) error {
		var file SubscriptionsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		allSubs = append(allSubs, file.Subscriptions...)
		return nil
	})

	return allSubs, err
}

func loadVessels(dataDir string) ([]VesselData, error) {
	var allVessels []VesselData

	err := walkYAMLFiles(dataDir, "vessels", func(data []byte) error {
		var file VesselsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		allVessels = append(allVessels, file.Vessels...)
		return nil
	})

	return allVessels, err
}

func loadMembers(dataDir string) ([]MemberData, error) {
	var allMembers []MemberData

	err := walkYAMLFiles(dataDir, "members", func(data []byte) error {
		var file MembersFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		allMembers = append(allMembers, file.Members...)
		return nil
	})

	return allMembers, err
}

// walkYAMLFiles feeds every .yaml file under dataDir whose path contains
// the marker through the handler
func walkYAMLFiles(dataDir, marker string, handle func(data []byte) error) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, marker) {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			return handle(data)
		}
		return nil
	})
}

func createUser(db *gorm.DB, userData UserData) (*models.User, bool, error) {
	var user models.User
	if err := db.Where("email = ?", userData.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			userType := models.UserTypeRegular
			if userData.UserType != "" {
				userType = models.UserType(userData.UserType)
			}

			user = models.User{
				Email:     userData.Email,
				FirstName: userData.FirstName,
				LastName:  userData.LastName,
				UserType:  userType,
			}

			if err := db.Create(&user).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create user: %w", err)
			}
			return &user, true, nil
		}
		return nil, false, fmt.Errorf("failed to query user: %w", err)
	}

	return &user, false, nil
}

func createOrganization(db *gorm.DB, orgData OrganizationData, userMap map[string]*models.User) (*models.Organization, bool, error) {
	owner := userMap[orgData.OwnerEmail]
	if owner == nil {
		return nil, false, fmt.Errorf("owner %s not found for organization %s", orgData.OwnerEmail, orgData.Name)
	}

	var org models.Organization
	if err := db.Where("name = ?", orgData.Name).First(&org).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			org = models.Organization{
				Name:        orgData.Name,
				DisplayName: orgData.DisplayName,
				Description: orgData.Description,
				OwnerID:     owner.ID,
			}

			if err := db.Create(&org).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create organization: %w", err)
			}
			return &org, true, nil
		}
		return nil, false, fmt.Errorf("failed to query organization: %w", err)
	}

	return &org, false, nil
}

func createSubscription(db *gorm.DB, subData SubscriptionData, orgMap map[string]*models.Organization) (bool, error) {
	org := orgMap[subData.OrganizationName]
	if org == nil {
		return false, fmt.Errorf("organization %s not found", subData.OrganizationName)
	}

	var sub models.Subscription
	err := db.Where("organization_id = ? AND status = ?", org.ID, models.SubscriptionStatusActive).First(&sub).Error
	if err == gorm.ErrRecordNotFound {
		sub = models.Subscription{
			OrganizationID:   org.ID,
			PlanName:         subData.Plan,
			Status:           models.SubscriptionStatusActive,
			MaxVessels:       subData.MaxVessels,
			MaxUsers:         subData.MaxUsers,
			CurrentPeriodEnd: time.Now().AddDate(1, 0, 0),
		}
		if err := db.Create(&sub).Error; err != nil {
			return false, fmt.Errorf("failed to create subscription: %w", err)
		}
		return true, nil
	} else if err != nil {
		return false, fmt.Errorf("failed to query subscription: %w", err)
	}

	return false, nil
}

func createVessel(db *gorm.DB, vesselData VesselData, orgMap map[string]*models.Organization) (bool, error) {
	org := orgMap[vesselData.OrganizationName]
	if org == nil {
		return false, fmt.Errorf("organization %s not found", vesselData.OrganizationName)
	}

	var vessel models.Vessel
	err := db.Where("name = ? AND organization_id = ?", vesselData.Name, org.ID).First(&vessel).Error
	if err == gorm.ErrRecordNotFound {
		vessel = models.Vessel{
			OrganizationID: org.ID,
			Name:           vesselData.Name,
			IMONumber:      vesselData.IMONumber,
			Flag:           vesselData.Flag,
			Description:    vesselData.Description,
		}
		if err := db.Create(&vessel).Error; err != nil {
			return false, fmt.Errorf("failed to create vessel: %w", err)
		}
		return true, nil
	} else if err != nil {
		return false, fmt.Errorf("failed to query vessel: %w", err)
	}

	return false, nil
}

func createMember(db *gorm.DB, memberData MemberData, userMap map[string]*models.User, orgMap map[string]*models.Organization) (bool, error) {
	user := userMap[memberData.Email]
	if user == nil {
		return false, fmt.Errorf("user %s not found", memberData.Email)
	}
	org := orgMap[memberData.OrganizationName]
	if org == nil {
		return false, fmt.Errorf("organization %s not found", memberData.OrganizationName)
	}

	var member models.OrganizationMember
	err := db.Where("user_id = ? AND organization_id = ?", user.ID, org.ID).First(&member).Error
	if err == gorm.ErrRecordNotFound {
		status := models.MemberStatusActive
		if memberData.Status != "" {
			status = models.MemberStatus(memberData.Status)
		}

		member = models.OrganizationMember{
			UserID:         user.ID,
			OrganizationID: org.ID,
			Role:           models.OrgRole(memberData.Role),
			Status:         status,
		}
		if err := db.Create(&member).Error; err != nil {
			return false, fmt.Errorf("failed to create member: %w", err)
		}
		return true, nil
	} else if err != nil {
		return false, fmt.Errorf("failed to query member: %w", err)
	}

	return false, nil
}
