package database

import (
	"fmt"
	"log"

	"api/config"
	"api/models"
	"api/utils"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB
var REDIS *redis.Client

var DefaultAdminEmail = "admin@hirenext.dev"
var DefaultPassword = "admin"

// InitDB initializes the database connection, migrates the models and
// seeds the default admin account if the users table is empty
func InitDB() {
	dsn := fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=disable", config.PostgresHost, config.PostgresPort, config.PostgresUser, config.PostgresDB, config.PostgresPassword)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect database: ", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.Project{},
		&models.Submission{},
		&models.PasswordReset{},
	)
	if err != nil {
		log.Fatal("failed to migrate database: ", err)
	}

	Populate()
}

// InitRedis connects the session cache
func InitRedis() {
	REDIS = redis.NewClient(&redis.Options{
		Addr:     config.RedisAddress,
		Password: config.RedisPassword,
		DB:       0,
	})
}

// Populate seeds the default admin user when the database is empty
func Populate() {
	var countUser int64
	DB.Model(&models.User{}).Count(&countUser)
	if countUser != 0 {
		return
	}

	// Default admin password comes from the .env file or the DefaultPassword constant
	password := DefaultPassword
	if config.DefaultPassword != "" {
		password = config.DefaultPassword
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		panic(err)
	}

	admin := models.User{
		Name:     "Admin",
		Email:    DefaultAdminEmail,
		Password: hashed,
		Role:     models.RoleAdmin,
	}
	DB.Create(&admin)
	log.Println("Default admin user created")
}
