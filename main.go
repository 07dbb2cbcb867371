package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"driveport/config"
	"driveport/controllers"
	"driveport/database"
	"driveport/routes"
	"driveport/services"
	"driveport/utils"
)

func main() {
	// all timestamps (installment due dates included) run on Lagos time
	lagos, err := time.LoadLocation("Africa/Lagos")
	if err != nil {
		lagos = time.FixedZone("WAT", 1*60*60)
	}
	time.Local = lagos

	cfg := config.LoadConfig()

	if err := utils.InitLogger(); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	log.Println("Connected to PostgreSQL")

	utils.SetDB(db)

	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
	log.Println("Migration complete")

	if err := database.SeedInterestRates(db); err != nil {
		log.Fatalf("failed to seed interest rates: %v", err)
	}
	if err := database.SeedAdmin(db); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
	log.Println("Seeding complete")

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	utils.SetRedis(rdb)
	log.Println("Connected to Redis")

	controllers.InitGoogleOAuth()

	go func() {
		services.StartFxCron(db)
		log.Println("FX cron started")

		services.StartInstallmentCron(db)
		log.Println("Installment reminder cron started")

		services.StartKeepAliveCron()
		log.Println("Keep-alive cron started")
	}()

	r := routes.SetupRouter()

	log.Printf("Server is running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
