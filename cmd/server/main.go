package main

import (
	"log"
	"time"

	"github.com/tnishagarg/Gym-Management-System/config"
	"github.com/tnishagarg/Gym-Management-System/internal/auth"
	"github.com/tnishagarg/Gym-Management-System/internal/enroll"
	"github.com/tnishagarg/Gym-Management-System/internal/gym"
	"github.com/tnishagarg/Gym-Management-System/internal/member"
	"github.com/tnishagarg/Gym-Management-System/internal/middlewares"
	"github.com/tnishagarg/Gym-Management-System/internal/trainer"
	"github.com/tnishagarg/Gym-Management-System/internal/workout"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg := config.LoadConfig()

	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET must be set")
	}

	dsn := "host=" + cfg.DBHost +
		" user=" + cfg.DBUser +
		" password=" + cfg.DBPassword +
		" dbname=" + cfg.DBName +
		" port=" + cfg.DBPort +
		" sslmode=disable"

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("Failed to access connection pool:", err)
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	if err := sqlDB.Ping(); err != nil {
		log.Fatal("Database unreachable:", err)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	staticDir := cfg.StaticDir
	if staticDir == "" {
		staticDir = "./public"
	}
	r.StaticFile("/", staticDir+"/index.html")
	r.StaticFile("/dashboard.html", staticDir+"/dashboard.html")
	r.Static("/assets", staticDir+"/assets")

	sessions := middlewares.NewSessionStore()

	authService := &auth.AuthService{DB: db}
	auth.RegisterRoutes(r, authService, sessions, cfg.SessionSecret)

	gymService := &gym.GymService{DB: db}
	gym.RegisterRoutes(r, gymService, sessions, cfg.SessionSecret)

	memberService := &member.MemberService{DB: db}
	member.RegisterRoutes(r, memberService, sessions, cfg.SessionSecret)

	trainerService := &trainer.TrainerService{DB: db}
	trainer.RegisterRoutes(r, trainerService, sessions, cfg.SessionSecret)

	workoutService := &workout.WorkoutService{DB: db}
	workout.RegisterRoutes(r, workoutService, sessions, cfg.SessionSecret)

	enrollService := &enroll.EnrollService{DB: db}
	enroll.RegisterRoutes(r, enrollService, sessions, cfg.SessionSecret)

	port := cfg.Port
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting server on 0.0.0.0:%s ...", port)
	log.Fatal(r.Run("0.0.0.0:" + port))
}
