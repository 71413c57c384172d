// The minimal username/password login demo. It is deliberately
// self-contained: its own user table, its own cookie, no shared state with
// the tracker.
package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type User struct {
	Id           int    `gorm:"primaryKey"`
	Username     string `gorm:"not null;uniqueIndex"`
	PasswordHash string `gorm:"not null"`
}

type Credentials struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func main() {
	db, err := gorm.Open(sqlite.Open(envOr("LOGIN_DEMO_DB", "logindemo.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	if err := db.AutoMigrate(&User{}); err != nil {
		log.Fatalf("Failed to migrate: %v", err)
	}

	secret := []byte(envOr("LOGIN_DEMO_SECRET", "demosecret"))

	r := gin.Default()

	r.POST("/register", func(c *gin.Context) {
		var credentials Credentials
		if err := c.BindJSON(&credentials); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(credentials.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		user := User{Username: credentials.Username, PasswordHash: string(hash)}
		if err := db.Create(&user).Error; err != nil {
			c.JSON(409, gin.H{"error": "username already exists"})
			return
		}
		c.JSON(201, gin.H{"id": user.Id, "username": user.Username})
	})

	r.POST("/login", func(c *gin.Context) {
		var credentials Credentials
		if err := c.BindJSON(&credentials); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		var user User
		if err := db.First(&user, "username = ?", credentials.Username).Error; err != nil {
			c.JSON(401, gin.H{"error": "invalid credentials"})
			return
		}
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)) != nil {
			c.JSON(401, gin.H{"error": "invalid credentials"})
			return
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id":  user.Id,
			"username": user.Username,
			"exp":      time.Now().Add(24 * time.Hour).Unix(),
		})
		signed, err := token.SignedString(secret)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.SetCookie("session", signed, int((24 * time.Hour).Seconds()), "/", "", false, true)
		c.JSON(200, gin.H{"id": user.Id, "username": user.Username})
	})

	r.GET("/me", func(c *gin.Context) {
		cookie, err := c.Cookie("session")
		if err != nil {
			c.JSON(401, gin.H{"error": "not logged in"})
			return
		}
		token, err := jwt.Parse(cookie, func(token *jwt.Token) (interface{}, error) {
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(401, gin.H{"error": "not logged in"})
			return
		}
		claims := token.Claims.(jwt.MapClaims)
		c.JSON(200, gin.H{"username": claims["username"]})
	})

	if err := r.Run(":" + envOr("LOGIN_DEMO_PORT", "8001")); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func envOr(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
