package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"driveport/models"
	"driveport/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var googleOauthConfig *oauth2.Config

func InitGoogleOAuth() {
	googleOauthConfig = &oauth2.Config{
		RedirectURL:  os.Getenv("GOOGLE_REDIRECT_URI"),
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email"},
		Endpoint:     google.Endpoint,
	}
}

type UserRegisterRequest struct {
	Email string `json:"email"`
}

type UserController struct {
	RDB *redis.Client
}

func NewUserController(rdb *redis.Client) *UserController {
	return &UserController{RDB: rdb}
}

// Register sends a registration OTP to the given email
func (uc *UserController) Register(c *gin.Context) {
	var req UserRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}

	db := utils.GetDB()
	var userCount int64
	db.Model(&models.User{}).Where("email = ?", strings.ToLower(req.Email)).Count(&userCount)
	if userCount > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
		return
	}

	ctx := context.Background()
	redisKey := "reg:email:" + strings.ToLower(req.Email)

	if ok, msg := utils.CanSendOTP(uc.RDB, redisKey); !ok {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": msg})
		return
	}

	otp := utils.GenerateOTP()
	utils.MarkOTPSent(uc.RDB, redisKey)
	uc.RDB.Set(ctx, redisKey+":otp", otp, 5*time.Minute)

	msg := fmt.Sprintf("DrivePort: Your registration confirmation code is: %s", otp)
	if err := utils.SendEmail(req.Email, "DrivePort: Confirmation code", msg,
		os.Getenv("SMTP_HOST"), os.Getenv("SMTP_PORT"), os.Getenv("SMTP_USER"), os.Getenv("SMTP_PASS")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send email"})
		return
	}

	uc.RDB.Set(ctx, redisKey+":data", "pending", 5*time.Minute)

	c.JSON(http.StatusOK, gin.H{"status": "otp sent"})
}

type ConfirmOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// POST /auth/confirm-otp
func (uc *UserController) ConfirmOTP(c *gin.Context) {
	var req ConfirmOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid request"})
		return
	}
	if req.Email == "" || req.OTP == "" {
		c.JSON(400, gin.H{"error": "email and otp are required"})
		return
	}
	ctx := context.Background()
	redisKey := "reg:email:" + strings.ToLower(req.Email)
	otpInRedis, err := uc.RDB.Get(ctx, redisKey+":otp").Result()
	if err != nil || otpInRedis != req.OTP {
		c.JSON(400, gin.H{"error": "Invalid or expired code"})
		return
	}
	// confirmation flag gives the user a 10 minute window to set a password
	uc.RDB.Set(ctx, redisKey+":confirmed", "1", 10*time.Minute)
	c.JSON(200, gin.H{"status": "otp confirmed"})
}

type SetPasswordRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// POST /auth/set-password-final completes registration after OTP confirmation
func (uc *UserController) SetPasswordFinal(c *gin.Context) {
	var req SetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid request"})
		return
	}
	if req.Email == "" || req.Password == "" {
		c.JSON(400, gin.H{"error": "email and password are required"})
		return
	}
	ctx := context.Background()
	redisKey := "reg:email:" + strings.ToLower(req.Email)
	confirmed, err := uc.RDB.Get(ctx, redisKey+":confirmed").Result()
	if err != nil || confirmed != "1" {
		c.JSON(400, gin.H{"error": "Confirm the OTP first"})
		return
	}

	db := utils.GetDB()
	var userCount int64
	db.Model(&models.User{}).Where("email = ?", strings.ToLower(req.Email)).Count(&userCount)
	if userCount > 0 {
		c.JSON(400, gin.H{"error": "User already exists"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to hash password"})
		return
	}

	email := strings.ToLower(req.Email)
	user := &models.User{
		Email:     &email,
		Password:  hash,
		Confirmed: true,
		Role:      "user",
	}
	if req.Name != "" {
		name := req.Name
		user.Name = &name
	}
	if req.Phone != "" {
		phone := req.Phone
		user.Phone = &phone
	}
	if err := db.Create(user).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to save user"})
		return
	}
	uc.RDB.Del(ctx, redisKey+":otp", redisKey+":confirmed", redisKey+":data")
	c.JSON(200, gin.H{"status": "user created"})
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /auth/login
func (uc *UserController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid request"})
		return
	}
	if req.Email == "" || req.Password == "" {
		c.JSON(400, gin.H{"error": "email and password are required"})
		return
	}
	db := utils.GetDB()
	var user models.User
	result := db.Where("email = ? AND confirmed = ?", strings.ToLower(req.Email), true).First(&user)
	if result.Error != nil {
		c.JSON(404, gin.H{"error": "User not found"})
		return
	}
	if user.GoogleID != nil && *user.GoogleID != "" && (user.Password == "" || user.Password == "-") {
		c.JSON(400, gin.H{"error": "This account is registered through Google. Sign in with Google OAuth."})
		return
	}
	if !utils.CheckPasswordHash(req.Password, user.Password) {
		c.JSON(401, gin.H{"error": "Incorrect password"})
		return
	}
	jwt, err := utils.GenerateJWT(user.ID, user.Role, os.Getenv("JWT_SECRET"))
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to generate token"})
		return
	}
	c.JSON(200, gin.H{"token": jwt})
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Email    string `json:"email"`
	OTP      string `json:"otp"`
	Password string `json:"password"`
}

// POST /auth/forgot-password
func (uc *UserController) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid request"})
		return
	}
	if req.Email == "" {
		c.JSON(400, gin.H{"error": "email is required"})
		return
	}
	ctx := context.Background()
	redisKey := "reset:email:" + strings.ToLower(req.Email)

	if ok, msg := utils.CanSendOTP(uc.RDB, redisKey); !ok {
		c.JSON(429, gin.H{"error": msg})
		return
	}
	otp := utils.GenerateOTP()
	utils.MarkOTPSent(uc.RDB, redisKey)
	uc.RDB.Set(ctx, redisKey+":otp", otp, 5*time.Minute)
	msg := fmt.Sprintf("DrivePort: Your password reset code is: %s", otp)
	if err := utils.SendEmail(req.Email, "DrivePort: Password reset", msg,
		os.Getenv("SMTP_HOST"), os.Getenv("SMTP_PORT"), os.Getenv("SMTP_USER"), os.Getenv("SMTP_PASS")); err != nil {
		c.JSON(500, gin.H{"error": "Failed to send email"})
		return
	}
	uc.RDB.Set(ctx, redisKey+":data", "pending", 5*time.Minute)
	c.JSON(200, gin.H{"status": "otp sent"})
}

// POST /auth/reset-password
func (uc *UserController) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid request"})
		return
	}
	if req.Email == "" || req.Password == "" || req.OTP == "" {
		c.JSON(400, gin.H{"error": "email, otp and password are required"})
		return
	}
	ctx := context.Background()
	redisKey := "reset:email:" + strings.ToLower(req.Email)
	otpInRedis, err := uc.RDB.Get(ctx, redisKey+":otp").Result()
	if err != nil || otpInRedis != req.OTP {
		c.JSON(400, gin.H{"error": "Invalid or expired code"})
		return
	}
	db := utils.GetDB()
	var user models.User
	result := db.Where("email = ? AND confirmed = ?", strings.ToLower(req.Email), true).First(&user)
	if result.Error != nil {
		c.JSON(404, gin.H{"error": "User not found or not confirmed"})
		return
	}
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to hash password"})
		return
	}
	user.Password = hash
	if err := db.Save(&user).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to update password"})
		return
	}
	uc.RDB.Del(ctx, redisKey+":otp", redisKey+":data")
	c.JSON(200, gin.H{"status": "password updated"})
}

type googleUserInfo struct {
	Email string `json:"email"`
	Id    string `json:"id"`
	Name  string `json:"name"`
}

// GET /auth/google
func (uc *UserController) GoogleLogin(c *gin.Context) {
	url := googleOauthConfig.AuthCodeURL("state", oauth2.AccessTypeOffline)
	c.Redirect(302, url)
}

// GET /auth/google/callback
func (uc *UserController) GoogleCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(400, gin.H{"error": "code not found"})
		return
	}
	token, err := googleOauthConfig.Exchange(context.Background(), code)
	if err != nil {
		c.JSON(400, gin.H{"error": "token exchange failed"})
		return
	}
	client := googleOauthConfig.Client(context.Background(), token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo?alt=json")
	if err != nil || resp.StatusCode != 200 {
		c.JSON(400, gin.H{"error": "failed to get user info"})
		return
	}
	defer resp.Body.Close()
	var userInfo googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		c.JSON(400, gin.H{"error": "failed to decode user info"})
		return
	}
	if userInfo.Email == "" {
		c.JSON(400, gin.H{"error": "email not found in Google profile"})
		return
	}
	db := utils.GetDB()
	var user models.User
	result := db.Where("email = ?", strings.ToLower(userInfo.Email)).First(&user)
	if result.Error == nil {
		jwt, err := utils.GenerateJWT(user.ID, user.Role, os.Getenv("JWT_SECRET"))
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to generate token"})
			return
		}
		c.JSON(200, gin.H{"token": jwt})
		return
	}
	// new user: park the profile in redis until they complete registration
	sessionID := utils.GenerateSessionID()
	ctx := context.Background()
	redisKey := "google:session:" + sessionID
	userData := map[string]string{
		"email":     strings.ToLower(userInfo.Email),
		"google_id": userInfo.Id,
		"name":      userInfo.Name,
	}
	userDataJson, _ := json.Marshal(userData)
	uc.RDB.Set(ctx, redisKey, userDataJson, 10*time.Minute)
	c.JSON(200, gin.H{"need_profile": true, "session_id": sessionID})
}

// POST /auth/google/complete
func (uc *UserController) GoogleComplete(c *gin.Context) {
	type CompleteReq struct {
		SessionID string `json:"session_id"`
		Phone     string `json:"phone"`
		Address   string `json:"address"`
	}
	var req CompleteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid request"})
		return
	}
	if req.SessionID == "" {
		c.JSON(400, gin.H{"error": "session_id is required"})
		return
	}
	ctx := context.Background()
	redisKey := "google:session:" + req.SessionID
	userDataJson, err := uc.RDB.Get(ctx, redisKey).Result()
	if err != nil {
		c.JSON(400, gin.H{"error": "session not found or expired"})
		return
	}
	var userData map[string]string
	if err := json.Unmarshal([]byte(userDataJson), &userData); err != nil {
		c.JSON(500, gin.H{"error": "failed to parse session data"})
		return
	}
	db := utils.GetDB()
	var user models.User
	result := db.Where("email = ?", userData["email"]).First(&user)
	if result.Error == nil {
		c.JSON(400, gin.H{"error": "user already exists"})
		return
	}
	email := userData["email"]
	name := userData["name"]
	googleID := userData["google_id"]
	user = models.User{
		Email:     &email,
		Name:      &name,
		GoogleID:  &googleID,
		Confirmed: true,
		Role:      "user",
	}
	if req.Phone != "" {
		phone := req.Phone
		user.Phone = &phone
	}
	if req.Address != "" {
		address := req.Address
		user.Address = &address
	}
	if err := db.Create(&user).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to save user"})
		return
	}
	uc.RDB.Del(ctx, redisKey)
	jwt, err := utils.GenerateJWT(user.ID, user.Role, os.Getenv("JWT_SECRET"))
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to generate token"})
		return
	}
	c.JSON(200, gin.H{"token": jwt})
}
