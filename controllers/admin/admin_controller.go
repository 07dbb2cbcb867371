package admin

import (
	"net/http"
	"runtime"
	"strconv"
	"time"

	"driveport/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var startTime = time.Now()

// AdminController - dashboard endpoints: user management and system info.
type AdminController struct {
	db *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{db: db}
}

// GetUsers lists registered users with pagination
// GET /admin/users
func (ac *AdminController) GetUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := ac.db.Model(&models.User{})
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("email ILIKE ? OR phone ILIKE ? OR name ILIKE ?", like, like, like)
	}

	var total int64
	query.Count(&total)

	var users []models.User
	if err := query.Omit("password").Order("created_at DESC").
		Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	c.JSON(http.StatusOK, gin.H{
		"result": gin.H{
			"users":       users,
			"total":       total,
			"page":        page,
			"limit":       limit,
			"total_pages": totalPages,
		},
		"success": true,
	})
}

// DeleteUser soft deletes a user account
// DELETE /admin/users/:id
func (ac *AdminController) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	if uint(id) == uint(c.GetInt("user_id")) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot delete your own account"})
		return
	}

	result := ac.db.Delete(&models.User{}, uint(id))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": gin.H{"id": id}, "success": true, "message": "User deleted"})
}

// GetDashboard returns headline counters for the admin home screen
// GET /admin/dashboard
func (ac *AdminController) GetDashboard(c *gin.Context) {
	var users, cars, orders, activePlans int64
	ac.db.Model(&models.User{}).Count(&users)
	ac.db.Model(&models.Car{}).Count(&cars)
	ac.db.Model(&models.Order{}).Count(&orders)
	ac.db.Model(&models.PaymentPlan{}).Where("status = ?", "active").Count(&activePlans)

	var fx models.FxRate
	fxRate := 0.0
	if err := ac.db.Where("currency = ?", "USD").First(&fx).Error; err == nil {
		fxRate = fx.Rate
	}

	c.JSON(http.StatusOK, gin.H{
		"result": gin.H{
			"users":        users,
			"cars":         cars,
			"orders":       orders,
			"active_plans": activePlans,
			"usd_rate":     fxRate,
		},
		"success": true,
	})
}

// GetSystemInfo reports process health
// GET /admin/system
func (ac *AdminController) GetSystemInfo(c *gin.Context) {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	c.JSON(http.StatusOK, gin.H{
		"result": gin.H{
			"uptime":         time.Since(startTime).String(),
			"go_version":     runtime.Version(),
			"goroutines":     runtime.NumGoroutine(),
			"alloc_mb":       memStats.Alloc / 1024 / 1024,
			"total_alloc_mb": memStats.TotalAlloc / 1024 / 1024,
			"num_gc":         memStats.NumGC,
		},
		"success": true,
	})
}
