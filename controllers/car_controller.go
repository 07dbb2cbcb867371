package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"driveport/models"
	"driveport/services"
	"driveport/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CarController serves the public catalog and the admin inventory endpoints
type CarController struct {
	db         *gorm.DB
	cloudinary *services.Cloudinary
}

func NewCarController(db *gorm.DB) *CarController {
	return &CarController{
		db:         db,
		cloudinary: services.NewCloudinary(),
	}
}

var carSortColumns = map[string]string{
	"price":      "price_usd",
	"year":       "year",
	"created_at": "created_at",
	"brand":      "brand",
}

// ListCars returns the catalog with pagination, filters and sorting
// GET /cars
func (cc *CarController) ListCars(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}
	offset := (page - 1) * limit

	sortBy := c.DefaultQuery("sort", "created_at")
	sortDir := c.DefaultQuery("direction", "desc")
	column, ok := carSortColumns[sortBy]
	if !ok {
		column = "created_at"
	}
	if sortDir != "asc" && sortDir != "desc" {
		sortDir = "desc"
	}

	query := cc.db.Model(&models.Car{})

	if brand := c.Query("brand"); brand != "" {
		query = query.Where("brand ILIKE ?", brand)
	}
	if condition := c.Query("condition"); condition != "" {
		query = query.Where("condition = ?", condition)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	} else {
		query = query.Where("status = ?", "available")
	}
	if v := c.Query("year_from"); v != "" {
		query = query.Where("year >= ?", utils.ParseIntSafe(v))
	}
	if v := c.Query("year_to"); v != "" {
		query = query.Where("year <= ?", utils.ParseIntSafe(v))
	}
	if v := c.Query("price_from"); v != "" {
		query = query.Where("price_usd >= ?", utils.ParseFloatSafe(v))
	}
	if v := c.Query("price_to"); v != "" {
		query = query.Where("price_usd <= ?", utils.ParseFloatSafe(v))
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("brand ILIKE ? OR model ILIKE ? OR description ILIKE ?", like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count cars"})
		return
	}

	var cars []models.Car
	if err := query.Order(column + " " + sortDir).Offset(offset).Limit(limit).Find(&cars).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cars"})
		return
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	response := models.CarListResponse{
		Cars:       cars,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}

	c.JSON(http.StatusOK, gin.H{"result": response, "success": true})
}

// GetCar returns a single car together with its naira display price
// GET /cars/:id
func (cc *CarController) GetCar(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid car id"})
		return
	}

	var car models.Car
	if err := cc.db.First(&car, uint(id)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Car not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch car"})
		}
		return
	}

	cc.recordView(car.ID, c.DefaultQuery("src", "direct"))

	result := gin.H{
		"car":               car,
		"price_usd_display": utils.FormatUSD(car.PriceUSD),
	}

	// best effort: the catalog still works when the FX cron has no data yet
	var fx models.FxRate
	if err := cc.db.Where("currency = ?", "USD").First(&fx).Error; err == nil && fx.Rate > 0 {
		priceNGN := car.PriceUSD * fx.Rate
		result["price_ngn"] = priceNGN
		result["price_ngn_display"] = utils.FormatNGN(priceNGN)
		result["fx_rate"] = fx.Rate
	}

	c.JSON(http.StatusOK, gin.H{"result": result, "success": true})
}

// recordView bumps the per-source view counter. Best effort: a failed write
// never breaks the detail page.
func (cc *CarController) recordView(carID uint, source string) {
	if source != "catalog" && source != "search" {
		source = "direct"
	}
	var view models.CarView
	err := cc.db.Where("car_id = ? AND source = ?", carID, source).First(&view).Error
	switch {
	case err == gorm.ErrRecordNotFound:
		cc.db.Create(&models.CarView{CarID: carID, Source: source, ViewCount: 1})
	case err == nil:
		cc.db.Model(&view).Update("view_count", gorm.Expr("view_count + 1"))
	}
}

// CreateCar adds a car to the inventory (admin)
// POST /admin/cars
func (cc *CarController) CreateCar(c *gin.Context) {
	var req models.CarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	car := models.Car{
		Brand:        req.Brand,
		CarModel:     req.Model,
		Year:         req.Year,
		PriceUSD:     req.PriceUSD,
		Mileage:      req.Mileage,
		Transmission: req.Transmission,
		FuelType:     req.FuelType,
		Condition:    req.Condition,
		Status:       req.Status,
		Description:  req.Description,
		CoverImage:   req.CoverImage,
	}
	if car.Condition == "" {
		car.Condition = "foreign-used"
	}
	if car.Status == "" {
		car.Status = "available"
	}
	if len(req.Gallery) > 0 {
		gallery, _ := json.Marshal(req.Gallery)
		car.Gallery = datatypes.JSON(gallery)
	}

	if err := cc.db.Create(&car).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create car"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"result": car, "success": true, "message": "Car created"})
}

// UpdateCar replaces a car's fields (admin)
// PUT /admin/cars/:id
func (cc *CarController) UpdateCar(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid car id"})
		return
	}

	var req models.CarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	var car models.Car
	if err := cc.db.First(&car, uint(id)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Car not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch car"})
		}
		return
	}

	car.Brand = req.Brand
	car.CarModel = req.Model
	car.Year = req.Year
	car.PriceUSD = req.PriceUSD
	car.Mileage = req.Mileage
	car.Transmission = req.Transmission
	car.FuelType = req.FuelType
	if req.Condition != "" {
		car.Condition = req.Condition
	}
	if req.Status != "" {
		car.Status = req.Status
	}
	car.Description = req.Description
	if req.CoverImage != "" {
		car.CoverImage = req.CoverImage
	}
	if len(req.Gallery) > 0 {
		gallery, _ := json.Marshal(req.Gallery)
		car.Gallery = datatypes.JSON(gallery)
	}

	if err := cc.db.Save(&car).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update car"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": car, "success": true, "message": "Car updated"})
}

// DeleteCar soft deletes a car (admin)
// DELETE /admin/cars/:id
func (cc *CarController) DeleteCar(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid car id"})
		return
	}

	var car models.Car
	if err := cc.db.First(&car, uint(id)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Car not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch car"})
		}
		return
	}

	if err := cc.db.Delete(&car).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete car"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": gin.H{"id": id}, "success": true, "message": "Car deleted"})
}

// UploadImage proxies a multipart image to Cloudinary (admin)
// POST /admin/cars/upload-image
func (cc *CarController) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return
	}
	defer file.Close()

	url, err := cc.cloudinary.UploadImage(file, fileHeader.Filename)
	if err != nil {
		utils.LogError(err, "Cloudinary upload")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": gin.H{"url": url}, "success": true})
}
