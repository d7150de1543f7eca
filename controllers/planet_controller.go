package controllers

import (
	"errors"
	"net/http"

	"github.com/titobalza/apirest-starwars/models"
	"github.com/titobalza/apirest-starwars/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PlanetController struct {
	db *gorm.DB
}

func NewPlanetController(db *gorm.DB) *PlanetController {
	return &PlanetController{db: db}
}

// GET /planets
func (pc *PlanetController) List(c *gin.Context) {
	var planets []models.Planet
	if err := pc.db.Order("id").Find(&planets).Error; err != nil {
		utils.LogError(err, "list planets")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list planets"})
		return
	}
	c.JSON(http.StatusOK, planets)
}

// GET /planets/:id
func (pc *PlanetController) Get(c *gin.Context) {
	id, err := utils.UintParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var planet models.Planet
	if err := pc.db.First(&planet, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Planet not found"})
			return
		}
		utils.LogError(err, "get planet")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get planet"})
		return
	}

	c.JSON(http.StatusOK, planet.Brief())
}

// POST /planets
func (pc *PlanetController) Create(c *gin.Context) {
	var req struct {
		Name       string  `json:"name" binding:"required"`
		Climate    *string `json:"climate"`
		Terrain    *string `json:"terrain"`
		Population *string `json:"population"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	planet := models.Planet{
		Name:       req.Name,
		Climate:    req.Climate,
		Terrain:    req.Terrain,
		Population: req.Population,
	}
	if err := pc.db.Create(&planet).Error; err != nil {
		utils.LogError(err, "create planet")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create planet"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Planet added successfully"})
}
