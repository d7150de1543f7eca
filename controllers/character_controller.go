package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/titobalza/apirest-starwars/models"
	"github.com/titobalza/apirest-starwars/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CharacterController struct {
	db *gorm.DB
}

func NewCharacterController(db *gorm.DB) *CharacterController {
	return &CharacterController{db: db}
}

// GET /people
func (cc *CharacterController) List(c *gin.Context) {
	var people []models.Character
	if err := cc.db.Order("id").Find(&people).Error; err != nil {
		utils.LogError(err, "list characters")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list characters"})
		return
	}
	c.JSON(http.StatusOK, people)
}

// GET /people/:id
func (cc *CharacterController) Get(c *gin.Context) {
	id, err := utils.UintParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var person models.Character
	if err := cc.db.First(&person, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Person not found"})
			return
		}
		utils.LogError(err, "get character")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get character"})
		return
	}

	c.JSON(http.StatusOK, person.Brief())
}

// POST /people
func (cc *CharacterController) Create(c *gin.Context) {
	var req struct {
		Name      string  `json:"name" binding:"required"`
		Height    *string `json:"height"`
		Mass      *string `json:"mass"`
		HairColor *string `json:"hair_color"`
		SkinColor *string `json:"skin_color"`
		EyeColor  *string `json:"eye_color"`
		BirthYear *string `json:"birth_year"`
		Gender    *string `json:"gender"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	person := models.Character{
		Name:      req.Name,
		Height:    req.Height,
		Mass:      req.Mass,
		HairColor: req.HairColor,
		SkinColor: req.SkinColor,
		EyeColor:  req.EyeColor,
		BirthYear: req.BirthYear,
		Gender:    req.Gender,
	}
	if err := cc.db.Create(&person).Error; err != nil {
		utils.LogError(err, "create character")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create character"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Character %s added successfully", person.Name)})
}
