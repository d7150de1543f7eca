package controllers

import (
	"net/http"
	"strings"

	"github.com/titobalza/apirest-starwars/models"
	"github.com/titobalza/apirest-starwars/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserController struct {
	db *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{db: db}
}

// GET /users
func (uc *UserController) List(c *gin.Context) {
	var users []models.User
	if err := uc.db.Order("id").Find(&users).Error; err != nil {
		utils.LogError(err, "list users")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list users"})
		return
	}

	result := make([]models.UserBrief, 0, len(users))
	for _, user := range users {
		result = append(result, user.Brief())
	}
	c.JSON(http.StatusOK, result)
}

// POST /users
func (uc *UserController) Create(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.LogError(err, "hash password")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	user := models.User{Name: req.Name, Email: req.Email, Password: string(hashed)}
	if err := uc.db.Create(&user).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") || strings.Contains(err.Error(), "23505") {
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
			return
		}
		utils.LogError(err, "create user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, user)
}

// GET /users/favorites?user_id=
func (uc *UserController) Favorites(c *gin.Context) {
	userID, err := utils.UintQuery(c, "user_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var favorites []models.Favorite
	if err := uc.db.Preload("Planet").Preload("Character").
		Where("user_id = ?", userID).Order("id").Find(&favorites).Error; err != nil {
		utils.LogError(err, "list favorites")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list favorites"})
		return
	}

	result := make([]models.FavoriteView, 0, len(favorites))
	for _, fav := range favorites {
		view := models.FavoriteView{ID: fav.ID}
		switch {
		case fav.PlanetID != nil && fav.Planet != nil:
			view.PlanetID = fav.PlanetID
			view.PlanetName = &fav.Planet.Name
		case fav.CharacterID != nil && fav.Character != nil:
			view.CharacterID = fav.CharacterID
			view.CharacterName = &fav.Character.Name
		}
		result = append(result, view)
	}
	c.JSON(http.StatusOK, result)
}
