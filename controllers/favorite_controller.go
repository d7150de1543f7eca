package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/titobalza/apirest-starwars/models"
	"github.com/titobalza/apirest-starwars/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FavoriteController struct {
	db *gorm.DB
}

func NewFavoriteController(db *gorm.DB) *FavoriteController {
	return &FavoriteController{db: db}
}

// POST /favorite/planets/:id?user_id=
func (fc *FavoriteController) AddPlanet(c *gin.Context) {
	planetID, userID, ok := fc.favoriteParams(c)
	if !ok {
		return
	}

	var planet models.Planet
	if err := fc.db.First(&planet, planetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Planet not found"})
			return
		}
		utils.LogError(err, "check planet")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add favorite"})
		return
	}

	fav := models.PlanetFavorite(userID, planetID)
	if !fc.createFavorite(c, &fav) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Favorite planet added successfully"})
}

// POST /favorite/people/:id?user_id=
func (fc *FavoriteController) AddCharacter(c *gin.Context) {
	characterID, userID, ok := fc.favoriteParams(c)
	if !ok {
		return
	}

	var person models.Character
	if err := fc.db.First(&person, characterID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Person not found"})
			return
		}
		utils.LogError(err, "check character")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add favorite"})
		return
	}

	fav := models.CharacterFavorite(userID, characterID)
	if !fc.createFavorite(c, &fav) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Favorite people added successfully"})
}

// DELETE /favorite/planets/:id?user_id=
func (fc *FavoriteController) RemovePlanet(c *gin.Context) {
	planetID, userID, ok := fc.favoriteParams(c)
	if !ok {
		return
	}

	var fav models.Favorite
	if err := fc.db.Where("user_id = ? AND planet_id = ?", userID, planetID).First(&fav).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Favorite planet not found"})
			return
		}
		utils.LogError(err, "find favorite planet")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove favorite"})
		return
	}

	if err := fc.db.Delete(&fav).Error; err != nil {
		utils.LogError(err, "delete favorite planet")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove favorite"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Favorite planet deleted successfully"})
}

// DELETE /favorite/people/:id?user_id=
func (fc *FavoriteController) RemoveCharacter(c *gin.Context) {
	characterID, userID, ok := fc.favoriteParams(c)
	if !ok {
		return
	}

	var fav models.Favorite
	if err := fc.db.Where("user_id = ? AND character_id = ?", userID, characterID).First(&fav).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Favorite people not found"})
			return
		}
		utils.LogError(err, "find favorite character")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove favorite"})
		return
	}

	if err := fc.db.Delete(&fav).Error; err != nil {
		utils.LogError(err, "delete favorite character")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove favorite"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Favorite people deleted successfully"})
}

// favoriteParams pulls the target id from the path and user_id from the
// query, answering 400 itself when either is missing or not an integer.
func (fc *FavoriteController) favoriteParams(c *gin.Context) (uint, uint, bool) {
	targetID, err := utils.UintParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return 0, 0, false
	}
	userID, err := utils.UintQuery(c, "user_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return 0, 0, false
	}
	return targetID, userID, true
}

// createFavorite checks the owning user and inserts the row. FK failures
// map to 404 the same way an up-front existence check would.
func (fc *FavoriteController) createFavorite(c *gin.Context, fav *models.Favorite) bool {
	var userCount int64
	if err := fc.db.Model(&models.User{}).Where("id = ?", fav.UserID).Count(&userCount).Error; err != nil {
		utils.LogError(err, "check user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add favorite"})
		return false
	}
	if userCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return false
	}

	if err := fc.db.Create(fav).Error; err != nil {
		if errors.Is(err, models.ErrFavoriteTarget) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return false
		}
		if strings.Contains(strings.ToLower(err.Error()), "foreign key") || strings.Contains(err.Error(), "23503") {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return false
		}
		utils.LogError(err, "create favorite")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add favorite"})
		return false
	}
	return true
}
