package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/titobalza/apirest-starwars/models"

	"github.com/stretchr/testify/assert"
)

func TestCreateUser(t *testing.T) {
	r, _ := setupRouter(t)

	body := map[string]string{"name": "Owen Lars", "email": "owen@lars.farm", "password": "blue-milk"}
	w := performRequest(r, "POST", "/users", body)
	assert.Equal(t, http.StatusCreated, w.Code)

	var got map[string]interface{}
	decodeBody(t, w, &got)
	assert.NotZero(t, got["id"])
	assert.Equal(t, "Owen Lars", got["name"])
	assert.Equal(t, "owen@lars.farm", got["email"])
	assert.NotContains(t, got, "password")
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	r, _ := setupRouter(t)

	body := map[string]string{"name": "Owen Lars", "email": "owen@lars.farm", "password": "blue-milk"}
	w := performRequest(r, "POST", "/users", body)
	assert.Equal(t, http.StatusCreated, w.Code)

	body["name"] = "Beru Lars"
	w = performRequest(r, "POST", "/users", body)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "email already registered")
}

func TestCreateUserMissingFields(t *testing.T) {
	r, _ := setupRouter(t)

	w := performRequest(r, "POST", "/users", map[string]string{"name": "Owen Lars"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestListUsersNarrowProjection(t *testing.T) {
	r, db := setupRouter(t)

	createTestUser(t, db, "Owen Lars")
	createTestUser(t, db, "Beru Lars")

	w := performRequest(r, "GET", "/users", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var users []map[string]interface{}
	decodeBody(t, w, &users)
	assert.Len(t, users, 2)
	assert.Equal(t, "Owen Lars", users[0]["name"])
	// list projection is id and name only, no email or password
	assert.Len(t, users[0], 2)
}

func TestFavoritesRequiresUserID(t *testing.T) {
	r, _ := setupRouter(t)

	w := performRequest(r, "GET", "/users/favorites", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "user_id")

	w = performRequest(r, "GET", "/users/favorites?user_id=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFavoritesEmptyForUnknownUser(t *testing.T) {
	r, _ := setupRouter(t)

	w := performRequest(r, "GET", "/users/favorites?user_id=42", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

// A user with a favorite planet and a favorite character gets one entry of
// each kind, each resolved to its own name field.
func TestFavoritesListsBothKinds(t *testing.T) {
	r, db := setupRouter(t)

	userID := createTestUser(t, db, "Owen Lars")
	planet := models.Planet{Name: "Tatooine"}
	if err := db.Create(&planet).Error; err != nil {
		t.Fatalf("create planet: %v", err)
	}
	person := models.Character{Name: "Luke Skywalker"}
	if err := db.Create(&person).Error; err != nil {
		t.Fatalf("create character: %v", err)
	}

	w := performRequest(r, "POST", fmt.Sprintf("/favorite/planets/%d?user_id=%d", planet.ID, userID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = performRequest(r, "POST", fmt.Sprintf("/favorite/people/%d?user_id=%d", person.ID, userID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(r, "GET", fmt.Sprintf("/users/favorites?user_id=%d", userID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var favorites []map[string]interface{}
	decodeBody(t, w, &favorites)
	assert.Len(t, favorites, 2)

	assert.Equal(t, float64(planet.ID), favorites[0]["planet_id"])
	assert.Equal(t, "Tatooine", favorites[0]["planet_name"])
	assert.NotContains(t, favorites[0], "character_id")

	assert.Equal(t, float64(person.ID), favorites[1]["character_id"])
	assert.Equal(t, "Luke Skywalker", favorites[1]["character_name"])
	assert.NotContains(t, favorites[1], "planet_id")
}
