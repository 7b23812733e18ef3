package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type FoodItemController struct {
	svc *services.FoodItemService
}

func NewFoodItemController(svc *services.FoodItemService) *FoodItemController {
	return &FoodItemController{svc: svc}
}

func (fc *FoodItemController) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var input services.FoodItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := fc.svc.Create(user.ID, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, item)
}

// GET /food-items?q=gel filters by name/brand/category substring.
func (fc *FoodItemController) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var err error
	if q := c.Query("q"); q != "" {
		items, serr := fc.svc.Search(user.ID, q)
		if serr == nil {
			c.JSON(http.StatusOK, items)
			return
		}
		err = serr
	} else {
		items, serr := fc.svc.List(user.ID)
		if serr == nil {
			c.JSON(http.StatusOK, items)
			return
		}
		err = serr
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func (fc *FoodItemController) Get(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	itemID, ok := paramID(c, "id")
	if !ok {
		return
	}

	item, err := fc.svc.Get(user.ID, itemID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "food item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (fc *FoodItemController) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	itemID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var input services.FoodItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := fc.svc.Update(user.ID, itemID, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (fc *FoodItemController) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	itemID, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := fc.svc.Delete(user.ID, itemID); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /food-items/recognize  { "image_base64": "data:…" }
func (fc *FoodItemController) Recognize(c *gin.Context) {
	if _, ok := currentUser(c); !ok {
		return
	}

	var req struct {
		ImageBase64 string `json:"image_base64" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	labels, err := fc.svc.SuggestFromImage(req.ImageBase64)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": labels})
}
