package services

import (
	"errors"
	"fmt"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

type FoodItemService struct {
	rek *RekognitionService
}

func NewFoodItemService(rek *RekognitionService) *FoodItemService {
	return &FoodItemService{rek: rek}
}

type NutrientInput struct {
	Nutrient string      `json:"nutrient" binding:"required"`
	Quantity float64     `json:"quantity" binding:"required"`
	Unit     models.Unit `json:"unit" binding:"required"`
}

type FoodItemInput struct {
	Name      string          `json:"name" binding:"required"`
	Brand     string          `json:"brand"`
	Category  string          `json:"category"`
	CostCents *int            `json:"cost_cents"`
	ImageURL  string          `json:"image_url"`
	Nutrients []NutrientInput `json:"nutrients"`
}

func (s *FoodItemService) validateNutrients(nutrients []NutrientInput) error {
	for _, n := range nutrients {
		if !n.Unit.Valid() {
			return fmt.Errorf("unknown unit %q (want g, mg, mcg or ml)", n.Unit)
		}
		if n.Quantity < 0 {
			return fmt.Errorf("nutrient %q has negative quantity", n.Nutrient)
		}
	}
	return nil
}

func (s *FoodItemService) Create(userID uint, input FoodItemInput) (*models.FoodItem, error) {
	if err := s.validateNutrients(input.Nutrients); err != nil {
		return nil, err
	}

	item := models.FoodItem{
		UserID:    userID,
		Name:      input.Name,
		Brand:     input.Brand,
		Category:  input.Category,
		CostCents: input.CostCents,
		ImageURL:  input.ImageURL,
	}
	for i, n := range input.Nutrients {
		item.Nutrients = append(item.Nutrients, models.FoodItemNutrient{
			Nutrient:  n.Nutrient,
			Quantity:  n.Quantity,
			Unit:      n.Unit,
			SortOrder: i,
		})
	}

	if err := config.DB.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *FoodItemService) Get(userID, itemID uint) (*models.FoodItem, error) {
	var item models.FoodItem
	err := config.DB.
		Preload("Nutrients", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Where("id = ? AND user_id = ?", itemID, userID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *FoodItemService) List(userID uint) ([]models.FoodItem, error) {
	var items []models.FoodItem
	err := config.DB.
		Preload("Nutrients").
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&items).Error
	return items, err
}

func (s *FoodItemService) Search(userID uint, query string) ([]models.FoodItem, error) {
	var items []models.FoodItem
	like := "%" + query + "%"
	err := config.DB.
		Preload("Nutrients").
		Where("user_id = ? AND (name ILIKE ? OR brand ILIKE ? OR category ILIKE ?)",
			userID, like, like, like).
		Order("name ASC").
		Find(&items).Error
	return items, err
}

func (s *FoodItemService) Update(userID, itemID uint, input FoodItemInput) (*models.FoodItem, error) {
	if err := s.validateNutrients(input.Nutrients); err != nil {
		return nil, err
	}

	var item models.FoodItem
	if err := config.DB.
		Where("id = ? AND user_id = ?", itemID, userID).
		First(&item).Error; err != nil {
		return nil, err
	}

	item.Name = input.Name
	item.Brand = input.Brand
	item.Category = input.Category
	item.CostCents = input.CostCents
	if input.ImageURL != "" {
		item.ImageURL = input.ImageURL
	}
	if err := config.DB.Save(&item).Error; err != nil {
		return nil, err
	}

	// replace the nutrient rows wholesale, keeping input order
	if err := config.DB.
		Where("food_item_id = ?", item.ID).
		Delete(&models.FoodItemNutrient{}).Error; err != nil {
		return nil, err
	}
	for i, n := range input.Nutrients {
		row := models.FoodItemNutrient{
			FoodItemID: item.ID,
			Nutrient:   n.Nutrient,
			Quantity:   n.Quantity,
			Unit:       n.Unit,
			SortOrder:  i,
		}
		if err := config.DB.Create(&row).Error; err != nil {
			return nil, err
		}
	}

	var updated models.FoodItem
	if err := config.DB.
		Preload("Nutrients").
		First(&updated, item.ID).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *FoodItemService) Delete(userID, itemID uint) error {
	var count int64
	config.DB.Model(&models.Consumption{}).
		Where("food_item_id = ?", itemID).
		Count(&count)
	if count > 0 {
		return errors.New("food item is referenced by scheduled consumptions")
	}

	if err := config.DB.
		Where("food_item_id = ?", itemID).
		Delete(&models.FoodItemNutrient{}).Error; err != nil {
		return err
	}
	return config.DB.
		Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&models.FoodItem{}).Error
}

// SuggestFromImage returns label suggestions for a food photo.
func (s *FoodItemService) SuggestFromImage(base64Img string) ([]string, error) {
	if s.rek == nil {
		return nil, errors.New("image recognition not configured")
	}
	return s.rek.RecognizeLabels(base64Img)
}
