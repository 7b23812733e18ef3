package services

import (
	"errors"
	"fmt"

	"backend/config"
	"backend/models"
	"backend/utils"
)

type ProfileInput struct {
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	WeightKg       float64 `json:"weight_kg"`
	Discipline     string  `json:"discipline"`
	ProfilePicture string  `json:"profile_picture"` // base64 data URI
}

func GetUserProfile(email string) (map[string]interface{}, error) {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return nil, errors.New("user not found or disabled")
	}

	return map[string]interface{}{
		"id":              user.ID,
		"email":           user.Email,
		"first_name":      user.FirstName,
		"last_name":       user.LastName,
		"weight_kg":       user.WeightKg,
		"discipline":      user.Discipline,
		"profile_picture": user.ProfilePicture,
		"mfa_enabled":     user.MFAEnabled,
	}, nil
}

func UpdateUserProfile(email string, input ProfileInput) error {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return errors.New("user not found or disabled")
	}

	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.WeightKg > 0 {
		user.WeightKg = input.WeightKg
	}
	if input.Discipline != "" {
		user.Discipline = input.Discipline
	}
	if input.ProfilePicture != "" {
		url, err := utils.UploadBase64ImageToS3(input.ProfilePicture, "profiles/"+user.Email)
		if err != nil {
			return fmt.Errorf("failed to upload image: %v", err)
		}
		user.ProfilePicture = url
	}

	return config.DB.Save(&user).Error
}

func DeleteUser(email string) error {
	var user models.User
	result := config.DB.First(&user, "email = ?", email)
	if result.Error != nil {
		return result.Error
	}
	user.Disabled = true
	return config.DB.Save(&user).Error
}
