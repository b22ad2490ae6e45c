package services

import (
	"strconv"

	"adminpanel_backend/internal/appErrors"
	"adminpanel_backend/internal/models"
)

func parseSubject(subject string) (uint, error) {
	id, err := strconv.ParseUint(subject, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// parseDateField разбирает обязательное поле даты "YYYY-MM-DD"
func parseDateField(field, value string) (models.Date, error) {
	date, err := models.ParseDate(value)
	if err != nil {
		return models.Date{}, appErrors.ValidationError(map[string]string{
			field: "Expected date in YYYY-MM-DD format",
		})
	}
	return date, nil
}

// parseOptionalDate: пустая строка -> nil
func parseOptionalDate(field, value string) (*models.Date, error) {
	if value == "" {
		return nil, nil
	}
	date, err := parseDateField(field, value)
	if err != nil {
		return nil, err
	}
	return &date, nil
}
