package storage

import (
	"eurocompare/internal/marketplace"
	"eurocompare/internal/platform/models"

	pgmodels "eurocompare/internal/platform/storage/gen/postgres/public/model"
)

//go:generate make -C ../../../ generate-db

func toDBObservation(observation *models.Observation) pgmodels.PriceObservation {
	return pgmodels.PriceObservation{
		Asin:         observation.ASIN,
		Country:      string(observation.Country),
		Price:        observation.Price,
		Title:        observation.Title,
		ImageURL:     observation.ImageURL,
		Availability: observation.Availability,
		URL:          observation.URL,
		CapturedAt:   observation.CapturedAt,
	}
}

func fromDBObservation(row *pgmodels.PriceObservation) models.Observation {
	return models.Observation{
		ASIN:         row.Asin,
		Country:      marketplace.Country(row.Country),
		Price:        row.Price,
		Title:        row.Title,
		ImageURL:     row.ImageURL,
		Availability: row.Availability,
		URL:          row.URL,
		CapturedAt:   row.CapturedAt,
	}
}

func toDBAlert(alert *models.PriceAlert) *pgmodels.PriceAlert {
	return &pgmodels.PriceAlert{
		Asin:         alert.ASIN,
		TargetPrice:  alert.TargetPrice,
		Email:        alert.Email,
		Country:      string(alert.Country),
		ProductName:  alert.ProductName,
		ProductImage: alert.ProductImage,
	}
}

func fromDBAlert(row *pgmodels.PriceAlert) models.PriceAlert {
	return models.PriceAlert{
		ID:           row.ID,
		ASIN:         row.Asin,
		TargetPrice:  row.TargetPrice,
		Email:        row.Email,
		Country:      marketplace.Country(row.Country),
		ProductName:  row.ProductName,
		ProductImage: row.ProductImage,
		CreatedAt:    row.CreatedAt,
		IsActive:     row.IsActive,
		TriggeredAt:  row.TriggeredAt,
	}
}
