package repository_test

import (
	"github.com/google/uuid"
	"github.com/jarradburge/optivana-vanthex-monorepo/models"
)

func newStore(domain string) *models.Store {
	return &models.Store{Name: "Demo", Domain: domain, UserID: uuid.New()}
}

func newProduct(externalID string) *models.Product {
	return &models.Product{
		Title:       "Ergonomic Lamp",
		Description: "Warm light",
		Price:       19.99,
		Images:      models.StringList{"https://img.example.com/lamp.jpg"},
		Category:    "home",
		Source:      models.ProductSource{Platform: "aliexpress", ExternalID: externalID},
	}
}

func newCampaign(storeID, productID uuid.UUID) *models.Campaign {
	return &models.Campaign{
		Name:      "Lamp - facebook",
		StoreID:   storeID,
		ProductID: productID,
		Platform:  models.PlatformFacebook,
		Budget:    models.Budget{Daily: 20, Total: 500},
		Variants: models.VariantList{
			{ID: "v1", Name: "A", CreativeType: models.CreativeImage, CreativeURL: "https://cdn.example.com/a.png"},
		},
	}
}
