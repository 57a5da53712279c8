package transfer

import "github.com/superfood/go-food-backend/internal/domain"

// ItemPayload is the transfer shape of a menu item as returned by
// GET /api/items. Items are created by seeding, never through the public
// surface, so this payload is only serialized outward; Validate exists to
// guarantee stored rows still satisfy the documented bounds.
type ItemPayload struct {
	ID          int64  `json:"id"`
	Weight      int    `json:"weight"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Cost        int    `json:"cost"`
	Category    int    `json:"category"`
	ImageName   string `json:"image_name"`
}

// ItemFromDomain maps a stored item to its transfer shape.
func ItemFromDomain(it domain.Item) ItemPayload {
	return ItemPayload{
		ID:          it.ID,
		Weight:      it.Weight,
		Name:        it.Name,
		Description: it.Description,
		Cost:        it.Cost,
		Category:    it.Category,
		ImageName:   it.ImageName,
	}
}

// Validate checks the payload against the menu-item field bounds.
func (p ItemPayload) Validate() error {
	if p.Weight <= 0 {
		return errPositive("weight")
	}
	if !runeLenBetween(p.Name, 2, 100) {
		return errLength("name", 2, 100)
	}
	if !runeLenBetween(p.Description, 1, 300) {
		return errLength("description", 1, 300)
	}
	if p.Cost <= 0 {
		return errPositive("cost")
	}
	if p.Category < 1 || p.Category > 6 {
		return &ValidationError{Field: "category", Message: "must be between 1 and 6"}
	}
	if !runeLenBetween(p.ImageName, 1, 100) {
		return errLength("image_name", 1, 100)
	}
	return nil
}
