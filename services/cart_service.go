package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"converse-store/models"
	"converse-store/repositories"
)

// ErrInvalidQuantity is returned when an add is attempted with a quantity
// below 1. Zero or negative quantities would corrupt totals silently.
var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// DefaultSize is the size used by quick-add flows that skip explicit size
// selection.
const DefaultSize = "25"

// CartService owns the cart state machine. Lines are keyed by
// (productId, size); adding the same variant again increments its quantity,
// new variants are appended so insertion order is preserved. Each mutation
// persists the whole cart through the storage port.
type CartService struct {
	catalogRepo *repositories.CatalogRepository
	storage     repositories.CartStorage
}

func NewCartService(catalogRepo *repositories.CatalogRepository, storage repositories.CartStorage) *CartService {
	return &CartService{catalogRepo: catalogRepo, storage: storage}
}

// Load returns the persisted cart under key. A missing entry is an empty
// cart; a malformed payload is treated the same way instead of failing, so
// a stale or corrupted schema can never brick the storefront. Only a
// storage failure is an error.
func (s *CartService) Load(ctx context.Context, key string) ([]models.CartLine, error) {
	raw, found, err := s.storage.Read(ctx, key)
	if err != nil {
		return nil, err
	}
	if !found {
		return []models.CartLine{}, nil
	}

	var lines []models.CartLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		log.Printf("Discarding malformed cart payload under %q: %v", key, err)
		return []models.CartLine{}, nil
	}
	if lines == nil {
		lines = []models.CartLine{}
	}
	return lines, nil
}

func (s *CartService) save(ctx context.Context, key string, lines []models.CartLine) error {
	raw, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return s.storage.Write(ctx, key, string(raw))
}

// AddItem puts quantity units of (productID, size) in the cart. An unknown
// product id is ignored and the cart returned unchanged with added=false, so
// stale ids from the UI cannot create orphan lines. Display fields are
// snapshotted from the catalog when a new line is created.
func (s *CartService) AddItem(ctx context.Context, key string, productID int, size string, quantity int) (lines []models.CartLine, added bool, err error) {
	if quantity < 1 {
		return nil, false, ErrInvalidQuantity
	}
	if size == "" {
		size = DefaultSize
	}

	product, ok := s.catalogRepo.ByID(productID)
	if !ok {
		log.Printf("Ignoring add to cart for unknown product %d", productID)
		lines, err = s.Load(ctx, key)
		return lines, false, err
	}

	lines, err = s.Load(ctx, key)
	if err != nil {
		return nil, false, err
	}

	updated := false
	for i := range lines {
		if lines[i].Matches(productID, size) {
			lines[i].Quantity += quantity
			updated = true
			break
		}
	}
	if !updated {
		lines = append(lines, models.CartLine{
			ProductID: product.ID,
			Name:      product.Name,
			ShortName: product.ShortName,
			Price:     product.Price,
			Image:     product.Image,
			Size:      size,
			Quantity:  quantity,
			Color:     product.Color,
		})
	}

	if err := s.save(ctx, key, lines); err != nil {
		return nil, false, err
	}
	return lines, true, nil
}

// RemoveItem drops the (productID, size) line. Removing an absent line is a
// no-op.
func (s *CartService) RemoveItem(ctx context.Context, key string, productID int, size string) ([]models.CartLine, error) {
	lines, err := s.Load(ctx, key)
	if err != nil {
		return nil, err
	}

	kept := lines[:0]
	for _, line := range lines {
		if !line.Matches(productID, size) {
			kept = append(kept, line)
		}
	}
	if len(kept) == len(lines) {
		return lines, nil
	}

	if err := s.save(ctx, key, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

// SetQuantity sets the (productID, size) line to exactly quantity. A
// quantity of zero or less removes the line; a line with quantity below 1 never
// exists. The line is not created when absent; that is AddItem's job.
func (s *CartService) SetQuantity(ctx context.Context, key string, productID int, size string, quantity int) ([]models.CartLine, error) {
	if quantity <= 0 {
		return s.RemoveItem(ctx, key, productID, size)
	}

	lines, err := s.Load(ctx, key)
	if err != nil {
		return nil, err
	}

	for i := range lines {
		if lines[i].Matches(productID, size) {
			lines[i].Quantity = quantity
			if err := s.save(ctx, key, lines); err != nil {
				return nil, err
			}
			break
		}
	}
	return lines, nil
}

// Clear deletes all persisted cart state under key.
func (s *CartService) Clear(ctx context.Context, key string) error {
	return s.storage.Delete(ctx, key)
}

// Total sums price times quantity over the snapshot prices, not the live
// catalog.
func (s *CartService) Total(lines []models.CartLine) int {
	total := 0
	for _, line := range lines {
		total += line.Subtotal()
	}
	return total
}

// Count sums quantities: total units in the cart, not distinct lines.
func (s *CartService) Count(lines []models.CartLine) int {
	count := 0
	for _, line := range lines {
		count += line.Quantity
	}
	return count
}
