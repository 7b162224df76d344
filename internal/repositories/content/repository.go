// Package content is the typed repository for the site content record.
//
// Every Load decodes a fresh copy; callers change it and Save the whole
// record back. There is no field-level patch API.
package content

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/siteadmin/internal/common"
	"github.com/dmitrijs2005/siteadmin/internal/models"
	"github.com/dmitrijs2005/siteadmin/internal/repositories/records"
)

// Repository reads and overwrites the site content record.
type Repository interface {
	Load(ctx context.Context) (*models.SiteContent, error)
	Save(ctx context.Context, c *models.SiteContent) error
}

// StoreRepository implements Repository over a records.Store.
type StoreRepository struct {
	store records.Store
}

func NewRepository(store records.Store) *StoreRepository {
	return &StoreRepository{store: store}
}

// Decode parses and validates a stored or imported content record.
func Decode(data []byte) (*models.SiteContent, error) {
	var c models.SiteContent
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode site content: %w", err)
	}
	if c.Programs == nil {
		c.Programs = []models.Program{}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Encode validates c and serializes it for storage.
func Encode(c *models.SiteContent) ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	data, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode site content: %w", err)
	}
	return data, nil
}

// Load returns the stored record. On first run the built-in default is
// persisted and returned, so later loads see the same program ids.
func (r *StoreRepository) Load(ctx context.Context) (*models.SiteContent, error) {
	data, err := r.store.Get(ctx, common.SiteContentKey)
	if err != nil {
		return nil, err
	}
	if data == nil {
		c := models.DefaultContent()
		if err := r.Save(ctx, c); err != nil {
			return nil, fmt.Errorf("seed site content: %w", err)
		}
		return c.Clone(), nil
	}
	c, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("stored %s is invalid: %w", common.SiteContentKey, err)
	}
	return c, nil
}

// Save overwrites the whole record.
func (r *StoreRepository) Save(ctx context.Context, c *models.SiteContent) error {
	data, err := Encode(c)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, common.SiteContentKey, data)
}
