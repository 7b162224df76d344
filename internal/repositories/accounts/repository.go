// Package accounts is the typed repository for the admin account record.
package accounts

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/siteadmin/internal/common"
	"github.com/dmitrijs2005/siteadmin/internal/cryptox"
	"github.com/dmitrijs2005/siteadmin/internal/models"
	"github.com/dmitrijs2005/siteadmin/internal/repositories/records"
)

// Repository reads and overwrites the admin account list.
type Repository interface {
	Load(ctx context.Context) ([]models.Admin, error)
	Save(ctx context.Context, admins []models.Admin) error
}

// StoreRepository implements Repository over a records.Store. The scheme
// encodes the seeded demo passwords.
type StoreRepository struct {
	store  records.Store
	scheme cryptox.PasswordScheme
}

func NewRepository(store records.Store, scheme cryptox.PasswordScheme) *StoreRepository {
	return &StoreRepository{store: store, scheme: scheme}
}

// Decode parses and validates a stored or imported account list.
func Decode(data []byte) ([]models.Admin, error) {
	var admins []models.Admin
	if err := json.Unmarshal(data, &admins); err != nil {
		return nil, fmt.Errorf("decode admin users: %w", err)
	}
	if admins == nil {
		admins = []models.Admin{}
	}
	if err := models.ValidateAdmins(admins); err != nil {
		return nil, err
	}
	return admins, nil
}

// Encode validates admins and serializes them for storage.
func Encode(admins []models.Admin) ([]byte, error) {
	if admins == nil {
		admins = []models.Admin{}
	}
	if err := models.ValidateAdmins(admins); err != nil {
		return nil, err
	}
	data, err := json.Marshal(admins)
	if err != nil {
		return nil, fmt.Errorf("encode admin users: %w", err)
	}
	return data, nil
}

// Defaults encodes the built-in demo accounts with scheme.
func Defaults(scheme cryptox.PasswordScheme) ([]models.Admin, error) {
	admins := make([]models.Admin, 0, len(models.DefaultAdmins))
	for _, c := range models.DefaultAdmins {
		pwd, err := scheme.Encode([]byte(c.Password))
		if err != nil {
			return nil, fmt.Errorf("encode default password: %w", err)
		}
		admins = append(admins, models.Admin{Email: c.Email, Password: pwd})
	}
	return admins, nil
}

// Load returns the stored accounts, seeding the demo accounts on first run.
func (r *StoreRepository) Load(ctx context.Context) ([]models.Admin, error) {
	data, err := r.store.Get(ctx, common.AdminUsersKey)
	if err != nil {
		return nil, err
	}
	if data == nil {
		admins, err := Defaults(r.scheme)
		if err != nil {
			return nil, err
		}
		if err := r.Save(ctx, admins); err != nil {
			return nil, fmt.Errorf("seed admin users: %w", err)
		}
		return admins, nil
	}
	admins, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("stored %s is invalid: %w", common.AdminUsersKey, err)
	}
	return admins, nil
}

// Save overwrites the whole list.
func (r *StoreRepository) Save(ctx context.Context, admins []models.Admin) error {
	data, err := Encode(admins)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, common.AdminUsersKey, data)
}
