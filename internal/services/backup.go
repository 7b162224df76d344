package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/siteadmin/internal/common"
	"github.com/dmitrijs2005/siteadmin/internal/logging"
	"github.com/dmitrijs2005/siteadmin/internal/models"
	"github.com/dmitrijs2005/siteadmin/internal/repositories/accounts"
	"github.com/dmitrijs2005/siteadmin/internal/repositories/content"
	"github.com/dmitrijs2005/siteadmin/internal/repositories/records"
)

// BackupService exports both records as one JSON document and imports
// such a document back.
type BackupService interface {
	Export(ctx context.Context) (*models.BackupDocument, error)
	Marshal(doc *models.BackupDocument) ([]byte, error)
	// Import replaces the records present in data. It is all-or-nothing:
	// on ErrParse or a backend failure neither record changes.
	Import(ctx context.Context, data []byte) error
	// Reset deletes both records; the next load seeds the defaults again.
	Reset(ctx context.Context) error
}

type backupService struct {
	store    records.Store
	content  content.Repository
	accounts accounts.Repository
	logger   logging.Logger
	now      func() time.Time
}

func NewBackupService(store records.Store, c content.Repository, a accounts.Repository, logger logging.Logger) BackupService {
	return &backupService{store: store, content: c, accounts: a, logger: logger, now: time.Now}
}

func (s *backupService) Export(ctx context.Context) (*models.BackupDocument, error) {
	c, err := s.content.Load(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.accounts.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &models.BackupDocument{
		Content:    c,
		Users:      users,
		ExportedAt: s.now().UTC(),
	}, nil
}

func (s *backupService) Marshal(doc *models.BackupDocument) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal backup: %w", err)
	}
	return data, nil
}

// rawDocument keeps the halves undecoded so absent and null can be told
// apart from empty.
type rawDocument struct {
	Content json.RawMessage `json:"content"`
	Users   json.RawMessage `json:"users"`
}

func present(raw json.RawMessage) bool {
	return len(raw) > 0 && !bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func parseError(err error) error {
	return fmt.Errorf("%w: %w", common.ErrParse, err)
}

// decodeDocument validates every present half before anything is written.
func decodeDocument(data []byte) (*models.SiteContent, []models.Admin, error) {
	if !bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		return nil, nil, parseError(errors.New("document is not a JSON object"))
	}

	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, parseError(err)
	}

	var (
		c     *models.SiteContent
		users []models.Admin
		err   error
	)

	if present(raw.Content) {
		if c, err = content.Decode(raw.Content); err != nil {
			return nil, nil, parseError(err)
		}
	}

	if present(raw.Users) {
		if users, err = accounts.Decode(raw.Users); err != nil {
			return nil, nil, parseError(err)
		}
		if len(users) == 0 {
			return nil, nil, parseError(errors.New("users list is empty"))
		}
	}

	return c, users, nil
}

func (s *backupService) Import(ctx context.Context, data []byte) error {
	c, users, err := decodeDocument(data)
	if err != nil {
		s.logger.Warn(ctx, "import rejected", "error", err)
		return err
	}

	err = s.store.Atomic(ctx, func(ctx context.Context, tx records.Store) error {
		if c != nil {
			enc, err := content.Encode(c)
			if err != nil {
				return err
			}
			if err := tx.Set(ctx, common.SiteContentKey, enc); err != nil {
				return err
			}
		}
		if users != nil {
			enc, err := accounts.Encode(users)
			if err != nil {
				return err
			}
			if err := tx.Set(ctx, common.AdminUsersKey, enc); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("import backup: %w", err)
	}

	s.logger.Info(ctx, "backup imported", "content", c != nil, "users", len(users))
	return nil
}

func (s *backupService) Reset(ctx context.Context) error {
	err := s.store.Atomic(ctx, func(ctx context.Context, tx records.Store) error {
		if err := tx.Delete(ctx, common.SiteContentKey); err != nil {
			return err
		}
		return tx.Delete(ctx, common.AdminUsersKey)
	})
	if err != nil {
		return fmt.Errorf("reset records: %w", err)
	}
	s.logger.Warn(ctx, "records reset to defaults")
	return nil
}
