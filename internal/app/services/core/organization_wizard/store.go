package organization_wizard

import (
	"context"
	"fmt"
	"superadmin-service/internal/app/contracts"
	"superadmin-service/internal/pkg/constvars"
	"superadmin-service/internal/pkg/exceptions"
	"superadmin-service/internal/pkg/wizard"
	"time"

	"github.com/goccy/go-json"
)

// sealer encrypts stored wizards; they carry the organization's initial
// password.
type sealer interface {
	Seal(plaintext []byte) ([]byte, error)
	Open(sealed []byte) ([]byte, error)
}

type storedWizard struct {
	ID        string          `json:"id"`
	OwnerID   string          `json:"ownerId"`
	Snapshot  wizard.Snapshot `json:"snapshot"`
	CreatedAt time.Time       `json:"createdAt"`
	ExpiresAt time.Time       `json:"expiresAt"`
}

type wizardStore struct {
	redis  contracts.RedisRepository
	sealer sealer
}

func sessionKey(wizardID string) string {
	return fmt.Sprintf(constvars.RedisKeyOrganizationWizardFormat, wizardID)
}

func lockKey(wizardID string) string {
	return fmt.Sprintf(constvars.RedisKeyOrganizationWizardLockFormat, wizardID)
}

func (s *wizardStore) save(ctx context.Context, record *storedWizard, ttl time.Duration) error {
	plaintext, err := json.Marshal(record)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	sealed, err := s.sealer.Seal(plaintext)
	if err != nil {
		return exceptions.ErrWizardSealing(err)
	}
	return s.redis.Set(ctx, sessionKey(record.ID), sealed, ttl)
}

// load returns nil without error when the wizard does not exist.
func (s *wizardStore) load(ctx context.Context, wizardID string) (*storedWizard, error) {
	raw, err := s.redis.Get(ctx, sessionKey(wizardID))
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}

	var sealed []byte
	if err := json.Unmarshal([]byte(raw), &sealed); err != nil {
		return nil, exceptions.ErrWizardSealing(err)
	}
	plaintext, err := s.sealer.Open(sealed)
	if err != nil {
		return nil, exceptions.ErrWizardSealing(err)
	}

	record := new(storedWizard)
	if err := json.Unmarshal(plaintext, record); err != nil {
		return nil, exceptions.ErrWizardSealing(err)
	}
	return record, nil
}

func (s *wizardStore) delete(ctx context.Context, wizardID string) error {
	return s.redis.Delete(ctx, sessionKey(wizardID))
}
