package store

import (
	"context"
	"time"

	sqrl "github.com/Masterminds/squirrel"
)

// GetOrCreateInstallation returns the installation for key, creating it when missing.
// Two concurrent callers with the same key receive the same row.
func (s *SQL) GetOrCreateInstallation(ctx context.Context, key InstallationKey) (*Installation, error) {
	ins := s.sb.Insert(tInstallations).Columns("installation_id", "enterprise_host", "is_artificial", "webhook_id", "created_at")
	var where sqrl.Eq
	if key.Artificial {
		ins = ins.Values(nil, key.EnterpriseHost, true, key.WebhookID, time.Now().UTC())
		where = sqrl.Eq{"is_artificial": true, "enterprise_host": key.EnterpriseHost, "webhook_id": key.WebhookID}
	} else {
		ins = ins.Values(key.InstallationID, key.EnterpriseHost, false, nil, time.Now().UTC())
		where = sqrl.Eq{"is_artificial": false, "enterprise_host": key.EnterpriseHost, "installation_id": key.InstallationID}
	}
	if _, err := s.exec(ctx, ins.Suffix("ON CONFLICT DO NOTHING")); err != nil {
		return nil, err
	}
	var inst Installation
	err := s.get(ctx, &inst, s.sb.Select("id", "installation_id", "enterprise_host", "is_artificial", "webhook_id", "created_at").
		From(tInstallations).Where(where))
	if err != nil {
		return nil, err
	}
	return &inst, nil
}

func (s *SQL) AddInstallationUser(ctx context.Context, installationID, userID int64) error {
	_, err := s.exec(ctx, s.sb.Insert(tInstallationUsers).
		Columns("installation_id", "user_id").
		Values(installationID, userID).
		Suffix("ON CONFLICT DO NOTHING"))
	return err
}
