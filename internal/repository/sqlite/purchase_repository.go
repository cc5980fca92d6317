package sqlite

import (
	"context"
	"database/sql"

	"codequest/internal/logger"
	"codequest/internal/models"
	"codequest/internal/repository"
)

type purchaseRepository struct {
	db *sql.DB
}

// NewPurchaseRepository creates a new PurchaseRepository implementation
func NewPurchaseRepository(db *sql.DB) repository.PurchaseRepository {
	return &purchaseRepository{db: db}
}

func (r *purchaseRepository) ListByPlayer(ctx context.Context, playerID string) (map[string]bool, error) {
	log := logger.FromContext(ctx).WithPrefix("purchase_repo")
	log.Debug("listing purchases: player=%s", playerID)

	rows, err := r.db.QueryContext(ctx, `
SELECT reward_id FROM purchases WHERE player_id = ?
`, playerID)
	if err != nil {
		log.Error("failed to list purchases: %v", err)
		return nil, err
	}
	defer rows.Close()

	owned := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			log.Error("failed to scan purchase: %v", err)
			return nil, err
		}
		owned[id] = true
	}
	if err := rows.Err(); err != nil {
		log.Error("purchase rows error: %v", err)
		return nil, err
	}
	return owned, nil
}

func (r *purchaseRepository) Insert(ctx context.Context, p models.Purchase) error {
	log := logger.FromContext(ctx).WithPrefix("purchase_repo")
	log.Debug("inserting purchase: player=%s, reward=%s", p.PlayerID, p.RewardID)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO purchases (player_id, reward_id, purchased_at) VALUES (?, ?, ?)
`, p.PlayerID, p.RewardID, p.PurchasedAt)
	if err != nil {
		log.Error("failed to insert purchase: %v", err)
	}
	return err
}
