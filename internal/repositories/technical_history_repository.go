package repositories

import (
	"context"

	"rental-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TechnicalHistoryRepository struct {
	DB *pgxpool.Pool
}

func NewTechnicalHistoryRepository(db *pgxpool.Pool) *TechnicalHistoryRepository {
	return &TechnicalHistoryRepository{DB: db}
}

// Append writes one audit row. The table is append-only; nothing
// updates or deletes entries.
func (r *TechnicalHistoryRepository) Append(ctx context.Context, e *models.TechnicalHistoryEntry) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO technical_history(car_id, odometer, fuel_level, note, user_id)
         VALUES($1, $2, $3, $4, $5)
         RETURNING id, created_at`,
		e.CarID, e.Odometer, e.FuelLevel, e.Note, e.UserID,
	).Scan(&e.ID, &e.CreatedAt)
}

func (r *TechnicalHistoryRepository) ListByCar(ctx context.Context, carID int) ([]*models.TechnicalHistoryEntry, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT th.id, th.car_id, th.odometer, th.fuel_level, COALESCE(th.note, ''),
                th.user_id, COALESCE(u.name, ''), th.created_at
         FROM technical_history th
         LEFT JOIN users u ON th.user_id = u.id
         WHERE th.car_id=$1
         ORDER BY th.created_at DESC, th.id DESC`, carID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*models.TechnicalHistoryEntry
	for rows.Next() {
		var e models.TechnicalHistoryEntry
		err := rows.Scan(&e.ID, &e.CarID, &e.Odometer, &e.FuelLevel, &e.Note,
			&e.UserID, &e.UserName, &e.CreatedAt)
		if err != nil {
			return nil, err
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}
