package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"frontierwatch/internal/model"
)

type UpdateRepository struct {
	db *sql.DB
}

func NewUpdateRepository(db *sql.DB) *UpdateRepository {
	return &UpdateRepository{db: db}
}

func (r *UpdateRepository) ListModels() ([]model.FrontierModel, error) {
	rows, err := r.db.Query(`
		SELECT id, name, provider
		FROM frontier_models
	`)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var models []model.FrontierModel
	for rows.Next() {
		var m model.FrontierModel
		err := rows.Scan(&m.ID, &m.Name, &m.Provider)
		if err != nil {
			return nil, err
		}
		models = append(models, m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return models, nil
}

// UpsertUpdates writes the whole batch in one statement inside one
// transaction. A conflicting source_url overwrites the existing row's title,
// description, update_type and update_date; source_url itself never changes.
func (r *UpdateRepository) UpsertUpdates(records []model.ModelUpdate) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	tx, err := r.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	valueGroups := make([]string, 0, len(records))
	args := make([]interface{}, 0, len(records)*6)
	for i, rec := range records {
		base := i * 6
		valueGroups = append(valueGroups, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6))
		args = append(args, rec.FrontierModelID, rec.Title, rec.Description, rec.UpdateType, rec.SourceURL, rec.UpdateDate)
	}

	query := fmt.Sprintf(`
		INSERT INTO frontier_model_updates
		(frontier_model_id, title, description, update_type, source_url, update_date)
		VALUES %s
		ON CONFLICT (source_url) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			update_type = EXCLUDED.update_type,
			update_date = EXCLUDED.update_date
	`, strings.Join(valueGroups, ", "))

	_, err = tx.Exec(query, args...)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	return len(records), nil
}
