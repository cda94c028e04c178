package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/medinventory/medinv/internal/logger"
	"github.com/medinventory/medinv/models"
)

// equipmentRepository is the SQL-backed implementation of
// [EquipmentRepository] over the "equipment" table. The listing query is
// assembled with squirrel because the filter combination (kind, status,
// sector, free-text search, pagination) is dynamic.
type equipmentRepository struct {
	*DB
	logger *logger.Logger
}

// NewEquipmentRepository constructs an [EquipmentRepository] backed by the
// provided database connection and logger.
func NewEquipmentRepository(db *DB, logger *logger.Logger) EquipmentRepository {
	logger.Debug().Msg("creating equipment repository")
	return &equipmentRepository{
		DB:     db,
		logger: logger,
	}
}

const equipmentColumns = "id, name, kind, manufacturer, model, serial_number, asset_tag, sector, status, acquired_at, created_at, updated_at"

func (r *equipmentRepository) CreateEquipment(ctx context.Context, equipment models.Equipment) (models.Equipment, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, createEquipment,
		equipment.Name,
		equipment.Kind,
		equipment.Manufacturer,
		equipment.ModelName,
		equipment.SerialNumber,
		equipment.AssetTag,
		equipment.Sector,
		equipment.Status,
		nullableTime(equipment.AcquiredAt),
	)

	created, err := scanEquipment(row)
	if err != nil {
		log.Err(err).Str("func", "equipmentRepository.CreateEquipment").Msg("failed to insert equipment")
		return models.Equipment{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

func (r *equipmentRepository) GetEquipment(ctx context.Context, id int64) (models.Equipment, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, getEquipment, id)
	found, err := scanEquipment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Equipment{}, ErrEquipmentNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "equipmentRepository.GetEquipment").Int64("equipment_id", id).Msg("failed to query equipment")
		return models.Equipment{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

func (r *equipmentRepository) ListEquipment(ctx context.Context, filter models.EquipmentFilter, page, limit int) (models.EquipmentPage, error) {
	log := logger.FromContext(ctx)

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	where := equipmentFilterConditions(filter)
	withFilter := func(b squirrel.SelectBuilder) squirrel.SelectBuilder {
		if len(where) == 0 {
			return b
		}
		return b.Where(where)
	}

	countQuery, countArgs, err := withFilter(squirrel.Select("COUNT(*)").
		From("equipment").
		PlaceholderFormat(squirrel.Dollar)).
		ToSql()
	if err != nil {
		return models.EquipmentPage{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var total int
	if err = r.DB.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "equipmentRepository.ListEquipment").Msg("failed to count equipment")
		return models.EquipmentPage{}, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	listQuery, listArgs, err := withFilter(squirrel.Select(equipmentColumns).
		From("equipment").
		PlaceholderFormat(squirrel.Dollar)).
		OrderBy("name").
		Limit(uint64(limit)).
		Offset(uint64((page - 1) * limit)).
		ToSql()
	if err != nil {
		return models.EquipmentPage{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, listQuery, listArgs...)
	if err != nil {
		log.Err(err).Str("func", "equipmentRepository.ListEquipment").Msg("failed to query equipment page")
		return models.EquipmentPage{}, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Equipment, 0, limit)
	for rows.Next() {
		item, scanErr := scanEquipment(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "equipmentRepository.ListEquipment").Msg("failed to scan equipment row")
			return models.EquipmentPage{}, fmt.Errorf("%w: %v", ErrScanningRow, scanErr)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return models.EquipmentPage{}, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return models.EquipmentPage{
		Items: items,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

func (r *equipmentRepository) UpdateEquipment(ctx context.Context, id int64, equipment models.Equipment) (models.Equipment, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, updateEquipment,
		equipment.Name,
		equipment.Kind,
		equipment.Manufacturer,
		equipment.ModelName,
		equipment.SerialNumber,
		equipment.AssetTag,
		equipment.Sector,
		equipment.Status,
		nullableTime(equipment.AcquiredAt),
		id,
	)

	updated, err := scanEquipment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Equipment{}, ErrEquipmentNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "equipmentRepository.UpdateEquipment").Int64("equipment_id", id).Msg("failed to update equipment")
		return models.Equipment{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

func (r *equipmentRepository) UpdateEquipmentStatus(ctx context.Context, id int64, status models.EquipmentStatus) (models.Equipment, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, updateEquipmentStatus, status, id)
	updated, err := scanEquipment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Equipment{}, ErrEquipmentNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "equipmentRepository.UpdateEquipmentStatus").Int64("equipment_id", id).Msg("failed to update equipment status")
		return models.Equipment{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

func (r *equipmentRepository) DeleteEquipment(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteEquipment, id)
	if err != nil {
		log.Err(err).Str("func", "equipmentRepository.DeleteEquipment").Int64("equipment_id", id).Msg("failed to delete equipment")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return ErrEquipmentNotFound
	}

	return nil
}

func equipmentFilterConditions(filter models.EquipmentFilter) squirrel.And {
	conditions := squirrel.And{}

	if filter.Kind != "" {
		conditions = append(conditions, squirrel.Eq{"kind": filter.Kind})
	}
	if filter.Status != "" {
		conditions = append(conditions, squirrel.Eq{"status": filter.Status})
	}
	if filter.Sector != "" {
		conditions = append(conditions, squirrel.Eq{"sector": filter.Sector})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		conditions = append(conditions, squirrel.Or{
			squirrel.Like{"name": pattern},
			squirrel.Like{"manufacturer": pattern},
			squirrel.Like{"serial_number": pattern},
		})
	}

	return conditions
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEquipment(row rowScanner) (models.Equipment, error) {
	var e models.Equipment
	var acquiredAt sql.NullTime

	err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Kind,
		&e.Manufacturer,
		&e.ModelName,
		&e.SerialNumber,
		&e.AssetTag,
		&e.Sector,
		&e.Status,
		&acquiredAt,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return models.Equipment{}, err
	}

	if acquiredAt.Valid {
		e.AcquiredAt = acquiredAt.Time
	}

	return e, nil
}

func nullableTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}
