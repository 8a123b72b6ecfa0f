package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"eventbooking/internal/domain"
)

const eventColumns = `id, name, description, date, place, category, max_participants, picture, places_left, created_at, updated_at`

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	var pictureNull sql.NullString
	err := row.Scan(
		&e.ID, &e.Name, &e.Description, &e.Date, &e.Place, &e.Category,
		&e.MaxParticipants, &pictureNull, &e.PlacesLeft, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if pictureNull.Valid {
		e.Picture = &pictureNull.String
	}
	return e, nil
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (id, name, description, date, place, category, max_participants, picture, places_left, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := conn(ctx, r.DB).ExecContext(ctx, query,
		e.ID, e.Name, e.Description, e.Date, e.Place, e.Category,
		e.MaxParticipants, e.Picture, e.PlacesLeft, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return wrapDBError("insert event", err)
	}
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *eventRepository) GetByIDForUpdate(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1 FOR UPDATE`
	return r.getOne(ctx, query, id)
}

func (r *eventRepository) getOne(ctx context.Context, query, id string) (*domain.Event, error) {
	e, err := scanEvent(conn(ctx, r.DB).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidTextRepresentation(err) {
			return nil, domain.NewNotFound(domain.KindEvent, id)
		}
		return nil, wrapDBError("get event", err)
	}
	return e, nil
}

func (r *eventRepository) GetByName(ctx context.Context, name string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE name = $1 ORDER BY date, id LIMIT 1`
	e, err := scanEvent(conn(ctx, r.DB).QueryRowContext(ctx, query, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFound(domain.KindEvent, name)
		}
		return nil, wrapDBError("get event by name", err)
	}
	return e, nil
}

func (r *eventRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Event, int, error) {
	q := conn(ctx, r.DB)
	var total int
	if err := q.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&total); err != nil {
		return nil, 0, wrapDBError("count events", err)
	}
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY name, id LIMIT $1 OFFSET $2`
	events, err := r.query(ctx, query, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

func (r *eventRepository) ListFiltered(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	var where []string
	var args []any
	n := 1
	if filter.Name != "" {
		where = append(where, fmt.Sprintf("name = $%d", n))
		args = append(args, filter.Name)
		n++
	}
	if filter.Category != "" {
		where = append(where, fmt.Sprintf("category = $%d", n))
		args = append(args, filter.Category)
		n++
	}
	if filter.Place != "" {
		where = append(where, fmt.Sprintf("place = $%d", n))
		args = append(args, filter.Place)
		n++
	}
	if filter.Date != nil {
		d := filter.Date.UTC()
		dayStart := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		where = append(where, fmt.Sprintf("date >= $%d AND date < $%d", n, n+1))
		args = append(args, dayStart, dayStart.AddDate(0, 0, 1))
	}
	query := `SELECT ` + eventColumns + ` FROM events`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY date, name`
	return r.query(ctx, query, args...)
}

func (r *eventRepository) query(ctx context.Context, query string, args ...any) ([]*domain.Event, error) {
	rows, err := conn(ctx, r.DB).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError("list events", err)
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, wrapDBError("scan event", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBError("list events", err)
	}
	return events, nil
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `
		UPDATE events
		SET name = $1, description = $2, date = $3, place = $4, category = $5,
		    max_participants = $6, picture = $7, places_left = $8, updated_at = $9
		WHERE id = $10
	`
	return r.execByID(ctx, "update event", e.ID, query,
		e.Name, e.Description, e.Date, e.Place, e.Category,
		e.MaxParticipants, e.Picture, e.PlacesLeft, e.UpdatedAt, e.ID,
	)
}

func (r *eventRepository) UpdatePlacesLeft(ctx context.Context, id string, placesLeft int) error {
	query := `UPDATE events SET places_left = $1, updated_at = NOW() WHERE id = $2`
	return r.execByID(ctx, "update places left", id, query, placesLeft, id)
}

func (r *eventRepository) UpdatePicture(ctx context.Context, id, picture string) error {
	query := `UPDATE events SET picture = $1, updated_at = NOW() WHERE id = $2`
	return r.execByID(ctx, "update picture", id, query, picture, id)
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	return r.execByID(ctx, "delete event", id, `DELETE FROM events WHERE id = $1`, id)
}

// execByID runs a statement that targets the event id. An id that is not a
// valid UUID matches no row, same as an unknown one.
func (r *eventRepository) execByID(ctx context.Context, op, id, query string, args ...any) error {
	result, err := conn(ctx, r.DB).ExecContext(ctx, query, args...)
	if err != nil {
		if isInvalidTextRepresentation(err) {
			return domain.NewNotFound(domain.KindEvent, id)
		}
		return wrapDBError(op, err)
	}
	return requireRow(result, domain.KindEvent, id)
}

func requireRow(result sql.Result, kind, key string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.NewNotFound(kind, key)
	}
	return nil
}
