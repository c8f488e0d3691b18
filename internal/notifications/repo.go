package notifications

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fitlinea/fitlinea/internal/telemetry/tracing"
)

type ListParams struct {
	AthleteID  *int
	UnreadOnly bool
	Page       int
	Size       int
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, notification Notification) (_ *Notification, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.notifications.add")
	defer tracing.EndSpanWithErrCheck(span, err)

	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now()
	}

	err = r.db.QueryRow(ctx, `
		INSERT INTO trainer_notification (athlete_id, category, anomaly_type, message, metadata, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`,
		notification.AthleteID,
		notification.Category,
		notification.AnomalyType,
		notification.Message,
		notification.Metadata,
		notification.Read,
		notification.CreatedAt,
	).Scan(&notification.ID)
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Notification, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.notifications.get")
	defer tracing.EndSpanWithErrCheck(span, err)

	notification := &Notification{}
	err = r.db.
		QueryRow(ctx, `
			SELECT id, athlete_id, category, anomaly_type, message, metadata, read, created_at
			FROM trainer_notification
			WHERE id = $1
		`, id).
		Scan(
			&notification.ID, &notification.AthleteID, &notification.Category,
			&notification.AnomalyType, &notification.Message, &notification.Metadata,
			&notification.Read, &notification.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return notification, nil
}

func (r *Repo) List(ctx context.Context, params ListParams) (_ []Notification, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.notifications.list")
	defer tracing.EndSpanWithErrCheck(span, err)

	err = r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM trainer_notification
		WHERE ($1::int IS NULL OR athlete_id = $1)
		  AND ($2::boolean IS FALSE OR read IS FALSE);
	`, params.AthleteID, params.UnreadOnly).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, athlete_id, category, anomaly_type, message, metadata, read, created_at
		FROM trainer_notification
		WHERE ($1::int IS NULL OR athlete_id = $1)
		  AND ($2::boolean IS FALSE OR read IS FALSE)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4;
	`,
		params.AthleteID, params.UnreadOnly,
		params.Size, params.Size*(params.Page-1),
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list := make([]Notification, 0)
	for rows.Next() {
		var n Notification
		if err := rows.Scan(
			&n.ID, &n.AthleteID, &n.Category, &n.AnomalyType,
			&n.Message, &n.Metadata, &n.Read, &n.CreatedAt,
		); err != nil {
			return nil, 0, err
		}
		list = append(list, n)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *Repo) CountUnread(ctx context.Context) (count int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.notifications.countunread")
	defer tracing.EndSpanWithErrCheck(span, err)

	err = r.db.
		QueryRow(ctx, `SELECT COUNT(*) FROM trainer_notification WHERE read IS FALSE`).
		Scan(&count)
	if err != nil {
		return -1, err
	}
	return count, nil
}

func (r *Repo) MarkRead(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.notifications.markread")
	defer tracing.EndSpanWithErrCheck(span, err)

	tag, err := r.db.Exec(ctx, `UPDATE trainer_notification SET read = TRUE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *Repo) MarkAllRead(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.notifications.markallread")
	defer tracing.EndSpanWithErrCheck(span, err)

	_, err = r.db.Exec(ctx, `UPDATE trainer_notification SET read = TRUE WHERE read IS FALSE`)
	return err
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.notifications.delete")
	defer tracing.EndSpanWithErrCheck(span, err)

	tag, err := r.db.Exec(ctx, `DELETE FROM trainer_notification WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotificationNotFound
	}
	return nil
}
