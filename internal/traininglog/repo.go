package traininglog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/fitlinea/fitlinea/internal/telemetry/tracing"
	"github.com/fitlinea/fitlinea/pkg"
)

type ListParams struct {
	AthleteID int
	Exercise  string
	From      *time.Time
	To        *time.Time
	Page      int
	Size      int
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, entry LogEntry) (_ *LogEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.traininglog.add")
	defer tracing.EndSpanWithErrCheck(span, err)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = tx.QueryRow(ctx, `
		INSERT INTO training_log (athlete_id, exercise, log_date)
		VALUES ($1, $2, $3)
		RETURNING id
	`,
		entry.AthleteID,
		entry.Exercise,
		entry.Date,
	).Scan(&entry.ID)
	if err != nil {
		return nil, err
	}

	for _, set := range entry.Sets {
		if _, err = tx.Exec(ctx, `
			INSERT INTO training_log_set (log_id, set_index, reps, weight, tempo, rest, notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`,
			entry.ID, set.SetIndex, set.Reps, set.Weight, set.Tempo, set.Rest, set.Notes,
		); err != nil {
			if pkg.IsUniqueViolationError(err) {
				return nil, fmt.Errorf("duplicate set index %d", set.SetIndex)
			}
			return nil, err
		}
	}

	return &entry, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *LogEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.traininglog.get")
	defer tracing.EndSpanWithErrCheck(span, err)

	entry := &LogEntry{}
	err = r.db.
		QueryRow(ctx, `
			SELECT id, athlete_id, exercise, log_date
			FROM training_log
			WHERE id = $1
		`, id).
		Scan(&entry.ID, &entry.AthleteID, &entry.Exercise, &entry.Date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLogNotFound
		}
		return nil, err
	}

	entry.Sets, err = r.setsForLog(ctx, entry.ID)
	if err != nil {
		return nil, err
	}

	return entry, nil
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.traininglog.delete")
	defer tracing.EndSpanWithErrCheck(span, err)

	// sets go away via ON DELETE CASCADE
	tag, err := r.db.Exec(ctx, `DELETE FROM training_log WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrLogNotFound
	}
	return nil
}

// History returns all log entries of an athlete for one exercise, sets
// included, newest first.
func (r *Repo) History(ctx context.Context, athleteID int, exercise string) (_ []LogEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.traininglog.history")
	defer tracing.EndSpanWithErrCheck(span, err)
	span.SetAttributes(attribute.String("exercise", exercise))

	rows, err := r.db.Query(ctx, `
		SELECT
			l.id, l.athlete_id, l.exercise, l.log_date,
			s.set_index, s.reps, s.weight, s.tempo, s.rest, s.notes
		FROM training_log l
		LEFT JOIN training_log_set s ON s.log_id = l.id
		WHERE l.athlete_id = $1 AND l.exercise = $2
		ORDER BY l.log_date DESC, s.set_index ASC;
	`, athleteID, exercise)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []LogEntry
	byID := make(map[int]int)
	for rows.Next() {
		var (
			entry    LogEntry
			setIndex *int
			reps     *int
			weight   *float64
			tempo    *string
			rest     *string
			notes    *string
		)
		if err := rows.Scan(
			&entry.ID, &entry.AthleteID, &entry.Exercise, &entry.Date,
			&setIndex, &reps, &weight, &tempo, &rest, &notes,
		); err != nil {
			return nil, err
		}

		pos, seen := byID[entry.ID]
		if !seen {
			pos = len(entries)
			byID[entry.ID] = pos
			entries = append(entries, entry)
		}
		if setIndex != nil {
			entries[pos].Sets = append(entries[pos].Sets, Set{
				SetIndex: *setIndex,
				Reps:     reps,
				Weight:   weight,
				Tempo:    tempo,
				Rest:     rest,
				Notes:    notes,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *Repo) List(ctx context.Context, params ListParams) (_ []LogEntry, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.traininglog.list")
	defer tracing.EndSpanWithErrCheck(span, err)

	err = r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM training_log
		WHERE athlete_id = $1
		  AND ($2::text = '' OR exercise = $2)
		  AND ($3::timestamp IS NULL OR log_date >= $3)
		  AND ($4::timestamp IS NULL OR log_date <= $4);
	`,
		params.AthleteID, params.Exercise, params.From, params.To,
	).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, athlete_id, exercise, log_date
		FROM training_log
		WHERE athlete_id = $1
		  AND ($2::text = '' OR exercise = $2)
		  AND ($3::timestamp IS NULL OR log_date >= $3)
		  AND ($4::timestamp IS NULL OR log_date <= $4)
		ORDER BY log_date DESC
		LIMIT $5 OFFSET $6;
	`,
		params.AthleteID, params.Exercise, params.From, params.To,
		params.Size, params.Size*(params.Page-1),
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	entries := make([]LogEntry, 0)
	for rows.Next() {
		var entry LogEntry
		if err := rows.Scan(&entry.ID, &entry.AthleteID, &entry.Exercise, &entry.Date); err != nil {
			return nil, 0, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for i := range entries {
		entries[i].Sets, err = r.setsForLog(ctx, entries[i].ID)
		if err != nil {
			return nil, 0, err
		}
	}

	return entries, total, nil
}

// UpdateSet stores one set value, creating the set row when the athlete
// fills that position for the first time.
func (r *Repo) UpdateSet(ctx context.Context, logID int, set Set) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.traininglog.updateset")
	defer tracing.EndSpanWithErrCheck(span, err)

	_, err = r.db.Exec(ctx, `
		INSERT INTO training_log_set (log_id, set_index, reps, weight, tempo, rest, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (log_id, set_index)
		DO UPDATE SET
			reps = EXCLUDED.reps, weight = EXCLUDED.weight,
			tempo = EXCLUDED.tempo, rest = EXCLUDED.rest, notes = EXCLUDED.notes
	`,
		logID, set.SetIndex, set.Reps, set.Weight, set.Tempo, set.Rest, set.Notes,
	)
	if pkg.IsForeignKeyViolationError(err) {
		return ErrLogNotFound
	}
	return err
}

func (r *Repo) setsForLog(ctx context.Context, logID int) ([]Set, error) {
	rows, err := r.db.Query(ctx, `
		SELECT set_index, reps, weight, tempo, rest, notes
		FROM training_log_set
		WHERE log_id = $1
		ORDER BY set_index ASC;
	`, logID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sets := make([]Set, 0)
	for rows.Next() {
		var set Set
		if err := rows.Scan(
			&set.SetIndex, &set.Reps, &set.Weight,
			&set.Tempo, &set.Rest, &set.Notes,
		); err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sets, nil
}
