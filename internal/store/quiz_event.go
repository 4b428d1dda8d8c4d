package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

const quizEventsTable = "quiz_events"

func (r *eventRepo) AppendQuizEvent(ctx context.Context, data QuizEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(quizEventsTable).
		Columns("sequence", "timestamp", "component_id", "correct", "total", "experience_gained", "new_level").
		Values(seqNum, time.Now().UnixMilli(), data.ComponentID, data.Correct, data.Total, data.ExperienceGained, data.NewLevel).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save quiz event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryQuizEvents(ctx context.Context, opts QueryOpts) ([]QuizEventRecord, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select("id", "sequence", "timestamp", "component_id", "correct", "total", "experience_gained", "new_level").
		From(entsql.Table(quizEventsTable)).
		OrderBy(entsql.Desc("sequence"))
	applyOpts(sel, opts)

	query, args := sel.Query()
	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query quiz events: %w", err)
	}
	defer rows.Close()

	var out []QuizEventRecord
	for rows.Next() {
		var (
			rec QuizEventRecord
			ts  int64
		)
		if err := rows.Scan(&rec.ID, &rec.Sequence, &ts, &rec.ComponentID,
			&rec.Correct, &rec.Total, &rec.ExperienceGained, &rec.NewLevel); err != nil {
			return nil, fmt.Errorf("scan quiz event: %w", err)
		}
		rec.Timestamp = time.UnixMilli(ts)
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *eventRepo) PurgeQuizEvents(ctx context.Context) error {
	query, args := entsql.Dialect(dialect.SQLite).Delete(quizEventsTable).Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("purge quiz events: %w", err)
	}
	return nil
}
