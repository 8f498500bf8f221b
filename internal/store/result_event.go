package store

import (
	"context"
	"fmt"

	"github.com/abhisek/nismprep/ent"
	"github.com/abhisek/nismprep/ent/resultevent"
)

func (r *eventRepo) AppendResult(ctx context.Context, data ResultEventData) (int64, error) {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ResultEvent.Create().
		SetSequence(seqNum).
		SetResultID(data.ResultID).
		SetModuleID(data.ModuleID).
		SetTestID(data.TestID).
		SetTestType(data.TestType).
		SetScore(data.Score).
		SetTimeSpentSecs(data.TimeSpentSecs).
		SetAutoSubmitted(data.AutoSubmitted).
		SetSubmittedAtMs(data.SubmittedAtMs).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("save result event: %w", err)
	}
	return seqNum, nil
}

func (r *eventRepo) ListResults(ctx context.Context, limit int) ([]ResultEventData, error) {
	q := r.client.ResultEvent.Query().
		Order(ent.Desc(resultevent.FieldSubmittedAtMs))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query result events: %w", err)
	}

	out := make([]ResultEventData, 0, len(rows))
	for _, row := range rows {
		out = append(out, ResultEventData{
			ResultID:      row.ResultID,
			ModuleID:      row.ModuleID,
			TestID:        row.TestID,
			TestType:      row.TestType,
			Score:         row.Score,
			TimeSpentSecs: row.TimeSpentSecs,
			AutoSubmitted: row.AutoSubmitted,
			SubmittedAtMs: row.SubmittedAtMs,
		})
	}
	return out, nil
}
