package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/mdsofi1/AI-Interview-Assistant/pkg/model"
)

// SaveRecord inserts a finalized record with its answers. Records are
// immutable, so a duplicate id is left untouched.
func (r *Repository) SaveRecord(ctx context.Context, rec model.CandidateRecord) error {
	return r.execTx(ctx, func(tx pgx.Tx) error {
		const q = `
INSERT INTO candidate_records (
	id, name, email, phone, resume_file_name, interview_date,
	status, total_score, summary, total_time
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (id) DO NOTHING
`
		tag, err := tx.Exec(ctx, q,
			rec.ID, rec.Name, rec.Email, rec.Phone, rec.ResumeFileName, rec.InterviewDate,
			rec.Status, rec.TotalScore, rec.Summary, rec.TotalTime,
		)
		if err != nil {
			return fmt.Errorf("insert candidate record: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return nil
		}

		batch := &pgx.Batch{}
		const qa = `
INSERT INTO candidate_answers (record_id, position, question_id, answer, score, time_spent)
VALUES ($1, $2, $3, $4, $5, $6)
`
		for i, a := range rec.Answers {
			batch.Queue(qa, rec.ID, i, a.QuestionID, a.Text, a.Score, a.TimeSpent)
		}
		br := tx.SendBatch(ctx, batch)
		defer br.Close()
		for i := range rec.Answers {
			if _, err := br.Exec(); err != nil {
				return fmt.Errorf("batch insert answer %d: %w", i, err)
			}
		}
		return nil
	})
}

// ListRecords returns every archived record, newest interview first.
func (r *Repository) ListRecords(ctx context.Context) ([]model.CandidateRecord, error) {
	const q = `
SELECT id, name, email, phone, resume_file_name, interview_date,
	status, total_score, summary, total_time
FROM candidate_records
ORDER BY interview_date DESC
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query candidate records: %w", err)
	}
	defer rows.Close()

	var out []model.CandidateRecord
	byID := make(map[string]int)
	for rows.Next() {
		var rec model.CandidateRecord
		if err := rows.Scan(
			&rec.ID, &rec.Name, &rec.Email, &rec.Phone, &rec.ResumeFileName, &rec.InterviewDate,
			&rec.Status, &rec.TotalScore, &rec.Summary, &rec.TotalTime,
		); err != nil {
			return nil, fmt.Errorf("scan candidate record: %w", err)
		}
		byID[rec.ID] = len(out)
		out = append(out, rec)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}

	const qa = `
SELECT record_id, question_id, answer, score, time_spent
FROM candidate_answers
ORDER BY record_id, position ASC
`
	arows, err := r.db.Query(ctx, qa)
	if err != nil {
		return nil, fmt.Errorf("query candidate answers: %w", err)
	}
	defer arows.Close()

	for arows.Next() {
		var recordID string
		var a model.Answer
		if err := arows.Scan(&recordID, &a.QuestionID, &a.Text, &a.Score, &a.TimeSpent); err != nil {
			return nil, fmt.Errorf("scan candidate answer: %w", err)
		}
		if i, ok := byID[recordID]; ok {
			out[i].Answers = append(out[i].Answers, a)
		}
	}
	if arows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", arows.Err())
	}
	return out, nil
}
