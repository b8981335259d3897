package database

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/dthstore/dthstore-api/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) List(ctx context.Context) ([]entity.Lead, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, mobile, location, service_type, operator, status,
		       source, created_at, notes, follow_up_date, order_id, user_id
		FROM leads
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []entity.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	notes, err := json.Marshal(lead.Notes)
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(ctx, `
		INSERT INTO leads (id, name, mobile, location, service_type, operator,
		                   status, source, created_at, notes, follow_up_date,
		                   order_id, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		lead.ID, lead.Name, lead.Mobile, lead.Location,
		string(lead.ServiceType), string(lead.Operator), string(lead.Status),
		string(lead.Source), lead.CreatedAt, string(notes),
		nullInt64(lead.FollowUpDate), nullString(lead.OrderID), nullString(lead.UserID),
	)
	return err
}

func (r *LeadRepository) Update(ctx context.Context, lead *entity.Lead) error {
	notes, err := json.Marshal(lead.Notes)
	if err != nil {
		return err
	}

	res, err := r.DB.ExecContext(ctx, `
		UPDATE leads
		SET name = $2, mobile = $3, location = $4, service_type = $5,
		    operator = $6, status = $7, source = $8, notes = $9,
		    follow_up_date = $10, order_id = $11, user_id = $12
		WHERE id = $1`,
		lead.ID, lead.Name, lead.Mobile, lead.Location,
		string(lead.ServiceType), string(lead.Operator), string(lead.Status),
		string(lead.Source), string(notes),
		nullInt64(lead.FollowUpDate), nullString(lead.OrderID), nullString(lead.UserID),
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row rowScanner) (entity.Lead, error) {
	var (
		lead         entity.Lead
		notesRaw     sql.NullString
		followUpDate sql.NullInt64
		orderID      sql.NullString
		userID       sql.NullString
		serviceType  string
		operator     string
		status       string
		source       string
	)

	err := row.Scan(
		&lead.ID, &lead.Name, &lead.Mobile, &lead.Location,
		&serviceType, &operator, &status, &source,
		&lead.CreatedAt, &notesRaw, &followUpDate, &orderID, &userID,
	)
	if err != nil {
		return entity.Lead{}, err
	}

	lead.ServiceType = entity.ServiceType(serviceType)
	lead.Operator = entity.Operator(operator)
	lead.Status = entity.LeadStatus(status)
	lead.Source = entity.LeadSource(source)
	lead.FollowUpDate = followUpDate.Int64
	lead.OrderID = orderID.String
	lead.UserID = userID.String
	if notesRaw.Valid && notesRaw.String != "" {
		if err := json.Unmarshal([]byte(notesRaw.String), &lead.Notes); err != nil {
			return entity.Lead{}, err
		}
	}

	return lead, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nullInt64(n int64) *int64 {
	if n == 0 {
		return nil
	}
	return &n
}
