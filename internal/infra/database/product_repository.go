package database

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/dthstore/dthstore-api/internal/entity"
)

type ProductRepository struct {
	DB *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

func (r *ProductRepository) List(ctx context.Context) ([]entity.Product, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, title, price, original_price, type, features, image, color,
		       is_best_seller
		FROM products`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []entity.Product
	for rows.Next() {
		var (
			p        entity.Product
			features string
		)
		err := rows.Scan(&p.ID, &p.Title, &p.Price, &p.OriginalPrice, &p.Type,
			&features, &p.Image, &p.Color, &p.IsBestSeller)
		if err != nil {
			return nil, err
		}
		if features != "" {
			if err := json.Unmarshal([]byte(features), &p.Features); err != nil {
				return nil, err
			}
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) Create(ctx context.Context, p *entity.Product) error {
	features, err := json.Marshal(p.Features)
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(ctx, `
		INSERT INTO products (id, title, price, original_price, type, features,
		                      image, color, is_best_seller)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		p.ID, p.Title, p.Price, p.OriginalPrice, p.Type, string(features),
		p.Image, p.Color, p.IsBestSeller,
	)
	return err
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	return err
}
