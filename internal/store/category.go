// File: internal/store/category.go
package store

import (
	"context"
	"fmt"

	"brainfeed/internal/database"
	"brainfeed/internal/model"
)

func ListCategories(ctx context.Context, db database.DB) ([]model.Category, error) {
	rows, err := db.Query(ctx,
		`SELECT id, name, slug, COALESCE(description, '')
		 FROM categories ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListCategories: %w", err)
	}
	defer rows.Close()

	var cats []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description); err != nil {
			return nil, fmt.Errorf("ListCategories: %w", err)
		}
		cats = append(cats, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListCategories: %w", err)
	}
	return cats, nil
}

func GetCategoryBySlug(ctx context.Context, db database.DB, slug string) (*model.Category, error) {
	row := db.QueryRow(ctx,
		`SELECT id, name, slug, COALESCE(description, '')
		 FROM categories WHERE slug = $1`,
		slug,
	)
	c := &model.Category{}
	if err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Description); err != nil {
		return nil, fmt.Errorf("GetCategoryBySlug: %w", err)
	}
	return c, nil
}
