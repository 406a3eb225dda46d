// File: internal/store/author.go
package store

import (
	"context"
	"fmt"

	"brainfeed/internal/database"
	"brainfeed/internal/model"
)

func ListAuthors(ctx context.Context, db database.DB) ([]model.Author, error) {
	rows, err := db.Query(ctx,
		`SELECT id, name, avatar, role, COALESCE(bio, '')
		 FROM authors ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListAuthors: %w", err)
	}
	defer rows.Close()

	var authors []model.Author
	for rows.Next() {
		var a model.Author
		if err := rows.Scan(&a.ID, &a.Name, &a.Avatar, &a.Role, &a.Bio); err != nil {
			return nil, fmt.Errorf("ListAuthors: %w", err)
		}
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListAuthors: %w", err)
	}
	return authors, nil
}
