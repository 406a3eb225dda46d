package store

import (
	"context"
	"errors"
	"testing"

	"brainfeed/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

func TestListCategories(t *testing.T) {
	t.Run("成功", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
				require.Contains(t, sql, "FROM categories")
				return &fakeRows{data: [][]any{
					{1, "Tech", "tech", "All things tech"},
					{2, "Science", "science", ""},
				}}, nil
			},
		}
		cats, err := ListCategories(context.Background(), db)
		require.NoError(t, err)
		require.Len(t, cats, 2)
		require.Equal(t, "science", cats[1].Slug)
	})

	t.Run("查詢失敗", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return nil, errors.New("down")
			},
		}
		_, err := ListCategories(context.Background(), db)
		require.Error(t, err)
	})
}

func TestGetCategoryBySlug(t *testing.T) {
	t.Run("成功", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
				require.Contains(t, sql, "WHERE slug = $1")
				require.Equal(t, []any{"tech"}, args)
				return fakeRow{vals: []any{1, "Tech", "tech", ""}}
			},
		}
		c, err := GetCategoryBySlug(context.Background(), db, "tech")
		require.NoError(t, err)
		require.Equal(t, 1, c.ID)
	})

	t.Run("查無資料", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return fakeRow{err: pgx.ErrNoRows}
			},
		}
		_, err := GetCategoryBySlug(context.Background(), db, "ghost")
		require.ErrorIs(t, err, pgx.ErrNoRows)
	})
}

func TestListAuthors(t *testing.T) {
	t.Run("成功", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
				require.Contains(t, sql, "FROM authors")
				return &fakeRows{data: [][]any{
					{1, "Ada", "https://cdn/a.png", "editor", "bio"},
				}}, nil
			},
		}
		authors, err := ListAuthors(context.Background(), db)
		require.NoError(t, err)
		require.Len(t, authors, 1)
		require.Equal(t, "Ada", authors[0].Name)
	})

	t.Run("掃描失敗", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeRows{data: [][]any{{1, "Ada", "", "", ""}}, scanErr: errors.New("scan")}, nil
			},
		}
		_, err := ListAuthors(context.Background(), db)
		require.Error(t, err)
	})
}
