// File: internal/store/store_test.go
package store

import (
	"fmt"
	"time"

	"brainfeed/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

/* ---------- 假實作 ---------- */

// fakeRow 實作 pgx.Row，依序把預先準備的值塞進 Scan 目的地。
type fakeRow struct {
	vals []any
	err  error
}

func assign(dest, val any) {
	switch p := dest.(type) {
	case *int:
		*p = val.(int)
	case *string:
		*p = val.(string)
	case *bool:
		*p = val.(bool)
	case *float64:
		*p = val.(float64)
	case *time.Time:
		*p = val.(time.Time)
	case **int:
		if val == nil {
			*p = nil
		} else {
			v := val.(int)
			*p = &v
		}
	default:
		panic(fmt.Sprintf("assign: unsupported dest %T", dest))
	}
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.vals) {
		panic(fmt.Sprintf("fakeRow.Scan: want %d dest, got %d", len(r.vals), len(dest)))
	}
	for i, d := range dest {
		assign(d, r.vals[i])
	}
	return nil
}

// fakeRows 實作 pgx.Rows，用於模擬多筆掃描行為。
type fakeRows struct {
	data    [][]any
	idx     int
	scanErr error
	err     error
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Next() bool                                   { return r.idx < len(r.data) }
func (r *fakeRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	vals := r.data[r.idx]
	r.idx++
	if len(dest) != len(vals) {
		panic(fmt.Sprintf("fakeRows.Scan: want %d dest, got %d", len(vals), len(dest)))
	}
	for i, d := range dest {
		assign(d, vals[i])
	}
	return nil
}
func (r *fakeRows) Values() ([]any, error) { return nil, nil }
func (r *fakeRows) RawValues() [][]byte    { return nil }
func (r *fakeRows) Conn() *pgx.Conn        { return nil }

// articleVals 對應 articleColumns 的掃描順序
func articleVals(a model.Article, cat model.Category, au model.Author) []any {
	var writerID any
	if a.WriterID != nil {
		writerID = *a.WriterID
	}
	return []any{
		a.ID, a.Title, a.Slug, a.Excerpt, a.Content, a.CoverImage,
		a.CategoryID, a.AuthorID, writerID, a.IsFeatured, a.ReadTime,
		a.Status, a.Clicks, a.PublishedAt, a.CreatedAt,
		cat.ID, cat.Name, cat.Slug, cat.Description,
		au.ID, au.Name, au.Avatar, au.Role, au.Bio,
	}
}
