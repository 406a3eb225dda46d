// File: internal/store/article.go
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"brainfeed/internal/database"
	"brainfeed/internal/model"

	"github.com/jackc/pgx/v5"
)

// 審核狀態轉移失敗的哨兵錯誤
var (
	ErrArticleNotFound = errors.New("article not found")
	ErrAlreadyDecided  = errors.New("article already decided")
)

// ArticleFilter 描述文章查詢條件，nil 欄位代表不設限
// 條件以 AND 結合，結果固定依 published_at 由新至舊排序
type ArticleFilter struct {
	Category *string
	Featured *bool
	Search   *string
	Status   *string
	WriterID *int
}

const articleColumns = `a.id, a.title, a.slug, a.excerpt, a.content, a.cover_image,
	 a.category_id, a.author_id, a.writer_id, a.is_featured, a.read_time,
	 a.status, a.clicks, a.published_at, a.created_at,
	 c.id, c.name, c.slug, COALESCE(c.description, ''),
	 au.id, au.name, au.avatar, au.role, COALESCE(au.bio, '')`

func scanArticleDetail(row pgx.Row) (*model.ArticleDetail, error) {
	d := &model.ArticleDetail{}
	if err := row.Scan(
		&d.ID,
		&d.Title,
		&d.Slug,
		&d.Excerpt,
		&d.Content,
		&d.CoverImage,
		&d.CategoryID,
		&d.AuthorID,
		&d.WriterID,
		&d.IsFeatured,
		&d.ReadTime,
		&d.Status,
		&d.Clicks,
		&d.PublishedAt,
		&d.CreatedAt,
		&d.Category.ID,
		&d.Category.Name,
		&d.Category.Slug,
		&d.Category.Description,
		&d.Author.ID,
		&d.Author.Name,
		&d.Author.Avatar,
		&d.Author.Role,
		&d.Author.Bio,
	); err != nil {
		return nil, err
	}
	return d, nil
}

// ListArticles 依條件列出文章並帶出分類與作者
// category slug 查無對應分類時回傳空列表而非忽略該條件
func ListArticles(ctx context.Context, db database.DB, f ArticleFilter) ([]model.ArticleDetail, error) {
	var (
		conds []string
		args  []any
	)

	if f.Category != nil {
		cat, err := GetCategoryBySlug(ctx, db, *f.Category)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return []model.ArticleDetail{}, nil
			}
			return nil, fmt.Errorf("ListArticles: %w", err)
		}
		args = append(args, cat.ID)
		conds = append(conds, fmt.Sprintf("a.category_id = $%d", len(args)))
	}
	if f.Featured != nil {
		args = append(args, *f.Featured)
		conds = append(conds, fmt.Sprintf("a.is_featured = $%d", len(args)))
	}
	if f.Search != nil {
		args = append(args, "%"+*f.Search+"%")
		conds = append(conds, fmt.Sprintf("a.title ILIKE $%d", len(args)))
	}
	if f.Status != nil {
		args = append(args, *f.Status)
		conds = append(conds, fmt.Sprintf("a.status = $%d", len(args)))
	}
	if f.WriterID != nil {
		args = append(args, *f.WriterID)
		conds = append(conds, fmt.Sprintf("a.writer_id = $%d", len(args)))
	}

	sql := `SELECT ` + articleColumns + `
		 FROM articles a
		 JOIN categories c ON c.id = a.category_id
		 JOIN authors au ON au.id = a.author_id`
	if len(conds) > 0 {
		sql += " WHERE " + strings.Join(conds, " AND ")
	}
	sql += " ORDER BY a.published_at DESC, a.id DESC"

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("ListArticles: %w", err)
	}
	defer rows.Close()

	list := []model.ArticleDetail{}
	for rows.Next() {
		d, err := scanArticleDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("ListArticles: %w", err)
		}
		list = append(list, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListArticles: %w", err)
	}
	return list, nil
}

func GetArticleBySlug(ctx context.Context, db database.DB, slug string) (*model.ArticleDetail, error) {
	row := db.QueryRow(ctx,
		`SELECT `+articleColumns+`
		 FROM articles a
		 JOIN categories c ON c.id = a.category_id
		 JOIN authors au ON au.id = a.author_id
		 WHERE a.slug = $1`,
		slug,
	)
	d, err := scanArticleDetail(row)
	if err != nil {
		return nil, fmt.Errorf("GetArticleBySlug: %w", err)
	}
	return d, nil
}

// CreateArticle 新增一篇 pending 文章
// slug 撞上唯一索引時由呼叫端以 pgconn.PgError 23505 判斷
func CreateArticle(ctx context.Context, db database.DB, a *model.Article) (*model.Article, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO articles
		 (title, slug, excerpt, content, cover_image, category_id, author_id,
		  writer_id, is_featured, read_time, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 'pending')
		 RETURNING id, status, clicks, published_at, created_at`,
		a.Title,
		a.Slug,
		a.Excerpt,
		a.Content,
		a.CoverImage,
		a.CategoryID,
		a.AuthorID,
		a.WriterID,
		a.IsFeatured,
		a.ReadTime,
	)
	if err := row.Scan(&a.ID, &a.Status, &a.Clicks, &a.PublishedAt, &a.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateArticle: %w", err)
	}
	return a, nil
}

// DecideArticle 將 pending 文章轉為 approved 或 rejected
// 僅允許來源狀態為 pending，終態文章再次裁決回傳 ErrAlreadyDecided
func DecideArticle(ctx context.Context, db database.DB, articleID int, status string) error {
	tag, err := db.Exec(ctx,
		`UPDATE articles SET status = $1
		 WHERE id = $2 AND status = 'pending'`,
		status,
		articleID,
	)
	if err != nil {
		return fmt.Errorf("DecideArticle: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	// 沒有任何列被更新：區分文章不存在與已裁決
	var current string
	err = db.QueryRow(ctx, `SELECT status FROM articles WHERE id = $1`, articleID).Scan(&current)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrArticleNotFound
	}
	if err != nil {
		return fmt.Errorf("DecideArticle: %w", err)
	}
	return ErrAlreadyDecided
}

// IncrementClicks 以資料庫端的原子遞增累計點擊數，避免並發時遺失更新
func IncrementClicks(ctx context.Context, db database.DB, articleID int) error {
	_, err := db.Exec(ctx,
		`UPDATE articles SET clicks = clicks + 1 WHERE id = $1`,
		articleID,
	)
	if err != nil {
		return fmt.Errorf("IncrementClicks: %w", err)
	}
	return nil
}
