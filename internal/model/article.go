// File: internal/model/article.go
package model

import "time"

// 文章審核狀態，pending 為初始狀態，approved 與 rejected 為終態
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type Article struct {
	ID          int       `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Slug        string    `db:"slug" json:"slug"`
	Excerpt     string    `db:"excerpt" json:"excerpt"`
	Content     string    `db:"content" json:"content"`
	CoverImage  string    `db:"cover_image" json:"coverImage"`
	CategoryID  int       `db:"category_id" json:"categoryId"`
	AuthorID    int       `db:"author_id" json:"authorId"`
	WriterID    *int      `db:"writer_id" json:"writerId,omitempty"`
	IsFeatured  bool      `db:"is_featured" json:"isFeatured"`
	ReadTime    int       `db:"read_time" json:"readTime"`
	Status      string    `db:"status" json:"status"`
	Clicks      int       `db:"clicks" json:"clicks"`
	PublishedAt time.Time `db:"published_at" json:"publishedAt"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// ArticleDetail 帶出分類與作者的唯讀投影
type ArticleDetail struct {
	Article
	Category Category `json:"category"`
	Author   Author   `json:"author"`
}
