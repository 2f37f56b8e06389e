package portal

import (
	"context"
	"slices"
	"strings"

	"github.com/MrSnakeDoc/klub/internal/domain"
	"github.com/MrSnakeDoc/klub/internal/store"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	newsAuthor   = "Admin Klub"
	newsAvatar   = "https://i.pravatar.cc/40?u=admin"
)

// ArticleQuery filters and paginates the public article listing.
// Zero values select the defaults: page 1, 10 per page, no filter.
type ArticleQuery struct {
	Page       int
	Limit      int
	CategoryID string
	Search     string
}

func articleID(a domain.Article) string { return a.ID }

// Articles filters by category id and by a case-insensitive search over
// title and content, then returns the requested page and the filtered total.
func (s *Service) Articles(ctx context.Context, q ArticleQuery) (domain.ArticlePage, error) {
	if err := s.delay(ctx); err != nil {
		return domain.ArticlePage{}, err
	}

	page, limit := q.Page, q.Limit
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}

	all := readList(ctx, s, store.KeyArticles, s.seed.Articles)

	needle := strings.ToLower(q.Search)
	filtered := make([]domain.Article, 0, len(all))
	for _, a := range all {
		if q.CategoryID != "" && a.Category.ID != q.CategoryID {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(a.Title), needle) &&
			!strings.Contains(strings.ToLower(a.Content), needle) {
			continue
		}
		filtered = append(filtered, a)
	}

	return domain.ArticlePage{
		Data:  paginate(filtered, page, limit),
		Total: len(filtered),
	}, nil
}

// paginate returns the 1-based page of items; out of range pages are empty.
func paginate[T any](items []T, page, limit int) []T {
	if page < 1 || limit < 1 {
		return []T{}
	}
	pages := len(items) / limit
	if len(items)%limit != 0 {
		pages++
	}
	// compared before multiplying so huge pages cannot overflow skip
	if page-1 >= pages {
		return []T{}
	}
	skip := (page - 1) * limit
	return items[skip : skip+min(limit, len(items)-skip)]
}

// ArticleBySlug returns the first article with slug, or nil.
func (s *Service) ArticleBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}
	all := readList(ctx, s, store.KeyArticles, s.seed.Articles)
	return findFirst(all, slug, func(a domain.Article) string { return a.Slug }), nil
}

// AdminArticles lists every article, newest first.
func (s *Service) AdminArticles(ctx context.Context) ([]domain.Article, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}
	all := readList(ctx, s, store.KeyArticles, s.seed.Articles)
	sorted := slices.Clone(all)
	slices.SortStableFunc(sorted, func(a, b domain.Article) int {
		return compareNewestFirst(a.CreatedAt, b.CreatedAt)
	})
	return nonNil(sorted), nil
}

// compareNewestFirst orders timestamps descending. Unparsable values fall
// back to a reverse lexical comparison.
func compareNewestFirst(a, b string) int {
	ta, errA := domain.ParseTimestamp(a)
	tb, errB := domain.ParseTimestamp(b)
	if errA != nil || errB != nil {
		return strings.Compare(b, a)
	}
	return tb.Compare(ta)
}

func (s *Service) AdminArticleByID(ctx context.Context, id string) (*domain.Article, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}
	all := readList(ctx, s, store.KeyArticles, s.seed.Articles)
	return findFirst(all, id, articleID), nil
}

// CreateArticle places the new article at the head of the collection.
func (s *Service) CreateArticle(ctx context.Context, in domain.ArticleInput) (domain.Article, error) {
	if err := s.delay(ctx); err != nil {
		return domain.Article{}, err
	}

	now := s.now()
	a := domain.Article{
		ID:           domain.NewID(now),
		Title:        in.Title,
		Slug:         domain.Slugify(in.Title),
		FeatureImage: in.FeatureImage,
		Images:       nonNil(slices.Clone(in.Images)),
		Content:      in.Content,
		Excerpt:      in.Excerpt,
		Category:     in.Category,
		Keywords:     nonNil(slices.Clone(in.Keywords)),
		CreatedAt:    domain.Timestamp(now),
		Author:       domain.Author{Name: newsAuthor, Avatar: newsAvatar},
	}

	if err := appendRecord(ctx, s, store.KeyArticles, s.seed.Articles, a, true); err != nil {
		return domain.Article{}, err
	}
	return a, nil
}

// UpdateArticle merges patch into the article. The slug follows a new title.
func (s *Service) UpdateArticle(ctx context.Context, id string, patch domain.ArticlePatch) (domain.Article, error) {
	if err := s.delay(ctx); err != nil {
		return domain.Article{}, err
	}
	return updateByID(ctx, s, store.KeyArticles, s.seed.Articles, id, articleID, patch.Apply)
}

func (s *Service) DeleteArticle(ctx context.Context, id string) error {
	if err := s.delay(ctx); err != nil {
		return err
	}
	return deleteByID(ctx, s, store.KeyArticles, s.seed.Articles, id, articleID)
}
