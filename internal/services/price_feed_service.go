package services

import (
	"context"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "pricetrack/internal/errors"
	"pricetrack/internal/models"
	"pricetrack/internal/pagination"
)

// likeEscaper escapes LIKE wildcards so search text matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// priceFeedService serves the community price feed.
type priceFeedService struct {
	db *gorm.DB
}

// NewPriceFeedService creates a new PriceFeedServicer.
func NewPriceFeedService(db *gorm.DB) PriceFeedServicer {
	return &priceFeedService{db: db}
}

// GetFeed returns the newest valid observations, optionally restricted to
// those whose product name, barcode, user name or supermarket name contains
// the search text.
func (s *priceFeedService) GetFeed(ctx context.Context, query FeedQuery) (*Feed, error) {
	limit := pagination.FeedWindow.Default
	if query.Limit != 0 {
		limit = pagination.FeedWindow.ClampInt(query.Limit)
	}

	q := s.db.WithContext(ctx).
		Table("price_observations AS po").
		Select(`po.id AS observation_id, po.product_id, p.name AS product_name, p.barcode,
			COALESCE(br.name, '') AS brand, COALESCE(c.name, '') AS category,
			po.price, po.observed_on, po.branch_id, COALESCE(b.name, '') AS branch_name,
			COALESCE(b.supermarket_id, 0) AS supermarket_id, COALESCE(sm.name, '') AS supermarket_name,
			po.user_id, COALESCE(u.name, '') AS user_name`).
		Joins("JOIN products p ON p.id = po.product_id").
		Joins("LEFT JOIN brands br ON br.id = p.brand_id").
		Joins("LEFT JOIN categories c ON c.id = p.category_id").
		Joins("LEFT JOIN branches b ON b.id = po.branch_id").
		Joins("LEFT JOIN supermarkets sm ON sm.id = b.supermarket_id").
		Joins("LEFT JOIN users u ON u.id = po.user_id").
		Where("po.is_valid = ?", true)

	if search := strings.TrimSpace(query.Search); search != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(search)) + "%"
		q = q.Where(`(LOWER(p.name) LIKE ? ESCAPE '\' OR LOWER(p.barcode) LIKE ? ESCAPE '\'
			OR LOWER(u.name) LIKE ? ESCAPE '\' OR LOWER(sm.name) LIKE ? ESCAPE '\')`,
			pattern, pattern, pattern, pattern)
	}

	records := []FeedRecord{}
	err := q.Order("po.observed_on DESC, po.id DESC").
		Scopes(pagination.Limit(limit)).
		Scan(&records).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrPriceFeed, err)
	}

	return &Feed{Records: records, Count: len(records), Limit: limit}, nil
}

// GetFeedSummary loads a feed window and summarizes it.
func (s *priceFeedService) GetFeedSummary(ctx context.Context, query FeedQuery, supermarket string) (*FeedSummary, *Feed, error) {
	feed, err := s.GetFeed(ctx, query)
	if err != nil {
		return nil, nil, err
	}
	summary := SummarizeFeed(feed.Records, supermarket)
	return &summary, feed, nil
}

// SummarizeFeed aggregates feed records. Supermarkets lists every
// supermarket present in records, sorted; the remaining figures cover only
// records of the given supermarket when it is non-empty.
func SummarizeFeed(records []FeedRecord, supermarket string) FeedSummary {
	names := map[string]struct{}{}
	users := map[uint]struct{}{}
	products := map[uint]struct{}{}
	sum := decimal.Zero
	count := 0

	for _, r := range records {
		if r.SupermarketName != "" {
			names[r.SupermarketName] = struct{}{}
		}
		if supermarket != "" && r.SupermarketName != supermarket {
			continue
		}
		users[r.UserID] = struct{}{}
		products[r.ProductID] = struct{}{}
		sum = sum.Add(r.Price)
		count++
	}

	supermarkets := make([]string, 0, len(names))
	for name := range names {
		supermarkets = append(supermarkets, name)
	}
	sort.Strings(supermarkets)

	average := decimal.Zero
	if count > 0 {
		average = models.RoundMoney(sum.Div(decimal.NewFromInt(int64(count))))
	}

	return FeedSummary{
		Supermarket:      supermarket,
		Count:            count,
		DistinctUsers:    len(users),
		DistinctProducts: len(products),
		AveragePrice:     average,
		Supermarkets:     supermarkets,
	}
}
