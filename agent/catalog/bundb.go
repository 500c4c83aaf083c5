package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	contractx "github.com/natthawee/shopflow/agent/contract"
)

// DBConfig configures the Postgres-backed catalog searcher.
type DBConfig struct {
	DSN     string        `envconfig:"DSN" split_words:"true" required:"true"`
	Limit   int           `envconfig:"LIMIT" split_words:"true" default:"20"`
	Timeout time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"5s"`
}

type productRow struct {
	bun.BaseModel `bun:"table:products,alias:p"`

	ID          int64   `bun:"id,pk,autoincrement"`
	Name        string  `bun:"name,notnull"`
	Price       float64 `bun:"price,notnull"`
	Category    string  `bun:"category"`
	Description string  `bun:"description"`
	Available   bool    `bun:"available,default:true"`
}

// DBSearcher answers catalog queries from a products table. It is the
// deterministic alternative to the LLM searcher; results come back already
// decoded, so no extraction step is involved.
type DBSearcher struct {
	db    *bun.DB
	limit int
}

var _ contractx.Searcher = (*DBSearcher)(nil)

func NewDBSearcher(cfg DBConfig) (*DBSearcher, error) {
	dsn := strings.TrimSpace(cfg.DSN)
	if dsn == "" {
		return nil, errors.New("catalog database dsn is required")
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(
		pgdriver.WithDSN(dsn),
		pgdriver.WithTimeout(cfg.Timeout),
	))
	db := bun.NewDB(sqldb, pgdialect.New())

	limit := cfg.Limit
	if limit <= 0 {
		limit = 20
	}

	return &DBSearcher{db: db, limit: limit}, nil
}

func (s *DBSearcher) Search(ctx context.Context, query string) (contractx.SearchPayload, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return contractx.SearchPayload{}, fmt.Errorf("%w: query is empty", contractx.ErrValidation)
	}

	pattern := "%" + strings.ToLower(query) + "%"

	var rows []productRow
	err := s.db.NewSelect().
		Model(&rows).
		Where("p.available = TRUE").
		WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.
				Where("LOWER(p.name) LIKE ?", pattern).
				WhereOr("LOWER(p.description) LIKE ?", pattern).
				WhereOr("LOWER(p.category) LIKE ?", pattern)
		}).
		Order("p.name ASC").
		Limit(s.limit).
		Scan(ctx)
	if err != nil {
		return contractx.SearchPayload{}, fmt.Errorf("%w: %v", contractx.ErrCatalogUnavailable, err)
	}

	payload := contractx.SearchPayload{Products: make([]contractx.Product, 0, len(rows))}
	for _, row := range rows {
		payload.Products = append(payload.Products, contractx.Product{
			Name:        row.Name,
			Price:       row.Price,
			Category:    row.Category,
			Description: row.Description,
		})
	}
	return payload, nil
}

func (s *DBSearcher) Close() error {
	return s.db.Close()
}
