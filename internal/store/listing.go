package store

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"newsboard/internal/apperr"
	"newsboard/internal/sqlutil"

	sq "github.com/Masterminds/squirrel"
)

// DefaultPageSize is the page size assumed when p is given without limit.
const DefaultPageSize = 10

// sortColumn maps an accepted sort_by value to its physical column
// reference. This closed set is the sole injection defense for identifiers,
// which cannot be parameterized.
type sortColumn struct {
	expr    string
	textual bool // textual columns get the natural-sort collation applied
}

var articleSortColumns = map[string]sortColumn{
	"article_id":      {expr: "a.article_id"},
	"author":          {expr: "a.author", textual: true},
	"title":           {expr: "a.title", textual: true},
	"body":            {expr: "a.body", textual: true},
	"topic":           {expr: "a.topic", textual: true},
	"article_img_url": {expr: "a.article_img_url", textual: true},
	"created_at":      {expr: "a.created_at"},
	"votes":           {expr: "a.votes"},
	// Derived at read time; ordered through the output alias.
	"comment_count": {expr: "comment_count"},
}

// SortKey is one resolved ORDER BY entry.
type SortKey struct {
	Column    string // allow-listed sort_by value, not raw SQL
	Direction string // "ASC" or "DESC"
}

// ListQuery holds validated article listing parameters.
type ListQuery struct {
	Topic    string
	HasTopic bool
	Sort     []SortKey
	Limit    int
	HasLimit bool
	Page     int
	HasPage  bool
}

// ListWindow holds validated limit/p parameters for windowed listings that
// support no filtering or sorting (article comments).
type ListWindow struct {
	Limit    int
	HasLimit bool
	Page     int
	HasPage  bool
}

var articleListParams = map[string]struct{}{
	"topic":   {},
	"sort_by": {},
	"order":   {},
	"limit":   {},
	"p":       {},
}

var windowListParams = map[string]struct{}{
	"limit": {},
	"p":     {},
}

// topicArticlesParams omits topic: on the topic-scoped route the filter
// comes from the path, so the query-parameter form is unrecognized there.
var topicArticlesParams = map[string]struct{}{
	"sort_by": {},
	"order":   {},
	"limit":   {},
	"p":       {},
}

// ParseArticleListQuery validates untrusted query parameters for article
// listings. Any violation fails the whole request with a single BadRequest
// before anything touches the database.
func ParseArticleListQuery(values url.Values) (*ListQuery, error) {
	if err := rejectUnknownParams(values, articleListParams); err != nil {
		return nil, err
	}

	q := &ListQuery{}

	topics := values["topic"]
	if len(topics) > 1 {
		return nil, apperr.BadRequest("topic accepts a single value")
	}
	if len(topics) == 1 {
		q.Topic = topics[0]
		q.HasTopic = true
	}

	sort, err := parseSortKeys(values["sort_by"], values["order"])
	if err != nil {
		return nil, err
	}
	q.Sort = sort

	q.Limit, q.HasLimit, err = parsePositiveInt(values, "limit")
	if err != nil {
		return nil, err
	}
	q.Page, q.HasPage, err = parsePositiveInt(values, "p")
	if err != nil {
		return nil, err
	}

	return q, nil
}

// ParseTopicArticlesQuery validates parameters for a topic-scoped article
// listing. Same contract as ParseArticleListQuery, except the topic filter is
// fixed by the caller.
func ParseTopicArticlesQuery(topic string, values url.Values) (*ListQuery, error) {
	if err := rejectUnknownParams(values, topicArticlesParams); err != nil {
		return nil, err
	}

	q := &ListQuery{Topic: topic, HasTopic: true}

	sort, err := parseSortKeys(values["sort_by"], values["order"])
	if err != nil {
		return nil, err
	}
	q.Sort = sort

	q.Limit, q.HasLimit, err = parsePositiveInt(values, "limit")
	if err != nil {
		return nil, err
	}
	q.Page, q.HasPage, err = parsePositiveInt(values, "p")
	if err != nil {
		return nil, err
	}

	return q, nil
}

// ParseListWindow validates limit/p for windowed listings.
func ParseListWindow(values url.Values) (*ListWindow, error) {
	if err := rejectUnknownParams(values, windowListParams); err != nil {
		return nil, err
	}

	w := &ListWindow{}
	var err error
	w.Limit, w.HasLimit, err = parsePositiveInt(values, "limit")
	if err != nil {
		return nil, err
	}
	w.Page, w.HasPage, err = parsePositiveInt(values, "p")
	if err != nil {
		return nil, err
	}
	return w, nil
}

func rejectUnknownParams(values url.Values, recognized map[string]struct{}) error {
	for key := range values {
		if _, ok := recognized[key]; !ok {
			return apperr.BadRequest(fmt.Sprintf("unrecognized query parameter: %s", key))
		}
	}
	return nil
}

// parseSortKeys resolves sort_by/order into ordered sort keys.
//
// Defaults: neither given sorts by created_at ascending; sort_by without a
// paired order defaults that position to descending; order alone applies to
// created_at.
func parseSortKeys(sortBys []string, orders []string) ([]SortKey, error) {
	directions := make([]string, len(orders))
	for i, o := range orders {
		switch strings.ToLower(o) {
		case "asc":
			directions[i] = "ASC"
		case "desc":
			directions[i] = "DESC"
		default:
			return nil, apperr.BadRequest(fmt.Sprintf("invalid order value: %s", o))
		}
	}

	if len(sortBys) == 0 {
		switch len(directions) {
		case 0:
			return []SortKey{{Column: "created_at", Direction: "ASC"}}, nil
		case 1:
			return []SortKey{{Column: "created_at", Direction: directions[0]}}, nil
		default:
			return nil, apperr.BadRequest("order given more times than sort_by")
		}
	}

	if len(directions) > len(sortBys) {
		return nil, apperr.BadRequest("order given more times than sort_by")
	}

	seen := make(map[string]struct{}, len(sortBys))
	keys := make([]SortKey, len(sortBys))
	for i, sb := range sortBys {
		if _, ok := articleSortColumns[sb]; !ok {
			return nil, apperr.BadRequest(fmt.Sprintf("cannot sort by %s", sb))
		}
		if _, dup := seen[sb]; dup {
			return nil, apperr.BadRequest(fmt.Sprintf("duplicate sort_by column: %s", sb))
		}
		seen[sb] = struct{}{}

		direction := "DESC"
		if i < len(directions) {
			direction = directions[i]
		}
		keys[i] = SortKey{Column: sb, Direction: direction}
	}
	return keys, nil
}

// parsePositiveInt enforces the strict pagination policy: the parameter must
// be a single base-10 integer greater than zero.
func parsePositiveInt(values url.Values, name string) (int, bool, error) {
	raw := values[name]
	if len(raw) == 0 {
		return 0, false, nil
	}
	if len(raw) > 1 {
		return 0, false, apperr.BadRequest(fmt.Sprintf("%s accepts a single value", name))
	}
	n, err := strconv.Atoi(raw[0])
	if err != nil || n <= 0 {
		return 0, false, apperr.BadRequest(fmt.Sprintf("%s must be a positive integer", name))
	}
	return n, true, nil
}

// EffectiveLimit is the page size used for offset computation when p is
// present, defaulting when limit is absent.
func (q *ListQuery) EffectiveLimit() int {
	if q.HasLimit {
		return q.Limit
	}
	return DefaultPageSize
}

// EffectiveLimit mirrors ListQuery.EffectiveLimit for windowed listings.
func (w *ListWindow) EffectiveLimit() int {
	if w.HasLimit {
		return w.Limit
	}
	return DefaultPageSize
}

const articleSelectColumns = "a.article_id, a.author, a.title, a.body, a.topic, " +
	"a.article_img_url, a.created_at, a.votes"

// buildArticlesSelect produces the filtered, sorted, paginated page query.
// collation names a natural-sort collation applied to textual sort keys, or
// "" for the column default.
func (q *ListQuery) buildArticlesSelect(collation string) (string, []any, error) {
	builder := sq.Select(articleSelectColumns, "COUNT(c.comment_id)::INT AS comment_count").
		From("articles a").
		LeftJoin("comments c ON c.article_id = a.article_id").
		GroupBy("a.article_id")

	if q.HasTopic {
		builder = builder.Where(sq.Eq{"a.topic": q.Topic})
	}

	builder = builder.OrderBy(q.orderByClauses(collation)...)

	if q.HasLimit {
		builder = builder.Limit(uint64(q.Limit))
	}
	if q.HasPage {
		builder = builder.Offset(uint64((q.Page - 1) * q.EffectiveLimit()))
	}

	return builder.PlaceholderFormat(sq.Dollar).ToSql()
}

// buildArticlesCount produces the total_count query: matching rows under the
// same filter, ignoring limit and offset.
func (q *ListQuery) buildArticlesCount() (string, []any, error) {
	builder := sq.Select("COUNT(*)::INT").From("articles a")
	if q.HasTopic {
		builder = builder.Where(sq.Eq{"a.topic": q.Topic})
	}
	return builder.PlaceholderFormat(sq.Dollar).ToSql()
}

// buildCommentsSelect produces the windowed comment listing for one article.
func (w *ListWindow) buildCommentsSelect(articleID int) (string, []any, error) {
	builder := sq.Select("c.comment_id", "c.article_id", "c.author", "c.body", "c.votes", "c.created_at").
		From("comments c").
		Where(sq.Eq{"c.article_id": articleID})

	if w.HasLimit {
		builder = builder.Limit(uint64(w.Limit))
	}
	if w.HasPage {
		builder = builder.Offset(uint64((w.Page - 1) * w.EffectiveLimit()))
	}

	return builder.PlaceholderFormat(sq.Dollar).ToSql()
}

func (q *ListQuery) orderByClauses(collation string) []string {
	clauses := make([]string, len(q.Sort))
	for i, key := range q.Sort {
		col := articleSortColumns[key.Column]
		expr := col.expr
		if col.textual && collation != "" {
			expr += " COLLATE " + sqlutil.QuoteIdentifier(collation)
		}
		clauses[i] = expr + " " + key.Direction
	}
	return clauses
}
