package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/redis/rueidis"

	"github.com/kailas-cloud/redrelief/internal/db"
)

// DocumentField is the RETURN field carrying the whole JSON document.
const DocumentField = "$"

// Search runs an equality-filtered, optionally sorted FT.SEARCH.
func (s *Store) Search(ctx context.Context, q *db.Query) (*db.SearchResult, error) {
	args, err := BuildSearchArgs(q)
	if err != nil {
		return nil, err
	}

	cmd := s.b().Arbitrary("FT.SEARCH").Args(args...).Build()
	raw, err := s.do(ctx, cmd).ToArray()
	if err != nil {
		return nil, &db.Error{Op: db.OpSearch, Err: ClassifySearchErr(err)}
	}

	return ParseSearchResult(raw)
}

// BuildSearchArgs renders q into FT.SEARCH arguments (without the command name).
func BuildSearchArgs(q *db.Query) ([]string, error) {
	if q.IndexName == "" {
		return nil, errors.New("index name is required")
	}
	limit := q.Limit
	if limit <= 0 {
		limit = db.DefaultQueryLimit
	}

	args := []string{q.IndexName, BuildFilter(q.Filters)}
	if q.SortBy != "" {
		dir := "ASC"
		if q.SortDesc {
			dir = "DESC"
		}
		args = append(args, "SORTBY", q.SortBy, dir)
	}
	args = append(args,
		"RETURN", "1", DocumentField,
		"LIMIT", strconv.Itoa(q.Offset), strconv.Itoa(limit),
		"DIALECT", "2",
	)
	return args, nil
}

// ClassifySearchErr maps server replies that mean "this query cannot run here"
// onto db sentinels. Anything else is returned unchanged.
func ClassifySearchErr(err error) error {
	switch {
	case isUnknownIndex(err):
		return fmt.Errorf("%w: %w", db.ErrIndexNotFound, err)
	case IsRedisErr(err, "unknown command"),
		IsRedisErr(err, "not loaded nor in schema"),
		IsRedisErr(err, "not sortable"),
		IsRedisErr(err, "sortby"):
		return fmt.Errorf("%w: %w", db.ErrQueryUnsupported, err)
	default:
		return err
	}
}

// ParseSearchResult decodes a RESP2 FT.SEARCH reply: [total, key1, fields1, key2, fields2, ...].
func ParseSearchResult(raw []rueidis.RedisMessage) (*db.SearchResult, error) {
	if len(raw) == 0 {
		return &db.SearchResult{}, nil
	}

	total, err := raw[0].AsInt64()
	if err != nil {
		return nil, fmt.Errorf("parse total: %w", err)
	}
	if total == 0 {
		return &db.SearchResult{}, nil
	}

	entries := make([]db.SearchEntry, 0, len(raw)/2)
	for i := 1; i+1 < len(raw); i += 2 {
		key, err := raw[i].ToString()
		if err != nil {
			continue
		}

		fields, err := raw[i+1].ToArray()
		if err != nil {
			continue
		}

		entries = append(entries, db.SearchEntry{
			Key:    key,
			Fields: parseFieldPairs(fields),
		})
	}

	return &db.SearchResult{Total: int(total), Entries: entries}, nil
}

func parseFieldPairs(fields []rueidis.RedisMessage) map[string]string {
	m := make(map[string]string, len(fields)/2)
	for j := 0; j+1 < len(fields); j += 2 {
		name, err := fields[j].ToString()
		if err != nil {
			continue
		}
		value, err := fields[j+1].ToString()
		if err != nil {
			continue
		}
		m[name] = value
	}
	return m
}

// BuildFilter joins tag equality filters into an FT.SEARCH query string ("*" when empty).
func BuildFilter(filters []db.TagFilter) string {
	if len(filters) == 0 {
		return "*"
	}
	parts := make([]string, 0, len(filters))
	for _, f := range filters {
		parts = append(parts, fmt.Sprintf("@%s:{%s}", f.Field, tagEscaper.Replace(f.Value)))
	}
	return strings.Join(parts, " ")
}

var tagEscaper = strings.NewReplacer(
	`\`, `\\`,
	",", "\\,",
	".", "\\.",
	"<", "\\<",
	">", "\\>",
	"{", "\\{",
	"}", "\\}",
	"[", "\\[",
	"]", "\\]",
	"\"", "\\\"",
	"'", "\\'",
	":", "\\:",
	";", "\\;",
	"!", "\\!",
	"@", "\\@",
	"#", "\\#",
	"$", "\\$",
	"%", "\\%",
	"^", "\\^",
	"&", "\\&",
	"*", "\\*",
	"(", "\\(",
	")", "\\)",
	"-", "\\-",
	"+", "\\+",
	"=", "\\=",
	"~", "\\~",
	"|", "\\|",
	"/", "\\/",
	" ", "\\ ",
)
