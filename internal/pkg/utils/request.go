package utils

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"superadmin-service/internal/pkg/constvars"
	"superadmin-service/internal/pkg/exceptions"
)

type PageParams struct {
	Page  int
	Limit int
}

// ParsePageParams reads page and limit, defaulting when absent. Values out
// of range are left for validation to reject.
func ParsePageParams(query url.Values) (PageParams, error) {
	params := PageParams{Page: constvars.DefaultPage, Limit: constvars.DefaultPageLimit}

	if raw := strings.TrimSpace(query.Get(constvars.QueryParamPage)); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return params, exceptions.ErrCannotParseQuery(err, constvars.QueryParamPage)
		}
		params.Page = page
	}

	if raw := strings.TrimSpace(query.Get(constvars.QueryParamLimit)); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return params, exceptions.ErrCannotParseQuery(err, constvars.QueryParamLimit)
		}
		params.Limit = limit
	}
	return params, nil
}

// ParseStatusFilter drops the "all" filter the dashboard sends by default.
func ParseStatusFilter(query url.Values) string {
	status := strings.TrimSpace(query.Get(constvars.QueryParamStatus))
	if strings.EqualFold(status, constvars.StatusFilterAll) {
		return ""
	}
	return status
}

func ParseOptionalBool(query url.Values, key string) (*bool, error) {
	raw := strings.TrimSpace(query.Get(key))
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, exceptions.ErrCannotParseQuery(err, key)
	}
	return &value, nil
}

func ParseOptionalInt(query url.Values, key string) (*int, error) {
	raw := strings.TrimSpace(query.Get(key))
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, exceptions.ErrCannotParseQuery(err, key)
	}
	return &value, nil
}

func QueryString(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}

// QueryBuilder collects the non-empty parameters forwarded upstream.
type QueryBuilder struct {
	values url.Values
}

func NewQueryBuilder() *QueryBuilder {
	return &QueryBuilder{values: url.Values{}}
}

func (b *QueryBuilder) String(key, value string) *QueryBuilder {
	if value != "" {
		b.values.Set(key, value)
	}
	return b
}

func (b *QueryBuilder) Int(key string, value int) *QueryBuilder {
	if value != 0 {
		b.values.Set(key, strconv.Itoa(value))
	}
	return b
}

func (b *QueryBuilder) OptionalInt(key string, value *int) *QueryBuilder {
	if value != nil {
		b.values.Set(key, strconv.Itoa(*value))
	}
	return b
}

func (b *QueryBuilder) OptionalBool(key string, value *bool) *QueryBuilder {
	if value != nil {
		b.values.Set(key, strconv.FormatBool(*value))
	}
	return b
}

func (b *QueryBuilder) Values() url.Values {
	return b.values
}
