package store

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"meal-sharing/utils"

	"github.com/pkg/errors"
)

// Recognized query parameters for the meals listing. Anything else fails the
// whole request.
var allowedMealParams = []string{
	"maxprice",
	"availablereservations",
	"title",
	"dateafter",
	"datebefore",
	"limit",
	"sortkey",
	"sortdir",
}

var allowedSortKeys = []string{"when", "max_reservations", "price"}
var allowedSortDirs = []string{"asc", "desc"}

// MealQuery is the validated, typed form of the meals listing parameters.
// All filters are optional and combined with AND; SortKey empty means the
// default ordering by id ascending.
type MealQuery struct {
	MaxPrice      *float64
	AvailableOnly bool
	Title         string
	DateAfter     *time.Time
	DateBefore    *time.Time
	Limit         *int64
	SortKey       string
	SortDir       string
}

// ParseMealQuery validates raw query parameters into a MealQuery. Parameter
// names are matched case-insensitively; unknown names fail the request
// naming every offender. Each recognized parameter is checked on its own and
// the first failure wins.
func ParseMealQuery(values url.Values) (*MealQuery, error) {
	params := make(map[string]string, len(values))
	for key, vals := range values {
		if len(vals) == 0 {
			continue
		}
		params[strings.ToLower(key)] = vals[0]
	}

	var invalid []string
	for key := range params {
		if !containsString(allowedMealParams, key) {
			invalid = append(invalid, key)
		}
	}
	if len(invalid) > 0 {
		sort.Strings(invalid)
		return nil, fmt.Errorf("Invalid query parameter(s): %s", strings.Join(invalid, ", "))
	}

	q := &MealQuery{SortDir: "asc"}

	if raw, ok := params["maxprice"]; ok {
		maxPrice, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, errors.New("Invalid maxPrice")
		}
		q.MaxPrice = &maxPrice
	}

	if raw, ok := params["availablereservations"]; ok {
		value := strings.ToLower(raw)
		if value != "true" {
			return nil, fmt.Errorf("availableReservations must be 'true'; you entered: '%s'", value)
		}
		q.AvailableOnly = true
	}

	if raw, ok := params["title"]; ok {
		q.Title = strings.TrimSpace(raw)
	}

	if raw, ok := params["dateafter"]; ok {
		date, err := utils.ParseTimestamp(raw)
		if err != nil {
			return nil, errors.New("Invalid dateAfter format. Use YYYY-MM-DD")
		}
		q.DateAfter = &date
	}

	if raw, ok := params["datebefore"]; ok {
		date, err := utils.ParseTimestamp(raw)
		if err != nil {
			return nil, errors.New("Invalid dateBefore format. Use YYYY-MM-DD")
		}
		q.DateBefore = &date
	}

	if raw, ok := params["limit"]; ok {
		limit, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil || limit <= 0 {
			return nil, errors.New("Invalid limit value. Must be a positive number.")
		}
		q.Limit = &limit
	}

	if raw, ok := params["sortkey"]; ok {
		key := strings.ToLower(raw)
		if !containsString(allowedSortKeys, key) {
			return nil, fmt.Errorf("Invalid sortKey. Allowed keys: %s", strings.Join(allowedSortKeys, ", "))
		}
		q.SortKey = key
	}

	if raw, ok := params["sortdir"]; ok {
		if _, hasKey := params["sortkey"]; !hasKey {
			return nil, errors.New("sortDir parameter requires sortKey to be provided as well")
		}
		dir := strings.ToLower(raw)
		if !containsString(allowedSortDirs, dir) {
			return nil, fmt.Errorf("Invalid sortDir. Allowed values: %s", strings.Join(allowedSortDirs, ", "))
		}
		q.SortDir = dir
	}

	return q, nil
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
