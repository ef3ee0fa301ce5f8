package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"ShoppingList/internal/cli/api"
)

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

// parseDate принимает YYYY-MM-DD.
func parseDate(s string) (string, error) {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return "", fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	return s, nil
}

// parseAssignments разбирает аргументы вида field=value.
// Имена полей CLI переводятся в поля API через apiField, conv приводит значение к нужному типу.
func parseAssignments(args []string, conv map[string]func(string) (any, error)) (api.Fields, error) {
	fields := api.Fields{}
	for _, a := range args {
		key, val, ok := strings.Cut(a, "=")
		if !ok || key == "" {
			return nil, ErrUsage
		}
		c, known := conv[key]
		if !known {
			return nil, fmt.Errorf("unknown field %q", key)
		}
		v, err := c(val)
		if err != nil {
			return nil, err
		}
		fields[apiField(key)] = v
	}
	if len(fields) == 0 {
		return nil, ErrUsage
	}
	return fields, nil
}

func apiField(key string) string {
	switch key {
	case "store":
		return "store_id"
	case "need_by":
		return "need_by_date"
	case "checked":
		return "is_checked"
	}
	return key
}

func asString(v string) (any, error) { return v, nil }

func asID(v string) (any, error) {
	id, err := parseID(v)
	if err != nil {
		return nil, err
	}
	return id, nil
}

func asBool(v string) (any, error) {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, fmt.Errorf("invalid boolean %q", v)
	}
	return b, nil
}

// asOptionalDate: "none" или пустое значение очищает дату.
func asOptionalDate(v string) (any, error) {
	if v == "" || v == "none" {
		return nil, nil
	}
	d, err := parseDate(v)
	if err != nil {
		return nil, err
	}
	return d, nil
}
