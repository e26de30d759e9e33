package handler

import (
	"fmt"
	"net/url"
	"strconv"
)

// queryInt reads an integer query parameter, falling back to def when the
// parameter is absent.
func queryInt(values url.Values, key string, def int) (int, error) {
	raw := values.Get(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("Parameter '%s' must be an integer", key)
	}
	return n, nil
}

func queryString(values url.Values, key, def string) string {
	if v := values.Get(key); v != "" {
		return v
	}
	return def
}
