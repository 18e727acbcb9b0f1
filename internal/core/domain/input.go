package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseProductIDs parses the comma-separated product-id list the order form
// accepts, e.g. "1, 2,3". At least one id is required.
func ParseProductIDs(s string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid product id %q", part)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("no product ids given")
	}
	return ids, nil
}
