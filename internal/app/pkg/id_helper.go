package pkg

import (
	"strings"

	"github.com/google/uuid"
	"github.com/safatanc/course-library/internal/app/errors"
)

// ParseIDList parses a comma-separated id list, optionally wrapped in parentheses
// as in "(id1,id2)"
func ParseIDList(raw string) ([]uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimSuffix(strings.TrimPrefix(raw, "("), ")")
	if strings.TrimSpace(raw) == "" {
		return nil, errors.NewBadRequestError("No ids provided")
	}

	parts := strings.Split(raw, ",")
	ids := make([]uuid.UUID, 0, len(parts))
	for _, part := range parts {
		id, err := uuid.Parse(strings.TrimSpace(part))
		if err != nil {
			return nil, errors.NewBadRequestError("Invalid id format: " + strings.TrimSpace(part))
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// JoinIDs formats ids the way ParseIDList reads them
func JoinIDs(ids []uuid.UUID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}
	return "(" + strings.Join(parts, ",") + ")"
}
