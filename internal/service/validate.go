package service

import (
	"kicker-tracker/internal/domain"
	"strings"
)

// ValidateDraftID trims raw and accepts it only if one or more ASCII digits remain.
func ValidateDraftID(raw string) (string, error) {
	id := strings.TrimSpace(raw)
	if id == "" {
		return "", domain.ErrInvalidDraftID
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '0' || id[i] > '9' {
			return "", domain.ErrInvalidDraftID
		}
	}
	return id, nil
}
