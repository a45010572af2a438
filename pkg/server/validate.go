package server

import (
	"errors"
	"fmt"

	"github.com/bastiangx/typeahead/internal/utils"
	"github.com/bastiangx/typeahead/pkg/config"
)

var (
	// ErrPrefixTooShort is returned for prefixes below min_prefix.
	ErrPrefixTooShort = errors.New("prefix too short")
	// ErrPrefixTooLong is returned for prefixes above max_prefix.
	ErrPrefixTooLong = errors.New("prefix too long")
)

// CheckRequest applies the [server] rules to a completion request. It
// returns the limit to use and whether the prefix is filtered out, in which
// case the reply is empty without asking the model.
func CheckRequest(cfg *config.Config, prefix string, limit int) (int, bool, error) {
	server := cfg.Server
	if len(prefix) < server.MinPrefix {
		return 0, false, fmt.Errorf("%w: must be at least %d characters", ErrPrefixTooShort, server.MinPrefix)
	}
	if len(prefix) > server.MaxPrefix {
		return 0, false, fmt.Errorf("%w: exceeds maximum length of %d", ErrPrefixTooLong, server.MaxPrefix)
	}

	if limit <= 0 {
		limit = cfg.Model.TopK
	}
	limit = min(limit, server.MaxLimit)

	filtered := server.EnableFilter && prefix != "" && !utils.IsValidInput(prefix)
	return limit, filtered, nil
}
