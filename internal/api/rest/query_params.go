package rest

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/cedrichille/monopoly-companion-app/internal/api/shared/constants"
)

// ListPropertiesQueryParams holds query parameters for GET /properties
type ListPropertiesQueryParams struct {
	GameVersionID int64  `form:"game_version_id"`
	Search        string `form:"search"`
	Limit         int    `form:"limit,default=0"`
}

// ParseListPropertiesQuery parses query parameters for GET /properties
func ParseListPropertiesQuery(c *gin.Context) (*ListPropertiesQueryParams, error) {
	var params ListPropertiesQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	if params.Limit < 0 {
		return nil, errors.New("limit must not be negative")
	}
	// A search without an explicit limit returns the best few matches
	if params.Search != "" && params.Limit == 0 {
		params.Limit = constants.DEFAULT_PROPERTY_SEARCH_MAX
	}
	if params.Limit > constants.MAX_PAGE_SIZE {
		params.Limit = constants.MAX_PAGE_SIZE
	}

	return &params, nil
}

// OwnershipQueryParams holds query parameters for GET /game/ownership
type OwnershipQueryParams struct {
	OwnerID *int64  `form:"owner_id"`
	Group   *string `form:"group"`
}

// ParseOwnershipQuery parses query parameters for GET /game/ownership
func ParseOwnershipQuery(c *gin.Context) (*OwnershipQueryParams, error) {
	var params OwnershipQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	return &params, nil
}

// NetWorthLogQueryParams holds query parameters for GET /game/net-worth/log
type NetWorthLogQueryParams struct {
	PlayerID *int64 `form:"player_id"`
	Turn     *int   `form:"turn"`
}

// ParseNetWorthLogQuery parses query parameters for GET /game/net-worth/log
func ParseNetWorthLogQuery(c *gin.Context) (*NetWorthLogQueryParams, error) {
	var params NetWorthLogQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	if params.Turn != nil && *params.Turn < 1 {
		return nil, errors.New("turn must be at least 1")
	}
	return &params, nil
}

// ListTransactionsQueryParams holds query parameters for GET /game/transactions
type ListTransactionsQueryParams struct {
	// Filters
	PlayerID *int64 `form:"player_id"`
	Turn     *int   `form:"turn"`

	// Pagination
	Limit  int    `form:"limit,default=50"`
	Offset uint64 `form:"offset,default=0"`
}

// ParseListTransactionsQuery parses query parameters for GET /game/transactions
func ParseListTransactionsQuery(c *gin.Context) (*ListTransactionsQueryParams, error) {
	var params ListTransactionsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	if params.Turn != nil && *params.Turn < 1 {
		return nil, errors.New("turn must be at least 1")
	}

	// Cap limit
	if params.Limit <= 0 {
		params.Limit = constants.DEFAULT_TRANSACTIONS_LIMIT
	}
	if params.Limit > constants.MAX_PAGE_SIZE {
		params.Limit = constants.MAX_PAGE_SIZE
	}

	return &params, nil
}
