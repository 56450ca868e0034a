package queries

import "granefapi/pkg/utils"

// CustomQueryParams carries a free-form query supplied by the caller
type CustomQueryParams struct {
	Query  string `json:"query" validate:"required"`
	Type   string `json:"type,omitempty"`
	Layout string `json:"layout,omitempty"`
}

// Build validates the parameters and passes the query through unchanged
func (p CustomQueryParams) Build() (Request, error) {
	if err := utils.ValidateStruct(p); err != nil {
		return Request{}, err
	}
	return Request{Body: p.Query}, nil
}
