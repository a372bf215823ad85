package request

const (
	defaultLimit = 20
	maxLimit     = 100
)

// ListParams holds the shared pagination query parameters.
type ListParams struct {
	Limit  int `form:"limit" binding:"omitempty,min=1"`
	Offset int `form:"offset" binding:"omitempty,min=0"`
}

// Normalize applies defaults and clamps the limit to the allowed maximum.
func (p *ListParams) Normalize() {
	if p.Limit <= 0 {
		p.Limit = defaultLimit
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}
