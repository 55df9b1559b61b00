package entity

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 50
)

// PageRequest is an offset page: Skip() records are passed over, then at most Limit returned.
type PageRequest struct {
	Page  int64 `json:"page" validate:"gte=1"`
	Limit int64 `json:"limit" validate:"gte=1,lte=50"`
}

func NewPageRequest(page, limit int64) (PageRequest, error) {
	p := PageRequest{Page: page, Limit: limit}
	if err := p.Validate(); err != nil {
		return PageRequest{}, err
	}
	return p, nil
}

func (p PageRequest) Validate() error {
	return Validate(p)
}

func (p PageRequest) Skip() int64 {
	return (p.Page - 1) * p.Limit
}

// PageCount is ceil(total/limit).
func PageCount(total, limit int64) int64 {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

type SchoolPage struct {
	Schools []School `json:"schools"`
	Total   int64    `json:"total"`
	Page    int64    `json:"page"`
	Pages   int64    `json:"pages"`
}
