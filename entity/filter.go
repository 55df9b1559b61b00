package entity

// SchoolFilter holds the optional listing filters. A nil field adds no
// constraint; a non-nil zero value is a real constraint.
type SchoolFilter struct {
	SchoolType *string
	Board      *string
	City       *string
	MinFee     *int64
	MaxFee     *int64
}

// FilterOptions lists the distinct values a client can filter by.
type FilterOptions struct {
	SchoolTypes []string `json:"school_types"`
	Boards      []string `json:"boards"`
	Cities      []string `json:"cities"`
}
