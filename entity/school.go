package entity

import "time"

// School types seen in the directory. The set is open: any string is accepted.
const (
	DaySchool      = "Day School"
	BoardingSchool = "Boarding School"
	PlaySchool     = "Play School"
	PUCollege      = "PU College"
)

// School is a directory entry in the schools collection.
type School struct {
	ID              string        `json:"id" bson:"id"`
	Name            string        `json:"name" bson:"name"`
	Type            string        `json:"type" bson:"type"`
	Board           string        `json:"board" bson:"board"`
	Location        Location      `json:"location" bson:"location"`
	Fees            Fees          `json:"fees" bson:"fees"`
	Facilities      []string      `json:"facilities" bson:"facilities"`
	Description     string        `json:"description" bson:"description"`
	Images          []string      `json:"images" bson:"images"`
	Contact         Contact       `json:"contact" bson:"contact"`
	AdmissionInfo   AdmissionInfo `json:"admission_info" bson:"admission_info"`
	Rating          float64       `json:"rating" bson:"rating"`
	ReviewsCount    int64         `json:"reviews_count" bson:"reviews_count"`
	EstablishedYear int           `json:"established_year" bson:"established_year"`
	Website         *string       `json:"website" bson:"website"`
	CreatedAt       time.Time     `json:"created_at" bson:"created_at"`
}

type Location struct {
	City    string            `json:"city" bson:"city" validate:"required"`
	State   string            `json:"state" bson:"state" validate:"required"`
	Address string            `json:"address" bson:"address" validate:"required"`
	Extra   map[string]string `json:"-" bson:",inline"`
}

func (l Location) MarshalJSON() ([]byte, error) {
	type plain Location
	return marshalInline(plain(l), l.Extra)
}

func (l *Location) UnmarshalJSON(data []byte) error {
	type plain Location
	var p plain
	extra, err := unmarshalInline[string](data, &p, "city", "state", "address")
	if err != nil {
		return err
	}
	*l = Location(p)
	l.Extra = extra
	return nil
}

type Fees struct {
	AnnualFee    int64 `json:"annual_fee" bson:"annual_fee"`
	AdmissionFee int64 `json:"admission_fee" bson:"admission_fee"`
}

type Contact struct {
	Phone   string            `json:"phone,omitempty" bson:"phone,omitempty"`
	Email   string            `json:"email,omitempty" bson:"email,omitempty"`
	Website string            `json:"website,omitempty" bson:"website,omitempty"`
	Extra   map[string]string `json:"-" bson:",inline"`
}

func (c Contact) MarshalJSON() ([]byte, error) {
	type plain Contact
	return marshalInline(plain(c), c.Extra)
}

func (c *Contact) UnmarshalJSON(data []byte) error {
	type plain Contact
	var p plain
	extra, err := unmarshalInline[string](data, &p, "phone", "email", "website")
	if err != nil {
		return err
	}
	*c = Contact(p)
	c.Extra = extra
	return nil
}

type AdmissionInfo struct {
	AdmissionStart    string         `json:"admission_start,omitempty" bson:"admission_start,omitempty"`
	AdmissionEnd      string         `json:"admission_end,omitempty" bson:"admission_end,omitempty"`
	AgeCriteria       string         `json:"age_criteria,omitempty" bson:"age_criteria,omitempty"`
	DocumentsRequired []string       `json:"documents_required,omitempty" bson:"documents_required,omitempty"`
	Extra             map[string]any `json:"-" bson:",inline"`
}

func (a AdmissionInfo) MarshalJSON() ([]byte, error) {
	type plain AdmissionInfo
	return marshalInline(plain(a), a.Extra)
}

func (a *AdmissionInfo) UnmarshalJSON(data []byte) error {
	type plain AdmissionInfo
	var p plain
	extra, err := unmarshalInline[any](data, &p, "admission_start", "admission_end", "age_criteria", "documents_required")
	if err != nil {
		return err
	}
	*a = AdmissionInfo(p)
	a.Extra = extra
	return nil
}

type FeesInput struct {
	AnnualFee    *int64 `json:"annual_fee" validate:"required,gte=0"`
	AdmissionFee *int64 `json:"admission_fee" validate:"required,gte=0"`
}

// SchoolInput carries the caller-supplied fields of a new school.
// Pointers distinguish a missing field from a zero value.
type SchoolInput struct {
	Name            string         `json:"name" validate:"required"`
	Type            string         `json:"type" validate:"required"`
	Board           string         `json:"board" validate:"required"`
	Location        *Location      `json:"location" validate:"required"`
	Fees            *FeesInput     `json:"fees" validate:"required"`
	Facilities      []string       `json:"facilities" validate:"required"`
	Description     *string        `json:"description" validate:"required"`
	Images          []string       `json:"images"`
	Contact         *Contact       `json:"contact" validate:"required"`
	AdmissionInfo   *AdmissionInfo `json:"admission_info" validate:"required"`
	Rating          *float64       `json:"rating"`
	ReviewsCount    *int64         `json:"reviews_count" validate:"omitempty,gte=0"`
	EstablishedYear *int           `json:"established_year" validate:"required"`
	Website         *string        `json:"website"`
}

// NewSchool validates in and builds a School with a fresh id and creation time.
func NewSchool(in SchoolInput) (*School, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}

	images := in.Images
	if images == nil {
		images = []string{}
	}

	return &School{
		ID:       newID(),
		Name:     in.Name,
		Type:     in.Type,
		Board:    in.Board,
		Location: *in.Location,
		Fees: Fees{
			AnnualFee:    *in.Fees.AnnualFee,
			AdmissionFee: *in.Fees.AdmissionFee,
		},
		Facilities:      in.Facilities,
		Description:     *in.Description,
		Images:          images,
		Contact:         *in.Contact,
		AdmissionInfo:   *in.AdmissionInfo,
		Rating:          deref(in.Rating),
		ReviewsCount:    deref(in.ReviewsCount),
		EstablishedYear: *in.EstablishedYear,
		Website:         in.Website,
		CreatedAt:       now(),
	}, nil
}
