package entity

import "time"

// User types seen in the directory. The set is open.
const (
	ParentUser  = "parent"
	StudentUser = "student"
	AlumniUser  = "alumni"
	AdminUser   = "admin"
)

type User struct {
	ID        string       `json:"id" bson:"id"`
	Name      string       `json:"name" bson:"name"`
	Email     string       `json:"email" bson:"email"`
	Phone     string       `json:"phone" bson:"phone"`
	UserType  string       `json:"user_type" bson:"user_type"`
	Location  UserLocation `json:"location" bson:"location"`
	CreatedAt time.Time    `json:"created_at" bson:"created_at"`
}

type UserLocation struct {
	City  string            `json:"city" bson:"city" validate:"required"`
	State string            `json:"state" bson:"state"`
	Extra map[string]string `json:"-" bson:",inline"`
}

func (l UserLocation) MarshalJSON() ([]byte, error) {
	type plain UserLocation
	return marshalInline(plain(l), l.Extra)
}

func (l *UserLocation) UnmarshalJSON(data []byte) error {
	type plain UserLocation
	var p plain
	extra, err := unmarshalInline[string](data, &p, "city", "state")
	if err != nil {
		return err
	}
	*l = UserLocation(p)
	l.Extra = extra
	return nil
}

type UserInput struct {
	Name     string        `json:"name" validate:"required"`
	Email    string        `json:"email" validate:"required"`
	Phone    string        `json:"phone" validate:"required"`
	UserType string        `json:"user_type" validate:"required"`
	Location *UserLocation `json:"location" validate:"required"`
}

func NewUser(in UserInput) (*User, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}
	return &User{
		ID:        newID(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		UserType:  in.UserType,
		Location:  *in.Location,
		CreatedAt: now(),
	}, nil
}

func (u *User) IsAlumni() bool {
	return u.UserType == AlumniUser
}
