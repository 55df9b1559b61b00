package seed

import "schooldekho/entity"

func ptr[T any](v T) *T { return &v }

func fees(annual, admission int64) *entity.FeesInput {
	return &entity.FeesInput{AnnualFee: ptr(annual), AdmissionFee: ptr(admission)}
}

func contact(phone, email, website string) *entity.Contact {
	return &entity.Contact{Phone: phone, Email: email, Website: website}
}

func admission(start, end, age string, docs ...string) *entity.AdmissionInfo {
	return &entity.AdmissionInfo{
		AdmissionStart:    start,
		AdmissionEnd:      end,
		AgeCriteria:       age,
		DocumentsRequired: docs,
	}
}

const unsplash = "https://images.unsplash.com/"

// Schools are the demo directory entries, in listing order.
func Schools() []entity.SchoolInput {
	return []entity.SchoolInput{
		{
			Name:     "Delhi Public School, R.K. Puram",
			Type:     entity.DaySchool,
			Board:    "CBSE",
			Location: &entity.Location{City: "Delhi", State: "Delhi", Address: "Sector 12, R.K. Puram, New Delhi - 110022"},
			Fees:     fees(150000, 25000),
			Facilities: []string{
				"Smart Classrooms", "Computer Lab", "Science Labs", "Library",
				"Sports Complex", "Swimming Pool", "Auditorium", "Cafeteria",
			},
			Description: ptr("One of India's premier educational institutions, DPS R.K. Puram has been providing quality education since 1972."),
			Images: []string{
				unsplash + "photo-1580582932707-520aed937b7b?w=800",
				unsplash + "photo-1523050854058-8df90110c9f1?w=800",
			},
			Contact:         contact("+91-11-26174941", "info@dpsrkp.net", "https://www.dpsrkp.net"),
			AdmissionInfo:   admission("December 2024", "February 2025", "As per Delhi Government norms", "Birth Certificate", "Address Proof", "Photos"),
			Rating:          ptr(4.5),
			ReviewsCount:    ptr(int64(324)),
			EstablishedYear: ptr(1972),
			Website:         ptr("https://www.dpsrkp.net"),
		},
		{
			Name:     "Kendriya Vidyalaya No. 1, Mumbai",
			Type:     entity.DaySchool,
			Board:    "CBSE",
			Location: &entity.Location{City: "Mumbai", State: "Maharashtra", Address: "Colaba, Mumbai - 400005"},
			Fees:     fees(25000, 2000),
			Facilities: []string{
				"Computer Lab", "Science Labs", "Library", "Playground", "Music Room", "Art Room",
			},
			Description: ptr("A central government school providing quality education with nominal fees."),
			Images: []string{
				unsplash + "photo-1523050854058-8df90110c9f1?w=800",
				unsplash + "photo-1562774053-701939374585?w=800",
			},
			Contact:         contact("+91-22-22161234", "kv1mumbai@kvs.gov.in", "https://no1mumbai.kvs.ac.in"),
			AdmissionInfo:   admission("March 2025", "April 2025", "6 years for Class I", "Birth Certificate", "Transfer Certificate", "Photos"),
			Rating:          ptr(4.2),
			ReviewsCount:    ptr(int64(156)),
			EstablishedYear: ptr(1963),
			Website:         ptr("https://no1mumbai.kvs.ac.in"),
		},
		{
			Name:     "The Doon School",
			Type:     entity.BoardingSchool,
			Board:    "CBSE",
			Location: &entity.Location{City: "Dehradun", State: "Uttarakhand", Address: "The Mall, Dehradun - 248001"},
			Fees:     fees(800000, 100000),
			Facilities: []string{
				"Boarding Facilities", "Sports Complex", "Swimming Pool", "Library", "Labs",
				"Music Room", "Art Studio", "Infirmary", "Dining Hall",
			},
			Description: ptr("India's most prestigious all-boys boarding school, established in 1935."),
			Images: []string{
				unsplash + "photo-1562774053-701939374585?w=800",
				unsplash + "photo-1580582932707-520aed937b7b?w=800",
			},
			Contact:         contact("+91-135-2526406", "admissions@doonschool.com", "https://www.doonschool.com"),
			AdmissionInfo:   admission("August 2024", "December 2024", "11-13 years for entry", "Birth Certificate", "Medical Certificate", "Previous School Records"),
			Rating:          ptr(4.8),
			ReviewsCount:    ptr(int64(89)),
			EstablishedYear: ptr(1935),
			Website:         ptr("https://www.doonschool.com"),
		},
		{
			Name:     "Little Angels Preschool",
			Type:     entity.PlaySchool,
			Board:    "Play Way Method",
			Location: &entity.Location{City: "Bangalore", State: "Karnataka", Address: "Koramangala, Bangalore - 560034"},
			Fees:     fees(45000, 5000),
			Facilities: []string{
				"Play Area", "Activity Rooms", "Toy Library", "Sand Pit", "Music Room", "Art Corner", "Safe Transport",
			},
			Description: ptr("A nurturing environment for early childhood education with play-based learning."),
			Images: []string{
				unsplash + "photo-1587654780291-39c9404d746b?w=800",
				unsplash + "photo-1503676260728-1c00da094a0b?w=800",
			},
			Contact:         contact("+91-80-25551234", "info@littleangels.edu.in", "https://www.littleangels.edu.in"),
			AdmissionInfo:   admission("January 2025", "March 2025", "2-5 years", "Birth Certificate", "Photos", "Medical Certificate"),
			Rating:          ptr(4.4),
			ReviewsCount:    ptr(int64(78)),
			EstablishedYear: ptr(2010),
			Website:         ptr("https://www.littleangels.edu.in"),
		},
		{
			Name:     "Christ Junior College",
			Type:     entity.PUCollege,
			Board:    "Karnataka PUC",
			Location: &entity.Location{City: "Bangalore", State: "Karnataka", Address: "Hosur Road, Bangalore - 560029"},
			Fees:     fees(85000, 15000),
			Facilities: []string{
				"Well-equipped Labs", "Library", "Sports Facilities", "Auditorium", "Computer Center", "Cafeteria",
			},
			Description: ptr("Premier pre-university college offering Science, Commerce, and Arts streams."),
			Images: []string{
				unsplash + "photo-1562774053-701939374585?w=800",
				unsplash + "photo-1523050854058-8df90110c9f1?w=800",
			},
			Contact:         contact("+91-80-40129200", "admissions@christjuniorcollege.in", "https://www.christjuniorcollege.in"),
			AdmissionInfo:   admission("May 2025", "July 2025", "Completed 10th standard", "10th Marks Card", "Transfer Certificate", "Caste Certificate"),
			Rating:          ptr(4.3),
			ReviewsCount:    ptr(int64(134)),
			EstablishedYear: ptr(1969),
			Website:         ptr("https://www.christjuniorcollege.in"),
		},
		{
			Name:     "DAV Public School",
			Type:     entity.DaySchool,
			Board:    "CBSE",
			Location: &entity.Location{City: "Chennai", State: "Tamil Nadu", Address: "Mogappair, Chennai - 600037"},
			Fees:     fees(65000, 10000),
			Facilities: []string{
				"Smart Classrooms", "Science Labs", "Computer Lab", "Library", "Sports Ground", "Music Room",
			},
			Description:     ptr("Part of the DAV network providing value-based quality education."),
			Images:          []string{unsplash + "photo-1580582932707-520aed937b7b?w=800"},
			Contact:         contact("+91-44-26561234", "davchennai@davschools.edu.in", "https://www.davchennai.edu.in"),
			AdmissionInfo:   admission("December 2024", "February 2025", "As per CBSE norms", "Birth Certificate", "Transfer Certificate", "Photos"),
			Rating:          ptr(4.1),
			ReviewsCount:    ptr(int64(67)),
			EstablishedYear: ptr(1995),
			Website:         ptr("https://www.davchennai.edu.in"),
		},
	}
}

func Users() []entity.UserInput {
	return []entity.UserInput{
		{
			Name:     "Rajesh Kumar",
			Email:    "rajesh@example.com",
			Phone:    "+91-9876543210",
			UserType: entity.ParentUser,
			Location: &entity.UserLocation{City: "Delhi", State: "Delhi"},
		},
		{
			Name:     "Priya Sharma",
			Email:    "priya@example.com",
			Phone:    "+91-9876543211",
			UserType: entity.ParentUser,
			Location: &entity.UserLocation{City: "Mumbai", State: "Maharashtra"},
		},
	}
}
