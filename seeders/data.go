package seeders

import (
	"github.com/aarondl/null/v8"

	"gym-system/internal/dto"
)

var trainerSeeds = []dto.CreateTrainerDTO{
	{
		FirstName:       "John",
		LastName:        "Smith",
		Email:           "john.smith@gym.com",
		Phone:           null.StringFrom("555-010-0101"),
		Specialization:  "Strength Training",
		Specializations: []string{"Strength Training", "CrossFit"},
		Certifications:  null.StringFrom("NASM, ACE"),
		Status:          null.StringFrom("active"),
		Availability:    null.StringFrom("Full Day"),
		HireDate:        null.StringFrom("2022-01-15"),
		HourlyRate:      null.Float64From(75),
		Bio:             null.StringFrom("Certified strength coach with 10+ years experience"),
		ProfilePhoto:    null.StringFrom("john-smith.jpg"),
	},
	{
		FirstName:       "Sarah",
		LastName:        "Johnson",
		Email:           "sarah.johnson@gym.com",
		Phone:           null.StringFrom("555-010-0102"),
		Specialization:  "Yoga & Flexibility",
		Specializations: []string{"Yoga", "Flexibility Training", "Pilates"},
		Certifications:  null.StringFrom("RYT-200, Pilates Instructor"),
		Status:          null.StringFrom("active"),
		Availability:    null.StringFrom("Afternoons"),
		HireDate:        null.StringFrom("2021-06-20"),
		HourlyRate:      null.Float64From(65),
		Bio:             null.StringFrom("Yoga instructor specializing in flexibility and mindfulness"),
		ProfilePhoto:    null.StringFrom("sarah-johnson.jpg"),
	},
	{
		FirstName:       "Mike",
		LastName:        "Davis",
		Email:           "mike.davis@gym.com",
		Phone:           null.StringFrom("555-010-0103"),
		Specialization:  "Cardio & HIIT",
		Specializations: []string{"Cardio", "HIIT", "Boxing"},
		Certifications:  null.StringFrom("ISSA, CPR/AED"),
		Status:          null.StringFrom("active"),
		Availability:    null.StringFrom("Full Day"),
		HireDate:        null.StringFrom("2022-03-10"),
		HourlyRate:      null.Float64From(70),
		Bio:             null.StringFrom("Expert in high-intensity interval training and cardio conditioning"),
		ProfilePhoto:    null.StringFrom("mike-davis.jpg"),
	},
	{
		FirstName:       "Emily",
		LastName:        "Rodriguez",
		Email:           "emily.rodriguez@gym.com",
		Phone:           null.StringFrom("555-010-0104"),
		Specialization:  "Weight Loss",
		Specializations: []string{"Weight Loss", "Nutrition", "Personal Training"},
		Certifications:  null.StringFrom("NASM-PES, Health Coach"),
		Status:          null.StringFrom("active"),
		Availability:    null.StringFrom("Mornings"),
		HireDate:        null.StringFrom("2021-09-05"),
		HourlyRate:      null.Float64From(80),
		Bio:             null.StringFrom("Holistic approach to fitness combining training and nutrition"),
		ProfilePhoto:    null.StringFrom("emily-rodriguez.jpg"),
	},
	{
		FirstName:       "David",
		LastName:        "Chen",
		Email:           "david.chen@gym.com",
		Phone:           null.StringFrom("555-010-0105"),
		Specialization:  "Rehabilitation",
		Specializations: []string{"Physical Therapy", "Injury Prevention", "Rehabilitation"},
		Certifications:  null.StringFrom("PT, CSCS"),
		Status:          null.StringFrom("inactive"),
		Availability:    null.StringFrom("Full Day"),
		HireDate:        null.StringFrom("2020-11-12"),
		HourlyRate:      null.Float64From(90),
		Bio:             null.StringFrom("Specialized in injury recovery and prevention strategies"),
		ProfilePhoto:    null.StringFrom("david-chen.jpg"),
	},
	{
		FirstName:       "Jessica",
		LastName:        "Williams",
		Email:           "jessica.williams@gym.com",
		Phone:           null.StringFrom("555-010-0106"),
		Specialization:  "Women's Fitness",
		Specializations: []string{"Women's Fitness", "Pre/Post Natal", "General Training"},
		Certifications:  null.StringFrom("ACE, Pre/Post Natal Specialist"),
		Status:          null.StringFrom("active"),
		Availability:    null.StringFrom("Evenings"),
		HireDate:        null.StringFrom("2022-02-28"),
		HourlyRate:      null.Float64From(72),
		Bio:             null.StringFrom("Focused on empowering women through fitness and wellness"),
		ProfilePhoto:    null.StringFrom("jessica-williams.jpg"),
	},
}

var memberSeeds = []dto.CreateMemberDTO{
	{
		FirstName:             "Alice",
		LastName:              "Brown",
		Email:                 "alice.brown@email.com",
		Phone:                 null.StringFrom("555-100-1001"),
		MembershipType:        "premium",
		Status:                null.StringFrom("active"),
		MembershipStartDate:   null.StringFrom("2023-01-10"),
		MembershipEndDate:     null.StringFrom("2025-01-10"),
		EmergencyContactPhone: null.StringFrom("555-200-2001"),
		MedicalConditions:     null.StringFrom("None"),
	},
	{
		FirstName:             "Bob",
		LastName:              "Wilson",
		Email:                 "bob.wilson@email.com",
		Phone:                 null.StringFrom("555-100-1002"),
		MembershipType:        "basic",
		Status:                null.StringFrom("active"),
		MembershipStartDate:   null.StringFrom("2023-06-15"),
		MembershipEndDate:     null.StringFrom("2025-06-15"),
		EmergencyContactPhone: null.StringFrom("555-200-2002"),
		MedicalConditions:     null.StringFrom("None"),
	},
	{
		FirstName:             "Carol",
		LastName:              "Martinez",
		Email:                 "carol.martinez@email.com",
		Phone:                 null.StringFrom("555-100-1003"),
		MembershipType:        "premium",
		Status:                null.StringFrom("expired"),
		MembershipStartDate:   null.StringFrom("2022-03-20"),
		MembershipEndDate:     null.StringFrom("2024-03-20"),
		EmergencyContactPhone: null.StringFrom("555-200-2003"),
		MedicalConditions:     null.StringFrom("None"),
	},
}

var equipmentSeeds = []dto.CreateEquipmentDTO{
	{
		Name:                "Barbell Set",
		Category:            "Free Weights",
		Brand:               null.StringFrom("Rogue"),
		Quantity:            null.Float64From(5),
		PurchaseDate:        null.StringFrom("2022-01-20"),
		Condition:           null.StringFrom("good"),
		Status:              null.StringFrom("operational"),
		LastMaintenanceDate: null.StringFrom("2024-12-15"),
		Location:            null.StringFrom("Free Weights Area"),
		Description:         null.StringFrom("Olympic bars with plates"),
	},
	{
		Name:                "Treadmill",
		Category:            "Cardio",
		Brand:               null.StringFrom("Life Fitness"),
		Quantity:            null.Float64From(8),
		PurchaseDate:        null.StringFrom("2021-06-10"),
		Condition:           null.StringFrom("good"),
		Status:              null.StringFrom("operational"),
		LastMaintenanceDate: null.StringFrom("2025-01-10"),
		Location:            null.StringFrom("Cardio Zone"),
		Description:         null.StringFrom("Commercial grade machines"),
	},
	{
		Name:         "Yoga Mats",
		Category:     "Accessories",
		Brand:        null.StringFrom("Liforme"),
		Quantity:     null.Float64From(30),
		PurchaseDate: null.StringFrom("2023-02-14"),
		Condition:    null.StringFrom("good"),
		Status:       null.StringFrom("operational"),
		Location:     null.StringFrom("Yoga Studio"),
		Description:  null.StringFrom("Premium non-slip mats"),
	},
	{
		Name:                "Dumbbells",
		Category:            "Free Weights",
		Brand:               null.StringFrom("Powerblock"),
		Quantity:            null.Float64From(50),
		PurchaseDate:        null.StringFrom("2022-05-22"),
		Condition:           null.StringFrom("good"),
		Status:              null.StringFrom("operational"),
		LastMaintenanceDate: null.StringFrom("2024-11-20"),
		Location:            null.StringFrom("Free Weights Area"),
		Description:         null.StringFrom("Adjustable dumbbells 5-50 lbs"),
	},
	{
		Name:                "Leg Press Machine",
		Category:            "Machines",
		Brand:               null.StringFrom("Hammer Strength"),
		Quantity:            null.Float64From(2),
		PurchaseDate:        null.StringFrom("2021-09-30"),
		Condition:           null.StringFrom("good"),
		Status:              null.StringFrom("operational"),
		LastMaintenanceDate: null.StringFrom("2024-12-01"),
		Location:            null.StringFrom("Machine Zone"),
		Description:         null.StringFrom("Commercial Hammer Strength equipment"),
	},
}
