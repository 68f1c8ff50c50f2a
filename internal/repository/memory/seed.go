package memory

import (
	"github.com/google/uuid"

	"github.com/donor-matching-service/internal/domain"
)

// oxygenNamespace делает ID поставщиков стабильными между запусками
var oxygenNamespace = uuid.MustParse("6f1c1f64-2f7e-4b43-9a55-0d4a3c1b7e21")

// OxygenSupplierID returns the deterministic seed ID for a supplier name.
func OxygenSupplierID(name string) string {
	return uuid.NewSHA1(oxygenNamespace, []byte(name)).String()
}

// SeedBloodBanks - банки крови Бангалора
func SeedBloodBanks() []domain.Candidate {
	bank := func(id, name string, lat, lon float64, hours, contact, email string, units [8]int) domain.Candidate {
		inventory := make(map[domain.BloodGroup]int, len(units))
		for i, g := range domain.AllBloodGroups() {
			inventory[g] = units[i]
		}
		return domain.NewBloodBankCandidate(id, name, "Bangalore", &domain.Coordinate{Lat: lat, Lon: lon},
			domain.BloodBankInfo{
				Inventory:      inventory,
				OperatingHours: hours,
				IsOpen:         true,
				Contact:        contact,
				Email:          email,
			})
	}

	// O+ O- A+ A- B+ B- AB+ AB-
	return []domain.Candidate{
		bank("a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a11", "City Blood Bank", 12.9716, 77.5946,
			"24/7", "+91 9876543210", "contact@citybloodbank.com", [8]int{50, 20, 45, 15, 40, 18, 25, 12}),
		bank("b0eebc99-9c0b-4ef8-bb6d-6bb9bd380a12", "Central Blood Center", 12.9782, 77.6408,
			"8:00 AM - 8:00 PM", "+91 9876543211", "info@centralblood.com", [8]int{35, 15, 30, 12, 28, 14, 20, 10}),
		bank("c0eebc99-9c0b-4ef8-bb6d-6bb9bd380a13", "Life Care Blood Bank", 12.9342, 77.6092,
			"24/7", "+91 9876543212", "support@lifecareblood.com", [8]int{42, 18, 38, 16, 35, 15, 22, 11}),
	}
}

// SeedOxygenSuppliers - поставщики кислорода в Колатуре (Ченнаи)
func SeedOxygenSuppliers() []domain.Candidate {
	supplier := func(name, address, phone, email, hours string, lat, lon float64) domain.Candidate {
		return domain.NewOxygenCandidate(OxygenSupplierID(name), name, "Kolathur, Chennai",
			&domain.Coordinate{Lat: lat, Lon: lon},
			domain.OxygenInfo{
				Address:      address,
				Phone:        phone,
				Email:        email,
				WorkingHours: hours,
			})
	}

	return []domain.Candidate{
		supplier("S P Health Care", "123 Main Street, Kolathur, Chennai-600099",
			"+91 1234567891", "SPHealthCare@gmail.com", "9:00 AM to 6:00 PM", 13.0827, 80.2707),
		supplier("Chennai Home Care", "456 Hospital Road, Kolathur, Chennai-600099",
			"+91 9876543210", "ChennaiHomeCare@gmail.com", "8:00 AM to 8:00 PM", 13.0825, 80.2705),
		supplier("Ns Oxy Care", "789 Health Avenue, Kolathur, Chennai-600099",
			"+91 8765432109", "NsOxyCare@gmail.com", "9:30 AM to 7:00 PM", 13.0830, 80.2710),
		supplier("Amos Surgicals", "321 Medical Lane, Kolathur, Chennai-600099",
			"+91 7654321098", "AmosSurgicals@gmail.com", "8:30 AM to 6:30 PM", 13.0823, 80.2703),
	}
}

// NewSeededStore returns a Store holding the seed blood banks and oxygen suppliers.
func NewSeededStore() *Store {
	s := NewStore()
	_ = s.Add(SeedBloodBanks()...)
	_ = s.Add(SeedOxygenSuppliers()...)
	return s
}
