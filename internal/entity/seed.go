package entity

import "time"

// SeedLeads is the built-in demo list returned when both the remote backend
// and the local cache are empty, so a fresh install never shows a blank
// dashboard.
func SeedLeads() []Lead {
	now := time.Now().UnixMilli()
	return []Lead{
		{
			ID:          "lead-1",
			Name:        "Rahul Sharma",
			Mobile:      "9876543210",
			Location:    "Mumbai",
			ServiceType: ServiceDTH,
			Operator:    OpTataPlay,
			Status:      StatusNew,
			Source:      SourceWebsite,
			CreatedAt:   now - 10000000,
		},
		{
			ID:          "lead-2",
			Name:        "Priya Verma",
			Mobile:      "9988776655",
			Location:    "Delhi",
			ServiceType: ServiceBroadband,
			Operator:    OpJioFiber,
			Status:      StatusContacted,
			Source:      SourceWhatsApp,
			CreatedAt:   now - 5000000,
		},
		{
			ID:          "lead-3",
			Name:        "Amit Kumar",
			Mobile:      "8877665544",
			Location:    "Bangalore",
			ServiceType: ServiceBroadband,
			Operator:    OpAirtelXstream,
			Status:      StatusInstalled,
			Source:      SourceWebsite,
			CreatedAt:   now - 20000000,
			OrderID:     "ORD-2024-001",
		},
	}
}
