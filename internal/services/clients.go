package services

import "measurement-intake-service/internal/domain"

// UniqueClients returns every saved customer once, in first-seen project
// order. Customers without an ID have never been persisted and are skipped;
// repeat bookings share a customer ID, so the first occurrence wins.
func UniqueClients(projects []*domain.Project) []domain.Customer {
	seen := make(map[string]struct{}, len(projects))
	clients := make([]domain.Customer, 0, len(projects))
	for _, p := range projects {
		if p == nil || p.Customer.ID == "" {
			continue
		}
		if _, ok := seen[p.Customer.ID]; ok {
			continue
		}
		seen[p.Customer.ID] = struct{}{}
		clients = append(clients, p.Customer)
	}

	return clients
}
