package dto

import "measurement-intake-service/internal/domain"

// Project payloads reuse the domain types directly: their JSON shape is the
// stored state-record format, which the API exposes unchanged.

type ListProjectsResponse struct {
	Projects []*domain.Project `json:"projects"`
}

type SaveProjectResponse struct {
	Project *domain.Project `json:"project"`
}

type ListClientsResponse struct {
	Clients []domain.Customer `json:"clients"`
}
