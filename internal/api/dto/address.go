package dto

type AddressResponse struct {
	Street string `json:"street"`
	City   string `json:"city"`
}
