package domain

// Project bundles one scheduled measurement visit: a customer plus three
// independent collections of room measurements. The ID is unique and immutable
// after creation; the customer's date and time are the project's single
// appointment slot.
type Project struct {
	ID                string                        `json:"id"`
	Customer          Customer                      `json:"customer"`
	Curtains          []CurtainMeasurement          `json:"curtains"`
	Floors            []FloorMeasurement            `json:"floors"`
	WindowDecorations []WindowDecorationMeasurement `json:"windowDecorations"`
}
