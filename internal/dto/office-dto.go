package dto

// OfficePayload is the derived office view consumed by the frontend map
// widget. Field names follow the existing JavaScript contract.
type OfficePayload struct {
	Label        string   `json:"label"`
	AddressLines []string `json:"addressLines"`
	Hours        string   `json:"hours"`
	Phone        string   `json:"phone"`
	Email        string   `json:"email"`
	MapEmbed     string   `json:"mapEmbed"`
}

type OfficeAjaxResponse struct {
	Success bool          `json:"success"`
	Office  OfficePayload `json:"office"`
}
