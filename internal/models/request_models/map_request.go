package request_models

type GenerateMapRequest struct {
	Force       bool    `json:"force"`
	RequestedBy *string `json:"requestedBy,omitempty"`
}
