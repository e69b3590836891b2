package handler

type createGameRequest struct {
	Title           string  `json:"title"           validate:"required"`
	Location        string  `json:"location"        validate:"required"`
	Date            string  `json:"date"            validate:"required"`
	Fee             float64 `json:"fee"             validate:"gte=0"`
	Status          string  `json:"status"          validate:"omitempty,oneof=upcoming ongoing past"`
	Icon            string  `json:"icon"`
	Description     string  `json:"description"`
	MaxParticipants int     `json:"maxParticipants" validate:"gte=0"`
}

type updateGameRequest struct {
	Title           string  `json:"title"           validate:"required"`
	Location        string  `json:"location"        validate:"required"`
	Date            string  `json:"date"            validate:"required"`
	Fee             float64 `json:"fee"             validate:"gte=0"`
	Status          string  `json:"status"          validate:"required,oneof=upcoming ongoing past"`
	Icon            string  `json:"icon"`
	Description     string  `json:"description"`
	MaxParticipants int     `json:"maxParticipants" validate:"required,gte=1"`
}
