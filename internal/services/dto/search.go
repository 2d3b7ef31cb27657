package dto

// SearchRequest is a cross-resource query over users, formations, capsules
// and job offers.
type SearchRequest struct {
	Query string `form:"q" validate:"omitempty,max=100"`
	Limit int    `form:"limit" validate:"omitempty,min=1,max=50"`
}

type SearchResponse struct {
	Users      []*UserDTO           `json:"users"`
	Formations []*FormationResponse `json:"formations"`
	Capsules   []*CapsuleResponse   `json:"capsules"`
	JobOffers  []*JobOfferResponse  `json:"job_offers"`
}
