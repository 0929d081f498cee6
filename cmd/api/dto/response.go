package dto

// ErrorResponseDTO is the uniform error body for 4xx/5xx responses.
type ErrorResponseDTO struct {
	Message string `json:"message"`
}

// IDResponseDTO carries the identifier of a newly created record.
type IDResponseDTO struct {
	ID int64 `json:"id"`
}

// ReactionCountsDTO carries a summary's counters after a reaction change.
type ReactionCountsDTO struct {
	ID        int64 `json:"id"`
	Likes     int   `json:"likes"`
	Dislikes  int   `json:"dislikes"`
	Favorites int   `json:"favorites"`
}

// AuthResponseDTO is returned from register and login.
type AuthResponseDTO struct {
	User   ProfileDTO `json:"user"`
	Tokens TokensDTO  `json:"tokens"`
}

type TokensDTO struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}
