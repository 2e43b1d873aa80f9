package dto

type CreateStandardReplyDTO struct {
	ProjectID uint   `json:"projectId" binding:"required"`
	Title     string `json:"title" binding:"required"`
	Text      string `json:"text" binding:"required"`
	Language  string `json:"language"`
	SortOrder int    `json:"sortOrder"`
}

type UpdateStandardReplyDTO struct {
	Title     string `json:"title"`
	Text      string `json:"text"`
	Language  string `json:"language"`
	SortOrder *int   `json:"sortOrder"`
}
