package task

type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description"`
	Status      string `json:"status" binding:"omitempty,oneof=TODO IN_PROGRESS DONE"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description"`
	Status      *string `json:"status" binding:"omitempty,oneof=TODO IN_PROGRESS DONE"`
}

// ListQuery comes from the query string; defaults applied in the handler.
type ListQuery struct {
	Page   int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit  int    `form:"limit,default=10" binding:"omitempty,min=1,max=100"`
	Status string `form:"status" binding:"omitempty,oneof=TODO IN_PROGRESS DONE"`
	Query  string `form:"q"`
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}
