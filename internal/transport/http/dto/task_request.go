package dto

// Task payloads are deliberately not validated here: the service layer
// owns the check ordering (role before payload, existence before
// ownership) and pre-validating would fire in the wrong order.

type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

type UpdateTaskRequest struct {
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
}
