package dto

// Response is the envelope every API endpoint answers with.
type Response struct {
	Success    bool        `json:"success"`
	Data       any         `json:"data,omitempty"`
	Total      *int64      `json:"total,omitempty"`
	Error      string      `json:"error,omitempty"`
	Message    string      `json:"message,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
	// Stats repeats import counts for older upload clients.
	Stats *ImportResult `json:"stats,omitempty"`
}

type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

func OK(data any) Response { return Response{Success: true, Data: data} }

func Message(msg string) Response { return Response{Success: true, Message: msg} }

func Fail(msg string) Response { return Response{Success: false, Error: msg} }

func Paged(data any, p Pagination) Response {
	return Response{Success: true, Data: data, Pagination: &p}
}

func WithTotal(data any, total int64) Response {
	return Response{Success: true, Data: data, Total: &total}
}
