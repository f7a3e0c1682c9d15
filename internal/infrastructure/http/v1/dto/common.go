// Package dto provides Data Transfer Objects for API requests/responses.
package dto

import "agent360/internal/core/apperror"

// --- Response envelope ---

// Response is the uniform success envelope.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
	Meta    *Meta  `json:"meta,omitempty"`
}

// Meta carries response metadata.
type Meta struct {
	Pagination Pagination `json:"pagination"`
}

// NewResponse creates a success envelope without metadata.
func NewResponse(message string, data any) Response {
	return Response{Success: true, Message: message, Data: data}
}

// NewPaginatedResponse creates a success envelope with pagination metadata.
func NewPaginatedResponse(message string, data any, p Pagination) Response {
	return Response{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    &Meta{Pagination: p},
	}
}

// --- Pagination ---

// Pagination contains pagination metadata.
type Pagination struct {
	CurrentPage int  `json:"current_page"`
	PageSize    int  `json:"page_size"`
	TotalCount  int  `json:"total_count"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// NewPagination creates pagination metadata. Page and pageSize below 1
// are clamped so a malformed query can never divide by zero here.
func NewPagination(page, pageSize, totalCount int) Pagination {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}
	totalPages := totalCount / pageSize
	if totalCount%pageSize > 0 {
		totalPages++
	}
	return Pagination{
		CurrentPage: page,
		PageSize:    pageSize,
		TotalCount:  totalCount,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
}

// --- Error Response ---

// FieldError describes one invalid request parameter.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Success   bool         `json:"success"`
	Message   string       `json:"message"`
	Errors    []FieldError `json:"errors,omitempty"`
	ErrorCode string       `json:"error_code"`
}

// NewErrorResponse builds the error envelope from an AppError.
func NewErrorResponse(appErr *apperror.AppError) ErrorResponse {
	resp := ErrorResponse{
		Success:   false,
		Message:   appErr.Message,
		ErrorCode: appErr.Code,
	}
	for _, f := range appErr.Fields {
		resp.Errors = append(resp.Errors, FieldError{Field: f.Field, Message: f.Message})
	}
	return resp
}
