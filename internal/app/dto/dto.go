package dto

import "time"

// ============ Общие структуры ============

type ErrorResponse struct {
	Status         string            `json:"status"`
	Message        string            `json:"message"`
	Errors         map[string]string `json:"errors,omitempty"`
	NonFieldErrors []string          `json:"non_field_errors,omitempty"`
}

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ============ Услуги (Services) ============

type ParameterInServiceResponse struct {
	Parameter string `json:"parameter"`
	Type      string `json:"type"`
}

type ServiceResponse struct {
	ID         uint                         `json:"id"`
	Title      string                       `json:"title"`
	ImageURL   string                       `json:"image_url,omitempty"`
	Parameters []ParameterInServiceResponse `json:"parameters_assigned"`
}

// ============ Заказы (Orders) ============

// ParameterValue описывает пару «наименование параметра / значение»
type ParameterValue struct {
	Parameter string `json:"parameter" binding:"required"`
	Value     string `json:"value"`
}

type CreateOrderRequest struct {
	Parameters []ParameterValue `json:"parameters" binding:"required,dive"`
}

type OrderResponse struct {
	ID          uint             `json:"id"`
	Service     string           `json:"service"`
	Parameters  []ParameterValue `json:"parameters_assigned"`
	Complete    bool             `json:"complete"`
	TimeCreated time.Time        `json:"time_created"`
	Author      string           `json:"author,omitempty"`
	Performer   string           `json:"performer,omitempty"`
}

// UpdateOrderRequest описывает тело PUT/PATCH; исполнитель и отметка о выполнении
// задаются сервером, поэтому допустим пустой объект
type UpdateOrderRequest struct{}

// ============ Пользователи (Users) ============

type UserResponse struct {
	ID          uint   `json:"id"`
	Username    string `json:"username"`
	FullName    string `json:"full_name"`
	IsStaff     bool   `json:"is_staff"`
	IsSuperuser bool   `json:"is_superuser"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"token_type"`
	ExpiresIn int          `json:"expires_in"`
	User      UserResponse `json:"user"`
}
