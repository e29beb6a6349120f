package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"ordermanager/internal/app/apperr"
	"ordermanager/internal/app/dto"
	"ordermanager/internal/app/middleware"
	"ordermanager/internal/app/orderform"
	"ordermanager/internal/app/repository"
)

// APIHandler содержит обработчики для REST API
type APIHandler struct {
	Repository  *repository.Repository
	Images      ImageStore
	AuthHandler *AuthHandler
}

func NewAPIHandler(r *repository.Repository, images ImageStore, authHandler *AuthHandler) *APIHandler {
	return &APIHandler{
		Repository:  r,
		Images:      images,
		AuthHandler: authHandler,
	}
}

// ============ Вспомогательные функции ============

// errorResponse отдает ошибку в JSON и логирует ее один раз
func errorResponse(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	entry := middleware.Logger(c).WithError(err)
	if status >= http.StatusInternalServerError {
		entry.Error("api request failed")
	} else {
		entry.Warn("api request rejected")
	}

	response := dto.ErrorResponse{
		Status:  "fail",
		Message: err.Error(),
	}
	if status >= http.StatusInternalServerError {
		response.Message = "внутренняя ошибка сервера"
	}
	if verr, ok := apperr.AsValidation(err); ok {
		response.Message = apperr.ErrValidation.Error()
		response.Errors = verr.Fields
		response.NonFieldErrors = verr.NonField
	}
	c.JSON(status, response)
}

// bindingError переводит ошибки gin binding в ValidationError
func bindingError(err error) error {
	verr := apperr.NewValidationError()

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			verr.AddField(strings.ToLower(fe.Field()), "поле обязательно: "+fe.Tag())
		}
		return verr
	}

	verr.AddNonField("некорректное тело запроса: " + err.Error())
	return verr
}

// ============ ДОМЕН ЗАКАЗЫ ============

// GetOrders получает невыполненные заказы
// @Summary Список невыполненных заказов
// @Description Возвращает невыполненные заказы в порядке оформления. Только для сотрудников
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.OrderResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/v1/orders/ [get]
func (h *APIHandler) GetOrders(c *gin.Context) {
	orders, err := h.Repository.ListIncompleteOrders(c.Request.Context())
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, orderResponses(orders))
}

// GetOrder получает один заказ
// @Summary Получение заказа
// @Description Возвращает заказ в любом состоянии. Только для сотрудников
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID заказа"
// @Success 200 {object} dto.OrderResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/orders/{id}/ [get]
func (h *APIHandler) GetOrder(c *gin.Context) {
	orderID, err := pathID(c, "id")
	if err != nil {
		errorResponse(c, err)
		return
	}

	order, err := h.Repository.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, orderResponse(order))
}

// CompleteOrder отмечает заказ выполненным
// @Summary Выполнение заказа
// @Description Отмечает заказ выполненным текущим сотрудником. Тело запроса игнорируется, допустим {}
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID заказа"
// @Param request body dto.UpdateOrderRequest false "Пустой объект"
// @Success 200 {object} dto.OrderResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/orders/{id}/ [patch]
func (h *APIHandler) CompleteOrder(c *gin.Context) {
	userID, _, _ := middleware.CurrentUser(c)
	orderID, err := pathID(c, "id")
	if err != nil {
		errorResponse(c, err)
		return
	}

	order, changed, err := h.Repository.CompleteOrder(c.Request.Context(), orderID, userID)
	if err != nil {
		errorResponse(c, err)
		return
	}
	if changed {
		countCompletion()
	}

	c.JSON(http.StatusOK, orderResponse(order))
}

// ============ ДОМЕН УСЛУГИ ============

// GetServices получает каталог услуг
// @Summary Каталог услуг
// @Description Возвращает услуги с набором параметров. Только для клиентов
// @Tags Services
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ServiceResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/v1/services/ [get]
func (h *APIHandler) GetServices(c *gin.Context) {
	services, err := h.Repository.ListServices(c.Request.Context())
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, serviceResponses(c, h.Images, services))
}

// CreateOrder оформляет заказ услуги
// @Summary Оформление заказа
// @Description Создает заказ со значениями всех параметров услуги. Только для клиентов
// @Tags Services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID услуги"
// @Param request body dto.CreateOrderRequest true "Значения параметров"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/services/{id}/orders/ [post]
func (h *APIHandler) CreateOrder(c *gin.Context) {
	userID, _, _ := middleware.CurrentUser(c)
	serviceID, err := pathID(c, "id")
	if err != nil {
		errorResponse(c, err)
		return
	}

	var request dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		verr := bindingError(err)
		countSubmission(verr)
		errorResponse(c, verr)
		return
	}

	pairs := make([]orderform.Pair, 0, len(request.Parameters))
	for _, p := range request.Parameters {
		pairs = append(pairs, orderform.Pair{Title: p.Parameter, Value: p.Value})
	}

	created, err := h.Repository.SubmitOrder(c.Request.Context(), userID, serviceID, pairs)
	countSubmission(err)
	if err != nil {
		errorResponse(c, err)
		return
	}

	// перечитываем, чтобы отдать автора и время создания из базы
	order, err := h.Repository.GetOrder(c.Request.Context(), created.ID)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, orderResponse(order))
}
