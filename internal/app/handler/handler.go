package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ordermanager/internal/app/apperr"
	"ordermanager/internal/app/metrics"
	"ordermanager/internal/app/middleware"
	"ordermanager/internal/app/orderform"
	"ordermanager/internal/app/repository"
	"ordermanager/internal/app/role"
)

// ImageStore выдает ссылки на изображения услуг
type ImageStore interface {
	GetFileURL(ctx context.Context, key string) (string, error)
}

// Handler обслуживает HTML-страницы
type Handler struct {
	Repository *repository.Repository
	Images     ImageStore // nil, если MinIO не настроен
}

func NewHandler(r *repository.Repository, images ImageStore) *Handler {
	return &Handler{Repository: r, Images: images}
}

// Регистрация маршрутов
func (h *Handler) RegisterRoutes(router *gin.Engine, am *middleware.AuthMiddleware) {
	router.GET("/", am.WithPageAuth(), h.Index)

	customer := router.Group("/services", am.WithPageAuth(role.Customer))
	{
		customer.GET("/", h.ServiceList)
		customer.GET("/:service_id/order/", h.OrderForm)
		customer.POST("/:service_id/order/", h.SubmitOrder)
		customer.GET("/order/success/", h.OrderSuccess)
	}

	staff := router.Group("/orders", am.WithPageAuth(role.Staff))
	{
		staff.GET("/", h.OrderList)
		staff.GET("/:order_id/", h.OrderDetail)
		staff.GET("/:order_id/complete", h.OrderCompleteForm)
		staff.POST("/:order_id/complete", h.CompleteOrder)
	}
}

// Централизованная обработка ошибок
func (h *Handler) errorHandler(ctx *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	entry := middleware.Logger(ctx).WithError(err)
	if status >= http.StatusInternalServerError {
		entry.Error("page failed")
	} else {
		entry.Warn("page rejected")
	}

	message := err.Error()
	if status >= http.StatusInternalServerError {
		message = "Внутренняя ошибка сервера"
	}
	h.render(ctx, status, "error.html", gin.H{
		"Status":  status,
		"Message": message,
	})
}

// render добавляет в данные шаблона роль текущего пользователя
func (h *Handler) render(ctx *gin.Context, status int, name string, data gin.H) {
	if _, userRole, ok := middleware.CurrentUser(ctx); ok {
		data["Authenticated"] = true
		data["IsStaff"] = userRole.IsStaff()
		data["IsCustomer"] = userRole.IsCustomer()
	}
	ctx.HTML(status, name, data)
}

func pathID(ctx *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		return 0, apperr.NotFound("%s %q", name, ctx.Param(name))
	}
	return uint(id), nil
}

// Index отправляет сотрудника к заказам, клиента к услугам
func (h *Handler) Index(ctx *gin.Context) {
	_, userRole, _ := middleware.CurrentUser(ctx)
	if userRole.IsStaff() {
		ctx.Redirect(http.StatusFound, "/orders/")
		return
	}
	ctx.Redirect(http.StatusFound, "/services/")
}

// ServiceList показывает клиенту услуги с параметрами
func (h *Handler) ServiceList(ctx *gin.Context) {
	services, err := h.Repository.ListServices(ctx.Request.Context())
	if err != nil {
		h.errorHandler(ctx, err)
		return
	}

	h.render(ctx, http.StatusOK, "service_list.html", gin.H{
		"Services": serviceResponses(ctx, h.Images, services),
	})
}

// OrderForm показывает форму заказа услуги
func (h *Handler) OrderForm(ctx *gin.Context) {
	h.renderOrderForm(ctx, http.StatusOK, map[string]string{}, nil)
}

func (h *Handler) renderOrderForm(ctx *gin.Context, status int, values map[string]string, verr *apperr.ValidationError) {
	serviceID, err := pathID(ctx, "service_id")
	if err != nil {
		h.errorHandler(ctx, err)
		return
	}
	service, err := h.Repository.GetService(ctx.Request.Context(), serviceID)
	if err != nil {
		h.errorHandler(ctx, err)
		return
	}

	data := gin.H{
		"Service":        service,
		"Values":         values,
		"Errors":         map[string]string{},
		"NonFieldErrors": []string{},
		"FieldTitle":     orderform.FieldTitle,
		"FieldValue":     orderform.FieldValue,
		"FieldChecked":   orderform.FieldChecked,
		"CheckboxOn":     orderform.CheckboxOn,
		"CheckboxOff":    orderform.CheckboxOff,
	}
	if verr != nil {
		data["Errors"] = verr.Fields
		data["NonFieldErrors"] = verr.NonField
	}
	h.render(ctx, status, "order_form.html", data)
}

// SubmitOrder оформляет заказ из полей формы
func (h *Handler) SubmitOrder(ctx *gin.Context) {
	userID, _, _ := middleware.CurrentUser(ctx)
	serviceID, err := pathID(ctx, "service_id")
	if err != nil {
		h.errorHandler(ctx, err)
		return
	}

	titles := ctx.PostFormArray(orderform.FieldTitle)
	values := ctx.PostFormArray(orderform.FieldValue)
	submitted := make(map[string]string, len(titles))

	pairs, err := orderform.FromLists(titles, values)
	if err == nil {
		pairs = orderform.MarkChecked(pairs, ctx.PostFormArray(orderform.FieldChecked))
		for _, p := range pairs {
			submitted[p.Title] = p.Value
		}
		_, err = h.Repository.SubmitOrder(ctx.Request.Context(), userID, serviceID, pairs)
	} else {
		for i, title := range titles {
			if i < len(values) {
				submitted[title] = values[i]
			}
		}
	}
	countSubmission(err)

	if verr, ok := apperr.AsValidation(err); ok {
		middleware.Logger(ctx).WithError(err).Warn("order form rejected")
		h.renderOrderForm(ctx, http.StatusBadRequest, submitted, verr)
		return
	}
	if err != nil {
		h.errorHandler(ctx, err)
		return
	}

	ctx.Redirect(http.StatusFound, "/services/order/success/")
}

func (h *Handler) OrderSuccess(ctx *gin.Context) {
	h.render(ctx, http.StatusOK, "order_success.html", gin.H{})
}

// OrderList показывает сотруднику невыполненные заказы
func (h *Handler) OrderList(ctx *gin.Context) {
	orders, err := h.Repository.ListIncompleteOrders(ctx.Request.Context())
	if err != nil {
		h.errorHandler(ctx, err)
		return
	}

	h.render(ctx, http.StatusOK, "order_list.html", gin.H{"Orders": orders})
}

func (h *Handler) OrderDetail(ctx *gin.Context) {
	orderID, err := pathID(ctx, "order_id")
	if err != nil {
		h.errorHandler(ctx, err)
		return
	}
	order, err := h.Repository.GetOrder(ctx.Request.Context(), orderID)
	if err != nil {
		h.errorHandler(ctx, err)
		return
	}

	h.render(ctx, http.StatusOK, "order_detail.html", gin.H{"Order": order})
}

// OrderCompleteForm просит подтвердить выполнение заказа
func (h *Handler) OrderCompleteForm(ctx *gin.Context) {
	orderID, err := pathID(ctx, "order_id")
	if err != nil {
		h.errorHandler(ctx, err)
		return
	}
	order, err := h.Repository.GetOrder(ctx.Request.Context(), orderID)
	if err != nil {
		h.errorHandler(ctx, err)
		return
	}

	h.render(ctx, http.StatusOK, "order_complete.html", gin.H{"Order": order})
}

// CompleteOrder отмечает заказ выполненным текущим сотрудником
func (h *Handler) CompleteOrder(ctx *gin.Context) {
	userID, _, _ := middleware.CurrentUser(ctx)
	orderID, err := pathID(ctx, "order_id")
	if err != nil {
		h.errorHandler(ctx, err)
		return
	}

	_, changed, err := h.Repository.CompleteOrder(ctx.Request.Context(), orderID, userID)
	if err != nil {
		h.errorHandler(ctx, err)
		return
	}
	if changed {
		countCompletion()
	}

	ctx.Redirect(http.StatusFound, "/orders/"+strconv.FormatUint(uint64(orderID), 10)+"/")
}

func countCompletion() {
	metrics.OrdersCompleted.Inc()
}

func countSubmission(err error) {
	switch {
	case err == nil:
		metrics.OrdersSubmitted.WithLabelValues(metrics.ResultCreated).Inc()
	case errors.Is(err, apperr.ErrValidation):
		metrics.OrdersSubmitted.WithLabelValues(metrics.ResultRejected).Inc()
	default:
		metrics.OrdersSubmitted.WithLabelValues(metrics.ResultError).Inc()
	}
}
