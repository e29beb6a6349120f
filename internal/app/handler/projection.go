package handler

import (
	"github.com/gin-gonic/gin"

	"ordermanager/internal/app/ds"
	"ordermanager/internal/app/dto"
	"ordermanager/internal/app/middleware"
)

func orderResponse(order *ds.Order) dto.OrderResponse {
	response := dto.OrderResponse{
		ID:          order.ID,
		Service:     order.Service.Title,
		Parameters:  make([]dto.ParameterValue, 0, len(order.Parameters)),
		Complete:    order.Complete,
		TimeCreated: order.TimeCreated,
		Author:      order.Author.Username,
	}
	if order.Performer != nil {
		response.Performer = order.Performer.Username
	}
	for _, p := range order.Parameters {
		response.Parameters = append(response.Parameters, dto.ParameterValue{
			Parameter: p.Parameter.Title,
			Value:     p.Value,
		})
	}
	return response
}

func orderResponses(orders []ds.Order) []dto.OrderResponse {
	responses := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, orderResponse(&orders[i]))
	}
	return responses
}

// serviceResponses строит каталог; ссылка на изображение не обязательна,
// поэтому ошибка хранилища только логируется
func serviceResponses(ctx *gin.Context, images ImageStore, services []ds.Service) []dto.ServiceResponse {
	responses := make([]dto.ServiceResponse, 0, len(services))
	for _, service := range services {
		response := dto.ServiceResponse{
			ID:         service.ID,
			Title:      service.Title,
			Parameters: make([]dto.ParameterInServiceResponse, 0, len(service.Parameters)),
		}
		for _, assigned := range service.Parameters {
			response.Parameters = append(response.Parameters, dto.ParameterInServiceResponse{
				Parameter: assigned.Parameter.Title,
				Type:      string(assigned.Type),
			})
		}
		if images != nil && service.ImageKey != nil {
			url, err := images.GetFileURL(ctx.Request.Context(), *service.ImageKey)
			if err != nil {
				middleware.Logger(ctx).WithError(err).Warnf("no image url for service %d", service.ID)
			} else {
				response.ImageURL = url
			}
		}
		responses = append(responses, response)
	}
	return responses
}
