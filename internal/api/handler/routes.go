package handler

import (
	"net/http"

	"github.com/rodrigohacking/plinhub/internal/api/handler/router"
	"github.com/rodrigohacking/plinhub/internal/usecases/dealing"
	"github.com/rodrigohacking/plinhub/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Deals(service dealing.DealService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/companies/:id/deals",
			Method:      http.MethodGet,
			Handler:     GetCompanyDeals(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/companies/:id/deals/stored",
			Method:      http.MethodGet,
			Handler:     GetStoredDeals(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/companies/:id/metrics",
			Method:      http.MethodGet,
			Handler:     GetDealMetrics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Pipefy(service dealing.DealService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/pipefy/test",
			Method:      http.MethodPost,
			Handler:     TestPipefyConfig(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/pipefy/pipes/:id/details",
			Method:      http.MethodGet,
			Handler:     GetPipeDetails(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
