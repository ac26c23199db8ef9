package handler

import (
	"net/http"

	"github.com/mgeorge47/canteen-console-api/internal/api/handler/router"
	"github.com/mgeorge47/canteen-console-api/internal/usecases/authenticating"
	"github.com/mgeorge47/canteen-console-api/internal/usecases/catalog"
	"github.com/mgeorge47/canteen-console-api/internal/usecases/reporting"
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

func Session(service authenticating.Authenticator, views *reporting.ViewRegistry) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/logout",
			Method:  http.MethodPost,
			Handler: Logout(service, views),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(),
		},
	}
}

func Dashboard(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
	}
}

func Sales(views *reporting.ViewRegistry) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales",
			Method:  http.MethodGet,
			Handler: GetSales(views),
		},
	}
}

func Menu(service catalog.Cataloger) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/menu/groups",
			Method:  http.MethodGet,
			Handler: GetMenuGroups(service),
		},
		{
			Path:    "/v1/menu/refresh",
			Method:  http.MethodPost,
			Handler: RefreshMenu(service),
		},
		{
			Path:    "/v1/menu/items/:id",
			Method:  http.MethodPut,
			Handler: UpdateMenuItem(service),
		},
		{
			Path:    "/v1/menu/groups/:id/items",
			Method:  http.MethodPost,
			Handler: CreateMenuItem(service),
		},
	}
}
