package routers

import (
	"ecare-automation/internal/app/delivery/http/controllers"
	"ecare-automation/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachWorkflowRoutes(router chi.Router, middlewares *middlewares.Middlewares, ctrl *controllers.WorkflowController) {
	router.Get("/health", ctrl.Health)

	router.Route("/workflow/runs", func(r chi.Router) {
		r.Post("/", ctrl.TriggerRun)
		r.Get("/", ctrl.ListRuns)
		r.Get("/{run_id}", ctrl.GetRun)
	})
}
