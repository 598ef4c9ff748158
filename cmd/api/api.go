package api

import (
	"context"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	analysisDal "github.com/kindfood/erp-system/analysis/dal"
	analysisHandlers "github.com/kindfood/erp-system/analysis/handlers"
	bomHandlers "github.com/kindfood/erp-system/bomtable/handlers"
	bomService "github.com/kindfood/erp-system/bomtable/service"
	categoryHandlers "github.com/kindfood/erp-system/category/handlers"
	"github.com/kindfood/erp-system/cmd/api/handlers"
	"github.com/kindfood/erp-system/config"
	"github.com/kindfood/erp-system/confirm"
	confirmHandlers "github.com/kindfood/erp-system/confirm/handlers"
	fb "github.com/kindfood/erp-system/firebase"
	"github.com/kindfood/erp-system/framework/connection"
	"github.com/kindfood/erp-system/framework/mid"
	"github.com/kindfood/erp-system/framework/web"
	"github.com/kindfood/erp-system/localstate"
	"github.com/kindfood/erp-system/logger"
	"github.com/kindfood/erp-system/notification"
	pricingDomain "github.com/kindfood/erp-system/pricing/domain"
	pricingHandlers "github.com/kindfood/erp-system/pricing/handlers"
	pricingService "github.com/kindfood/erp-system/pricing/service"
	sessionHandlers "github.com/kindfood/erp-system/session/handlers"
	sessionService "github.com/kindfood/erp-system/session/service"
	materialHandlers "github.com/kindfood/erp-system/sharedmaterial/handlers"
	materialService "github.com/kindfood/erp-system/sharedmaterial/service"
)

// API constructs an api with the needed functionality.
type API struct {
	shutdown chan os.Signal
	log      *logger.Logging
	conn     *connection.Connection
	cfg      *config.Config
	hub      *sessionService.Hub
}

func NewAPI(shutdown chan os.Signal, logging *logger.Logging, conn *connection.Connection, cfg *config.Config, hub *sessionService.Hub) *API {
	return &API{
		shutdown,
		logging,
		conn,
		cfg,
		hub,
	}
}

// Build builds the api endpoints with the needed middlewares, and returns http.Handler interface.
func (a *API) Build() http.Handler {
	loggerProvider := logger.FromContext

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// Construct the web.App which holds all routes as well as common Middleware.
	app := web.NewApp(a.shutdown, a.cfg.Server.SentryDSN,
		mid.Logger(),
		mid.Metrics(mid.NewRequestMetrics(reg)),
		mid.Errors(),
		mid.Panics(),
		mid.Sentry(),
	)

	state := localstate.NewFirestoreStore(a.conn.Firestore)
	observers := sessionService.NewObservers()
	authService := sessionService.NewAuthService(
		loggerProvider,
		fb.NewIdentityToolkit(a.cfg.Firebase.IdentityToolkitURL, a.cfg.Firebase.APIKey),
		a.conn.Auth(),
		state,
		a.hub,
		observers,
	)
	session := sessionHandlers.NewSession(loggerProvider, authService, a.hub, observers, a.cfg.Session.DisplayDelay)

	tablesService := bomService.NewBOMTablesService(loggerProvider, a.conn, bomService.NewDraftStore(a.cfg.Server.DraftTTL))
	materialsService := materialService.NewSharedMaterialsService(loggerProvider, a.conn)
	schemesService := pricingService.NewPricingService(loggerProvider, a.conn, pricingDomain.Policy{
		KeepUnmatched: a.cfg.Pricing.KeepUnmatched,
	})
	analyses := analysisDal.NewAnalysesFirestoreWithClient(a.conn.Firestore)

	bomTables := bomHandlers.NewBOMTablesWithService(loggerProvider, tablesService)
	sharedMaterials := materialHandlers.NewSharedMaterialsWithService(loggerProvider, materialsService)
	categories := categoryHandlers.NewCategories(loggerProvider, a.conn)
	pricing := pricingHandlers.NewPricingWithService(loggerProvider, schemesService)
	analysesHandler := analysisHandlers.NewAnalysesWithDal(loggerProvider, analyses)

	registry := confirm.NewRegistry()

	app.Get("/health", handlers.Health)
	app.Raw(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	app.Post("/api/signin", session.SignIn)

	authenticated := mid.AuthRequired(a.conn.Auth())

	apiGroup := web.NewGroup(app, "/api", authenticated)
	{
		apiGroup.Post("/signout", session.SignOut)
		apiGroup.Get("/session", session.Me)
		apiGroup.Get("/session/events", session.Events)

		apiGroup.Get("/categories", categories.List)

		bomGroup := apiGroup.NewSubgroup("/bom-tables")
		{
			bomGroup.Get("", bomTables.List)
			bomGroup.Post("", bomTables.Create)
			bomGroup.Get("/:id", bomTables.Get, mid.ValidateDocID("id"))
			bomGroup.Put("/:id", bomTables.Update, mid.ValidateDocID("id"))
			bomGroup.Post("/:id/drafts", bomTables.OpenDraft, mid.ValidateDocID("id"))

			mountConfirm(bomGroup, confirmHandlers.NewConfirm(loggerProvider, registry, confirmHandlers.Target{
				Collection:   "bom-tables",
				Prompt:       notification.BOMDeleteConfirm,
				Success:      notification.BOMDeleteSuccess,
				Failure:      notification.BOMDeleteFailed,
				FetchFailure: notification.BOMFetchFailed,
				Delete:       tablesService.Delete,
				Refetch:      refetch(tablesService.List),
			}))
		}

		draftGroup := apiGroup.NewSubgroup("/drafts/:draftID", mid.ValidateDocID("draftID"))
		{
			draftGroup.Get("", bomTables.GetDraft)
			draftGroup.Patch("", bomTables.EditHeader)
			draftGroup.Patch("/items/:index", bomTables.SetField)
			draftGroup.Post("/items", bomTables.AddItem)
			draftGroup.Delete("/items/:index", bomTables.DeleteItem)
			draftGroup.Post("/submit", bomTables.SubmitDraft)
			draftGroup.Delete("", bomTables.DiscardDraft)
		}

		materialGroup := apiGroup.NewSubgroup("/shared-materials")
		{
			materialGroup.Get("", sharedMaterials.List)
			materialGroup.Post("", sharedMaterials.Create)
			materialGroup.Get("/:id", sharedMaterials.Get, mid.ValidateDocID("id"))
			materialGroup.Put("/:id", sharedMaterials.Update, mid.ValidateDocID("id"))
			materialGroup.Get("/:id/history", sharedMaterials.History, mid.ValidateDocID("id"))

			mountConfirm(materialGroup, confirmHandlers.NewConfirm(loggerProvider, registry, confirmHandlers.Target{
				Collection:   "shared-materials",
				Prompt:       notification.MaterialDeleteConfirm,
				Success:      notification.MaterialDeleteSuccess,
				Failure:      notification.MaterialDeleteFailed,
				FetchFailure: notification.MaterialFetchFailed,
				Delete:       materialsService.Delete,
				Refetch:      refetch(materialsService.List),
			}))
		}

		schemeGroup := apiGroup.NewSubgroup("/pricing-schemes")
		{
			schemeGroup.Get("", pricing.List)
			schemeGroup.Post("", pricing.Save)
			schemeGroup.Get("/:id", pricing.Get, mid.ValidateDocID("id"))
			schemeGroup.Put("/:id", pricing.Update, mid.ValidateDocID("id"))
			schemeGroup.Post("/:id/apply", pricing.Apply, mid.ValidateDocID("id"))

			mountConfirm(schemeGroup, confirmHandlers.NewConfirm(loggerProvider, registry, confirmHandlers.Target{
				Collection:   "pricing-schemes",
				Prompt:       notification.PricingDeleteConfirm,
				Success:      notification.PricingDeleteSuccess,
				Failure:      notification.PricingDeleteFailed,
				FetchFailure: notification.PricingFetchFailed,
				Delete:       schemesService.Delete,
				Refetch:      refetch(schemesService.List),
			}))
		}

		pricingGroup := apiGroup.NewSubgroup("/pricing")
		{
			pricingGroup.Get("/current", pricing.Current)
			pricingGroup.Put("/current", pricing.SaveCurrent)
			pricingGroup.Post("/calculate", pricing.Calculate)
		}

		analysisGroup := apiGroup.NewSubgroup("/analyses")
		{
			analysisGroup.Get("", analysesHandler.List)
			analysisGroup.Post("", analysesHandler.Save)

			mountConfirm(analysisGroup, confirmHandlers.NewConfirm(loggerProvider, registry, confirmHandlers.Target{
				Collection:   "analyses",
				Prompt:       notification.AnalysisDeleteConfirm,
				Success:      notification.AnalysisDeleteSuccess,
				Failure:      notification.AnalysisDeleteFailed,
				FetchFailure: notification.AnalysisFetchFailed,
				Delete:       analyses.Delete,
				Refetch:      refetch(analyses.List),
			}))
		}
	}

	return app
}

// mountConfirm adds the two-step delete of a collection under g.
func mountConfirm(g *web.Group, h *confirmHandlers.Confirm) {
	g.Post("/:id/delete-intent", h.Intent, mid.ValidateDocID("id"))
	g.Post("/delete/confirm", h.Confirm)
	g.Post("/delete/cancel", h.Cancel)
}

func refetch[T any](list func(ctx context.Context) ([]T, error)) func(ctx context.Context) (interface{}, error) {
	return func(ctx context.Context) (interface{}, error) {
		items, err := list(ctx)
		if err != nil {
			return nil, err
		}

		return items, nil
	}
}
