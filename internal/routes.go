package internal

import (
	"net/http"

	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/controllers"
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/providers"
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/structures"
)

func InitRoutes(rosterController *controllers.RosterController, syncController *controllers.SyncController, historyController *controllers.HistoryController, mediaController *controllers.MediaController, conf *structures.Config) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/roster", http.HandlerFunc(rosterController.GetRoster))
	routers.Post("/roster", http.HandlerFunc(rosterController.UpdateRoster))
	routers.Post("/roster/dedupe", http.HandlerFunc(rosterController.Dedupe))
	routers.Post("/roster/purge", http.HandlerFunc(rosterController.Purge))
	routers.Post("/roster/mockfill", http.HandlerFunc(rosterController.MockFill))

	routers.Post("/import/performance", http.HandlerFunc(rosterController.ImportPerformance))
	routers.Post("/import/contacts", http.HandlerFunc(rosterController.ImportContacts))
	routers.Post("/scrape/apply", http.HandlerFunc(rosterController.ApplyScrape))

	routers.Get("/stats", http.HandlerFunc(rosterController.GetStats))
	routers.Get("/missing-accounts", http.HandlerFunc(rosterController.GetMissingAccounts))
	routers.Get("/completeness", http.HandlerFunc(rosterController.GetCompleteness))
	routers.Get("/alerts", http.HandlerFunc(rosterController.GetAlerts))
	routers.Post("/alerts/dismiss", http.HandlerFunc(rosterController.DismissAlert))

	routers.Post("/sync/push", http.HandlerFunc(syncController.Push))
	routers.Post("/sync/refresh", http.HandlerFunc(syncController.Refresh))
	routers.Get("/sync/status", http.HandlerFunc(syncController.Status))

	routers.Get("/history", http.HandlerFunc(historyController.List))
	routers.Get("/history/item", http.HandlerFunc(historyController.GetOne))
	routers.Post("/history/restore", http.HandlerFunc(historyController.Restore))

	routers.Get("/media", http.HandlerFunc(mediaController.GetMedia))

	return routers
}
