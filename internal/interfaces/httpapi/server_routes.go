package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerAuctionRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/auction", handler.GetAuction)
	mux.HandleFunc("PUT /v1/auction/settings", handler.ApplySettings)
	mux.HandleFunc("POST /v1/auction/teams", handler.AddTeam)
	mux.HandleFunc("POST /v1/auction/teams/seed", handler.SeedTeams)
	mux.HandleFunc("POST /v1/auction/sell", handler.Sell)
	mux.HandleFunc("POST /v1/auction/pass", handler.Pass)
	mux.HandleFunc("POST /v1/auction/advance", handler.Advance)
	mux.HandleFunc("POST /v1/auction/requeue", handler.Requeue)
	mux.HandleFunc("POST /v1/auction/check-bid", handler.CheckBid)
}
