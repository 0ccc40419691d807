package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/crickstack/auction-room/internal/domain/auction"
	"github.com/crickstack/auction-room/internal/infrastructure/repository/memory"
	"github.com/crickstack/auction-room/internal/platform/id"
	"github.com/crickstack/auction-room/internal/platform/logging"
	"github.com/crickstack/auction-room/internal/usecase"
)

func newTestRouter(t *testing.T) (http.Handler, *usecase.AuctionService) {
	t.Helper()

	players, err := auction.BuildRoster([]auction.PlayerDescriptor{
		{Name: "Arjun Rao", Role: auction.RoleBatsman, BasePrice: 300},
		{Name: "Kabir Shaikh", Role: auction.RoleBowler, BasePrice: 300},
		{Name: "Dev Menon", Role: auction.RoleAllRounder, BasePrice: 300},
	})
	if err != nil {
		t.Fatalf("build roster: %v", err)
	}

	service := usecase.NewAuctionService(
		memory.NewTeamRepository(),
		memory.NewPlayerRepository(players),
		auction.DefaultSettings(),
		id.NewUUIDGenerator(),
		logging.NewNop(),
	)
	handler := NewHandler(service, logging.NewNop())

	return NewRouter(handler, logging.NewNop(), []string{"*"}), service
}

func doJSON(t *testing.T, router http.Handler, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal envelope for %s %s: %v", method, target, err)
	}

	return rec, envelope
}

func TestHealthz(t *testing.T) {
	router, _ := newTestRouter(t)

	rec, envelope := doJSON(t, router, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	data, _ := envelope["data"].(map[string]any)
	if data["status"] != "ok" {
		t.Fatalf("unexpected health payload: %v", envelope)
	}
}

func TestSeedThenSellFlow(t *testing.T) {
	router, _ := newTestRouter(t)

	rec, envelope := doJSON(t, router, http.MethodPost, "/v1/auction/teams/seed", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("seed: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	teams, _ := envelope["data"].([]any)
	if len(teams) != 4 {
		t.Fatalf("expected 4 seeded teams, got %d", len(teams))
	}
	first, _ := teams[0].(map[string]any)
	teamID, _ := first["id"].(string)
	if teamID == "" {
		t.Fatalf("seeded team has no id: %v", first)
	}
	if first["initials"] != "MI" {
		t.Fatalf("expected initials MI for Mumbai Indians, got %v", first["initials"])
	}

	rec, envelope = doJSON(t, router, http.MethodPost, "/v1/auction/advance", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("advance: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	advanceData, _ := envelope["data"].(map[string]any)
	if advanceData["exhausted"] != false {
		t.Fatalf("expected a player on the block, got %v", advanceData)
	}

	rec, envelope = doJSON(t, router, http.MethodPost, "/v1/auction/sell",
		`{"team_id":"`+teamID+`","price":450}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("sell: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	sellData, _ := envelope["data"].(map[string]any)
	if sellData["accepted"] != true {
		t.Fatalf("expected accepted sale, got %v", sellData)
	}

	rec, envelope = doJSON(t, router, http.MethodGet, "/v1/auction", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("snapshot: expected 200, got %d", rec.Code)
	}
	snapData, _ := envelope["data"].(map[string]any)
	stats, _ := snapData["stats"].(map[string]any)
	if stats["sold"] != float64(1) {
		t.Fatalf("expected 1 sold player, got %v", stats)
	}
}

func TestSellRejectionIsNotAnHTTPError(t *testing.T) {
	router, _ := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/v1/auction/teams/seed", "")
	doJSON(t, router, http.MethodPost, "/v1/auction/advance", "")

	rec, envelope := doJSON(t, router, http.MethodPost, "/v1/auction/sell",
		`{"team_id":"no-such-team","price":450}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for rejected bid, got %d: %s", rec.Code, rec.Body.String())
	}
	data, _ := envelope["data"].(map[string]any)
	if data["accepted"] != false {
		t.Fatalf("expected rejected bid, got %v", data)
	}
	if data["message"] != "Select a winning team." {
		t.Fatalf("unexpected rejection message: %v", data["message"])
	}
}

func TestPassWithoutActivePlayerConflicts(t *testing.T) {
	router, _ := newTestRouter(t)

	rec, envelope := doJSON(t, router, http.MethodPost, "/v1/auction/pass", "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}
	errorObj, _ := envelope["error"].(map[string]any)
	if errorObj["status"] != "FAILED_PRECONDITION" {
		t.Fatalf("unexpected error status: %v", errorObj)
	}
}

func TestRequeueUnknownPlayerNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	rec, _ := doJSON(t, router, http.MethodPost, "/v1/auction/requeue", `{"player_id":99}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAddTeamRejectsUnknownFields(t *testing.T) {
	router, _ := newTestRouter(t)

	rec, _ := doJSON(t, router, http.MethodPost, "/v1/auction/teams",
		`{"name":"Gujarat Titans","wallet":99999}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown field, got %d", rec.Code)
	}
}

func TestApplySettingsDefaultsZeroes(t *testing.T) {
	router, _ := newTestRouter(t)

	rec, envelope := doJSON(t, router, http.MethodPut, "/v1/auction/settings",
		`{"starting_wallet":0,"squad_size":0,"min_base_price":0}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	data, _ := envelope["data"].(map[string]any)
	if data["starting_wallet"] != float64(auction.DefaultStartingWallet) {
		t.Fatalf("expected default wallet, got %v", data)
	}
}

func TestCheckBidDoesNotMutate(t *testing.T) {
	router, _ := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/v1/auction/teams/seed", "")
	doJSON(t, router, http.MethodPost, "/v1/auction/advance", "")

	_, envelope := doJSON(t, router, http.MethodGet, "/v1/auction", "")
	before, _ := envelope["data"].(map[string]any)
	teams, _ := before["teams"].([]any)
	team, _ := teams[0].(map[string]any)
	teamID, _ := team["id"].(string)

	rec, envelope := doJSON(t, router, http.MethodPost, "/v1/auction/check-bid",
		`{"team_id":"`+teamID+`","price":600}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	data, _ := envelope["data"].(map[string]any)
	if data["accepted"] != true {
		t.Fatalf("expected dry-run acceptance, got %v", data)
	}

	_, envelope = doJSON(t, router, http.MethodGet, "/v1/auction", "")
	after, _ := envelope["data"].(map[string]any)
	stats, _ := after["stats"].(map[string]any)
	if stats["sold"] != float64(0) {
		t.Fatalf("check-bid must not sell, got stats %v", stats)
	}
}
