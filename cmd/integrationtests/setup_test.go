package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"auction-gateway/internal/analytics"
	"auction-gateway/internal/apiclient"
	listings "auction-gateway/internal/listingService"
	model "auction-gateway/internal/models"
	profiles "auction-gateway/internal/profileService"
	"auction-gateway/internal/repository"
	"auction-gateway/internal/server"
	"auction-gateway/internal/session"

	"github.com/gin-gonic/gin"
)

const (
	testEmail    = "alice@stud.noroff.no"
	testPassword = "secret123"
	testToken    = "token-alice"
	testAPIKey   = "key-alice"
)

// fakeAuction is a small in-memory stand-in for the upstream auction API
type fakeAuction struct {
	mu       sync.Mutex
	credits  int
	listings []model.Listing
	nextID   int
}

func newFakeAuction(now time.Time) *fakeAuction {
	seller := &model.Profile{Name: "bob"}
	return &fakeAuction{
		credits: 1000,
		nextID:  3,
		listings: []model.Listing{
			{
				ID: "l1", Title: "Office chair", Tags: []string{"furniture"}, Seller: seller,
				Created: now.Add(-72 * time.Hour), EndsAt: now.Add(48 * time.Hour),
				Bids: []model.Bid{{ID: "b1", Amount: 100, Bidder: &model.Profile{Name: "carol"}, Created: now.Add(-time.Hour)}},
			},
			{
				ID: "l2", Title: "Oak desk", Tags: []string{"furniture", "office"}, Seller: seller,
				Created: now.Add(-24 * time.Hour), EndsAt: now.Add(24 * time.Hour),
			},
		},
	}
}

func writeData(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"data": data, "meta": map[string]any{"isFirstPage": true, "isLastPage": true, "currentPage": 1}})
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"errors":     []map[string]string{{"message": message}},
		"status":     http.StatusText(status),
		"statusCode": status,
	})
}

func authorized(r *http.Request) bool {
	return r.Header.Get("Authorization") == "Bearer "+testToken
}

func (f *fakeAuction) find(id string) (int, bool) {
	for i, l := range f.listings {
		if l.ID == id {
			return i, true
		}
	}
	return 0, false
}

func (f *fakeAuction) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds model.LoginCredentials
		_ = json.NewDecoder(r.Body).Decode(&creds)
		if creds.Email != testEmail || creds.Password != testPassword {
			writeError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		writeData(w, http.StatusOK, model.AuthUser{Name: "alice", Email: testEmail, AccessToken: testToken})
	})

	mux.HandleFunc("POST /auth/create-api-key", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(r) {
			writeError(w, http.StatusUnauthorized, "Missing authorization header")
			return
		}
		writeData(w, http.StatusCreated, model.APIKey{Name: "auction-gateway", Status: "ACTIVE", Key: testAPIKey})
	})

	mux.HandleFunc("GET /auction/listings", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		tag := r.URL.Query().Get("_tag")
		out := []model.Listing{}
		for _, l := range f.listings {
			if tag == "" || l.HasTag(tag) {
				out = append(out, l)
			}
		}
		writeData(w, http.StatusOK, out)
	})

	mux.HandleFunc("GET /auction/listings/search", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		q := strings.ToLower(r.URL.Query().Get("q"))
		out := []model.Listing{}
		for _, l := range f.listings {
			if strings.Contains(strings.ToLower(l.Title), q) {
				out = append(out, l)
			}
		}
		writeData(w, http.StatusOK, out)
	})

	mux.HandleFunc("GET /auction/listings/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		i, ok := f.find(r.PathValue("id"))
		if !ok {
			writeError(w, http.StatusNotFound, "No listing with such ID")
			return
		}
		writeData(w, http.StatusOK, f.listings[i])
	})

	mux.HandleFunc("POST /auction/listings/{id}/bids", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(r) || r.Header.Get(apiclient.APIKeyHeader) != testAPIKey {
			writeError(w, http.StatusUnauthorized, "No API key header was found")
			return
		}
		var bid model.CreateBidData
		_ = json.NewDecoder(r.Body).Decode(&bid)

		f.mu.Lock()
		defer f.mu.Unlock()
		i, ok := f.find(r.PathValue("id"))
		if !ok {
			writeError(w, http.StatusNotFound, "No listing with such ID")
			return
		}
		if bid.Amount > f.credits {
			writeError(w, http.StatusBadRequest, "You do not have enough balance to bid this amount")
			return
		}
		f.credits -= bid.Amount
		f.listings[i].Bids = append(f.listings[i].Bids, model.Bid{
			ID: "b-new", Amount: bid.Amount, Bidder: &model.Profile{Name: "alice"}, Created: time.Now(),
		})
		writeData(w, http.StatusCreated, f.listings[i])
	})

	mux.HandleFunc("GET /auction/profiles/{name}", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(apiclient.APIKeyHeader) != testAPIKey {
			writeError(w, http.StatusForbidden, "No API key header was found")
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		writeData(w, http.StatusOK, model.Profile{Name: r.PathValue("name"), Email: testEmail, Credits: f.credits})
	})

	mux.HandleFunc("GET /auction/profiles/{name}/listings", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, http.StatusOK, []model.Listing{})
	})

	mux.HandleFunc("GET /auction/profiles/{name}/bids", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		out := []model.Bid{}
		for _, l := range f.listings {
			for _, b := range l.Bids {
				if b.Bidder != nil && b.Bidder.Name == r.PathValue("name") {
					b.Listing = &model.Listing{ID: l.ID, Title: l.Title}
					out = append(out, b)
				}
			}
		}
		writeData(w, http.StatusOK, out)
	})

	mux.HandleFunc("GET /auction/profiles/{name}/wins", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusInternalServerError, "wins are temporarily unavailable")
	})

	return mux
}

// SetupTestRouter wires the real services against a fake upstream
func SetupTestRouter(t *testing.T) (*gin.Engine, *fakeAuction) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fake := newFakeAuction(time.Now())
	upstream := httptest.NewServer(fake.handler())
	t.Cleanup(upstream.Close)

	client := apiclient.New(apiclient.Config{BaseURL: upstream.URL, Timeout: 5 * time.Second}, nil)
	sessions := session.NewManager(repository.NewMemoryRepo(), client)
	client.SetCredentials(sessions)

	profileSvc := profiles.NewProfileService(client)
	router := server.SetupRouter(server.Dependencies{
		Session:   sessions,
		Listings:  listings.NewListingService(client),
		Profiles:  profileSvc,
		Dashboard: analytics.NewCollector(profileSvc, sessions),
	})
	return router, fake
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// login signs the gateway in as the fake user
func login(t *testing.T, router *gin.Engine) {
	t.Helper()
	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/auth/login", model.LoginCredentials{Email: testEmail, Password: testPassword})
	if w.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", w.Code, w.Body.String())
	}
}
