package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/saveup-app/saveup/internal/model"
)

func TestUpdateStats_WritesExactlyStatColumns(t *testing.T) {
	var (
		gotMethod string
		gotQuery  string
		gotBody   map[string]any
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotQuery = r.URL.RawQuery
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decoding body: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewSupabaseClient(srv.URL, "anon-key", "token")
	stats := model.DecisionStats{
		TotalMoneySaved: 30,
		TotalHoursSaved: 2,
		TotalDecisions:  2,
		BuyCount:        1,
		DontBuyCount:    1,
	}
	if err := c.UpdateStats(context.Background(), "user-1", stats); err != nil {
		t.Fatalf("UpdateStats: %v", err)
	}

	if gotMethod != http.MethodPatch {
		t.Errorf("method = %s, want PATCH", gotMethod)
	}
	if gotQuery != "user_id=eq.user-1" {
		t.Errorf("query = %q, want user_id=eq.user-1", gotQuery)
	}

	wantKeys := []string{
		"total_money_saved", "total_hours_saved", "total_decisions",
		"buy_count", "dont_buy_count", "save_count", "let_me_think_count",
	}
	if len(gotBody) != len(wantKeys) {
		t.Errorf("payload has %d keys, want %d: %v", len(gotBody), len(wantKeys), gotBody)
	}
	for _, k := range wantKeys {
		if _, ok := gotBody[k]; !ok {
			t.Errorf("payload missing column %q", k)
		}
	}
	if gotBody["total_money_saved"] != 30.0 {
		t.Errorf("total_money_saved = %v, want 30", gotBody["total_money_saved"])
	}
}

func TestUpdateStats_AuthHeaders(t *testing.T) {
	var apikey, auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apikey = r.Header.Get("apikey")
		auth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewSupabaseClient(srv.URL, "anon-key", "user-token")
	if err := c.UpdateStats(context.Background(), "u", model.DecisionStats{}); err != nil {
		t.Fatalf("UpdateStats: %v", err)
	}

	if apikey != "anon-key" {
		t.Errorf("apikey header = %q, want anon-key", apikey)
	}
	if auth != "Bearer user-token" {
		t.Errorf("Authorization = %q, want Bearer user-token", auth)
	}
}

func TestFetchProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"user_id":"user-1","currency":"USD","total_decisions":5,"buy_count":2,"dont_buy_count":2,"save_count":1,"let_me_think_count":0}]`))
	}))
	defer srv.Close()

	c := NewSupabaseClient(srv.URL, "anon-key", "")
	p, err := c.FetchProfile(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("FetchProfile: %v", err)
	}
	if p.UserID != "user-1" || p.TotalDecisions != 5 {
		t.Errorf("profile = %+v", p)
	}

	s := p.Stats()
	if s.BuyCount+s.DontBuyCount+s.SaveCount+s.LetMeThinkCount != s.TotalDecisions {
		t.Errorf("remote stats counts do not sum: %+v", s)
	}
}

func TestFetchProfile_EmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewSupabaseClient(srv.URL, "anon-key", "")
	if _, err := c.FetchProfile(context.Background(), "ghost"); !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("err = %v, want ErrProfileNotFound", err)
	}
}

func TestClient_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewSupabaseClient(srv.URL, "anon-key", "expired")
	err := c.UpdateStats(context.Background(), "u", model.DecisionStats{})
	if !errors.Is(err, ErrUnauthorized) {
		t.Errorf("err = %v, want ErrUnauthorized", err)
	}
}
