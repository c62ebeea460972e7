// Package remote implements the user_profiles stores the aggregate
// statistics are mirrored into.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/saveup-app/saveup/internal/model"
)

const (
	requestTimeout = 10 * time.Second
	maxBodySize    = 1 << 20 // 1 MB
)

var (
	// ErrUnauthorized indicates the access token is expired or invalid.
	ErrUnauthorized = errors.New("remote: unauthorized (access token expired or invalid)")
	// ErrRateLimited indicates the API rate limit was hit.
	ErrRateLimited = errors.New("remote: rate limited")
	// ErrProfileNotFound indicates no profile row exists for the user.
	ErrProfileNotFound = errors.New("remote: profile not found")
)

// statsColumns is the exact set of aggregate columns the reconciler owns.
// Every stats write sends all six plus the total, nothing else.
type statsColumns struct {
	TotalMoneySaved float64 `json:"total_money_saved"`
	TotalHoursSaved float64 `json:"total_hours_saved"`
	TotalDecisions  int     `json:"total_decisions"`
	BuyCount        int     `json:"buy_count"`
	DontBuyCount    int     `json:"dont_buy_count"`
	SaveCount       int     `json:"save_count"`
	LetMeThinkCount int     `json:"let_me_think_count"`
}

// SupabaseClient talks to a hosted Supabase (PostgREST) user_profiles table.
type SupabaseClient struct {
	baseURL     string
	anonKey     string
	accessToken string
	http        *http.Client
}

// NewSupabaseClient creates a client for the given project URL and keys.
// accessToken may equal anonKey for service-level access.
func NewSupabaseClient(baseURL, anonKey, accessToken string) *SupabaseClient {
	if accessToken == "" {
		accessToken = anonKey
	}
	return &SupabaseClient{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		anonKey:     anonKey,
		accessToken: accessToken,
		http:        &http.Client{},
	}
}

// UpdateStats overwrites the aggregate stat columns for the given user.
func (c *SupabaseClient) UpdateStats(ctx context.Context, userID string, stats model.DecisionStats) error {
	payload := statsColumns{
		TotalMoneySaved: stats.TotalMoneySaved,
		TotalHoursSaved: stats.TotalHoursSaved,
		TotalDecisions:  stats.TotalDecisions,
		BuyCount:        stats.BuyCount,
		DontBuyCount:    stats.DontBuyCount,
		SaveCount:       stats.SaveCount,
		LetMeThinkCount: stats.LetMeThinkCount,
	}
	_, err := c.do(ctx, http.MethodPatch, c.profileURL(userID), payload, "return=minimal")
	return err
}

// FetchProfile returns the profile row for the given user.
func (c *SupabaseClient) FetchProfile(ctx context.Context, userID string) (*model.UserProfile, error) {
	body, err := c.do(ctx, http.MethodGet, c.profileURL(userID), nil, "")
	if err != nil {
		return nil, err
	}

	var profiles []model.UserProfile
	if err := json.Unmarshal(body, &profiles); err != nil {
		return nil, fmt.Errorf("remote: parsing profile: %w", err)
	}
	if len(profiles) == 0 {
		return nil, ErrProfileNotFound
	}
	return &profiles[0], nil
}

// UpsertProfile creates or replaces the profile row during onboarding.
// The stat columns are deliberately absent so an existing row's aggregates
// survive a profile edit.
func (c *SupabaseClient) UpsertProfile(ctx context.Context, p model.UserProfile) error {
	payload := map[string]any{
		"user_id":              p.UserID,
		"salary_amount":        p.SalaryAmount,
		"salary_type":          p.SalaryType,
		"hourly_wage":          p.HourlyWage,
		"currency":             p.Currency,
		"region":               p.Region,
		"questionnaire_score":  p.QuestionnaireScore,
		"onboarding_completed": p.OnboardingCompleted,
	}
	if p.QuestionnaireAnswers != nil {
		payload["questionnaire_answers"] = p.QuestionnaireAnswers
	}

	_, err := c.do(ctx, http.MethodPost, c.tableURL(),
		payload, "resolution=merge-duplicates,return=minimal")
	return err
}

func (c *SupabaseClient) tableURL() string {
	return c.baseURL + "/rest/v1/user_profiles"
}

func (c *SupabaseClient) profileURL(userID string) string {
	return c.tableURL() + "?user_id=eq." + url.QueryEscape(userID)
}

// do performs an authenticated request and returns the response body.
func (c *SupabaseClient) do(ctx context.Context, method, rawURL string, payload any, prefer string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("remote: encoding request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, fmt.Errorf("remote: creating request: %w", err)
	}

	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("remote: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	case http.StatusTooManyRequests:
		return nil, ErrRateLimited
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("remote: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("remote: reading response: %w", err)
	}
	return data, nil
}
