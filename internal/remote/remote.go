package remote

import (
	"context"
	"fmt"

	"github.com/saveup-app/saveup/internal/model"
)

// Store is the full remote profile surface: the aggregate-stats write used
// by the reconciler plus the profile reads/writes used by setup and
// verification paths.
type Store interface {
	UpdateStats(ctx context.Context, userID string, stats model.DecisionStats) error
	FetchProfile(ctx context.Context, userID string) (*model.UserProfile, error)
	UpsertProfile(ctx context.Context, p model.UserProfile) error
	Close(ctx context.Context) error
}

// Options selects and configures a remote backend.
type Options struct {
	Backend     string // "supabase" (default) or "mongo"
	BaseURL     string
	AnonKey     string
	AccessToken string
	MongoURI    string
	MongoDB     string
}

// New returns the configured remote store.
func New(ctx context.Context, opts Options) (Store, error) {
	switch opts.Backend {
	case "", "supabase":
		if opts.BaseURL == "" || opts.AnonKey == "" {
			return nil, fmt.Errorf("remote: supabase backend needs base_url and anon_key")
		}
		return supabaseStore{NewSupabaseClient(opts.BaseURL, opts.AnonKey, opts.AccessToken)}, nil
	case "mongo":
		if opts.MongoURI == "" {
			return nil, fmt.Errorf("remote: mongo backend needs mongo_uri")
		}
		db := opts.MongoDB
		if db == "" {
			db = "saveup"
		}
		return NewMongoStore(ctx, opts.MongoURI, db)
	default:
		return nil, fmt.Errorf("remote: unknown backend %q", opts.Backend)
	}
}

// supabaseStore adapts SupabaseClient to the Store interface; the HTTP
// client holds no connection state to close.
type supabaseStore struct {
	*SupabaseClient
}

func (supabaseStore) Close(context.Context) error { return nil }
