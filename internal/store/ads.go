package store

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/moto-tn/catalog-service/internal/port/storage"
)

// Zone is a named ad-placement slot used to scope campaign selection.
type Zone string

const (
	ZoneTopBanner     Zone = "top_banner"
	ZoneSidebar       Zone = "sidebar"
	ZoneFeed          Zone = "feed"
	ZoneListingDetail Zone = "listing_detail"
)

func ParseZone(s string) (Zone, error) {
	switch Zone(s) {
	case ZoneTopBanner, ZoneSidebar, ZoneFeed, ZoneListingDetail:
		return Zone(s), nil
	}
	return "", fmt.Errorf("unknown ad zone %q", s)
}

// Campaign is an advertiser's creative for one zone. StartDate/EndDate are
// advisory: serving only checks IsActive, campaigns outside their date range
// still rotate.
type Campaign struct {
	ID          int64     `json:"id"`
	Zone        Zone      `json:"zone"`
	IsActive    bool      `json:"is_active"`
	Client      string    `json:"client"`
	Title       string    `json:"title"`
	MediaURL    string    `json:"media_url,omitempty"`
	Description string    `json:"description,omitempty"`
	CTAText     string    `json:"cta_text,omitempty"`
	Views       uint64    `json:"views"`
	Clicks      uint64    `json:"clicks"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
}

// CampaignInput carries the admin-supplied fields of a new campaign. The
// store assigns the id and zeroes the counters.
type CampaignInput struct {
	Zone        Zone      `json:"zone"`
	IsActive    bool      `json:"is_active"`
	Client      string    `json:"client"`
	Title       string    `json:"title"`
	MediaURL    string    `json:"media_url"`
	Description string    `json:"description"`
	CTAText     string    `json:"cta_text"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
}

// CampaignPatch is a partial update; nil fields are left untouched.
type CampaignPatch struct {
	Zone        *Zone      `json:"zone,omitempty"`
	IsActive    *bool      `json:"is_active,omitempty"`
	Client      *string    `json:"client,omitempty"`
	Title       *string    `json:"title,omitempty"`
	MediaURL    *string    `json:"media_url,omitempty"`
	Description *string    `json:"description,omitempty"`
	CTAText     *string    `json:"cta_text,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

var ErrCampaignNotFound = errors.New("ad campaign not found")

const adsKey = "catalog:ads"

// AdsStore holds the ad campaigns and serves zone-scoped random rotation.
type AdsStore struct {
	inner *Store[[]Campaign]

	mu     sync.Mutex
	nextID int64
}

func NewAdsStore(ctx context.Context, backend storage.Store, logger *zap.Logger) *AdsStore {
	inner := New(ctx, backend, adsKey, []Campaign{}, logger)
	nextID := int64(1)
	for _, c := range inner.Get() {
		if c.ID >= nextID {
			nextID = c.ID + 1
		}
	}
	return &AdsStore{inner: inner, nextID: nextID}
}

// AdForZone picks uniformly at random among the active campaigns of the
// zone, or nil when the zone has none. Re-invocation may return a different
// campaign; that is the rotation.
func (a *AdsStore) AdForZone(zone Zone) *Campaign {
	var matching []Campaign
	for _, c := range a.inner.Get() {
		if c.IsActive && c.Zone == zone {
			matching = append(matching, c)
		}
	}
	if len(matching) == 0 {
		return nil
	}
	picked := matching[rand.Intn(len(matching))]
	return &picked
}

// TrackView increments the view counter. Unknown ids are a no-op.
func (a *AdsStore) TrackView(ctx context.Context, id int64) {
	a.bump(ctx, id, func(c *Campaign) { c.Views++ })
}

// TrackClick increments the click counter. Unknown ids are a no-op.
func (a *AdsStore) TrackClick(ctx context.Context, id int64) {
	a.bump(ctx, id, func(c *Campaign) { c.Clicks++ })
}

func (a *AdsStore) bump(ctx context.Context, id int64, apply func(*Campaign)) {
	a.inner.Update(ctx, func(cs []Campaign) []Campaign {
		next := cloneCampaigns(cs)
		for i := range next {
			if next[i].ID == id {
				apply(&next[i])
				break
			}
		}
		return next
	})
}

// Add creates a campaign with a fresh id (never reused within the session)
// and zeroed counters.
func (a *AdsStore) Add(ctx context.Context, in CampaignInput) Campaign {
	a.mu.Lock()
	id := a.nextID
	a.nextID++
	a.mu.Unlock()

	c := Campaign{
		ID:          id,
		Zone:        in.Zone,
		IsActive:    in.IsActive,
		Client:      in.Client,
		Title:       in.Title,
		MediaURL:    in.MediaURL,
		Description: in.Description,
		CTAText:     in.CTAText,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
	}
	a.inner.Update(ctx, func(cs []Campaign) []Campaign {
		next := cloneCampaigns(cs)
		return append(next, c)
	})
	return c
}

func (a *AdsStore) Update(ctx context.Context, id int64, patch CampaignPatch) (Campaign, error) {
	var updated *Campaign
	a.inner.Update(ctx, func(cs []Campaign) []Campaign {
		next := cloneCampaigns(cs)
		for i := range next {
			if next[i].ID != id {
				continue
			}
			applyPatch(&next[i], patch)
			c := next[i]
			updated = &c
			break
		}
		return next
	})
	if updated == nil {
		return Campaign{}, ErrCampaignNotFound
	}
	return *updated, nil
}

func (a *AdsStore) Delete(ctx context.Context, id int64) error {
	found := false
	a.inner.Update(ctx, func(cs []Campaign) []Campaign {
		next := make([]Campaign, 0, len(cs))
		for _, c := range cs {
			if c.ID == id {
				found = true
				continue
			}
			next = append(next, c)
		}
		return next
	})
	if !found {
		return ErrCampaignNotFound
	}
	return nil
}

// List returns a copy of all campaigns in insertion order.
func (a *AdsStore) List() []Campaign {
	return cloneCampaigns(a.inner.Get())
}

func (a *AdsStore) Subscribe(fn func([]Campaign)) func() {
	return a.inner.Subscribe(fn)
}

func applyPatch(c *Campaign, p CampaignPatch) {
	if p.Zone != nil {
		c.Zone = *p.Zone
	}
	if p.IsActive != nil {
		c.IsActive = *p.IsActive
	}
	if p.Client != nil {
		c.Client = *p.Client
	}
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.MediaURL != nil {
		c.MediaURL = *p.MediaURL
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.CTAText != nil {
		c.CTAText = *p.CTAText
	}
	if p.StartDate != nil {
		c.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		c.EndDate = *p.EndDate
	}
}

func cloneCampaigns(cs []Campaign) []Campaign {
	next := make([]Campaign, len(cs))
	copy(next, cs)
	return next
}
