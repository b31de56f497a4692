package redis

import (
	"context"
	"testing"
	"time"

	"github.com/KianoushAmirpour/detection_server/internal/domain"
)

func TestCountryCacheRoundTrip(t *testing.T) {
	mr, client := newTestRedis(t)
	cache := NewCountryCache(client, time.Minute)
	ctx := context.Background()

	if _, ok, err := cache.Get(ctx, "Indonesia"); err != nil || ok {
		t.Fatalf("expected a miss, got ok=%v err=%v", ok, err)
	}

	countries := []domain.Country{{
		Name:   domain.CountryName{Common: "Indonesia"},
		Flags:  &domain.CountryFlags{Png: "id.png"},
		Latlng: []float64{-5, 120},
	}}
	if err := cache.Set(ctx, " Indonesia ", countries); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !mr.Exists("countries:search:indonesia") {
		t.Fatalf("expected normalized key, have %v", mr.Keys())
	}

	got, ok, err := cache.Get(ctx, "INDONESIA")
	if err != nil || !ok {
		t.Fatalf("expected a hit, got ok=%v err=%v", ok, err)
	}
	if len(got) != 1 || got[0].Name.Common != "Indonesia" || got[0].Flags == nil {
		t.Errorf("unexpected cached countries %+v", got)
	}

	mr.FastForward(2 * time.Minute)
	if _, ok, _ := cache.Get(ctx, "indonesia"); ok {
		t.Errorf("entry should expire after the ttl")
	}
}

func TestCountryCacheCorruptEntry(t *testing.T) {
	mr, client := newTestRedis(t)
	cache := NewCountryCache(client, time.Minute)

	mr.Set(cache.Key("malaysia"), "{not json")
	if _, ok, err := cache.Get(context.Background(), "malaysia"); ok || err != nil {
		t.Errorf("corrupt entry should be a miss, got ok=%v err=%v", ok, err)
	}
}

func TestCountryCacheUnavailable(t *testing.T) {
	mr, client := newTestRedis(t)
	cache := NewCountryCache(client, time.Minute)
	mr.Close()

	if _, _, err := cache.Get(context.Background(), "brunei"); err == nil {
		t.Errorf("expected an error from a closed server")
	}
}
