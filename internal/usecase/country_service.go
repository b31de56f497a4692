package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/KianoushAmirpour/detection_server/internal/domain"
)

type CountryService struct {
	Repo     domain.CountryRepository
	Cache    domain.CountryCache
	Profiles domain.CountryProfileProvider
	Logger   domain.LoggingRepository
}

// NewCountryService accepts a nil cache, searches then always go upstream.
func NewCountryService(
	repo domain.CountryRepository,
	cache domain.CountryCache,
	profiles domain.CountryProfileProvider,
	logger domain.LoggingRepository,
) *CountryService {
	return &CountryService{Repo: repo, Cache: cache, Profiles: profiles, Logger: logger}
}

func (s *CountryService) Search(ctx context.Context, query string) ([]domain.CountryProfile, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrEmptyCountry
	}
	log := s.Logger.With("service.name", "country_search", "country.query", query)
	start := time.Now()

	countries, err := s.lookup(ctx, query, log)
	if err != nil {
		log.Error("failed to search country",
			"event.action", "search_country",
			"event.outcome", "failed",
			"error.message", err.Error())
		return nil, err
	}

	valid := domain.FilterValidCountries(countries)
	if len(valid) == 0 {
		log.Warn("country records incomplete", "country.received", len(countries))
		return nil, domain.NewDomainError(domain.ErrCodeExternal, domain.MsgCountryInvalid, nil)
	}

	profiles := make([]domain.CountryProfile, 0, len(valid))
	for _, c := range valid {
		profiles = append(profiles, domain.NewCountryProfile(c, s.Profiles))
	}

	log.Info("country search finished",
		"event.outcome", "success",
		"country.received", len(countries),
		"country.valid", len(valid),
		"event.duration", time.Since(start).Nanoseconds())
	return profiles, nil
}

func (s *CountryService) lookup(ctx context.Context, query string, log domain.LoggingRepository) ([]domain.Country, error) {
	if s.Cache != nil {
		cached, ok, err := s.Cache.Get(ctx, query)
		if err != nil {
			log.Warn("country cache read failed", "error.message", err.Error())
		} else if ok {
			log.Info("country cache hit")
			return cached, nil
		}
	}

	countries, err := s.Repo.SearchByName(ctx, query)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, query, countries); err != nil {
			log.Warn("country cache write failed", "error.message", err.Error())
		}
	}
	return countries, nil
}
