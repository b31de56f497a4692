package domain

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
)

type CountryName struct {
	Common     string                       `json:"common"`
	Official   string                       `json:"official"`
	NativeName map[string]CountryNativeName `json:"nativeName,omitempty"`
}

type CountryNativeName struct {
	Common   string `json:"common"`
	Official string `json:"official"`
}

type CountryFlags struct {
	Png string `json:"png"`
	Svg string `json:"svg"`
	Alt string `json:"alt,omitempty"`
}

type CountryCurrency struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

type CountryCapitalInfo struct {
	Latlng []float64 `json:"latlng,omitempty"`
}

type CountryPostalCode struct {
	Format string `json:"format,omitempty"`
	Regex  string `json:"regex,omitempty"`
}

type CountryCoatOfArms struct {
	Png string `json:"png,omitempty"`
	Svg string `json:"svg,omitempty"`
}

// Country is a single record of the REST Countries v3.1 api.
type Country struct {
	Name        CountryName                `json:"name"`
	Latlng      []float64                  `json:"latlng"`
	Population  int64                      `json:"population"`
	Flags       *CountryFlags              `json:"flags"`
	Region      string                     `json:"region"`
	Subregion   string                     `json:"subregion"`
	Capital     []string                   `json:"capital,omitempty"`
	Area        float64                    `json:"area"`
	Timezones   []string                   `json:"timezones"`
	Languages   map[string]string          `json:"languages,omitempty"`
	Currencies  map[string]CountryCurrency `json:"currencies,omitempty"`
	Independent *bool                      `json:"independent,omitempty"`
	UnMember    *bool                      `json:"unMember,omitempty"`
	Status      string                     `json:"status,omitempty"`
	Landlocked  *bool                      `json:"landlocked,omitempty"`
	Borders     []string                   `json:"borders,omitempty"`
	Fifa        string                     `json:"fifa,omitempty"`
	Continents  []string                   `json:"continents,omitempty"`
	StartOfWeek string                     `json:"startOfWeek,omitempty"`
	CapitalInfo *CountryCapitalInfo        `json:"capitalInfo,omitempty"`
	PostalCode  *CountryPostalCode         `json:"postalCode,omitempty"`
	Gini        map[string]float64         `json:"gini,omitempty"`
	CoatOfArms  *CountryCoatOfArms         `json:"coatOfArms,omitempty"`
}

// Valid reports whether the record carries a name, flags and coordinates.
func (c Country) Valid() bool {
	return c.Name.Common != "" && c.Flags != nil && c.Latlng != nil
}

func FilterValidCountries(countries []Country) []Country {
	valid := make([]Country, 0, len(countries))
	for _, c := range countries {
		if c.Valid() {
			valid = append(valid, c)
		}
	}
	return valid
}

type CountryHistory struct {
	History string   `json:"history" yaml:"history"`
	Sectors []string `json:"sectors" yaml:"sectors"`
}

type CountryProfile struct {
	Country            Country  `json:"country"`
	Coordinates        string   `json:"coordinates"`
	PopulationText     string   `json:"population_text"`
	PopulationCategory string   `json:"population_category"`
	AreaCategory       string   `json:"area_category"`
	DevelopmentStatus  string   `json:"development_status,omitempty"`
	GovernmentType     string   `json:"government_type"`
	History            string   `json:"history"`
	Sectors            []string `json:"sectors"`
}

type CountryRepository interface {
	SearchByName(ctx context.Context, name string) ([]Country, error)
}

type CountryCache interface {
	Get(ctx context.Context, name string) ([]Country, bool, error)
	Set(ctx context.Context, name string, countries []Country) error
}

type CountryProfileProvider interface {
	History(name string) CountryHistory
	Government(name string) (string, bool)
}

// ToDMS renders a decimal coordinate as degrees, minutes and seconds with
// the Indonesian hemisphere suffix (LU/LS for latitude, BT/BB for longitude).
func ToDMS(decimal float64, isLatitude bool) string {
	absolute := math.Abs(decimal)
	degrees := math.Floor(absolute)
	minutes := math.Floor((absolute - degrees) * 60)
	seconds := math.Round(((absolute-degrees)*60 - minutes) * 60)

	var direction string
	if isLatitude {
		direction = "LU"
		if decimal < 0 {
			direction = "LS"
		}
	} else {
		direction = "BT"
		if decimal < 0 {
			direction = "BB"
		}
	}

	return fmt.Sprintf("%d° %d′ %d″ %s", int(degrees), int(minutes), int(seconds), direction)
}

func FormatCoordinates(latlng []float64) string {
	if len(latlng) < 2 {
		return "Koordinat tidak tersedia"
	}
	return fmt.Sprintf("%s, %s", ToDMS(latlng[0], true), ToDMS(latlng[1], false))
}

// FormatPopulation groups digits the way id-ID does: 273.523.615
func FormatPopulation(population int64) string {
	if population <= 0 {
		return "Data tidak tersedia"
	}
	digits := strconv.FormatInt(population, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	return b.String()
}

func PopulationCategory(population int64) string {
	switch {
	case population > 100_000_000:
		return "Negara Berpenduduk Sangat Besar (>100 juta)"
	case population > 50_000_000:
		return "Negara Berpenduduk Besar (50-100 juta)"
	case population > 10_000_000:
		return "Negara Berpenduduk Menengah (10-50 juta)"
	case population > 1_000_000:
		return "Negara Berpenduduk Kecil (1-10 juta)"
	default:
		return "Negara Berpenduduk Sangat Kecil (<1 juta)"
	}
}

func AreaCategory(area float64) string {
	switch {
	case area > 1_000_000:
		return "Negara Sangat Luas (>1 juta km²)"
	case area > 100_000:
		return "Negara Luas (100rb-1jt km²)"
	case area > 10_000:
		return "Negara Menengah (10rb-100rb km²)"
	default:
		return "Negara Kecil (<10rb km²)"
	}
}

func DevelopmentStatus(c Country) string {
	status := ""
	if c.UnMember != nil && *c.UnMember {
		status = "Anggota Perserikatan Bangsa-Bangsa"
	}
	if c.Independent != nil && !*c.Independent {
		status = "Wilayah Dependensi/Teritorial"
	}
	return status
}

func GovernmentType(c Country, profiles CountryProfileProvider) string {
	if gov, ok := profiles.Government(c.Name.Common); ok {
		return gov
	}
	if c.Independent != nil && !*c.Independent {
		return "Wilayah Dependensi"
	}
	return "Sistem Pemerintahan (Memerlukan penelitian lebih lanjut)"
}

func NewCountryProfile(c Country, profiles CountryProfileProvider) CountryProfile {
	history := profiles.History(c.Name.Common)
	return CountryProfile{
		Country:            c,
		Coordinates:        FormatCoordinates(c.Latlng),
		PopulationText:     FormatPopulation(c.Population),
		PopulationCategory: PopulationCategory(c.Population),
		AreaCategory:       AreaCategory(c.Area),
		DevelopmentStatus:  DevelopmentStatus(c),
		GovernmentType:     GovernmentType(c, profiles),
		History:            history.History,
		Sectors:            history.Sectors,
	}
}
