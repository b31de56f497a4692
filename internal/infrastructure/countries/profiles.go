package countries

import (
	_ "embed"

	"github.com/KianoushAmirpour/detection_server/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed profiles.yaml
var profilesYAML []byte

var defaultHistory = domain.CountryHistory{
	History: "Negara ini memiliki sejarah dan budaya yang unik. Untuk informasi sejarah yang lebih lengkap, silakan konsultasi sumber-sumber sejarah dan ensiklopedia yang terpercaya.",
	Sectors: []string{"Pertanian", "Industri", "Jasa", "Pariwisata", "Perdagangan"},
}

// Profiles holds the hand curated history, sector and government tables,
// keyed by the common english country name.
type Profiles struct {
	Histories   map[string]domain.CountryHistory `yaml:"histories"`
	Governments map[string]string                `yaml:"governments"`
}

func LoadProfiles() (*Profiles, error) {
	return ParseProfiles(profilesYAML)
}

func ParseProfiles(data []byte) (*Profiles, error) {
	var p Profiles
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, domain.NewDomainError(domain.ErrCodeInternal, "failed to parse country profiles", err)
	}
	return &p, nil
}

func (p *Profiles) History(name string) domain.CountryHistory {
	if h, ok := p.Histories[name]; ok {
		return h
	}
	return defaultHistory
}

func (p *Profiles) Government(name string) (string, bool) {
	gov, ok := p.Governments[name]
	return gov, ok
}
