package countries

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/KianoushAmirpour/detection_server/internal/domain"
)

const DefaultBaseURL = "https://restcountries.com/v3.1"

const SearchFields = "name,official,capital,region,subregion,population,area,borders,languages,currencies,timezones,latlng,landlocked,independent,unMember,status,flags,coatOfArms,capitalInfo,postalCode,startOfWeek,continents,gini,fifa"

// responses above this size are not a country search result
const maxBodySize = 8 << 20

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{BaseURL: baseURL, HTTPClient: &http.Client{Timeout: timeout}}
}

func (c *Client) SearchByName(ctx context.Context, name string) ([]domain.Country, error) {
	endpoint := fmt.Sprintf("%s/name/%s?fields=%s", c.BaseURL, url.PathEscape(name), SearchFields)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, domain.NewDomainError(domain.ErrCodeInternal, domain.MsgCountryFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, domain.NewDomainError(domain.ErrCodeExternal, domain.MsgCountryFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.NewDomainError(domain.ErrCodeNotFound, domain.MsgCountryNotFound, nil)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, domain.NewDomainError(domain.ErrCodeExternal, domain.MsgCountryFailed,
			fmt.Errorf("country api responded with status %d", resp.StatusCode))
	}

	var countries []domain.Country
	err = json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&countries)
	if err != nil {
		return nil, domain.NewDomainError(domain.ErrCodeExternal, domain.MsgCountryFailed, err)
	}
	return countries, nil
}
