package di

import (
	"net/http"
	"net/url"

	"github.com/defval/di"
	"github.com/spf13/viper"

	"ely.by/mojang"
)

var mojangDiOptions = di.Options(
	di.Provide(newMojangApi),
	di.Provide(newProfileProvider),
)

func newMojangApi(config *viper.Viper, httpClient *http.Client) (*mojang.Client, error) {
	apiUrl := config.GetString("mojang.api_url")
	if apiUrl != "" {
		if _, err := url.ParseRequestURI(apiUrl); err != nil {
			return nil, err
		}
	}

	sessionUrl := config.GetString("mojang.session_url")
	if sessionUrl != "" {
		if _, err := url.ParseRequestURI(sessionUrl); err != nil {
			return nil, err
		}
	}

	return mojang.NewClient(httpClient, apiUrl, sessionUrl), nil
}

func newProfileProvider(api *mojang.Client) *mojang.ProfileProvider {
	return mojang.NewProfileProvider(api.UsernameToUuid, api.UuidToProfile)
}
