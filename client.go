package mojang

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	defaultApiUrl     = "https://api.mojang.com"
	defaultSessionUrl = "https://sessionserver.mojang.com"
)

// Client performs requests against the Mojang accounts and session servers.
// It is safe for concurrent use: every method issues exactly one outbound
// request and keeps no per-call state on the receiver.
type Client struct {
	http       *http.Client
	apiUrl     string
	sessionUrl string
}

func NewClient(http *http.Client, apiUrl string, sessionUrl string) *Client {
	if apiUrl == "" {
		apiUrl = defaultApiUrl
	}

	if sessionUrl == "" {
		sessionUrl = defaultSessionUrl
	}

	return &Client{
		http,
		strings.TrimSuffix(apiUrl, "/"),
		strings.TrimSuffix(sessionUrl, "/"),
	}
}

// Resolves a username to the uuid of the corresponding account.
// See https://wiki.vg/Mojang_API#Username_to_UUID
func (c *Client) UsernameToUuid(ctx context.Context, username string) (*ProfileInfo, error) {
	url := c.apiUrl + "/users/profiles/minecraft/" + username
	request, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}

	response, err := c.http.Do(request)
	if err != nil {
		return nil, &TransportError{err}
	}
	defer response.Body.Close()

	if response.StatusCode == 204 || response.StatusCode == 404 {
		return nil, &NotFoundError{Which: username}
	}

	if response.StatusCode != 200 {
		return nil, errorFromResponse(response)
	}

	var result *ProfileInfo

	body, _ := io.ReadAll(response.Body)
	err = json.Unmarshal(body, &result)
	if err != nil {
		return nil, &MalformedResponseError{"the response is not a valid json"}
	}

	// A literal null body unmarshals into a nil pointer without an error
	if result == nil || result.Id == "" {
		return nil, &MalformedResponseError{"the response doesn't contain an id field"}
	}

	return result, nil
}

// Obtains the profile with its textures property for the provided uuid.
// See https://wiki.vg/Mojang_API#UUID_to_Profile_and_Skin.2FCape
func (c *Client) UuidToProfile(ctx context.Context, uuid string, signed bool) (*Profile, error) {
	normalizedUuid := strings.ReplaceAll(uuid, "-", "")
	url := c.sessionUrl + "/session/minecraft/profile/" + normalizedUuid
	if signed {
		url += "?unsigned=false"
	}

	request, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}

	response, err := c.http.Do(request)
	if err != nil {
		return nil, &TransportError{err}
	}
	defer response.Body.Close()

	if response.StatusCode == 204 || response.StatusCode == 404 {
		return nil, &NotFoundError{Which: uuid}
	}

	if response.StatusCode != 200 {
		return nil, errorFromResponse(response)
	}

	var result *Profile

	body, _ := io.ReadAll(response.Body)
	err = json.Unmarshal(body, &result)
	if err != nil {
		return nil, &MalformedResponseError{"the response is not a valid json"}
	}

	if result == nil || result.Id == "" || result.Name == "" {
		return nil, &MalformedResponseError{"the response doesn't contain id and name fields"}
	}

	// An empty properties list is a valid answer, but an entirely absent
	// field means the service didn't return a session profile.
	if result.Props == nil {
		return nil, &MalformedResponseError{"the response doesn't contain a properties field"}
	}

	return result, nil
}

// Returns the history of usernames for the account with the provided uuid,
// ordered from the original name to the current one.
func (c *Client) NameHistory(ctx context.Context, uuid string) ([]*NameHistoryEntry, error) {
	normalizedUuid := strings.ReplaceAll(uuid, "-", "")
	url := c.apiUrl + "/user/profiles/" + normalizedUuid + "/names"
	request, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}

	response, err := c.http.Do(request)
	if err != nil {
		return nil, &TransportError{err}
	}
	defer response.Body.Close()

	if response.StatusCode == 204 || response.StatusCode == 404 {
		return nil, &NotFoundError{Which: uuid}
	}

	if response.StatusCode != 200 {
		return nil, errorFromResponse(response)
	}

	var result []*NameHistoryEntry

	body, _ := io.ReadAll(response.Body)
	err = json.Unmarshal(body, &result)
	if err != nil {
		return nil, &MalformedResponseError{"the response is not a valid json"}
	}

	if result == nil {
		return nil, &MalformedResponseError{"the response doesn't contain a list of names"}
	}

	return result, nil
}

// Fetches the current list of blocked server hashes.
// See https://wiki.vg/Mojang_API#Blocked_Servers
func (c *Client) BlockedServers(ctx context.Context) (*BlockedServers, error) {
	request, err := http.NewRequestWithContext(ctx, "GET", c.sessionUrl+"/blockedservers", nil)
	if err != nil {
		return nil, err
	}

	response, err := c.http.Do(request)
	if err != nil {
		return nil, &TransportError{err}
	}
	defer response.Body.Close()

	if response.StatusCode != 200 {
		return nil, errorFromResponse(response)
	}

	body, _ := io.ReadAll(response.Body)

	return &BlockedServers{Hashes: strings.Fields(string(body))}, nil
}

// Obtains sales statistics for the requested metric keys.
// See https://wiki.vg/Mojang_API#Statistics
func (c *Client) SalesStats(ctx context.Context, keys []MetricKey) (*SalesStats, error) {
	requestBody, _ := json.Marshal(map[string][]MetricKey{"metricKeys": keys})
	request, err := http.NewRequestWithContext(ctx, "POST", c.apiUrl+"/orders/statistics", bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, err
	}

	request.Header.Set("Content-Type", "application/json")

	response, err := c.http.Do(request)
	if err != nil {
		return nil, &TransportError{err}
	}
	defer response.Body.Close()

	if response.StatusCode != 200 {
		return nil, errorFromResponse(response)
	}

	var result *SalesStats

	body, _ := io.ReadAll(response.Body)
	err = json.Unmarshal(body, &result)
	if err != nil {
		return nil, &MalformedResponseError{"the response is not a valid json"}
	}

	if result == nil {
		return nil, &MalformedResponseError{"the response doesn't contain the statistics"}
	}

	return result, nil
}

type ProfileInfo struct {
	Id       string `json:"id"`
	Name     string `json:"name"`
	IsLegacy bool   `json:"legacy,omitempty"`
	IsDemo   bool   `json:"demo,omitempty"`
}

// ChangedToAt is a unix timestamp in milliseconds and is nil for
// the account's original name.
type NameHistoryEntry struct {
	Name        string `json:"name"`
	ChangedToAt *int64 `json:"changedToAt,omitempty"`
}

func errorFromResponse(response *http.Response) error {
	switch {
	case response.StatusCode == 400:
		type errorResponse struct {
			Error   string `json:"error"`
			Message string `json:"errorMessage"`
		}

		var decodedError *errorResponse
		body, _ := io.ReadAll(response.Body)
		_ = json.Unmarshal(body, &decodedError)
		if decodedError == nil {
			decodedError = &errorResponse{}
		}

		return &BadRequestError{ErrorType: decodedError.Error, Message: decodedError.Message}
	case response.StatusCode == 403:
		return &ForbiddenError{}
	case response.StatusCode == 429:
		return &TooManyRequestsError{}
	case response.StatusCode >= 500:
		return &ServerError{Status: response.StatusCode}
	}

	return fmt.Errorf("unexpected response status code: %d", response.StatusCode)
}
