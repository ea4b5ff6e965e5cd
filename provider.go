package mojang

import (
	"context"
	"strings"

	"github.com/brunomvsouza/singleflight"
)

type UsernameToUuidFunc func(ctx context.Context, username string) (*ProfileInfo, error)

type UuidToProfileFunc func(ctx context.Context, uuid string, signed bool) (*Profile, error)

// ProfileProvider resolves a username straight to its signed profile.
// Simultaneous requests for the same username are collapsed into a single
// pair of API calls.
type ProfileProvider struct {
	UsernameToUuidEndpoint UsernameToUuidFunc
	UuidToProfileEndpoint  UuidToProfileFunc

	group singleflight.Group[string, *Profile]
}

func NewProfileProvider(
	usernameToUuidEndpoint UsernameToUuidFunc,
	uuidToProfileEndpoint UuidToProfileFunc,
) *ProfileProvider {
	return &ProfileProvider{
		UsernameToUuidEndpoint: usernameToUuidEndpoint,
		UuidToProfileEndpoint:  uuidToProfileEndpoint,
	}
}

func (p *ProfileProvider) GetForUsername(ctx context.Context, username string) (*Profile, error) {
	if err := ValidateUsername(username); err != nil {
		return nil, err
	}

	username = strings.ToLower(username)

	result, err, _ := p.group.Do(username, func() (*Profile, error) {
		info, err := p.UsernameToUuidEndpoint(ctx, username)
		if err != nil {
			return nil, err
		}

		return p.UuidToProfileEndpoint(ctx, info.Id, true)
	})

	return result, err
}
