package mojang

import (
	"encoding/base64"
	"encoding/json"
	"sync"
)

type Profile struct {
	Id       string      `json:"id"`
	Name     string      `json:"name"`
	IsLegacy bool        `json:"legacy,omitempty"`
	Props    []*Property `json:"properties"`

	once            sync.Once
	decodedTextures *TexturesProp
	decodedErr      error
}

type Property struct {
	Name      string `json:"name"`
	Signature string `json:"signature,omitempty"`
	Value     string `json:"value"`
}

type TexturesProp struct {
	Timestamp   int64             `json:"timestamp"`
	ProfileID   string            `json:"profileId"`
	ProfileName string            `json:"profileName"`
	Textures    *TexturesResponse `json:"textures"`
}

type TexturesResponse struct {
	Skin *SkinTexturesResponse `json:"SKIN,omitempty"`
	Cape *CapeTexturesResponse `json:"CAPE,omitempty"`
}

type SkinTexturesResponse struct {
	Url      string                `json:"url"`
	Metadata *SkinTexturesMetadata `json:"metadata,omitempty"`
}

type SkinTexturesMetadata struct {
	Model string `json:"model"`
}

type CapeTexturesResponse struct {
	Url string `json:"url"`
}

// DecodeTextures decodes the value of the profile's textures property.
// The result is memoized, so repeated calls are free and always yield the
// same value. When several properties carry the textures name, the first
// one wins.
func (t *Profile) DecodeTextures() (*TexturesProp, error) {
	t.once.Do(func() {
		var texturesProp string
		found := false
		for _, prop := range t.Props {
			if prop.Name == "textures" {
				texturesProp = prop.Value
				found = true
				break
			}
		}

		if !found {
			t.decodedErr = &MissingTexturesError{}
			return
		}

		t.decodedTextures, t.decodedErr = DecodeTextures(texturesProp)
	})

	return t.decodedTextures, t.decodedErr
}

// Textures returns the skin and cape references carried by the profile's
// textures property.
func (t *Profile) Textures() (*TexturesResponse, error) {
	decoded, err := t.DecodeTextures()
	if err != nil {
		return nil, err
	}

	return decoded.Textures, nil
}

// SlimModel reports whether the profile's skin uses the slim (Alex) model.
func (t *Profile) SlimModel() bool {
	textures, err := t.Textures()
	if err != nil {
		return false
	}

	return textures.Skin.Metadata != nil && textures.Skin.Metadata.Model == "slim"
}

func DecodeTextures(encodedTextures string) (*TexturesProp, error) {
	jsonStr, err := base64.StdEncoding.DecodeString(encodedTextures)
	if err != nil {
		return nil, &TexturesDecodeError{err}
	}

	var result *TexturesProp
	err = json.Unmarshal(jsonStr, &result)
	if err != nil {
		return nil, &MalformedTexturesError{"the payload is not a valid json"}
	}

	if result == nil || result.Textures == nil {
		return nil, &MalformedTexturesError{"the payload doesn't contain a textures object"}
	}

	// The service always serves at least the default skin, so its absence
	// means the payload is broken, not that the account is skinless.
	if result.Textures.Skin == nil || result.Textures.Skin.Url == "" {
		return nil, &MalformedTexturesError{"the payload doesn't contain a skin url"}
	}

	return result, nil
}

func EncodeTextures(textures *TexturesProp) string {
	jsonSerialized, _ := json.Marshal(textures)
	return base64.StdEncoding.EncodeToString(jsonSerialized)
}
