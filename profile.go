package weibo

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

const profileBaseURL = "https://weibo.com/"

// Profile is the normalized user profile produced by the strategy.
//
// Mapping is lenient: fields missing from the Weibo response are left empty
// rather than reported as errors. Raw and JSON refer to the same decoded
// response object, kept for callers that need Weibo-specific fields.
type Profile struct {
	Raw         map[string]any `json:"_raw"`
	JSON        map[string]any `json:"_json"`
	Provider    string         `json:"provider"`
	ID          string         `json:"id"`
	DisplayName string         `json:"displayName"`
	Username    string         `json:"username,omitempty"`
	ProfileURL  string         `json:"profileUrl,omitempty"`
	PhotoURL    string         `json:"photoUrl,omitempty"`
	Gender      string         `json:"gender,omitempty"`
}

// FormatProfile maps a decoded users/show response into a Profile.
func FormatProfile(raw map[string]any) *Profile {
	p := &Profile{
		Provider:    ProviderName,
		ID:          firstString(raw, "idstr", "id"),
		DisplayName: firstString(raw, "screen_name", "name"),
		Username:    firstString(raw, "screen_name"),
		PhotoURL:    firstString(raw, "avatar_large", "avatar_hd", "profile_image_url"),
		Gender:      firstString(raw, "gender"),
		Raw:         raw,
		JSON:        raw,
	}
	if path := firstString(raw, "profile_url"); path != "" {
		p.ProfileURL = profileBaseURL + path
	}
	return p
}

// decodeObject parses body as a JSON object, keeping numbers exact.
// Weibo user ids exceed the float64 integer range.
func decodeObject(body []byte, what string) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return nil, errors.Join(ErrDecodeFailed, fmt.Errorf("decode %s: %w", what, err))
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrDecodeFailed, fmt.Errorf("decode %s: trailing data after JSON object", what))
	}
	if obj == nil {
		return nil, errors.Join(ErrDecodeFailed, fmt.Errorf("decode %s: not a JSON object", what))
	}
	return obj, nil
}

// firstString returns the first non-empty value among keys, formatting
// numbers and strings alike. Other types are ignored.
func firstString(raw map[string]any, keys ...string) string {
	for _, k := range keys {
		switch v := raw[k].(type) {
		case string:
			if v != "" {
				return v
			}
		case json.Number:
			return v.String()
		case float64:
			return fmt.Sprintf("%.0f", v)
		}
	}
	return ""
}
