package weibo_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/weibo"
)

func TestFormatProfile(t *testing.T) {
	t.Parallel()

	t.Run("screen name preferred", func(t *testing.T) {
		t.Parallel()
		raw := map[string]any{
			"idstr":             "1",
			"screen_name":       "monalisa octocat",
			"name":              "Mona Lisa",
			"profile_url":       "u/1",
			"avatar_large":      "https://tva1.sinaimg.cn/large/1.jpg",
			"profile_image_url": "https://tva1.sinaimg.cn/small/1.jpg",
			"gender":            "f",
		}
		p := weibo.FormatProfile(raw)
		require.Equal(t, "weibo", p.Provider)
		require.Equal(t, "1", p.ID)
		require.Equal(t, "monalisa octocat", p.DisplayName)
		require.Equal(t, "monalisa octocat", p.Username)
		require.Equal(t, "https://weibo.com/u/1", p.ProfileURL)
		require.Equal(t, "https://tva1.sinaimg.cn/large/1.jpg", p.PhotoURL)
		require.Equal(t, "f", p.Gender)
		require.Equal(t, raw, p.Raw)
		require.Equal(t, raw, p.JSON)
	})

	t.Run("falls back to name", func(t *testing.T) {
		t.Parallel()
		p := weibo.FormatProfile(map[string]any{"idstr": "2", "name": "Mona Lisa"})
		require.Equal(t, "Mona Lisa", p.DisplayName)
	})

	t.Run("numeric id when idstr absent", func(t *testing.T) {
		t.Parallel()
		p := weibo.FormatProfile(map[string]any{"id": json.Number("5645754790")})
		require.Equal(t, "5645754790", p.ID)
	})

	t.Run("missing fields are empty", func(t *testing.T) {
		t.Parallel()
		p := weibo.FormatProfile(map[string]any{})
		require.Equal(t, "weibo", p.Provider)
		require.Empty(t, p.ID)
		require.Empty(t, p.DisplayName)
		require.Empty(t, p.ProfileURL)
		require.NotNil(t, p.Raw)
	})

	t.Run("nil raw", func(t *testing.T) {
		t.Parallel()
		p := weibo.FormatProfile(nil)
		require.Equal(t, "weibo", p.Provider)
		require.Empty(t, p.ID)
	})
}
