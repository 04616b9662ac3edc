package youtube

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseReference_ChannelID(t *testing.T) {
	ref, err := ParseReference("https://www.youtube.com/channel/UC123abc")
	require.NoError(t, err)
	require.Equal(t, Reference{Kind: RefChannelID, ID: "UC123abc"}, ref)
	require.True(t, ref.IsChannel())
}

func TestParseReference_Handle(t *testing.T) {
	ref, err := ParseReference("https://youtube.com/@somecreator")
	require.NoError(t, err)
	require.Equal(t, Reference{Kind: RefHandle, ID: "somecreator"}, ref)
	require.True(t, ref.IsChannel())
}

func TestParseReference_HandleShortsSection(t *testing.T) {
	ref, err := ParseReference("https://www.youtube.com/@somecreator/shorts")
	require.NoError(t, err)
	require.Equal(t, Reference{Kind: RefHandle, ID: "somecreator", ShortsScoped: true}, ref)
}

func TestParseReference_LegacyAlias(t *testing.T) {
	ref, err := ParseReference("https://www.youtube.com/c/OldSchoolName")
	require.NoError(t, err)
	require.Equal(t, Reference{Kind: RefLegacyAlias, ID: "OldSchoolName"}, ref)
}

func TestParseReference_WatchURL(t *testing.T) {
	ref, err := ParseReference("https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s")
	require.NoError(t, err)
	require.Equal(t, Reference{Kind: RefVideo, ID: "dQw4w9WgXcQ"}, ref)
	require.False(t, ref.IsChannel())
}

func TestParseReference_ShortLink(t *testing.T) {
	ref, err := ParseReference("https://youtu.be/dQw4w9WgXcQ?si=xyz")
	require.NoError(t, err)
	require.Equal(t, Reference{Kind: RefVideo, ID: "dQw4w9WgXcQ"}, ref)
}

func TestParseReference_ShortsVideo(t *testing.T) {
	ref, err := ParseReference("https://www.youtube.com/shorts/abc123def45")
	require.NoError(t, err)
	require.Equal(t, Reference{Kind: RefShorts, ID: "abc123def45"}, ref)
	require.False(t, ref.IsChannel())
}

func TestParseReference_SchemelessInput(t *testing.T) {
	ref, err := ParseReference("youtube.com/@somecreator")
	require.NoError(t, err)
	require.Equal(t, RefHandle, ref.Kind)
	require.Equal(t, "somecreator", ref.ID)
}

func TestParseReference_MobileHost(t *testing.T) {
	ref, err := ParseReference("https://m.youtube.com/watch?v=dQw4w9WgXcQ")
	require.NoError(t, err)
	require.Equal(t, RefVideo, ref.Kind)
}

func TestParseReference_SubdomainHosts(t *testing.T) {
	ref, err := ParseReference("https://music.youtube.com/channel/UC123abc")
	require.NoError(t, err)
	require.Equal(t, Reference{Kind: RefChannelID, ID: "UC123abc"}, ref)

	_, err = ParseReference("https://notyoutube.com/watch?v=dQw4w9WgXcQ")
	require.ErrorIs(t, err, ErrNotYouTubeURL)

	_, err = ParseReference("https://evil-youtube.com/watch?v=dQw4w9WgXcQ")
	require.ErrorIs(t, err, ErrNotYouTubeURL)
}

func TestParseReference_NotYouTube(t *testing.T) {
	_, err := ParseReference("https://vimeo.com/12345")
	require.ErrorIs(t, err, ErrNotYouTubeURL)

	_, err = ParseReference("")
	require.ErrorIs(t, err, ErrNotYouTubeURL)
}

func TestParseReference_UnsupportedPath(t *testing.T) {
	_, err := ParseReference("https://www.youtube.com/feed/trending")
	require.ErrorIs(t, err, ErrUnsupportedReference)

	_, err = ParseReference("https://www.youtube.com/watch")
	require.ErrorIs(t, err, ErrUnsupportedReference)
}
