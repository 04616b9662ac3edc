package youtube

import (
	"errors"
	"net/url"
	"strings"
)

// Sentinel errors for URL parsing. Both reject the request; neither is
// retryable.
var (
	// ErrNotYouTubeURL means the host is not a recognized YouTube host.
	ErrNotYouTubeURL = errors.New("not a youtube url")
	// ErrUnsupportedReference means the host is recognized but no known
	// path pattern matched.
	ErrUnsupportedReference = errors.New("unsupported youtube url format")
)

// ReferenceKind discriminates what a parsed URL points at.
type ReferenceKind string

const (
	RefChannelID   ReferenceKind = "channel"
	RefHandle      ReferenceKind = "username"
	RefLegacyAlias ReferenceKind = "custom"
	RefVideo       ReferenceKind = "video"
	RefShorts      ReferenceKind = "shorts"
)

// Reference is a parsed, typed pointer to a channel, handle, alias, video
// or Short. ShortsScoped is set only for channel-like references whose
// path also names the channel's Shorts section.
type Reference struct {
	Kind         ReferenceKind
	ID           string
	ShortsScoped bool
}

// IsChannel reports whether the reference resolves to a channel rather
// than a single video.
func (r Reference) IsChannel() bool {
	switch r.Kind {
	case RefChannelID, RefHandle, RefLegacyAlias:
		return true
	}
	return false
}

// recognizedHost accepts YouTube proper, any of its subdomains (www, m,
// music, ...) and the youtu.be shortener.
func recognizedHost(host string) bool {
	return host == "youtube.com" || host == "youtu.be" || strings.HasSuffix(host, ".youtube.com")
}

// ParseReference classifies a YouTube URL. Resolution order, first match
// wins: channel-id path, handle (/@name), legacy alias (/c/name), watch
// query parameter, youtu.be shortlink, shorts path.
func ParseReference(raw string) (Reference, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Reference{}, ErrNotYouTubeURL
	}

	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		// Best effort: treat scheme-less input as https.
		u, err = url.Parse("https://" + raw)
		if err != nil {
			return Reference{}, ErrNotYouTubeURL
		}
	}

	host := normalizeHost(u.Host)
	if !recognizedHost(host) {
		return Reference{}, ErrNotYouTubeURL
	}

	path := u.EscapedPath()
	shortsScoped := strings.Contains(path, "/shorts")

	if id := pathSegmentAfter(path, "/channel/"); id != "" {
		return Reference{Kind: RefChannelID, ID: id, ShortsScoped: shortsScoped}, nil
	}
	if id := pathSegmentAfter(path, "/@"); id != "" {
		return Reference{Kind: RefHandle, ID: id, ShortsScoped: shortsScoped}, nil
	}
	if id := pathSegmentAfter(path, "/c/"); id != "" {
		return Reference{Kind: RefLegacyAlias, ID: id, ShortsScoped: shortsScoped}, nil
	}
	if strings.HasPrefix(path, "/watch") {
		if id := u.Query().Get("v"); id != "" {
			return Reference{Kind: RefVideo, ID: id}, nil
		}
	}
	if host == "youtu.be" {
		if id := firstPathSegment(path); id != "" {
			return Reference{Kind: RefVideo, ID: id}, nil
		}
	}
	if id := pathSegmentAfter(path, "/shorts/"); id != "" {
		return Reference{Kind: RefShorts, ID: id}, nil
	}

	return Reference{}, ErrUnsupportedReference
}

func normalizeHost(hostport string) string {
	h := strings.TrimSpace(strings.ToLower(hostport))
	if i := strings.LastIndex(h, ":"); i >= 0 {
		h = h[:i]
	}
	return strings.TrimSuffix(h, ".")
}

// pathSegmentAfter returns the path segment following prefix, stripped of
// any trailing segments. Empty when prefix is absent.
func pathSegmentAfter(path, prefix string) string {
	i := strings.Index(path, prefix)
	if i < 0 {
		return ""
	}
	return firstPathSegment(path[i+len(prefix):])
}

func firstPathSegment(p string) string {
	p = strings.TrimPrefix(strings.TrimSpace(p), "/")
	if p == "" {
		return ""
	}
	seg, _, _ := strings.Cut(p, "/")
	return strings.TrimSpace(seg)
}
