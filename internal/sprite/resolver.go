// Package sprite derives sprite image URLs for catalog entries.
//
// FromReference is the primary path and uses the catalog ID embedded in an
// entry's reference URL. FromName is the artwork fallback kept for link
// compatibility: it hashes the entry name into a pseudo-identifier that is not
// a catalog ID and will usually not resolve to a real image.
package sprite

import (
	"fmt"
	"strings"

	"github.com/Mondacars0165/PokeTest/internal/domain"
)

const (
	DefaultSpriteBase  = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon"
	DefaultArtworkBase = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/other/official-artwork"
)

// Resolver holds the URL bases images are formatted into
type Resolver struct {
	SpriteBase  string
	ArtworkBase string
}

// Default resolves against the public sprite repository
var Default = NewResolver(DefaultSpriteBase, DefaultArtworkBase)

// NewResolver creates a resolver, falling back to the public bases for empty values
func NewResolver(spriteBase, artworkBase string) Resolver {
	if spriteBase == "" {
		spriteBase = DefaultSpriteBase
	}
	if artworkBase == "" {
		artworkBase = DefaultArtworkBase
	}
	return Resolver{
		SpriteBase:  strings.TrimRight(spriteBase, "/"),
		ArtworkBase: strings.TrimRight(artworkBase, "/"),
	}
}

// FromReference returns {SpriteBase}/{id}.png where id is the second-to-last
// "/"-separated segment of ref. The segment must be a non-empty run of digits;
// anything else, including refs with fewer than two segments, is ErrDerivation.
func (r Resolver) FromReference(ref string) (string, error) {
	id, err := ExtractID(ref)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s.png", r.SpriteBase, id), nil
}

// FromName returns {ArtworkBase}/{pseudoID}.png. See PseudoID.
func (r Resolver) FromName(name string) string {
	return fmt.Sprintf("%s/%d.png", r.ArtworkBase, PseudoID(name))
}

// ExtractID returns the identifier segment of a reference URL
func ExtractID(ref string) (string, error) {
	parts := strings.Split(ref, "/")
	if len(parts) < 2 {
		return "", fmt.Errorf("%w: %q has no identifier segment", domain.ErrDerivation, ref)
	}
	seg := parts[len(parts)-2]
	if !isDigits(seg) {
		return "", fmt.Errorf("%w: %q is not a numeric segment of %q", domain.ErrDerivation, seg, ref)
	}
	return seg, nil
}

// PseudoID lower-cases name, strips everything outside [a-zA-Z0-9], and
// returns the Java String.hashCode of the result masked to 31 bits.
// The value is NOT a catalog ID.
func PseudoID(name string) int32 {
	return javaHashCode(cleanName(name)) & 0x7fffffff
}

func cleanName(name string) string {
	lower := strings.ToLower(name)
	var b strings.Builder
	b.Grow(len(lower))
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		if ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// javaHashCode computes s[0]*31^(n-1) + ... + s[n-1] with int32 wraparound.
// s must be ASCII so bytes and UTF-16 code units coincide.
func javaHashCode(s string) int32 {
	var h int32
	for i := 0; i < len(s); i++ {
		h = 31*h + int32(s[i])
	}
	return h
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// FromReference resolves ref with the Default resolver
func FromReference(ref string) (string, error) {
	return Default.FromReference(ref)
}

// FromName resolves name with the Default resolver
func FromName(name string) string {
	return Default.FromName(name)
}
