// Package avatar produces the portrait composited onto rendered ID cards.
//
// Portraits come from a strictly ordered fallback chain of backends: a remote
// AI image service, a deterministic locally drawn face, and a fixed
// silhouette placeholder. The chain is total: it always returns an image, and
// the result names the backend that actually produced it so a degraded
// portrait is never mistaken for an AI one.
package avatar

import (
	"context"

	"shenfen/internal/identity/models"
)

// Backend identifies which generation strategy produced an image.
type Backend string

const (
	BackendAIModel        Backend = "ai_model"
	BackendProceduralFace Backend = "procedural_face"
	BackendSilhouette     Backend = "silhouette"
)

// AgeBucket groups ages into the coarse bands the AI prompt phrases.
type AgeBucket string

const (
	AgeBucketChild      AgeBucket = "child"
	AgeBucketTeen       AgeBucket = "teen"
	AgeBucketYoungAdult AgeBucket = "young_adult"
	AgeBucketAdult      AgeBucket = "adult"
	AgeBucketSenior     AgeBucket = "senior"
)

// BucketForAge maps an age in years to its bucket. Non-positive ages fall
// back to the adult bucket.
func BucketForAge(age int) AgeBucket {
	switch {
	case age <= 0:
		return AgeBucketAdult
	case age < 13:
		return AgeBucketChild
	case age < 18:
		return AgeBucketTeen
	case age < 30:
		return AgeBucketYoungAdult
	case age < 60:
		return AgeBucketAdult
	default:
		return AgeBucketSenior
	}
}

// Request describes one portrait. It lives only for the duration of a
// Generate call and is never persisted.
type Request struct {
	Gender    models.Gender
	AgeBucket AgeBucket
	Width     int
	Height    int
	Seed      int64

	// Optional physique hints enriching the AI prompt. Zero omits them.
	HeightCM int
	WeightKG int
}

// Result carries the produced image and the backend that drew it.
type Result struct {
	PNG     []byte
	Backend Backend
}

// AIBackend calls the remote avatar service. Implementations classify every
// failure with a BackendError so the chain can transition on it.
type AIBackend interface {
	Generate(ctx context.Context, req Request) ([]byte, error)
}

// FaceRenderer draws a portrait locally and deterministically: the same
// request must yield byte-identical output.
type FaceRenderer interface {
	Render(req Request) ([]byte, error)
}

// Placeholder draws the fixed fallback portrait. It must be total; the
// chain's guarantee of always returning an image rests on it.
type Placeholder interface {
	Render(req Request) []byte
}

// Normalizer prepares an externally produced image for compositing:
// orientation applied, head framed, scaled to the requested size.
type Normalizer interface {
	Normalize(data []byte, width, height int) ([]byte, error)
}
