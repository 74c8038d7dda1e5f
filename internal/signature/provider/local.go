package provider

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/colorhaus/colorhaus/internal/signature/domain"
	"github.com/oklog/ulid/v2"
)

// localProcessor completes signings synchronously. It stands in for the
// configured e-sign provider, which is never called over the wire.
type localProcessor struct{}

func NewLocalProcessor() domain.Processor {
	return &localProcessor{}
}

func (p *localProcessor) Submit(ctx context.Context, req domain.SubmitRequest) (*domain.Receipt, error) {
	if len(req.Document) == 0 {
		return nil, domain.ErrEmptyDocument
	}

	now := time.Now().UTC()
	id, err := ulid.New(ulid.Timestamp(now), rand.Reader)
	if err != nil {
		return nil, err
	}

	digest := sha256.Sum256(req.Document)
	return &domain.Receipt{
		Reference: "sig_" + id.String(),
		Digest:    hex.EncodeToString(digest[:]),
		SignedAt:  now,
	}, nil
}
