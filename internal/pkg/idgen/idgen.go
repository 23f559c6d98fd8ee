package idgen

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator supplies identifiers for payment intentions created without a caller-supplied id.
type Generator interface {
	NewID() string
}

type UUIDGenerator struct{}

func NewUUIDGenerator() Generator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// SequenceGenerator yields prefix-1, prefix-2, ... and is meant for deterministic tests.
type SequenceGenerator struct {
	prefix string
	next   atomic.Int64
}

func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{prefix: prefix}
}

func (g *SequenceGenerator) NewID() string {
	return fmt.Sprintf("%s-%d", g.prefix, g.next.Add(1))
}
