package identifier

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

const (
	DefaultPrefix = "todo"
	tokenLength   = 8
)

type Generator interface {
	NewID() string
}

type randomGenerator struct {
	prefix string
}

// New returns a generator of "<prefix>-<8 hex digits>" ids drawn from random UUIDs.
// Collisions are possible; callers that need uniqueness check and re-draw.
func New() Generator {
	return NewWithPrefix(DefaultPrefix)
}

func NewWithPrefix(prefix string) Generator {
	return &randomGenerator{prefix: prefix}
}

func (g *randomGenerator) NewID() string {
	token := strings.ReplaceAll(uuid.NewString(), "-", "")

	return fmt.Sprintf("%s-%s", g.prefix, token[:tokenLength])
}

type sequenceGenerator struct {
	prefix string
	next   atomic.Uint64
}

// NewSequence returns a generator of "<prefix>-1", "<prefix>-2", ...
func NewSequence(prefix string) Generator {
	return &sequenceGenerator{prefix: prefix}
}

func (g *sequenceGenerator) NewID() string {
	return fmt.Sprintf("%s-%d", g.prefix, g.next.Add(1))
}
