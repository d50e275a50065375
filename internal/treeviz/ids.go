package treeviz

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
)

// IDSource yields the node identifiers used to correlate node and edge
// statements within one document. IDs only need to be unique within a single
// render.
type IDSource interface {
	Next() string
}

const randomIDLen = 20

type randomDigits struct{}

// RandomDigits returns the default ID source: 20 random digit characters per
// node. Collisions are not checked for; at 10^20 possible IDs the odds are
// negligible for any tree a layout tool can draw, but callers who want a
// guarantee should use UUIDs instead.
func RandomDigits() IDSource { return randomDigits{} }

func (randomDigits) Next() string {
	var sb strings.Builder
	sb.Grow(randomIDLen)
	for i := 0; i < randomIDLen; i++ {
		sb.WriteByte(byte('0' + rand.Intn(10)))
	}
	return sb.String()
}

// Sequential yields n0, n1, n2, ... making output fully deterministic.
type Sequential struct {
	n int
}

// NewSequential returns a counter-backed ID source starting at n0.
func NewSequential() *Sequential { return &Sequential{} }

func (s *Sequential) Next() string {
	id := fmt.Sprintf("n%d", s.n)
	s.n++
	return id
}

type uuidSource struct{}

// UUIDs returns an ID source backed by random UUIDs, for callers who want
// collision-free identifiers. Hyphens are stripped and the ID is prefixed so
// it stays a legal bare DOT identifier.
func UUIDs() IDSource { return uuidSource{} }

func (uuidSource) Next() string {
	return "n" + strings.ReplaceAll(uuid.NewString(), "-", "")
}
