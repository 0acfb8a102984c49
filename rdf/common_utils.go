package rdf

import (
	"log/slog"
	"slices"
	"strconv"

	"github.com/google/uuid"
)

// blankNodeGenerator names anonymous resources "_:0", "_:1", ... in the
// order they are first needed. Each cursor owns one.
type blankNodeGenerator struct {
	counter int
}

func (g *blankNodeGenerator) next() string {
	id := "_:" + strconv.Itoa(g.counter)
	g.counter++
	return id
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// cursorLogger tags every record of a cursor with a fresh instance id and
// its format.
func cursorLogger(logger *slog.Logger, format Format) *slog.Logger {
	return logger.With(slog.String("cursor", uuid.NewString()), slog.String("format", format.String()))
}
