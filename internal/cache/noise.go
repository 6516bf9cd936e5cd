package cache

import (
	"github.com/Borislavv/go-ghost-cache/model"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// noise is a debug trace of what sweeps decide, one event per visited node.
// It is meant for visualizing cache behavior, not for production logs.
type noise struct {
	on  bool
	log zerolog.Logger
}

func newNoise(on bool) noise {
	return noise{on: on, log: log.With().Str("component", "ghostcache").Logger()}
}

func (n noise) sweepStarted(target, active int) {
	if n.on {
		n.log.Debug().Int("target", target).Int("active", active).Msg("sweep started")
	}
}

func (n noise) sweepFinished(active int, err error) {
	if n.on {
		n.log.Debug().Int("active", active).Err(err).Msg("sweep finished")
	}
}

func (n noise) ghosted(oid model.OID) {
	if n.on {
		n.log.Debug().Str("oid", string(oid)).Msg("G")
	}
}

func (n noise) skipped(oid model.OID, state model.State) {
	if n.on {
		n.log.Debug().Str("oid", string(oid)).Stringer("state", state).Msg(".")
	}
}
