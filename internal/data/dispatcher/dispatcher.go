package dispatcher

import (
	"github.com/tohojo/stgit-console/internal/backend"
	"github.com/tohojo/stgit-console/internal/state"
	"github.com/tohojo/stgit-console/internal/stgit"
)

type Result struct {
	SeriesUpdated bool
	BranchUpdated bool
}

type Dispatcher struct {
	series state.SeriesStore
}

func New(s state.SeriesStore) *Dispatcher {
	return &Dispatcher{series: s}
}

func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		return res
	}
	switch evt.Kind {
	case backend.KindSeries:
		if series, ok := evt.Data.(stgit.Series); ok {
			d.series.SetSeries(series)
			d.series.SetInitialized(true)
			res.SeriesUpdated = true
		}
	case backend.KindBranch:
		if info, ok := evt.Data.(stgit.BranchInfo); ok {
			d.series.SetBranch(info.Name)
			d.series.SetUpstream(info.Upstream)
			d.series.SetRemote(info.Remote)
			res.BranchUpdated = true
		}
	}
	return res
}
