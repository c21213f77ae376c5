package state

import "github.com/tohojo/stgit-console/internal/stgit"

// SeriesStore holds the latest parsed series snapshot plus the branch
// context it belongs to. The snapshot is replaced wholesale on refresh.
type SeriesStore interface {
	Series() stgit.Series
	SetSeries(stgit.Series)
	Branch() string
	SetBranch(string)
	Upstream() string
	SetUpstream(string)
	Remote() string
	SetRemote(string)
	Initialized() bool
	SetInitialized(bool)
}

type seriesStore struct {
	series      stgit.Series
	branch      string
	upstream    string
	remote      string
	initialized bool
}

func NewSeriesStore() SeriesStore {
	return &seriesStore{initialized: true}
}

func (s *seriesStore) Series() stgit.Series {
	return cloneSeries(s.series)
}

func (s *seriesStore) SetSeries(series stgit.Series) {
	s.series = cloneSeries(series)
}

func (s *seriesStore) Branch() string {
	return s.branch
}

func (s *seriesStore) SetBranch(branch string) {
	s.branch = branch
}

func (s *seriesStore) Upstream() string {
	return s.upstream
}

func (s *seriesStore) SetUpstream(upstream string) {
	s.upstream = upstream
}

func (s *seriesStore) Remote() string {
	return s.remote
}

func (s *seriesStore) SetRemote(remote string) {
	s.remote = remote
}

func (s *seriesStore) Initialized() bool {
	return s.initialized
}

func (s *seriesStore) SetInitialized(initialized bool) {
	s.initialized = initialized
}

func cloneSeries(series stgit.Series) stgit.Series {
	if len(series.Entries) == 0 {
		return stgit.Series{}
	}
	dup := make([]stgit.PatchEntry, len(series.Entries))
	copy(dup, series.Entries)
	return stgit.Series{Entries: dup}
}
