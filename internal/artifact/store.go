// Package artifact reads and writes the static contributor artifact.
//
// The artifact is an ordered json array of {username, profileUrl} objects.
// It is written whole by the fetch step and treated as read-only by
// everything else.
package artifact

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/acikdeniz/credits/internal/app"
	"github.com/pkg/errors"
)

type record struct {
	Username   string `json:"username"`
	ProfileURL string `json:"profileUrl"`
}

func newRecords(contributors []app.Contributor) []record {
	rs := make([]record, 0, len(contributors))
	for _, c := range contributors {
		rs = append(rs, record{
			Username:   c.Login,
			ProfileURL: c.ProfileURL,
		})
	}

	return rs
}

func toContributors(rs []record) ([]app.Contributor, error) {
	cs := make([]app.Contributor, 0, len(rs))
	for i, r := range rs {
		if r.Username == "" {
			return nil, errors.Errorf("artifact record %d has no username", i)
		}

		cs = append(cs, app.Contributor{
			Login:      r.Username,
			ProfileURL: r.ProfileURL,
		})
	}

	return cs, nil
}

// Store writes the contributor artifact to a fixed path.
type Store struct {
	path string
}

// NewStore creates new Store instance writing to given path.
func NewStore(path string) *Store {
	return &Store{
		path: path,
	}
}

// Write overwrites the artifact with given contributor list.
//
// Data is marshalled with indentation to keep the artifact human-diffable
// and written through a temp file in the same directory, so readers never
// observe a truncated artifact.
func (s *Store) Write(contributors []app.Contributor) error {
	data, err := json.MarshalIndent(newRecords(contributors), "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshalling artifact")
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	tmp, err := ioutil.TempFile(dir, filepath.Base(s.path)+".tmp")
	if err != nil {
		return errors.Wrap(err, "creating temp artifact file")
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.Wrap(err, "writing temp artifact file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(err, "closing temp artifact file")
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(err, "replacing artifact file")
	}

	return nil
}
