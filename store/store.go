// Package store keeps a log of sllist runs in a bbolt database.
package store

import (
	"os"
	"sort"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
)

var FILE_MODE_RW os.FileMode = 0600

var runsBucket = []byte("Runs")

var ErrNotFound = errors.New("run not found")

// Run is one recorded load or bench invocation.
type Run struct {
	ID            string    `json:"id"`
	Mode          string    `json:"mode"`
	Started       time.Time `json:"started"`
	Items         int       `json:"items"`
	Size          int       `json:"size"`
	SizeRecursive int       `json:"size_recursive"`
	First         string    `json:"first,omitempty"`
	Last          string    `json:"last,omitempty"`
	Seconds       float64   `json:"seconds"`

	// bench only, microseconds
	AddFirstP50 int64 `json:"add_first_p50,omitempty"`
	AddFirstP99 int64 `json:"add_first_p99,omitempty"`
	AddLastP50  int64 `json:"add_last_p50,omitempty"`
	AddLastP99  int64 `json:"add_last_p99,omitempty"`
}

type Store struct {
	db *bolt.DB
}

func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, FILE_MODE_RW, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "open run store %s", path)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Record stores r, assigning it an ID when it has none.
func (s *Store) Record(r *Run) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	data, err := json.Marshal(r)
	if err != nil {
		return errors.Wrapf(err, "encode run %s", r.ID)
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(runsBucket)
		if err != nil {
			return errors.Wrap(err, "create bucket")
		}
		return bucket.Put([]byte(r.ID), data)
	})
	if err != nil {
		return errors.Wrapf(err, "record run %s", r.ID)
	}
	return nil
}

func (s *Store) Get(id string) (*Run, error) {
	var run *Run
	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(runsBucket)
		if bucket == nil {
			return ErrNotFound
		}
		data := bucket.Get([]byte(id))
		if data == nil {
			return ErrNotFound
		}
		run = &Run{}
		return json.Unmarshal(data, run)
	})
	if err != nil {
		return nil, errors.Wrapf(err, "get run %s", id)
	}
	return run, nil
}

// List returns every recorded run, oldest first.
func (s *Store) List() ([]*Run, error) {
	var runs []*Run
	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(runsBucket)
		if bucket == nil {
			return nil
		}
		return bucket.ForEach(func(k, v []byte) error {
			run := &Run{}
			if err := json.Unmarshal(v, run); err != nil {
				return errors.Wrapf(err, "decode run %s", k)
			}
			runs = append(runs, run)
			return nil
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "list runs")
	}
	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Started.Before(runs[j].Started)
	})
	return runs, nil
}
