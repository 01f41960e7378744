package doctors

import (
	"context"
	"errors"
)

// ErrDoctorNotFound is returned when no doctor matches the requested name
var ErrDoctorNotFound = errors.New("doctor not found")

// Source provides the grouped doctor list, however the rows are obtained.
type Source interface {
	Doctors(ctx context.Context) ([]Doctor, error)
}

// StaticSource serves a fixed row set. Used in tests and as a local
// fallback when no feed is configured.
type StaticSource struct {
	rows []Row
}

// NewStaticSource creates a source over fixed rows.
func NewStaticSource(rows []Row) *StaticSource {
	return &StaticSource{rows: rows}
}

func (s *StaticSource) Doctors(ctx context.Context) ([]Doctor, error) {
	return GroupByDoctor(s.rows), nil
}

// Find returns the doctor with the exact name from the source.
func Find(ctx context.Context, source Source, name string) (*Doctor, error) {
	list, err := source.Doctors(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].Name == name {
			return &list[i], nil
		}
	}
	return nil, ErrDoctorNotFound
}
