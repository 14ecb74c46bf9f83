package task

import "time"

const (
	// MinTitleLen and MinDescriptionLen are inherited from the original
	// task schema.
	MinTitleLen       = 3
	MinDescriptionLen = 6
)

type Service struct {
	tasks TaskRepo

	now func() time.Time
}

func NewService(tasks TaskRepo) *Service {
	return &Service{
		tasks: tasks,
		now:   time.Now,
	}
}

// WithClock swaps the time source; tests use it to pin completion stamps.
func (s *Service) WithClock(now func() time.Time) *Service {
	if now != nil {
		s.now = now
	}
	return s
}
