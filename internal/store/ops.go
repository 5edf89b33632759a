package store

import "context"

// SaveVisit records one handled request. Safe on a nil Store, where it is a
// no-op; this is what lets the hello handler hold a "maybe disabled" recorder
// without branching everywhere.
func (s *Store) SaveVisit(ctx context.Context, traceID, message string, status int) error {
	if s == nil {
		return nil
	}
	return s.client.WithContext(ctx).Create(&Visit{
		TraceID: traceID,
		Message: message,
		Status:  status,
	}).Error
}

// RecentVisits returns the most recent visits, newest first.
func (s *Store) RecentVisits(ctx context.Context, limit int) ([]Visit, error) {
	if s == nil {
		return nil, nil
	}
	var visits []Visit
	err := s.client.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&visits).Error
	return visits, err
}

// CountVisits returns the total number of recorded visits.
func (s *Store) CountVisits(ctx context.Context) (int64, error) {
	if s == nil {
		return 0, nil
	}
	var count int64
	err := s.client.WithContext(ctx).Model(&Visit{}).Count(&count).Error
	return count, err
}
