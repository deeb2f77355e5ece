package services

import (
	"context"

	"worklog-billing/internal/domain"
	"worklog-billing/internal/repository/sqlite"
)

// freelancerServiceImpl implements the FreelancerService interface
type freelancerServiceImpl struct {
	repo   sqlite.Repository
	mapper *domain.Mapper
}

// NewFreelancerService creates a new FreelancerService instance
func NewFreelancerService(repo sqlite.Repository) FreelancerService {
	return &freelancerServiceImpl{
		repo:   repo,
		mapper: domain.NewMapper(),
	}
}

// ListFreelancers returns all freelancers
func (f *freelancerServiceImpl) ListFreelancers(ctx context.Context) ([]domain.Freelancer, error) {
	dbFreelancers, err := f.repo.ListFreelancers(ctx)
	if err != nil {
		return nil, err
	}
	return f.mapper.Freelancer.FromDatabaseSlice(dbFreelancers), nil
}

// freelancerIndex loads all freelancers into a map keyed by ID. Listing and
// aggregation paths look rates up repeatedly, so one fetch serves them all.
func freelancerIndex(ctx context.Context, repo sqlite.Repository, mapper *domain.Mapper) (map[int64]domain.Freelancer, error) {
	dbFreelancers, err := repo.ListFreelancers(ctx)
	if err != nil {
		return nil, err
	}

	index := make(map[int64]domain.Freelancer, len(dbFreelancers))
	for _, dbFreelancer := range dbFreelancers {
		freelancer := mapper.Freelancer.FromDatabase(*dbFreelancer)
		index[freelancer.ID] = freelancer
	}
	return index, nil
}

// lookupFreelancer returns the indexed freelancer for a worklog, or nil when
// the worklog has no freelancer reference
func lookupFreelancer(index map[int64]domain.Freelancer, freelancerID *int64) *domain.Freelancer {
	if freelancerID == nil {
		return nil
	}
	if freelancer, ok := index[*freelancerID]; ok {
		return &freelancer
	}
	return nil
}
