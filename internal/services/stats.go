package services

import (
	"context"

	"github.com/jeongjingoo/tech/dto"
	"github.com/jeongjingoo/tech/internal/repository"
)

// CollectStats gathers the dashboard counters. Completed means iscomp == 1.
func CollectStats(ctx context.Context, schools repository.SchoolRepository, techs repository.TechnicianRepository) (dto.Stats, error) {
	var (
		stats dto.Stats
		err   error
	)
	if stats.TechnicianCount, err = techs.Count(ctx); err != nil {
		return stats, err
	}
	if stats.SchoolCount, err = schools.Count(ctx); err != nil {
		return stats, err
	}
	if stats.CompletedSchoolCount, err = schools.CountCompleted(ctx); err != nil {
		return stats, err
	}
	return stats, nil
}
