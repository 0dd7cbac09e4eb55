package usecase

import (
	"github.com/jhoicas/Saas-api/internal/application/dto"
	"github.com/jhoicas/Saas-api/internal/domain/repository"
)

func pageOf(q repository.ListQuery) dto.PageResponse {
	return dto.PageResponse{Limit: q.Limit, Offset: q.Offset}
}
