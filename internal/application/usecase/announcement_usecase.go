package usecase

import (
	"context"

	"github.com/samber/lo"

	"github.com/jhoicas/Saas-api/internal/application/dto"
	"github.com/jhoicas/Saas-api/internal/domain/access"
	"github.com/jhoicas/Saas-api/internal/domain/entity"
	"github.com/jhoicas/Saas-api/internal/domain/repository"
	"github.com/jhoicas/Saas-api/pkg/clock"
)

// AnnouncementUseCase lectura de comunicados filtrada por access.CanViewAnnouncement.
type AnnouncementUseCase struct {
	announcements repository.AnnouncementRepository
	clock         clock.Clock
}

// NewAnnouncementUseCase construye el caso de uso.
func NewAnnouncementUseCase(announcements repository.AnnouncementRepository, clk clock.Clock) *AnnouncementUseCase {
	return &AnnouncementUseCase{announcements: announcements, clock: clk}
}

// List lista los comunicados que el principal puede ver. La paginación se aplica después del filtro.
func (uc *AnnouncementUseCase) List(ctx context.Context, p *entity.Principal, page dto.PageRequest) (*dto.AnnouncementListResponse, error) {
	page.DefaultPage()
	all, err := uc.announcements.List(ctx)
	if err != nil {
		return nil, err
	}
	now := uc.clock.Now()
	visible := lo.Filter(all, func(a *entity.Announcement, _ int) bool {
		return access.CanViewAnnouncement(a, p, now)
	})
	visible = lo.Slice(visible, page.Offset, page.Offset+page.Limit)
	return &dto.AnnouncementListResponse{
		Items: lo.Map(visible, func(a *entity.Announcement, _ int) dto.AnnouncementResponse { return dto.AnnouncementFromEntity(a) }),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}
