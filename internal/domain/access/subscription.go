package access

import (
	"time"

	"github.com/samber/lo"

	"github.com/jhoicas/Saas-api/internal/domain/entity"
)

// CurrentSubscription devuelve la única suscripción que habilita el acceso en now:
// status active, StartDate <= now <= EndDate e IsActive. Si varias cumplen gana la
// iniciada más recientemente (a igualdad, el menor ID). nil si ninguna cumple.
func CurrentSubscription(subs []*entity.Subscription, now time.Time) *entity.Subscription {
	valid := lo.Filter(subs, func(s *entity.Subscription, _ int) bool {
		return s != nil &&
			s.IsActive &&
			s.Status == entity.SubscriptionActive &&
			!s.StartDate.After(now) &&
			!s.EndDate.Before(now)
	})
	if len(valid) == 0 {
		return nil
	}
	return lo.MaxBy(valid, func(a, b *entity.Subscription) bool {
		if a.StartDate.Equal(b.StartDate) {
			return a.ID < b.ID
		}
		return a.StartDate.After(b.StartDate)
	})
}

// IsEntitled informa si el principal tiene derecho de acceso según las suscripciones de su empresa.
// Superusuarios y staff siempre lo tienen.
func IsEntitled(principal *entity.Principal, subs []*entity.Subscription, now time.Time) bool {
	if principal.IsPrivileged() {
		return true
	}
	return CurrentSubscription(subs, now) != nil
}
