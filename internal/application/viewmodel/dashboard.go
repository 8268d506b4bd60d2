package viewmodel

import (
	"context"
	"sync"
	"time"

	"github.com/diillson/carbonscope-dashboard-go/internal/domain/entity"
	"github.com/diillson/carbonscope-dashboard-go/internal/domain/repository"
)

// Widget names, also used as keys of DashboardSnapshot.Errors.
const (
	WidgetDaily        = "daily_breakdown"
	WidgetTotalCO2     = "total_co2"
	WidgetGamification = "gamification"
	WidgetCategories   = "category_pie"
	WidgetWeekly       = "weekly_total"
)

// Dashboard groups the five metric fetchers of the dashboard view.
// The fetchers share no state with each other.
type Dashboard struct {
	Daily        *Fetcher[entity.DailyBreakdown]
	TotalCO2     *Fetcher[entity.TotalCO2]
	Gamification *Fetcher[entity.GamificationStatus]
	Categories   *Fetcher[[]entity.CategoryDatum]
	Weekly       *Fetcher[[]entity.WeeklyDatum]

	changes chan struct{}

	mu     sync.Mutex
	mounts []*Mount
}

// NewDashboard cria os cinco fetchers ligados ao repositório de métricas.
func NewDashboard(repo repository.MetricsRepository) *Dashboard {
	d := &Dashboard{
		Daily:        NewFetcher(WidgetDaily, repo.GetDailyBreakdown),
		TotalCO2:     NewFetcher(WidgetTotalCO2, repo.GetTotalCO2),
		Gamification: NewFetcher(WidgetGamification, repo.GetGamification),
		Categories:   NewFetcher(WidgetCategories, repo.GetCategoryDistribution),
		Weekly:       NewFetcher(WidgetWeekly, repo.GetWeeklyTotals),
		changes:      make(chan struct{}, 1),
	}

	notify := func(string) {
		// Notificações são agregadas: um sinal pendente já cobre as próximas.
		select {
		case d.changes <- struct{}{}:
		default:
		}
	}
	d.Daily.OnChange(notify)
	d.TotalCO2.OnChange(notify)
	d.Gamification.OnChange(notify)
	d.Categories.OnChange(notify)
	d.Weekly.OnChange(notify)

	return d
}

// Changes delivers a coalesced signal whenever any fetcher changes state.
func (d *Dashboard) Changes() <-chan struct{} {
	return d.changes
}

// MountAll issues one request per widget. Requests resolve in any order.
func (d *Dashboard) MountAll(ctx context.Context) {
	mounts := []*Mount{
		d.Daily.Mount(ctx),
		d.TotalCO2.Mount(ctx),
		d.Gamification.Mount(ctx),
		d.Categories.Mount(ctx),
		d.Weekly.Mount(ctx),
	}

	d.mu.Lock()
	d.mounts = append(d.mounts, mounts...)
	d.mu.Unlock()
}

// UnmountAll cancels every active mount; results still in flight are discarded.
func (d *Dashboard) UnmountAll() {
	d.mu.Lock()
	mounts := d.mounts
	d.mounts = nil
	d.mu.Unlock()

	for _, m := range mounts {
		m.Unmount()
	}
}

// Remount descarta as montagens atuais e busca tudo de novo.
func (d *Dashboard) Remount(ctx context.Context) {
	d.UnmountAll()
	d.MountAll(ctx)
}

// Wait blocks until every issued request has resolved.
func (d *Dashboard) Wait() {
	d.Daily.Wait()
	d.TotalCO2.Wait()
	d.Gamification.Wait()
	d.Categories.Wait()
	d.Weekly.Wait()
}

// Snapshot copies the loaded data of every widget and the reasons of the failed ones.
func (d *Dashboard) Snapshot() entity.DashboardSnapshot {
	snap := entity.DashboardSnapshot{
		GeneratedAt: time.Now().UTC(),
		Categories:  []entity.CategoryDatum{},
		Weekly:      []entity.WeeklyDatum{},
		Errors:      map[string]string{},
	}

	if s := d.Daily.State(); s.Loaded() {
		v := s.Data
		snap.Daily = &v
	} else {
		recordError(snap.Errors, WidgetDaily, s.Status, s.Err)
	}
	if s := d.TotalCO2.State(); s.Loaded() {
		v := s.Data
		snap.TotalCO2 = &v
	} else {
		recordError(snap.Errors, WidgetTotalCO2, s.Status, s.Err)
	}
	if s := d.Gamification.State(); s.Loaded() {
		v := s.Data
		snap.Gamification = &v
	} else {
		recordError(snap.Errors, WidgetGamification, s.Status, s.Err)
	}
	if s := d.Categories.State(); s.Loaded() {
		snap.Categories = append(snap.Categories, s.Data...)
	} else {
		recordError(snap.Errors, WidgetCategories, s.Status, s.Err)
	}
	if s := d.Weekly.State(); s.Loaded() {
		snap.Weekly = append(snap.Weekly, s.Data...)
	} else {
		recordError(snap.Errors, WidgetWeekly, s.Status, s.Err)
	}

	if len(snap.Errors) == 0 {
		snap.Errors = nil
	}
	return snap
}

func recordError(errs map[string]string, widget string, status Status, err error) {
	if status == StatusErrored && err != nil {
		errs[widget] = err.Error()
		return
	}
	errs[widget] = status.String()
}
