// Package store holds every in-memory mapping behind the reporting API. One
// Store instance is built in main and shared by all services, so tests can
// construct isolated instances instead of touching package globals.
package store

import (
	"sync"

	"ereporting/internal/domain"
)

// Store aggregates one collection per resource type, the notification log, and
// the two static entity catalogs. Nothing survives a process restart.
type Store struct {
	Ministries *Collection[domain.Ministry]
	Entities   *Collection[domain.Entity]
	Projects   *Collection[domain.Project]
	Users      *Collection[domain.User]
	Sessions   *Collection[domain.Session]
	Documents  *Collection[domain.Document]
	Courses    *Collection[domain.Course]

	Notifications *NotificationLog

	catalogMu  sync.RWMutex
	catalogEPE []string
	catalogSE  []string
}

func New() *Store {
	return &Store{
		Ministries:    NewCollection[domain.Ministry](),
		Entities:      NewCollection[domain.Entity](),
		Projects:      NewCollection[domain.Project](),
		Users:         NewCollection[domain.User](),
		Sessions:      NewCollection[domain.Session](),
		Documents:     NewCollection[domain.Document](),
		Courses:       NewCollection[domain.Course](),
		Notifications: NewNotificationLog(),
	}
}

// CatalogEPE returns the fixed list of EPE names.
func (s *Store) CatalogEPE() []string {
	s.catalogMu.RLock()
	defer s.catalogMu.RUnlock()
	return append([]string{}, s.catalogEPE...)
}

// CatalogSE returns the fixed list of Société d'État names.
func (s *Store) CatalogSE() []string {
	s.catalogMu.RLock()
	defer s.catalogMu.RUnlock()
	return append([]string{}, s.catalogSE...)
}

// Seed populates the store with the demo dataset: one ministry, one entity
// under it, one project, one admin user, and both catalogs. It is idempotent;
// when the ministries mapping is already non-empty the call is a no-op, so a
// restart path invoking it twice cannot duplicate demo data.
func (s *Store) Seed() {
	if s.Ministries.Len() > 0 {
		return
	}

	ministry := s.Ministries.Insert(domain.Ministry{
		Sigle:    "MF",
		Name:     "Ministère des Finances",
		Minister: "Ministre des Finances",
	})
	entity := s.Entities.Insert(domain.Entity{
		Name:       "EPE Démo",
		Type:       "EPE",
		MinistryID: ministry.ID,
	})
	s.Projects.Insert(domain.Project{
		Name:     "Projet Démo",
		EntityID: entity.ID,
	})
	s.Users.Insert(domain.User{
		Email:     "admin@demo.local",
		FirstName: "Admin",
		LastName:  "Démo",
		Roles:     []string{"ADMIN"},
	})

	s.catalogMu.Lock()
	defer s.catalogMu.Unlock()
	s.catalogEPE = []string{
		"EPE - Office National A",
		"EPE - Agence Technique B",
		"EPE - Centre C",
	}
	s.catalogSE = []string{
		"Société d'État - Entreprise X",
		"Société d'État - Société Y",
	}
}
