package services

import (
	"fmt"
	"strings"

	"cobranza/internal/domain"
	"cobranza/internal/domain/models"
	"cobranza/internal/realtime"
	"cobranza/internal/repositories"
	"cobranza/internal/utils"
)

// RemisionService is the registry of delivery notes: it filters and sorts
// the list, serves gap markers, and mediates the aggregate save
// (remision + pagos) with the saldo invariant.
type RemisionService struct {
	RemisionRepo repositories.RemisionRepository
	PagoRepo     repositories.PagoRepository
	Hub          *realtime.Hub
	RequestID    string
}

// List applies the search term and the descending folio order in memory,
// the way the original dashboard filtered its live query result.
func (s RemisionService) List(q string) ([]models.Remision, error) {
	all, err := s.RemisionRepo.ListAll()
	if err != nil {
		return nil, err
	}
	filtered := []models.Remision{}
	for _, r := range all {
		if domain.MatchesFilter(r, q) {
			filtered = append(filtered, r)
		}
	}
	domain.SortByFolioDesc(filtered)
	return filtered, nil
}

// Gaps reports folios missing from the full sequence, ignoring any filter.
func (s RemisionService) Gaps() ([]domain.GapMarker, error) {
	all, err := s.RemisionRepo.ListAll()
	if err != nil {
		return nil, err
	}
	domain.SortByFolioDesc(all)
	return domain.FindGaps(all), nil
}

// Detail loads one remision with its pagos. Pagos stay out of the list
// payload and are fetched here, on selection.
func (s RemisionService) Detail(id int64) (models.Remision, error) {
	rem, err := s.RemisionRepo.GetByID(id)
	if err != nil {
		return models.Remision{}, err
	}
	pagos, err := s.PagoRepo.ListByRemision(id)
	if err != nil {
		return models.Remision{}, err
	}
	rem.Pagos = pagos
	return rem, nil
}

// Save persists the whole aggregate. A remision without id is created and
// its pagos attached afterwards; one with an id is updated in place. Each
// pago routes on its own id: zero means INSERT with a fresh creation date,
// anything else means UPDATE that leaves the creation date alone. Pagos
// with an empty monto are skipped without complaint.
//
// There is no transaction across the sequence: a failure partway can leave
// some pagos saved and others not, matching the original's behavior.
func (s RemisionService) Save(rem models.Remision) (models.Remision, error) {
	rem.Folio = strings.TrimSpace(rem.Folio)
	if rem.Folio == "" {
		return models.Remision{}, domain.ValidationError{Field: "folio", Msg: "la remisión necesita folio"}
	}

	rem.Saldo = domain.ComputeSaldo(rem.Total, rem.Pagos)

	if rem.ID == 0 {
		id, err := s.RemisionRepo.Create(rem)
		if err != nil {
			return models.Remision{}, err
		}
		rem.ID = id
		utils.LogEvent(s.RequestID, "remision", "create", fmt.Sprintf("id=%d folio=%s", id, rem.Folio))
	} else {
		if _, err := s.RemisionRepo.GetByID(rem.ID); err != nil {
			return models.Remision{}, err
		}
		if err := s.RemisionRepo.Update(rem); err != nil {
			return models.Remision{}, err
		}
		utils.LogEvent(s.RequestID, "remision", "update", fmt.Sprintf("id=%d folio=%s", rem.ID, rem.Folio))
	}

	for _, p := range rem.Pagos {
		if strings.TrimSpace(p.Monto) == "" {
			continue
		}
		p.RemisionID = rem.ID
		if p.ID == 0 {
			p.Fecha = utils.NowFecha()
			if _, err := s.PagoRepo.Create(p); err != nil {
				return models.Remision{}, err
			}
		} else {
			if err := s.PagoRepo.Update(p); err != nil {
				return models.Remision{}, err
			}
		}
	}

	// Recompute against what is actually stored; the payload may not carry
	// pagos persisted in earlier sessions.
	stored, err := s.PagoRepo.ListByRemision(rem.ID)
	if err != nil {
		return models.Remision{}, err
	}
	saldo := domain.ComputeSaldo(rem.Total, stored)
	if err := s.RemisionRepo.UpdateSaldo(rem.ID, saldo); err != nil {
		return models.Remision{}, err
	}

	if s.Hub != nil {
		s.Hub.Publish(realtime.TopicRemisiones)
	}

	rem.Saldo = saldo
	rem.Pagos = stored
	return rem, nil
}

func (s RemisionService) Delete(id int64) error {
	if err := s.RemisionRepo.Delete(id); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "remision", "delete", fmt.Sprintf("id=%d", id))
	if s.Hub != nil {
		s.Hub.Publish(realtime.TopicRemisiones)
	}
	return nil
}
