package entity

import "time"

// Publicite représente une annonce affichée dans l'application.
// Une publicité est visible si Active est vrai et si la date courante
// tombe dans la fenêtre [DateDebut, DateFin] quand celle-ci est définie.
type Publicite struct {
	ID          string
	Titre       string
	Description string
	ImageURL    string
	LienURL     string     // optionnel, cible du clic
	MaterialID  string     // optionnel, matériau mis en avant
	Active      bool
	DateDebut   *time.Time // optionnelle
	DateFin     *time.Time // optionnelle
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// VisibleAt indique si la publicité doit être servie à l'instant donné.
func (p Publicite) VisibleAt(now time.Time) bool {
	if !p.Active {
		return false
	}
	if p.DateDebut != nil && now.Before(*p.DateDebut) {
		return false
	}
	if p.DateFin != nil && now.After(*p.DateFin) {
		return false
	}
	return true
}
