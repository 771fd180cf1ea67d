package entity

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Planes de suscripción disponibles.
const (
	PlanFree  = "free"
	PlanTrial = "trial"
	PlanPro   = "pro"
)

// Subdominios reservados que nunca resuelven a un tenant.
var ReservedSubdomains = map[string]bool{
	"www": true,
	"api": true,
}

// Tenant representa una organización aislada del sistema (multi-tenant).
// Ninguna fila de ningún tenant es visible para otro tenant.
type Tenant struct {
	ID          string
	Name        string
	Slug        string // único global, normalizado (ver Slugify)
	Domain      string // dominio propio opcional (ej. tiempos.acme.com)
	Subdomain   string // subdominio bajo el dominio base (ej. "acme")
	Plan        string // free, trial, pro
	MaxUsers    int
	Status      string // active, suspended, inactive
	TrialEndsAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsActive indica si el tenant puede atender peticiones.
func (t *Tenant) IsActive() bool {
	return t != nil && t.Status == "active"
}

// Slugify normaliza un nombre a slug: minúsculas, sin acentos, [a-z0-9-].
// Usa NFD + eliminación de marcas diacríticas para nombres con tildes/ñ.
func Slugify(name string) string {
	strip := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, err := transform.String(strip, name)
	if err != nil {
		s = name
	}
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := true // evita dash inicial
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case r == 'ñ':
			b.WriteRune('n')
			lastDash = false
		default:
			if !lastDash {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
