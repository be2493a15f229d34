// Package ratelimit fournit un limiteur de requêtes en mémoire par fenêtre
// glissante : le compte d'admission est évalué sur la durée écoulée se
// terminant « maintenant », pas sur un intervalle calendaire fixe.
//
// Le limiteur est volontairement éphémère et local au processus : il protège
// l'instance contre les rafales, il ne remplace pas un quota distribué.
package ratelimit

import (
	"sync"
	"time"
)

// Config paramètres du limiteur.
type Config struct {
	MaxRequests   int           // admissions maximales par clé et par fenêtre (défaut 100)
	Window        time.Duration // durée de la fenêtre glissante (défaut 15 min)
	SweepInterval time.Duration // période de purge des clés inactives; 0 désactive la purge
}

// Option personnalise la construction du limiteur.
type Option func(*Limiter)

// WithClock injecte une horloge (tests).
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) { l.now = now }
}

// Limiter limiteur par clé (adresse IP, identifiant client, ...).
// La séquence d'horodatages de chaque clé est le seul état mutable partagé
// du processus : la mutation lecture-purge-ajout est sérialisée par mutex
// pour éviter la sur-admission sous requêtes concurrentes.
type Limiter struct {
	cfg Config
	now func() time.Time

	mu   sync.Mutex
	hits map[string][]time.Time

	done chan struct{}
	once sync.Once
}

// New construit le limiteur et démarre la purge périodique si
// SweepInterval > 0. L'appelant doit appeler Close à l'arrêt.
func New(cfg Config, opts ...Option) *Limiter {
	if cfg.MaxRequests <= 0 {
		cfg.MaxRequests = 100
	}
	if cfg.Window <= 0 {
		cfg.Window = 15 * time.Minute
	}
	l := &Limiter{
		cfg:  cfg,
		now:  time.Now,
		hits: make(map[string][]time.Time),
		done: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	if cfg.SweepInterval > 0 {
		go l.sweepLoop()
	}
	return l
}

// Allow décide l'admission de la clé à l'instant courant.
func (l *Limiter) Allow(key string) bool {
	return l.AllowAt(key, l.now())
}

// AllowAt décide l'admission de la clé à l'instant donné.
// Les horodatages plus vieux que now-Window sont écartés (purge paresseuse,
// évaluée à chaque appel); au plafond la requête est rejetée SANS être
// enregistrée, sinon now est ajouté à la séquence et la requête admise.
func (l *Limiter) AllowAt(key string, now time.Time) bool {
	limite := now.Add(-l.cfg.Window)

	l.mu.Lock()
	defer l.mu.Unlock()

	recents := prune(l.hits[key], limite)
	if len(recents) >= l.cfg.MaxRequests {
		l.hits[key] = recents
		return false
	}
	l.hits[key] = append(recents, now)
	return true
}

// Remaining renvoie le nombre d'admissions restantes pour la clé.
func (l *Limiter) Remaining(key string, now time.Time) int {
	limite := now.Add(-l.cfg.Window)

	l.mu.Lock()
	defer l.mu.Unlock()

	rest := l.cfg.MaxRequests - len(prune(l.hits[key], limite))
	if rest < 0 {
		rest = 0
	}
	return rest
}

// Keys renvoie le nombre de clés actuellement suivies (jauge de supervision).
func (l *Limiter) Keys() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.hits)
}

// Window expose la durée de la fenêtre (en-tête Retry-After du middleware).
func (l *Limiter) Window() time.Duration {
	return l.cfg.Window
}

// Close arrête la goroutine de purge. Idempotent.
func (l *Limiter) Close() {
	l.once.Do(func() { close(l.done) })
}

// sweepLoop supprime périodiquement les clés dont toute la fenêtre a expiré,
// pour borner la mémoire face à un grand nombre de clients distincts.
func (l *Limiter) sweepLoop() {
	ticker := time.NewTicker(l.cfg.SweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-l.done:
			return
		case <-ticker.C:
			l.sweep(l.now())
		}
	}
}

func (l *Limiter) sweep(now time.Time) {
	limite := now.Add(-l.cfg.Window)

	l.mu.Lock()
	defer l.mu.Unlock()

	for key, seq := range l.hits {
		recents := prune(seq, limite)
		if len(recents) == 0 {
			delete(l.hits, key)
			continue
		}
		l.hits[key] = recents
	}
}

// prune écarte les horodatages antérieurs ou égaux à la limite.
// Les séquences sont croissantes (append sous mutex), on coupe donc au
// premier horodatage encore dans la fenêtre.
func prune(seq []time.Time, limite time.Time) []time.Time {
	i := 0
	for i < len(seq) && !seq[i].After(limite) {
		i++
	}
	return seq[i:]
}
