package entity

import "strings"

// ValidEmail contrôle minimal du format : une arobase bien placée et un
// domaine avec un point suffisent, le reste appartient au client mail.
func ValidEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domaine := email[at+1:]
	return strings.Contains(domaine, ".") && !strings.ContainsAny(email, " \t")
}
