package dto

import "github.com/prixmathaiti/prixmat-api/internal/domain/catalog"

// Response enveloppe JSON commune à toutes les réponses de l'API.
// Toujours {success, message?, data?, error?, count?, pagination?}.
type Response struct {
	Success    bool                `json:"success"`
	Message    string              `json:"message,omitempty"`
	Data       interface{}         `json:"data,omitempty"`
	Error      string              `json:"error,omitempty"`
	Count      *int                `json:"count,omitempty"`
	Pagination *catalog.Pagination `json:"pagination,omitempty"`
}

// OK réponse de succès avec données.
func OK(data interface{}) Response {
	return Response{Success: true, Data: data}
}

// OKMessage réponse de succès avec message et données.
func OKMessage(message string, data interface{}) Response {
	return Response{Success: true, Message: message, Data: data}
}

// OKList réponse de succès pour un listage avec compteur et pagination.
func OKList(data interface{}, count int, p *catalog.Pagination) Response {
	return Response{Success: true, Data: data, Count: &count, Pagination: p}
}

// Fail réponse d'échec avec message utilisateur.
func Fail(message string) Response {
	return Response{Success: false, Message: message}
}

// FailDetail réponse d'échec avec le détail de l'erreur sous-jacente.
// À n'utiliser qu'en dehors de la production.
func FailDetail(message, detail string) Response {
	return Response{Success: false, Message: message, Error: detail}
}
