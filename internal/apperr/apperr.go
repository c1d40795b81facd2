package apperr

import (
	"errors"
	"net/http"
)

// Kind classe les erreurs imputables au client.
type Kind int

const (
	KindValidation Kind = iota + 1 // champ ou paramètre requis manquant
	KindConflict                   // inscription en doublon
	KindAuth                       // identifiants ou token invalides
	KindNotFound                   // utilisateur/produit/panier inexistant
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func Validation(msg string) *Error { return &Error{Kind: KindValidation, Message: msg} }
func Conflict(msg string) *Error   { return &Error{Kind: KindConflict, Message: msg} }
func Auth(msg string) *Error       { return &Error{Kind: KindAuth, Message: msg} }
func NotFound(msg string) *Error   { return &Error{Kind: KindNotFound, Message: msg} }

// KindOf renvoie le kind d'une erreur applicative, 0 sinon.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsClient dit si l'erreur est imputable au client.
func IsClient(err error) bool { return KindOf(err) != 0 }

// Status : les quatre kinds client → 400, tout le reste → 500.
func Status(err error) int {
	if IsClient(err) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// Message : message exposable au client. Les erreurs internes ne fuient pas.
func Message(err error) string {
	if IsClient(err) {
		return err.Error()
	}
	return "Internal server error"
}
