package httputil

import "errors"

var (
	ErrInvalidBody      = errors.New("o corpo da requisição contém dados inválidos. Verifique e tente novamente")
	ErrRequestBodyEmpty = errors.New("o corpo da requisição não pode estar vazio")
)
